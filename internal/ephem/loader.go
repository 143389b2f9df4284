package ephem

import "sync"

// Sources bundles the two backend handles an engine needs.
type Sources struct {
	Primary   PrimarySource
	Secondary SecondarySource
}

// SharedSources constructs an expensive source pair once and hands the same
// instances to every engine that asks. Construction runs under a lock; a
// failed build is retried on the next Get rather than cached, so a
// transient acquisition failure does not poison the process.
//
// This replaces implicit module-level singletons with an explicit,
// externally-owned handle, which keeps lifetime and thread-safety visible.
type SharedSources struct {
	build func() (Sources, error)

	mu      sync.Mutex
	built   bool
	sources Sources
}

// NewSharedSources wraps a source constructor.
func NewSharedSources(build func() (Sources, error)) *SharedSources {
	return &SharedSources{build: build}
}

// Get returns the shared source pair, constructing it on first use. After a
// successful build the sources are treated as read-only.
func (s *SharedSources) Get() (Sources, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.built {
		return s.sources, nil
	}

	sources, err := s.build()
	if err != nil {
		return Sources{}, err
	}

	s.sources = sources
	s.built = true
	return s.sources, nil
}

package ephem

import (
	"errors"
	"sync"
	"testing"
)

func TestSharedSourcesBuildOnce(t *testing.T) {
	builds := 0
	shared := NewSharedSources(func() (Sources, error) {
		builds++
		return Sources{Primary: newFakePrimary(), Secondary: newFakeSecondary()}, nil
	})

	var wg sync.WaitGroup
	results := make([]Sources, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s, err := shared.Get()
			if err != nil {
				t.Errorf("Get failed: %v", err)
			}
			results[i] = s
		}(i)
	}
	wg.Wait()

	if builds != 1 {
		t.Errorf("builder ran %d times, want 1", builds)
	}
	for i := 1; i < len(results); i++ {
		if results[i].Primary != results[0].Primary {
			t.Fatal("callers must observe the same shared primary instance")
		}
	}
}

func TestSharedSourcesRetryAfterFailure(t *testing.T) {
	builds := 0
	shared := NewSharedSources(func() (Sources, error) {
		builds++
		if builds == 1 {
			return Sources{}, &DownloadError{Source: "test", Err: errors.New("offline")}
		}
		return Sources{Primary: newFakePrimary(), Secondary: newFakeSecondary()}, nil
	})

	if _, err := shared.Get(); err == nil {
		t.Fatal("first Get should fail")
	} else {
		var dl *DownloadError
		if !errors.As(err, &dl) {
			t.Errorf("expected DownloadError, got %v", err)
		}
	}

	if _, err := shared.Get(); err != nil {
		t.Fatalf("second Get should retry and succeed: %v", err)
	}
	if builds != 2 {
		t.Errorf("builder ran %d times, want 2", builds)
	}

	// Success is sticky.
	if _, err := shared.Get(); err != nil {
		t.Fatalf("third Get failed: %v", err)
	}
	if builds != 2 {
		t.Errorf("builder reran after success: %d builds", builds)
	}
}

package ephem

import "strings"

// ZodiacType selects the zodiac reference frame for secondary-source
// lookups that support it.
type ZodiacType int

const (
	ZodiacTropical ZodiacType = iota
	ZodiacSidereal
)

// String returns the zodiac type name.
func (z ZodiacType) String() string {
	if z == ZodiacSidereal {
		return "sidereal"
	}
	return "tropical"
}

// ParseZodiacType parses a zodiac type string; unknown values default to
// tropical.
func ParseZodiacType(s string) ZodiacType {
	if strings.ToLower(strings.TrimSpace(s)) == "sidereal" {
		return ZodiacSidereal
	}
	return ZodiacTropical
}

// Ayanamsa identifies a sidereal reference-frame correction. Meaningful
// only when the zodiac type is sidereal.
type Ayanamsa int

const (
	AyanamsaLahiri Ayanamsa = iota
	AyanamsaFaganBradley
	AyanamsaRaman
	AyanamsaKrishnamurti
)

// String returns the ayanamsa identifier.
func (a Ayanamsa) String() string {
	switch a {
	case AyanamsaFaganBradley:
		return "fagan_bradley"
	case AyanamsaRaman:
		return "raman"
	case AyanamsaKrishnamurti:
		return "krishnamurti"
	default:
		return "lahiri"
	}
}

// ParseAyanamsa parses an ayanamsa identifier; unknown values default to
// lahiri.
func ParseAyanamsa(s string) Ayanamsa {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fagan_bradley", "fagan-bradley":
		return AyanamsaFaganBradley
	case "raman":
		return AyanamsaRaman
	case "krishnamurti":
		return AyanamsaKrishnamurti
	default:
		return AyanamsaLahiri
	}
}

// HouseSystem is a closed enumeration of the supported house systems.
type HouseSystem int

const (
	HousePlacidus HouseSystem = iota
	HouseWholeSign
	HouseKoch
	HouseEqual
	HouseRegiomontanus
	HouseCampanus
	HouseAlcabitius
	HouseMorinus
)

var houseSystemNames = map[HouseSystem]string{
	HousePlacidus:      "placidus",
	HouseWholeSign:     "whole_sign",
	HouseKoch:          "koch",
	HouseEqual:         "equal",
	HouseRegiomontanus: "regiomontanus",
	HouseCampanus:      "campanus",
	HouseAlcabitius:    "alcabitius",
	HouseMorinus:       "morinus",
}

// String returns the house system name.
func (h HouseSystem) String() string {
	if name, ok := houseSystemNames[h]; ok {
		return name
	}
	return "placidus"
}

// ParseHouseSystem parses a house system name; unrecognized values fall
// back to placidus.
func ParseHouseSystem(s string) HouseSystem {
	name := strings.ToLower(strings.TrimSpace(s))
	for sys, n := range houseSystemNames {
		if n == name {
			return sys
		}
	}
	return HousePlacidus
}

// Token returns the single-byte token the secondary backend expects.
func (h HouseSystem) Token() byte {
	switch h {
	case HouseWholeSign:
		return 'W'
	case HouseKoch:
		return 'K'
	case HouseEqual:
		return 'E'
	case HouseRegiomontanus:
		return 'R'
	case HouseCampanus:
		return 'C'
	case HouseAlcabitius:
		return 'A'
	case HouseMorinus:
		return 'M'
	default:
		return 'P'
	}
}

// Settings configures one position calculation.
type Settings struct {
	ZodiacType  ZodiacType
	Ayanamsa    Ayanamsa
	HouseSystem HouseSystem

	// IncludeObjects lists the requested body identifiers. Order is
	// irrelevant; the result is a mapping. Unknown identifiers are
	// silently absent from the result.
	IncludeObjects []string
}

// DefaultSettings returns tropical placidus settings over the full
// default body set.
func DefaultSettings() Settings {
	return Settings{
		ZodiacType:     ZodiacTropical,
		Ayanamsa:       AyanamsaLahiri,
		HouseSystem:    HousePlacidus,
		IncludeObjects: DefaultBodies,
	}
}

package ephem

import "testing"

func TestParseHouseSystem(t *testing.T) {
	tests := []struct {
		input    string
		expected HouseSystem
	}{
		{"placidus", HousePlacidus},
		{"whole_sign", HouseWholeSign},
		{"koch", HouseKoch},
		{"equal", HouseEqual},
		{"regiomontanus", HouseRegiomontanus},
		{"campanus", HouseCampanus},
		{"alcabitius", HouseAlcabitius},
		{"morinus", HouseMorinus},
		{"Placidus", HousePlacidus},
		{"porphyry", HousePlacidus}, // unrecognized falls back
		{"", HousePlacidus},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			if got := ParseHouseSystem(tc.input); got != tc.expected {
				t.Errorf("ParseHouseSystem(%q) = %v, want %v", tc.input, got, tc.expected)
			}
		})
	}
}

func TestHouseSystemToken(t *testing.T) {
	tests := []struct {
		system   HouseSystem
		expected byte
	}{
		{HousePlacidus, 'P'},
		{HouseWholeSign, 'W'},
		{HouseKoch, 'K'},
		{HouseEqual, 'E'},
		{HouseRegiomontanus, 'R'},
		{HouseCampanus, 'C'},
		{HouseAlcabitius, 'A'},
		{HouseMorinus, 'M'},
		{HouseSystem(99), 'P'},
	}

	for _, tc := range tests {
		if got := tc.system.Token(); got != tc.expected {
			t.Errorf("%v.Token() = %c, want %c", tc.system, got, tc.expected)
		}
	}
}

func TestParseZodiacType(t *testing.T) {
	if ParseZodiacType("sidereal") != ZodiacSidereal {
		t.Error("sidereal should parse")
	}
	if ParseZodiacType("tropical") != ZodiacTropical {
		t.Error("tropical should parse")
	}
	if ParseZodiacType("whatever") != ZodiacTropical {
		t.Error("unknown zodiac type should default to tropical")
	}
}

func TestParseAyanamsa(t *testing.T) {
	tests := []struct {
		input    string
		expected Ayanamsa
	}{
		{"lahiri", AyanamsaLahiri},
		{"fagan_bradley", AyanamsaFaganBradley},
		{"fagan-bradley", AyanamsaFaganBradley},
		{"raman", AyanamsaRaman},
		{"krishnamurti", AyanamsaKrishnamurti},
		{"unknown", AyanamsaLahiri},
	}

	for _, tc := range tests {
		if got := ParseAyanamsa(tc.input); got != tc.expected {
			t.Errorf("ParseAyanamsa(%q) = %v, want %v", tc.input, got, tc.expected)
		}
	}
}

package astro

import "testing"

func TestSignName(t *testing.T) {
	tests := []struct {
		lon      float64
		expected string
	}{
		{0, "Aries"},
		{29.999, "Aries"},
		{30, "Taurus"},
		{75, "Gemini"},
		{180, "Libra"},
		{359.9, "Pisces"},
		{360, "Aries"},
		{-10, "Pisces"},
	}

	for _, tc := range tests {
		if got := SignName(tc.lon); got != tc.expected {
			t.Errorf("SignName(%v) = %q, want %q", tc.lon, got, tc.expected)
		}
	}
}

func TestFormatZodiac(t *testing.T) {
	tests := []struct {
		lon      float64
		expected string
	}{
		{0, "0°00' Aries"},
		{77.7, "17°42' Gemini"},
		{290.5, "20°30' Capricorn"},
	}

	for _, tc := range tests {
		if got := FormatZodiac(tc.lon); got != tc.expected {
			t.Errorf("FormatZodiac(%v) = %q, want %q", tc.lon, got, tc.expected)
		}
	}
}

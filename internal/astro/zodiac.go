package astro

import "fmt"

// signNames are the twelve zodiac signs in longitude order.
var signNames = [12]string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

// SignName returns the zodiac sign containing an ecliptic longitude.
func SignName(lonDeg float64) string {
	lon := Normalize360(lonDeg)
	return signNames[int(lon/30)%12]
}

// FormatZodiac renders an ecliptic longitude as degrees and minutes
// within its sign, e.g. "17°42' Gemini".
func FormatZodiac(lonDeg float64) string {
	lon := Normalize360(lonDeg)
	inSign := lon - 30*float64(int(lon/30))
	deg := int(inSign)
	min := int((inSign - float64(deg)) * 60)
	return fmt.Sprintf("%d°%02d' %s", deg, min, SignName(lon))
}

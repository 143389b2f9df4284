// Package astro provides angle arithmetic and time conversions shared by
// the ephemeris sources and the resolution engine.
package astro

import "math"

// Normalize360 wraps an angle in degrees into [0, 360).
func Normalize360(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// SignedDelta returns the signed angular difference to-from in degrees,
// in (-180, 180]. Naive subtraction misclassifies motion across the
// 0°/360° seam; every longitude comparison goes through here.
func SignedDelta(from, to float64) float64 {
	d := Normalize360(to - from)
	if d > 180 {
		d -= 360
	}
	return d
}

// Deg2Rad converts degrees to radians.
func Deg2Rad(deg float64) float64 {
	return deg * math.Pi / 180
}

// Rad2Deg converts radians to degrees.
func Rad2Deg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// SinD returns the sine of an angle given in degrees.
func SinD(deg float64) float64 {
	return math.Sin(Deg2Rad(deg))
}

// CosD returns the cosine of an angle given in degrees.
func CosD(deg float64) float64 {
	return math.Cos(Deg2Rad(deg))
}

// TanD returns the tangent of an angle given in degrees.
func TanD(deg float64) float64 {
	return math.Tan(Deg2Rad(deg))
}

// ClampedAsinD returns asin(x) in degrees with x clamped to [-1, 1].
// The clamp absorbs floating point spill and the circumpolar case in
// ascensional-difference terms at high latitudes.
func ClampedAsinD(x float64) float64 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}
	return Rad2Deg(math.Asin(x))
}

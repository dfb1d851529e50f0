package chart

import (
	"math"
	"time"

	"github.com/aristath/kundali/pkg/formulas"
)

const (
	unixEpochJD = 2440587.5
	j2000JD     = 2451545.0
)

// JulianDay converts an instant to a Julian day number (UT).
func JulianDay(t time.Time) float64 {
	const secondsPerDay = 86400.0
	u := t.UTC()
	return float64(u.Unix())/secondsPerDay + float64(u.Nanosecond())/(secondsPerDay*1e9) + unixEpochJD
}

// siderealTime returns the Greenwich mean sidereal time in degrees.
func siderealTime(jd float64) float64 {
	d := jd - j2000JD
	t := d / 36525
	gmst := 280.46061837 + 360.98564736629*d + 0.000387933*t*t - t*t*t/38710000
	return formulas.NormalizeDegrees(gmst)
}

// meanObliquity returns the mean obliquity of the ecliptic in degrees.
func meanObliquity(jd float64) float64 {
	t := (jd - j2000JD) / 36525
	return 23.439291111 - 0.013004167*t - 1.64e-7*t*t + 5.04e-7*t*t*t
}

// TropicalAscendant computes the tropical longitude of the ascendant for an
// instant and a location (east longitude and north latitude positive).
func TropicalAscendant(t time.Time, latitude, longitude float64) float64 {
	jd := JulianDay(t)
	ramc := formulas.Radians(formulas.NormalizeDegrees(siderealTime(jd) + longitude))
	eps := formulas.Radians(meanObliquity(jd))
	phi := formulas.Radians(latitude)

	asc := math.Atan2(math.Cos(ramc), -(math.Sin(ramc)*math.Cos(eps) + math.Tan(phi)*math.Sin(eps)))
	return formulas.NormalizeDegrees(formulas.Degrees(asc))
}

// LahiriAyanamsa approximates the Lahiri (Chitrapaksha) ayanamsa with a linear
// precession rate around its J2000 value. Callers with an ephemeris-grade
// value should pass that instead.
func LahiriAyanamsa(t time.Time) float64 {
	const (
		atJ2000        = 23.853
		degreesPerYear = 50.29 / 3600
	)
	years := (JulianDay(t) - j2000JD) / 365.25
	return atJ2000 + years*degreesPerYear
}

package domain

import "math"

// Zodiac geometry.
const (
	SignCount      = 12
	NakshatraCount = 27
	SignSpan       = 30.0
	NakshatraSpan  = 360.0 / NakshatraCount // 13°20′
	PadaSpan       = NakshatraSpan / 4      // 3°20′
	NavamshaSpan   = SignSpan / 9           // 3°20′
)

// NoHouse is the sentinel house number for a component without data.
const NoHouse = -1

// Sign is a zodiac sign index, Aries = 0 through Pisces = 11.
type Sign int

const (
	Aries Sign = iota
	Taurus
	Gemini
	Cancer
	Leo
	Virgo
	Libra
	Scorpio
	Sagittarius
	Capricorn
	Aquarius
	Pisces
)

// NoSign is the sentinel sign for a component without data.
const NoSign Sign = -1

var signNames = [SignCount]string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

// Valid reports whether s is a real sign rather than the sentinel.
func (s Sign) Valid() bool {
	return s >= Aries && s <= Pisces
}

// String returns the sign name, or "none" for the sentinel.
func (s Sign) String() string {
	if !s.Valid() {
		return "none"
	}
	return signNames[s]
}

// Add moves n signs forward (n may be negative). The sentinel stays the sentinel.
func (s Sign) Add(n int) Sign {
	if !s.Valid() {
		return NoSign
	}
	return Sign(((int(s)+n)%SignCount + SignCount) % SignCount)
}

// Modality is the movable/fixed/dual quality of a sign.
type Modality string

const (
	Movable Modality = "movable"
	Fixed   Modality = "fixed"
	Dual    Modality = "dual"
)

// Modality returns the sign's quality.
func (s Sign) Modality() Modality {
	switch int(s) % 3 {
	case 0:
		return Movable
	case 1:
		return Fixed
	}
	return Dual
}

// SignOf returns the sign for a sidereal longitude. Boundaries are
// right-continuous: 90.0° is Cancer, not Gemini.
func SignOf(longitude float64) Sign {
	return Sign(int(math.Floor(longitude/SignSpan)) % SignCount)
}

// NakshatraOf returns the nakshatra index [0,26] and pada [1,4] for a sidereal longitude.
func NakshatraOf(longitude float64) (int, int) {
	idx := int(math.Floor(longitude/NakshatraSpan)) % NakshatraCount
	within := longitude - float64(idx)*NakshatraSpan
	pada := int(math.Floor(within/PadaSpan)) + 1
	if pada > 4 {
		pada = 4
	}
	return idx, pada
}

// NakshatraFraction returns how much of its nakshatra the longitude has traversed, in [0,1).
func NakshatraFraction(longitude float64) float64 {
	idx, _ := NakshatraOf(longitude)
	return (longitude - float64(idx)*NakshatraSpan) / NakshatraSpan
}

// HouseFrom counts the house of sign from a reference sign: the reference is
// house 1. Either side being the sentinel yields NoHouse.
func HouseFrom(sign, reference Sign) int {
	if !sign.Valid() || !reference.Valid() {
		return NoHouse
	}
	return ((int(sign)-int(reference)+SignCount)%SignCount + 1)
}

// SignAtHouse is the inverse of HouseFrom.
func SignAtHouse(house int, reference Sign) Sign {
	if !ValidHouse(house) || !reference.Valid() {
		return NoSign
	}
	return reference.Add(house - 1)
}

// ValidHouse reports whether h is in [1,12].
func ValidHouse(h int) bool {
	return h >= 1 && h <= SignCount
}

// House groupings.
var (
	Kendras    = []int{1, 4, 7, 10}
	Trikonas   = []int{1, 5, 9}
	Dusthanas  = []int{6, 8, 12}
	Upachayas  = []int{3, 6, 10, 11}
	Panapharas = []int{2, 5, 8, 11}
	Apoklimas  = []int{3, 6, 9, 12}
)

// InHouses reports whether h is one of houses. The sentinel never matches.
func InHouses(h int, houses []int) bool {
	if !ValidHouse(h) {
		return false
	}
	for _, candidate := range houses {
		if candidate == h {
			return true
		}
	}
	return false
}

// IsKendra reports whether h is an angular house.
func IsKendra(h int) bool { return InHouses(h, Kendras) }

// IsTrikona reports whether h is a trinal house.
func IsTrikona(h int) bool { return InHouses(h, Trikonas) }

// IsDusthana reports whether h is a difficult house.
func IsDusthana(h int) bool { return InHouses(h, Dusthanas) }

// IsUpachaya reports whether h is a growth house.
func IsUpachaya(h int) bool { return InHouses(h, Upachayas) }

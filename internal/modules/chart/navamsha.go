package chart

import (
	"math"

	"github.com/aristath/kundali/internal/domain"
)

// NavamshaSign returns the D9 sign for a sidereal longitude. Movable signs
// count their nine segments from themselves, fixed signs from the ninth sign
// (8 ahead) and dual signs from the fifth (4 ahead).
func NavamshaSign(longitude float64) domain.Sign {
	sign := domain.SignOf(longitude)
	segment := int(math.Floor((longitude - float64(sign)*domain.SignSpan) / domain.NavamshaSpan))
	if segment > 8 {
		segment = 8
	}

	var start domain.Sign
	switch sign.Modality() {
	case domain.Movable:
		start = sign
	case domain.Fixed:
		start = sign.Add(8)
	default:
		start = sign.Add(4)
	}
	return start.Add(segment)
}

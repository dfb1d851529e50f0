package chart

import (
	"context"
	"fmt"
	"time"

	"github.com/aristath/kundali/internal/domain"
)

// RawPosition is what the ephemeris supplies for one body: a tropical
// longitude in degrees and the daily motion (negative when retrograde).
type RawPosition struct {
	Longitude float64 `json:"longitude"`
	Speed     float64 `json:"speed"`
}

// Input is everything the builder needs. Birth carries its own UTC offset.
// Ascendant, Location, Strengths and Avasthas are optional.
type Input struct {
	Birth     time.Time                        `json:"birth"`
	Location  *domain.Location                 `json:"location,omitempty"`
	Ayanamsa  float64                          `json:"ayanamsa"`
	Ascendant *float64                         `json:"ascendant,omitempty"` // tropical
	Positions map[domain.Planet]RawPosition    `json:"positions"`
	Strengths map[domain.Planet]float64        `json:"strengths,omitempty"`
	Avasthas  map[domain.Planet]domain.Avastha `json:"avasthas,omitempty"`
}

// PositionProvider is the external ephemeris.
type PositionProvider interface {
	Positions(ctx context.Context, instant time.Time, loc *domain.Location) (map[domain.Planet]RawPosition, error)
}

// StaticProvider serves a fixed set of positions regardless of the instant.
type StaticProvider struct {
	positions map[domain.Planet]RawPosition
}

// NewStaticProvider creates a provider over a copy of positions.
func NewStaticProvider(positions map[domain.Planet]RawPosition) *StaticProvider {
	copied := make(map[domain.Planet]RawPosition, len(positions))
	for p, pos := range positions {
		copied[p] = pos
	}
	return &StaticProvider{positions: copied}
}

// Positions implements PositionProvider.
func (s *StaticProvider) Positions(ctx context.Context, _ time.Time, _ *domain.Location) (map[domain.Planet]RawPosition, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	copied := make(map[domain.Planet]RawPosition, len(s.positions))
	for p, pos := range s.positions {
		copied[p] = pos
	}
	return copied, nil
}

// InputFromProvider asks the provider for positions and assembles an Input.
func InputFromProvider(
	ctx context.Context,
	provider PositionProvider,
	birth time.Time,
	loc *domain.Location,
	ayanamsa float64,
) (Input, error) {
	positions, err := provider.Positions(ctx, birth, loc)
	if err != nil {
		return Input{}, fmt.Errorf("failed to fetch positions: %w", err)
	}
	return Input{
		Birth:     birth,
		Location:  loc,
		Ayanamsa:  ayanamsa,
		Positions: positions,
	}, nil
}

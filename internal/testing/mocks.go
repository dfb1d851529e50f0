package testing

import (
	"context"
	"sync"
	"time"

	"github.com/aristath/kundali/internal/domain"
	"github.com/aristath/kundali/internal/modules/chart"
)

// MockProvider is a mock chart.PositionProvider for testing.
type MockProvider struct {
	mu        sync.RWMutex
	positions map[domain.Planet]chart.RawPosition
	err       error
	calls     int
}

// NewMockProvider creates a new mock provider with no positions.
func NewMockProvider() *MockProvider {
	return &MockProvider{
		positions: make(map[domain.Planet]chart.RawPosition),
	}
}

// SetPositions sets the positions to return
func (m *MockProvider) SetPositions(positions map[domain.Planet]chart.RawPosition) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.positions = positions
}

// SetError sets the error to return
func (m *MockProvider) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// Calls returns how many times Positions was called.
func (m *MockProvider) Calls() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.calls
}

// Positions implements chart.PositionProvider.
func (m *MockProvider) Positions(ctx context.Context, _ time.Time, _ *domain.Location) (map[domain.Planet]chart.RawPosition, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if m.err != nil {
		return nil, m.err
	}
	copied := make(map[domain.Planet]chart.RawPosition, len(m.positions))
	for p, pos := range m.positions {
		copied[p] = pos
	}
	return copied, nil
}

// SamplePositions returns a complete set of tropical positions for a chart
// with a known shape. With a zero ayanamsa and an ascendant at 15° the Lagna
// is Aries; the Moon sits in Aries and Jupiter in Cancer, exalted, in the
// fourth house from both.
func SamplePositions() map[domain.Planet]chart.RawPosition {
	return map[domain.Planet]chart.RawPosition{
		domain.Sun:     {Longitude: 100, Speed: 0.95},
		domain.Moon:    {Longitude: 10, Speed: 13.2},
		domain.Mars:    {Longitude: 200, Speed: 0.6},
		domain.Mercury: {Longitude: 104, Speed: -0.4},
		domain.Jupiter: {Longitude: 95, Speed: 0.1},
		domain.Venus:   {Longitude: 60, Speed: 1.2},
		domain.Saturn:  {Longitude: 290, Speed: -0.05},
		domain.Rahu:    {Longitude: 310, Speed: -0.05},
	}
}

// SampleInput returns a complete chart.Input built on SamplePositions.
func SampleInput() chart.Input {
	asc := 15.0
	return chart.Input{
		Birth:     time.Date(1990, 6, 15, 8, 30, 0, 0, time.FixedZone("IST", 5*3600+1800)),
		Ascendant: &asc,
		Positions: SamplePositions(),
	}
}

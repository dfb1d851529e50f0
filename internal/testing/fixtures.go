// Package testing provides chart fixtures and mocks shared by the module tests.
package testing

import (
	"github.com/aristath/kundali/internal/domain"
	"github.com/aristath/kundali/internal/modules/astro"
	"github.com/aristath/kundali/internal/modules/chart"
	"github.com/aristath/kundali/internal/modules/tables"
	"github.com/rs/zerolog"
)

// MustTables returns the embedded reference tables or panics.
func MustTables() *tables.Reference {
	ref, err := tables.Default()
	if err != nil {
		panic(err)
	}
	return ref
}

type fixturePosition struct {
	longitude float64
	speed     float64
}

// ChartFixture assembles a chart straight from sidereal longitudes. Unlike the
// builder it accepts any subset of planets, so a test only places the bodies
// its rule looks at; everything else reads as missing.
type ChartFixture struct {
	lagna        domain.Sign
	positions    map[domain.Planet]fixturePosition
	strengths    map[domain.Planet]float64
	avasthas     map[domain.Planet]domain.Avastha
	navamsha     map[domain.Planet]domain.Sign
	omitNavamsha bool
}

// NewChartFixture starts a chart with the given Lagna sign. Pass domain.NoSign
// for a chart without an ascendant.
func NewChartFixture(lagna domain.Sign) *ChartFixture {
	return &ChartFixture{
		lagna:     lagna,
		positions: make(map[domain.Planet]fixturePosition),
		navamsha:  make(map[domain.Planet]domain.Sign),
	}
}

// Place puts p at a sidereal longitude with direct motion.
func (f *ChartFixture) Place(p domain.Planet, longitude float64) *ChartFixture {
	f.positions[p] = fixturePosition{longitude: longitude, speed: 1}
	return f
}

// PlaceInSign puts p three degrees into sign s.
func (f *ChartFixture) PlaceInSign(p domain.Planet, s domain.Sign) *ChartFixture {
	return f.Place(p, float64(s)*domain.SignSpan+3)
}

// PlaceInHouse puts p in house h counted from the fixture's Lagna.
func (f *ChartFixture) PlaceInHouse(p domain.Planet, h int) *ChartFixture {
	return f.PlaceInSign(p, domain.SignAtHouse(h, f.lagna))
}

// Retrograde puts p at a longitude with retrograde motion.
func (f *ChartFixture) Retrograde(p domain.Planet, longitude float64) *ChartFixture {
	f.positions[p] = fixturePosition{longitude: longitude, speed: -1}
	return f
}

// Strength supplies a shadbala value in rupas.
func (f *ChartFixture) Strength(p domain.Planet, rupas float64) *ChartFixture {
	if f.strengths == nil {
		f.strengths = make(map[domain.Planet]float64)
	}
	f.strengths[p] = rupas
	return f
}

// Avastha supplies ishta and kashta phala for p.
func (f *ChartFixture) Avastha(p domain.Planet, ishta, kashta float64) *ChartFixture {
	if f.avasthas == nil {
		f.avasthas = make(map[domain.Planet]domain.Avastha)
	}
	f.avasthas[p] = domain.Avastha{IshtaPhala: ishta, KashtaPhala: kashta}
	return f
}

// Navamsha overrides the derived navamsha sign of p.
func (f *ChartFixture) Navamsha(p domain.Planet, s domain.Sign) *ChartFixture {
	f.navamsha[p] = s
	return f
}

// WithoutNavamsha drops the navamsha map entirely.
func (f *ChartFixture) WithoutNavamsha() *ChartFixture {
	f.omitNavamsha = true
	return f
}

// Chart builds the fixture.
func (f *ChartFixture) Chart() *domain.Chart {
	builder := chart.NewBuilder(MustTables(), zerolog.Nop())

	c := &domain.Chart{
		Lagna:     domain.Ascendant{Sign: domain.NoSign, Navamsha: domain.NoSign},
		Planets:   make(map[domain.Planet]domain.PlanetPosition, len(f.positions)),
		Strengths: f.strengths,
		Avasthas:  f.avasthas,
	}
	if f.lagna.Valid() {
		lon := float64(f.lagna)*domain.SignSpan + domain.SignSpan/2
		nakshatra, pada := domain.NakshatraOf(lon)
		c.Lagna = domain.Ascendant{
			Known:     true,
			Longitude: lon,
			Sign:      f.lagna,
			Nakshatra: nakshatra,
			Pada:      pada,
			Navamsha:  chart.NavamshaSign(lon),
		}
	}
	if !f.omitNavamsha {
		c.Navamsha = make(map[domain.Planet]domain.Sign, len(f.positions))
	}

	for p, raw := range f.positions {
		pos := builder.Place(p, raw.longitude, raw.speed, f.lagna)
		if s, ok := f.navamsha[p]; ok {
			pos.Navamsha = s
		}
		c.Planets[p] = pos
		if c.Navamsha != nil {
			c.Navamsha[p] = pos.Navamsha
		}
	}
	return c
}

// Context builds the fixture and wraps it in an astro.Context.
func (f *ChartFixture) Context() *astro.Context {
	return astro.New(f.Chart(), MustTables())
}

// Package astro provides the astrological context: a read-only query facade
// over a built chart. Every rule module asks its questions through a Context,
// so house counting, aspects, dignity and strength are implemented exactly once.
//
// All queries are total. A planet missing from the chart, or a sentinel
// reference sign, yields NoSign/NoHouse/false/empty rather than an error, so
// predicates built on top evaluate to "no match".
package astro

import (
	"github.com/aristath/kundali/internal/domain"
	"github.com/aristath/kundali/internal/modules/tables"
	"github.com/aristath/kundali/pkg/formulas"
)

// Context answers chart questions. It never mutates the chart and is safe
// for concurrent use by rule modules.
type Context struct {
	chart  *domain.Chart
	tables *tables.Reference
}

// New creates a Context over an immutable chart.
func New(chart *domain.Chart, ref *tables.Reference) *Context {
	return &Context{chart: chart, tables: ref}
}

// Chart returns the underlying chart.
func (c *Context) Chart() *domain.Chart {
	return c.chart
}

// Tables returns the reference tables in use.
func (c *Context) Tables() *tables.Reference {
	return c.tables
}

func (c *Context) position(p domain.Planet) (domain.PlanetPosition, bool) {
	return c.chart.Position(p)
}

// Has reports whether the chart carries data for p.
func (c *Context) Has(p domain.Planet) bool {
	_, ok := c.position(p)
	return ok
}

// LagnaSign returns the ascendant sign, or NoSign when unknown.
func (c *Context) LagnaSign() domain.Sign {
	return c.chart.LagnaSign()
}

// Sign returns the sign p occupies.
func (c *Context) Sign(p domain.Planet) domain.Sign {
	pos, ok := c.position(p)
	if !ok {
		return domain.NoSign
	}
	return pos.Sign
}

// MoonSign returns the Moon's sign.
func (c *Context) MoonSign() domain.Sign { return c.Sign(domain.Moon) }

// SunSign returns the Sun's sign.
func (c *Context) SunSign() domain.Sign { return c.Sign(domain.Sun) }

// Longitude returns the sidereal longitude of p, or -1 without data.
func (c *Context) Longitude(p domain.Planet) float64 {
	pos, ok := c.position(p)
	if !ok {
		return -1
	}
	return pos.Longitude
}

// DegreeInSign returns the degrees p has travelled in its sign, or -1 without data.
func (c *Context) DegreeInSign(p domain.Planet) float64 {
	pos, ok := c.position(p)
	if !ok {
		return -1
	}
	return pos.DegreeInSign()
}

// IsRetrograde reports the retrograde flag of p.
func (c *Context) IsRetrograde(p domain.Planet) bool {
	pos, ok := c.position(p)
	return ok && pos.Retrograde
}

// House returns the house of p counted from the Lagna.
func (c *Context) House(p domain.Planet) int {
	return c.HouseFrom(p, c.LagnaSign())
}

// HouseFrom returns the house of p counted from any reference sign.
func (c *Context) HouseFrom(p domain.Planet, reference domain.Sign) int {
	return domain.HouseFrom(c.Sign(p), reference)
}

// HouseFromPlanet returns the house of p counted from the sign of another planet.
func (c *Context) HouseFromPlanet(p, reference domain.Planet) int {
	return c.HouseFrom(p, c.Sign(reference))
}

// SignOfHouse returns the sign on house h counted from reference.
func (c *Context) SignOfHouse(h int, reference domain.Sign) domain.Sign {
	return domain.SignAtHouse(h, reference)
}

// SignLord returns the ruler of a sign.
func (c *Context) SignLord(s domain.Sign) domain.Planet {
	return c.tables.SignLord(s)
}

// HouseLord returns the lord of house h counted from reference, or "" for a sentinel.
func (c *Context) HouseLord(h int, reference domain.Sign) domain.Planet {
	return c.SignLord(c.SignOfHouse(h, reference))
}

// LagnaLord returns the lord of house h counted from the Lagna.
func (c *Context) LagnaLord(h int) domain.Planet {
	return c.HouseLord(h, c.LagnaSign())
}

// Dispositor returns the lord of the sign p occupies.
func (c *Context) Dispositor(p domain.Planet) domain.Planet {
	return c.SignLord(c.Sign(p))
}

// PlanetsInSign lists the planets occupying s in canonical order.
func (c *Context) PlanetsInSign(s domain.Sign) []domain.Planet {
	if !s.Valid() {
		return nil
	}
	var result []domain.Planet
	for _, p := range domain.AllPlanets {
		if c.Sign(p) == s {
			result = append(result, p)
		}
	}
	return result
}

// PlanetsInHouse lists the planets in house h counted from reference.
func (c *Context) PlanetsInHouse(h int, reference domain.Sign) []domain.Planet {
	return c.PlanetsInSign(c.SignOfHouse(h, reference))
}

// PlanetsInHouses lists the planets in any of houses, counted from reference,
// in canonical order.
func (c *Context) PlanetsInHouses(houses []int, reference domain.Sign) []domain.Planet {
	var result []domain.Planet
	for _, p := range domain.AllPlanets {
		if domain.InHouses(c.HouseFrom(p, reference), houses) {
			result = append(result, p)
		}
	}
	return result
}

// IsWaxingMoon reports whether the Moon is between new and full, i.e. less
// than 180° ahead of the Sun.
func (c *Context) IsWaxingMoon() bool {
	if !c.Has(domain.Sun) || !c.Has(domain.Moon) {
		return false
	}
	elongation := formulas.ForwardDistance(c.Longitude(domain.Sun), c.Longitude(domain.Moon))
	return elongation > 0 && elongation < 180
}

// NavamshaSign returns the D9 sign of p when a navamsha map is present.
func (c *Context) NavamshaSign(p domain.Planet) (domain.Sign, bool) {
	if c.chart.Navamsha == nil {
		return domain.NoSign, false
	}
	s, ok := c.chart.Navamsha[p]
	if !ok || !s.Valid() {
		return domain.NoSign, false
	}
	return s, true
}

// IsVargottama reports whether p occupies the same sign in the rasi and navamsha charts.
func (c *Context) IsVargottama(p domain.Planet) bool {
	nav, ok := c.NavamshaSign(p)
	return ok && nav == c.Sign(p)
}

// SuppliedStrength returns the externally supplied shadbala of p, in rupas.
func (c *Context) SuppliedStrength(p domain.Planet) (float64, bool) {
	if c.chart.Strengths == nil {
		return 0, false
	}
	v, ok := c.chart.Strengths[p]
	return v, ok
}

// Phala returns the supplied ishta and kashta phala of p.
func (c *Context) Phala(p domain.Planet) (float64, float64, bool) {
	if c.chart.Avasthas == nil {
		return 0, 0, false
	}
	a, ok := c.chart.Avasthas[p]
	if !ok {
		return 0, 0, false
	}
	return a.IshtaPhala, a.KashtaPhala, true
}

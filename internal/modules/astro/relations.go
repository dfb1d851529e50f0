package astro

import (
	"github.com/aristath/kundali/internal/domain"
	"github.com/aristath/kundali/pkg/formulas"
)

// IsConjunct reports whether two different planets share a sign.
func (c *Context) IsConjunct(a, b domain.Planet) bool {
	if a == b {
		return false
	}
	sa := c.Sign(a)
	return sa.Valid() && sa == c.Sign(b)
}

// Separation returns the angular distance between two planets, or -1 when
// either is missing.
func (c *Context) Separation(a, b domain.Planet) float64 {
	if !c.Has(a) || !c.Has(b) {
		return -1
	}
	return formulas.AngularDistance(c.Longitude(a), c.Longitude(b))
}

// Aspects reports whether from casts its aspect on to. Aspects are counted
// whole-sign from the aspecting planet: Mars 4/7/8, Jupiter and the nodes
// 5/7/9, Saturn 3/7/10, everyone else 7.
func (c *Context) Aspects(from, to domain.Planet) bool {
	if from == to {
		return false
	}
	return c.AspectsSign(from, c.Sign(to))
}

// AspectsSign reports whether from aspects a sign.
func (c *Context) AspectsSign(from domain.Planet, s domain.Sign) bool {
	h := domain.HouseFrom(s, c.Sign(from))
	return domain.InHouses(h, c.tables.AspectHouses(from))
}

// AspectsHouse reports whether from aspects house h counted from reference.
func (c *Context) AspectsHouse(from domain.Planet, h int, reference domain.Sign) bool {
	return c.AspectsSign(from, c.SignOfHouse(h, reference))
}

// AspectedBy lists the planets aspecting p in canonical order.
func (c *Context) AspectedBy(p domain.Planet) []domain.Planet {
	var result []domain.Planet
	for _, other := range domain.AllPlanets {
		if c.Aspects(other, p) {
			result = append(result, other)
		}
	}
	return result
}

// MutualAspect reports whether a and b aspect each other.
func (c *Context) MutualAspect(a, b domain.Planet) bool {
	return c.Aspects(a, b) && c.Aspects(b, a)
}

// Owns reports whether p rules sign s.
func (c *Context) Owns(p domain.Planet, s domain.Sign) bool {
	return s.Valid() && c.SignLord(s) == p
}

// InSignExchange reports a parivartana: each planet occupies a sign ruled by the other.
func (c *Context) InSignExchange(a, b domain.Planet) bool {
	if a == b {
		return false
	}
	return c.Owns(b, c.Sign(a)) && c.Owns(a, c.Sign(b))
}

// IsConnected reports whether two planets are conjunct, mutually aspecting,
// or in sign exchange.
func (c *Context) IsConnected(a, b domain.Planet) bool {
	if a == "" || b == "" {
		return false
	}
	return c.IsConjunct(a, b) || c.MutualAspect(a, b) || c.InSignExchange(a, b)
}

// naturallyMalefic is the static classification without Mercury's adjustment.
func (c *Context) naturallyMalefic(p domain.Planet) bool {
	return p.Valid() && p != domain.Mercury && !c.tables.IsNaturalBenefic(p)
}

// mercuryAfflicted reports whether Mercury turns malefic: it does when it
// shares a sign with a natural malefic and is not in its own, moolatrikona or
// exaltation sign.
func (c *Context) mercuryAfflicted() bool {
	if !c.Has(domain.Mercury) || c.Dignity(domain.Mercury).IsStrongDignity() {
		return false
	}
	for _, p := range domain.AllPlanets {
		if c.naturallyMalefic(p) && c.IsConjunct(domain.Mercury, p) {
			return true
		}
	}
	return false
}

// IsBenefic reports whether p counts as a natural benefic in this chart.
func (c *Context) IsBenefic(p domain.Planet) bool {
	if !c.Has(p) {
		return false
	}
	if p == domain.Mercury {
		return !c.mercuryAfflicted()
	}
	return c.tables.IsNaturalBenefic(p)
}

// IsMalefic reports whether p counts as a natural malefic in this chart.
func (c *Context) IsMalefic(p domain.Planet) bool {
	if !c.Has(p) {
		return false
	}
	if p == domain.Mercury {
		return c.mercuryAfflicted()
	}
	return c.naturallyMalefic(p)
}

// NaturalBenefics lists the chart's benefics in canonical order.
func (c *Context) NaturalBenefics() []domain.Planet {
	var result []domain.Planet
	for _, p := range domain.AllPlanets {
		if c.IsBenefic(p) {
			result = append(result, p)
		}
	}
	return result
}

// NaturalMalefics lists the chart's malefics in canonical order.
func (c *Context) NaturalMalefics() []domain.Planet {
	var result []domain.Planet
	for _, p := range domain.AllPlanets {
		if c.IsMalefic(p) {
			result = append(result, p)
		}
	}
	return result
}

// Benefics filters planets down to the benefic ones.
func (c *Context) Benefics(planets []domain.Planet) []domain.Planet {
	var result []domain.Planet
	for _, p := range planets {
		if c.IsBenefic(p) {
			result = append(result, p)
		}
	}
	return result
}

// Malefics filters planets down to the malefic ones.
func (c *Context) Malefics(planets []domain.Planet) []domain.Planet {
	var result []domain.Planet
	for _, p := range planets {
		if c.IsMalefic(p) {
			result = append(result, p)
		}
	}
	return result
}

// AspectedByBenefic reports whether any benefic other than p aspects it.
func (c *Context) AspectedByBenefic(p domain.Planet) bool {
	for _, other := range c.AspectedBy(p) {
		if c.IsBenefic(other) {
			return true
		}
	}
	return false
}

// AspectedByMalefic reports whether any malefic other than p aspects it.
func (c *Context) AspectedByMalefic(p domain.Planet) bool {
	for _, other := range c.AspectedBy(p) {
		if c.IsMalefic(other) {
			return true
		}
	}
	return false
}

// ConjunctMalefic reports whether p shares its sign with a malefic.
func (c *Context) ConjunctMalefic(p domain.Planet) bool {
	for _, other := range c.PlanetsInSign(c.Sign(p)) {
		if other != p && c.IsMalefic(other) {
			return true
		}
	}
	return false
}

// ConjunctBenefic reports whether p shares its sign with a benefic.
func (c *Context) ConjunctBenefic(p domain.Planet) bool {
	for _, other := range c.PlanetsInSign(c.Sign(p)) {
		if other != p && c.IsBenefic(other) {
			return true
		}
	}
	return false
}

// IsAfflicted reports whether p is debilitated, combust, or conjunct or
// aspected by a malefic.
func (c *Context) IsAfflicted(p domain.Planet) bool {
	if !c.Has(p) {
		return false
	}
	return c.Dignity(p) == domain.DignityDebilitated ||
		c.IsCombust(p) ||
		c.ConjunctMalefic(p) ||
		c.AspectedByMalefic(p)
}

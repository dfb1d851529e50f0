package astro

import (
	"github.com/aristath/kundali/internal/domain"
	"github.com/aristath/kundali/pkg/formulas"
)

// Rule-level strength multipliers used by StrengthOf.
const (
	multiplierExalted      = 1.5
	multiplierMoolatrikona = 1.3
	multiplierOwn          = 1.2
	multiplierNeutral      = 1.0
	multiplierDebilitated  = 0.5
	multiplierCombust      = 0.75
)

// Dignity returns the dignity of p from its sign and degree.
func (c *Context) Dignity(p domain.Planet) domain.Dignity {
	pos, ok := c.position(p)
	if !ok {
		return domain.DignityNeutral
	}
	return c.tables.Dignity(p, pos.Sign, pos.DegreeInSign())
}

// IsExalted reports whether p is exalted.
func (c *Context) IsExalted(p domain.Planet) bool {
	return c.Dignity(p) == domain.DignityExalted
}

// IsDebilitated reports whether p is debilitated.
func (c *Context) IsDebilitated(p domain.Planet) bool {
	return c.Has(p) && c.Dignity(p) == domain.DignityDebilitated
}

// IsCombust reports whether p is within its combustion orb of the Sun. The
// Sun and the nodes never combust.
func (c *Context) IsCombust(p domain.Planet) bool {
	if p == domain.Sun || !c.Has(p) || !c.Has(domain.Sun) {
		return false
	}
	orb, ok := c.tables.CombustOrb(p, c.IsRetrograde(p))
	if !ok {
		return false
	}
	return c.Separation(p, domain.Sun) < orb
}

// IsStrong reports whether p is exalted, in moolatrikona or own sign, or has
// a supplied shadbala at or above its required minimum.
func (c *Context) IsStrong(p domain.Planet) bool {
	if !c.Has(p) {
		return false
	}
	if c.Dignity(p).IsStrongDignity() {
		return true
	}
	rupas, ok := c.SuppliedStrength(p)
	required := c.tables.RequiredRupas(p)
	return ok && required > 0 && rupas >= required
}

// StrengthOf aggregates the rule-level strength of a group of planets: the
// mean of per-planet dignity multipliers, reduced for combustion. Missing
// planets are ignored; an empty group scores 0.
func (c *Context) StrengthOf(planets ...domain.Planet) float64 {
	values := make([]float64, 0, len(planets))
	for _, p := range planets {
		if !c.Has(p) {
			continue
		}
		m := dignityMultiplier(c.Dignity(p))
		if c.IsCombust(p) {
			m *= multiplierCombust
		}
		values = append(values, m)
	}
	return formulas.Mean(values)
}

func dignityMultiplier(d domain.Dignity) float64 {
	switch d {
	case domain.DignityExalted:
		return multiplierExalted
	case domain.DignityMoolatrikona:
		return multiplierMoolatrikona
	case domain.DignityOwn:
		return multiplierOwn
	case domain.DignityDebilitated:
		return multiplierDebilitated
	}
	return multiplierNeutral
}

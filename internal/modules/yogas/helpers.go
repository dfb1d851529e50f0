package yogas

import (
	"math"

	"github.com/aristath/kundali/internal/domain"
	"github.com/aristath/kundali/internal/modules/astro"
	"github.com/aristath/kundali/pkg/formulas"
)

// params is shorthand for a finding's template parameters.
type params = map[string]any

func planets(ps ...domain.Planet) []domain.Planet {
	return ps
}

// ruleStrength scales a rule's base strength by the dignity of the planets
// that form it and rounds to a whole number in [1,10].
func ruleStrength(ctx *astro.Context, base float64, ps ...domain.Planet) float64 {
	m := ctx.StrengthOf(ps...)
	if m == 0 {
		m = 1
	}
	return formulas.Clamp(math.Round(base*m), MinStrength, MaxStrength)
}

// lagnaKnown gates every rule that counts houses from the ascendant.
func lagnaKnown(ctx *astro.Context) bool {
	return ctx.LagnaSign().Valid()
}

// lord returns the lord of house h from the Lagna together with whether it
// is placed in the chart.
func lord(ctx *astro.Context, h int) (domain.Planet, bool) {
	return lordFrom(ctx, h, ctx.LagnaSign())
}

// lordFrom is lord with houses counted from any reference sign.
func lordFrom(ctx *astro.Context, h int, reference domain.Sign) (domain.Planet, bool) {
	p := ctx.HouseLord(h, reference)
	return p, p != "" && ctx.Has(p)
}

// houseReference names the sign a rule counts houses from.
type houseReference struct {
	name string
	sign func(*astro.Context) domain.Sign
}

var (
	fromLagna = houseReference{name: "lagna", sign: (*astro.Context).LagnaSign}
	fromMoon  = houseReference{name: "moon", sign: (*astro.Context).MoonSign}
)

// inKendraFrom reports whether p is in an angular house counted from reference.
func inKendraFrom(ctx *astro.Context, p domain.Planet, reference domain.Sign) bool {
	return domain.IsKendra(ctx.HouseFrom(p, reference))
}

// inOwnSign reports whether p occupies a sign it rules, whatever its degree.
func inOwnSign(ctx *astro.Context, p domain.Planet) bool {
	return ctx.Owns(p, ctx.Sign(p))
}

// mutualKendra reports whether a and b are in angular houses from each other.
func mutualKendra(ctx *astro.Context, a, b domain.Planet) bool {
	return domain.IsKendra(ctx.HouseFromPlanet(a, b))
}

// kendraOrTrikona reports whether house h is angular or trinal.
func kendraOrTrikona(h int) bool {
	return domain.IsKendra(h) || domain.IsTrikona(h)
}

// onlyBenefics reports whether every planet in ps is benefic. An empty list
// qualifies.
func onlyBenefics(ctx *astro.Context, ps []domain.Planet) bool {
	for _, p := range ps {
		if !ctx.IsBenefic(p) {
			return false
		}
	}
	return true
}

// excluding removes the given planets from ps.
func excluding(ps []domain.Planet, drop ...domain.Planet) []domain.Planet {
	var out []domain.Planet
	for _, p := range ps {
		if !domain.ContainsPlanet(drop, p) {
			out = append(out, p)
		}
	}
	return out
}

// classicalOnly keeps the seven visible planets.
func classicalOnly(ps []domain.Planet) []domain.Planet {
	var out []domain.Planet
	for _, p := range ps {
		if p.IsClassical() {
			out = append(out, p)
		}
	}
	return out
}

// natureOf is benefic when every planet is benefic, malefic when every
// planet is malefic, neutral otherwise.
func natureOf(ctx *astro.Context, ps []domain.Planet) domain.Nature {
	if len(ps) == 0 {
		return domain.NatureNeutral
	}
	benefic, malefic := 0, 0
	for _, p := range ps {
		switch {
		case ctx.IsBenefic(p):
			benefic++
		case ctx.IsMalefic(p):
			malefic++
		}
	}
	switch {
	case benefic == len(ps):
		return domain.NatureBenefic
	case malefic == len(ps):
		return domain.NatureMalefic
	}
	return domain.NatureNeutral
}

func planetNames(ps []domain.Planet) []string {
	names := make([]string, 0, len(ps))
	for _, p := range ps {
		names = append(names, p.String())
	}
	return names
}

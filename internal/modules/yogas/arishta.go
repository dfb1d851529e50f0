package yogas

import (
	"github.com/aristath/kundali/internal/domain"
	"github.com/aristath/kundali/internal/modules/astro"
	"github.com/rs/zerolog"
)

// kujaHouses are the houses from the Lagna where Mars raises kuja dosha.
var kujaHouses = []int{1, 2, 4, 7, 8, 12}

// arishta is one affliction to health and longevity. check returns the
// planets that form it.
type arishta struct {
	name     string
	strength float64
	check    func(ctx *astro.Context) ([]domain.Planet, bool)
}

// arishtas are the afflictions a strong angular Jupiter can cancel.
var arishtas = []arishta{
	{"balarishta_chandra", 7, balarishtaChandra},
	{"ksheena_chandra", 5, ksheenaChandra},
	{"papa_lagna_saptama", 6, papaLagnaSaptama},
	{"lagna_lord_randhra", 6, lagnaLordRandhra},
	{"randhresha_lagna", 5, randhreshaLagna},
	{"malefics_in_randhra", 5, maleficsInRandhra},
}

// ArishtaModule detects afflictions to health and longevity, and their
// cancellation.
type ArishtaModule struct {
	BaseModule
}

// NewArishtaModule creates the arishta rule family.
func NewArishtaModule(log zerolog.Logger) *ArishtaModule {
	rules := make([]Rule, 0, len(arishtas)+2)
	for _, a := range arishtas {
		rules = append(rules, Rule{Name: a.name, Check: arishtaRule(a)})
	}
	rules = append(rules,
		Rule{Name: "kuja_dosha", Check: kujaDosha},
		Rule{Name: "arishta_bhanga", Check: arishtaBhanga},
	)
	return &ArishtaModule{
		BaseModule: newBaseModule(log, "arishta", domain.CategoryArishta, rules),
	}
}

func arishtaRule(a arishta) func(*astro.Context, *Collector) {
	return func(ctx *astro.Context, c *Collector) {
		involved, ok := a.check(ctx)
		if !ok {
			return
		}
		c.Add(domain.Yoga{
			Name:     a.name,
			Planets:  involved,
			Nature:   domain.NatureMalefic,
			Strength: a.strength,
		})
	}
}

// maleficsOn lists the malefics joining or aspecting p.
func maleficsOn(ctx *astro.Context, p domain.Planet) []domain.Planet {
	var out []domain.Planet
	for _, other := range domain.AllPlanets {
		if other == p || !ctx.IsMalefic(other) {
			continue
		}
		if ctx.IsConjunct(other, p) || ctx.Aspects(other, p) {
			out = append(out, other)
		}
	}
	return out
}

// balarishtaChandra: the Moon in a dusthana, afflicted by a malefic and
// without a benefic aspect.
func balarishtaChandra(ctx *astro.Context) ([]domain.Planet, bool) {
	if !domain.IsDusthana(ctx.House(domain.Moon)) || ctx.AspectedByBenefic(domain.Moon) {
		return nil, false
	}
	malefics := maleficsOn(ctx, domain.Moon)
	if len(malefics) == 0 {
		return nil, false
	}
	return append(planets(domain.Moon), malefics...), true
}

// ksheenaChandra: a waning Moon under affliction.
func ksheenaChandra(ctx *astro.Context) ([]domain.Planet, bool) {
	if !ctx.Has(domain.Sun) || !ctx.Has(domain.Moon) {
		return nil, false
	}
	if ctx.IsWaxingMoon() || !ctx.IsAfflicted(domain.Moon) {
		return nil, false
	}
	return planets(domain.Moon), true
}

// papaLagnaSaptama: malefics in both the 1st and the 7th while no benefic
// occupies or aspects the Lagna.
func papaLagnaSaptama(ctx *astro.Context) ([]domain.Planet, bool) {
	if !lagnaKnown(ctx) {
		return nil, false
	}
	lagna := ctx.LagnaSign()
	first := ctx.Malefics(ctx.PlanetsInHouse(1, lagna))
	seventh := ctx.Malefics(ctx.PlanetsInHouse(7, lagna))
	if len(first) == 0 || len(seventh) == 0 {
		return nil, false
	}
	if len(ctx.Benefics(ctx.PlanetsInHouse(1, lagna))) > 0 {
		return nil, false
	}
	for _, p := range ctx.NaturalBenefics() {
		if ctx.AspectsSign(p, lagna) {
			return nil, false
		}
	}
	return append(first, seventh...), true
}

// lagnaLordRandhra: the Lagna lord afflicted in the 8th.
func lagnaLordRandhra(ctx *astro.Context) ([]domain.Planet, bool) {
	l, ok := lord(ctx, 1)
	if !ok || ctx.House(l) != 8 || !ctx.IsAfflicted(l) {
		return nil, false
	}
	return planets(l), true
}

// randhreshaLagna: the 8th lord in the Lagna with a malefic, when it does
// not also rule the Lagna.
func randhreshaLagna(ctx *astro.Context) ([]domain.Planet, bool) {
	eighth, ok8 := lord(ctx, 8)
	first, ok1 := lord(ctx, 1)
	if !ok8 || !ok1 || eighth == first {
		return nil, false
	}
	if ctx.House(eighth) != 1 || !ctx.ConjunctMalefic(eighth) {
		return nil, false
	}
	return append(planets(eighth), excluding(ctx.Malefics(ctx.PlanetsInSign(ctx.Sign(eighth))), eighth)...), true
}

// maleficsInRandhra: two or more malefics in the 8th.
func maleficsInRandhra(ctx *astro.Context) ([]domain.Planet, bool) {
	if !lagnaKnown(ctx) {
		return nil, false
	}
	malefics := ctx.Malefics(ctx.PlanetsInHouse(8, ctx.LagnaSign()))
	if len(malefics) < 2 {
		return nil, false
	}
	return malefics, true
}

// kujaDosha: Mars in the 1st, 2nd, 4th, 7th, 8th or 12th outside its own,
// moolatrikona or exaltation sign.
func kujaDosha(ctx *astro.Context, c *Collector) {
	h := ctx.House(domain.Mars)
	if !domain.InHouses(h, kujaHouses) || ctx.Dignity(domain.Mars).IsStrongDignity() {
		return
	}
	c.Add(domain.Yoga{
		Name:     "kuja_dosha",
		Planets:  planets(domain.Mars),
		Nature:   domain.NatureMalefic,
		Strength: 4,
		Params:   params{"house": h},
	})
}

// arishtaBhanga: Jupiter angular, neither debilitated nor combust, cancels
// the afflictions present.
func arishtaBhanga(ctx *astro.Context, c *Collector) {
	if !domain.IsKendra(ctx.House(domain.Jupiter)) {
		return
	}
	if ctx.IsDebilitated(domain.Jupiter) || ctx.IsCombust(domain.Jupiter) {
		return
	}
	var cancelled []string
	for _, a := range arishtas {
		if _, ok := a.check(ctx); ok {
			cancelled = append(cancelled, a.name)
		}
	}
	if len(cancelled) == 0 {
		return
	}
	c.Add(domain.Yoga{
		Name:     "arishta_bhanga",
		Planets:  planets(domain.Jupiter),
		Nature:   domain.NatureBenefic,
		Strength: ruleStrength(ctx, 6, domain.Jupiter),
		Params: params{
			"cancels": cancelled,
			"house":   ctx.House(domain.Jupiter),
		},
	})
}

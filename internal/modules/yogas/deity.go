package yogas

import (
	"github.com/aristath/kundali/internal/domain"
	"github.com/aristath/kundali/internal/modules/astro"
	"github.com/rs/zerolog"
)

// DeityModule detects the combinations named after deities.
type DeityModule struct {
	BaseModule
}

// NewDeityModule creates the deity rule family.
func NewDeityModule(log zerolog.Logger) *DeityModule {
	return &DeityModule{
		BaseModule: newBaseModule(log, "deity", domain.CategoryDeity, []Rule{
			{Name: "lakshmi", Check: lakshmi},
			{Name: "saraswati", Check: saraswati},
			{Name: "brahma", Check: brahma},
			{Name: "vishnu", Check: vishnu},
			{Name: "shiva", Check: shiva},
			{Name: "gauri", Check: gauri},
			{Name: "kalanidhi", Check: kalanidhi},
			{Name: "hari", Check: beneficsFromLord("hari", 2, []int{2, 12, 8})},
			{Name: "hara", Check: beneficsFromLord("hara", 7, []int{4, 9, 8})},
			{Name: "indra", Check: indra},
			{Name: "srikantha", Check: srikantha},
			{Name: "srinatha", Check: srinatha},
		}),
	}
}

// lakshmi: the 9th lord in its own or exaltation sign in a kendra or trikona,
// with a strong Lagna lord.
func lakshmi(ctx *astro.Context, c *Collector) {
	ninth, ok9 := lord(ctx, 9)
	first, ok1 := lord(ctx, 1)
	if !ok9 || !ok1 {
		return
	}
	if !ctx.Dignity(ninth).IsStrongDignity() || !kendraOrTrikona(ctx.House(ninth)) || !ctx.IsStrong(first) {
		return
	}
	c.Add(domain.Yoga{
		Name:     "lakshmi",
		Planets:  planets(ninth, first),
		Nature:   domain.NatureBenefic,
		Strength: ruleStrength(ctx, 8, ninth, first),
		Params:   params{"house": ctx.House(ninth)},
	})
}

// saraswatiHouses are the kendras, trikonas and the 2nd.
var saraswatiHouses = []int{1, 2, 4, 5, 7, 9, 10}

// saraswati: Jupiter, Venus and Mercury in kendras, trikonas or the 2nd,
// with Jupiter strong.
func saraswati(ctx *astro.Context, c *Collector) {
	group := planets(domain.Jupiter, domain.Venus, domain.Mercury)
	for _, p := range group {
		if !domain.InHouses(ctx.House(p), saraswatiHouses) {
			return
		}
	}
	if !ctx.IsStrong(domain.Jupiter) {
		return
	}
	c.Add(domain.Yoga{
		Name:     "saraswati",
		Planets:  group,
		Nature:   domain.NatureBenefic,
		Strength: ruleStrength(ctx, 8, group...),
	})
}

// brahma: Jupiter angular to the 9th lord, Venus angular to the 11th lord and
// Mercury angular to the Lagna lord or the 10th lord.
func brahma(ctx *astro.Context, c *Collector) {
	ninth, ok9 := lord(ctx, 9)
	eleventh, ok11 := lord(ctx, 11)
	first, ok1 := lord(ctx, 1)
	tenth, ok10 := lord(ctx, 10)
	if !ok9 || !ok11 || !ok1 || !ok10 {
		return
	}
	if !mutualKendra(ctx, domain.Jupiter, ninth) || !mutualKendra(ctx, domain.Venus, eleventh) {
		return
	}
	if !mutualKendra(ctx, domain.Mercury, first) && !mutualKendra(ctx, domain.Mercury, tenth) {
		return
	}
	group := planets(domain.Jupiter, domain.Venus, domain.Mercury)
	c.Add(domain.Yoga{
		Name:     "brahma",
		Planets:  group,
		Nature:   domain.NatureBenefic,
		Strength: ruleStrength(ctx, 7, group...),
	})
}

// navamshaLord returns the lord of the navamsha sign p occupies. Charts
// without a navamsha map yield false.
func navamshaLord(ctx *astro.Context, p domain.Planet) (domain.Planet, bool) {
	s, ok := ctx.NavamshaSign(p)
	if !ok {
		return "", false
	}
	l := ctx.SignLord(s)
	return l, ctx.Has(l)
}

// vishnu: the 9th lord, the 10th lord and the navamsha dispositor of the 9th
// lord all in the 2nd. Needs the navamsha chart.
func vishnu(ctx *astro.Context, c *Collector) {
	ninth, ok9 := lord(ctx, 9)
	tenth, ok10 := lord(ctx, 10)
	if !ok9 || !ok10 {
		return
	}
	navLord, ok := navamshaLord(ctx, ninth)
	if !ok {
		return
	}
	group := domain.UniquePlanets(planets(ninth, tenth, navLord))
	for _, p := range group {
		if ctx.House(p) != 2 {
			return
		}
	}
	c.Add(domain.Yoga{
		Name:     "vishnu",
		Planets:  group,
		Nature:   domain.NatureBenefic,
		Strength: ruleStrength(ctx, 8, group...),
		Params:   params{"navamsha_lord": navLord.String()},
	})
}

// shiva: the 5th lord in the 9th, the 9th lord in the 10th and the 10th lord in the 5th.
func shiva(ctx *astro.Context, c *Collector) {
	fifth, ok5 := lord(ctx, 5)
	ninth, ok9 := lord(ctx, 9)
	tenth, ok10 := lord(ctx, 10)
	if !ok5 || !ok9 || !ok10 {
		return
	}
	if ctx.House(fifth) != 9 || ctx.House(ninth) != 10 || ctx.House(tenth) != 5 {
		return
	}
	group := domain.UniquePlanets(planets(fifth, ninth, tenth))
	c.Add(domain.Yoga{
		Name:     "shiva",
		Planets:  group,
		Nature:   domain.NatureBenefic,
		Strength: ruleStrength(ctx, 8, group...),
	})
}

// gauri: the navamsha dispositor of the 10th lord exalted in the 10th and
// joined by the Lagna lord. Needs the navamsha chart.
func gauri(ctx *astro.Context, c *Collector) {
	tenth, ok10 := lord(ctx, 10)
	first, ok1 := lord(ctx, 1)
	if !ok10 || !ok1 {
		return
	}
	navLord, ok := navamshaLord(ctx, tenth)
	if !ok || !ctx.IsExalted(navLord) || ctx.House(navLord) != 10 {
		return
	}
	if navLord != first && !ctx.IsConjunct(navLord, first) {
		return
	}
	group := domain.UniquePlanets(planets(navLord, first, tenth))
	c.Add(domain.Yoga{
		Name:     "gauri",
		Planets:  group,
		Nature:   domain.NatureBenefic,
		Strength: ruleStrength(ctx, 8, navLord, first),
		Params:   params{"navamsha_lord": navLord.String()},
	})
}

// kalanidhi: Jupiter in the 2nd or 5th, joined or aspected by both Mercury and Venus.
func kalanidhi(ctx *astro.Context, c *Collector) {
	h := ctx.House(domain.Jupiter)
	if h != 2 && h != 5 {
		return
	}
	for _, p := range []domain.Planet{domain.Mercury, domain.Venus} {
		if !ctx.IsConjunct(p, domain.Jupiter) && !ctx.Aspects(p, domain.Jupiter) {
			return
		}
	}
	group := planets(domain.Jupiter, domain.Mercury, domain.Venus)
	c.Add(domain.Yoga{
		Name:     "kalanidhi",
		Planets:  group,
		Nature:   domain.NatureBenefic,
		Strength: ruleStrength(ctx, 7, group...),
		Params:   params{"house": h},
	})
}

// beneficsFromLord builds a rule that needs a benefic in each of houses,
// counted from the sign of the given house lord.
func beneficsFromLord(name string, house int, houses []int) func(*astro.Context, *Collector) {
	return func(ctx *astro.Context, c *Collector) {
		l, ok := lord(ctx, house)
		if !ok {
			return
		}
		var involved []domain.Planet
		for _, h := range houses {
			benefics := ctx.Benefics(ctx.PlanetsInHouse(h, ctx.Sign(l)))
			if len(benefics) == 0 {
				return
			}
			involved = append(involved, benefics...)
		}
		involved = domain.UniquePlanets(involved)
		c.Add(domain.Yoga{
			Name:     name,
			Planets:  involved,
			Nature:   domain.NatureBenefic,
			Strength: ruleStrength(ctx, 6, involved...),
			Params: params{
				"lord_of": house,
				"lord":    l.String(),
			},
		})
	}
}

// indra: the 5th and 11th lords in exchange with the Moon in the 5th.
func indra(ctx *astro.Context, c *Collector) {
	fifth, ok5 := lord(ctx, 5)
	eleventh, ok11 := lord(ctx, 11)
	if !ok5 || !ok11 || !ctx.InSignExchange(fifth, eleventh) || ctx.House(domain.Moon) != 5 {
		return
	}
	group := planets(fifth, eleventh, domain.Moon)
	c.Add(domain.Yoga{
		Name:     "indra",
		Planets:  group,
		Nature:   domain.NatureBenefic,
		Strength: ruleStrength(ctx, 7, group...),
	})
}

// srikantha: the Lagna lord, the Sun and the Moon all in kendras or
// trikonas and none of them debilitated.
func srikantha(ctx *astro.Context, c *Collector) {
	first, ok := lord(ctx, 1)
	if !ok {
		return
	}
	group := domain.UniquePlanets(planets(first, domain.Sun, domain.Moon))
	for _, p := range group {
		if !kendraOrTrikona(ctx.House(p)) || ctx.IsDebilitated(p) {
			return
		}
	}
	c.Add(domain.Yoga{
		Name:     "srikantha",
		Planets:  group,
		Nature:   domain.NatureBenefic,
		Strength: ruleStrength(ctx, 6, group...),
	})
}

// srinatha: the 7th lord exalted in the 10th and the 10th lord joined with the 9th lord.
func srinatha(ctx *astro.Context, c *Collector) {
	seventh, ok7 := lord(ctx, 7)
	ninth, ok9 := lord(ctx, 9)
	tenth, ok10 := lord(ctx, 10)
	if !ok7 || !ok9 || !ok10 {
		return
	}
	if ctx.House(seventh) != 10 || !ctx.IsExalted(seventh) {
		return
	}
	if ninth != tenth && !ctx.IsConjunct(ninth, tenth) {
		return
	}
	group := domain.UniquePlanets(planets(seventh, ninth, tenth))
	c.Add(domain.Yoga{
		Name:     "srinatha",
		Planets:  group,
		Nature:   domain.NatureBenefic,
		Strength: ruleStrength(ctx, 7, group...),
	})
}

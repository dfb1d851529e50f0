package yogas

import (
	"fmt"

	"github.com/aristath/kundali/internal/domain"
	"github.com/aristath/kundali/internal/modules/astro"
	"github.com/rs/zerolog"
)

// wealthLordPairs are the house-lord connections that produce wealth.
var wealthLordPairs = [][2]int{
	{1, 2}, {1, 5}, {1, 9}, {1, 11},
	{2, 5}, {2, 9}, {2, 11},
	{5, 9}, {5, 11}, {9, 11},
}

// fifthHouseWealth maps a planet in its own sign in the 5th to the planets
// whose presence in the 11th completes the combination.
var fifthHouseWealth = map[domain.Planet][]domain.Planet{
	domain.Sun:     {domain.Moon, domain.Jupiter, domain.Saturn},
	domain.Moon:    {domain.Saturn},
	domain.Mars:    {domain.Venus},
	domain.Mercury: {domain.Moon, domain.Mars, domain.Jupiter},
	domain.Jupiter: {domain.Mercury},
	domain.Venus:   {domain.Mars},
	domain.Saturn:  {domain.Sun, domain.Moon},
}

// DhanaModule detects wealth combinations.
type DhanaModule struct {
	BaseModule
}

// NewDhanaModule creates the dhana rule family.
func NewDhanaModule(log zerolog.Logger) *DhanaModule {
	rules := make([]Rule, 0, 2*len(wealthLordPairs)+6)
	for _, pair := range wealthLordPairs {
		name := fmt.Sprintf("dhana_%d_%d", pair[0], pair[1])
		rules = append(rules, Rule{Name: name, Check: wealthLords(name, fromLagna, pair[0], pair[1])})
	}
	for _, pair := range wealthLordPairs {
		name := fmt.Sprintf("chandra_dhana_%d_%d", pair[0], pair[1])
		rules = append(rules, Rule{Name: name, Check: wealthLords(name, fromMoon, pair[0], pair[1])})
	}
	rules = append(rules,
		Rule{Name: "fifth_house_dhana", Check: fifthHouseDhana},
		Rule{Name: "vasumati", Check: vasumati},
		Rule{Name: "dhana_lord_strong", Check: dhanaLordStrong},
		Rule{Name: "labha_benefics", Check: labhaBenefics},
		Rule{Name: "dhana_lord_in_labha", Check: lordInHouse("dhana_lord_in_labha", 2, 11)},
		Rule{Name: "labha_lord_in_dhana", Check: lordInHouse("labha_lord_in_dhana", 11, 2)},
	)
	return &DhanaModule{
		BaseModule: newBaseModule(log, "dhana", domain.CategoryDhana, rules),
	}
}

// wealthLords builds the rule for two connected wealth-house lords, houses
// counted from ref.
func wealthLords(name string, ref houseReference, a, b int) func(*astro.Context, *Collector) {
	return func(ctx *astro.Context, c *Collector) {
		sign := ref.sign(ctx)
		la, okA := lordFrom(ctx, a, sign)
		lb, okB := lordFrom(ctx, b, sign)
		if !okA || !okB || la == lb || !ctx.IsConnected(la, lb) {
			return
		}
		c.Add(domain.Yoga{
			Name:     name,
			Planets:  planets(la, lb),
			Nature:   domain.NatureBenefic,
			Strength: ruleStrength(ctx, 6, la, lb),
			Params: params{
				"houses":    []int{a, b},
				"conjunct":  ctx.IsConjunct(la, lb),
				"exchanged": ctx.InSignExchange(la, lb),
				"reference": ref.name,
			},
		})
	}
}

// fifthHouseDhana: a planet in its own sign in the 5th with its partner in the 11th.
func fifthHouseDhana(ctx *astro.Context, c *Collector) {
	if !lagnaKnown(ctx) {
		return
	}
	for _, p := range domain.ClassicalPlanets {
		if ctx.House(p) != 5 || !inOwnSign(ctx, p) {
			continue
		}
		var partners []domain.Planet
		for _, partner := range fifthHouseWealth[p] {
			if ctx.House(partner) == 11 {
				partners = append(partners, partner)
			}
		}
		if len(partners) == 0 {
			continue
		}
		involved := append(planets(p), partners...)
		c.Add(domain.Yoga{
			Name:     "fifth_house_dhana",
			Planets:  involved,
			Nature:   domain.NatureBenefic,
			Strength: ruleStrength(ctx, 7, involved...),
			Params:   params{"planet": p.String()},
		})
	}
}

// vasumati: two or more benefics in upachaya houses from the Moon.
func vasumati(ctx *astro.Context, c *Collector) {
	moon := ctx.MoonSign()
	if !moon.Valid() {
		return
	}
	benefics := ctx.Benefics(ctx.PlanetsInHouses(domain.Upachayas, moon))
	if len(benefics) < 2 {
		return
	}
	c.Add(domain.Yoga{
		Name:     "vasumati",
		Planets:  benefics,
		Nature:   domain.NatureBenefic,
		Strength: ruleStrength(ctx, 6, benefics...),
		Params:   params{"count": len(benefics), "reference": "moon"},
	})
}

// dhanaLordStrong: the 2nd lord strong and angular.
func dhanaLordStrong(ctx *astro.Context, c *Collector) {
	l, ok := lord(ctx, 2)
	if !ok || !ctx.IsStrong(l) || !domain.IsKendra(ctx.House(l)) {
		return
	}
	c.Add(domain.Yoga{
		Name:     "dhana_lord_strong",
		Planets:  planets(l),
		Nature:   domain.NatureBenefic,
		Strength: ruleStrength(ctx, 5, l),
		Params:   params{"house": ctx.House(l)},
	})
}

// labhaBenefics: two or more benefics in the 11th from the Lagna.
func labhaBenefics(ctx *astro.Context, c *Collector) {
	if !lagnaKnown(ctx) {
		return
	}
	benefics := ctx.Benefics(ctx.PlanetsInHouse(11, ctx.LagnaSign()))
	if len(benefics) < 2 {
		return
	}
	c.Add(domain.Yoga{
		Name:     "labha_benefics",
		Planets:  benefics,
		Nature:   domain.NatureBenefic,
		Strength: ruleStrength(ctx, 5, benefics...),
		Params:   params{"count": len(benefics)},
	})
}

// lordInHouse builds the rule for the lord of one wealth house placed in
// the other.
func lordInHouse(name string, lordOf, house int) func(*astro.Context, *Collector) {
	return func(ctx *astro.Context, c *Collector) {
		l, ok := lord(ctx, lordOf)
		if !ok || ctx.House(l) != house {
			return
		}
		c.Add(domain.Yoga{
			Name:     name,
			Planets:  planets(l),
			Nature:   domain.NatureBenefic,
			Strength: ruleStrength(ctx, 5, l),
			Params: params{
				"lord_of": lordOf,
				"house":   house,
			},
		})
	}
}

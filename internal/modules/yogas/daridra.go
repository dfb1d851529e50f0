package yogas

import (
	"github.com/aristath/kundali/internal/domain"
	"github.com/aristath/kundali/internal/modules/astro"
	"github.com/rs/zerolog"
)

// DaridraModule detects poverty combinations.
type DaridraModule struct {
	BaseModule
}

// NewDaridraModule creates the daridra rule family.
func NewDaridraModule(log zerolog.Logger) *DaridraModule {
	return &DaridraModule{
		BaseModule: newBaseModule(log, "daridra", domain.CategoryDaridra, []Rule{
			{Name: "labha_lord_dusthana", Check: lordInDusthana("labha_lord_dusthana", 11, false)},
			{Name: "dhana_lord_afflicted", Check: lordInDusthana("dhana_lord_afflicted", 2, true)},
			{Name: "lagna_lord_afflicted", Check: lordInDusthana("lagna_lord_afflicted", 1, true)},
			{Name: "labha_lord_combust", Check: labhaLordCombust},
			{Name: "malefics_in_dhana", Check: maleficsInDhana},
			{Name: "lagna_vyaya_exchange", Check: lagnaVyayaExchange},
			{Name: "lagna_lord_with_dusthana_lord", Check: lagnaLordWithDusthanaLord},
			{Name: "dhana_lord_debilitated", Check: lordDebilitated("dhana_lord_debilitated", 2)},
			{Name: "labha_lord_debilitated", Check: lordDebilitated("labha_lord_debilitated", 11)},
			{Name: "dhana_labha_lords_in_dusthana", Check: dhanaLabhaLordsInDusthana},
			{Name: "lagna_lord_combust", Check: lagnaLordCombust},
			{Name: "guru_dusthana_debilitated", Check: guruDusthanaDebilitated},
		}),
	}
}

// lordInDusthana builds a rule for the lord of house placed in a dusthana,
// optionally also requiring the lord to be afflicted.
func lordInDusthana(name string, house int, needAffliction bool) func(*astro.Context, *Collector) {
	return func(ctx *astro.Context, c *Collector) {
		l, ok := lord(ctx, house)
		if !ok {
			return
		}
		h := ctx.House(l)
		if !domain.IsDusthana(h) {
			return
		}
		afflicted := ctx.IsAfflicted(l)
		if needAffliction && !afflicted {
			return
		}
		base := 5.0
		if afflicted {
			base = 6
		}
		c.Add(domain.Yoga{
			Name:     name,
			Planets:  planets(l),
			Nature:   domain.NatureMalefic,
			Strength: base,
			Params: params{
				"lord_of":   house,
				"house":     h,
				"afflicted": afflicted,
			},
		})
	}
}

// labhaLordCombust: the 11th lord burnt by the Sun.
func labhaLordCombust(ctx *astro.Context, c *Collector) {
	l, ok := lord(ctx, 11)
	if !ok || !ctx.IsCombust(l) {
		return
	}
	c.Add(domain.Yoga{
		Name:     "labha_lord_combust",
		Planets:  planets(l, domain.Sun),
		Nature:   domain.NatureMalefic,
		Strength: 4,
		Params:   params{"separation": ctx.Separation(l, domain.Sun)},
	})
}

// maleficsInDhana: two or more malefics in the 2nd with no benefic aspecting it.
func maleficsInDhana(ctx *astro.Context, c *Collector) {
	if !lagnaKnown(ctx) {
		return
	}
	second := ctx.SignOfHouse(2, ctx.LagnaSign())
	malefics := ctx.Malefics(ctx.PlanetsInSign(second))
	if len(malefics) < 2 {
		return
	}
	for _, p := range ctx.NaturalBenefics() {
		if ctx.AspectsSign(p, second) {
			return
		}
	}
	c.Add(domain.Yoga{
		Name:     "malefics_in_dhana",
		Planets:  malefics,
		Nature:   domain.NatureMalefic,
		Strength: float64(3 + len(malefics)),
		Params:   params{"count": len(malefics)},
	})
}

// lagnaVyayaExchange: the Lagna lord and the 12th lord in each other's houses.
func lagnaVyayaExchange(ctx *astro.Context, c *Collector) {
	first, ok1 := lord(ctx, 1)
	twelfth, ok12 := lord(ctx, 12)
	if !ok1 || !ok12 || first == twelfth {
		return
	}
	if ctx.House(first) != 12 || ctx.House(twelfth) != 1 {
		return
	}
	c.Add(domain.Yoga{
		Name:     "lagna_vyaya_exchange",
		Planets:  planets(first, twelfth),
		Nature:   domain.NatureMalefic,
		Strength: 6,
	})
}

// lagnaLordWithDusthanaLord: the Lagna lord joined in a dusthana by the lord
// of the 6th, 8th or 12th.
func lagnaLordWithDusthanaLord(ctx *astro.Context, c *Collector) {
	first, ok := lord(ctx, 1)
	if !ok || !domain.IsDusthana(ctx.House(first)) {
		return
	}
	var partners []domain.Planet
	for _, h := range domain.Dusthanas {
		l, ok := lord(ctx, h)
		if ok && l != first && ctx.IsConjunct(l, first) && !domain.ContainsPlanet(partners, l) {
			partners = append(partners, l)
		}
	}
	if len(partners) == 0 {
		return
	}
	c.Add(domain.Yoga{
		Name:     "lagna_lord_with_dusthana_lord",
		Planets:  append(planets(first), partners...),
		Nature:   domain.NatureMalefic,
		Strength: 6,
		Params: params{
			"house":    ctx.House(first),
			"partners": planetNames(partners),
		},
	})
}

// lordDebilitated builds the rule for the lord of house in its debilitation sign.
func lordDebilitated(name string, house int) func(*astro.Context, *Collector) {
	return func(ctx *astro.Context, c *Collector) {
		l, ok := lord(ctx, house)
		if !ok || !ctx.IsDebilitated(l) {
			return
		}
		c.Add(domain.Yoga{
			Name:     name,
			Planets:  planets(l),
			Nature:   domain.NatureMalefic,
			Strength: 5,
			Params: params{
				"lord_of": house,
				"house":   ctx.House(l),
			},
		})
	}
}

// dhanaLabhaLordsInDusthana: the 2nd and 11th lords both in dusthanas.
func dhanaLabhaLordsInDusthana(ctx *astro.Context, c *Collector) {
	second, ok2 := lord(ctx, 2)
	eleventh, ok11 := lord(ctx, 11)
	if !ok2 || !ok11 {
		return
	}
	if !domain.IsDusthana(ctx.House(second)) || !domain.IsDusthana(ctx.House(eleventh)) {
		return
	}
	c.Add(domain.Yoga{
		Name:     "dhana_labha_lords_in_dusthana",
		Planets:  planets(second, eleventh),
		Nature:   domain.NatureMalefic,
		Strength: 7,
		Params:   params{"houses": []int{ctx.House(second), ctx.House(eleventh)}},
	})
}

// lagnaLordCombust: the Lagna lord burnt by the Sun.
func lagnaLordCombust(ctx *astro.Context, c *Collector) {
	l, ok := lord(ctx, 1)
	if !ok || !ctx.IsCombust(l) {
		return
	}
	c.Add(domain.Yoga{
		Name:     "lagna_lord_combust",
		Planets:  planets(l, domain.Sun),
		Nature:   domain.NatureMalefic,
		Strength: 5,
		Params:   params{"separation": ctx.Separation(l, domain.Sun)},
	})
}

// guruDusthanaDebilitated: Jupiter debilitated in a dusthana.
func guruDusthanaDebilitated(ctx *astro.Context, c *Collector) {
	h := ctx.House(domain.Jupiter)
	if !domain.IsDusthana(h) || !ctx.IsDebilitated(domain.Jupiter) {
		return
	}
	c.Add(domain.Yoga{
		Name:     "guru_dusthana_debilitated",
		Planets:  planets(domain.Jupiter),
		Nature:   domain.NatureMalefic,
		Strength: 6,
		Params:   params{"house": h},
	})
}

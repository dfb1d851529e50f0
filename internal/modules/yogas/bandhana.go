package yogas

import (
	"github.com/aristath/kundali/internal/domain"
	"github.com/aristath/kundali/internal/modules/astro"
	"github.com/rs/zerolog"
)

// bandhanaPairs are the house pairs whose equal occupancy signals confinement.
var bandhanaPairs = [][2]int{{2, 12}, {3, 11}, {4, 10}, {5, 9}, {6, 8}}

// BandhanaModule detects imprisonment and confinement combinations.
type BandhanaModule struct {
	BaseModule
}

// NewBandhanaModule creates the bandhana rule family.
func NewBandhanaModule(log zerolog.Logger) *BandhanaModule {
	return &BandhanaModule{
		BaseModule: newBaseModule(log, "bandhana", domain.CategoryBandhana, []Rule{
			{Name: "bandhana", Check: bandhanaHousePairs},
			{Name: "bandhana_lagna_shashtha", Check: bandhanaLagnaShashtha},
			{Name: "vyaya_lord_in_lagna", Check: vyayaLordInLagna},
			{Name: "malefics_in_vyaya", Check: maleficsInVyaya},
			{Name: "shatru_bandhana", Check: lordInHouseWithMalefic("shatru_bandhana", 6, 1)},
			{Name: "lagna_lord_in_vyaya", Check: lordInHouseWithMalefic("lagna_lord_in_vyaya", 1, 12)},
			{Name: "shani_rahu_lagna", Check: shaniRahuLagna},
			{Name: "vyaya_shashtha_lords", Check: vyayaShashthaLords},
		}),
	}
}

// bandhanaHousePairs: for each house pair, the same number of planets (at
// least one each) in both houses with at least one malefic among them.
func bandhanaHousePairs(ctx *astro.Context, c *Collector) {
	if !lagnaKnown(ctx) {
		return
	}
	lagna := ctx.LagnaSign()
	for _, pair := range bandhanaPairs {
		a := ctx.PlanetsInHouse(pair[0], lagna)
		b := ctx.PlanetsInHouse(pair[1], lagna)
		if len(a) == 0 || len(a) != len(b) {
			continue
		}
		involved := append(append([]domain.Planet(nil), a...), b...)
		if len(ctx.Malefics(involved)) == 0 {
			continue
		}
		c.Add(domain.Yoga{
			Name:     "bandhana",
			Planets:  involved,
			Nature:   domain.NatureMalefic,
			Strength: float64(3 + len(a)),
			Params: params{
				"houses": []int{pair[0], pair[1]},
				"count":  len(a),
			},
		})
	}
}

// bandhanaLagnaShashtha: the Lagna lord and the 6th lord together in a kendra
// with Saturn, Rahu or Ketu.
func bandhanaLagnaShashtha(ctx *astro.Context, c *Collector) {
	first, ok1 := lord(ctx, 1)
	sixth, ok6 := lord(ctx, 6)
	if !ok1 || !ok6 || first == sixth {
		return
	}
	if !ctx.IsConjunct(first, sixth) || !domain.IsKendra(ctx.House(first)) {
		return
	}
	var binders []domain.Planet
	for _, p := range []domain.Planet{domain.Saturn, domain.Rahu, domain.Ketu} {
		if p != first && p != sixth && ctx.IsConjunct(p, first) {
			binders = append(binders, p)
		}
	}
	if len(binders) == 0 {
		return
	}
	c.Add(domain.Yoga{
		Name:     "bandhana_lagna_shashtha",
		Planets:  append(planets(first, sixth), binders...),
		Nature:   domain.NatureMalefic,
		Strength: 7,
		Params: params{
			"house":   ctx.House(first),
			"binders": planetNames(binders),
		},
	})
}

// vyayaLordInLagna: the 12th lord in the Lagna together with a malefic.
func vyayaLordInLagna(ctx *astro.Context, c *Collector) {
	l, ok := lord(ctx, 12)
	if !ok || ctx.House(l) != 1 || !ctx.ConjunctMalefic(l) {
		return
	}
	c.Add(domain.Yoga{
		Name:     "vyaya_lord_in_lagna",
		Planets:  planets(l),
		Nature:   domain.NatureMalefic,
		Strength: 5,
	})
}

// maleficsInVyaya: two or more malefics in the 12th.
func maleficsInVyaya(ctx *astro.Context, c *Collector) {
	if !lagnaKnown(ctx) {
		return
	}
	malefics := ctx.Malefics(ctx.PlanetsInHouse(12, ctx.LagnaSign()))
	if len(malefics) < 2 {
		return
	}
	c.Add(domain.Yoga{
		Name:     "malefics_in_vyaya",
		Planets:  malefics,
		Nature:   domain.NatureMalefic,
		Strength: float64(3 + len(malefics)),
		Params:   params{"count": len(malefics)},
	})
}

// lordInHouseWithMalefic builds the rule for the lord of one house sitting
// in another together with a malefic.
func lordInHouseWithMalefic(name string, lordOf, house int) func(*astro.Context, *Collector) {
	return func(ctx *astro.Context, c *Collector) {
		l, ok := lord(ctx, lordOf)
		if !ok || ctx.House(l) != house || !ctx.ConjunctMalefic(l) {
			return
		}
		malefics := excluding(ctx.Malefics(ctx.PlanetsInSign(ctx.Sign(l))), l)
		c.Add(domain.Yoga{
			Name:     name,
			Planets:  append(planets(l), malefics...),
			Nature:   domain.NatureMalefic,
			Strength: float64(4 + len(malefics)),
			Params: params{
				"lord_of": lordOf,
				"house":   house,
			},
		})
	}
}

// shaniRahuLagna: Saturn and Rahu together in the Lagna.
func shaniRahuLagna(ctx *astro.Context, c *Collector) {
	if ctx.House(domain.Saturn) != 1 || ctx.House(domain.Rahu) != 1 {
		return
	}
	c.Add(domain.Yoga{
		Name:     "shani_rahu_lagna",
		Planets:  planets(domain.Saturn, domain.Rahu),
		Nature:   domain.NatureMalefic,
		Strength: 6,
	})
}

// vyayaShashthaLords: the 12th and 6th lords joined.
func vyayaShashthaLords(ctx *astro.Context, c *Collector) {
	twelfth, ok12 := lord(ctx, 12)
	sixth, ok6 := lord(ctx, 6)
	if !ok12 || !ok6 || !ctx.IsConjunct(twelfth, sixth) {
		return
	}
	c.Add(domain.Yoga{
		Name:     "vyaya_shashtha_lords",
		Planets:  planets(twelfth, sixth),
		Nature:   domain.NatureMalefic,
		Strength: 5,
		Params:   params{"house": ctx.House(twelfth)},
	})
}

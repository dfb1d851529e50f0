package yogas

import (
	"fmt"

	"github.com/aristath/kundali/internal/domain"
	"github.com/aristath/kundali/internal/modules/astro"
	"github.com/rs/zerolog"
)

// kartariHouses are the houses, besides the Lagna, checked for hemming.
var kartariHouses = []int{2, 4, 5, 7, 9, 10}

// KartariModule detects hemming: a sign flanked on both sides by malefics
// (papa kartari) or benefics (shubha kartari).
type KartariModule struct {
	BaseModule
}

// NewKartariModule creates the kartari rule family.
func NewKartariModule(log zerolog.Logger) *KartariModule {
	rules := []Rule{
		{Name: "kartari_lagna", Check: lagnaKartari},
		{Name: "kartari_planet", Check: planetKartari},
	}
	for _, h := range kartariHouses {
		rules = append(rules, Rule{Name: fmt.Sprintf("kartari_house_%d", h), Check: houseKartari(h)})
	}
	return &KartariModule{
		BaseModule: newBaseModule(log, "kartari", domain.CategoryKartari, rules),
	}
}

// hemming returns the malefics and benefics in the signs either side of
// target, ignoring the planets in skip.
func hemming(ctx *astro.Context, target domain.Sign, skip ...domain.Planet) (prevMal, nextMal, prevBen, nextBen []domain.Planet) {
	prev := excluding(ctx.PlanetsInSign(target.Add(-1)), skip...)
	next := excluding(ctx.PlanetsInSign(target.Add(1)), skip...)
	return ctx.Malefics(prev), ctx.Malefics(next), ctx.Benefics(prev), ctx.Benefics(next)
}

// lagnaKartari: the Lagna hemmed in by malefics or benefics. A papa kartari
// on the Lagna is softened when Jupiter occupies or aspects it.
func lagnaKartari(ctx *astro.Context, c *Collector) {
	lagna := ctx.LagnaSign()
	if !lagna.Valid() {
		return
	}
	prevMal, nextMal, prevBen, nextBen := hemming(ctx, lagna)

	if len(prevMal) > 0 && len(nextMal) > 0 {
		involved := append(append([]domain.Planet(nil), prevMal...), nextMal...)
		c.Add(domain.Yoga{
			Name:     "papa_kartari_lagna",
			Planets:  involved,
			Nature:   domain.NatureMalefic,
			Strength: float64(4 + len(involved)/2),
			Params:   params{"target": "lagna"},
		})
		if ctx.Sign(domain.Jupiter) == lagna || ctx.AspectsSign(domain.Jupiter, lagna) {
			c.Add(domain.Yoga{
				Name:     "kartari_protection",
				Planets:  planets(domain.Jupiter),
				Nature:   domain.NatureBenefic,
				Strength: ruleStrength(ctx, 5, domain.Jupiter),
				Params:   params{"target": "lagna"},
			})
		}
	}

	if len(prevBen) > 0 && len(nextBen) > 0 {
		involved := append(append([]domain.Planet(nil), prevBen...), nextBen...)
		c.Add(domain.Yoga{
			Name:     "shubha_kartari_lagna",
			Planets:  involved,
			Nature:   domain.NatureBenefic,
			Strength: float64(4 + len(involved)/2),
			Params:   params{"target": "lagna"},
		})
	}
}

// planetKartari: each classical planet hemmed in by malefics or benefics.
func planetKartari(ctx *astro.Context, c *Collector) {
	for _, p := range domain.ClassicalPlanets {
		s := ctx.Sign(p)
		if !s.Valid() {
			continue
		}
		prevMal, nextMal, prevBen, nextBen := hemming(ctx, s, p)

		if len(prevMal) > 0 && len(nextMal) > 0 {
			hemmers := append(append([]domain.Planet(nil), prevMal...), nextMal...)
			c.Add(domain.Yoga{
				Name:     "papa_kartari_planet",
				Planets:  append(planets(p), hemmers...),
				Nature:   domain.NatureMalefic,
				Strength: float64(3 + len(hemmers)/2),
				Params: params{
					"target":  p.String(),
					"hemmers": planetNames(hemmers),
				},
			})
		}
		if len(prevBen) > 0 && len(nextBen) > 0 {
			hemmers := append(append([]domain.Planet(nil), prevBen...), nextBen...)
			c.Add(domain.Yoga{
				Name:     "shubha_kartari_planet",
				Planets:  append(planets(p), hemmers...),
				Nature:   domain.NatureBenefic,
				Strength: float64(3 + len(hemmers)/2),
				Params: params{
					"target":  p.String(),
					"hemmers": planetNames(hemmers),
				},
			})
		}
	}
}

// houseKartari builds the rule for house h, counted from the Lagna, hemmed
// in by malefics or benefics.
func houseKartari(h int) func(*astro.Context, *Collector) {
	return func(ctx *astro.Context, c *Collector) {
		if !lagnaKnown(ctx) {
			return
		}
		target := ctx.SignOfHouse(h, ctx.LagnaSign())
		prevMal, nextMal, prevBen, nextBen := hemming(ctx, target)

		if len(prevMal) > 0 && len(nextMal) > 0 {
			hemmers := append(append([]domain.Planet(nil), prevMal...), nextMal...)
			c.Add(domain.Yoga{
				Name:     "papa_kartari_house",
				Planets:  hemmers,
				Nature:   domain.NatureMalefic,
				Strength: float64(3 + len(hemmers)/2),
				Params:   params{"house": h},
			})
		}
		if len(prevBen) > 0 && len(nextBen) > 0 {
			hemmers := append(append([]domain.Planet(nil), prevBen...), nextBen...)
			c.Add(domain.Yoga{
				Name:     "shubha_kartari_house",
				Planets:  hemmers,
				Nature:   domain.NatureBenefic,
				Strength: float64(3 + len(hemmers)/2),
				Params:   params{"house": h},
			})
		}
	}
}

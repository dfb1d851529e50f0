package yogas

import (
	"github.com/aristath/kundali/internal/domain"
	"github.com/aristath/kundali/internal/modules/astro"
	"github.com/aristath/kundali/pkg/formulas"
	"github.com/rs/zerolog"
)

// WarOrb is the widest separation, in degrees, at which two planets in the
// same sign are at war.
const WarOrb = 1.0

// conjunction is one entry of the two-planet conjunction table. Any planet
// in with qualifies as the partner of first.
type conjunction struct {
	name   string
	first  domain.Planet
	with   []domain.Planet
	nature domain.Nature
	base   float64
}

var conjunctions = []conjunction{
	{"chandra_mangala", domain.Moon, []domain.Planet{domain.Mars}, domain.NatureBenefic, 6},
	{"budha_aditya", domain.Sun, []domain.Planet{domain.Mercury}, domain.NatureBenefic, 5},
	{"lakshmi_narayana", domain.Mercury, []domain.Planet{domain.Venus}, domain.NatureBenefic, 5},
	{"guru_mangala", domain.Jupiter, []domain.Planet{domain.Mars}, domain.NatureBenefic, 6},
	{"guru_shukra", domain.Jupiter, []domain.Planet{domain.Venus}, domain.NatureNeutral, 4},
	{"chandra_shukra", domain.Moon, []domain.Planet{domain.Venus}, domain.NatureBenefic, 4},
	{"guru_chandala", domain.Jupiter, []domain.Planet{domain.Rahu}, domain.NatureMalefic, 5},
	{"angaraka", domain.Mars, []domain.Planet{domain.Rahu}, domain.NatureMalefic, 5},
	{"grahana_surya", domain.Sun, []domain.Planet{domain.Rahu, domain.Ketu}, domain.NatureMalefic, 6},
	{"grahana_chandra", domain.Moon, []domain.Planet{domain.Rahu, domain.Ketu}, domain.NatureMalefic, 6},
	{"vish", domain.Moon, []domain.Planet{domain.Saturn}, domain.NatureMalefic, 5},
	{"shrapit", domain.Saturn, []domain.Planet{domain.Rahu}, domain.NatureMalefic, 6},
	{"surya_shani", domain.Sun, []domain.Planet{domain.Saturn}, domain.NatureMalefic, 5},
	{"kuja_shani", domain.Mars, []domain.Planet{domain.Saturn}, domain.NatureMalefic, 5},
	{"jadatva", domain.Mercury, []domain.Planet{domain.Rahu}, domain.NatureMalefic, 4},
}

// PairModule detects two-planet combinations: the conjunction table,
// planetary war and sign exchange.
type PairModule struct {
	BaseModule
}

// NewPairModule creates the pair rule family.
func NewPairModule(log zerolog.Logger) *PairModule {
	rules := make([]Rule, 0, len(conjunctions)+2)
	for _, conj := range conjunctions {
		rules = append(rules, Rule{Name: conj.name, Check: conjunctionRule(conj)})
	}
	rules = append(rules,
		Rule{Name: "graha_yuddha", Check: grahaYuddha},
		Rule{Name: "parivartana", Check: parivartana},
	)
	return &PairModule{
		BaseModule: newBaseModule(log, "pair", domain.CategoryPair, rules),
	}
}

func conjunctionRule(conj conjunction) func(*astro.Context, *Collector) {
	return func(ctx *astro.Context, c *Collector) {
		for _, partner := range conj.with {
			if !ctx.IsConjunct(conj.first, partner) {
				continue
			}
			p := params{
				"house":      ctx.House(conj.first),
				"separation": formulas.Round(ctx.Separation(conj.first, partner), 2),
			}
			if conj.name == "budha_aditya" {
				p["mercury_combust"] = ctx.IsCombust(domain.Mercury)
			}
			c.Add(domain.Yoga{
				Name:     conj.name,
				Planets:  planets(conj.first, partner),
				Nature:   conj.nature,
				Strength: ruleStrength(ctx, conj.base, conj.first, partner),
				Params:   p,
			})
		}
	}
}

// grahaYuddha: two war planets in the same sign within WarOrb of each other.
// The stronger planet wins; on equal strength the one at the lower longitude
// wins.
func grahaYuddha(ctx *astro.Context, c *Collector) {
	for i, a := range domain.WarPlanets {
		for _, b := range domain.WarPlanets[i+1:] {
			if !ctx.IsConjunct(a, b) {
				continue
			}
			sep := ctx.Separation(a, b)
			if sep > WarOrb {
				continue
			}
			winner, loser := a, b
			sa, sb := ctx.StrengthOf(a), ctx.StrengthOf(b)
			if sb > sa || (sb == sa && ctx.Longitude(b) < ctx.Longitude(a)) {
				winner, loser = b, a
			}
			c.Add(domain.Yoga{
				Name:     "graha_yuddha",
				Planets:  planets(winner, loser),
				Nature:   domain.NatureMalefic,
				Strength: 5,
				Params: params{
					"winner":     winner.String(),
					"loser":      loser.String(),
					"separation": formulas.Round(sep, 4),
				},
			})
		}
	}
}

// parivartana: two classical planets in each other's signs. An exchange that
// involves a dusthana is dainya, one that involves the 3rd is khala, any
// other is maha. Without a Lagna the exchange is reported unclassified.
func parivartana(ctx *astro.Context, c *Collector) {
	for i, a := range domain.ClassicalPlanets {
		for _, b := range domain.ClassicalPlanets[i+1:] {
			if !ctx.InSignExchange(a, b) {
				continue
			}
			ha, hb := ctx.House(a), ctx.House(b)
			name, nature, base := "parivartana", domain.NatureNeutral, 5.0
			switch {
			case !lagnaKnown(ctx):
			case domain.IsDusthana(ha) || domain.IsDusthana(hb):
				name, nature, base = "dainya_parivartana", domain.NatureMalefic, 5
			case ha == 3 || hb == 3:
				name, nature, base = "khala_parivartana", domain.NatureNeutral, 4
			default:
				name, nature, base = "maha_parivartana", domain.NatureBenefic, 7
			}
			c.Add(domain.Yoga{
				Name:     name,
				Planets:  planets(a, b),
				Nature:   nature,
				Strength: ruleStrength(ctx, base, a, b),
				Params:   params{"houses": []int{ha, hb}},
			})
		}
	}
}

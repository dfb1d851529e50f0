package yogas

import (
	"github.com/aristath/kundali/internal/domain"
	"github.com/aristath/kundali/internal/modules/astro"
	"github.com/rs/zerolog"
)

// RajaModule detects royal combinations: kendra and trikona lords joining,
// Jupiter angular to the Moon, dusthana lords cancelling each other.
type RajaModule struct {
	BaseModule
}

// NewRajaModule creates the raja rule family.
func NewRajaModule(log zerolog.Logger) *RajaModule {
	return &RajaModule{
		BaseModule: newBaseModule(log, "raja", domain.CategoryRaja, []Rule{
			{Name: "gajakesari", Check: gajakesari},
			{Name: "kendra_trikona", Check: kendraTrikona("kendra_trikona", fromLagna)},
			{Name: "dharma_karmadhipati", Check: dharmaKarmadhipati("dharma_karmadhipati", fromLagna)},
			{Name: "yogakaraka", Check: yogakaraka("yogakaraka", fromLagna)},
			{Name: "chandra_kendra_trikona", Check: kendraTrikona("chandra_kendra_trikona", fromMoon)},
			{Name: "chandra_dharma_karmadhipati", Check: dharmaKarmadhipati("chandra_dharma_karmadhipati", fromMoon)},
			{Name: "chandra_yogakaraka", Check: yogakaraka("chandra_yogakaraka", fromMoon)},
			{Name: "viparita_harsha", Check: viparita("viparita_harsha", 6)},
			{Name: "viparita_sarala", Check: viparita("viparita_sarala", 8)},
			{Name: "viparita_vimala", Check: viparita("viparita_vimala", 12)},
			{Name: "chamara", Check: chamara},
			{Name: "maha_bhagya", Check: mahaBhagya},
			{Name: "lagnadhi", Check: lagnadhi},
			{Name: "raja_lakshana", Check: rajaLakshana},
			{Name: "lagna_lord_strong", Check: lagnaLordStrong},
			{Name: "akhanda_samrajya", Check: akhandaSamrajya},
			{Name: "pushkala", Check: pushkala},
		}),
	}
}

// gajakesari: Jupiter in a kendra from the Moon.
func gajakesari(ctx *astro.Context, c *Collector) {
	h := ctx.HouseFromPlanet(domain.Jupiter, domain.Moon)
	if !domain.IsKendra(h) {
		return
	}
	c.Add(domain.Yoga{
		Name:     "gajakesari",
		Planets:  planets(domain.Jupiter, domain.Moon),
		Nature:   domain.NatureBenefic,
		Strength: ruleStrength(ctx, 7, domain.Jupiter, domain.Moon),
		Params: params{
			"house_from_moon": h,
			"jupiter_dignity": string(ctx.Dignity(domain.Jupiter)),
		},
	})
}

// kendraTrikona builds the rule for a kendra lord connected with a trikona
// lord, houses counted from ref. The first house counts as both; each
// planet pair is reported once.
func kendraTrikona(name string, ref houseReference) func(*astro.Context, *Collector) {
	return func(ctx *astro.Context, c *Collector) {
		sign := ref.sign(ctx)
		if !sign.Valid() {
			return
		}
		seen := make(map[[2]domain.Planet]bool)
		for _, k := range domain.Kendras {
			for _, t := range domain.Trikonas {
				if k == t {
					continue
				}
				kl, okK := lordFrom(ctx, k, sign)
				tl, okT := lordFrom(ctx, t, sign)
				if !okK || !okT || kl == tl {
					continue
				}
				pair := [2]domain.Planet{kl, tl}
				if kl.Index() > tl.Index() {
					pair = [2]domain.Planet{tl, kl}
				}
				if seen[pair] || !ctx.IsConnected(kl, tl) {
					continue
				}
				seen[pair] = true
				c.Add(domain.Yoga{
					Name:     name,
					Planets:  planets(kl, tl),
					Nature:   domain.NatureBenefic,
					Strength: ruleStrength(ctx, 7, kl, tl),
					Params: params{
						"kendra_house":  k,
						"trikona_house": t,
						"reference":     ref.name,
					},
				})
			}
		}
	}
}

// dharmaKarmadhipati builds the rule for the lords of the 9th and 10th
// connected, houses counted from ref.
func dharmaKarmadhipati(name string, ref houseReference) func(*astro.Context, *Collector) {
	return func(ctx *astro.Context, c *Collector) {
		sign := ref.sign(ctx)
		ninth, ok9 := lordFrom(ctx, 9, sign)
		tenth, ok10 := lordFrom(ctx, 10, sign)
		if !ok9 || !ok10 || ninth == tenth || !ctx.IsConnected(ninth, tenth) {
			return
		}
		c.Add(domain.Yoga{
			Name:     name,
			Planets:  planets(ninth, tenth),
			Nature:   domain.NatureBenefic,
			Strength: ruleStrength(ctx, 8, ninth, tenth),
			Params:   params{"reference": ref.name},
		})
	}
}

// yogakaraka builds the rule for one planet ruling both a kendra (other than
// the first) and a trikona, houses counted from ref.
func yogakaraka(name string, ref houseReference) func(*astro.Context, *Collector) {
	return func(ctx *astro.Context, c *Collector) {
		sign := ref.sign(ctx)
		if !sign.Valid() {
			return
		}
		for _, p := range domain.ClassicalPlanets {
			if !ctx.Has(p) {
				continue
			}
			kendra, trikona := 0, 0
			for _, h := range []int{4, 7, 10} {
				if ctx.HouseLord(h, sign) == p {
					kendra = h
				}
			}
			for _, h := range []int{5, 9} {
				if ctx.HouseLord(h, sign) == p {
					trikona = h
				}
			}
			if kendra == 0 || trikona == 0 {
				continue
			}
			c.Add(domain.Yoga{
				Name:     name,
				Planets:  planets(p),
				Nature:   domain.NatureBenefic,
				Strength: ruleStrength(ctx, 6, p),
				Params: params{
					"kendra_house":  kendra,
					"trikona_house": trikona,
					"house":         ctx.HouseFrom(p, sign),
					"reference":     ref.name,
				},
			})
		}
	}
}

// viparita builds the rule for a dusthana lord placed in a dusthana.
func viparita(name string, house int) func(*astro.Context, *Collector) {
	return func(ctx *astro.Context, c *Collector) {
		l, ok := lord(ctx, house)
		if !ok {
			return
		}
		h := ctx.House(l)
		if !domain.IsDusthana(h) {
			return
		}
		c.Add(domain.Yoga{
			Name:     name,
			Planets:  planets(l),
			Nature:   domain.NatureBenefic,
			Strength: ruleStrength(ctx, 5, l),
			Params: params{
				"lord_of": house,
				"house":   h,
			},
		})
	}
}

// chamara: the Lagna lord exalted in a kendra and aspected by Jupiter.
func chamara(ctx *astro.Context, c *Collector) {
	l, ok := lord(ctx, 1)
	if !ok || !ctx.IsExalted(l) || !domain.IsKendra(ctx.House(l)) || !ctx.Aspects(domain.Jupiter, l) {
		return
	}
	c.Add(domain.Yoga{
		Name:     "chamara",
		Planets:  planets(l, domain.Jupiter),
		Nature:   domain.NatureBenefic,
		Strength: ruleStrength(ctx, 6, l, domain.Jupiter),
		Params:   params{"house": ctx.House(l)},
	})
}

func isOddSign(s domain.Sign) bool {
	return s.Valid() && int(s)%2 == 0
}

func isEvenSign(s domain.Sign) bool {
	return s.Valid() && int(s)%2 == 1
}

// mahaBhagya: Lagna, Sun and Moon all in odd signs with a day birth, or all
// in even signs with a night birth. Day means the Sun above the horizon.
func mahaBhagya(ctx *astro.Context, c *Collector) {
	sunHouse := ctx.House(domain.Sun)
	if !domain.ValidHouse(sunHouse) || !ctx.Has(domain.Moon) {
		return
	}
	day := sunHouse >= 7
	signs := []domain.Sign{ctx.LagnaSign(), ctx.SunSign(), ctx.MoonSign()}
	match := isOddSign
	birth := "day"
	if !day {
		match = isEvenSign
		birth = "night"
	}
	for _, s := range signs {
		if !match(s) {
			return
		}
	}
	c.Add(domain.Yoga{
		Name:     "maha_bhagya",
		Planets:  planets(domain.Sun, domain.Moon),
		Nature:   domain.NatureBenefic,
		Strength: ruleStrength(ctx, 7, domain.Sun, domain.Moon),
		Params:   params{"birth": birth},
	})
}

// lagnadhi: at least two benefics in the 6th, 7th and 8th from the Lagna
// with no malefic among them.
func lagnadhi(ctx *astro.Context, c *Collector) {
	if !lagnaKnown(ctx) {
		return
	}
	occupants := ctx.PlanetsInHouses([]int{6, 7, 8}, ctx.LagnaSign())
	benefics := ctx.Benefics(occupants)
	if len(benefics) < 2 || len(ctx.Malefics(occupants)) > 0 {
		return
	}
	c.Add(domain.Yoga{
		Name:     "lagnadhi",
		Planets:  benefics,
		Nature:   domain.NatureBenefic,
		Strength: ruleStrength(ctx, 6, benefics...),
		Params:   params{"count": len(benefics)},
	})
}

// rajaLakshana: Jupiter, Venus, Mercury and the Moon all angular from the Lagna.
func rajaLakshana(ctx *astro.Context, c *Collector) {
	if !lagnaKnown(ctx) {
		return
	}
	group := planets(domain.Jupiter, domain.Venus, domain.Mercury, domain.Moon)
	for _, p := range group {
		if !domain.IsKendra(ctx.House(p)) {
			return
		}
	}
	c.Add(domain.Yoga{
		Name:     "raja_lakshana",
		Planets:  group,
		Nature:   domain.NatureBenefic,
		Strength: ruleStrength(ctx, 6, group...),
	})
}

// lagnaLordStrong: the Lagna lord strong in a kendra or trikona.
func lagnaLordStrong(ctx *astro.Context, c *Collector) {
	l, ok := lord(ctx, 1)
	if !ok || !ctx.IsStrong(l) || !kendraOrTrikona(ctx.House(l)) {
		return
	}
	c.Add(domain.Yoga{
		Name:     "lagna_lord_strong",
		Planets:  planets(l),
		Nature:   domain.NatureBenefic,
		Strength: ruleStrength(ctx, 5, l),
		Params: params{
			"house":   ctx.House(l),
			"dignity": string(ctx.Dignity(l)),
		},
	})
}

// akhandaSamrajya: Jupiter rules the 2nd, 5th or 11th from the Lagna and
// stands angular from the Moon, not debilitated.
func akhandaSamrajya(ctx *astro.Context, c *Collector) {
	if !lagnaKnown(ctx) || !ctx.Has(domain.Jupiter) || ctx.IsDebilitated(domain.Jupiter) {
		return
	}
	var ruled []int
	for _, h := range []int{2, 5, 11} {
		if ctx.LagnaLord(h) == domain.Jupiter {
			ruled = append(ruled, h)
		}
	}
	if len(ruled) == 0 || !inKendraFrom(ctx, domain.Jupiter, ctx.MoonSign()) {
		return
	}
	c.Add(domain.Yoga{
		Name:     "akhanda_samrajya",
		Planets:  planets(domain.Jupiter, domain.Moon),
		Nature:   domain.NatureBenefic,
		Strength: ruleStrength(ctx, 7, domain.Jupiter),
		Params: params{
			"lord_of":         ruled,
			"house_from_moon": ctx.HouseFromPlanet(domain.Jupiter, domain.Moon),
		},
	})
}

// pushkala: the Lagna lord with the Moon, and the Moon's dispositor angular
// and aspecting the Lagna.
func pushkala(ctx *astro.Context, c *Collector) {
	first, ok := lord(ctx, 1)
	if !ok || !ctx.IsConjunct(first, domain.Moon) {
		return
	}
	dispositor := ctx.Dispositor(domain.Moon)
	if !ctx.Has(dispositor) || !domain.IsKendra(ctx.House(dispositor)) {
		return
	}
	if !ctx.AspectsSign(dispositor, ctx.LagnaSign()) {
		return
	}
	group := domain.UniquePlanets(planets(first, domain.Moon, dispositor))
	c.Add(domain.Yoga{
		Name:     "pushkala",
		Planets:  group,
		Nature:   domain.NatureBenefic,
		Strength: ruleStrength(ctx, 6, group...),
		Params:   params{"dispositor": dispositor.String()},
	})
}

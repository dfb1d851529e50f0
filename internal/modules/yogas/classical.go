package yogas

import (
	"github.com/aristath/kundali/internal/domain"
	"github.com/aristath/kundali/internal/modules/astro"
	"github.com/aristath/kundali/pkg/formulas"
	"github.com/rs/zerolog"
)

// mahapurusha names the five great-person combinations by planet.
var mahapurusha = []struct {
	planet domain.Planet
	name   string
}{
	{domain.Mars, "ruchaka"},
	{domain.Mercury, "bhadra"},
	{domain.Jupiter, "hamsa"},
	{domain.Venus, "malavya"},
	{domain.Saturn, "sasa"},
}

// sankhya names the nabhasa number combinations by how many signs the seven
// classical planets occupy.
var sankhya = map[int]struct {
	name   string
	nature domain.Nature
}{
	7: {"veena", domain.NatureBenefic},
	6: {"damini", domain.NatureBenefic},
	5: {"pasha", domain.NatureNeutral},
	4: {"kedara", domain.NatureBenefic},
	3: {"shoola", domain.NatureMalefic},
	2: {"yuga", domain.NatureMalefic},
	1: {"gola", domain.NatureMalefic},
}

// lunarFlankers are the planets that count for the Moon- and Sun-flanking
// combinations: no luminaries, no nodes.
var lunarFlankers = []domain.Planet{domain.Mars, domain.Mercury, domain.Jupiter, domain.Venus, domain.Saturn}

// StelliumSize is the occupancy at which a sign holds a stellium.
const StelliumSize = 3

// ClassicalModule detects the rare and textbook combinations: the great-person
// yogas, the lunar and solar flanking yogas, nabhasa patterns and similar.
type ClassicalModule struct {
	BaseModule
}

// NewClassicalModule creates the classical rule family.
func NewClassicalModule(log zerolog.Logger) *ClassicalModule {
	rules := make([]Rule, 0, len(mahapurusha)+40)
	for _, m := range mahapurusha {
		rules = append(rules, Rule{Name: m.name, Check: panchaMahapurusha(m.name, m.planet)})
	}
	rules = append(rules,
		Rule{Name: "chandra_flanking", Check: chandraFlanking},
		Rule{Name: "surya_flanking", Check: suryaFlanking},
		Rule{Name: "chandra_adhi", Check: chandraAdhi},
		Rule{Name: "amala", Check: amala},
		Rule{Name: "shakata", Check: shakata},
		Rule{Name: "chatussagara", Check: chatussagara},
		Rule{Name: "nabhasa_sankhya", Check: nabhasaSankhya},
	)
	rules = append(rules, nabhasaRules()...)
	rules = append(rules,
		Rule{Name: "stellium", Check: stellium},
		Rule{Name: "parvata", Check: parvata},
		Rule{Name: "kahala", Check: lordsInMutualKendra("kahala", 4, 9)},
		Rule{Name: "shankha", Check: lordsInMutualKendra("shankha", 5, 6)},
		Rule{Name: "kala_sarpa", Check: kalaSarpa},
	)
	return &ClassicalModule{
		BaseModule: newBaseModule(log, "classical", domain.CategoryClassical, rules),
	}
}

// panchaMahapurusha: the planet in its own, moolatrikona or exaltation sign
// in a kendra from the Lagna.
func panchaMahapurusha(name string, p domain.Planet) func(*astro.Context, *Collector) {
	return func(ctx *astro.Context, c *Collector) {
		h := ctx.House(p)
		if !domain.IsKendra(h) || !ctx.Dignity(p).IsStrongDignity() {
			return
		}
		c.Add(domain.Yoga{
			Name:     name,
			Planets:  planets(p),
			Nature:   domain.NatureBenefic,
			Strength: ruleStrength(ctx, 7, p),
			Params: params{
				"house":   h,
				"dignity": string(ctx.Dignity(p)),
			},
		})
	}
}

// flankers lists the flanking planets in house h counted from the sign of reference.
func flankers(ctx *astro.Context, reference domain.Planet, h int) []domain.Planet {
	var out []domain.Planet
	for _, p := range lunarFlankers {
		if ctx.HouseFromPlanet(p, reference) == h {
			out = append(out, p)
		}
	}
	return out
}

// chandraFlanking reports exactly one of sunapha (planets 2nd from the Moon),
// anapha (12th), durudhara (both) or kemadruma (neither). Kemadruma is
// cancelled when a planet is angular to the Moon.
func chandraFlanking(ctx *astro.Context, c *Collector) {
	if !ctx.Has(domain.Moon) {
		return
	}
	second := flankers(ctx, domain.Moon, 2)
	twelfth := flankers(ctx, domain.Moon, 12)
	involved := append(append(planets(domain.Moon), second...), twelfth...)

	switch {
	case len(second) > 0 && len(twelfth) > 0:
		c.Add(domain.Yoga{
			Name:     "durudhara",
			Planets:  involved,
			Nature:   domain.NatureBenefic,
			Strength: ruleStrength(ctx, 6, involved...),
		})
	case len(second) > 0:
		c.Add(domain.Yoga{
			Name:     "sunapha",
			Planets:  involved,
			Nature:   domain.NatureBenefic,
			Strength: ruleStrength(ctx, 5, involved...),
		})
	case len(twelfth) > 0:
		c.Add(domain.Yoga{
			Name:     "anapha",
			Planets:  involved,
			Nature:   domain.NatureBenefic,
			Strength: ruleStrength(ctx, 5, involved...),
		})
	default:
		var cancellers []domain.Planet
		for _, p := range lunarFlankers {
			if domain.IsKendra(ctx.HouseFromPlanet(p, domain.Moon)) {
				cancellers = append(cancellers, p)
			}
		}
		if len(cancellers) > 0 {
			c.Add(domain.Yoga{
				Name:     "kemadruma_bhanga",
				Planets:  append(planets(domain.Moon), cancellers...),
				Nature:   domain.NatureNeutral,
				Strength: 3,
				Params:   params{"cancelled_by": planetNames(cancellers)},
			})
			return
		}
		c.Add(domain.Yoga{
			Name:     "kemadruma",
			Planets:  planets(domain.Moon),
			Nature:   domain.NatureMalefic,
			Strength: 6,
		})
	}
}

// suryaFlanking reports vesi (planets 2nd from the Sun), vosi (12th) or
// ubhayachari (both).
func suryaFlanking(ctx *astro.Context, c *Collector) {
	if !ctx.Has(domain.Sun) {
		return
	}
	second := flankers(ctx, domain.Sun, 2)
	twelfth := flankers(ctx, domain.Sun, 12)
	involved := append(append(planets(domain.Sun), second...), twelfth...)

	var name string
	switch {
	case len(second) > 0 && len(twelfth) > 0:
		name = "ubhayachari"
	case len(second) > 0:
		name = "vesi"
	case len(twelfth) > 0:
		name = "vosi"
	default:
		return
	}
	c.Add(domain.Yoga{
		Name:     name,
		Planets:  involved,
		Nature:   natureOf(ctx, involved[1:]),
		Strength: ruleStrength(ctx, 4, involved...),
	})
}

// chandraAdhi: two or more benefics in the 6th, 7th and 8th from the Moon.
// A waxing Moon adds a point.
func chandraAdhi(ctx *astro.Context, c *Collector) {
	moon := ctx.MoonSign()
	if !moon.Valid() {
		return
	}
	benefics := excluding(ctx.Benefics(ctx.PlanetsInHouses([]int{6, 7, 8}, moon)), domain.Moon)
	if len(benefics) < 2 {
		return
	}
	base := float64(4 + len(benefics))
	waxing := ctx.IsWaxingMoon()
	if waxing {
		base++
	}
	c.Add(domain.Yoga{
		Name:     "chandra_adhi",
		Planets:  append(planets(domain.Moon), benefics...),
		Nature:   domain.NatureBenefic,
		Strength: ruleStrength(ctx, base, benefics...),
		Params: params{
			"count":       len(benefics),
			"waxing_moon": waxing,
		},
	})
}

// amala: only benefics occupy the 10th from the Lagna or from the Moon.
func amala(ctx *astro.Context, c *Collector) {
	for _, ref := range []houseReference{fromLagna, fromMoon} {
		occupants := ctx.PlanetsInHouse(10, ref.sign(ctx))
		if len(occupants) == 0 || !onlyBenefics(ctx, occupants) {
			continue
		}
		c.Add(domain.Yoga{
			Name:     "amala",
			Planets:  occupants,
			Nature:   domain.NatureBenefic,
			Strength: ruleStrength(ctx, 5, occupants...),
			Params:   params{"reference": ref.name},
		})
	}
}

// shakata: Jupiter in the 6th, 8th or 12th from the Moon, unless Jupiter is
// angular from the Lagna.
func shakata(ctx *astro.Context, c *Collector) {
	h := ctx.HouseFromPlanet(domain.Jupiter, domain.Moon)
	if !domain.IsDusthana(h) || domain.IsKendra(ctx.House(domain.Jupiter)) {
		return
	}
	c.Add(domain.Yoga{
		Name:     "shakata",
		Planets:  planets(domain.Jupiter, domain.Moon),
		Nature:   domain.NatureMalefic,
		Strength: 5,
		Params:   params{"house_from_moon": h},
	})
}

// chatussagara: every kendra from the Lagna is occupied.
func chatussagara(ctx *astro.Context, c *Collector) {
	if !lagnaKnown(ctx) {
		return
	}
	var involved []domain.Planet
	for _, h := range domain.Kendras {
		occupants := ctx.PlanetsInHouse(h, ctx.LagnaSign())
		if len(occupants) == 0 {
			return
		}
		involved = append(involved, occupants...)
	}
	c.Add(domain.Yoga{
		Name:     "chatussagara",
		Planets:  involved,
		Nature:   natureOf(ctx, involved),
		Strength: 6,
	})
}

// nabhasaSankhya: exactly one number pattern, from how many signs hold the
// seven classical planets.
func nabhasaSankhya(ctx *astro.Context, c *Collector) {
	signs := make(map[domain.Sign]bool)
	for _, p := range domain.ClassicalPlanets {
		if !ctx.Has(p) {
			return
		}
		signs[ctx.Sign(p)] = true
	}
	pattern, ok := sankhya[len(signs)]
	if !ok {
		return
	}
	c.Add(domain.Yoga{
		Name:     pattern.name,
		Planets:  append([]domain.Planet(nil), domain.ClassicalPlanets...),
		Nature:   pattern.nature,
		Strength: 5,
		Params:   params{"signs": len(signs)},
	})
}

// stellium: StelliumSize or more planets in a single sign.
func stellium(ctx *astro.Context, c *Collector) {
	for s := domain.Aries; s <= domain.Pisces; s++ {
		occupants := ctx.PlanetsInSign(s)
		if len(occupants) < StelliumSize {
			continue
		}
		c.Add(domain.Yoga{
			Name:     "stellium",
			Planets:  occupants,
			Nature:   natureOf(ctx, occupants),
			Strength: float64(2 + len(occupants)),
			Params: params{
				"sign":  s.String(),
				"count": len(occupants),
				"house": domain.HouseFrom(s, ctx.LagnaSign()),
			},
		})
	}
}

// parvata: benefics hold the kendras with no malefic there, and the 6th and
// 8th are empty or hold only benefics.
func parvata(ctx *astro.Context, c *Collector) {
	if !lagnaKnown(ctx) {
		return
	}
	lagna := ctx.LagnaSign()
	angular := ctx.PlanetsInHouses(domain.Kendras, lagna)
	if len(angular) == 0 || !onlyBenefics(ctx, angular) {
		return
	}
	for _, h := range []int{6, 8} {
		if !onlyBenefics(ctx, ctx.PlanetsInHouse(h, lagna)) {
			return
		}
	}
	c.Add(domain.Yoga{
		Name:     "parvata",
		Planets:  angular,
		Nature:   domain.NatureBenefic,
		Strength: ruleStrength(ctx, 6, angular...),
	})
}

// lordsInMutualKendra builds a rule for two house lords angular to each
// other while the Lagna lord is strong.
func lordsInMutualKendra(name string, a, b int) func(*astro.Context, *Collector) {
	return func(ctx *astro.Context, c *Collector) {
		la, okA := lord(ctx, a)
		lb, okB := lord(ctx, b)
		first, ok1 := lord(ctx, 1)
		if !okA || !okB || !ok1 || la == lb {
			return
		}
		if !mutualKendra(ctx, la, lb) || !ctx.IsStrong(first) {
			return
		}
		c.Add(domain.Yoga{
			Name:     name,
			Planets:  planets(la, lb, first),
			Nature:   domain.NatureBenefic,
			Strength: ruleStrength(ctx, 6, la, lb, first),
			Params:   params{"houses": []int{a, b}},
		})
	}
}

// kalaSarpa: every classical planet on one side of the Rahu-Ketu axis.
func kalaSarpa(ctx *astro.Context, c *Collector) {
	if !ctx.Has(domain.Rahu) || !ctx.Has(domain.Ketu) {
		return
	}
	rahu := ctx.Longitude(domain.Rahu)
	ketu := ctx.Longitude(domain.Ketu)
	span := formulas.ForwardDistance(rahu, ketu)

	ahead, behind := 0, 0
	for _, p := range domain.ClassicalPlanets {
		if !ctx.Has(p) {
			return
		}
		d := formulas.ForwardDistance(rahu, ctx.Longitude(p))
		switch {
		case d > 0 && d < span:
			ahead++
		case d > span:
			behind++
		default:
			return // on the axis
		}
	}

	direction := "rahu_to_ketu"
	if behind > 0 {
		if ahead > 0 {
			return
		}
		direction = "ketu_to_rahu"
	}
	c.Add(domain.Yoga{
		Name:     "kala_sarpa",
		Planets:  planets(domain.Rahu, domain.Ketu),
		Nature:   domain.NatureMalefic,
		Strength: 6,
		Params:   params{"direction": direction},
	})
}

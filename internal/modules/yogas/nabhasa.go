package yogas

import (
	"github.com/aristath/kundali/internal/domain"
	"github.com/aristath/kundali/internal/modules/astro"
)

// Nabhasa patterns describe where the seven classical planets sit as a
// whole. Ashraya looks at sign modality, dala at benefics or malefics
// holding three kendras, akriti at the shape the occupied houses form.

// ashrayaPatterns name the charts with every classical planet in one modality.
var ashrayaPatterns = []struct {
	name     string
	modality domain.Modality
	nature   domain.Nature
}{
	{"rajju", domain.Movable, domain.NatureNeutral},
	{"musala", domain.Fixed, domain.NatureBenefic},
	{"nala", domain.Dual, domain.NatureNeutral},
}

// akriti is a shape pattern: every classical planet inside one of spans.
// A filled pattern also needs every house of the span occupied.
type akriti struct {
	name   string
	nature domain.Nature
	spans  [][]int
	filled bool
}

// houseRun lists n consecutive houses starting at start.
func houseRun(start, n int) []int {
	out := make([]int, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, (start+i-1)%12+1)
	}
	return out
}

var akritis = []akriti{
	{"gada", domain.NatureBenefic, [][]int{{1, 4}, {4, 7}, {7, 10}, {10, 1}}, true},
	{"shakata_nabhasa", domain.NatureMalefic, [][]int{{1, 7}}, true},
	{"vihaga", domain.NatureNeutral, [][]int{{4, 10}}, true},
	{"shringataka", domain.NatureBenefic, [][]int{{1, 5, 9}}, true},
	{"hala", domain.NatureNeutral, [][]int{{2, 6, 10}, {3, 7, 11}, {4, 8, 12}}, true},
	{"kamala", domain.NatureBenefic, [][]int{domain.Kendras}, true},
	{"vapi", domain.NatureBenefic, [][]int{domain.Panapharas, domain.Apoklimas}, false},
	{"yupa", domain.NatureBenefic, [][]int{houseRun(1, 4)}, true},
	{"shara", domain.NatureMalefic, [][]int{houseRun(4, 4)}, true},
	{"shakti", domain.NatureMalefic, [][]int{houseRun(7, 4)}, true},
	{"danda", domain.NatureMalefic, [][]int{houseRun(10, 4)}, true},
	{"nau", domain.NatureNeutral, [][]int{houseRun(1, 7)}, true},
	{"kuta", domain.NatureMalefic, [][]int{houseRun(4, 7)}, true},
	{"chhatra", domain.NatureBenefic, [][]int{houseRun(7, 7)}, true},
	{"chapa", domain.NatureNeutral, [][]int{houseRun(10, 7)}, true},
	{"ardhachandra", domain.NatureBenefic, [][]int{
		houseRun(2, 7), houseRun(3, 7), houseRun(5, 7), houseRun(6, 7),
		houseRun(8, 7), houseRun(9, 7), houseRun(11, 7), houseRun(12, 7),
	}, true},
	{"chakra", domain.NatureBenefic, [][]int{{1, 3, 5, 7, 9, 11}}, true},
	{"samudra", domain.NatureBenefic, [][]int{{2, 4, 6, 8, 10, 12}}, true},
}

// nabhasaRules lists the nabhasa sub-rules in evaluation order.
func nabhasaRules() []Rule {
	rules := make([]Rule, 0, len(ashrayaPatterns)+len(akritis)+4)
	for _, a := range ashrayaPatterns {
		rules = append(rules, Rule{Name: a.name, Check: ashraya(a.name, a.modality, a.nature)})
	}
	rules = append(rules,
		Rule{Name: "mala", Check: dala("mala", planets(domain.Mercury, domain.Jupiter, domain.Venus), domain.NatureBenefic)},
		Rule{Name: "sarpa", Check: dala("sarpa", planets(domain.Sun, domain.Mars, domain.Saturn), domain.NatureMalefic)},
		Rule{Name: "vajra", Check: beneficMaleficSplit("vajra", []int{1, 7}, []int{4, 10})},
		Rule{Name: "yava", Check: beneficMaleficSplit("yava", []int{4, 10}, []int{1, 7})},
	)
	for _, a := range akritis {
		rules = append(rules, Rule{Name: a.name, Check: akritiRule(a)})
	}
	return rules
}

// ashraya builds the rule for every classical planet in signs of one modality.
func ashraya(name string, m domain.Modality, nature domain.Nature) func(*astro.Context, *Collector) {
	return func(ctx *astro.Context, c *Collector) {
		for _, p := range domain.ClassicalPlanets {
			if !ctx.Has(p) || ctx.Sign(p).Modality() != m {
				return
			}
		}
		c.Add(domain.Yoga{
			Name:     name,
			Planets:  append([]domain.Planet(nil), domain.ClassicalPlanets...),
			Nature:   nature,
			Strength: 5,
			Params:   params{"modality": string(m)},
		})
	}
}

// dala builds the rule for a planet group spread over three different kendras.
func dala(name string, group []domain.Planet, nature domain.Nature) func(*astro.Context, *Collector) {
	return func(ctx *astro.Context, c *Collector) {
		houses := make([]int, 0, len(group))
		for _, p := range group {
			h := ctx.House(p)
			if !domain.IsKendra(h) || domain.InHouses(h, houses) {
				return
			}
			houses = append(houses, h)
		}
		c.Add(domain.Yoga{
			Name:     name,
			Planets:  append([]domain.Planet(nil), group...),
			Nature:   nature,
			Strength: ruleStrength(ctx, 5, group...),
			Params:   params{"houses": houses},
		})
	}
}

// nabhasaLayout maps each house from the Lagna to the classical planets in
// it. It is false when the Lagna or any classical planet is missing.
func nabhasaLayout(ctx *astro.Context) (map[int][]domain.Planet, bool) {
	if !lagnaKnown(ctx) {
		return nil, false
	}
	layout := make(map[int][]domain.Planet)
	for _, p := range domain.ClassicalPlanets {
		h := ctx.House(p)
		if !domain.ValidHouse(h) {
			return nil, false
		}
		layout[h] = append(layout[h], p)
	}
	return layout, true
}

// fitsSpan reports whether every occupied house lies in span and, for a
// filled pattern, every house of span is occupied.
func fitsSpan(layout map[int][]domain.Planet, span []int, filled bool) bool {
	for h := range layout {
		if !domain.InHouses(h, span) {
			return false
		}
	}
	if filled {
		for _, h := range span {
			if len(layout[h]) == 0 {
				return false
			}
		}
	}
	return true
}

// akritiRule builds the rule for one shape pattern. The first matching span
// is reported.
func akritiRule(a akriti) func(*astro.Context, *Collector) {
	return func(ctx *astro.Context, c *Collector) {
		layout, ok := nabhasaLayout(ctx)
		if !ok {
			return
		}
		for _, span := range a.spans {
			if !fitsSpan(layout, span, a.filled) {
				continue
			}
			c.Add(domain.Yoga{
				Name:     a.name,
				Planets:  append([]domain.Planet(nil), domain.ClassicalPlanets...),
				Nature:   a.nature,
				Strength: 5,
				Params:   params{"houses": append([]int(nil), span...)},
			})
			return
		}
	}
}

// beneficMaleficSplit builds vajra and yava: every classical benefic in
// beneficHouses and every other classical planet in maleficHouses, with at
// least one of each.
func beneficMaleficSplit(name string, beneficHouses, maleficHouses []int) func(*astro.Context, *Collector) {
	return func(ctx *astro.Context, c *Collector) {
		if _, ok := nabhasaLayout(ctx); !ok {
			return
		}
		benefics, malefics := 0, 0
		for _, p := range domain.ClassicalPlanets {
			h := ctx.House(p)
			if ctx.IsBenefic(p) {
				if !domain.InHouses(h, beneficHouses) {
					return
				}
				benefics++
				continue
			}
			if !domain.InHouses(h, maleficHouses) {
				return
			}
			malefics++
		}
		if benefics == 0 || malefics == 0 {
			return
		}
		c.Add(domain.Yoga{
			Name:     name,
			Planets:  append([]domain.Planet(nil), domain.ClassicalPlanets...),
			Nature:   domain.NatureBenefic,
			Strength: 5,
			Params: params{
				"benefic_houses": append([]int(nil), beneficHouses...),
				"malefic_houses": append([]int(nil), maleficHouses...),
			},
		})
	}
}

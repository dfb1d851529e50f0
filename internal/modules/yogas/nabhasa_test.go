package yogas

import (
	"testing"

	"github.com/aristath/kundali/internal/domain"
	testingpkg "github.com/aristath/kundali/internal/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// layoutChart places the seven classical planets, in ClassicalPlanets order,
// in the given houses from an Aries Lagna.
func layoutChart(houses ...int) *testingpkg.ChartFixture {
	f := chartWith(domain.Aries)
	for i, h := range houses {
		f.PlaceInHouse(domain.ClassicalPlanets[i], h)
	}
	return f
}

// signChart places the seven classical planets in the given signs with no
// Lagna.
func signChart(signs ...domain.Sign) *testingpkg.ChartFixture {
	f := chartWith(domain.NoSign)
	for i, s := range signs {
		f.PlaceInSign(domain.ClassicalPlanets[i], s)
	}
	return f
}

func akritiNamed(t *testing.T, name string) akriti {
	t.Helper()
	for _, a := range akritis {
		if a.name == name {
			return a
		}
	}
	t.Fatalf("no akriti %q", name)
	return akriti{}
}

func TestNabhasa_Akriti(t *testing.T) {
	tests := []struct {
		name   string
		houses []int
	}{
		{"gada", []int{1, 1, 4, 4, 1, 4, 1}},
		{"shakata_nabhasa", []int{1, 7, 1, 7, 1, 7, 1}},
		{"vihaga", []int{4, 10, 4, 10, 4, 10, 4}},
		{"kamala", []int{1, 4, 7, 10, 1, 4, 7}},
		{"shringataka", []int{1, 5, 9, 1, 5, 9, 1}},
		{"hala", []int{2, 6, 10, 2, 6, 10, 2}},
		{"vapi", []int{2, 5, 8, 11, 2, 5, 8}},
		{"yupa", []int{1, 2, 3, 4, 1, 2, 3}},
		{"shara", []int{4, 5, 6, 7, 4, 5, 6}},
		{"shakti", []int{7, 8, 9, 10, 7, 8, 9}},
		{"danda", []int{10, 11, 12, 1, 10, 11, 12}},
		{"nau", []int{1, 2, 3, 4, 5, 6, 7}},
		{"kuta", []int{4, 5, 6, 7, 8, 9, 10}},
		{"chhatra", []int{7, 8, 9, 10, 11, 12, 1}},
		{"chapa", []int{10, 11, 12, 1, 2, 3, 4}},
		{"ardhachandra", []int{2, 3, 4, 5, 6, 7, 8}},
		{"chakra", []int{1, 3, 5, 7, 9, 11, 1}},
		{"samudra", []int{2, 4, 6, 8, 10, 12, 2}},
	}

	scattered := layoutChart(1, 2, 3, 5, 6, 8, 12)
	incomplete := chartWith(domain.Aries).
		PlaceInHouse(domain.Sun, 1).
		PlaceInHouse(domain.Moon, 4)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ruleTable(t, akritiRule(akritiNamed(t, tt.name)), []ruleCase{
				{"matching layout", layoutChart(tt.houses...), tt.name},
				{"scattered layout", scattered, ""},
				{"planets missing", incomplete, ""},
			})
		})
	}
}

func TestNabhasa_AkritiReportsSpan(t *testing.T) {
	actx := layoutChart(1, 3, 5, 7, 9, 11, 1).Context()

	findings := runRule(actx, akritiRule(akritiNamed(t, "chakra")))
	require.Len(t, findings, 1)
	assert.Equal(t, []int{1, 3, 5, 7, 9, 11}, findings[0].Params["houses"])
	assert.Equal(t, domain.ClassicalPlanets, findings[0].Planets)

	// the reported span must not alias the pattern table
	findings[0].Params["houses"].([]int)[0] = 99
	assert.Equal(t, 1, akritiNamed(t, "chakra").spans[0][0])
}

func TestNabhasa_Ashraya(t *testing.T) {
	movable := signChart(domain.Aries, domain.Cancer, domain.Libra, domain.Capricorn, domain.Aries, domain.Cancer, domain.Libra)
	fixed := signChart(domain.Taurus, domain.Leo, domain.Scorpio, domain.Aquarius, domain.Taurus, domain.Leo, domain.Scorpio)
	dual := signChart(domain.Gemini, domain.Virgo, domain.Sagittarius, domain.Pisces, domain.Gemini, domain.Virgo, domain.Sagittarius)
	mixed := signChart(domain.Aries, domain.Cancer, domain.Libra, domain.Capricorn, domain.Aries, domain.Cancer, domain.Leo)

	tests := []struct {
		name     string
		modality domain.Modality
		nature   domain.Nature
		match    *testingpkg.ChartFixture
	}{
		{"rajju", domain.Movable, domain.NatureNeutral, movable},
		{"musala", domain.Fixed, domain.NatureBenefic, fixed},
		{"nala", domain.Dual, domain.NatureNeutral, dual},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			check := ashraya(tt.name, tt.modality, tt.nature)
			ruleTable(t, check, []ruleCase{
				{"every planet in one modality", tt.match, tt.name},
				{"one planet out of line", mixed, ""},
			})

			findings := runRule(tt.match.Context(), check)
			require.Len(t, findings, 1)
			assert.Equal(t, string(tt.modality), findings[0].Params["modality"])
			assert.Equal(t, tt.nature, findings[0].Nature)
		})
	}
}

func TestNabhasa_Dala(t *testing.T) {
	mala := dala("mala", planets(domain.Mercury, domain.Jupiter, domain.Venus), domain.NatureBenefic)
	sarpa := dala("sarpa", planets(domain.Sun, domain.Mars, domain.Saturn), domain.NatureMalefic)

	ruleTable(t, mala, []ruleCase{
		{"benefics in three kendras", chartWith(domain.Aries).
			PlaceInHouse(domain.Mercury, 1).
			PlaceInHouse(domain.Jupiter, 4).
			PlaceInHouse(domain.Venus, 7), "mala"},
		{"two benefics share a kendra", chartWith(domain.Aries).
			PlaceInHouse(domain.Mercury, 1).
			PlaceInHouse(domain.Jupiter, 1).
			PlaceInHouse(domain.Venus, 7), ""},
	})
	ruleTable(t, sarpa, []ruleCase{
		{"malefics in three kendras", chartWith(domain.Aries).
			PlaceInHouse(domain.Sun, 4).
			PlaceInHouse(domain.Mars, 7).
			PlaceInHouse(domain.Saturn, 10), "sarpa"},
		{"Saturn in the 11th", chartWith(domain.Aries).
			PlaceInHouse(domain.Sun, 4).
			PlaceInHouse(domain.Mars, 7).
			PlaceInHouse(domain.Saturn, 11), ""},
	})

	findings := runRule(chartWith(domain.Aries).
		PlaceInHouse(domain.Sun, 4).
		PlaceInHouse(domain.Mars, 7).
		PlaceInHouse(domain.Saturn, 10).
		Context(), sarpa)
	require.Len(t, findings, 1)
	assert.Equal(t, []int{4, 7, 10}, findings[0].Params["houses"])
	assert.Equal(t, domain.NatureMalefic, findings[0].Nature)
}

func TestNabhasa_BeneficMaleficSplit(t *testing.T) {
	vajra := beneficMaleficSplit("vajra", []int{1, 7}, []int{4, 10})
	yava := beneficMaleficSplit("yava", []int{4, 10}, []int{1, 7})

	// Sun, Moon, Mars, Mercury, Jupiter, Venus, Saturn
	vajraChart := layoutChart(4, 1, 10, 1, 7, 7, 4)
	yavaChart := layoutChart(1, 4, 7, 10, 4, 10, 1)

	ruleTable(t, vajra, []ruleCase{
		{"benefics in the 1st and 7th", vajraChart, "vajra"},
		{"reversed houses", yavaChart, ""},
	})
	ruleTable(t, yava, []ruleCase{
		{"benefics in the 4th and 10th", yavaChart, "yava"},
		{"reversed houses", vajraChart, ""},
	})
}

package yogas

import (
	"testing"

	"github.com/aristath/kundali/internal/domain"
	"github.com/aristath/kundali/internal/modules/astro"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDhanaRules(t *testing.T) {
	// Aries Lagna: Venus rules the 2nd, Saturn the 11th.
	tests := []struct {
		rule  string
		check func(*astro.Context, *Collector)
		cases []ruleCase
	}{
		{"dhana_lord_strong", dhanaLordStrong, []ruleCase{
			{"Venus in moolatrikona in the 7th", chartWith(domain.Aries).PlaceInSign(domain.Venus, domain.Libra), "dhana_lord_strong"},
			{"Venus at home in the 2nd", chartWith(domain.Aries).PlaceInSign(domain.Venus, domain.Taurus), ""},
		}},
		{"dhana_lord_in_labha", lordInHouse("dhana_lord_in_labha", 2, 11), []ruleCase{
			{"Venus in Aquarius", chartWith(domain.Aries).PlaceInSign(domain.Venus, domain.Aquarius), "dhana_lord_in_labha"},
			{"Venus in Pisces", chartWith(domain.Aries).PlaceInSign(domain.Venus, domain.Pisces), ""},
		}},
		{"labha_lord_in_dhana", lordInHouse("labha_lord_in_dhana", 11, 2), []ruleCase{
			{"Saturn in Taurus", chartWith(domain.Aries).PlaceInSign(domain.Saturn, domain.Taurus), "labha_lord_in_dhana"},
			{"Saturn in Gemini", chartWith(domain.Aries).PlaceInSign(domain.Saturn, domain.Gemini), ""},
		}},
		{"chandra_dhana_1_9", wealthLords("chandra_dhana_1_9", fromMoon, 1, 9), []ruleCase{
			{"Mars and Jupiter together, Moon in Aries", chartWith(domain.NoSign).
				PlaceInSign(domain.Moon, domain.Aries).
				PlaceInSign(domain.Mars, domain.Sagittarius).
				PlaceInSign(domain.Jupiter, domain.Sagittarius), "chandra_dhana_1_9"},
			{"no Moon", chartWith(domain.NoSign).
				PlaceInSign(domain.Mars, domain.Sagittarius).
				PlaceInSign(domain.Jupiter, domain.Sagittarius), ""},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.rule, func(t *testing.T) {
			ruleTable(t, tt.check, tt.cases)
		})
	}
}

func TestDhana_CountedFromTheMoon(t *testing.T) {
	actx := chartWith(domain.NoSign).
		PlaceInSign(domain.Moon, domain.Aries).
		PlaceInSign(domain.Mars, domain.Sagittarius).
		PlaceInSign(domain.Jupiter, domain.Sagittarius).
		Context()

	findings := NewDhanaModule(zerolog.Nop()).Evaluate(actx)
	assert.Equal(t, []string{"chandra_dhana_1_9"}, findingNames(findings))
	require.Len(t, findings, 1)
	assert.Equal(t, "moon", findings[0].Params["reference"])
	assert.Equal(t, true, findings[0].Params["conjunct"])
	assert.Equal(t, []int{1, 9}, findings[0].Params["houses"])
}

func TestDhanaLordStrong_ReportsHouse(t *testing.T) {
	actx := chartWith(domain.Aries).PlaceInSign(domain.Venus, domain.Libra).Context()

	findings := runRule(actx, dhanaLordStrong)
	require.Len(t, findings, 1)
	assert.Equal(t, 7, findings[0].Params["house"])
	assert.Equal(t, domain.NatureBenefic, findings[0].Nature)
}

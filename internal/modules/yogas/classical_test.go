package yogas

import (
	"testing"

	"github.com/aristath/kundali/internal/domain"
	"github.com/aristath/kundali/internal/modules/astro"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassicalRules(t *testing.T) {
	tests := []struct {
		rule  string
		check func(*astro.Context, *Collector)
		cases []ruleCase
	}{
		{"chandra_adhi", chandraAdhi, []ruleCase{
			{"Jupiter and Venus in the 7th and 8th from the Moon", chartWith(domain.NoSign).
				PlaceInSign(domain.Moon, domain.Aries).
				PlaceInSign(domain.Jupiter, domain.Libra).
				PlaceInSign(domain.Venus, domain.Scorpio), "chandra_adhi"},
			{"a single benefic", chartWith(domain.NoSign).
				PlaceInSign(domain.Moon, domain.Aries).
				PlaceInSign(domain.Jupiter, domain.Libra), ""},
		}},
		{"amala", amala, []ruleCase{
			{"Jupiter alone in the 10th", chartWith(domain.Aries).PlaceInHouse(domain.Jupiter, 10), "amala"},
			{"Saturn shares the 10th", chartWith(domain.Aries).
				PlaceInHouse(domain.Jupiter, 10).
				PlaceInHouse(domain.Saturn, 10), ""},
		}},
		{"shakata", shakata, []ruleCase{
			{"Jupiter 6th from the Moon", chartWith(domain.Aries).
				PlaceInSign(domain.Moon, domain.Aries).
				PlaceInSign(domain.Jupiter, domain.Virgo), "shakata"},
			{"Jupiter angular from the Lagna", chartWith(domain.Aries).
				PlaceInSign(domain.Moon, domain.Leo).
				PlaceInSign(domain.Jupiter, domain.Capricorn), ""},
			{"Jupiter 9th from the Moon", chartWith(domain.Aries).
				PlaceInSign(domain.Moon, domain.Taurus).
				PlaceInSign(domain.Jupiter, domain.Capricorn), ""},
		}},
		{"kahala", lordsInMutualKendra("kahala", 4, 9), []ruleCase{
			// Aries: the Moon rules the 4th, Jupiter the 9th, Mars the Lagna.
			{"4th and 9th lords angular with a strong Mars", chartWith(domain.Aries).
				PlaceInSign(domain.Moon, domain.Cancer).
				PlaceInSign(domain.Jupiter, domain.Libra).
				PlaceInSign(domain.Mars, domain.Aries), "kahala"},
			{"Lagna lord without strength", chartWith(domain.Aries).
				PlaceInSign(domain.Moon, domain.Cancer).
				PlaceInSign(domain.Jupiter, domain.Libra).
				PlaceInSign(domain.Mars, domain.Gemini), ""},
		}},
		{"shankha", lordsInMutualKendra("shankha", 5, 6), []ruleCase{
			// Aries: the Sun rules the 5th, Mercury the 6th.
			{"5th and 6th lords angular with a strong Mars", chartWith(domain.Aries).
				PlaceInSign(domain.Sun, domain.Leo).
				PlaceInSign(domain.Mercury, domain.Scorpio).
				PlaceInSign(domain.Mars, domain.Aries), "shankha"},
			{"lords adjacent", chartWith(domain.Aries).
				PlaceInSign(domain.Sun, domain.Leo).
				PlaceInSign(domain.Mercury, domain.Virgo).
				PlaceInSign(domain.Mars, domain.Aries), ""},
		}},
		{"surya_flanking", suryaFlanking, []ruleCase{
			{"planet 2nd from the Sun", chartWith(domain.NoSign).
				PlaceInSign(domain.Sun, domain.Aries).
				PlaceInSign(domain.Mars, domain.Taurus), "vesi"},
			{"planet 12th from the Sun", chartWith(domain.NoSign).
				PlaceInSign(domain.Sun, domain.Aries).
				PlaceInSign(domain.Venus, domain.Pisces), "vosi"},
			{"planets on both sides", chartWith(domain.NoSign).
				PlaceInSign(domain.Sun, domain.Aries).
				PlaceInSign(domain.Mars, domain.Taurus).
				PlaceInSign(domain.Venus, domain.Pisces), "ubhayachari"},
			{"the Moon does not count", chartWith(domain.NoSign).
				PlaceInSign(domain.Sun, domain.Aries).
				PlaceInSign(domain.Moon, domain.Taurus), ""},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.rule, func(t *testing.T) {
			ruleTable(t, tt.check, tt.cases)
		})
	}
}

func TestChandraAdhi_WaxingMoon(t *testing.T) {
	tests := []struct {
		name     string
		sun      float64
		waxing   bool
		strength float64
	}{
		// the Moon sits at 3° Aries
		{"waxing Moon adds a point", 340, true, 7},
		{"waning Moon", 60, false, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actx := chartWith(domain.NoSign).
				PlaceInSign(domain.Moon, domain.Aries).
				PlaceInSign(domain.Jupiter, domain.Libra).
				PlaceInSign(domain.Venus, domain.Scorpio).
				Place(domain.Sun, tt.sun).
				Context()

			findings := runRule(actx, chandraAdhi)
			require.Len(t, findings, 1)
			assert.Equal(t, tt.waxing, findings[0].Params["waxing_moon"])
			assert.Equal(t, 2, findings[0].Params["count"])
			assert.Equal(t, tt.strength, findings[0].Strength)
			assert.Equal(t, []domain.Planet{domain.Moon, domain.Jupiter, domain.Venus}, findings[0].Planets)
		})
	}
}

func TestSuryaFlanking_Nature(t *testing.T) {
	actx := chartWith(domain.NoSign).
		PlaceInSign(domain.Sun, domain.Aries).
		PlaceInSign(domain.Mars, domain.Taurus).
		Context()

	findings := runRule(actx, suryaFlanking)
	require.Len(t, findings, 1)
	assert.Equal(t, domain.NatureMalefic, findings[0].Nature)
	assert.Equal(t, []domain.Planet{domain.Sun, domain.Mars}, findings[0].Planets)
}

func TestAmala_FromTheMoon(t *testing.T) {
	actx := chartWith(domain.NoSign).
		PlaceInSign(domain.Moon, domain.Aries).
		PlaceInSign(domain.Venus, domain.Capricorn).
		Context()

	findings := runRule(actx, amala)
	require.Len(t, findings, 1)
	assert.Equal(t, "moon", findings[0].Params["reference"])
}

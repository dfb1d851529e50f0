package yogas

import (
	"testing"

	"github.com/aristath/kundali/internal/domain"
	"github.com/aristath/kundali/internal/modules/astro"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeityRules(t *testing.T) {
	tests := []struct {
		rule  string
		check func(*astro.Context, *Collector)
		cases []ruleCase
	}{
		{"saraswati", saraswati, []ruleCase{
			{"exalted Jupiter with Venus and Mercury placed well", chartWith(domain.Aries).
				PlaceInHouse(domain.Jupiter, 4).
				PlaceInHouse(domain.Venus, 2).
				PlaceInHouse(domain.Mercury, 1), "saraswati"},
			{"Mercury in the 3rd", chartWith(domain.Aries).
				PlaceInHouse(domain.Jupiter, 4).
				PlaceInHouse(domain.Venus, 2).
				PlaceInHouse(domain.Mercury, 3), ""},
			{"Jupiter without strength", chartWith(domain.Aries).
				PlaceInHouse(domain.Jupiter, 1).
				PlaceInHouse(domain.Venus, 2).
				PlaceInHouse(domain.Mercury, 1), ""},
		}},
		{"brahma", brahma, []ruleCase{
			// Aries: 9th lord Jupiter, 11th and 10th lord Saturn, Lagna lord Mars.
			{"all three angular to their lords", chartWith(domain.Aries).
				PlaceInSign(domain.Jupiter, domain.Cancer).
				PlaceInSign(domain.Saturn, domain.Aries).
				PlaceInSign(domain.Venus, domain.Cancer).
				PlaceInSign(domain.Mars, domain.Aries).
				PlaceInSign(domain.Mercury, domain.Libra), "brahma"},
			{"Venus in the 2nd from Saturn", chartWith(domain.Aries).
				PlaceInSign(domain.Jupiter, domain.Cancer).
				PlaceInSign(domain.Saturn, domain.Aries).
				PlaceInSign(domain.Venus, domain.Taurus).
				PlaceInSign(domain.Mars, domain.Aries).
				PlaceInSign(domain.Mercury, domain.Libra), ""},
		}},
		{"vishnu", vishnu, []ruleCase{
			// Jupiter's navamsha in Libra makes Venus its navamsha lord.
			{"lords gathered in the 2nd", chartWith(domain.Aries).
				PlaceInHouse(domain.Jupiter, 2).
				PlaceInHouse(domain.Saturn, 2).
				PlaceInHouse(domain.Venus, 2).
				Navamsha(domain.Jupiter, domain.Libra), "vishnu"},
			{"navamsha lord elsewhere", chartWith(domain.Aries).
				PlaceInHouse(domain.Jupiter, 2).
				PlaceInHouse(domain.Saturn, 2).
				PlaceInHouse(domain.Venus, 3).
				Navamsha(domain.Jupiter, domain.Libra), ""},
			{"navamsha missing", chartWith(domain.Aries).
				PlaceInHouse(domain.Jupiter, 2).
				PlaceInHouse(domain.Saturn, 2).
				PlaceInHouse(domain.Venus, 2).
				WithoutNavamsha(), ""},
		}},
		{"shiva", shiva, []ruleCase{
			{"5th, 9th and 10th lords rotated", chartWith(domain.Aries).
				PlaceInHouse(domain.Sun, 9).
				PlaceInHouse(domain.Jupiter, 10).
				PlaceInHouse(domain.Saturn, 5), "shiva"},
			{"10th lord in the 6th", chartWith(domain.Aries).
				PlaceInHouse(domain.Sun, 9).
				PlaceInHouse(domain.Jupiter, 10).
				PlaceInHouse(domain.Saturn, 6), ""},
		}},
		{"gauri", gauri, []ruleCase{
			// Saturn rules the 10th; its navamsha in Aries hands the rule to Mars.
			{"navamsha lord is the exalted Lagna lord", chartWith(domain.Aries).
				PlaceInSign(domain.Saturn, domain.Aquarius).
				PlaceInSign(domain.Mars, domain.Capricorn).
				Navamsha(domain.Saturn, domain.Aries), "gauri"},
			{"navamsha lord not exalted", chartWith(domain.Aries).
				PlaceInSign(domain.Saturn, domain.Aquarius).
				PlaceInSign(domain.Mars, domain.Capricorn).
				PlaceInSign(domain.Mercury, domain.Capricorn).
				Navamsha(domain.Saturn, domain.Gemini), ""},
			{"navamsha missing", chartWith(domain.Aries).
				PlaceInSign(domain.Saturn, domain.Aquarius).
				PlaceInSign(domain.Mars, domain.Capricorn).
				WithoutNavamsha(), ""},
		}},
		{"kalanidhi", kalanidhi, []ruleCase{
			{"Jupiter in the 2nd joined by Mercury, aspected by Venus", chartWith(domain.Aries).
				PlaceInHouse(domain.Jupiter, 2).
				PlaceInHouse(domain.Mercury, 2).
				PlaceInHouse(domain.Venus, 8), "kalanidhi"},
			{"Venus out of contact", chartWith(domain.Aries).
				PlaceInHouse(domain.Jupiter, 2).
				PlaceInHouse(domain.Mercury, 2).
				PlaceInHouse(domain.Venus, 3), ""},
		}},
		{"hari", beneficsFromLord("hari", 2, []int{2, 12, 8}), []ruleCase{
			// Venus, the 2nd lord, in Leo: Virgo, Cancer and Pisces around it.
			{"benefics in the 2nd, 12th and 8th from the 2nd lord", chartWith(domain.Aries).
				PlaceInSign(domain.Venus, domain.Leo).
				PlaceInSign(domain.Jupiter, domain.Virgo).
				PlaceInSign(domain.Moon, domain.Cancer).
				PlaceInSign(domain.Mercury, domain.Pisces), "hari"},
			{"8th from the lord empty", chartWith(domain.Aries).
				PlaceInSign(domain.Venus, domain.Leo).
				PlaceInSign(domain.Jupiter, domain.Virgo).
				PlaceInSign(domain.Moon, domain.Cancer), ""},
		}},
		{"hara", beneficsFromLord("hara", 7, []int{4, 9, 8}), []ruleCase{
			// Venus, the 7th lord, in Aries: Cancer, Sagittarius and Scorpio.
			{"benefics in the 4th, 9th and 8th from the 7th lord", chartWith(domain.Aries).
				PlaceInSign(domain.Venus, domain.Aries).
				PlaceInSign(domain.Jupiter, domain.Cancer).
				PlaceInSign(domain.Moon, domain.Sagittarius).
				PlaceInSign(domain.Mercury, domain.Scorpio), "hara"},
			{"Mercury turned malefic by Saturn", chartWith(domain.Aries).
				PlaceInSign(domain.Venus, domain.Aries).
				PlaceInSign(domain.Jupiter, domain.Cancer).
				PlaceInSign(domain.Moon, domain.Sagittarius).
				PlaceInSign(domain.Mercury, domain.Scorpio).
				PlaceInSign(domain.Saturn, domain.Scorpio), ""},
		}},
		{"indra", indra, []ruleCase{
			{"5th and 11th lords exchanged with the Moon in the 5th", chartWith(domain.Aries).
				PlaceInSign(domain.Sun, domain.Aquarius).
				PlaceInSign(domain.Saturn, domain.Leo).
				PlaceInSign(domain.Moon, domain.Leo), "indra"},
			{"Moon outside the 5th", chartWith(domain.Aries).
				PlaceInSign(domain.Sun, domain.Aquarius).
				PlaceInSign(domain.Saturn, domain.Leo).
				PlaceInSign(domain.Moon, domain.Virgo), ""},
		}},
		{"srikantha", srikantha, []ruleCase{
			{"Lagna lord and luminaries in kendras and trikonas", chartWith(domain.Aries).
				PlaceInHouse(domain.Mars, 1).
				PlaceInHouse(domain.Sun, 5).
				PlaceInHouse(domain.Moon, 9), "srikantha"},
			{"debilitated Sun in the 7th", chartWith(domain.Aries).
				PlaceInHouse(domain.Mars, 1).
				PlaceInHouse(domain.Sun, 7).
				PlaceInHouse(domain.Moon, 9), ""},
		}},
		{"srinatha", srinatha, []ruleCase{
			// Sagittarius: Mercury rules the 7th and 10th and is exalted in
			// Virgo, the 10th; the Sun rules the 9th.
			{"exalted 7th lord in the 10th with the 9th lord", chartWith(domain.Sagittarius).
				Place(domain.Mercury, 153).
				Place(domain.Sun, 178), "srinatha"},
			{"9th lord apart", chartWith(domain.Sagittarius).
				Place(domain.Mercury, 153).
				Place(domain.Sun, 183), ""},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.rule, func(t *testing.T) {
			ruleTable(t, tt.check, tt.cases)
		})
	}
}

func TestDeityParams(t *testing.T) {
	t.Run("vishnu names the navamsha lord", func(t *testing.T) {
		actx := chartWith(domain.Aries).
			PlaceInHouse(domain.Jupiter, 2).
			PlaceInHouse(domain.Saturn, 2).
			PlaceInHouse(domain.Venus, 2).
			Navamsha(domain.Jupiter, domain.Libra).
			Context()

		findings := runRule(actx, vishnu)
		require.Len(t, findings, 1)
		assert.Equal(t, "Venus", findings[0].Params["navamsha_lord"])
		assert.Equal(t, []domain.Planet{domain.Jupiter, domain.Saturn, domain.Venus}, findings[0].Planets)
	})

	t.Run("kalanidhi reports its house", func(t *testing.T) {
		actx := chartWith(domain.Aries).
			PlaceInHouse(domain.Jupiter, 2).
			PlaceInHouse(domain.Mercury, 2).
			PlaceInHouse(domain.Venus, 8).
			Context()

		findings := runRule(actx, kalanidhi)
		require.Len(t, findings, 1)
		assert.Equal(t, 2, findings[0].Params["house"])
	})

	t.Run("hari names its lord", func(t *testing.T) {
		actx := chartWith(domain.Aries).
			PlaceInSign(domain.Venus, domain.Leo).
			PlaceInSign(domain.Jupiter, domain.Virgo).
			PlaceInSign(domain.Moon, domain.Cancer).
			PlaceInSign(domain.Mercury, domain.Pisces).
			Context()

		findings := runRule(actx, beneficsFromLord("hari", 2, []int{2, 12, 8}))
		require.Len(t, findings, 1)
		assert.Equal(t, "Venus", findings[0].Params["lord"])
		assert.Equal(t, 2, findings[0].Params["lord_of"])
	})
}

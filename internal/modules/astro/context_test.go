package astro_test

import (
	"testing"

	"github.com/aristath/kundali/internal/domain"
	testingpkg "github.com/aristath/kundali/internal/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHouseFromReferences(t *testing.T) {
	ctx := testingpkg.NewChartFixture(domain.Leo).
		Place(domain.Moon, 0).
		Place(domain.Jupiter, 95).
		Place(domain.Sun, 200).
		Context()

	// Jupiter in Cancer is the 4th from an Aries Moon and the 12th from a Leo Lagna.
	assert.Equal(t, 12, ctx.House(domain.Jupiter))
	assert.Equal(t, 4, ctx.HouseFrom(domain.Jupiter, ctx.MoonSign()))
	assert.Equal(t, 4, ctx.HouseFromPlanet(domain.Jupiter, domain.Moon))
	assert.Equal(t, 10, ctx.HouseFromPlanet(domain.Jupiter, domain.Sun))
	assert.Equal(t, domain.Libra, ctx.SunSign())
	assert.Equal(t, 5.0, ctx.DegreeInSign(domain.Jupiter))
	assert.Equal(t, []domain.Planet{domain.Jupiter}, ctx.PlanetsInHouse(4, ctx.MoonSign()))
}

func TestSentinelsNeverMatch(t *testing.T) {
	ctx := testingpkg.NewChartFixture(domain.NoSign).
		Place(domain.Moon, 0).
		Place(domain.Jupiter, 95).
		Context()

	assert.Equal(t, domain.NoSign, ctx.LagnaSign())
	assert.Equal(t, domain.NoHouse, ctx.House(domain.Jupiter))
	assert.Empty(t, ctx.PlanetsInHouse(1, ctx.LagnaSign()))
	assert.Equal(t, domain.Planet(""), ctx.LagnaLord(1))

	// Saturn has no data at all.
	assert.Equal(t, domain.NoSign, ctx.Sign(domain.Saturn))
	assert.Equal(t, -1.0, ctx.Longitude(domain.Saturn))
	assert.Equal(t, -1.0, ctx.DegreeInSign(domain.Saturn))
	assert.False(t, ctx.IsConjunct(domain.Saturn, domain.Moon))
	assert.False(t, ctx.Aspects(domain.Saturn, domain.Moon))
	assert.False(t, ctx.IsCombust(domain.Saturn))
	assert.False(t, ctx.IsStrong(domain.Saturn))
	assert.False(t, ctx.IsBenefic(domain.Saturn))
	assert.False(t, ctx.IsMalefic(domain.Saturn))
	assert.False(t, ctx.IsConnected(domain.Saturn, domain.Jupiter))
	assert.False(t, ctx.IsAfflicted(domain.Saturn))
	assert.Equal(t, -1.0, ctx.Separation(domain.Saturn, domain.Moon))
	assert.Equal(t, 0.0, ctx.StrengthOf(domain.Saturn))
	assert.False(t, ctx.IsWaxingMoon())
}

func TestIsConjunct_SignGranularity(t *testing.T) {
	ctx := testingpkg.NewChartFixture(domain.Aries).
		Place(domain.Mars, 30.5).
		Place(domain.Venus, 59.5).
		Place(domain.Saturn, 60.1).
		Context()

	assert.True(t, ctx.IsConjunct(domain.Mars, domain.Venus))
	assert.False(t, ctx.IsConjunct(domain.Venus, domain.Saturn), "0.6° apart but across a sign boundary")
	assert.False(t, ctx.IsConjunct(domain.Mars, domain.Mars))
	assert.InDelta(t, 0.6, ctx.Separation(domain.Venus, domain.Saturn), 1e-9)
}

func TestAspects(t *testing.T) {
	ctx := testingpkg.NewChartFixture(domain.Aries).
		PlaceInSign(domain.Mars, domain.Aries).
		PlaceInSign(domain.Jupiter, domain.Aries).
		PlaceInSign(domain.Saturn, domain.Aries).
		PlaceInSign(domain.Rahu, domain.Aries).
		PlaceInSign(domain.Venus, domain.Aries).
		Context()

	tests := []struct {
		name     string
		planet   domain.Planet
		expected []domain.Sign
	}{
		{"mars 4 7 8", domain.Mars, []domain.Sign{domain.Cancer, domain.Libra, domain.Scorpio}},
		{"jupiter 5 7 9", domain.Jupiter, []domain.Sign{domain.Leo, domain.Libra, domain.Sagittarius}},
		{"saturn 3 7 10", domain.Saturn, []domain.Sign{domain.Gemini, domain.Libra, domain.Capricorn}},
		{"rahu 5 7 9", domain.Rahu, []domain.Sign{domain.Leo, domain.Libra, domain.Sagittarius}},
		{"venus 7", domain.Venus, []domain.Sign{domain.Libra}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []domain.Sign
			for s := domain.Aries; s <= domain.Pisces; s++ {
				if ctx.AspectsSign(tt.planet, s) {
					got = append(got, s)
				}
			}
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestAspects_BetweenPlanets(t *testing.T) {
	ctx := testingpkg.NewChartFixture(domain.Aries).
		PlaceInSign(domain.Saturn, domain.Aries).
		PlaceInSign(domain.Moon, domain.Capricorn).
		Context()

	assert.True(t, ctx.Aspects(domain.Saturn, domain.Moon), "10th from Saturn")
	assert.False(t, ctx.Aspects(domain.Moon, domain.Saturn), "Saturn is 4th from the Moon")
	assert.False(t, ctx.MutualAspect(domain.Saturn, domain.Moon))
	assert.Equal(t, []domain.Planet{domain.Saturn}, ctx.AspectedBy(domain.Moon))
	assert.True(t, ctx.AspectsHouse(domain.Saturn, 10, ctx.LagnaSign()))
}

func TestIsCombust(t *testing.T) {
	tests := []struct {
		name     string
		build    func(f *testingpkg.ChartFixture)
		planet   domain.Planet
		expected bool
	}{
		{
			name:     "mercury four degrees from the sun",
			build:    func(f *testingpkg.ChartFixture) { f.Place(domain.Mercury, 104) },
			planet:   domain.Mercury,
			expected: true,
		},
		{
			name:     "retrograde mercury inside its tighter orb",
			build:    func(f *testingpkg.ChartFixture) { f.Retrograde(domain.Mercury, 111) },
			planet:   domain.Mercury,
			expected: true,
		},
		{
			name:     "retrograde mercury outside its tighter orb",
			build:    func(f *testingpkg.ChartFixture) { f.Retrograde(domain.Mercury, 113) },
			planet:   domain.Mercury,
			expected: false,
		},
		{
			name:     "venus exactly at the orb is not combust",
			build:    func(f *testingpkg.ChartFixture) { f.Place(domain.Venus, 110) },
			planet:   domain.Venus,
			expected: false,
		},
		{
			name:     "combustion crosses sign boundaries",
			build:    func(f *testingpkg.ChartFixture) { f.Place(domain.Saturn, 88) },
			planet:   domain.Saturn,
			expected: true,
		},
		{
			name:     "nodes never combust",
			build:    func(f *testingpkg.ChartFixture) { f.Place(domain.Rahu, 100.5) },
			planet:   domain.Rahu,
			expected: false,
		},
		{
			name:     "the sun never combusts",
			build:    func(f *testingpkg.ChartFixture) {},
			planet:   domain.Sun,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := testingpkg.NewChartFixture(domain.Aries).Place(domain.Sun, 100)
			tt.build(f)
			assert.Equal(t, tt.expected, f.Context().IsCombust(tt.planet))
		})
	}
}

func TestMercuryNature(t *testing.T) {
	t.Run("alone is benefic", func(t *testing.T) {
		ctx := testingpkg.NewChartFixture(domain.Aries).
			Place(domain.Mercury, 70).
			Place(domain.Sun, 200).
			Context()
		assert.True(t, ctx.IsBenefic(domain.Mercury))
		assert.False(t, ctx.IsMalefic(domain.Mercury))
	})

	t.Run("with the sun in a neutral sign turns malefic", func(t *testing.T) {
		ctx := testingpkg.NewChartFixture(domain.Aries).
			Place(domain.Mercury, 104).
			Place(domain.Sun, 100).
			Context()
		assert.False(t, ctx.IsBenefic(domain.Mercury))
		assert.True(t, ctx.IsMalefic(domain.Mercury))
		assert.Contains(t, ctx.NaturalMalefics(), domain.Mercury)
		assert.NotContains(t, ctx.NaturalBenefics(), domain.Mercury)
	})

	t.Run("in its own sign with saturn stays benefic", func(t *testing.T) {
		ctx := testingpkg.NewChartFixture(domain.Aries).
			Place(domain.Mercury, 64).
			Place(domain.Saturn, 66).
			Context()
		require.Equal(t, domain.DignityOwn, ctx.Dignity(domain.Mercury))
		assert.True(t, ctx.IsBenefic(domain.Mercury))
	})

	t.Run("with venus stays benefic", func(t *testing.T) {
		ctx := testingpkg.NewChartFixture(domain.Aries).
			Place(domain.Mercury, 104).
			Place(domain.Venus, 106).
			Context()
		assert.True(t, ctx.IsBenefic(domain.Mercury))
	})
}

func TestNaturalClassification(t *testing.T) {
	f := testingpkg.NewChartFixture(domain.Aries)
	for i, p := range domain.AllPlanets {
		f.Place(p, float64(i)*35+1)
	}
	ctx := f.Context()

	assert.Equal(t, []domain.Planet{domain.Moon, domain.Mercury, domain.Jupiter, domain.Venus}, ctx.NaturalBenefics())
	assert.Equal(t, []domain.Planet{domain.Sun, domain.Mars, domain.Saturn, domain.Rahu, domain.Ketu}, ctx.NaturalMalefics())
}

func TestIsStrong(t *testing.T) {
	ctx := testingpkg.NewChartFixture(domain.Aries).
		Place(domain.Jupiter, 95). // exalted
		Place(domain.Mars, 5).     // moolatrikona
		Place(domain.Venus, 35).   // own
		Place(domain.Saturn, 65).  // neutral, strong shadbala
		Place(domain.Mercury, 75). // own
		Place(domain.Sun, 190).    // debilitated
		Place(domain.Moon, 130).   // neutral, weak shadbala
		Strength(domain.Saturn, 5.0).
		Strength(domain.Moon, 5.9).
		Context()

	assert.True(t, ctx.IsStrong(domain.Jupiter))
	assert.True(t, ctx.IsStrong(domain.Mars))
	assert.True(t, ctx.IsStrong(domain.Venus))
	assert.True(t, ctx.IsStrong(domain.Saturn))
	assert.True(t, ctx.IsStrong(domain.Mercury))
	assert.False(t, ctx.IsStrong(domain.Sun))
	assert.False(t, ctx.IsStrong(domain.Moon))
}

func TestDignity(t *testing.T) {
	ctx := testingpkg.NewChartFixture(domain.Aries).
		Place(domain.Moon, 31).  // Taurus 1°: exalted
		Place(domain.Sun, 125).  // Leo 5°: moolatrikona
		Place(domain.Mars, 220). // Scorpio: own
		Place(domain.Saturn, 5). // Aries: debilitated
		Context()

	assert.Equal(t, domain.DignityExalted, ctx.Dignity(domain.Moon))
	assert.Equal(t, domain.DignityMoolatrikona, ctx.Dignity(domain.Sun))
	assert.Equal(t, domain.DignityOwn, ctx.Dignity(domain.Mars))
	assert.Equal(t, domain.DignityDebilitated, ctx.Dignity(domain.Saturn))
	assert.True(t, ctx.IsDebilitated(domain.Saturn))
	assert.Equal(t, domain.DignityNeutral, ctx.Dignity(domain.Jupiter))
}

func TestStrengthOf(t *testing.T) {
	ctx := testingpkg.NewChartFixture(domain.Aries).
		Place(domain.Jupiter, 95). // exalted 1.5
		Place(domain.Saturn, 5).   // debilitated 0.5
		Place(domain.Venus, 245).  // neutral 1.0
		Place(domain.Sun, 250).
		Context()

	assert.InDelta(t, 1.0, ctx.StrengthOf(domain.Jupiter, domain.Saturn), 1e-9)
	assert.InDelta(t, 1.5, ctx.StrengthOf(domain.Jupiter, domain.Ketu), 1e-9, "missing planets are ignored")
	assert.InDelta(t, 0.75, ctx.StrengthOf(domain.Venus), 1e-9, "combust Venus")
	assert.Equal(t, 0.0, ctx.StrengthOf())
}

func TestConnections(t *testing.T) {
	ctx := testingpkg.NewChartFixture(domain.Aries).
		PlaceInSign(domain.Mars, domain.Taurus).   // Venus' sign
		PlaceInSign(domain.Venus, domain.Scorpio). // Mars' sign
		PlaceInSign(domain.Jupiter, domain.Gemini).
		PlaceInSign(domain.Mercury, domain.Gemini).
		PlaceInSign(domain.Saturn, domain.Leo).
		PlaceInSign(domain.Moon, domain.Aquarius).
		Context()

	assert.True(t, ctx.InSignExchange(domain.Mars, domain.Venus))
	assert.True(t, ctx.IsConnected(domain.Mars, domain.Venus))
	assert.True(t, ctx.IsConnected(domain.Jupiter, domain.Mercury), "conjunct")
	assert.True(t, ctx.IsConnected(domain.Saturn, domain.Moon), "mutual 7th")
	assert.False(t, ctx.IsConnected(domain.Jupiter, domain.Moon), "Jupiter aspects the Moon one way only")
	assert.Equal(t, domain.Venus, ctx.Dispositor(domain.Mars))
	assert.Equal(t, domain.Mars, ctx.LagnaLord(1))
	assert.Equal(t, domain.Saturn, ctx.HouseLord(10, ctx.LagnaSign()))
}

func TestIsWaxingMoon(t *testing.T) {
	tests := []struct {
		name     string
		sun      float64
		moon     float64
		expected bool
	}{
		{"just after new moon", 100, 110, true},
		{"across zero", 350, 20, true},
		{"full moon", 0, 180, false},
		{"waning", 100, 300, false},
		{"new moon", 42, 42, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := testingpkg.NewChartFixture(domain.Aries).
				Place(domain.Sun, tt.sun).
				Place(domain.Moon, tt.moon).
				Context()
			assert.Equal(t, tt.expected, ctx.IsWaxingMoon())
		})
	}
}

func TestVargottamaAndNavamsha(t *testing.T) {
	// Aries 1° falls in the Aries navamsha.
	ctx := testingpkg.NewChartFixture(domain.Aries).
		Place(domain.Sun, 1).
		Place(domain.Moon, 31).
		Context()
	assert.True(t, ctx.IsVargottama(domain.Sun))
	assert.False(t, ctx.IsVargottama(domain.Moon))

	bare := testingpkg.NewChartFixture(domain.Aries).
		Place(domain.Sun, 1).
		WithoutNavamsha().
		Context()
	_, ok := bare.NavamshaSign(domain.Sun)
	assert.False(t, ok)
	assert.False(t, bare.IsVargottama(domain.Sun))
}

func TestIsAfflicted(t *testing.T) {
	ctx := testingpkg.NewChartFixture(domain.Aries).
		PlaceInSign(domain.Jupiter, domain.Capricorn). // debilitated
		PlaceInSign(domain.Venus, domain.Leo).
		PlaceInSign(domain.Rahu, domain.Leo).
		PlaceInSign(domain.Moon, domain.Gemini).
		PlaceInSign(domain.Mars, domain.Pisces). // 4th aspect on Gemini
		PlaceInSign(domain.Mercury, domain.Taurus).
		Context()

	assert.True(t, ctx.IsAfflicted(domain.Jupiter))
	assert.True(t, ctx.IsAfflicted(domain.Venus), "conjunct Rahu")
	assert.True(t, ctx.IsAfflicted(domain.Moon), "aspected by Mars")
	assert.False(t, ctx.IsAfflicted(domain.Mercury))
}

func TestPhalaAndSuppliedStrength(t *testing.T) {
	ctx := testingpkg.NewChartFixture(domain.Aries).
		Place(domain.Sun, 10).
		Strength(domain.Sun, 6.2).
		Avastha(domain.Sun, 40, 10).
		Context()

	rupas, ok := ctx.SuppliedStrength(domain.Sun)
	require.True(t, ok)
	assert.Equal(t, 6.2, rupas)

	ishta, kashta, ok := ctx.Phala(domain.Sun)
	require.True(t, ok)
	assert.Equal(t, 40.0, ishta)
	assert.Equal(t, 10.0, kashta)

	_, _, ok = ctx.Phala(domain.Moon)
	assert.False(t, ok)
}

// Package chart builds the immutable sidereal natal chart from raw tropical
// positions: signs, nakshatras, houses, navamsha, dignities, the ascendant and
// the Vimshottari dasha timeline.
package chart

import (
	"fmt"
	"math"

	"github.com/aristath/kundali/internal/domain"
	"github.com/aristath/kundali/internal/modules/tables"
	"github.com/aristath/kundali/pkg/formulas"
	"github.com/rs/zerolog"
)

// requiredPlanets must be present in every Input. Ketu is derived from Rahu
// when it is absent.
var requiredPlanets = []domain.Planet{
	domain.Sun, domain.Moon, domain.Mars, domain.Mercury,
	domain.Jupiter, domain.Venus, domain.Saturn, domain.Rahu,
}

// Builder converts an Input into a Chart.
type Builder struct {
	tables     *tables.Reference
	minPeriods int
	log        zerolog.Logger
}

// Option customises a Builder.
type Option func(*Builder)

// WithDashaPeriods sets how many mahadashas to generate (never fewer than MinDashaPeriods).
func WithDashaPeriods(n int) Option {
	return func(b *Builder) {
		if n < MinDashaPeriods {
			n = MinDashaPeriods
		}
		b.minPeriods = n
	}
}

// NewBuilder creates a chart builder over the given reference tables.
func NewBuilder(ref *tables.Reference, log zerolog.Logger, opts ...Option) *Builder {
	b := &Builder{
		tables:     ref,
		minPeriods: len(ref.DashaOrder()),
		log:        log.With().Str("component", "chart_builder").Logger(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build validates the input and produces a Chart. Any invalid or missing
// required value aborts construction with a *BuildError; no partial chart is
// ever returned.
func (b *Builder) Build(in Input) (*domain.Chart, error) {
	positions, err := b.validate(in)
	if err != nil {
		b.log.Warn().Err(err).Msg("Rejected chart input")
		return nil, err
	}

	lagna, err := b.ascendant(in)
	if err != nil {
		return nil, err
	}

	chart := &domain.Chart{
		Birth:     in.Birth,
		Location:  copyLocation(in.Location),
		Ayanamsa:  in.Ayanamsa,
		Lagna:     lagna,
		Planets:   make(map[domain.Planet]domain.PlanetPosition, len(domain.AllPlanets)),
		Navamsha:  make(map[domain.Planet]domain.Sign, len(domain.AllPlanets)),
		Strengths: copyStrengths(in.Strengths),
		Avasthas:  copyAvasthas(in.Avasthas),
	}

	for _, p := range domain.AllPlanets {
		raw := positions[p]
		pos := b.Place(p, raw.Longitude-in.Ayanamsa, raw.Speed, lagna.Sign)
		chart.Planets[p] = pos
		chart.Navamsha[p] = pos.Navamsha
	}

	chart.Dashas = Vimshottari(b.tables, chart.Planets[domain.Moon].Longitude, in.Birth, b.minPeriods)

	b.log.Debug().
		Str("lagna", lagna.Sign.String()).
		Bool("lagna_known", lagna.Known).
		Int("dashas", len(chart.Dashas)).
		Msg("Chart built")

	return chart, nil
}

func (b *Builder) validate(in Input) (map[domain.Planet]RawPosition, error) {
	if in.Birth.IsZero() {
		return nil, buildErr("birth", ErrMissingBirth)
	}
	if !formulas.IsFinite(in.Ayanamsa) || math.Abs(in.Ayanamsa) >= 360 {
		return nil, buildErr("ayanamsa", fmt.Errorf("%w: %v", ErrInvalidAyanamsa, in.Ayanamsa))
	}
	if in.Location != nil {
		if !formulas.IsFinite(in.Location.Latitude) || math.Abs(in.Location.Latitude) >= 90 {
			return nil, buildErr("location.latitude", fmt.Errorf("%w: latitude %v", ErrInvalidLocation, in.Location.Latitude))
		}
		if !formulas.IsFinite(in.Location.Longitude) || math.Abs(in.Location.Longitude) > 180 {
			return nil, buildErr("location.longitude", fmt.Errorf("%w: longitude %v", ErrInvalidLocation, in.Location.Longitude))
		}
	}
	if in.Ascendant != nil && !formulas.IsFinite(*in.Ascendant) {
		return nil, buildErr("ascendant", fmt.Errorf("%w: %v", ErrInvalidLongitude, *in.Ascendant))
	}

	positions := make(map[domain.Planet]RawPosition, len(domain.AllPlanets))
	for _, p := range requiredPlanets {
		raw, ok := in.Positions[p]
		if !ok {
			return nil, buildErr("positions."+string(p), ErrMissingPlanet)
		}
		if err := checkRaw(p, raw); err != nil {
			return nil, err
		}
		positions[p] = raw
	}

	if raw, ok := in.Positions[domain.Ketu]; ok {
		if err := checkRaw(domain.Ketu, raw); err != nil {
			return nil, err
		}
		positions[domain.Ketu] = raw
	} else {
		rahu := positions[domain.Rahu]
		positions[domain.Ketu] = RawPosition{
			Longitude: formulas.NormalizeDegrees(rahu.Longitude + 180),
			Speed:     rahu.Speed,
		}
	}

	return positions, nil
}

func checkRaw(p domain.Planet, raw RawPosition) error {
	if !formulas.IsFinite(raw.Longitude) {
		return buildErr("positions."+string(p)+".longitude", fmt.Errorf("%w: %v", ErrInvalidLongitude, raw.Longitude))
	}
	if !formulas.IsFinite(raw.Speed) {
		return buildErr("positions."+string(p)+".speed", fmt.Errorf("%w: speed %v", ErrInvalidLongitude, raw.Speed))
	}
	return nil
}

// ascendant resolves the Lagna: an explicit tropical ascendant wins, then a
// computed one from birth time and location. Without either the Lagna stays
// the sentinel and every Lagna-relative rule short-circuits.
func (b *Builder) ascendant(in Input) (domain.Ascendant, error) {
	var tropical float64
	switch {
	case in.Ascendant != nil:
		tropical = *in.Ascendant
	case in.Location != nil:
		tropical = TropicalAscendant(in.Birth, in.Location.Latitude, in.Location.Longitude)
	default:
		return domain.Ascendant{Sign: domain.NoSign, Navamsha: domain.NoSign}, nil
	}

	lon := formulas.NormalizeDegrees(tropical - in.Ayanamsa)
	nakshatra, pada := domain.NakshatraOf(lon)
	return domain.Ascendant{
		Known:     true,
		Longitude: lon,
		Sign:      domain.SignOf(lon),
		Nakshatra: nakshatra,
		Pada:      pada,
		Navamsha:  NavamshaSign(lon),
	}, nil
}

// Place derives every field of a PlanetPosition from a sidereal longitude.
// House is NoHouse when lagna is the sentinel.
func (b *Builder) Place(p domain.Planet, sidereal, speed float64, lagna domain.Sign) domain.PlanetPosition {
	lon := formulas.NormalizeDegrees(sidereal)
	sign := domain.SignOf(lon)
	nakshatra, pada := domain.NakshatraOf(lon)
	return domain.PlanetPosition{
		Planet:     p,
		Longitude:  lon,
		Speed:      speed,
		Sign:       sign,
		Nakshatra:  nakshatra,
		Pada:       pada,
		House:      domain.HouseFrom(sign, lagna),
		Navamsha:   NavamshaSign(lon),
		Retrograde: speed < 0,
		Dignity:    b.tables.Dignity(p, sign, lon-float64(sign)*domain.SignSpan),
	}
}

func copyLocation(loc *domain.Location) *domain.Location {
	if loc == nil {
		return nil
	}
	c := *loc
	return &c
}

func copyStrengths(in map[domain.Planet]float64) map[domain.Planet]float64 {
	if len(in) == 0 {
		return nil
	}
	out := make(map[domain.Planet]float64, len(in))
	for p, v := range in {
		out[p] = v
	}
	return out
}

func copyAvasthas(in map[domain.Planet]domain.Avastha) map[domain.Planet]domain.Avastha {
	if len(in) == 0 {
		return nil
	}
	out := make(map[domain.Planet]domain.Avastha, len(in))
	for p, v := range in {
		out[p] = v
	}
	return out
}

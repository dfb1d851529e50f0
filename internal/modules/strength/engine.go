// Package strength turns rule-level findings into comparable 0-100 potency
// scores and works out which dasha lords can trigger them.
package strength

import (
	"slices"

	"github.com/aristath/kundali/internal/domain"
	"github.com/aristath/kundali/internal/modules/astro"
	"github.com/aristath/kundali/pkg/formulas"
	"github.com/rs/zerolog"
)

const (
	// Per-planet sub-score components
	BonusExalted      = 20.0
	BonusMoolatrikona = 15.0
	BonusOwn          = 10.0
	BonusDebilitated  = -10.0
	BonusVargottama   = 10.0

	// Supplied shadbala is scaled and capped before it joins the sub-score
	DefaultSuppliedScale = 2.0
	SuppliedCap          = 20.0

	// The rule's own 1-10 strength is worth up to 50 points
	BaseWeight = 5.0

	MinScore = 0.0
	MaxScore = 100.0
)

// Engine annotates findings with StrengthScore and ActivationPeriods.
type Engine struct {
	scale float64
	log   zerolog.Logger
}

// Option customises an Engine.
type Option func(*Engine)

// WithSuppliedScale sets the factor applied to supplied shadbala rupas.
// Non-positive values keep the default.
func WithSuppliedScale(scale float64) Option {
	return func(e *Engine) {
		if scale > 0 {
			e.scale = scale
		}
	}
}

// NewEngine creates a strength engine.
func NewEngine(log zerolog.Logger, opts ...Option) *Engine {
	e := &Engine{
		scale: DefaultSuppliedScale,
		log:   log.With().Str("component", "strength_engine").Logger(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Scale returns the supplied-strength factor in use.
func (e *Engine) Scale() float64 {
	return e.scale
}

// Apply annotates every finding in place. It never adds, removes or
// reorders findings.
func (e *Engine) Apply(ctx *astro.Context, findings []domain.Yoga) {
	for i := range findings {
		findings[i].StrengthScore = e.Score(ctx, findings[i])
		findings[i].ActivationPeriods = Activation(ctx, findings[i])
	}
	e.log.Debug().Int("findings", len(findings)).Msg("Strength applied")
}

// Score computes the 0-100 potency of a finding: the mean sub-score of its
// classical planets plus the rule strength times BaseWeight.
func (e *Engine) Score(ctx *astro.Context, y domain.Yoga) float64 {
	var subScores []float64
	for _, p := range y.Planets {
		if !p.IsClassical() || !ctx.Has(p) {
			continue
		}
		subScores = append(subScores, e.planetScore(ctx, p))
	}
	total := formulas.Mean(subScores) + y.Strength*BaseWeight
	return formulas.Round(formulas.Clamp(total, MinScore, MaxScore), 2)
}

func (e *Engine) planetScore(ctx *astro.Context, p domain.Planet) float64 {
	score := 0.0
	if rupas, ok := ctx.SuppliedStrength(p); ok {
		score += min(rupas*e.scale, SuppliedCap)
	}
	score += dignityBonus(ctx.Dignity(p))
	if ctx.IsVargottama(p) {
		score += BonusVargottama
	}
	return score
}

func dignityBonus(d domain.Dignity) float64 {
	switch d {
	case domain.DignityExalted:
		return BonusExalted
	case domain.DignityMoolatrikona:
		return BonusMoolatrikona
	case domain.DignityOwn:
		return BonusOwn
	case domain.DignityDebilitated:
		return BonusDebilitated
	}
	return 0
}

// Activation lists the involved planets that rule a Vimshottari period, in
// the finding's planet order.
func Activation(ctx *astro.Context, y domain.Yoga) []domain.Planet {
	lords := ctx.Tables().DashaOrder()
	out := make([]domain.Planet, 0, len(y.Planets))
	for _, p := range y.Planets {
		if domain.ContainsPlanet(lords, p) {
			out = append(out, p)
		}
	}
	return out
}

// Windows returns the mahadashas during which a finding can manifest: those
// ruled by one of its activation planets.
func Windows(y domain.Yoga, timeline domain.Timeline) []domain.DashaPeriod {
	var out []domain.DashaPeriod
	for _, period := range timeline {
		if domain.ContainsPlanet(y.ActivationPeriods, period.Lord) {
			out = append(out, period)
		}
	}
	return out
}

// Rank returns a copy of findings ordered by StrengthScore, highest first.
// Equal scores keep their evaluation order.
func Rank(findings []domain.Yoga) []domain.Yoga {
	ranked := slices.Clone(findings)
	slices.SortStableFunc(ranked, func(a, b domain.Yoga) int {
		switch {
		case a.StrengthScore > b.StrengthScore:
			return -1
		case a.StrengthScore < b.StrengthScore:
			return 1
		}
		return 0
	})
	return ranked
}

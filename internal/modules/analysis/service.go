// Package analysis runs the full pipeline: chart construction, yoga
// evaluation and strength annotation.
package analysis

import (
	"context"
	"fmt"
	"time"

	"github.com/aristath/kundali/internal/domain"
	"github.com/aristath/kundali/internal/modules/astro"
	"github.com/aristath/kundali/internal/modules/chart"
	"github.com/aristath/kundali/internal/modules/strength"
	"github.com/aristath/kundali/internal/modules/tables"
	"github.com/aristath/kundali/internal/modules/yogas"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Report is the result of one analysis. Findings keep evaluation order.
type Report struct {
	ID            string          `json:"id" msgpack:"id"`
	TablesVersion string          `json:"tables_version" msgpack:"tables_version"`
	Chart         *domain.Chart   `json:"chart" msgpack:"chart"`
	Findings      []domain.Yoga   `json:"findings" msgpack:"findings"`
	Dashas        domain.Timeline `json:"dashas" msgpack:"dashas"`
}

// Ranked returns the findings ordered by StrengthScore, highest first.
func (r *Report) Ranked() []domain.Yoga {
	return strength.Rank(r.Findings)
}

// Windows returns the mahadashas that can activate finding i.
func (r *Report) Windows(i int) []domain.DashaPeriod {
	if i < 0 || i >= len(r.Findings) {
		return nil
	}
	return strength.Windows(r.Findings[i], r.Dashas)
}

// Service wires the pipeline stages together.
type Service struct {
	tables   *tables.Reference
	builder  *chart.Builder
	registry *yogas.Registry
	engine   *strength.Engine
	log      zerolog.Logger
}

// NewService creates a new analysis service
func NewService(
	ref *tables.Reference,
	builder *chart.Builder,
	registry *yogas.Registry,
	engine *strength.Engine,
	log zerolog.Logger,
) *Service {
	return &Service{
		tables:   ref,
		builder:  builder,
		registry: registry,
		engine:   engine,
		log:      log.With().Str("service", "analysis").Logger(),
	}
}

// Analyze builds the chart, evaluates every rule module and scores the
// findings. Construction errors are returned wrapped; the only other error
// is cancellation of ctx.
func (s *Service) Analyze(ctx context.Context, in chart.Input) (*Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start := time.Now()

	c, err := s.builder.Build(in)
	if err != nil {
		return nil, fmt.Errorf("failed to build chart: %w", err)
	}

	actx := astro.New(c, s.tables)
	findings, err := s.registry.Evaluate(ctx, actx)
	if err != nil {
		return nil, fmt.Errorf("failed to evaluate yogas: %w", err)
	}
	s.engine.Apply(actx, findings)

	report := &Report{
		ID:            uuid.New().String(),
		TablesVersion: s.tables.Version,
		Chart:         c,
		Findings:      findings,
		Dashas:        c.Dashas,
	}

	s.log.Info().
		Str("report_id", report.ID).
		Str("lagna", c.LagnaSign().String()).
		Int("findings", len(findings)).
		Dur("duration", time.Since(start)).
		Msg("Analysis complete")

	return report, nil
}

// AnalyzeFromProvider fetches positions from an ephemeris and analyzes them.
// ascendant is the tropical ascendant and may be nil.
func (s *Service) AnalyzeFromProvider(
	ctx context.Context,
	provider chart.PositionProvider,
	birth time.Time,
	loc *domain.Location,
	ayanamsa float64,
	ascendant *float64,
) (*Report, error) {
	in, err := chart.InputFromProvider(ctx, provider, birth, loc, ayanamsa)
	if err != nil {
		return nil, err
	}
	in.Ascendant = ascendant
	return s.Analyze(ctx, in)
}

// Package yogas holds the planetary-combination rule engine: independent rule
// modules that read only the astrological context and report findings.
package yogas

import (
	"github.com/aristath/kundali/internal/domain"
	"github.com/aristath/kundali/internal/modules/astro"
	"github.com/rs/zerolog"
)

// Module is the interface that all rule families must implement.
// Each module evaluates an ordered list of independent sub-rules against a
// chart and returns what matched, in sub-rule order.
type Module interface {
	// Name returns the unique identifier for this module.
	Name() string

	// Category returns the finding category this module produces.
	Category() domain.Category

	// Evaluate runs every sub-rule against the context. It never fails:
	// missing data simply means fewer findings.
	Evaluate(ctx *astro.Context) []domain.Yoga
}

// Rule is one named sub-rule. Check appends zero or more findings.
type Rule struct {
	Name  string
	Check func(ctx *astro.Context, c *Collector)
}

// BaseModule provides the common Evaluate loop for all rule families.
type BaseModule struct {
	name     string
	category domain.Category
	rules    []Rule
	log      zerolog.Logger
}

func newBaseModule(log zerolog.Logger, name string, category domain.Category, rules []Rule) BaseModule {
	return BaseModule{
		name:     name,
		category: category,
		rules:    rules,
		log:      log.With().Str("module", name).Logger(),
	}
}

// Name implements Module.
func (m *BaseModule) Name() string {
	return m.name
}

// Category implements Module.
func (m *BaseModule) Category() domain.Category {
	return m.category
}

// Rules lists the sub-rule names in evaluation order.
func (m *BaseModule) Rules() []string {
	names := make([]string, 0, len(m.rules))
	for _, r := range m.rules {
		names = append(names, r.Name)
	}
	return names
}

// Evaluate implements Module.
func (m *BaseModule) Evaluate(ctx *astro.Context) []domain.Yoga {
	c := NewCollector(m.category)
	for _, r := range m.rules {
		before := c.Len()
		r.Check(ctx, c)
		if added := c.Len() - before; added > 0 {
			m.log.Trace().
				Str("rule", r.Name).
				Int("findings", added).
				Msg("Rule matched")
		}
	}

	m.log.Debug().
		Int("rules", len(m.rules)).
		Int("findings", c.Len()).
		Msg("Module evaluated")

	return c.Findings()
}

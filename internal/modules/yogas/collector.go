package yogas

import (
	"fmt"

	"github.com/aristath/kundali/internal/domain"
	"github.com/aristath/kundali/pkg/formulas"
)

// Strength bounds for rule-level findings.
const (
	MinStrength = 1.0
	MaxStrength = 10.0
)

// Collector is the append-only result accumulator of one module run.
// Findings are never removed or reordered.
type Collector struct {
	category domain.Category
	findings []domain.Yoga
}

// NewCollector creates an empty collector for a category.
func NewCollector(category domain.Category) *Collector {
	return &Collector{category: category}
}

// Add appends a finding. It fills in the category and the description key
// when the rule left them empty, drops repeated planets and bounds the
// strength to [MinStrength, MaxStrength].
func (c *Collector) Add(y domain.Yoga) {
	if y.Category == "" {
		y.Category = c.category
	}
	if y.DescriptionKey == "" {
		y.DescriptionKey = DescriptionKey(y.Category, y.Name)
	}
	if y.Nature == "" {
		y.Nature = domain.NatureNeutral
	}
	y.Planets = domain.UniquePlanets(y.Planets)
	y.Strength = formulas.Clamp(y.Strength, MinStrength, MaxStrength)
	c.findings = append(c.findings, y)
}

// Len returns the number of findings collected so far.
func (c *Collector) Len() int {
	return len(c.findings)
}

// Findings returns a copy of the collected findings in append order.
func (c *Collector) Findings() []domain.Yoga {
	out := make([]domain.Yoga, len(c.findings))
	copy(out, c.findings)
	return out
}

// DescriptionKey is the localization key for a finding.
func DescriptionKey(category domain.Category, name string) string {
	return fmt.Sprintf("yoga.%s.%s", category, name)
}

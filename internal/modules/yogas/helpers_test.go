package yogas

import (
	"testing"

	"github.com/aristath/kundali/internal/domain"
	"github.com/aristath/kundali/internal/modules/astro"
	testingpkg "github.com/aristath/kundali/internal/testing"
	"github.com/stretchr/testify/assert"
)

// runRule evaluates a single sub-rule in isolation.
func runRule(actx *astro.Context, check func(*astro.Context, *Collector)) []domain.Yoga {
	c := NewCollector(domain.CategoryClassical)
	check(actx, c)
	return c.Findings()
}

func findingNames(findings []domain.Yoga) []string {
	names := make([]string, 0, len(findings))
	for _, f := range findings {
		names = append(names, f.Name)
	}
	return names
}

func findByName(findings []domain.Yoga, name string) (domain.Yoga, bool) {
	for _, f := range findings {
		if f.Name == name {
			return f, true
		}
	}
	return domain.Yoga{}, false
}

// ruleCase is one chart a single sub-rule is run against. An empty finding
// means the rule must stay silent.
type ruleCase struct {
	name    string
	chart   *testingpkg.ChartFixture
	finding string
}

// ruleTable runs a sub-rule over every case and checks that it reports
// exactly the expected finding, or nothing.
func ruleTable(t *testing.T, check func(*astro.Context, *Collector), cases []ruleCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			findings := runRule(tc.chart.Context(), check)
			if tc.finding == "" {
				assert.Empty(t, findings, "found: %v", findingNames(findings))
				return
			}
			assert.Equal(t, []string{tc.finding}, findingNames(findings))
		})
	}
}

func chartWith(lagna domain.Sign) *testingpkg.ChartFixture {
	return testingpkg.NewChartFixture(lagna)
}

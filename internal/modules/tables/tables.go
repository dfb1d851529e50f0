// Package tables provides the versioned classical reference tables: sign
// lords, dignities, combustion orbs, aspects and dasha allotments.
//
// The tables ship embedded in the binary (classical.toml) so that every run
// of the engine uses the same data unless a caller explicitly parses its own.
package tables

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/aristath/kundali/internal/domain"
	"github.com/pelletier/go-toml/v2"
)

//go:embed classical.toml
var classicalTOML []byte

// VimshottariTotalYears is the length of a full dasha cycle.
const VimshottariTotalYears = 120.0

// PlanetTable holds every per-planet constant.
type PlanetTable struct {
	Natural              string  `toml:"natural"`
	ExaltationSign       int     `toml:"exaltation_sign"`
	ExaltationDegree     float64 `toml:"exaltation_degree"`
	OwnSigns             []int   `toml:"own_signs"`
	MoolatrikonaSign     int     `toml:"moolatrikona_sign"`
	MoolatrikonaFrom     float64 `toml:"moolatrikona_from"`
	MoolatrikonaTo       float64 `toml:"moolatrikona_to"`
	CombustOrb           float64 `toml:"combust_orb"`
	CombustOrbRetrograde float64 `toml:"combust_orb_retrograde"`
	Aspects              []int   `toml:"aspects"`
	RequiredRupas        float64 `toml:"required_rupas"`
	DashaYears           float64 `toml:"dasha_years"`
}

type document struct {
	Version    string                 `toml:"version"`
	SignLords  []string               `toml:"sign_lords"`
	DashaOrder []string               `toml:"dasha_order"`
	Planets    map[string]PlanetTable `toml:"planets"`
}

// Reference is the parsed, validated table set. It is read-only after Parse.
type Reference struct {
	Version    string
	signLords  [domain.SignCount]domain.Planet
	dashaOrder []domain.Planet
	planets    map[domain.Planet]PlanetTable
}

var (
	defaultOnce sync.Once
	defaultRef  *Reference
	defaultErr  error
)

// Default returns the embedded reference tables, parsed once.
func Default() (*Reference, error) {
	defaultOnce.Do(func() {
		defaultRef, defaultErr = Parse(classicalTOML)
	})
	return defaultRef, defaultErr
}

// Parse decodes and validates a TOML table document.
func Parse(data []byte) (*Reference, error) {
	var doc document
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode reference tables: %w", err)
	}

	if doc.Version == "" {
		return nil, fmt.Errorf("reference tables: missing version")
	}
	if len(doc.SignLords) != domain.SignCount {
		return nil, fmt.Errorf("reference tables: expected %d sign lords, got %d", domain.SignCount, len(doc.SignLords))
	}

	ref := &Reference{
		Version: doc.Version,
		planets: make(map[domain.Planet]PlanetTable, len(domain.AllPlanets)),
	}

	for i, name := range doc.SignLords {
		p, err := domain.ParsePlanet(name)
		if err != nil {
			return nil, fmt.Errorf("reference tables: sign lord %d: %w", i, err)
		}
		ref.signLords[i] = p
	}

	if len(doc.DashaOrder) != len(domain.AllPlanets) {
		return nil, fmt.Errorf("reference tables: dasha order must list %d planets, got %d", len(domain.AllPlanets), len(doc.DashaOrder))
	}
	for _, name := range doc.DashaOrder {
		p, err := domain.ParsePlanet(name)
		if err != nil {
			return nil, fmt.Errorf("reference tables: dasha order: %w", err)
		}
		ref.dashaOrder = append(ref.dashaOrder, p)
	}

	totalYears := 0.0
	for _, p := range domain.AllPlanets {
		row, ok := doc.Planets[string(p)]
		if !ok {
			return nil, fmt.Errorf("reference tables: missing planet %s", p)
		}
		if err := validateRow(p, row); err != nil {
			return nil, err
		}
		ref.planets[p] = row
		totalYears += row.DashaYears
	}
	if totalYears != VimshottariTotalYears {
		return nil, fmt.Errorf("reference tables: dasha years sum to %.2f, want %.0f", totalYears, VimshottariTotalYears)
	}

	return ref, nil
}

func validateRow(p domain.Planet, row PlanetTable) error {
	if !domain.Sign(row.ExaltationSign).Valid() {
		return fmt.Errorf("reference tables: %s exaltation sign %d out of range", p, row.ExaltationSign)
	}
	for _, s := range row.OwnSigns {
		if !domain.Sign(s).Valid() {
			return fmt.Errorf("reference tables: %s own sign %d out of range", p, s)
		}
	}
	if row.MoolatrikonaSign != int(domain.NoSign) && !domain.Sign(row.MoolatrikonaSign).Valid() {
		return fmt.Errorf("reference tables: %s moolatrikona sign %d out of range", p, row.MoolatrikonaSign)
	}
	for _, h := range row.Aspects {
		if !domain.ValidHouse(h) {
			return fmt.Errorf("reference tables: %s aspect house %d out of range", p, h)
		}
	}
	if row.DashaYears <= 0 {
		return fmt.Errorf("reference tables: %s dasha years must be positive", p)
	}
	return nil
}

// SignLord returns the ruler of a sign, or "" for the sentinel.
func (r *Reference) SignLord(s domain.Sign) domain.Planet {
	if !s.Valid() {
		return ""
	}
	return r.signLords[s]
}

// OwnSigns returns the signs ruled by p.
func (r *Reference) OwnSigns(p domain.Planet) []domain.Sign {
	row := r.planets[p]
	signs := make([]domain.Sign, 0, len(row.OwnSigns))
	for _, s := range row.OwnSigns {
		signs = append(signs, domain.Sign(s))
	}
	return signs
}

// ExaltationSign returns the sign where p is exalted.
func (r *Reference) ExaltationSign(p domain.Planet) domain.Sign {
	row, ok := r.planets[p]
	if !ok {
		return domain.NoSign
	}
	return domain.Sign(row.ExaltationSign)
}

// DebilitationSign is the sign opposite the exaltation sign.
func (r *Reference) DebilitationSign(p domain.Planet) domain.Sign {
	return r.ExaltationSign(p).Add(6)
}

// Moolatrikona returns the moolatrikona sign and degree range of p.
func (r *Reference) Moolatrikona(p domain.Planet) (domain.Sign, float64, float64, bool) {
	row, ok := r.planets[p]
	if !ok || row.MoolatrikonaSign == int(domain.NoSign) {
		return domain.NoSign, 0, 0, false
	}
	return domain.Sign(row.MoolatrikonaSign), row.MoolatrikonaFrom, row.MoolatrikonaTo, true
}

// CombustOrb returns the combustion orb of p; ok is false for planets that
// never combust.
func (r *Reference) CombustOrb(p domain.Planet, retrograde bool) (float64, bool) {
	row := r.planets[p]
	orb := row.CombustOrb
	if retrograde {
		orb = row.CombustOrbRetrograde
	}
	return orb, orb > 0
}

// AspectHouses returns the houses, counted from the planet, that p aspects.
func (r *Reference) AspectHouses(p domain.Planet) []int {
	return append([]int(nil), r.planets[p].Aspects...)
}

// RequiredRupas returns the minimum shadbala for p to count as strong; 0 means no requirement.
func (r *Reference) RequiredRupas(p domain.Planet) float64 {
	return r.planets[p].RequiredRupas
}

// DashaYears returns the mahadasha length of p.
func (r *Reference) DashaYears(p domain.Planet) float64 {
	return r.planets[p].DashaYears
}

// DashaOrder returns the Vimshottari lord sequence.
func (r *Reference) DashaOrder() []domain.Planet {
	return append([]domain.Planet(nil), r.dashaOrder...)
}

// NakshatraLord returns the dasha lord of nakshatra idx.
func (r *Reference) NakshatraLord(idx int) domain.Planet {
	if idx < 0 {
		return ""
	}
	return r.dashaOrder[idx%len(r.dashaOrder)]
}

// IsNaturalBenefic reports the table classification, before any
// chart-dependent adjustment.
func (r *Reference) IsNaturalBenefic(p domain.Planet) bool {
	return r.planets[p].Natural == "benefic"
}

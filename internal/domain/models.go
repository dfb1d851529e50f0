// Package domain provides the core chart and finding models shared by every module.
package domain

import "time"

// Dignity is a planet's sign-based strength category.
type Dignity string

const (
	DignityExalted      Dignity = "exalted"
	DignityDebilitated  Dignity = "debilitated"
	DignityOwn          Dignity = "own"
	DignityMoolatrikona Dignity = "moolatrikona"
	DignityNeutral      Dignity = "neutral"
)

// IsStrongDignity reports whether d is exalted, own or moolatrikona.
func (d Dignity) IsStrongDignity() bool {
	return d == DignityExalted || d == DignityOwn || d == DignityMoolatrikona
}

// Nature is the overall quality of a finding.
type Nature string

const (
	NatureBenefic Nature = "benefic"
	NatureMalefic Nature = "malefic"
	NatureNeutral Nature = "neutral"
)

// PlanetPosition is one planet's placement in the built chart.
type PlanetPosition struct {
	Planet     Planet  `json:"planet"`
	Longitude  float64 `json:"longitude"` // sidereal, [0,360)
	Speed      float64 `json:"speed"`
	Sign       Sign    `json:"sign"`
	Nakshatra  int     `json:"nakshatra"`
	Pada       int     `json:"pada"`
	House      int     `json:"house"` // from Lagna, NoHouse without a Lagna
	Navamsha   Sign    `json:"navamsha"`
	Retrograde bool    `json:"retrograde"`
	Dignity    Dignity `json:"dignity"`
}

// DegreeInSign returns the longitude within the occupied sign.
func (p PlanetPosition) DegreeInSign() float64 {
	return p.Longitude - float64(p.Sign)*SignSpan
}

// Ascendant is the rising point. Known is false when the caller supplied
// neither an ascendant nor a location, in which case Sign is NoSign.
type Ascendant struct {
	Known     bool    `json:"known"`
	Longitude float64 `json:"longitude"`
	Sign      Sign    `json:"sign"`
	Nakshatra int     `json:"nakshatra"`
	Pada      int     `json:"pada"`
	Navamsha  Sign    `json:"navamsha"`
}

// Avastha is externally computed state data for a planet. It is passed
// through untouched.
type Avastha struct {
	State       string  `json:"state,omitempty"`
	IshtaPhala  float64 `json:"ishta_phala"`
	KashtaPhala float64 `json:"kashta_phala"`
}

// Location is a geographic position in degrees (east and north positive).
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Chart is the immutable natal chart produced by the chart builder.
type Chart struct {
	Birth     time.Time                 `json:"birth"`
	Location  *Location                 `json:"location,omitempty"`
	Ayanamsa  float64                   `json:"ayanamsa"`
	Lagna     Ascendant                 `json:"lagna"`
	Planets   map[Planet]PlanetPosition `json:"planets"`
	Navamsha  map[Planet]Sign           `json:"navamsha,omitempty"`
	Strengths map[Planet]float64        `json:"strengths,omitempty"` // shadbala in rupas
	Avasthas  map[Planet]Avastha        `json:"avasthas,omitempty"`
	Dashas    Timeline                  `json:"dashas,omitempty"`
}

// Position returns a planet's placement.
func (c *Chart) Position(p Planet) (PlanetPosition, bool) {
	if c == nil {
		return PlanetPosition{}, false
	}
	pos, ok := c.Planets[p]
	return pos, ok
}

// LagnaSign returns the ascendant sign, or NoSign when unknown.
func (c *Chart) LagnaSign() Sign {
	if c == nil || !c.Lagna.Known {
		return NoSign
	}
	return c.Lagna.Sign
}

// Category groups findings by rule family.
type Category string

const (
	CategoryRaja         Category = "raja"
	CategoryDhana        Category = "dhana"
	CategoryDaridra      Category = "daridra"
	CategoryBandhana     Category = "bandhana"
	CategoryKartari      Category = "kartari"
	CategoryClassical    Category = "classical"
	CategoryDeity        Category = "deity"
	CategoryPair         Category = "pair"
	CategoryNeechaBhanga Category = "neecha_bhanga"
	CategoryMoksha       Category = "moksha"
	CategoryArishta      Category = "arishta"
)

// Yoga is one detected planetary combination. Text is never produced here:
// Name and DescriptionKey are opaque keys resolved by a localization layer
// using Params.
type Yoga struct {
	Name              string         `json:"name" msgpack:"name"`
	Category          Category       `json:"category" msgpack:"category"`
	DescriptionKey    string         `json:"description_key" msgpack:"description_key"`
	Params            map[string]any `json:"params,omitempty" msgpack:"params,omitempty"`
	Planets           []Planet       `json:"planets" msgpack:"planets"`
	Nature            Nature         `json:"nature" msgpack:"nature"`
	Strength          float64        `json:"strength" msgpack:"strength"`             // 1-10, set by the rule
	StrengthScore     float64        `json:"strength_score" msgpack:"strength_score"` // 0-100, set by the strength engine
	ActivationPeriods []Planet       `json:"activation_periods" msgpack:"activation_periods"`
}

package domain

import (
	"fmt"
	"slices"
)

// Planet identifies one of the nine grahas.
type Planet string

const (
	Sun     Planet = "Sun"
	Moon    Planet = "Moon"
	Mars    Planet = "Mars"
	Mercury Planet = "Mercury"
	Jupiter Planet = "Jupiter"
	Venus   Planet = "Venus"
	Saturn  Planet = "Saturn"
	Rahu    Planet = "Rahu"
	Ketu    Planet = "Ketu"
)

// AllPlanets is the canonical planet order. Every iteration that produces
// output (findings, house occupants) walks planets in this order.
var AllPlanets = []Planet{Sun, Moon, Mars, Mercury, Jupiter, Venus, Saturn, Rahu, Ketu}

// ClassicalPlanets are the seven visible planets (no lunar nodes).
var ClassicalPlanets = []Planet{Sun, Moon, Mars, Mercury, Jupiter, Venus, Saturn}

// WarPlanets are the planets that can take part in a planetary war:
// neither luminaries nor nodes.
var WarPlanets = []Planet{Mars, Mercury, Jupiter, Venus, Saturn}

// Index returns the planet's position in AllPlanets, or -1 when unknown.
func (p Planet) Index() int {
	for i, candidate := range AllPlanets {
		if candidate == p {
			return i
		}
	}
	return -1
}

// Valid reports whether p is one of the nine planets.
func (p Planet) Valid() bool {
	return p.Index() >= 0
}

// IsClassical reports whether p is one of the seven classical planets.
func (p Planet) IsClassical() bool {
	i := p.Index()
	return i >= 0 && i < len(ClassicalPlanets)
}

// IsNode reports whether p is Rahu or Ketu.
func (p Planet) IsNode() bool {
	return p == Rahu || p == Ketu
}

// IsLuminary reports whether p is the Sun or the Moon.
func (p Planet) IsLuminary() bool {
	return p == Sun || p == Moon
}

// String returns the planet name.
func (p Planet) String() string {
	return string(p)
}

// ParsePlanet converts a name into a Planet.
func ParsePlanet(name string) (Planet, error) {
	p := Planet(name)
	if !p.Valid() {
		return "", fmt.Errorf("unknown planet: %q", name)
	}
	return p, nil
}

// SortPlanets orders planets by canonical index in place and returns the slice.
func SortPlanets(planets []Planet) []Planet {
	slices.SortStableFunc(planets, func(a, b Planet) int {
		return a.Index() - b.Index()
	})
	return planets
}

// ContainsPlanet reports whether p is in planets.
func ContainsPlanet(planets []Planet, p Planet) bool {
	for _, candidate := range planets {
		if candidate == p {
			return true
		}
	}
	return false
}

// UniquePlanets removes repeated planets, keeping the first occurrence.
func UniquePlanets(planets []Planet) []Planet {
	seen := make(map[Planet]bool, len(planets))
	result := make([]Planet, 0, len(planets))
	for _, p := range planets {
		if seen[p] {
			continue
		}
		seen[p] = true
		result = append(result, p)
	}
	return result
}

package domain

import "time"

// DashaLevel distinguishes major periods from their sub-periods.
type DashaLevel string

const (
	DashaMaha  DashaLevel = "maha"
	DashaAntar DashaLevel = "antar"
)

// DashaPeriod is one Vimshottari period. Sub holds the antardashas of a
// mahadasha and is empty for an antardasha.
type DashaPeriod struct {
	Lord  Planet        `json:"lord"`
	Level DashaLevel    `json:"level"`
	Start time.Time     `json:"start"`
	End   time.Time     `json:"end"`
	Years float64       `json:"years"`
	Sub   []DashaPeriod `json:"sub,omitempty"`
}

// Contains reports whether t falls in [Start, End).
func (d DashaPeriod) Contains(t time.Time) bool {
	return !t.Before(d.Start) && t.Before(d.End)
}

// Timeline is the ordered sequence of mahadashas.
type Timeline []DashaPeriod

// At returns the mahadasha and antardasha running at t.
func (tl Timeline) At(t time.Time) (DashaPeriod, DashaPeriod, bool) {
	for _, maha := range tl {
		if !maha.Contains(t) {
			continue
		}
		for _, antar := range maha.Sub {
			if antar.Contains(t) {
				return maha, antar, true
			}
		}
		return maha, DashaPeriod{}, true
	}
	return DashaPeriod{}, DashaPeriod{}, false
}

// Lords returns the mahadasha lords in timeline order.
func (tl Timeline) Lords() []Planet {
	lords := make([]Planet, 0, len(tl))
	for _, p := range tl {
		lords = append(lords, p.Lord)
	}
	return lords
}

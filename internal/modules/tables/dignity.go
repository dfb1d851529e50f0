package tables

import "github.com/aristath/kundali/internal/domain"

// Dignity classifies a placement. Precedence: moolatrikona (sign and degree
// range) over exaltation over debilitation over own sign. Both the chart
// builder and the astrological context call this so the rule lives in one place.
func (r *Reference) Dignity(p domain.Planet, sign domain.Sign, degree float64) domain.Dignity {
	if !sign.Valid() {
		return domain.DignityNeutral
	}
	if mt, from, to, ok := r.Moolatrikona(p); ok && mt == sign && degree >= from && degree < to {
		return domain.DignityMoolatrikona
	}
	if sign == r.ExaltationSign(p) {
		return domain.DignityExalted
	}
	if sign == r.DebilitationSign(p) {
		return domain.DignityDebilitated
	}
	for _, own := range r.OwnSigns(p) {
		if own == sign {
			return domain.DignityOwn
		}
	}
	return domain.DignityNeutral
}

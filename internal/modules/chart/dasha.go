package chart

import (
	"math"
	"time"

	"github.com/aristath/kundali/internal/domain"
	"github.com/aristath/kundali/internal/modules/tables"
)

// daysPerMonth is the mean Gregorian month.
const daysPerMonth = 365.2425 / 12

// MinDashaPeriods is the floor on generated mahadashas.
const MinDashaPeriods = 6

// AddYears moves t by a fractional number of years: whole years, then whole
// months, then the remaining fraction of a month as days. Negative values move
// backwards.
func AddYears(t time.Time, years float64) time.Time {
	whole := math.Trunc(years)
	months := (years - whole) * 12
	wholeMonths := math.Trunc(months)
	days := (months - wholeMonths) * daysPerMonth

	shifted := t.AddDate(int(whole), int(wholeMonths), 0)
	return shifted.Add(time.Duration(days * float64(24*time.Hour)))
}

// Vimshottari generates count consecutive mahadashas starting at birth. The
// Moon's nakshatra lord runs first, for the part of its period the Moon has not
// yet traversed; antardashas are laid out from the period's theoretical start
// and clipped at birth.
func Vimshottari(ref *tables.Reference, moonLongitude float64, birth time.Time, count int) domain.Timeline {
	if count < MinDashaPeriods {
		count = MinDashaPeriods
	}

	order := ref.DashaOrder()
	nakshatra, _ := domain.NakshatraOf(moonLongitude)
	fraction := domain.NakshatraFraction(moonLongitude)
	startLord := ref.NakshatraLord(nakshatra)
	startIdx := indexOf(order, startLord)

	timeline := make(domain.Timeline, 0, count)
	cursor := birth
	for i := 0; i < count; i++ {
		lord := order[(startIdx+i)%len(order)]
		full := ref.DashaYears(lord)
		years := full
		theoreticalStart := cursor
		if i == 0 {
			years = full * (1 - fraction)
			theoreticalStart = AddYears(birth, -full*fraction)
		}

		end := AddYears(cursor, years)
		period := domain.DashaPeriod{
			Lord:  lord,
			Level: domain.DashaMaha,
			Start: cursor,
			End:   end,
			Years: years,
			Sub:   antardashas(ref, order, lord, theoreticalStart, cursor, end),
		}
		timeline = append(timeline, period)
		cursor = end
	}
	return timeline
}

// antardashas subdivides a mahadasha of lord. Sub-periods are generated from
// the theoretical start; those wholly before clipStart are dropped and the
// first surviving one is clipped. The last sub-period ends exactly at end.
func antardashas(
	ref *tables.Reference,
	order []domain.Planet,
	lord domain.Planet,
	theoreticalStart, clipStart, end time.Time,
) []domain.DashaPeriod {
	mahaYears := ref.DashaYears(lord)
	startIdx := indexOf(order, lord)

	subs := make([]domain.DashaPeriod, 0, len(order))
	cursor := theoreticalStart
	for j := 0; j < len(order); j++ {
		subLord := order[(startIdx+j)%len(order)]
		years := mahaYears * ref.DashaYears(subLord) / tables.VimshottariTotalYears
		subEnd := AddYears(cursor, years)
		if j == len(order)-1 || subEnd.After(end) {
			subEnd = end
		}

		if subEnd.After(clipStart) {
			start := cursor
			if start.Before(clipStart) {
				start = clipStart
				years = subEnd.Sub(start).Hours() / 24 / 365.2425
			}
			subs = append(subs, domain.DashaPeriod{
				Lord:  subLord,
				Level: domain.DashaAntar,
				Start: start,
				End:   subEnd,
				Years: years,
			})
		}
		cursor = subEnd
		if !cursor.Before(end) {
			break
		}
	}
	return subs
}

func indexOf(order []domain.Planet, p domain.Planet) int {
	for i, candidate := range order {
		if candidate == p {
			return i
		}
	}
	return 0
}

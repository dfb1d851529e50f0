package yogas

import (
	"github.com/aristath/kundali/internal/domain"
	"github.com/aristath/kundali/internal/modules/astro"
	"github.com/aristath/kundali/pkg/formulas"
	"github.com/rs/zerolog"
)

// Debilitation cancellation weights. Each satisfied condition adds its
// bonus to the base strength.
const (
	NeechaBhangaBase = 3.0

	bonusDispositorAngular    = 1.5
	bonusExaltLordAngular     = 1.5
	bonusDispositorExalted    = 2.0
	bonusAspectedByDispositor = 2.0
	bonusWithExaltedPlanet    = 2.0
	bonusNavamshaExalted      = 3.0
	bonusDispositorOwnAspect  = 1.5
	bonusDispositorExchange   = 2.5

	// phalaScale turns the ishta minus kashta difference (each 0-60) into a
	// nudge of at most one point.
	phalaScale = 60.0

	// neechaBhangaRajaConditions promotes a cancellation to a raja yoga.
	neechaBhangaRajaConditions = 3
)

// cancellation is one independent condition of the catalog.
// Conditions marked needsDispositor are skipped when the dispositor is
// missing from the chart.
type cancellation struct {
	name            string
	bonus           float64
	needsDispositor bool
	check           func(ctx *astro.Context, p, dispositor domain.Planet) bool
}

var cancellations = []cancellation{
	{"dispositor_in_kendra", bonusDispositorAngular, true, dispositorInKendra},
	{"exaltation_lord_in_kendra", bonusExaltLordAngular, false, exaltationLordInKendra},
	{"dispositor_exalted", bonusDispositorExalted, true, dispositorExalted},
	{"aspected_by_dispositor", bonusAspectedByDispositor, true, aspectedByDispositor},
	{"conjunct_exalted_planet", bonusWithExaltedPlanet, false, conjunctExaltedPlanet},
	{"exalted_in_navamsha", bonusNavamshaExalted, false, exaltedInNavamsha},
	{"dispositor_aspects_own_sign", bonusDispositorOwnAspect, true, dispositorAspectsOwnSign},
	{"exchange_with_dispositor", bonusDispositorExchange, true, exchangeWithDispositor},
}

// NeechaBhangaModule detects the cancellation of a planet's debilitation.
type NeechaBhangaModule struct {
	BaseModule
}

// NewNeechaBhangaModule creates the neecha bhanga rule family.
func NewNeechaBhangaModule(log zerolog.Logger) *NeechaBhangaModule {
	return &NeechaBhangaModule{
		BaseModule: newBaseModule(log, "neecha_bhanga", domain.CategoryNeechaBhanga, []Rule{
			{Name: "neecha_bhanga", Check: neechaBhanga},
			{Name: "neecha_bhanga_raja", Check: neechaBhangaRaja},
		}),
	}
}

// inKendraFromLagnaOrMoon reports whether p is angular from the Lagna or from the Moon.
func inKendraFromLagnaOrMoon(ctx *astro.Context, p domain.Planet) bool {
	return inKendraFrom(ctx, p, ctx.LagnaSign()) || inKendraFrom(ctx, p, ctx.MoonSign())
}

func dispositorInKendra(ctx *astro.Context, _, dispositor domain.Planet) bool {
	return inKendraFromLagnaOrMoon(ctx, dispositor)
}

func exaltationLordInKendra(ctx *astro.Context, p, _ domain.Planet) bool {
	l := ctx.SignLord(ctx.Tables().ExaltationSign(p))
	return l != "" && l != p && inKendraFromLagnaOrMoon(ctx, l)
}

func dispositorExalted(ctx *astro.Context, _, dispositor domain.Planet) bool {
	return ctx.IsExalted(dispositor)
}

func aspectedByDispositor(ctx *astro.Context, p, dispositor domain.Planet) bool {
	return ctx.Aspects(dispositor, p)
}

func conjunctExaltedPlanet(ctx *astro.Context, p, _ domain.Planet) bool {
	for _, other := range ctx.PlanetsInSign(ctx.Sign(p)) {
		if other != p && ctx.IsExalted(other) {
			return true
		}
	}
	return false
}

func exaltedInNavamsha(ctx *astro.Context, p, _ domain.Planet) bool {
	nav, ok := ctx.NavamshaSign(p)
	return ok && nav == ctx.Tables().ExaltationSign(p)
}

// dispositorAspectsOwnSign: the dispositor aspects another sign it rules.
func dispositorAspectsOwnSign(ctx *astro.Context, p, dispositor domain.Planet) bool {
	for _, s := range ctx.Tables().OwnSigns(dispositor) {
		if s != ctx.Sign(p) && ctx.AspectsSign(dispositor, s) {
			return true
		}
	}
	return false
}

func exchangeWithDispositor(ctx *astro.Context, p, dispositor domain.Planet) bool {
	return ctx.InSignExchange(p, dispositor)
}

// cancelledDebility is the outcome of the cancellation catalog for one
// debilitated planet.
type cancelledDebility struct {
	planet   domain.Planet
	involved []domain.Planet
	met      []string
	strength float64
	phala    bool
}

// debilityCancellations runs the catalog for every debilitated classical
// planet and keeps those with at least one condition met.
func debilityCancellations(ctx *astro.Context) []cancelledDebility {
	var out []cancelledDebility
	for _, p := range domain.ClassicalPlanets {
		if !ctx.IsDebilitated(p) {
			continue
		}
		dispositor := ctx.Dispositor(p)
		if !ctx.Has(dispositor) {
			dispositor = ""
		}

		result := cancelledDebility{planet: p, involved: planets(p), strength: NeechaBhangaBase}
		for _, cond := range cancellations {
			if dispositor == "" && cond.needsDispositor {
				continue
			}
			if cond.check(ctx, p, dispositor) {
				result.strength += cond.bonus
				result.met = append(result.met, cond.name)
			}
		}
		if len(result.met) == 0 {
			continue
		}

		if ishta, kashta, ok := ctx.Phala(p); ok {
			result.strength += (ishta - kashta) / phalaScale
			result.phala = true
		}
		result.strength = formulas.Round(formulas.Clamp(result.strength, MinStrength, MaxStrength), 2)
		if dispositor != "" {
			result.involved = append(result.involved, dispositor)
		}
		out = append(out, result)
	}
	return out
}

// neechaBhanga: a debilitated planet with at least one cancellation condition.
func neechaBhanga(ctx *astro.Context, c *Collector) {
	for _, r := range debilityCancellations(ctx) {
		detail := params{
			"planet":     r.planet.String(),
			"conditions": r.met,
		}
		if r.phala {
			detail["phala_adjusted"] = true
		}
		c.Add(domain.Yoga{
			Name:     "neecha_bhanga",
			Planets:  r.involved,
			Nature:   domain.NatureBenefic,
			Strength: r.strength,
			Params:   detail,
		})
	}
}

// neechaBhangaRaja: a cancellation backed by neechaBhangaRajaConditions or
// more conditions rises to a raja yoga.
func neechaBhangaRaja(ctx *astro.Context, c *Collector) {
	for _, r := range debilityCancellations(ctx) {
		if len(r.met) < neechaBhangaRajaConditions {
			continue
		}
		c.Add(domain.Yoga{
			Name:     "neecha_bhanga_raja",
			Planets:  r.involved,
			Nature:   domain.NatureBenefic,
			Strength: formulas.Clamp(r.strength+1, MinStrength, MaxStrength),
			Params:   params{"planet": r.planet.String(), "count": len(r.met)},
		})
	}
}

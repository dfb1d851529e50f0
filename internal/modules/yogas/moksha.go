package yogas

import (
	"github.com/aristath/kundali/internal/domain"
	"github.com/aristath/kundali/internal/modules/astro"
	"github.com/rs/zerolog"
)

// PravrajyaSize is how many classical planets must share a sign for renunciation.
const PravrajyaSize = 4

// asceticOrders names the kind of renunciation by the strongest planet of
// the group.
var asceticOrders = map[domain.Planet]string{
	domain.Sun:     "vanaprastha",
	domain.Moon:    "vriddha",
	domain.Mars:    "shakya",
	domain.Mercury: "ajivika",
	domain.Jupiter: "bhikshu",
	domain.Venus:   "charaka",
	domain.Saturn:  "nirgrantha",
}

// mokshaHouses are the 4th, 8th and 12th.
var mokshaHouses = []int{4, 8, 12}

// MokshaModule detects spiritual and liberation combinations.
type MokshaModule struct {
	BaseModule
}

// NewMokshaModule creates the moksha rule family.
func NewMokshaModule(log zerolog.Logger) *MokshaModule {
	return &MokshaModule{
		BaseModule: newBaseModule(log, "moksha", domain.CategoryMoksha, []Rule{
			{Name: "pravrajya", Check: pravrajya},
			{Name: "ketu_in_vyaya", Check: ketuInVyaya},
			{Name: "vyaya_lord_in_vyaya", Check: vyayaLordInVyaya},
			{Name: "tapasvi", Check: tapasvi},
			{Name: "guru_ketu", Check: guruKetu},
			{Name: "sanyasa", Check: sanyasa},
			{Name: "moksha_benefics", Check: mokshaBenefics},
			{Name: "dharma_lord_in_vyaya", Check: dharmaLordInVyaya},
			{Name: "vairagya", Check: vairagya},
			{Name: "moksha_lords_connected", Check: mokshaLordsConnected},
			{Name: "ketu_in_moksha_house", Check: ketuInMokshaHouse},
		}),
	}
}

// pravrajya: PravrajyaSize or more classical planets in one sign. The
// strongest of them names the order; a combust strongest planet spoils it.
func pravrajya(ctx *astro.Context, c *Collector) {
	for s := domain.Aries; s <= domain.Pisces; s++ {
		group := classicalOnly(ctx.PlanetsInSign(s))
		if len(group) < PravrajyaSize {
			continue
		}
		strongest := group[0]
		for _, p := range group[1:] {
			if ctx.StrengthOf(p) > ctx.StrengthOf(strongest) {
				strongest = p
			}
		}
		if ctx.IsCombust(strongest) {
			continue
		}
		c.Add(domain.Yoga{
			Name:     "pravrajya",
			Planets:  group,
			Nature:   domain.NatureNeutral,
			Strength: ruleStrength(ctx, 6, strongest),
			Params: params{
				"sign":      s.String(),
				"count":     len(group),
				"strongest": strongest.String(),
				"order":     asceticOrders[strongest],
			},
		})
	}
}

// ketuInVyaya: Ketu in the 12th from the Lagna.
func ketuInVyaya(ctx *astro.Context, c *Collector) {
	if ctx.House(domain.Ketu) != 12 {
		return
	}
	c.Add(domain.Yoga{
		Name:     "ketu_in_vyaya",
		Planets:  planets(domain.Ketu),
		Nature:   domain.NatureBenefic,
		Strength: 5,
	})
}

// vyayaLordInVyaya: the 12th lord in its own house.
func vyayaLordInVyaya(ctx *astro.Context, c *Collector) {
	l, ok := lord(ctx, 12)
	if !ok || ctx.House(l) != 12 {
		return
	}
	c.Add(domain.Yoga{
		Name:     "vyaya_lord_in_vyaya",
		Planets:  planets(l),
		Nature:   domain.NatureBenefic,
		Strength: ruleStrength(ctx, 5, l),
	})
}

// tapasvi: Venus connected with both Saturn and Ketu.
func tapasvi(ctx *astro.Context, c *Collector) {
	if !ctx.IsConnected(domain.Venus, domain.Saturn) || !ctx.IsConnected(domain.Venus, domain.Ketu) {
		return
	}
	group := planets(domain.Venus, domain.Saturn, domain.Ketu)
	c.Add(domain.Yoga{
		Name:     "tapasvi",
		Planets:  group,
		Nature:   domain.NatureNeutral,
		Strength: ruleStrength(ctx, 5, group...),
	})
}

// guruKetu: Jupiter joined with Ketu.
func guruKetu(ctx *astro.Context, c *Collector) {
	if !ctx.IsConjunct(domain.Jupiter, domain.Ketu) {
		return
	}
	c.Add(domain.Yoga{
		Name:     "guru_ketu",
		Planets:  planets(domain.Jupiter, domain.Ketu),
		Nature:   domain.NatureBenefic,
		Strength: ruleStrength(ctx, 5, domain.Jupiter),
		Params:   params{"house": ctx.House(domain.Jupiter)},
	})
}

// sanyasa: the Lagna lord aspected by Saturn and by no other planet.
func sanyasa(ctx *astro.Context, c *Collector) {
	l, ok := lord(ctx, 1)
	if !ok || l == domain.Saturn {
		return
	}
	aspecting := ctx.AspectedBy(l)
	if len(aspecting) != 1 || aspecting[0] != domain.Saturn {
		return
	}
	c.Add(domain.Yoga{
		Name:     "sanyasa",
		Planets:  planets(l, domain.Saturn),
		Nature:   domain.NatureNeutral,
		Strength: 5,
	})
}

// mokshaBenefics: two or more benefics in the 4th, 8th and 12th.
func mokshaBenefics(ctx *astro.Context, c *Collector) {
	if !lagnaKnown(ctx) {
		return
	}
	benefics := ctx.Benefics(ctx.PlanetsInHouses(mokshaHouses, ctx.LagnaSign()))
	if len(benefics) < 2 {
		return
	}
	c.Add(domain.Yoga{
		Name:     "moksha_benefics",
		Planets:  benefics,
		Nature:   domain.NatureBenefic,
		Strength: ruleStrength(ctx, 5, benefics...),
		Params:   params{"count": len(benefics)},
	})
}

// dharmaLordInVyaya: the 9th lord in the 12th.
func dharmaLordInVyaya(ctx *astro.Context, c *Collector) {
	l, ok := lord(ctx, 9)
	if !ok || ctx.House(l) != 12 {
		return
	}
	c.Add(domain.Yoga{
		Name:     "dharma_lord_in_vyaya",
		Planets:  planets(l),
		Nature:   domain.NatureNeutral,
		Strength: 4,
	})
}

// vairagya: Saturn joined with or aspecting the Moon.
func vairagya(ctx *astro.Context, c *Collector) {
	conjunct := ctx.IsConjunct(domain.Saturn, domain.Moon)
	if !conjunct && !ctx.Aspects(domain.Saturn, domain.Moon) {
		return
	}
	c.Add(domain.Yoga{
		Name:     "vairagya",
		Planets:  planets(domain.Saturn, domain.Moon),
		Nature:   domain.NatureNeutral,
		Strength: ruleStrength(ctx, 4, domain.Saturn),
		Params:   params{"conjunct": conjunct},
	})
}

// mokshaLordsConnected: the 4th and 12th lords connected.
func mokshaLordsConnected(ctx *astro.Context, c *Collector) {
	fourth, ok4 := lord(ctx, 4)
	twelfth, ok12 := lord(ctx, 12)
	if !ok4 || !ok12 || fourth == twelfth || !ctx.IsConnected(fourth, twelfth) {
		return
	}
	c.Add(domain.Yoga{
		Name:     "moksha_lords_connected",
		Planets:  planets(fourth, twelfth),
		Nature:   domain.NatureBenefic,
		Strength: ruleStrength(ctx, 5, fourth, twelfth),
	})
}

// ketuInMokshaHouse: Ketu in the 4th or 8th. The 12th is ketu_in_vyaya.
func ketuInMokshaHouse(ctx *astro.Context, c *Collector) {
	h := ctx.House(domain.Ketu)
	if h != 4 && h != 8 {
		return
	}
	c.Add(domain.Yoga{
		Name:     "ketu_in_moksha_house",
		Planets:  planets(domain.Ketu),
		Nature:   domain.NatureNeutral,
		Strength: 4,
		Params:   params{"house": h},
	})
}

package yogas

import (
	"context"
	"fmt"

	"github.com/aristath/kundali/internal/domain"
	"github.com/aristath/kundali/internal/evaluation/workers"
	"github.com/aristath/kundali/internal/modules/astro"
	"github.com/rs/zerolog"
)

// Registry holds the rule modules in priority order. Findings are merged in
// module order, then sub-rule order, whether modules run sequentially or on
// a worker pool.
type Registry struct {
	modules []Module
	pool    *workers.WorkerPool
	log     zerolog.Logger
}

// NewRegistry creates an empty registry that evaluates sequentially.
func NewRegistry(log zerolog.Logger) *Registry {
	return &Registry{
		log: log.With().Str("component", "yoga_registry").Logger(),
	}
}

// SetPool enables parallel evaluation on pool. A nil pool restores
// sequential evaluation.
func (r *Registry) SetPool(pool *workers.WorkerPool) {
	r.pool = pool
}

// Register appends a module. Registering a name twice replaces the earlier
// module in place, keeping its priority.
func (r *Registry) Register(module Module) {
	name := module.Name()
	for i, existing := range r.modules {
		if existing.Name() == name {
			r.modules[i] = module
			r.log.Warn().Str("name", name).Msg("Replaced module")
			return
		}
	}
	r.modules = append(r.modules, module)
	r.log.Debug().
		Str("name", name).
		Str("category", string(module.Category())).
		Msg("Registered module")
}

// Get retrieves a module by name.
func (r *Registry) Get(name string) (Module, error) {
	for _, m := range r.modules {
		if m.Name() == name {
			return m, nil
		}
	}
	return nil, fmt.Errorf("module not found: %s", name)
}

// List returns the modules in priority order.
func (r *Registry) List() []Module {
	out := make([]Module, len(r.modules))
	copy(out, r.modules)
	return out
}

// Evaluate runs every module against the chart context and returns the
// merged findings. The only error is cancellation of ctx.
func (r *Registry) Evaluate(ctx context.Context, actx *astro.Context) ([]domain.Yoga, error) {
	var perModule [][]domain.Yoga
	if r.pool == nil {
		perModule = make([][]domain.Yoga, 0, len(r.modules))
		for _, m := range r.modules {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			perModule = append(perModule, m.Evaluate(actx))
		}
	} else {
		jobs := make([]workers.Job[[]domain.Yoga], 0, len(r.modules))
		for _, m := range r.modules {
			jobs = append(jobs, workers.Job[[]domain.Yoga]{
				Name: m.Name(),
				Run: func(context.Context) ([]domain.Yoga, error) {
					return m.Evaluate(actx), nil
				},
			})
		}
		progress := func(current, total int, name string) {
			r.log.Trace().
				Str("module", name).
				Int("completed", current).
				Int("total", total).
				Msg("Module finished")
		}
		var err error
		perModule, err = workers.Run(ctx, r.pool, jobs, progress)
		if err != nil {
			return nil, err
		}
	}

	var findings []domain.Yoga
	for i, found := range perModule {
		r.log.Debug().
			Str("module", r.modules[i].Name()).
			Int("findings", len(found)).
			Msg("Module completed")
		findings = append(findings, found...)
	}

	r.log.Info().
		Int("modules", len(r.modules)).
		Int("findings", len(findings)).
		Bool("parallel", r.pool != nil).
		Msg("Yoga evaluation complete")

	return findings, nil
}

// NewPopulatedRegistry creates a registry with every rule family registered
// in priority order.
func NewPopulatedRegistry(log zerolog.Logger) *Registry {
	registry := NewRegistry(log)

	registry.Register(NewRajaModule(log))
	registry.Register(NewDhanaModule(log))
	registry.Register(NewDaridraModule(log))
	registry.Register(NewBandhanaModule(log))
	registry.Register(NewKartariModule(log))
	registry.Register(NewClassicalModule(log))
	registry.Register(NewDeityModule(log))
	registry.Register(NewPairModule(log))
	registry.Register(NewNeechaBhangaModule(log))
	registry.Register(NewMokshaModule(log))
	registry.Register(NewArishtaModule(log))

	log.Debug().
		Int("modules", len(registry.modules)).
		Msg("Yoga registry initialized")

	return registry
}

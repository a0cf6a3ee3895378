// Package generator produces synthetic MockError values, either one at a
// time or on a timer driven by a named scenario.
package generator

import (
	"math/rand"
	"sync"
	"time"

	"github.com/glitchlab/faultdeck/logging"
	"github.com/glitchlab/faultdeck/models"
)

// EmitCallback receives every error produced by an active scenario.
type EmitCallback func(models.MockError)

// Generator produces MockError instances. Generation is total: any input,
// including an unknown category, yields a valid error. The random source is
// injected so tests can seed it.
type Generator struct {
	pools     map[models.ErrorCategory][]Template
	scenarios map[string]models.ErrorScenario
	rng       *rand.Rand

	// Scenario state. generation increments on every start/stop so a
	// cancelled emission loop can detect it is stale and go quiet.
	scenario   *models.ErrorScenario
	generation uint64
	stopCh     chan struct{}
	callbacks  []EmitCallback

	mu sync.RWMutex
}

// Option customizes a Generator.
type Option func(*Generator)

// WithRand injects a seeded random source.
func WithRand(rng *rand.Rand) Option {
	return func(g *Generator) { g.rng = rng }
}

// WithPools replaces the built-in template pools.
func WithPools(pools map[models.ErrorCategory][]Template) Option {
	return func(g *Generator) { g.pools = pools }
}

// New creates a Generator with the default pools and scenarios.
func New(opts ...Option) *Generator {
	g := &Generator{
		pools:     DefaultPools(),
		scenarios: DefaultScenarios(),
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// OnError registers a callback invoked for every scenario-emitted error.
func (g *Generator) OnError(callback EmitCallback) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.callbacks = append(g.callbacks, callback)
}

// GenerateError produces an error of the given category. Unknown categories
// and categories with an empty pool fall back to generic.
func (g *Generator) GenerateError(category models.ErrorCategory) models.MockError {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.generateLocked(category)
}

// GenerateRandomError produces an error of a uniformly chosen category.
func (g *Generator) GenerateRandomError() models.MockError {
	g.mu.Lock()
	defer g.mu.Unlock()

	categories := models.AllCategories()
	return g.generateLocked(categories[g.rng.Intn(len(categories))])
}

func (g *Generator) generateLocked(category models.ErrorCategory) models.MockError {
	category = models.NormalizeCategory(category)

	templates := g.pools[category]
	if len(templates) == 0 {
		category = models.CategoryGeneric
		templates = g.pools[category]
	}
	if len(templates) == 0 {
		// Even the generic pool is empty; synthesize a minimal notice.
		return models.NewMockError(models.CategoryGeneric, "unexpected",
			"Something Went Wrong", "An unexpected problem occurred.",
			models.SeverityMedium, false, []models.RecoveryActionKind{models.ActionDismiss})
	}

	tmpl := templates[g.rng.Intn(len(templates))]
	title := tmpl.Titles[g.rng.Intn(len(tmpl.Titles))]
	message := tmpl.Messages[g.rng.Intn(len(tmpl.Messages))]
	retryable := g.rng.Float64() < tmpl.RetryableBias

	actions := make([]models.RecoveryActionKind, len(tmpl.Actions))
	copy(actions, tmpl.Actions)

	return models.NewMockError(category, tmpl.Subtype, title, message, tmpl.Severity, retryable, actions)
}

// Scenario looks up a built-in scenario by name.
func (g *Generator) Scenario(name string) (models.ErrorScenario, bool) {
	scenario, ok := g.scenarios[name]
	return scenario, ok
}

// CurrentScenario returns the active scenario, or nil when none is running.
func (g *Generator) CurrentScenario() *models.ErrorScenario {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if g.scenario == nil {
		return nil
	}
	scenario := *g.scenario
	return &scenario
}

// StartScenario begins timed emission for the scenario. At most one scenario
// runs at a time; starting replaces any prior one.
func (g *Generator) StartScenario(scenario models.ErrorScenario) error {
	if err := scenario.Validate(); err != nil {
		return err
	}
	if scenario.Interval < models.MinScenarioInterval {
		scenario.Interval = models.MinScenarioInterval
	}

	g.mu.Lock()
	g.stopLocked()

	s := scenario
	g.scenario = &s
	g.generation++
	g.stopCh = make(chan struct{})

	generation := g.generation
	stopCh := g.stopCh
	g.mu.Unlock()

	logging.LogInfof("scenario %s started (interval %s)", scenario.Name, scenario.Interval)
	go g.emitLoop(s, generation, stopCh)
	return nil
}

// StopScenario cancels the active scenario. Calling it with none active is a
// no-op.
func (g *Generator) StopScenario() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.stopLocked()
}

func (g *Generator) stopLocked() {
	if g.scenario == nil {
		return
	}
	logging.LogInfof("scenario %s stopped", g.scenario.Name)
	g.scenario = nil
	g.generation++
	if g.stopCh != nil {
		close(g.stopCh)
		g.stopCh = nil
	}
}

// emitLoop ticks at the scenario interval and emits weighted errors until
// stopped. The generation check closes the race between a tick firing and
// the scenario being replaced: a stale loop must not emit.
func (g *Generator) emitLoop(scenario models.ErrorScenario, generation uint64, stopCh <-chan struct{}) {
	ticker := time.NewTicker(scenario.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			g.mu.Lock()
			if g.generation != generation {
				g.mu.Unlock()
				return
			}
			err := g.generateLocked(g.pickWeightedLocked(scenario.Weights))
			callbacks := make([]EmitCallback, len(g.callbacks))
			copy(callbacks, g.callbacks)
			g.mu.Unlock()

			for _, callback := range callbacks {
				callback(err)
			}
		}
	}
}

// pickWeightedLocked selects a category proportionally to its weight.
func (g *Generator) pickWeightedLocked(weights map[models.ErrorCategory]int) models.ErrorCategory {
	total := 0
	// Iterate in stable order so a seeded rng is reproducible.
	for _, category := range models.AllCategories() {
		if w := weights[category]; w > 0 {
			total += w
		}
	}
	if total == 0 {
		return models.CategoryGeneric
	}

	pick := g.rng.Intn(total)
	for _, category := range models.AllCategories() {
		w := weights[category]
		if w <= 0 {
			continue
		}
		if pick < w {
			return category
		}
		pick -= w
	}
	return models.CategoryGeneric
}

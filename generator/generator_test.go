package generator

import (
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glitchlab/faultdeck/models"
)

func seededGenerator(seed int64, opts ...Option) *Generator {
	opts = append([]Option{WithRand(rand.New(rand.NewSource(seed)))}, opts...)
	return New(opts...)
}

func TestGenerateError_CategoryMatches(t *testing.T) {
	gen := seededGenerator(1)

	for _, category := range models.AllCategories() {
		t.Run(string(category), func(t *testing.T) {
			err := gen.GenerateError(category)
			assert.Equal(t, category, err.Category)
			require.NoError(t, err.Validate())
			assert.NotEmpty(t, err.RecoveryActions)
		})
	}
}

func TestDefaultPools_VarietyPerCategory(t *testing.T) {
	pools := DefaultPools()

	for _, category := range models.AllCategories() {
		t.Run(string(category), func(t *testing.T) {
			templates := pools[category]
			assert.GreaterOrEqual(t, len(templates), 2, "category %s needs template variety", category)

			seen := make(map[string]bool)
			for _, tmpl := range templates {
				assert.False(t, seen[tmpl.Subtype], "duplicate subtype %s in %s", tmpl.Subtype, category)
				seen[tmpl.Subtype] = true
				assert.NotEmpty(t, tmpl.Titles)
				assert.NotEmpty(t, tmpl.Messages)
				assert.NotEmpty(t, tmpl.Actions)
			}
		})
	}
}

func TestGenerateError_UnknownCategoryFallsBack(t *testing.T) {
	gen := seededGenerator(2)

	err := gen.GenerateError("warp_core")
	assert.Equal(t, models.CategoryGeneric, err.Category)
	require.NoError(t, err.Validate())
}

func TestGenerateError_EmptyPoolFallsBack(t *testing.T) {
	pools := DefaultPools()
	pools[models.CategoryNetwork] = nil
	gen := seededGenerator(3, WithPools(pools))

	err := gen.GenerateError(models.CategoryNetwork)
	assert.Equal(t, models.CategoryGeneric, err.Category)
}

func TestGenerateError_EmptyGenericPoolSynthesizes(t *testing.T) {
	gen := seededGenerator(4, WithPools(map[models.ErrorCategory][]Template{}))

	err := gen.GenerateError(models.CategoryGeneric)
	assert.Equal(t, models.CategoryGeneric, err.Category)
	require.NoError(t, err.Validate())
}

func TestGenerateRandomError_NonDegenerateDistribution(t *testing.T) {
	gen := seededGenerator(5)

	counts := make(map[models.ErrorCategory]int)
	for i := 0; i < 2000; i++ {
		counts[gen.GenerateRandomError().Category]++
	}

	for _, category := range models.AllCategories() {
		assert.Greater(t, counts[category], 0, "category %s never generated", category)
	}
}

func TestGenerateError_RetryableBias(t *testing.T) {
	gen := seededGenerator(6)

	retryable := 0
	for i := 0; i < 500; i++ {
		if gen.GenerateError(models.CategoryNetwork).IsRetryable {
			retryable++
		}
	}
	// Network bias is 0.9; with 500 samples this stays comfortably high.
	assert.Greater(t, retryable, 350)

	retryable = 0
	for i := 0; i < 500; i++ {
		if gen.GenerateError(models.CategoryPermission).IsRetryable {
			retryable++
		}
	}
	// Permission bias is 0.05.
	assert.Less(t, retryable, 150)
}

func TestScenarioLookup(t *testing.T) {
	gen := seededGenerator(7)

	scenario, ok := gen.Scenario(models.ScenarioNetworkOutage)
	require.True(t, ok)
	assert.Equal(t, models.ScenarioNetworkOutage, scenario.Name)
	require.NoError(t, scenario.Validate())

	_, ok = gen.Scenario("nonexistent")
	assert.False(t, ok)
}

func TestScenarioLifecycle(t *testing.T) {
	gen := seededGenerator(8)

	assert.Nil(t, gen.CurrentScenario())

	outage, _ := gen.Scenario(models.ScenarioNetworkOutage)
	require.NoError(t, gen.StartScenario(outage))
	current := gen.CurrentScenario()
	require.NotNil(t, current)
	assert.Equal(t, models.ScenarioNetworkOutage, current.Name)

	// Starting a second scenario replaces the first.
	storm, _ := gen.Scenario(models.ScenarioPermissionStorm)
	require.NoError(t, gen.StartScenario(storm))
	current = gen.CurrentScenario()
	require.NotNil(t, current)
	assert.Equal(t, models.ScenarioPermissionStorm, current.Name)

	gen.StopScenario()
	assert.Nil(t, gen.CurrentScenario())

	// Stopping again is a no-op.
	gen.StopScenario()
	assert.Nil(t, gen.CurrentScenario())
}

func TestStartScenario_InvalidScenario(t *testing.T) {
	gen := seededGenerator(9)

	err := gen.StartScenario(models.ErrorScenario{Name: "broken"})
	require.Error(t, err)
	assert.Nil(t, gen.CurrentScenario())
}

func TestScenarioEmission(t *testing.T) {
	gen := seededGenerator(10)

	var mu sync.Mutex
	var emitted []models.MockError
	gen.OnError(func(err models.MockError) {
		mu.Lock()
		emitted = append(emitted, err)
		mu.Unlock()
	})

	require.NoError(t, gen.StartScenario(models.ErrorScenario{
		Name:     "fast_outage",
		Interval: models.MinScenarioInterval,
		Weights:  map[models.ErrorCategory]int{models.CategoryNetwork: 1},
	}))

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(emitted) >= 2
	}, 5*time.Second, 10*time.Millisecond)

	gen.StopScenario()

	mu.Lock()
	for _, err := range emitted {
		assert.Equal(t, models.CategoryNetwork, err.Category)
	}
	countAtStop := len(emitted)
	mu.Unlock()

	// A stopped scenario must not emit further errors.
	time.Sleep(5 * models.MinScenarioInterval)
	mu.Lock()
	assert.Equal(t, countAtStop, len(emitted))
	mu.Unlock()
}

func TestPickWeighted(t *testing.T) {
	gen := seededGenerator(11)

	weights := map[models.ErrorCategory]int{
		models.CategoryNetwork:  3,
		models.CategoryInfo:     1,
		models.CategoryGeneric:  0,
		"not_a_real_category":   5, // ignored: not in the stable iteration order
	}

	counts := make(map[models.ErrorCategory]int)
	for i := 0; i < 1000; i++ {
		counts[gen.pickWeightedLocked(weights)]++
	}

	assert.Greater(t, counts[models.CategoryNetwork], counts[models.CategoryInfo])
	assert.Zero(t, counts[models.CategoryGeneric])

	// All-zero weights degrade to generic.
	assert.Equal(t, models.CategoryGeneric, gen.pickWeightedLocked(map[models.ErrorCategory]int{}))
}

// Package builder contains unit tests for the configuration primitives
// (builderConfig and BuilderOption) to ensure correct application and override behavior.
package builder

import (
	"math/rand"
	"testing"

	"github.com/algovista/algovista/core"
)

// TestDefaults verifies the deterministic defaults of newBuilderConfig.
func TestDefaults(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig()
	if cfg.rng != nil {
		t.Error("default rng must be nil")
	}
	if got := cfg.weightFn(nil); got != DefaultEdgeWeight {
		t.Errorf("default weightFn(nil) = %d, want %d", got, DefaultEdgeWeight)
	}
}

// TestWeightPolicy verifies weights are drawn only for weighted graphs.
func TestWeightPolicy(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig(WithSeed(3), WithConstantWeight(7))
	plain, _ := core.NewGraph(2)
	weighted, _ := core.NewGraph(2, core.WithWeighted())

	if got := cfg.weight(plain); got != DefaultEdgeWeight {
		t.Errorf("unweighted: got %d, want %d", got, DefaultEdgeWeight)
	}
	if got := cfg.weight(weighted); got != 7 {
		t.Errorf("weighted: got %d, want 7", got)
	}
}

// TestOptionOrder verifies last-wins semantics.
func TestOptionOrder(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewSource(1))
	cfg := newBuilderConfig(WithSeed(5), WithRand(r))
	if cfg.rng != r {
		t.Error("WithRand after WithSeed must win")
	}
	cfg = newBuilderConfig(WithConstantWeight(2), WithConstantWeight(4))
	if got := cfg.weightFn(nil); got != 4 {
		t.Errorf("last WithConstantWeight must win, got %d", got)
	}
}

// TestOptionPanics verifies option constructors reject meaningless input.
func TestOptionPanics(t *testing.T) {
	t.Parallel()

	for name, fn := range map[string]func(){
		"WithRand(nil)":     func() { WithRand(nil) },
		"WithWeightFn(nil)": func() { WithWeightFn(nil) },
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("%s: expected panic", name)
				}
			}()
			fn()
		}()
	}
}

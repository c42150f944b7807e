// Package sweep runs many headless Life boards in parallel and summarizes
// how each one settles.
package sweep

import (
	"context"
	"fmt"
	"slices"
	"sort"

	"golang.org/x/sync/errgroup"

	"lifecanvas/internal/core"
	"lifecanvas/internal/sims/life"
)

// Scenario is one board to simulate.
type Scenario struct {
	Width    float64
	Height   float64
	Seed     int64
	Clusters int
}

func (s Scenario) String() string {
	return fmt.Sprintf("%gx%g seed=%d clusters=%d", s.Width, s.Height, s.Seed, s.Clusters)
}

// Result summarizes a finished scenario.
type Result struct {
	Scenario Scenario

	InitialPopulation int
	PeakPopulation    int
	FinalPopulation   int
	// SettledAt is the first generation whose board repeats one of the two
	// previous boards, or 0 when the board never settled.
	SettledAt int
	// Period is 1 for still lifes and 2 for oscillators like the blinker.
	Period int
	Steps  int
}

// Settled reports whether the board reached a fixed point or a period-two
// cycle within the step budget.
func (r Result) Settled() bool { return r.SettledAt > 0 }

// Grid returns the cross product of the given values.
func Grid(sizes [][2]float64, seeds []int64, clusters []int) []Scenario {
	var out []Scenario
	for _, size := range sizes {
		for _, seed := range seeds {
			for _, n := range clusters {
				out = append(out, Scenario{Width: size[0], Height: size[1], Seed: seed, Clusters: n})
			}
		}
	}
	return out
}

// Simulate runs one scenario for at most steps generations without a
// drawing surface.
func Simulate(s Scenario, steps int) Result {
	cfg := life.DefaultConfig()
	cfg.Width, cfg.Height = s.Width, s.Height
	cfg.Seed = s.Seed
	cfg.Clusters = s.Clusters
	game := life.NewWithConfig(nil, nil, cfg)
	game.Randomize(cfg.Clusters)

	res := Result{Scenario: s, InitialPopulation: game.Population()}
	res.PeakPopulation = res.InitialPopulation
	prev := [2][]uint8{slices.Clone(game.Cells())}
	for step := 1; step <= steps; step++ {
		// Step only fails on drawing, and this board has no surface.
		_ = game.Step()
		res.Steps = step
		pop := game.Population()
		if pop > res.PeakPopulation {
			res.PeakPopulation = pop
		}
		cur := game.Cells()
		switch {
		case slices.Equal(cur, prev[0]):
			res.SettledAt, res.Period = step, 1
		case prev[1] != nil && slices.Equal(cur, prev[1]):
			res.SettledAt, res.Period = step, 2
		}
		if res.Settled() {
			break
		}
		prev[1] = prev[0]
		prev[0] = slices.Clone(cur)
	}
	res.FinalPopulation = game.Population()
	return res
}

// Run simulates every scenario with at most workers in flight. Results keep
// the scenario order. A cancelled ctx stops the sweep early.
func Run(ctx context.Context, scenarios []Scenario, steps, workers int) ([]Result, error) {
	if workers <= 0 {
		workers = 1
	}
	results := make([]Result, len(scenarios))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i, s := range scenarios {
		if egCtx.Err() != nil {
			break
		}
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			results[i] = Simulate(s, steps)
			core.Logger().Debug("sweep: scenario done", "scenario", s.String(),
				"settled_at", results[i].SettledAt, "final", results[i].FinalPopulation)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// Rank orders results by how long they stayed active: unsettled boards
// first, then by settle generation, then by final population.
func Rank(results []Result) []Result {
	out := slices.Clone(results)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Settled() != b.Settled() {
			return !a.Settled()
		}
		if a.SettledAt != b.SettledAt {
			return a.SettledAt > b.SettledAt
		}
		return a.FinalPopulation > b.FinalPopulation
	})
	return out
}

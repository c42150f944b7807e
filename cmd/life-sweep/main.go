// Command life-sweep simulates many randomized boards and reports which
// seeds and cluster counts stay active the longest.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"lifecanvas/internal/app"
	"lifecanvas/internal/core"
	"lifecanvas/internal/sweep"
)

func main() {
	steps := flag.Int("steps", 500, "generations to simulate per scenario")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	seeds := flag.Int("seeds", 16, "seeds per size and cluster count (1..n)")
	clusterList := flag.String("clusters", "5,15,40", "comma separated cluster counts")
	sizeList := flag.String("sizes", "1080x720,800x600", "comma separated WxH surfaces")
	top := flag.Int("top", 5, "results to print")
	level := flag.String("log-level", "info", "log level: debug, info, warn, error")
	flag.Parse()

	logCfg := app.NewConfig()
	logCfg.LogLevel = *level
	core.SetLogger(logCfg.Logger(os.Stderr))

	clusters, err := parseInts(*clusterList)
	if err != nil {
		fail(err)
	}
	sizes, err := parseSizes(*sizeList)
	if err != nil {
		fail(err)
	}
	seedValues := make([]int64, *seeds)
	for i := range seedValues {
		seedValues[i] = int64(i + 1)
	}
	scenarios := sweep.Grid(sizes, seedValues, clusters)

	fmt.Printf("Sweeping %d scenarios (%d workers, %d steps)\n", len(scenarios), *workers, *steps)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	results, err := sweep.Run(ctx, scenarios, *steps, *workers)
	if err != nil {
		fail(err)
	}
	ranked := sweep.Rank(results)
	elapsed := time.Since(start)

	settled := 0
	for _, res := range results {
		if res.Settled() {
			settled++
		}
	}
	fmt.Printf("%d/%d boards settled within %d steps\n", settled, len(results), *steps)

	fmt.Printf("\nTop %d results (elapsed %s):\n", *top, elapsed.Round(time.Millisecond))
	for i := 0; i < len(ranked) && i < *top; i++ {
		res := ranked[i]
		state := "active"
		if res.Settled() {
			state = fmt.Sprintf("settled@%d period=%d", res.SettledAt, res.Period)
		}
		fmt.Printf("%2d) %s pop=%d peak=%d final=%d %s\n",
			i+1, state, res.InitialPopulation, res.PeakPopulation, res.FinalPopulation, res.Scenario)
	}
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "life-sweep:", err)
	os.Exit(1)
}

func parseInts(list string) ([]int, error) {
	var out []int
	for _, field := range strings.Split(list, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		v, err := strconv.Atoi(field)
		if err != nil {
			return nil, errors.Wrapf(err, "parse cluster count %q", field)
		}
		out = append(out, v)
	}
	return out, nil
}

func parseSizes(list string) ([][2]float64, error) {
	var out [][2]float64
	for _, field := range strings.Split(list, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		w, h, ok := strings.Cut(field, "x")
		if !ok {
			return nil, errors.Errorf("size %q is not WxH", field)
		}
		wv, err := strconv.ParseFloat(w, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "parse width in %q", field)
		}
		hv, err := strconv.ParseFloat(h, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "parse height in %q", field)
		}
		out = append(out, [2]float64{wv, hv})
	}
	return out, nil
}

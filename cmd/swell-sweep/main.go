package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"
	"runtime"
	"sort"
	"sync"
	"time"

	"swell/internal/render"
	"swell/internal/scene"

	"github.com/guptarohit/asciigraph"
)

func main() {
	steps := flag.Int("steps", 3600, "ticks to simulate per scenario")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	every := flag.Int("impact-every", 90, "ticks between random impacts (0 disables)")
	impact := flag.Float64("impact", scene.DefaultImpact, "impulse per impact")
	limit := flag.Float64("limit", 80, "displacement treated as a blow-up")
	seed := flag.Int64("seed", 1337, "seed for impact positions and spray")
	plot := flag.Int("plot", 3, "number of worst runs to plot")
	snapshot := flag.String("png", "", "write the final frame of the worst run to this file")
	flag.Parse()

	base := scene.DefaultConfig()
	sets := buildSets(
		[]float64{1.0 / 120, 1.0 / 60, 1.0 / 30, 1.0 / 15, 0.25},
		[]float64{80, 160, 320},
		[]float64{3, 9, 18},
	)
	opts := sweepOptions{
		steps:       *steps,
		impactEvery: *every,
		impact:      *impact,
		limit:       *limit,
		seed:        *seed,
		sampleEvery: max(*steps/70, 1),
	}

	fmt.Printf("Sweeping %d parameter sets (%d workers, %d steps)\n", len(sets), *workers, *steps)

	jobs := make(chan paramSet)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for params := range jobs {
				results <- runScenario(base, params, opts)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, params := range sets {
			jobs <- params
		}
		close(jobs)
	}()

	start := time.Now()
	var all []scenarioResult
	unstable := 0
	for res := range results {
		all = append(all, res)
		if !res.bounded {
			unstable++
			fmt.Printf("Blow-up at step %d (peak %.2f) with %s\n", res.peakStep, res.peak, res.params)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].peak > all[j].peak })
	elapsed := time.Since(start)

	fmt.Printf("\n%d/%d runs stayed below %.1f px (elapsed %s)\n", len(all)-unstable, len(all), *limit, elapsed.Round(time.Millisecond))
	fmt.Printf("\nLargest excursions:\n")
	for i := 0; i < len(all) && i < 10; i++ {
		res := all[i]
		fmt.Printf("%2d) peak=%.2f step=%d energy=%.1f final=%.2f bounded=%t %s\n",
			i+1, res.peak, res.peakStep, res.peakEnergy, res.final, res.bounded, res.params)
	}

	for i := 0; i < len(all) && i < *plot; i++ {
		res := all[i]
		if len(res.history) < 2 {
			continue
		}
		fmt.Println()
		fmt.Println(asciigraph.Plot(res.history,
			asciigraph.Height(10),
			asciigraph.Width(70),
			asciigraph.Precision(1),
			asciigraph.Caption(fmt.Sprintf("max |displacement|, %s", res.params)),
		))
	}

	if *snapshot != "" && len(all) > 0 {
		if err := writeSnapshot(*snapshot, all[0].scene); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("\nWrote %s\n", *snapshot)
	}
}

func writeSnapshot(path string, s *scene.Scene) error {
	size := s.Size()
	var frame render.Frame
	render.Build(&frame, s, render.NewPalette(s.CurrentProfileColors()))
	canvas := render.NewCanvas(size.W, size.H)
	canvas.Render(&frame, render.Sky)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}
	defer f.Close()
	if err := png.Encode(f, canvas.Image()); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return nil
}

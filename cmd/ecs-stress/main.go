// Command ecs-stress soak-tests a world full of generated components and
// systems and prints a markdown report. A YAML scenario file can stand in
// for the flags, and -watch applies spawn-rate edits live during the run.
package main

//go:generate go run github.com/plus3/loam/cmd/ecs-stress-gen -components 16 -systems 4 -out components_gen.go

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/pkg/profile"

	"github.com/plus3/loam/ecs"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	entityCount := flag.Int("entities", 10000, "The initial number of entities to create.")
	frequency := flag.Uint("frequency", 60, "Fixed updates per simulated second.")
	spawnPerTick := flag.Int("spawn-per-tick", 0, "Entities spawned each tick while the test runs.")
	scenarioPath := flag.String("scenario", "", "YAML scenario file. Flags set explicitly still win.")
	watch := flag.Bool("watch", false, "Reload the scenario file on change and apply the spawn rate live.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	profileMode := flag.String("profile", "", "Write a profile to the working directory: cpu, mem or trace.")
	flag.Parse()

	cfg := runConfig{
		Duration:     *duration,
		Entities:     *entityCount,
		Frequency:    uint16(*frequency),
		SpawnPerTick: *spawnPerTick,
	}

	if *scenarioPath != "" {
		sc, err := LoadScenario(*scenarioPath)
		if err != nil {
			log.Fatalf("Failed to load scenario: %v", err)
		}
		cfg.apply(sc, explicitFlags())
	}

	switch *profileMode {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
	case "trace":
		defer profile.Start(profile.TraceProfile, profile.ProfilePath(".")).Stop()
	default:
		log.Fatalf("Unknown profile mode %q", *profileMode)
	}

	log.Println("Starting stress test...")

	// 1. Build the world and register the generated systems plus the
	// live spawner.
	world := ecs.NewWorld(cfg.Frequency)
	registerGeneratedSystems(world)

	rate := ecs.NewCell(SpawnRate{PerTick: cfg.SpawnPerTick})
	world.AddDependentSystem(newSpawnSystem(world, rate))

	// 2. Populate the world with the initial entities
	log.Printf("Populating world with %d entities...", cfg.Entities)
	for i := 0; i < cfg.Entities; i++ {
		// Spawn an entity with 1 to 5 random components
		spawnRandomEntity(world, rand.Intn(5)+1)
	}
	log.Println("Population complete.")

	// 3. Run the simulation loop
	report := &Report{
		Duration:       cfg.Duration,
		Entities:       cfg.Entities,
		Frequency:      cfg.Frequency,
		SpawnPerTick:   cfg.SpawnPerTick,
		Components:     componentCount,
		Systems:        systemCount,
		GCPauseMetrics: *gcPauseMetrics,
		TickTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running simulation for %s...", cfg.Duration)
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Duration)
	defer cancel()

	if *watch {
		if *scenarioPath == "" {
			log.Fatal("-watch requires -scenario")
		}
		if err := watchScenario(ctx, *scenarioPath, rate); err != nil {
			log.Fatalf("Failed to watch scenario: %v", err)
		}
	}

	startTime := time.Now()

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			tickStart := time.Now()
			world.Tick()
			report.TickTime.Samples = append(report.TickTime.Samples, time.Since(tickStart))
		}
	}

	report.TotalTime = time.Since(startTime)
	stats := world.Stats()
	report.Ticks = stats.Ticks
	report.FixedPasses = stats.FixedPasses
	report.FinalEntities = world.EntityCount()
	report.TickTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Simulation finished.")

	// 4. Generate Report to Console
	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	log.Println("Stress test complete.")
}

// newSpawnSystem grows the world each tick by the rate currently in the
// cell. The cell is the resource so scenario reloads reach the system
// without touching the world.
func newSpawnSystem(w *ecs.World, rate *ecs.Cell[SpawnRate]) *ecs.ResourcedSystem[*ecs.Cell[SpawnRate]] {
	return ecs.NewResourcedSystem(rate, func(_ *ecs.Query, rate *ecs.Cell[SpawnRate]) {
		perTick := rate.Get().PerTick
		for i := 0; i < perTick; i++ {
			spawnRandomEntity(w, rand.Intn(5)+1)
		}
	}).Named("spawner")
}

// explicitFlags reports which flags appeared on the command line.
func explicitFlags() map[string]bool {
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})
	return set
}

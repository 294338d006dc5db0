package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/frame"
	"github.com/plus3/blockfall/logging"
	"github.com/plus3/blockfall/session"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	seed := flag.Uint64("seed", 1, "Seed for piece selection and generated input.")
	commandsPerFrame := flag.Int("commands", 3, "The most random commands issued per frame.")
	frameTime := flag.Duration("frame-time", 33*time.Millisecond, "Game time advanced per frame.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	cfg := config.Default()
	cfg.Seed = *seed
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	log.Println("Starting session stress test...")

	// 1. Setup session and scheduler
	s := session.New(cfg, session.WithLogger(logging.Nop()))
	input := newRandomInput(s, rand.New(rand.NewPCG(*seed, *seed+1)), *commandsPerFrame)
	scheduler := frame.NewScheduler()
	scheduler.Register(&session.TickSystem{Session: s, Input: input})

	// 2. Run the simulation loop
	report := &Report{
		Duration:         *duration,
		Seed:             *seed,
		CommandsPerFrame: *commandsPerFrame,
		FrameTime:        *frameTime,
		GCPauseMetrics:   *gcPauseMetrics,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running simulation for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	var totalUpdates int64

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			updateStart := time.Now()
			scheduler.Once(*frameTime)
			updateDuration := time.Since(updateStart)

			report.UpdateTime.Samples = append(report.UpdateTime.Samples, updateDuration)
			totalUpdates++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalUpdates = totalUpdates
	report.UpdateTime.Finalize()
	report.Commands = input.issued
	report.Losses = s.Losses()
	report.GameTime = s.Now()
	report.Systems = scheduler.GetStats().Systems
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Simulation finished.")

	// 3. Generate Report to Console
	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	log.Println("Stress test complete.")
}

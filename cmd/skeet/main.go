package main

import (
	"flag"
	"log"
	"log/slog"
	"math/rand"
	"os"
	"skeet-sim/internal/common"
	"skeet-sim/internal/config"
	"skeet-sim/internal/simulation"
	"skeet-sim/internal/visualization"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := config.Load()

	// --- Flags override the environment ---
	flag.IntVar(&cfg.Width, "width", cfg.Width, "screen width")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "screen height")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed (0 = time based)")
	flag.IntVar(&cfg.TPS, "tps", cfg.TPS, "simulation ticks per second")
	flag.IntVar(&cfg.SpawnInterval, "spawn", cfg.SpawnInterval, "frames between target launches (0 = none)")
	flag.BoolVar(&cfg.Headless, "headless", cfg.Headless, "run without a window")
	flag.IntVar(&cfg.Frames, "frames", cfg.Frames, "frames to run in headless mode")
	flag.BoolVar(&cfg.Autopilot, "autopilot", cfg.Autopilot, "let the computer aim and shoot")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(cfg.Seed))

	// --- Build the game ---
	bounds := cfg.Bounds()
	factory := simulation.NewFactory(rng.Int63())
	gun := simulation.NewGun(
		common.NewPosition(bounds.Width-1, bounds.Height-1),
		simulation.GaussianAimNoise(rand.New(rand.NewSource(rng.Int63())), 0.01),
	)

	var (
		renderer *visualization.Renderer
		opts     []simulation.Option
	)
	if !cfg.Headless {
		renderer = visualization.NewRenderer(cfg.Width, cfg.Height)
		opts = append(opts, simulation.WithDrawer(renderer))
	}
	spawner := simulation.NewSpawner(factory, bounds, rng.Int63(), opts...)

	sim := simulation.NewSimulation(bounds, factory, spawner, gun, logger)
	sim.SetSpawnInterval(cfg.SpawnInterval)
	if cfg.Autopilot || cfg.Headless {
		sim.SetAutopilot(simulation.NewAutopilot())
	}
	sim.SpawnRandom()

	// --- Run ---
	if cfg.Headless {
		st := sim.Run(cfg.Frames)
		logger.Info("final score", "score", st.Score, "seed", cfg.Seed)
		return
	}

	renderer.Attach(sim)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle("Skeet")
	ebiten.SetTPS(cfg.TPS)
	if err := ebiten.RunGame(renderer); err != nil {
		log.Fatalf("Error running game: %v", err)
	}
}

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"gridsnake/ai"
	"gridsnake/game"
	"gridsnake/game/types"
	"gridsnake/logging"
	"gridsnake/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func main() {
	cfg := types.DefaultConfig()
	flag.IntVar(&cfg.Width, "width", cfg.Width, "Grid width in cells")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "Grid height in cells")
	flag.DurationVar(&cfg.TickInterval, "interval", cfg.TickInterval, "Time between ticks (lower = faster)")
	flag.Uint64Var(&cfg.Seed, "seed", 0, "Food placement seed (0 = use the clock)")
	autopilot := flag.Bool("autopilot", false, "Let the autopilot steer")
	debug := flag.Bool("debug", false, "Write logs to logs/gridsnake.log")
	flag.Parse()

	if logFile := logging.Setup(*debug); logFile != nil {
		defer logFile.Close()
	}

	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}
	g, err := game.NewGame(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "snake: %v\n", err)
		os.Exit(1)
	}
	log.Printf("snake: %dx%d grid, interval %v, seed %d", cfg.Width, cfg.Height, cfg.TickInterval, cfg.Seed)

	var pilot *ai.Autopilot
	if *autopilot {
		pilot = ai.NewAutopilot()
	}

	rl.InitWindow(800, 840, "Snake")
	rl.SetWindowState(rl.FlagWindowResizable)
	defer rl.CloseWindow()

	rl.SetTargetFPS(60)

	renderer := ui.NewRenderer()
	lastUpdate := time.Now()

	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeyQ) {
			break
		}

		if rl.IsWindowResized() {
			renderer.UpdateDimensions()
		}

		handleInput(g)

		// Update game state at fixed interval
		if time.Since(lastUpdate) >= cfg.TickInterval {
			if pilot != nil {
				if dir, ok := pilot.Next(g.Snapshot()); ok {
					g.SetDirection(dir)
				}
			}
			changes := g.Tick()
			if changes.Has(game.RoundOver) {
				log.Printf("snake: round %s over after %d ticks: %v, length %d",
					changes.Round, changes.Tick, changes.Reason, changes.Length())
			}
			lastUpdate = time.Now()
		}

		renderer.Draw(g.Snapshot())
	}
}

var keyDirections = map[int32]types.Direction{
	rl.KeyUp:    types.Up,
	rl.KeyW:     types.Up,
	rl.KeyDown:  types.Down,
	rl.KeyS:     types.Down,
	rl.KeyLeft:  types.Left,
	rl.KeyA:     types.Left,
	rl.KeyRight: types.Right,
	rl.KeyD:     types.Right,
}

func handleInput(g *game.Game) {
	for key, dir := range keyDirections {
		if rl.IsKeyPressed(key) {
			g.SetDirection(dir)
		}
	}
	if rl.IsKeyPressed(rl.KeyR) {
		g.Reset()
		log.Printf("snake: round %s started", g.Round())
	}
}

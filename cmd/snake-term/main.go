package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"gridsnake/ai"
	"gridsnake/game"
	"gridsnake/game/types"
	"gridsnake/logging"
	"gridsnake/runner"

	"github.com/gdamore/tcell/v2"
)

const frameInterval = 16 * time.Millisecond // ~60 FPS

var (
	borderStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	headStyle   = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	bodyStyle   = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	foodStyle   = tcell.StyleDefault.Foreground(tcell.ColorRed)
	textStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	overStyle   = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

type Terminal struct {
	screen tcell.Screen
	runner *runner.Runner
	snap   game.Snapshot
}

func NewTerminal(r *runner.Runner) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.HideCursor()

	return &Terminal{
		screen: screen,
		runner: r,
		snap:   r.Snapshot(),
	}, nil
}

func (t *Terminal) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyUp:
			t.runner.SetDirection(types.Up)
		case tcell.KeyDown:
			t.runner.SetDirection(types.Down)
		case tcell.KeyLeft:
			t.runner.SetDirection(types.Left)
		case tcell.KeyRight:
			t.runner.SetDirection(types.Right)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				return false
			case 'r', 'R':
				t.runner.Reset()
			case 'w', 'k':
				t.runner.SetDirection(types.Up)
			case 's', 'j':
				t.runner.SetDirection(types.Down)
			case 'a', 'h':
				t.runner.SetDirection(types.Left)
			case 'd', 'l':
				t.runner.SetDirection(types.Right)
			}
		}

	case *tcell.EventResize:
		t.screen.Sync()
	}

	return true
}

// cell maps a grid point to screen columns; each cell is two columns wide
// and grid y grows upward.
func (t *Terminal) cell(p types.Point) (int, int) {
	return 1 + p.X*2, 1 + (t.snap.Height - 1 - p.Y)
}

func (t *Terminal) put(p types.Point, r rune, style tcell.Style) {
	x, y := t.cell(p)
	t.screen.SetContent(x, y, r, nil, style)
	t.screen.SetContent(x+1, y, r, nil, style)
}

func (t *Terminal) drawText(x, y int, text string, style tcell.Style) {
	for i, r := range text {
		t.screen.SetContent(x+i, y, r, nil, style)
	}
}

func (t *Terminal) draw() {
	t.screen.Clear()
	s := t.snap

	right := s.Width*2 + 1
	bottom := s.Height + 1
	for x := 0; x <= right; x++ {
		t.screen.SetContent(x, 0, '─', nil, borderStyle)
		t.screen.SetContent(x, bottom, '─', nil, borderStyle)
	}
	for y := 0; y <= bottom; y++ {
		t.screen.SetContent(0, y, '│', nil, borderStyle)
		t.screen.SetContent(right, y, '│', nil, borderStyle)
	}
	t.screen.SetContent(0, 0, '┌', nil, borderStyle)
	t.screen.SetContent(right, 0, '┐', nil, borderStyle)
	t.screen.SetContent(0, bottom, '└', nil, borderStyle)
	t.screen.SetContent(right, bottom, '┘', nil, borderStyle)

	if s.HasFood {
		t.put(s.Food, '●', foodStyle)
	}
	for _, p := range s.Segments {
		t.put(p, '█', bodyStyle)
	}
	t.put(s.Head, '█', headStyle)

	status := fmt.Sprintf("tick %d  length %d  %v", s.Tick, s.Length(), s.Direction)
	style := textStyle
	if s.State == types.GameOver {
		status = fmt.Sprintf("game over: %v (r to restart, q to quit)", s.Reason)
		style = overStyle
	}
	t.drawText(0, bottom+1, status, style)

	t.screen.Show()
}

func (t *Terminal) run(ctx context.Context) {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case ev := <-eventChan:
			if !t.handleInput(ev) {
				return
			}

		case changes := <-t.runner.Changes():
			t.snap = changes.Snapshot

		case <-ticker.C:
			t.draw()
		}
	}
}

func main() {
	cfg := types.DefaultConfig()
	flag.IntVar(&cfg.Width, "width", cfg.Width, "Grid width in cells")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "Grid height in cells")
	flag.DurationVar(&cfg.TickInterval, "interval", cfg.TickInterval, "Time between ticks (lower = faster)")
	flag.Uint64Var(&cfg.Seed, "seed", 0, "Food placement seed (0 = use the clock)")
	autopilot := flag.Bool("autopilot", false, "Let the autopilot steer")
	autoReset := flag.Bool("autoreset", false, "Start a new round as soon as one ends")
	statsFile := flag.String("stats", "", "Write per-round stats as JSON to this file on exit")
	debug := flag.Bool("debug", false, "Write logs to logs/gridsnake.log")
	flag.Parse()

	// Logging must never reach the terminal while tcell owns it
	if logFile := logging.Setup(*debug); logFile != nil {
		defer logFile.Close()
	}

	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}
	g, err := game.NewGame(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "snake-term: %v\n", err)
		os.Exit(1)
	}

	opts := []runner.Option{runner.WithAutoReset(*autoReset)}
	if *autopilot {
		opts = append(opts, runner.WithPilot(ai.NewAutopilot()))
	}
	r := runner.New(g, cfg.TickInterval, opts...)

	term, err := NewTerminal(r)
	if err != nil {
		fmt.Fprintf(os.Stderr, "snake-term: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	r.Start(ctx)
	log.Printf("snake-term: %dx%d grid, interval %v, seed %d", cfg.Width, cfg.Height, cfg.TickInterval, cfg.Seed)

	term.run(ctx)

	cancel()
	r.Stop()
	term.screen.Fini()

	stats := r.Stats()
	if stats.RoundsPlayed() > 0 {
		fmt.Printf("%d rounds, best length %d, average %.1f\n",
			stats.RoundsPlayed(), stats.MaxLength(), stats.AverageLength())
	}
	if *statsFile != "" {
		if err := stats.SaveToFile(*statsFile); err != nil {
			fmt.Fprintf(os.Stderr, "snake-term: %v\n", err)
		}
	}
}

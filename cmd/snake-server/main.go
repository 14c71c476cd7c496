package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gridsnake/game"
	"gridsnake/game/types"
	"gridsnake/logging"
	"gridsnake/server"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := types.DefaultConfig()
	addr := flag.String("addr", ":8080", "Listen address")
	flag.IntVar(&cfg.Width, "width", cfg.Width, "Grid width in cells")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "Grid height in cells")
	flag.DurationVar(&cfg.TickInterval, "interval", cfg.TickInterval, "Time between ticks")
	flag.Uint64Var(&cfg.Seed, "seed", 0, "Food placement seed (0 = use the clock)")
	clock := flag.Bool("clock", false, "Tick on a timer instead of only on POST /tick")
	debug := flag.Bool("debug", false, "Write logs to logs/gridsnake.log")
	flag.Parse()

	if logFile := logging.Setup(*debug); logFile != nil {
		defer logFile.Close()
	}
	if !*debug {
		gin.SetMode(gin.ReleaseMode)
	}

	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}
	g, err := game.NewGame(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "snake-server: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s := server.New(g)
	if *clock {
		go s.Run(ctx, cfg.TickInterval)
	}

	srv := &http.Server{Addr: *addr, Handler: s.Handler()}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	log.Printf("snake-server: listening on %s, %dx%d grid, seed %d", *addr, cfg.Width, cfg.Height, cfg.Seed)
	fmt.Printf("Listening on %s\n", *addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		fmt.Fprintf(os.Stderr, "snake-server: %v\n", err)
		os.Exit(1)
	}
}

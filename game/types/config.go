package types

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig wraps every validation failure from Config.Validate
var ErrInvalidConfig = errors.New("invalid config")

// DefaultTickInterval is the simulation clock period
const DefaultTickInterval = 800 * time.Millisecond

// Config holds the values a round is rebuilt from.
// Seed 0 is a valid seed; hosts substitute the clock when the user gives none.
type Config struct {
	Width            int
	Height           int
	TickInterval     time.Duration
	Seed             uint64
	InitialDirection Direction
}

func DefaultConfig() Config {
	return Config{
		Width:            DefaultWidth,
		Height:           DefaultHeight,
		TickInterval:     DefaultTickInterval,
		InitialDirection: Up,
	}
}

func (c Config) Grid() Grid {
	return Grid{Width: c.Width, Height: c.Height}
}

// SpawnHead returns the head position at cold start
func (c Config) SpawnHead() Point {
	return c.Grid().Center()
}

// SpawnBody returns the first body segment, one cell behind the head
func (c Config) SpawnBody() Point {
	return c.SpawnHead().Add(c.InitialDirection.Opposite().Vector())
}

func (c Config) Validate() error {
	if c.Width < 2 || c.Height < 2 {
		return fmt.Errorf("grid %dx%d smaller than 2x2: %w", c.Width, c.Height, ErrInvalidConfig)
	}
	if c.TickInterval <= 0 {
		return fmt.Errorf("tick interval %v: %w", c.TickInterval, ErrInvalidConfig)
	}
	if !c.InitialDirection.Valid() {
		return fmt.Errorf("initial direction %v: %w", c.InitialDirection, ErrInvalidConfig)
	}
	if err := c.Grid().Check(c.SpawnBody()); err != nil {
		return fmt.Errorf("spawn body: %v: %w", err, ErrInvalidConfig)
	}
	return nil
}

package types

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds is raised when a position outside the grid reaches the simulation.
var ErrOutOfBounds = errors.New("position out of bounds")

// Point is a cell coordinate on the grid
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add returns p moved by the offset d
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Manhattan returns the taxicab distance between two points
func (p Point) Manhattan(o Point) int {
	return abs(p.X-o.X) + abs(p.Y-o.Y)
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// Default arena
const (
	DefaultWidth  = 10
	DefaultHeight = 10
)

// InBounds reports whether p lies inside [0,Width)x[0,Height)
func (g Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Check returns ErrOutOfBounds wrapped with the offending position
func (g Grid) Check(p Point) error {
	if !g.InBounds(p) {
		return fmt.Errorf("%v on %dx%d grid: %w", p, g.Width, g.Height, ErrOutOfBounds)
	}
	return nil
}

// Cells returns the number of cells on the grid.
func (g Grid) Cells() int {
	return g.Width * g.Height
}

// Center returns the spawn cell of the head.
func (g Grid) Center() Point {
	return Point{X: g.Width / 2, Y: g.Height / 2}
}

// PointAt maps a row-major cell index back to its coordinate.
func (g Grid) PointAt(index int) Point {
	return Point{X: index % g.Width, Y: index / g.Width}
}

// Index maps a coordinate to its row-major cell index.
func (g Grid) Index(p Point) int {
	return p.X + p.Y*g.Width
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

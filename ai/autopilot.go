package ai

import (
	"sort"

	"gridsnake/game"
	"gridsnake/game/types"

	"github.com/joonazan/vec2"
)

const (
	// TrapPenalty is added to a move whose reachable area cannot hold the snake
	TrapPenalty = 1000.0
	// StraightBonus favours keeping the current heading on ties
	StraightBonus = 0.01
)

// Movement is one candidate step, ranked by Magnitude (lower is better)
type Movement struct {
	Direction types.Direction
	Target    types.Point
	Magnitude float64
	Squares   int
}

type Movements []*Movement

func (m Movements) Len() int           { return len(m) }
func (m Movements) Less(i, j int) bool { return m[i].Magnitude < m[j].Magnitude }
func (m Movements) Swap(i, j int)      { m[i], m[j] = m[j], m[i] }

// Autopilot steers greedily toward the food, skipping moves that are fatal now
// and penalising moves into pockets too small for the body.
type Autopilot struct{}

func NewAutopilot() *Autopilot {
	return &Autopilot{}
}

// Next picks a heading for the coming tick. It reports false when every move
// is fatal, in which case the caller should leave the heading alone.
func (a *Autopilot) Next(snap game.Snapshot) (types.Direction, bool) {
	moves := a.Moves(snap)
	if len(moves) == 0 {
		return snap.Direction, false
	}
	return moves[0].Direction, true
}

// Moves returns every non-fatal step, best first
func (a *Autopilot) Moves(snap game.Snapshot) Movements {
	grid := types.Grid{Width: snap.Width, Height: snap.Height}
	blocked := make(map[types.Point]struct{}, len(snap.Segments)+1)
	blocked[snap.Head] = struct{}{}
	for _, p := range snap.Segments {
		blocked[p] = struct{}{}
	}

	moves := make(Movements, 0, len(types.Directions))
	for _, dir := range types.Directions {
		if dir == snap.Direction.Opposite() {
			continue
		}
		next := snap.Head.Add(dir.Vector())
		if !grid.InBounds(next) {
			continue
		}
		if _, hit := blocked[next]; hit {
			continue
		}

		m := &Movement{Direction: dir, Target: next}
		if snap.HasFood {
			m.Magnitude = toVec(next).Minus(toVec(snap.Food)).Length()
		}
		if dir == snap.Direction {
			m.Magnitude -= StraightBonus
		}
		m.Squares = emptyConnectedSquares(grid, next, blocked)
		if next != snap.Food && m.Squares < snap.Length() {
			m.Magnitude += TrapPenalty
		}
		moves = append(moves, m)
	}

	sort.Stable(moves)
	return moves
}

func toVec(p types.Point) vec2.Vector {
	return vec2.Vector{X: float64(p.X), Y: float64(p.Y)}
}

// emptyConnectedSquares flood-fills free cells reachable from start
func emptyConnectedSquares(grid types.Grid, start types.Point, blocked map[types.Point]struct{}) int {
	seen := map[types.Point]struct{}{start: {}}
	queue := []types.Point{start}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, dir := range types.Directions {
			n := p.Add(dir.Vector())
			if !grid.InBounds(n) {
				continue
			}
			if _, hit := blocked[n]; hit {
				continue
			}
			if _, ok := seen[n]; ok {
				continue
			}
			seen[n] = struct{}{}
			queue = append(queue, n)
		}
	}
	return len(seen)
}

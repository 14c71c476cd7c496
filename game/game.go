package game

import (
	"fmt"

	"gridsnake/game/manager"
	"gridsnake/game/types"
)

// Game is the simulation core. It does no locking: hosts must serialize every
// call (see runner.Runner).
type Game struct {
	cfg          types.Config
	grid         types.Grid
	collisionMgr *manager.CollisionManager
	foodManager  *manager.FoodManager
	stateManager *manager.StateManager
}

func NewGame(cfg types.Config) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}

	grid := cfg.Grid()
	foodManager := manager.NewFoodManager(grid, cfg.Seed)

	return &Game{
		cfg:          cfg,
		grid:         grid,
		collisionMgr: manager.NewCollisionManager(grid),
		foodManager:  foodManager,
		stateManager: manager.NewStateManager(cfg, foodManager),
	}, nil
}

// Tick advances the round by one cell. Once the round is over it changes
// nothing and returns the frozen board with no events.
func (g *Game) Tick() Changes {
	if g.stateManager.State() != types.Playing {
		return Changes{Snapshot: g.Snapshot()}
	}

	round := g.stateManager.Round()
	round.Ticks++
	chain := round.Snake.Chain
	movement := round.Movement
	events := make([]Event, 0, 4)

	candidate := movement.Advance()

	boardFull := false
	switch collision := g.collisionMgr.CheckCollision(candidate, chain, round.Food); collision {
	case manager.WallCollision, manager.SelfCollision:
		reason := collision.EndReason()
		g.stateManager.End(reason)
		events = append(events, Event{Kind: RoundOver, At: candidate, Reason: reason})
		return g.changes(events)

	case manager.FoodCollision:
		chain.GrowAt(candidate)
		events = append(events, Event{Kind: FoodEaten, At: candidate})

		// The new segment already covers candidate, so this is the board as it
		// will be after the shift below.
		next, ok := g.foodManager.Place(round.Snake.Occupied())
		round.Food, round.HasFood = next, ok
		if ok {
			events = append(events, Event{Kind: FoodRespawned, At: next})
		} else {
			boardFull = true
		}
	}

	chain.PropagateFollow(movement.Position())
	movement.Commit(candidate)
	events = append(events, Event{Kind: HeadMoved, At: candidate})

	if boardFull {
		g.stateManager.End(types.EndBoardFull)
		events = append(events, Event{Kind: RoundOver, At: candidate, Reason: types.EndBoardFull})
	}

	return g.changes(events)
}

// SetDirection queues a heading for the next tick. Reverse requests and
// requests outside a playing round are ignored and report false.
func (g *Game) SetDirection(dir types.Direction) bool {
	if g.stateManager.State() != types.Playing {
		return false
	}
	return g.stateManager.Round().Movement.SetDirection(dir)
}

// Reset tears the round down and rebuilds the cold-start board
func (g *Game) Reset() {
	g.stateManager.Reset()
}

func (g *Game) HeadPosition() types.Point {
	return g.stateManager.Round().Snake.Head.Position
}

// SegmentPositions returns body cells from the neck to the tail
func (g *Game) SegmentPositions() []types.Point {
	return g.stateManager.Round().Snake.Chain.Positions()
}

// FoodPosition returns false once the board has no room left for food
func (g *Game) FoodPosition() (types.Point, bool) {
	round := g.stateManager.Round()
	return round.Food, round.HasFood
}

func (g *Game) State() types.State {
	return g.stateManager.State()
}

func (g *Game) Reason() types.EndReason {
	return g.stateManager.Reason()
}

func (g *Game) Direction() types.Direction {
	return g.stateManager.Round().Movement.Direction()
}

// Round returns the id of the current round
func (g *Game) Round() string {
	return g.stateManager.Round().ID
}

func (g *Game) Ticks() uint64 {
	return g.stateManager.Round().Ticks
}

func (g *Game) Grid() types.Grid {
	return g.grid
}

func (g *Game) Config() types.Config {
	return g.cfg
}

func (g *Game) Snapshot() Snapshot {
	round := g.stateManager.Round()
	return Snapshot{
		Round:     round.ID,
		Tick:      round.Ticks,
		State:     g.stateManager.State(),
		Reason:    g.stateManager.Reason(),
		Width:     g.grid.Width,
		Height:    g.grid.Height,
		Head:      round.Snake.Head.Position,
		Direction: round.Movement.Direction(),
		Segments:  round.Snake.Chain.Positions(),
		Food:      round.Food,
		HasFood:   round.HasFood,
	}
}

func (g *Game) changes(events []Event) Changes {
	return Changes{Snapshot: g.Snapshot(), Events: events}
}

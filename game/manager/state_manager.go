package manager

import (
	"gridsnake/game/entity"
	"gridsnake/game/types"

	"github.com/google/uuid"
)

// Round is everything that lives for one game: the snake, its steering, the
// food and the tick counter. It is built and dropped as a unit.
type Round struct {
	ID       string
	Snake    *entity.Snake
	Movement *MovementManager
	Food     types.Point
	HasFood  bool
	Ticks    uint64
}

// StateManager owns the Playing -> GameOver -> Playing lifecycle
type StateManager struct {
	cfg         types.Config
	foodManager *FoodManager
	round       *Round
	state       types.State
	reason      types.EndReason
	rounds      int
}

// NewStateManager spawns the first round immediately
func NewStateManager(cfg types.Config, foodManager *FoodManager) *StateManager {
	sm := &StateManager{
		cfg:         cfg,
		foodManager: foodManager,
	}
	sm.spawn()
	return sm
}

// spawn builds head, first segment and food for a fresh round
func (sm *StateManager) spawn() {
	snake := entity.NewSnake(
		sm.cfg.Grid(),
		sm.cfg.SpawnHead(),
		sm.cfg.InitialDirection,
		sm.cfg.SpawnBody(),
	)

	round := &Round{
		ID:       uuid.New().String(),
		Snake:    snake,
		Movement: NewMovementManager(&snake.Head),
	}
	round.Food, round.HasFood = sm.foodManager.Place(snake.Occupied())

	sm.round = round
	sm.state = types.Playing
	sm.reason = types.NotEnded
	sm.rounds++

	if !round.HasFood {
		sm.End(types.EndBoardFull)
	}
}

// End moves a playing round to GameOver. It reports false when the round had
// already ended, leaving the first reason in place.
func (sm *StateManager) End(reason types.EndReason) bool {
	if sm.state != types.Playing {
		return false
	}
	sm.state = types.GameOver
	sm.reason = reason
	return true
}

// Reset drops the current round and spawns a new one from the config
func (sm *StateManager) Reset() {
	sm.round = nil
	sm.spawn()
}

func (sm *StateManager) Round() *Round {
	return sm.round
}

func (sm *StateManager) State() types.State {
	return sm.state
}

func (sm *StateManager) Reason() types.EndReason {
	return sm.reason
}

// Rounds counts spawns since construction, the first included
func (sm *StateManager) Rounds() int {
	return sm.rounds
}

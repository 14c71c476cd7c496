package manager

import (
	"gridsnake/game/entity"
	"gridsnake/game/types"
)

// MovementManager steers the head. Direction requests arrive between ticks and
// are held as pending until the next tick picks them up.
type MovementManager struct {
	head       *entity.Head
	pending    types.Direction
	hasPending bool
}

func NewMovementManager(head *entity.Head) *MovementManager {
	return &MovementManager{head: head}
}

// SetDirection queues dir for the next tick. A reverse of the current heading
// would drive the head into its neck and is dropped. The latest accepted
// request before a tick wins.
func (mm *MovementManager) SetDirection(dir types.Direction) bool {
	if !dir.Valid() || dir == mm.head.Direction.Opposite() {
		return false
	}
	mm.pending = dir
	mm.hasPending = true
	return true
}

// Pending returns the queued heading, if any
func (mm *MovementManager) Pending() (types.Direction, bool) {
	return mm.pending, mm.hasPending
}

// Advance applies the pending heading and returns the cell one step ahead
func (mm *MovementManager) Advance() types.Point {
	if mm.hasPending {
		mm.head.Direction = mm.pending
		mm.hasPending = false
	}
	return mm.head.Position.Add(mm.head.Direction.Vector())
}

// Commit moves the head onto candidate and returns the cell it left
func (mm *MovementManager) Commit(candidate types.Point) types.Point {
	prev := mm.head.Position
	mm.head.Position = candidate
	return prev
}

func (mm *MovementManager) Position() types.Point {
	return mm.head.Position
}

func (mm *MovementManager) Direction() types.Direction {
	return mm.head.Direction
}

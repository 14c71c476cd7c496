package manager

import (
	"gridsnake/game/entity"
	"gridsnake/game/types"
)

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
	FoodCollision
)

func (c CollisionType) String() string {
	switch c {
	case NoCollision:
		return "none"
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	case FoodCollision:
		return "food"
	default:
		return "unknown"
	}
}

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// CheckCollision runs the wall, body and food checks against a candidate head
// cell in that order and reports the first hit.
func (cm *CollisionManager) CheckCollision(pos types.Point, chain *entity.Chain, food types.Point) CollisionType {
	if cm.IsWallCollision(pos) {
		return WallCollision
	}
	if cm.IsSelfCollision(pos, chain) {
		return SelfCollision
	}
	if cm.IsFoodCollision(pos, food) {
		return FoodCollision
	}
	return NoCollision
}

// IsWallCollision checks if a position lies outside the grid
func (cm *CollisionManager) IsWallCollision(pos types.Point) bool {
	return !cm.grid.InBounds(pos)
}

// IsSelfCollision checks the candidate against every body segment, tail included
func (cm *CollisionManager) IsSelfCollision(pos types.Point, chain *entity.Chain) bool {
	return chain.ContainsPosition(pos)
}

func (cm *CollisionManager) IsFoodCollision(pos types.Point, food types.Point) bool {
	return pos == food
}

// EndReason maps a fatal collision to the lifecycle's reason
func (c CollisionType) EndReason() types.EndReason {
	switch c {
	case WallCollision:
		return types.EndWall
	case SelfCollision:
		return types.EndSelfCollision
	default:
		return types.NotEnded
	}
}

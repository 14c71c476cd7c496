package manager

import (
	"gridsnake/game/types"

	"golang.org/x/exp/rand"
)

// FoodManager places the single food item on a free cell
type FoodManager struct {
	grid types.Grid
	rng  *rand.Rand
	free []types.Point
}

// NewFoodManager seeds its own source so a given seed replays the same rounds
func NewFoodManager(grid types.Grid, seed uint64) *FoodManager {
	return &FoodManager{
		grid: grid,
		rng:  rand.New(rand.NewSource(seed)),
		free: make([]types.Point, 0, grid.Cells()),
	}
}

// Place picks a cell uniformly among those not in occupied.
// It returns false when the board is exhausted.
func (fm *FoodManager) Place(occupied map[types.Point]struct{}) (types.Point, bool) {
	free := fm.FreeCells(occupied)
	if len(free) == 0 {
		return types.Point{}, false
	}
	return free[fm.rng.Intn(len(free))], true
}

// FreeCells rebuilds the complement of occupied in row-major order.
// The returned slice is reused by the next call.
func (fm *FoodManager) FreeCells(occupied map[types.Point]struct{}) []types.Point {
	fm.free = fm.free[:0]
	for i := 0; i < fm.grid.Cells(); i++ {
		p := fm.grid.PointAt(i)
		if _, taken := occupied[p]; !taken {
			fm.free = append(fm.free, p)
		}
	}
	return fm.free
}

package entity

import (
	"gridsnake/game/types"
)

// Head is the leading cell of the snake. It carries the heading and the id of
// the first body segment; the segments themselves belong to the Chain.
type Head struct {
	Position  types.Point
	Direction types.Direction
	First     SegmentID
}

// Snake groups the head with its chain for one round
type Snake struct {
	Head  Head
	Chain *Chain
}

// NewSnake spawns a head at pos facing dir with a single body segment at body
func NewSnake(grid types.Grid, pos types.Point, dir types.Direction, body types.Point) *Snake {
	chain := NewChain(grid)
	s := &Snake{
		Head: Head{
			Position:  pos,
			Direction: dir,
			First:     NoSegment,
		},
		Chain: chain,
	}
	s.Head.First = chain.AppendSegment(body)
	return s
}

// Occupies reports whether the head or any segment sits on pos
func (s *Snake) Occupies(pos types.Point) bool {
	return s.Head.Position == pos || s.Chain.ContainsPosition(pos)
}

// Occupied returns every cell held by the snake as a set
func (s *Snake) Occupied() map[types.Point]struct{} {
	occupied := make(map[types.Point]struct{}, s.Chain.Len()+1)
	occupied[s.Head.Position] = struct{}{}
	for _, p := range s.Chain.Positions() {
		occupied[p] = struct{}{}
	}
	return occupied
}

// Len counts the head plus the body segments
func (s *Snake) Len() int {
	return s.Chain.Len() + 1
}

package entity

import (
	"gridsnake/game/types"
)

// SegmentID is a stable index into a Chain's arena
type SegmentID int

// NoSegment marks the absence of a follower or of a first segment
const NoSegment SegmentID = -1

// Segment is one body cell. Next refers to the segment further from the head.
type Segment struct {
	ID       SegmentID
	Position types.Point
	Next     SegmentID
}

// Chain is the ordered body behind the head.
// Segments live in a flat arena and are never removed individually; the whole
// chain is dropped on teardown.
type Chain struct {
	grid     types.Grid
	segments []Segment
	first    SegmentID
	tail     SegmentID
}

func NewChain(grid types.Grid) *Chain {
	return &Chain{
		grid:     grid,
		segments: make([]Segment, 0, 8),
		first:    NoSegment,
		tail:     NoSegment,
	}
}

// AppendSegment links a new tail at pos and returns its id.
// A position off the grid means the caller broke an invariant, so it panics.
func (c *Chain) AppendSegment(pos types.Point) SegmentID {
	if err := c.grid.Check(pos); err != nil {
		panic("entity: append segment: " + err.Error())
	}

	id := SegmentID(len(c.segments))
	c.segments = append(c.segments, Segment{ID: id, Position: pos, Next: NoSegment})

	if c.tail == NoSegment {
		c.first = id
	} else {
		c.segments[c.tail].Next = id
	}
	c.tail = id
	return id
}

// GrowAt extends the chain by one segment at the cell of the eaten food.
// Call it once per eat event.
func (c *Chain) GrowAt(pos types.Point) SegmentID {
	return c.AppendSegment(pos)
}

// PropagateFollow shifts every segment into the cell its leader held before
// this call. The segment nearest the head takes leader.
func (c *Chain) PropagateFollow(leader types.Point) {
	prev := leader
	for id := c.first; id != NoSegment; {
		seg := &c.segments[id]
		prev, seg.Position = seg.Position, prev
		id = seg.Next
	}
}

// ContainsPosition reports whether any body segment occupies pos
func (c *Chain) ContainsPosition(pos types.Point) bool {
	for i := range c.segments {
		if c.segments[i].Position == pos {
			return true
		}
	}
	return false
}

// Positions returns segment positions ordered from the head to the tail
func (c *Chain) Positions() []types.Point {
	out := make([]types.Point, 0, len(c.segments))
	for id := c.first; id != NoSegment; id = c.segments[id].Next {
		out = append(out, c.segments[id].Position)
	}
	return out
}

func (c *Chain) Len() int {
	return len(c.segments)
}

func (c *Chain) First() SegmentID {
	return c.first
}

func (c *Chain) Tail() SegmentID {
	return c.tail
}

// Segment looks up a segment by id
func (c *Chain) Segment(id SegmentID) (Segment, bool) {
	if id < 0 || int(id) >= len(c.segments) {
		return Segment{}, false
	}
	return c.segments[id], true
}

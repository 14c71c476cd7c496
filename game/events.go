package game

import (
	"gridsnake/game/types"
)

// EventKind names a state change produced by a tick
type EventKind int

const (
	HeadMoved EventKind = iota
	FoodEaten
	FoodRespawned
	RoundOver
)

func (k EventKind) String() string {
	switch k {
	case HeadMoved:
		return "head_moved"
	case FoodEaten:
		return "food_eaten"
	case FoodRespawned:
		return "food_respawned"
	case RoundOver:
		return "game_over"
	default:
		return "unknown"
	}
}

func (k EventKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Event is one change. At is the cell involved; Reason is set on RoundOver.
type Event struct {
	Kind   EventKind       `json:"kind"`
	At     types.Point     `json:"at"`
	Reason types.EndReason `json:"reason,omitempty"`
}

// Snapshot is a copy of everything a host needs to draw the board
type Snapshot struct {
	Round     string          `json:"round"`
	Tick      uint64          `json:"tick"`
	State     types.State     `json:"state"`
	Reason    types.EndReason `json:"reason"`
	Width     int             `json:"width"`
	Height    int             `json:"height"`
	Head      types.Point     `json:"head"`
	Direction types.Direction `json:"direction"`
	Segments  []types.Point   `json:"segments"`
	Food      types.Point     `json:"food"`
	HasFood   bool            `json:"has_food"`
}

// Length counts the head plus its segments
func (s Snapshot) Length() int {
	return len(s.Segments) + 1
}

// Changes is what Tick hands back: the ordered events plus the board after them
type Changes struct {
	Snapshot
	Events []Event `json:"events"`
}

// Has reports whether an event of kind happened this tick
func (c Changes) Has(kind EventKind) bool {
	for _, e := range c.Events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

package types

// State is the round's position in the lifecycle
type State int

const (
	Playing State = iota
	GameOver
)

func (s State) String() string {
	switch s {
	case Playing:
		return "playing"
	case GameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// EndReason records why a round ended
type EndReason int

const (
	NotEnded EndReason = iota
	EndWall
	EndSelfCollision
	EndBoardFull
)

func (r EndReason) String() string {
	switch r {
	case NotEnded:
		return "none"
	case EndWall:
		return "wall"
	case EndSelfCollision:
		return "self_collision"
	case EndBoardFull:
		return "board_full"
	default:
		return "unknown"
	}
}

func (r EndReason) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

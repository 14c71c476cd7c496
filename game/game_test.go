package game

import (
	"testing"

	"gridsnake/game/entity"
	"gridsnake/game/manager"
	"gridsnake/game/types"
)

func newTestGame(t *testing.T, cfg types.Config) *Game {
	t.Helper()
	g, err := NewGame(cfg)
	if err != nil {
		t.Fatalf("NewGame failed: %v", err)
	}
	return g
}

// placeFood moves the food so random spawns cannot interfere with a scenario
func placeFood(g *Game, p types.Point) {
	round := g.stateManager.Round()
	round.Food, round.HasFood = p, true
}

// placeSnake replaces the round's snake with a hand-built one
func placeSnake(t *testing.T, g *Game, head types.Point, dir types.Direction, body ...types.Point) {
	t.Helper()
	snake := &entity.Snake{
		Head:  entity.Head{Position: head, Direction: dir, First: entity.NoSegment},
		Chain: entity.NewChain(g.grid),
	}
	for _, p := range body {
		id := snake.Chain.AppendSegment(p)
		if snake.Head.First == entity.NoSegment {
			snake.Head.First = id
		}
	}
	round := g.stateManager.Round()
	round.Snake = snake
	round.Movement = manager.NewMovementManager(&snake.Head)
}

func assertPoints(t *testing.T, label string, got, want []types.Point) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s: expected %v, got %v", label, want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("%s[%d]: expected %v, got %v", label, i, want[i], got[i])
		}
	}
}

func TestColdStart(t *testing.T) {
	g := newTestGame(t, types.DefaultConfig())

	if g.State() != types.Playing {
		t.Errorf("Expected Playing, got %v", g.State())
	}
	if g.HeadPosition() != (types.Point{X: 5, Y: 5}) {
		t.Errorf("Expected head (5,5), got %v", g.HeadPosition())
	}
	if g.Direction() != types.Up {
		t.Errorf("Expected heading up, got %v", g.Direction())
	}
	assertPoints(t, "segments", g.SegmentPositions(), []types.Point{{X: 5, Y: 4}})

	food, ok := g.FoodPosition()
	if !ok {
		t.Fatal("Expected food at cold start")
	}
	if food == g.HeadPosition() || food == (types.Point{X: 5, Y: 4}) {
		t.Errorf("Food spawned on the snake at %v", food)
	}
	if !g.Grid().InBounds(food) {
		t.Errorf("Food spawned off grid at %v", food)
	}
}

func TestTurnLeftThreeTicks(t *testing.T) {
	g := newTestGame(t, types.DefaultConfig())
	placeFood(g, types.Point{X: 2, Y: 2})

	if !g.SetDirection(types.Left) {
		t.Fatal("Expected left turn to be accepted")
	}

	wantHeads := []types.Point{{X: 4, Y: 5}, {X: 3, Y: 5}, {X: 2, Y: 5}}
	wantBodies := []types.Point{{X: 5, Y: 5}, {X: 4, Y: 5}, {X: 3, Y: 5}}
	for i := range wantHeads {
		ch := g.Tick()
		if !ch.Has(HeadMoved) {
			t.Fatalf("Tick %d: expected head_moved event", i+1)
		}
		if ch.Head != wantHeads[i] {
			t.Errorf("Tick %d: expected head %v, got %v", i+1, wantHeads[i], ch.Head)
		}
		assertPoints(t, "segments", ch.Segments, []types.Point{wantBodies[i]})
	}

	if g.State() != types.Playing {
		t.Errorf("Expected Playing, got %v", g.State())
	}
	if g.Ticks() != 3 {
		t.Errorf("Expected 3 ticks, got %d", g.Ticks())
	}
}

func TestStraightRunHitsWall(t *testing.T) {
	g := newTestGame(t, types.DefaultConfig())
	placeFood(g, types.Point{X: 0, Y: 0})

	start := g.HeadPosition()
	for n := 1; n <= 4; n++ {
		ch := g.Tick()
		want := types.Point{X: start.X, Y: start.Y + n}
		if ch.Head != want {
			t.Fatalf("Tick %d: expected head %v, got %v", n, want, ch.Head)
		}
		if ch.State != types.Playing {
			t.Fatalf("Tick %d: unexpected %v", n, ch.State)
		}
	}

	ch := g.Tick()
	if ch.State != types.GameOver || ch.Reason != types.EndWall {
		t.Fatalf("Expected wall game over, got %v/%v", ch.State, ch.Reason)
	}
	if ch.Has(HeadMoved) {
		t.Error("Head must not move on a wall hit")
	}
	if ch.Head != (types.Point{X: 5, Y: 9}) {
		t.Errorf("Expected head frozen at (5,9), got %v", ch.Head)
	}
	assertPoints(t, "segments", ch.Segments, []types.Point{{X: 5, Y: 8}})
}

func TestSelfCollisionFreezesBoard(t *testing.T) {
	g := newTestGame(t, types.DefaultConfig())
	placeSnake(t, g, types.Point{X: 5, Y: 5}, types.Up,
		types.Point{X: 5, Y: 4},
		types.Point{X: 4, Y: 4},
		types.Point{X: 4, Y: 5},
		types.Point{X: 4, Y: 6},
	)
	placeFood(g, types.Point{X: 9, Y: 9})
	before := g.Snapshot()

	g.SetDirection(types.Left)
	ch := g.Tick()
	if ch.State != types.GameOver || ch.Reason != types.EndSelfCollision {
		t.Fatalf("Expected self collision, got %v/%v", ch.State, ch.Reason)
	}
	if len(ch.Events) != 1 || ch.Events[0].Kind != RoundOver || ch.Events[0].At != (types.Point{X: 4, Y: 5}) {
		t.Errorf("Unexpected events %+v", ch.Events)
	}
	if ch.Head != before.Head {
		t.Errorf("Expected head unchanged at %v, got %v", before.Head, ch.Head)
	}
	assertPoints(t, "segments", ch.Segments, before.Segments)

	// Later ticks are no-ops
	for i := 0; i < 3; i++ {
		after := g.Tick()
		if len(after.Events) != 0 {
			t.Errorf("Expected no events after game over, got %+v", after.Events)
		}
		if after.Head != before.Head {
			t.Errorf("Head moved after game over: %v", after.Head)
		}
		assertPoints(t, "segments", after.Segments, before.Segments)
	}
	if g.SetDirection(types.Right) {
		t.Error("Expected direction requests ignored after game over")
	}
}

func TestTailCellIsSelfCollision(t *testing.T) {
	g := newTestGame(t, types.DefaultConfig())
	placeSnake(t, g, types.Point{X: 5, Y: 5}, types.Left,
		types.Point{X: 6, Y: 5},
		types.Point{X: 6, Y: 6},
		types.Point{X: 5, Y: 6},
	)
	placeFood(g, types.Point{X: 0, Y: 0})

	g.SetDirection(types.Up)
	if ch := g.Tick(); ch.Reason != types.EndSelfCollision {
		t.Errorf("Expected moving into the tail cell to end the round, got %v", ch.Reason)
	}
}

func TestEatingGrowsByOne(t *testing.T) {
	g := newTestGame(t, types.DefaultConfig())
	placeFood(g, types.Point{X: 5, Y: 6})

	ch := g.Tick()
	if !ch.Has(FoodEaten) || !ch.Has(FoodRespawned) {
		t.Fatalf("Expected eat and respawn events, got %+v", ch.Events)
	}
	if ch.Length() != 3 {
		t.Errorf("Expected length 3, got %d", ch.Length())
	}
	if ch.Head != (types.Point{X: 5, Y: 6}) {
		t.Errorf("Expected head on the eaten cell, got %v", ch.Head)
	}
	assertPoints(t, "segments", ch.Segments, []types.Point{{X: 5, Y: 5}, {X: 5, Y: 4}})

	if !ch.HasFood {
		t.Fatal("Expected new food")
	}
	if ch.Food == ch.Head {
		t.Error("New food placed under the head")
	}
	for _, p := range ch.Segments {
		if p == ch.Food {
			t.Errorf("New food placed on segment %v", p)
		}
	}

	// Eat again to check the length keeps stepping by one
	g.SetDirection(types.Right)
	placeFood(g, types.Point{X: 6, Y: 6})
	ch = g.Tick()
	if ch.Length() != 4 {
		t.Errorf("Expected length 4, got %d", ch.Length())
	}
	assertPoints(t, "segments", ch.Segments, []types.Point{{X: 5, Y: 6}, {X: 5, Y: 5}, {X: 5, Y: 4}})
}

func TestBoardFullEndsRound(t *testing.T) {
	cfg := types.DefaultConfig()
	cfg.Width, cfg.Height = 2, 2
	g := newTestGame(t, cfg)

	if g.HeadPosition() != (types.Point{X: 1, Y: 1}) {
		t.Fatalf("Expected head (1,1), got %v", g.HeadPosition())
	}
	placeFood(g, types.Point{X: 0, Y: 1})

	g.SetDirection(types.Left)
	ch := g.Tick()
	if !ch.Has(FoodEaten) {
		t.Fatal("Expected food eaten")
	}
	if ch.Food != (types.Point{X: 0, Y: 0}) {
		t.Fatalf("Expected the only free cell (0,0) for food, got %v", ch.Food)
	}

	g.SetDirection(types.Down)
	ch = g.Tick()
	if ch.State != types.GameOver || ch.Reason != types.EndBoardFull {
		t.Fatalf("Expected board full, got %v/%v", ch.State, ch.Reason)
	}
	if ch.HasFood {
		t.Error("Expected no food on a full board")
	}
	if ch.Head != (types.Point{X: 0, Y: 0}) {
		t.Errorf("Expected final move committed to (0,0), got %v", ch.Head)
	}
	assertPoints(t, "segments", ch.Segments, []types.Point{{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0}})
	last := ch.Events[len(ch.Events)-1]
	if last.Kind != RoundOver || last.Reason != types.EndBoardFull {
		t.Errorf("Expected board_full as last event, got %+v", last)
	}
}

func TestReverseRequestIgnored(t *testing.T) {
	g := newTestGame(t, types.DefaultConfig())
	placeFood(g, types.Point{X: 0, Y: 0})

	if g.SetDirection(types.Down) {
		t.Error("Expected reverse request rejected")
	}
	ch := g.Tick()
	if ch.Direction != types.Up || ch.Head != (types.Point{X: 5, Y: 6}) {
		t.Errorf("Expected to keep heading up to (5,6), got %v at %v", ch.Direction, ch.Head)
	}

	g.SetDirection(types.Left)
	g.SetDirection(types.Right)
	ch = g.Tick()
	if ch.Direction != types.Right {
		t.Errorf("Expected last request to win, got %v", ch.Direction)
	}
}

func TestReset(t *testing.T) {
	g := newTestGame(t, types.DefaultConfig())
	placeFood(g, types.Point{X: 0, Y: 0})
	firstRound := g.Round()

	for g.State() == types.Playing {
		g.Tick()
	}

	g.Reset()
	if g.State() != types.Playing || g.Reason() != types.NotEnded {
		t.Fatalf("Expected Playing after reset, got %v/%v", g.State(), g.Reason())
	}
	if g.Round() == firstRound {
		t.Error("Expected a new round id")
	}
	if g.Ticks() != 0 {
		t.Errorf("Expected tick counter reset, got %d", g.Ticks())
	}
	if g.HeadPosition() != (types.Point{X: 5, Y: 5}) || g.Direction() != types.Up {
		t.Errorf("Expected cold-start head, got %v facing %v", g.HeadPosition(), g.Direction())
	}
	assertPoints(t, "segments", g.SegmentPositions(), []types.Point{{X: 5, Y: 4}})
}

func TestSameSeedSameRounds(t *testing.T) {
	cfg := types.DefaultConfig()
	cfg.Seed = 2024
	a := newTestGame(t, cfg)
	b := newTestGame(t, cfg)

	inputs := map[int]types.Direction{0: types.Left, 3: types.Down, 5: types.Right, 9: types.Up}
	for i := 0; i < 40; i++ {
		if d, ok := inputs[i%12]; ok {
			a.SetDirection(d)
			b.SetDirection(d)
		}
		ca, cb := a.Tick(), b.Tick()
		if ca.Head != cb.Head || ca.Food != cb.Food || ca.State != cb.State || ca.Length() != cb.Length() {
			t.Fatalf("Tick %d diverged: %+v vs %+v", i, ca.Snapshot, cb.Snapshot)
		}
		if ca.State == types.GameOver {
			a.Reset()
			b.Reset()
		}
	}
}

func TestNewGameRejectsBadConfig(t *testing.T) {
	cfg := types.DefaultConfig()
	cfg.Width = 0
	if _, err := NewGame(cfg); err == nil {
		t.Error("Expected error for zero width")
	}
}

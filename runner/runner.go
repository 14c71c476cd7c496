package runner

import (
	"context"
	"log"
	"sync"
	"time"

	"gridsnake/game"
	"gridsnake/game/types"
)

const (
	directionBuffer = 16
	changesBuffer   = 64
)

// Pilot chooses a heading before each tick
type Pilot interface {
	Next(snap game.Snapshot) (types.Direction, bool)
}

// Runner owns a Game on one goroutine. Ticks, direction requests and resets
// are all applied from that goroutine, so the Game never sees concurrent calls.
type Runner struct {
	game        *game.Game
	pilot       Pilot
	autoReset   bool
	interval    time.Duration
	directions  chan types.Direction
	resets      chan struct{}
	changesChan chan game.Changes

	wg        sync.WaitGroup
	mutex     sync.RWMutex
	isRunning bool
	cancel    context.CancelFunc
	last      game.Snapshot
	started   time.Time
	stats     *Stats
}

type Option func(*Runner)

// WithPilot lets p steer instead of (or alongside) SetDirection callers
func WithPilot(p Pilot) Option {
	return func(r *Runner) { r.pilot = p }
}

// WithStats records finished rounds into s instead of a private Stats
func WithStats(s *Stats) Option {
	return func(r *Runner) { r.stats = s }
}

// WithAutoReset starts a new round on the tick after one ends
func WithAutoReset(enabled bool) Option {
	return func(r *Runner) { r.autoReset = enabled }
}

func New(g *game.Game, interval time.Duration, opts ...Option) *Runner {
	r := &Runner{
		game:        g,
		interval:    interval,
		directions:  make(chan types.Direction, directionBuffer),
		resets:      make(chan struct{}, 1),
		changesChan: make(chan game.Changes, changesBuffer),
		last:        g.Snapshot(),
		started:     time.Now(),
		stats:       NewStats(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Start launches the loop. It is a no-op if the loop is already running.
func (r *Runner) Start(ctx context.Context) {
	r.mutex.Lock()
	if r.isRunning {
		r.mutex.Unlock()
		return
	}
	ctx, r.cancel = context.WithCancel(ctx)
	r.isRunning = true
	r.mutex.Unlock()

	r.wg.Add(1)
	go r.loop(ctx)
}

// Stop cancels the loop and waits for it to exit
func (r *Runner) Stop() {
	r.mutex.Lock()
	if !r.isRunning {
		r.mutex.Unlock()
		return
	}
	r.isRunning = false
	cancel := r.cancel
	r.mutex.Unlock()

	cancel()
	r.wg.Wait()
}

// SetDirection queues a heading request without blocking. When the queue is
// full the oldest request is dropped so the newest still arrives.
func (r *Runner) SetDirection(dir types.Direction) {
	for {
		select {
		case r.directions <- dir:
			return
		default:
		}
		select {
		case <-r.directions:
		default:
		}
	}
}

// Reset asks the loop to rebuild the round; repeated requests coalesce
func (r *Runner) Reset() {
	select {
	case r.resets <- struct{}{}:
	default:
	}
}

// Changes delivers every tick that produced events, plus one snapshot per reset
func (r *Runner) Changes() <-chan game.Changes {
	return r.changesChan
}

// Snapshot returns the board as of the last applied tick or reset
func (r *Runner) Snapshot() game.Snapshot {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return r.last
}

// Rounds counts rounds that have ended since the runner was created
func (r *Runner) Rounds() int {
	return r.stats.RoundsPlayed()
}

func (r *Runner) Stats() *Stats {
	return r.stats
}

func (r *Runner) loop(ctx context.Context) {
	defer r.wg.Done()

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case dir := <-r.directions:
			r.game.SetDirection(dir)
		case <-r.resets:
			r.reset()
		case <-ticker.C:
			r.step()
		}
	}
}

func (r *Runner) step() {
	if r.game.State() == types.GameOver {
		if r.autoReset {
			r.reset()
		}
		return
	}

	if r.pilot != nil {
		if dir, ok := r.pilot.Next(r.game.Snapshot()); ok {
			r.game.SetDirection(dir)
		}
	}

	changes := r.game.Tick()
	if changes.Has(game.RoundOver) {
		r.stats.AddRound(RoundRecord{
			Round:     changes.Round,
			StartTime: r.started,
			EndTime:   time.Now(),
			Ticks:     changes.Tick,
			Length:    changes.Length(),
			Reason:    changes.Reason,
		})
		log.Printf("runner: round %s over after %d ticks: %v, length %d",
			changes.Round, changes.Tick, changes.Reason, changes.Length())
	}
	r.publish(changes)
}

func (r *Runner) reset() {
	r.game.Reset()
	r.started = time.Now()
	log.Printf("runner: round %s started", r.game.Round())
	r.publish(game.Changes{Snapshot: r.game.Snapshot()})
}

func (r *Runner) publish(changes game.Changes) {
	r.mutex.Lock()
	r.last = changes.Snapshot
	r.mutex.Unlock()

	for {
		select {
		case r.changesChan <- changes:
			return
		default:
		}
		// Slow consumer: drop the oldest update rather than stall the clock
		select {
		case <-r.changesChan:
		default:
		}
	}
}

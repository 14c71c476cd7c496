package server

import (
	"context"
	"log"
	"net/http"
	"sync"
	"time"

	"gridsnake/game"
	"gridsnake/game/types"

	"github.com/gin-gonic/gin"
)

type directionRequest struct {
	Direction string `json:"direction" binding:"required"`
}

// Server exposes one Game over HTTP. Every handler and the optional clock take
// the same lock, so the Game only ever sees one caller at a time.
type Server struct {
	mu     sync.Mutex
	game   *game.Game
	engine *gin.Engine
}

func New(g *game.Game) *Server {
	s := &Server{game: g}

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	r.GET("/state", s.state)
	r.POST("/tick", s.tick)
	r.POST("/direction", s.direction)
	r.POST("/reset", s.reset)

	s.engine = r
	return s
}

// Handler returns the routes for use with net/http or httptest
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run advances the game every interval until ctx is cancelled. Without it
// the game only moves on POST /tick.
func (s *Server) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.mu.Lock()
			changes := s.game.Tick()
			s.mu.Unlock()
			if changes.Has(game.RoundOver) {
				log.Printf("server: round %s over after %d ticks: %v", changes.Round, changes.Tick, changes.Reason)
			}
		}
	}
}

func (s *Server) state(c *gin.Context) {
	s.mu.Lock()
	snap := s.game.Snapshot()
	s.mu.Unlock()
	c.JSON(http.StatusOK, snap)
}

func (s *Server) tick(c *gin.Context) {
	s.mu.Lock()
	changes := s.game.Tick()
	s.mu.Unlock()
	c.JSON(http.StatusOK, changes)
}

func (s *Server) direction(c *gin.Context) {
	var req directionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	dir, err := types.ParseDirection(req.Direction)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.mu.Lock()
	accepted := s.game.SetDirection(dir)
	s.mu.Unlock()
	c.JSON(http.StatusOK, gin.H{"accepted": accepted})
}

func (s *Server) reset(c *gin.Context) {
	s.mu.Lock()
	s.game.Reset()
	snap := s.game.Snapshot()
	s.mu.Unlock()
	log.Printf("server: round %s started", snap.Round)
	c.JSON(http.StatusOK, snap)
}

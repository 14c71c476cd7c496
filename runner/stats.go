package runner

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"gridsnake/game/types"
)

// RoundRecord is one finished round
type RoundRecord struct {
	Round     string          `json:"round"`
	StartTime time.Time       `json:"startTime"`
	EndTime   time.Time       `json:"endTime"`
	Ticks     uint64          `json:"ticks"`
	Length    int             `json:"length"`
	Reason    types.EndReason `json:"reason"`
}

func (r RoundRecord) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}

// Stats collects finished rounds. Safe for concurrent use.
type Stats struct {
	records []RoundRecord
	mutex   sync.RWMutex
}

func NewStats() *Stats {
	return &Stats{records: make([]RoundRecord, 0)}
}

func (s *Stats) AddRound(record RoundRecord) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.records = append(s.records, record)
}

// Records returns a copy of every round recorded so far, oldest first
func (s *Stats) Records() []RoundRecord {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return append([]RoundRecord(nil), s.records...)
}

func (s *Stats) RoundsPlayed() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.records)
}

func (s *Stats) AverageLength() float64 {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if len(s.records) == 0 {
		return 0
	}
	total := 0
	for _, r := range s.records {
		total += r.Length
	}
	return float64(total) / float64(len(s.records))
}

func (s *Stats) MedianLength() float64 {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if len(s.records) == 0 {
		return 0
	}
	lengths := make([]int, len(s.records))
	for i, r := range s.records {
		lengths[i] = r.Length
	}
	sort.Ints(lengths)
	mid := len(lengths) / 2
	if len(lengths)%2 == 0 {
		return float64(lengths[mid-1]+lengths[mid]) / 2
	}
	return float64(lengths[mid])
}

func (s *Stats) MaxLength() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	best := 0
	for _, r := range s.records {
		if r.Length > best {
			best = r.Length
		}
	}
	return best
}

// AverageDuration is wall-clock time per round
func (s *Stats) AverageDuration() time.Duration {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if len(s.records) == 0 {
		return 0
	}
	var total time.Duration
	for _, r := range s.records {
		total += r.Duration()
	}
	return total / time.Duration(len(s.records))
}

// ReasonCounts tallies how rounds ended
func (s *Stats) ReasonCounts() map[types.EndReason]int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	counts := make(map[types.EndReason]int)
	for _, r := range s.records {
		counts[r.Reason]++
	}
	return counts
}

// SaveToFile writes every record as JSON, creating parent directories
func (s *Stats) SaveToFile(path string) error {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create stats directory: %w", err)
	}

	jsonData, err := json.MarshalIndent(s.records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal stats: %w", err)
	}

	if err := os.WriteFile(path, jsonData, 0644); err != nil {
		return fmt.Errorf("write stats file: %w", err)
	}
	return nil
}

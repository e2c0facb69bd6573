package dispatcher

import (
	"fmt"
	"sync"
	"time"

	"github.com/dshills/cutline/internal/dispatcher/handler"
)

// ActionStats holds the counters for one action name.
type ActionStats struct {
	Name       string
	Count      uint64
	Failed     uint64
	Elapsed    time.Duration
	LastStatus handler.ResultStatus
}

// FailureRate returns the share of failed dispatches as a percentage.
func (s ActionStats) FailureRate() float64 {
	if s.Count == 0 {
		return 0
	}
	return float64(s.Failed) / float64(s.Count) * 100
}

// Stats collects dispatch counters across all actions.
type Stats struct {
	mu sync.Mutex

	actions map[string]*ActionStats
	total   uint64
	failed  uint64
	panics  uint64
	elapsed time.Duration
}

func newStats() *Stats {
	return &Stats{actions: make(map[string]*ActionStats)}
}

func (s *Stats) record(name string, d time.Duration, status handler.ResultStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()

	as := s.actions[name]
	if as == nil {
		as = &ActionStats{Name: name}
		s.actions[name] = as
	}
	as.Count++
	as.Elapsed += d
	as.LastStatus = status

	s.total++
	s.elapsed += d
	if status == handler.StatusError {
		as.Failed++
		s.failed++
	}
}

func (s *Stats) recordPanic() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.panics++
}

// Total returns the number of dispatched actions.
func (s *Stats) Total() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.total
}

// Failed returns the number of actions that ended in an error result.
func (s *Stats) Failed() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.failed
}

// Panics returns the number of recovered handler panics.
func (s *Stats) Panics() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.panics
}

// Average returns the mean time spent per dispatch.
func (s *Stats) Average() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.total == 0 {
		return 0
	}
	return s.elapsed / time.Duration(s.total)
}

// Action returns a snapshot of the counters for name.
func (s *Stats) Action(name string) (ActionStats, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	as, ok := s.actions[name]
	if !ok {
		return ActionStats{}, false
	}
	return *as, true
}

// String summarises the counters for a log line.
func (s *Stats) String() string {
	return fmt.Sprintf("dispatched %d actions, %d errors, avg %s", s.Total(), s.Failed(), s.Average())
}

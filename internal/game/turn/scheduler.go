// Package turn advances game time one player turn at a time.
package turn

import (
	"context"
	"fmt"
	"slices"
	"sync"
)

// TickFunc runs once per turn. turn is the number of the turn being completed.
type TickFunc func(turn int)

// Scheduler runs named per-turn callbacks.
//
// Invariant: within a turn, callbacks run in ascending name order, each at
// most once.
type Scheduler struct {
	mu    sync.Mutex
	turn  int
	ticks map[string]TickFunc
}

// NewScheduler returns a Scheduler at turn 0 with no callbacks.
func NewScheduler() *Scheduler {
	return &Scheduler{ticks: make(map[string]TickFunc)}
}

// Register installs fn under name. Replaces any existing callback.
//
// Precondition: name is non-empty and fn is non-nil.
func (s *Scheduler) Register(name string, fn TickFunc) {
	if name == "" || fn == nil {
		panic("turn.Scheduler.Register: name and fn are required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ticks[name] = fn
}

// Unregister removes the callback registered under name.
func (s *Scheduler) Unregister(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.ticks, name)
}

// Turn returns the number of completed turns.
func (s *Scheduler) Turn() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.turn
}

// Advance completes n turns, stopping early when ctx is cancelled.
//
// Precondition: n >= 0.
// Postcondition: Returns the number of turns completed and ctx.Err() if it
// stopped early.
func (s *Scheduler) Advance(ctx context.Context, n int) (int, error) {
	if n < 0 {
		return 0, fmt.Errorf("advancing %d turns: count must be >= 0", n)
	}
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return i, err
		}
		s.step()
	}
	return n, nil
}

func (s *Scheduler) step() {
	s.mu.Lock()
	s.turn++
	turn := s.turn
	names := make([]string, 0, len(s.ticks))
	for name := range s.ticks {
		names = append(names, name)
	}
	slices.Sort(names)
	callbacks := make([]TickFunc, len(names))
	for i, name := range names {
		callbacks[i] = s.ticks[name]
	}
	s.mu.Unlock()
	for _, fn := range callbacks {
		fn(turn)
	}
}

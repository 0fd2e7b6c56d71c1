package condition

import (
	"fmt"
	"sort"
)

// ActiveCondition tracks one applied buff on a player.
type ActiveCondition struct {
	Def               *ConditionDef
	DurationRemaining int // -1 = permanent
}

// ActiveSet is the status/duration store: indexed get/set of named timed buffs.
// It is not safe for concurrent use; the game loop serialises access.
type ActiveSet struct {
	conditions map[string]*ActiveCondition
}

// NewActiveSet creates an empty ActiveSet.
func NewActiveSet() *ActiveSet {
	return &ActiveSet{conditions: make(map[string]*ActiveCondition)}
}

// Apply adds a buff or extends an existing one.
// duration is turns remaining and is ignored for permanent definitions.
// Durations are capped at def.MaxDuration when that is positive.
//
// Precondition: def must not be nil; duration > 0 unless def is permanent.
// Postcondition: Has(def.ID) is true; on re-apply a permanent buff stays
// permanent, otherwise DurationRemaining is max(existing, duration).
func (s *ActiveSet) Apply(def *ConditionDef, duration int) error {
	if def == nil {
		return fmt.Errorf("Apply: def must not be nil")
	}
	if def.DurationType == Permanent {
		duration = -1
	} else if duration <= 0 {
		return fmt.Errorf("Apply: duration for %q must be positive, got %d", def.ID, duration)
	}
	if def.MaxDuration > 0 && duration > def.MaxDuration {
		duration = def.MaxDuration
	}
	if existing, ok := s.conditions[def.ID]; ok {
		if existing.DurationRemaining < 0 {
			return nil
		}
		if duration < 0 || duration > existing.DurationRemaining {
			existing.DurationRemaining = duration
		}
		return nil
	}
	s.conditions[def.ID] = &ActiveCondition{Def: def, DurationRemaining: duration}
	return nil
}

// Remove deletes the buff with the given ID from the set.
// If the buff is not present, Remove is a no-op.
//
// Postcondition: Has(id) is false.
func (s *ActiveSet) Remove(id string) {
	delete(s.conditions, id)
}

// Has reports whether the buff with id is currently active.
func (s *ActiveSet) Has(id string) bool {
	_, ok := s.conditions[id]
	return ok
}

// Duration returns the remaining turns for id: 0 when absent, -1 when permanent.
func (s *ActiveSet) Duration(id string) int {
	if ac, ok := s.conditions[id]; ok {
		return ac.DurationRemaining
	}
	return 0
}

// SetDuration overwrites the remaining turns of an active buff. n <= 0 removes it.
// Returns false when id is not active; absent buffs are never created here.
//
// Postcondition: Duration(id) == n when n > 0 and the buff was active.
func (s *ActiveSet) SetDuration(id string, n int) bool {
	ac, ok := s.conditions[id]
	if !ok {
		return false
	}
	if n <= 0 {
		delete(s.conditions, id)
		return true
	}
	ac.DurationRemaining = n
	return true
}

// Tick decrements every timed buff by 1 and removes those reaching 0.
// Permanent buffs are not affected.
//
// Postcondition: For every id in the returned slice, Has(id) is false. The slice is sorted.
func (s *ActiveSet) Tick() []string {
	var expired []string
	for id, ac := range s.conditions {
		if ac.DurationRemaining < 0 {
			continue
		}
		ac.DurationRemaining--
		if ac.DurationRemaining <= 0 {
			expired = append(expired, id)
			delete(s.conditions, id)
		}
	}
	sort.Strings(expired)
	return expired
}

// All returns the active buffs ordered by ID.
// The pointed-to ActiveCondition values are shared; callers must not modify them.
func (s *ActiveSet) All() []*ActiveCondition {
	out := make([]*ActiveCondition, 0, len(s.conditions))
	for _, ac := range s.conditions {
		out = append(out, ac)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Def.ID < out[j].Def.ID })
	return out
}

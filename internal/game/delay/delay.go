// Package delay models multi-turn player actions such as butchering a corpse.
package delay

// Kind identifies a multi-turn action.
type Kind string

const (
	Butcher Kind = "butcher"
	Rest    Kind = "rest"
)

// Action is one queued multi-turn action.
type Action struct {
	Kind      Kind
	Remaining int
}

// Queue holds the player's pending multi-turn actions; the head is in progress.
// It is not safe for concurrent use.
type Queue struct {
	actions []Action
}

// NewQueue returns an empty Queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Push appends an action lasting turns turns.
//
// Precondition: turns > 0.
func (q *Queue) Push(kind Kind, turns int) {
	q.actions = append(q.actions, Action{Kind: kind, Remaining: turns})
}

// Current returns the action in progress.
func (q *Queue) Current() (Action, bool) {
	if len(q.actions) == 0 {
		return Action{}, false
	}
	return q.actions[0], true
}

// Len returns the number of queued actions.
func (q *Queue) Len() int {
	return len(q.actions)
}

// Tick advances the action in progress by one turn and returns it when it completes.
func (q *Queue) Tick() (Action, bool) {
	if len(q.actions) == 0 {
		return Action{}, false
	}
	q.actions[0].Remaining--
	if q.actions[0].Remaining > 0 {
		return Action{}, false
	}
	done := q.actions[0]
	q.actions = q.actions[1:]
	return done, true
}

// StopButchering cancels every queued butcher action and reports whether
// one was in progress.
//
// Postcondition: no Butcher action remains queued.
func (q *Queue) StopButchering() bool {
	inProgress := len(q.actions) > 0 && q.actions[0].Kind == Butcher
	kept := q.actions[:0]
	for _, a := range q.actions {
		if a.Kind != Butcher {
			kept = append(kept, a)
		}
	}
	q.actions = kept
	return inProgress
}

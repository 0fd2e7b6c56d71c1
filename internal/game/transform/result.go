package transform

import (
	"errors"
	"fmt"
)

var (
	// ErrNilPlayer is returned when an operation is given no player.
	ErrNilPlayer = errors.New("transform: player must not be nil")
	// ErrUnknownForm is returned for FormNone, out-of-range forms and forms missing from the table.
	ErrUnknownForm = errors.New("transform: unknown form")
	// ErrNegativePower is returned when power < 0.
	ErrNegativePower = errors.New("transform: power must be >= 0")
)

// Rejection says why an entry attempt was refused.
type Rejection int

const (
	RejectNone Rejection = iota
	// RejectSubmerged: an aquatic species in water tried a non-flying form.
	RejectSubmerged
	// RejectMaxDuration: the active form is already at the extension cap.
	RejectMaxDuration
	// RejectUndead: an undead player tried a form its species cannot take.
	RejectUndead
	// RejectConflictingBuff: an active buff forbids the form.
	RejectConflictingBuff
	// RejectCursed: cursed equipment occupies a slot the form must empty.
	RejectCursed
)

func (r Rejection) String() string {
	switch r {
	case RejectNone:
		return "none"
	case RejectSubmerged:
		return "submerged"
	case RejectMaxDuration:
		return "max_duration"
	case RejectUndead:
		return "undead"
	case RejectConflictingBuff:
		return "conflicting_buff"
	case RejectCursed:
		return "cursed"
	default:
		return fmt.Sprintf("rejection(%d)", int(r))
	}
}

// Result reports the outcome of an entry attempt.
type Result struct {
	Success bool
	// Extended is set when the attempt lengthened the already active form.
	Extended  bool
	Rejection Rejection
}

func rejected(r Rejection) Result {
	return Result{Rejection: r}
}

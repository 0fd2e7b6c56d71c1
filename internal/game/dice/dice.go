// Package dice provides the randomness abstraction and roll audit types used
// by the transformation engine.
package dice

import (
	"fmt"
	"strings"
)

// RollResult holds the audit trail for one composite roll: a flat base plus
// zero or more random2 draws.
//
// Postcondition: Total() == sum(Dice) + Modifier.
type RollResult struct {
	Expression string // human-readable description, e.g. "20+2r10"
	Dice       []int  // individual draws before the modifier
	Modifier   int    // flat base (may be negative)
}

// Total returns the sum of all draws plus the modifier.
//
// Postcondition: return value == sum(r.Dice) + r.Modifier.
func (r RollResult) Total() int {
	total := r.Modifier
	for _, d := range r.Dice {
		total += d
	}
	return total
}

// String returns a human-readable audit string in the format:
//
//	"20+2r10 → [4 5] +20 = 29"
//
// Precondition: r.Expression is non-empty.
func (r RollResult) String() string {
	if r.Expression == "" {
		panic("dice: RollResult.String() precondition violated: Expression must be non-empty")
	}
	parts := make([]string, len(r.Dice))
	for i, d := range r.Dice {
		parts[i] = fmt.Sprintf("%d", d)
	}
	return fmt.Sprintf("%s → [%s] %+d = %d", r.Expression, strings.Join(parts, " "), r.Modifier, r.Total())
}

// Source is the randomness provider for all rolls.
//
// Implementations MUST be safe for concurrent use.
type Source interface {
	// Intn returns a non-negative random int in [0, n).
	//
	// Precondition: n > 0.
	Intn(n int) int
}

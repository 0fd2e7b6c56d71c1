package command

import (
	"context"
	"fmt"
	"strconv"

	"github.com/cory-johannsen/morph/internal/game/delay"
	"github.com/cory-johannsen/morph/internal/game/inventory"
	"github.com/cory-johannsen/morph/internal/game/session"
)

// maxWait bounds a single wait or rest so a typo cannot stall the console.
const maxWait = 1000

// defaultButcherTurns is how long butchering takes when no count is given.
const defaultButcherTurns = 4

func parseTurns(args []string, def int) (int, error) {
	if len(args) == 0 {
		return def, nil
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 || n > maxWait {
		return 0, fmt.Errorf("turns must be a number from 1 to %d, got %q", maxWait, args[0])
	}
	return n, nil
}

// HandleWait processes "wait [turns]".
func HandleWait(ctx context.Context, s *session.Session, args []string) string {
	n, err := parseTurns(args, 1)
	if err != nil {
		return capitalize(err.Error()) + "."
	}
	if _, err := s.Wait(ctx, n); err != nil {
		return fmt.Sprintf("Interrupted: %v", err)
	}
	return ""
}

// HandleRest processes "rest [turns]": a rest action that runs to completion.
func HandleRest(ctx context.Context, s *session.Session, args []string) string {
	n, err := parseTurns(args, 10)
	if err != nil {
		return capitalize(err.Error()) + "."
	}
	s.Player.Delays.Push(delay.Rest, n)
	if _, err := s.Wait(ctx, n); err != nil {
		return fmt.Sprintf("Interrupted: %v", err)
	}
	return ""
}

// HandleButcher processes "butcher [turns]". It queues the butchering action
// without letting time pass, so a transformation can interrupt it.
func HandleButcher(s *session.Session, args []string) string {
	n, err := parseTurns(args, defaultButcherTurns)
	if err != nil {
		return capitalize(err.Error()) + "."
	}
	p := s.Player
	_, armed := p.Worn(inventory.SlotWeapon)
	if !armed && !s.Forms.CanButcherBarehanded(p.Form.Current) && p.ClawLevel() == 0 {
		return "You need a blade to butcher with."
	}
	p.Delays.Push(delay.Butcher, n)
	return "You start butchering the corpse."
}

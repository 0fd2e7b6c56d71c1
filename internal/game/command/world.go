package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/cory-johannsen/morph/internal/game/session"
	"github.com/cory-johannsen/morph/internal/game/world"
)

// HandleMove steps one cell in the named direction and lets a turn pass.
func HandleMove(ctx context.Context, s *session.Session, dir string) string {
	d, err := world.ParseDirection(dir)
	if err != nil {
		return fmt.Sprintf("Unknown direction %q.", dir)
	}
	if err := s.Level.Move(s.Player, d); err != nil {
		return capitalize(err.Error()) + "."
	}
	if _, err := s.Wait(ctx, 1); err != nil {
		return fmt.Sprintf("Interrupted: %v", err)
	}
	return ""
}

// HandleFloor lists what lies under the player.
func HandleFloor(s *session.Session) string {
	items := s.Level.ItemsAt(s.Player.Pos)
	if len(items) == 0 {
		return "There is nothing here."
	}
	var b strings.Builder
	b.WriteString("Things that are here:")
	for _, inst := range items {
		fmt.Fprintf(&b, "\n  %-20s %s", inst.ItemDefID, inst.Name)
		if inst.Trapping {
			b.WriteString(" (holding you)")
		}
	}
	return b.String()
}

// HandleGet picks an item up from the floor.
func HandleGet(s *session.Session, arg string) string {
	query := strings.ToLower(strings.TrimSpace(arg))
	if query == "" {
		return "Usage: get <item>"
	}
	for _, inst := range s.Level.ItemsAt(s.Player.Pos) {
		if inst.ItemDefID != query && strings.ToLower(inst.Name) != query {
			continue
		}
		if inst.Trapping {
			return "You can't pick up a net you are caught in."
		}
		if s.Player.Pack.UsedSlots() >= s.Player.Pack.MaxSlots {
			return "You can't carry that many items."
		}
		picked, ok := s.Level.Floor().Pickup(s.Player.Pos.Key(), inst.InstanceID)
		if !ok {
			break
		}
		if _, err := s.Player.Pack.Insert(picked); err != nil {
			s.Level.DropAt(s.Player.Pos, picked)
			return fmt.Sprintf("You can't pick that up: %v", err)
		}
		return fmt.Sprintf("You pick up %s.", picked.Name)
	}
	return fmt.Sprintf("There is no %q here.", arg)
}

// HandleDrop puts an unworn pack item on the floor.
func HandleDrop(s *session.Session, arg string) string {
	if strings.TrimSpace(arg) == "" {
		return "Usage: drop <item>"
	}
	inst, ok := findInPack(s, arg)
	if !ok {
		return fmt.Sprintf("You don't have %q.", arg)
	}
	if _, worn := s.Player.Equipment.SlotOf(inst.InstanceID); worn {
		return "You will have to take that off first."
	}
	if _, err := s.Player.Pack.Remove(inst.InstanceID); err != nil {
		return fmt.Sprintf("You can't drop that: %v", err)
	}
	s.Level.DropAt(s.Player.Pos, inst)
	return fmt.Sprintf("You drop %s.", inst.Name)
}

// HandleMap draws the level around the player.
func HandleMap(s *session.Session) string {
	return strings.TrimRight(s.Level.Render(s.Player), "\n")
}

func capitalize(text string) string {
	if text == "" {
		return text
	}
	return strings.ToUpper(text[:1]) + text[1:]
}

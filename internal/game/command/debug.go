package command

import (
	"fmt"
	"strconv"

	"github.com/cory-johannsen/morph/internal/game/inventory"
	"github.com/cory-johannsen/morph/internal/game/session"
)

// netItemID is the item definition thrown by the net command.
const netItemID = "net"

// HandleBuff processes "buff <id> <turns>".
func HandleBuff(s *session.Session, args []string) string {
	if len(args) != 2 {
		return "Usage: buff <id> <turns>"
	}
	def, ok := s.Conditions.Get(args[0])
	if !ok {
		return fmt.Sprintf("Unknown buff %q.", args[0])
	}
	turns, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Sprintf("Turns must be a number, got %q.", args[1])
	}
	if err := s.Player.Buffs.Apply(def, turns); err != nil {
		return fmt.Sprintf("Cannot apply %s: %v", def.Name, err)
	}
	return fmt.Sprintf("You are affected by %s.", def.Name)
}

// HandleCurse processes "curse <item>".
func HandleCurse(s *session.Session, arg string) string {
	inst, ok := findInPack(s, arg)
	if !ok {
		return fmt.Sprintf("You don't have %q.", arg)
	}
	s.Player.Pack.SetCursed(inst.InstanceID, true)
	return fmt.Sprintf("%s glows black for a moment.", inst.YourName())
}

// HandleNet throws a fresh net over the player.
func HandleNet(s *session.Session) string {
	if s.Player.Held {
		return "You are already caught in a net."
	}
	def, ok := s.Items.Item(netItemID)
	if !ok {
		return "There are no nets in this world."
	}
	if err := s.Level.Entangle(s.Player, inventory.NewInstance(def, 1)); err != nil {
		return fmt.Sprintf("The net misses: %v", err)
	}
	return "You are caught in a net!"
}

package command

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/cory-johannsen/morph/internal/game/character"
	"github.com/cory-johannsen/morph/internal/game/session"
	"github.com/cory-johannsen/morph/internal/game/transform"
)

// HandleTransform processes "transform <form> [power]".
//
// Precondition: s is non-nil.
// Postcondition: The controller's own messages describe the outcome; the
// returned text is non-empty only for usage errors.
func HandleTransform(s *session.Session, args []string) string {
	if len(args) < 1 || len(args) > 2 {
		return "Usage: transform <form> [power]"
	}
	form, err := character.ParseForm(args[0])
	if err != nil || form == character.FormNone {
		return fmt.Sprintf("Unknown form %q. Try: %s.", args[0], formList())
	}
	power := s.DefaultPower
	if len(args) == 2 {
		power, err = strconv.Atoi(args[1])
		if err != nil {
			return fmt.Sprintf("Power must be a number, got %q.", args[1])
		}
	}
	if _, err := s.Forms.Enter(s.Player, form, power); err != nil {
		if errors.Is(err, transform.ErrNegativePower) {
			return "Power must not be negative."
		}
		return fmt.Sprintf("Cannot transform: %v", err)
	}
	return ""
}

// HandleUntransform processes "untransform".
func HandleUntransform(s *session.Session) string {
	if !s.Player.Form.Active() {
		return "You are not transformed."
	}
	s.Forms.Exit(s.Player)
	return ""
}

// HandleForms lists the loaded form table.
func HandleForms(s *session.Session) string {
	var b strings.Builder
	for _, def := range s.Forms.Table().All() {
		size := string(def.Size)
		if size == "" {
			size = "own"
		}
		fmt.Fprintf(&b, "%-16s %-6s size %-6s hp x%d.%d  %s\n",
			def.Form, string(def.GlyphRune()), size, def.Scale()/10, def.Scale()%10, def.Description)
	}
	return strings.TrimRight(b.String(), "\n")
}

func formList() string {
	names := make([]string, 0, len(character.AllForms()))
	for _, f := range character.AllForms() {
		names = append(names, f.String())
	}
	return strings.Join(names, ", ")
}

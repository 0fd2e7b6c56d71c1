package character

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Colour is a display colour for the player's glyph.
type Colour int

const (
	Black Colour = iota
	Blue
	Green
	Cyan
	Red
	Magenta
	Brown
	LightGrey
	DarkGrey
	LightBlue
	LightGreen
	LightCyan
	LightRed
	LightMagenta
	Yellow
	White
	numColours
)

var colourNames = [numColours]string{
	"black", "blue", "green", "cyan", "red", "magenta", "brown", "lightgrey",
	"darkgrey", "lightblue", "lightgreen", "lightcyan", "lightred",
	"lightmagenta", "yellow", "white",
}

func (c Colour) String() string {
	if c < 0 || c >= numColours {
		return fmt.Sprintf("colour(%d)", int(c))
	}
	return colourNames[c]
}

// ParseColour converts a colour name to a Colour.
func ParseColour(s string) (Colour, error) {
	for i, name := range colourNames {
		if name == s {
			return Colour(i), nil
		}
	}
	return Black, fmt.Errorf("unknown colour %q", s)
}

// UnmarshalYAML decodes a colour from its text name.
func (c *Colour) UnmarshalYAML(node *yaml.Node) error {
	parsed, err := ParseColour(node.Value)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Baseline appearance of an untransformed player.
const (
	BaseGlyph  = '@'
	BaseColour = LightGrey
)

// UndeadState records whether the player is alive.
type UndeadState int

const (
	Alive UndeadState = iota
	// UndeadTemporary is granted by a form and revoked when it ends.
	UndeadTemporary
	UndeadPermanent
)

func (u UndeadState) String() string {
	switch u {
	case Alive:
		return "alive"
	case UndeadTemporary:
		return "undead (temporary)"
	case UndeadPermanent:
		return "undead"
	default:
		return fmt.Sprintf("undead(%d)", int(u))
	}
}

// Hunger is the player's nourishment level.
type Hunger int

const (
	Starving Hunger = iota
	Hungry
	Satiated
	Full
)

func (h Hunger) String() string {
	switch h {
	case Starving:
		return "starving"
	case Hungry:
		return "hungry"
	case Satiated:
		return "satiated"
	case Full:
		return "full"
	default:
		return fmt.Sprintf("hunger(%d)", int(h))
	}
}

// RedrawFlags tell the display which status lines are stale.
type RedrawFlags struct {
	Evasion     bool
	ArmourClass bool
	Wield       bool
	Hunger      bool
	HitPoints   bool
}

// Any reports whether any flag is set.
func (r RedrawFlags) Any() bool {
	return r.Evasion || r.ArmourClass || r.Wield || r.Hunger || r.HitPoints
}

// Mutations are permanent body changes that restrict equipment.
type Mutations struct {
	Horns int
	Claws int
}

// Pos is a map coordinate.
type Pos struct {
	X, Y int
}

// Key returns the location key used by floor storage, e.g. "3,4".
func (p Pos) Key() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

package character

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Form is the player's current bodily form.
type Form int

const (
	FormNone Form = iota
	FormSpider
	FormBat
	FormIceBeast
	FormBladeHands
	FormStatue
	FormDragon
	FormLich
	FormAir
	FormSerpentOfHell
	numForms
)

var formNames = [numForms]string{
	"none",
	"spider",
	"bat",
	"ice_beast",
	"blade_hands",
	"statue",
	"dragon",
	"lich",
	"air",
	"serpent_of_hell",
}

// String returns the form's text name, e.g. "ice_beast".
func (f Form) String() string {
	if f < 0 || f >= numForms {
		return fmt.Sprintf("form(%d)", int(f))
	}
	return formNames[f]
}

// Valid reports whether f is one of the defined forms.
func (f Form) Valid() bool {
	return f >= 0 && f < numForms
}

// AllForms returns every form except FormNone, in declaration order.
func AllForms() []Form {
	out := make([]Form, 0, numForms-1)
	for f := FormNone + 1; f < numForms; f++ {
		out = append(out, f)
	}
	return out
}

// ParseForm converts a text name to a Form. Case, spaces and hyphens are ignored.
func ParseForm(s string) (Form, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.NewReplacer("-", "_", " ", "_").Replace(norm)
	for i, name := range formNames {
		if name == norm {
			return Form(i), nil
		}
	}
	return FormNone, fmt.Errorf("unknown form %q", s)
}

// UnmarshalYAML decodes a form from its text name.
func (f *Form) UnmarshalYAML(node *yaml.Node) error {
	parsed, err := ParseForm(node.Value)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// MarshalYAML encodes a form as its text name.
func (f Form) MarshalYAML() (interface{}, error) {
	return f.String(), nil
}

// FormState is the transformation sub-state owned by a Player.
// Only the transform package mutates it.
type FormState struct {
	Current Form
	// Duration is the number of turns left in Current; 0 when Current is FormNone.
	Duration int
	// HPScale multiplies BaseHP in tenths while Current is active. 0 and 10 mean unscaled.
	HPScale int
	// Flight is granted by Current.
	Flight bool
}

// Active reports whether a form other than FormNone is in effect.
func (s FormState) Active() bool {
	return s.Current != FormNone
}

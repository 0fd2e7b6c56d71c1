package inventory

import (
	"fmt"
	"math/bits"
	"strings"

	"gopkg.in/yaml.v3"
)

// Slot identifies an equipment slot. Slots are ordered: lower ids are
// processed first whenever a set of slots is walked.
type Slot int

const (
	SlotWeapon Slot = iota
	SlotCloak
	SlotHelmet
	SlotGloves
	SlotBoots
	SlotShield
	SlotBodyArmour
	SlotLeftRing
	SlotRightRing
	SlotAmulet
	numSlots
)

var slotNames = [numSlots]string{
	"weapon", "cloak", "helmet", "gloves", "boots",
	"shield", "body_armour", "left_ring", "right_ring", "amulet",
}

// slotDisplayNames maps every slot identifier to its human-readable label.
var slotDisplayNames = [numSlots]string{
	"Weapon", "Cloak", "Helmet", "Gloves", "Boots",
	"Shield", "Body Armour", "Left Ring", "Right Ring", "Amulet",
}

// AllSlots returns every slot in ascending order.
func AllSlots() []Slot {
	out := make([]Slot, numSlots)
	for i := range out {
		out[i] = Slot(i)
	}
	return out
}

// Valid reports whether s is a defined slot.
func (s Slot) Valid() bool {
	return s >= 0 && s < numSlots
}

// String returns the slot's content identifier, e.g. "body_armour".
func (s Slot) String() string {
	if !s.Valid() {
		return fmt.Sprintf("slot(%d)", int(s))
	}
	return slotNames[s]
}

// DisplayName returns the human-readable label for s.
func (s Slot) DisplayName() string {
	if !s.Valid() {
		return s.String()
	}
	return slotDisplayNames[s]
}

// ParseSlot resolves a content identifier to a Slot.
//
// Postcondition: returns an error iff name is not a known slot identifier.
func ParseSlot(name string) (Slot, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, s := range slotNames {
		if s == n {
			return Slot(i), nil
		}
	}
	return 0, fmt.Errorf("unknown slot %q", name)
}

// UnmarshalYAML decodes a slot from its content identifier.
func (s *Slot) UnmarshalYAML(node *yaml.Node) error {
	var name string
	if err := node.Decode(&name); err != nil {
		return err
	}
	parsed, err := ParseSlot(name)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// MarshalYAML encodes a slot as its content identifier.
func (s Slot) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}

// SlotSet is an immutable set of slots. The zero value is the empty set.
type SlotSet uint16

// NewSlotSet returns the set containing slots.
func NewSlotSet(slots ...Slot) SlotSet {
	var set SlotSet
	for _, s := range slots {
		set = set.Add(s)
	}
	return set
}

// DefaultRemovalSet is everything except jewellery: the gear a body change
// sheds unless the form says otherwise.
func DefaultRemovalSet() SlotSet {
	return NewSlotSet(SlotWeapon, SlotCloak, SlotHelmet, SlotGloves, SlotBoots, SlotShield, SlotBodyArmour)
}

// FullSlotSet contains every slot.
func FullSlotSet() SlotSet {
	return NewSlotSet(AllSlots()...)
}

// Add returns set with s included. Invalid slots are ignored.
func (set SlotSet) Add(s Slot) SlotSet {
	if !s.Valid() {
		return set
	}
	return set | 1<<uint(s)
}

// Remove returns set without s.
func (set SlotSet) Remove(s Slot) SlotSet {
	if !s.Valid() {
		return set
	}
	return set &^ (1 << uint(s))
}

// Has reports whether s is in set.
func (set SlotSet) Has(s Slot) bool {
	return s.Valid() && set&(1<<uint(s)) != 0
}

// Union returns the slots in either set.
func (set SlotSet) Union(other SlotSet) SlotSet {
	return set | other
}

// Minus returns the slots in set that are not in other.
func (set SlotSet) Minus(other SlotSet) SlotSet {
	return set &^ other
}

// Len returns the number of slots in set.
func (set SlotSet) Len() int {
	return bits.OnesCount16(uint16(set))
}

// Sorted returns the members of set in ascending slot order.
//
// Postcondition: result[i] < result[i+1] for all i.
func (set SlotSet) Sorted() []Slot {
	out := make([]Slot, 0, set.Len())
	for s := Slot(0); s < numSlots; s++ {
		if set.Has(s) {
			out = append(out, s)
		}
	}
	return out
}

// String renders the set as a bracketed list of slot identifiers.
func (set SlotSet) String() string {
	names := make([]string, 0, set.Len())
	for _, s := range set.Sorted() {
		names = append(names, s.String())
	}
	return "[" + strings.Join(names, " ") + "]"
}

// UnmarshalYAML decodes a list of slot identifiers. The single scalar "all"
// decodes to FullSlotSet.
func (set *SlotSet) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode && node.Value == "all" {
		*set = FullSlotSet()
		return nil
	}
	var slots []Slot
	if err := node.Decode(&slots); err != nil {
		return err
	}
	*set = NewSlotSet(slots...)
	return nil
}

// MarshalYAML encodes the set as a list of slot identifiers.
func (set SlotSet) MarshalYAML() (interface{}, error) {
	names := make([]string, 0, set.Len())
	for _, s := range set.Sorted() {
		names = append(names, s.String())
	}
	return names, nil
}

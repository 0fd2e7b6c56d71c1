// Package inventory provides item definitions, the player's pack, worn
// equipment, and items lying on the floor.
package inventory

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Kind constants for ItemDef.Kind.
const (
	KindWeapon    = "weapon"
	KindArmour    = "armour"
	KindJewellery = "jewellery"
	KindMisc      = "misc"
	KindNet       = "net"
)

// validKinds is the set of valid ItemDef kinds.
var validKinds = map[string]bool{
	KindWeapon:    true,
	KindArmour:    true,
	KindJewellery: true,
	KindMisc:      true,
	KindNet:       true,
}

// ItemDef defines the static properties of an item loaded from YAML.
type ItemDef struct {
	ID          string  `yaml:"id"`
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Kind        string  `yaml:"kind"`
	Slot        string  `yaml:"slot"`        // equipment slot identifier; empty for unwearable kinds
	Cursed      bool    `yaml:"cursed"`      // instances start bound to the wearer
	HardHelmet  bool    `yaml:"hard_helmet"` // rigid headgear; only meaningful for helmet-slot items
	Weight      float64 `yaml:"weight"`
}

// EquipSlot returns the slot the item is worn in, or false when it cannot be worn.
func (d *ItemDef) EquipSlot() (Slot, bool) {
	if d.Slot == "" {
		return 0, false
	}
	s, err := ParseSlot(d.Slot)
	if err != nil {
		return 0, false
	}
	return s, true
}

// Validate checks that the ItemDef satisfies its invariants.
//
// Precondition: d is non-nil.
// Postcondition: returns nil iff all fields are valid.
func (d *ItemDef) Validate() error {
	var errs []error
	if d.ID == "" {
		errs = append(errs, errors.New("ID must not be empty"))
	}
	if d.Name == "" {
		errs = append(errs, errors.New("Name must not be empty"))
	}
	if !validKinds[d.Kind] {
		errs = append(errs, fmt.Errorf("Kind must be one of weapon, armour, jewellery, misc, net; got %q", d.Kind))
	}
	if d.Weight < 0 {
		errs = append(errs, errors.New("Weight must be >= 0"))
	}
	slot, wearable := d.EquipSlot()
	if d.Slot != "" && !wearable {
		errs = append(errs, fmt.Errorf("Slot %q is not a valid slot", d.Slot))
	}
	switch d.Kind {
	case KindWeapon:
		if !wearable || slot != SlotWeapon {
			errs = append(errs, errors.New("weapons must use the weapon slot"))
		}
	case KindArmour, KindJewellery:
		if !wearable || slot == SlotWeapon {
			errs = append(errs, fmt.Errorf("%s requires a non-weapon slot", d.Kind))
		}
	default:
		if wearable {
			errs = append(errs, fmt.Errorf("%s items cannot be worn", d.Kind))
		}
	}
	if d.HardHelmet && (!wearable || slot != SlotHelmet) {
		errs = append(errs, errors.New("hard_helmet requires the helmet slot"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("item validation failed: %v", errs)
	}
	return nil
}

// LoadItems reads all *.yaml and *.yml files from dir, parses each as an
// ItemDef, validates it, and returns the collected slice.
//
// Precondition: dir is a readable directory path.
// Postcondition: returns all valid ItemDefs or the first encountered error.
func LoadItems(dir string) ([]*ItemDef, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("LoadItems: cannot read directory %q: %w", dir, err)
	}

	var items []*ItemDef
	for _, entry := range entries {
		ext := filepath.Ext(entry.Name())
		if entry.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("LoadItems: cannot read file %q: %w", path, err)
		}
		var d ItemDef
		if err := yaml.Unmarshal(data, &d); err != nil {
			return nil, fmt.Errorf("LoadItems: cannot parse file %q: %w", path, err)
		}
		if err := d.Validate(); err != nil {
			return nil, fmt.Errorf("LoadItems: invalid item in %q: %w", path, err)
		}
		items = append(items, &d)
	}
	return items, nil
}

// Package condition holds timed buff definitions and the per-player store of
// active buff durations.
package condition

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Built-in buff identifiers consulted by the transformation engine.
const (
	StoneSkin     = "stoneskin"
	StoneMail     = "stonemail"
	IcyArmour     = "icy_armour"
	Regeneration  = "regeneration"
	ResistPoison  = "resist_poison"
	DeathsDoor    = "deaths_door"
	DurationTurns = "turns"
	Permanent     = "permanent"
)

// ConditionDef is the static definition of a timed buff, loaded from YAML.
type ConditionDef struct {
	ID            string `yaml:"id"`
	Name          string `yaml:"name"`
	Description   string `yaml:"description"`
	DurationType  string `yaml:"duration_type"` // "turns" | "permanent"
	MaxDuration   int    `yaml:"max_duration"`  // 0 = uncapped
	ExpireMessage string `yaml:"expire_message"`
}

// Validate reports an error if the def is missing required fields.
func (d *ConditionDef) Validate() error {
	var errs []error
	if d.ID == "" {
		errs = append(errs, errors.New("id must not be empty"))
	}
	if d.Name == "" {
		errs = append(errs, errors.New("name must not be empty"))
	}
	if d.DurationType != DurationTurns && d.DurationType != Permanent {
		errs = append(errs, fmt.Errorf("duration_type %q must be %q or %q", d.DurationType, DurationTurns, Permanent))
	}
	if d.MaxDuration < 0 {
		errs = append(errs, errors.New("max_duration must be >= 0"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("condition validation failed: %v", errs)
	}
	return nil
}

// Registry holds all known ConditionDefs keyed by ID.
type Registry struct {
	defs map[string]*ConditionDef
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{defs: make(map[string]*ConditionDef)}
}

// DefaultRegistry returns a Registry holding the buffs the transformation
// engine interacts with.
func DefaultRegistry() *Registry {
	reg := NewRegistry()
	for _, d := range []*ConditionDef{
		{ID: StoneSkin, Name: "Stoneskin", DurationType: DurationTurns, MaxDuration: 100, ExpireMessage: "Your skin feels tender."},
		{ID: StoneMail, Name: "Stonemail", DurationType: DurationTurns, MaxDuration: 100, ExpireMessage: "Your scaly stone armour disappears."},
		{ID: IcyArmour, Name: "Icy Armour", DurationType: DurationTurns, MaxDuration: 50, ExpireMessage: "Your icy armour evaporates."},
		{ID: Regeneration, Name: "Regeneration", DurationType: DurationTurns, MaxDuration: 100, ExpireMessage: "Your skin stops crawling."},
		{ID: ResistPoison, Name: "Resist Poison", DurationType: DurationTurns, MaxDuration: 100, ExpireMessage: "You feel less resistant to poison."},
		{ID: DeathsDoor, Name: "Death's Door", DurationType: DurationTurns, MaxDuration: 0, ExpireMessage: "Your life is in your own hands again!"},
	} {
		reg.Register(d)
	}
	return reg
}

// Register adds def to the registry, overwriting any existing entry with the same ID.
// Precondition: def must not be nil and def.ID must not be empty.
func (r *Registry) Register(def *ConditionDef) {
	r.defs[def.ID] = def
}

// Get returns the ConditionDef for id, or (nil, false) if not found.
func (r *Registry) Get(id string) (*ConditionDef, bool) {
	d, ok := r.defs[id]
	return d, ok
}

// All returns a snapshot slice of all registered ConditionDefs ordered by ID.
func (r *Registry) All() []*ConditionDef {
	out := make([]*ConditionDef, 0, len(r.defs))
	for _, d := range r.defs {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// LoadDirectory reads every *.yaml file in dir, parses each as a ConditionDef,
// and returns a populated Registry.
// Precondition: dir must be a readable directory.
// Postcondition: Returns a non-nil Registry, or an error if any file fails to parse or validate.
func LoadDirectory(dir string) (*Registry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading condition dir %q: %w", dir, err)
	}
	reg := NewRegistry()
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		path := filepath.Join(dir, e.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %q: %w", path, err)
		}
		var def ConditionDef
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&def); err != nil {
			return nil, fmt.Errorf("parsing %q: %w", path, err)
		}
		if err := def.Validate(); err != nil {
			return nil, fmt.Errorf("validating %q: %w", path, err)
		}
		reg.Register(&def)
	}
	return reg, nil
}

package transform

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/morph/internal/game/character"
	"github.com/cory-johannsen/morph/internal/game/inventory"
)

//go:embed forms/*.yaml
var builtinForms embed.FS

// Size is a creature size category.
type Size string

const (
	// SizeCharacter means the player's own species size applies.
	SizeCharacter Size = ""
	SizeTiny      Size = "tiny"
	SizeLittle    Size = "little"
	SizeSmall     Size = "small"
	SizeMedium    Size = "medium"
	SizeLarge     Size = "large"
	SizeBig       Size = "big"
	SizeGiant     Size = "giant"
	SizeHuge      Size = "huge"
)

var validSizes = map[Size]bool{
	SizeCharacter: true, SizeTiny: true, SizeLittle: true, SizeSmall: true,
	SizeMedium: true, SizeLarge: true, SizeBig: true, SizeGiant: true, SizeHuge: true,
}

// DurationRoll is base + rolls × random2(power), clamped to Cap.
type DurationRoll struct {
	Base  int `yaml:"base"`
	Rolls int `yaml:"rolls"`
	Cap   int `yaml:"cap"`
}

// StatDelta is the stat change applied on entry and reverted on exit.
type StatDelta struct {
	Str int `yaml:"str"`
	Int int `yaml:"int"`
	Dex int `yaml:"dex"`
}

// FormDef is the data half of a form: everything about it that is not a hook.
type FormDef struct {
	Form        character.Form `yaml:"form"`
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	// Removes is the equipment shed on entry.
	Removes inventory.SlotSet `yaml:"removes"`
	// SoftHelmetOK exempts a worn helmet from Removes unless it is hard.
	SoftHelmetOK bool         `yaml:"soft_helmet_ok"`
	Duration     DurationRoll `yaml:"duration"`
	Stats        StatDelta    `yaml:"stats"`
	// HPScale multiplies max HP in tenths while the form is active; 0 means 10.
	HPScale      int              `yaml:"hp_scale"`
	Glyph        string           `yaml:"glyph"`
	Colour       character.Colour `yaml:"colour"`
	EnterMessage string           `yaml:"enter_message"`
	ExitMessage  string           `yaml:"exit_message"`
	// Wearable lists the slots usable while the form is active.
	Wearable          inventory.SlotSet `yaml:"wearable"`
	Size              Size              `yaml:"size"`
	ButcherBarehanded bool              `yaml:"butcher_barehanded"`
	ChangesPhysiology bool              `yaml:"changes_physiology"`
	// KeepsScales forms keep the armour value of natural scales.
	KeepsScales bool `yaml:"keeps_scales"`
	Flight      bool `yaml:"flight"`
}

// Scale returns HPScale with 0 normalised to 10.
func (d *FormDef) Scale() int {
	if d.HPScale <= 0 {
		return 10
	}
	return d.HPScale
}

// GlyphRune returns the display character.
func (d *FormDef) GlyphRune() rune {
	r, _ := utf8.DecodeRuneInString(d.Glyph)
	return r
}

// Validate checks that the FormDef satisfies its invariants.
//
// Postcondition: returns nil iff all fields are valid.
func (d *FormDef) Validate() error {
	var errs []error
	if !d.Form.Valid() || d.Form == character.FormNone {
		errs = append(errs, fmt.Errorf("form must be a transformation, got %s", d.Form))
	}
	if d.Name == "" {
		errs = append(errs, errors.New("name must not be empty"))
	}
	if utf8.RuneCountInString(d.Glyph) != 1 {
		errs = append(errs, fmt.Errorf("glyph must be a single character, got %q", d.Glyph))
	}
	if d.Duration.Base < 0 || d.Duration.Rolls < 0 {
		errs = append(errs, errors.New("duration base and rolls must be >= 0"))
	}
	if d.Duration.Cap < d.Duration.Base || d.Duration.Cap <= 0 {
		errs = append(errs, fmt.Errorf("duration cap %d must be positive and >= base %d", d.Duration.Cap, d.Duration.Base))
	}
	if d.HPScale < 0 {
		errs = append(errs, errors.New("hp_scale must be >= 0"))
	}
	if d.EnterMessage == "" || d.ExitMessage == "" {
		errs = append(errs, errors.New("enter_message and exit_message must not be empty"))
	}
	if !validSizes[d.Size] {
		errs = append(errs, fmt.Errorf("unknown size %q", d.Size))
	}
	if len(errs) > 0 {
		return fmt.Errorf("form %s: %w", d.Form, errors.Join(errs...))
	}
	return nil
}

// Table holds one FormDef per transformation.
type Table struct {
	defs map[character.Form]*FormDef
}

// Get returns the definition of form.
func (t *Table) Get(form character.Form) (*FormDef, bool) {
	d, ok := t.defs[form]
	return d, ok
}

// All returns every definition in form order.
func (t *Table) All() []*FormDef {
	out := make([]*FormDef, 0, len(t.defs))
	for _, d := range t.defs {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Form < out[j].Form })
	return out
}

// DefaultTable returns the built-in form table.
//
// Postcondition: every transformation has a definition.
func DefaultTable() *Table {
	t, err := loadTableFS(builtinForms, "forms")
	if err != nil {
		panic(fmt.Sprintf("transform: built-in form table is invalid: %v", err))
	}
	return t
}

// LoadTable reads every *.yaml file in dir as one FormDef.
//
// Precondition: dir must be a readable directory.
// Postcondition: on success every transformation has exactly one definition.
func LoadTable(dir string) (*Table, error) {
	return loadTableFS(os.DirFS(dir), ".")
}

func loadTableFS(fsys fs.FS, dir string) (*Table, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("reading form directory %q: %w", dir, err)
	}
	t := &Table{defs: make(map[character.Form]*FormDef)}
	for _, e := range entries {
		if e.IsDir() || !(strings.HasSuffix(e.Name(), ".yaml") || strings.HasSuffix(e.Name(), ".yml")) {
			continue
		}
		data, err := fs.ReadFile(fsys, path.Join(dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", e.Name(), err)
		}
		def, err := parseFormDef(data)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", e.Name(), err)
		}
		if _, dup := t.defs[def.Form]; dup {
			return nil, fmt.Errorf("%s: duplicate definition of form %s", e.Name(), def.Form)
		}
		t.defs[def.Form] = def
	}
	var missing []string
	for _, f := range character.AllForms() {
		if _, ok := t.defs[f]; !ok {
			missing = append(missing, f.String())
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("form table is missing: %s", strings.Join(missing, ", "))
	}
	return t, nil
}

func parseFormDef(data []byte) (*FormDef, error) {
	var def FormDef
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&def); err != nil {
		return nil, err
	}
	if err := def.Validate(); err != nil {
		return nil, err
	}
	return &def, nil
}

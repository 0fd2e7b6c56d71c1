package character

import (
	"fmt"
	"sort"
	"strings"
)

// Species identifies a playable species.
type Species string

const (
	Human         Species = "human"
	Kenku         Species = "kenku"
	Naga          Species = "naga"
	Centaur       Species = "centaur"
	Merfolk       Species = "merfolk"
	Vampire       Species = "vampire"
	Gnome         Species = "gnome"
	MountainDwarf Species = "mountain_dwarf"
	Troll         Species = "troll"
	Ghoul         Species = "ghoul"
	Mummy         Species = "mummy"
)

// Genus groups related species.
type Genus string

const (
	GenusHuman   Genus = "human"
	GenusDwarven Genus = "dwarven"
	GenusAvian   Genus = "avian"
	GenusOther   Genus = "other"
)

// SpeciesDef holds the permanent physiology of a species.
type SpeciesDef struct {
	ID    Species
	Name  string
	Genus Genus
	// NoHelmet species can never wear a helmet.
	NoHelmet bool
	// NoFeet species can never wear boots.
	NoFeet bool
	// LosesBoots species have boots forced off whenever a form ends.
	LosesBoots bool
	// Aquatic species swim in deep water and lose their feet while swimming.
	Aquatic bool
	Undead  UndeadState
	// UndeadForm is the one form an undead member of the species may still take.
	UndeadForm Form
	Claws      int
	BaseHP     int
	Stats      Stats
}

var speciesTable = map[Species]*SpeciesDef{
	Human:         {ID: Human, Name: "Human", Genus: GenusHuman, BaseHP: 20, Stats: Stats{Str: 8, Int: 8, Dex: 8}},
	Kenku:         {ID: Kenku, Name: "Kenku", Genus: GenusAvian, NoHelmet: true, BaseHP: 17, Stats: Stats{Str: 6, Int: 9, Dex: 9}},
	Naga:          {ID: Naga, Name: "Naga", Genus: GenusOther, NoFeet: true, LosesBoots: true, BaseHP: 22, Stats: Stats{Str: 8, Int: 8, Dex: 6}},
	Centaur:       {ID: Centaur, Name: "Centaur", Genus: GenusOther, NoFeet: true, LosesBoots: true, BaseHP: 23, Stats: Stats{Str: 9, Int: 6, Dex: 8}},
	Merfolk:       {ID: Merfolk, Name: "Merfolk", Genus: GenusOther, Aquatic: true, BaseHP: 20, Stats: Stats{Str: 7, Int: 7, Dex: 10}},
	Vampire:       {ID: Vampire, Name: "Vampire", Genus: GenusHuman, Undead: UndeadPermanent, UndeadForm: FormBat, BaseHP: 19, Stats: Stats{Str: 7, Int: 10, Dex: 8}},
	Gnome:         {ID: Gnome, Name: "Gnome", Genus: GenusOther, BaseHP: 16, Stats: Stats{Str: 6, Int: 10, Dex: 8}},
	MountainDwarf: {ID: MountainDwarf, Name: "Mountain Dwarf", Genus: GenusDwarven, BaseHP: 22, Stats: Stats{Str: 10, Int: 6, Dex: 6}},
	Troll:         {ID: Troll, Name: "Troll", Genus: GenusOther, Claws: 3, BaseHP: 28, Stats: Stats{Str: 13, Int: 3, Dex: 5}},
	Ghoul:         {ID: Ghoul, Name: "Ghoul", Genus: GenusOther, Undead: UndeadPermanent, Claws: 3, BaseHP: 22, Stats: Stats{Str: 10, Int: 4, Dex: 6}},
	Mummy:         {ID: Mummy, Name: "Mummy", Genus: GenusOther, Undead: UndeadPermanent, BaseHP: 20, Stats: Stats{Str: 9, Int: 6, Dex: 6}},
}

// LookupSpecies returns the definition for id.
func LookupSpecies(id Species) (*SpeciesDef, bool) {
	def, ok := speciesTable[id]
	return def, ok
}

// ParseSpecies converts a name such as "Mountain Dwarf" or "mountain_dwarf" to a Species.
func ParseSpecies(s string) (Species, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.NewReplacer("-", "_", " ", "_").Replace(norm)
	if _, ok := speciesTable[Species(norm)]; ok {
		return Species(norm), nil
	}
	return "", fmt.Errorf("unknown species %q", s)
}

// AllSpecies returns every species sorted by id.
func AllSpecies() []Species {
	out := make([]Species, 0, len(speciesTable))
	for id := range speciesTable {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

package character

import "fmt"

// Stat names one of the primary attributes.
type Stat int

const (
	StatStrength Stat = iota
	StatIntelligence
	StatDexterity
)

func (s Stat) String() string {
	switch s {
	case StatStrength:
		return "strength"
	case StatIntelligence:
		return "intelligence"
	case StatDexterity:
		return "dexterity"
	default:
		return fmt.Sprintf("stat(%d)", int(s))
	}
}

// Stats holds the three primary attributes.
type Stats struct {
	Str int
	Int int
	Dex int
}

// Get returns the value of stat.
func (s Stats) Get(stat Stat) int {
	switch stat {
	case StatStrength:
		return s.Str
	case StatIntelligence:
		return s.Int
	case StatDexterity:
		return s.Dex
	}
	return 0
}

func (s *Stats) add(stat Stat, delta int) {
	switch stat {
	case StatStrength:
		s.Str += delta
	case StatIntelligence:
		s.Int += delta
	case StatDexterity:
		s.Dex += delta
	}
}

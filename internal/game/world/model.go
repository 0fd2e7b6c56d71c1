// Package world provides the level the player stands on: terrain, floor
// items and trapping nets.
package world

import (
	"fmt"

	"github.com/cory-johannsen/morph/internal/game/character"
)

// Terrain is the kind of ground in one cell.
type Terrain int

const (
	Wall Terrain = iota
	Floor
	ShallowWater
	DeepWater
	Lava
)

var terrainGlyphs = map[rune]Terrain{
	'#': Wall,
	'.': Floor,
	'~': ShallowWater,
	'W': DeepWater,
	'L': Lava,
}

func (t Terrain) String() string {
	switch t {
	case Wall:
		return "wall"
	case Floor:
		return "floor"
	case ShallowWater:
		return "shallow water"
	case DeepWater:
		return "deep water"
	case Lava:
		return "lava"
	default:
		return fmt.Sprintf("terrain(%d)", int(t))
	}
}

// Glyph returns the map character for t.
func (t Terrain) Glyph() rune {
	for g, tt := range terrainGlyphs {
		if tt == t {
			return g
		}
	}
	return '?'
}

// Passable reports whether anything can occupy the cell.
func (t Terrain) Passable() bool {
	return t != Wall
}

// Safe reports whether a grounded, non-swimming creature can stand there.
func (t Terrain) Safe() bool {
	return t == Floor || t == ShallowWater
}

// Direction is a compass direction.
type Direction string

const (
	North     Direction = "north"
	South     Direction = "south"
	East      Direction = "east"
	West      Direction = "west"
	Northeast Direction = "northeast"
	Northwest Direction = "northwest"
	Southeast Direction = "southeast"
	Southwest Direction = "southwest"
)

var directionDeltas = map[Direction]character.Pos{
	North:     {X: 0, Y: -1},
	South:     {X: 0, Y: 1},
	East:      {X: 1, Y: 0},
	West:      {X: -1, Y: 0},
	Northeast: {X: 1, Y: -1},
	Northwest: {X: -1, Y: -1},
	Southeast: {X: 1, Y: 1},
	Southwest: {X: -1, Y: 1},
}

var directionAliases = map[string]Direction{
	"n": North, "s": South, "e": East, "w": West,
	"ne": Northeast, "nw": Northwest, "se": Southeast, "sw": Southwest,
}

// ParseDirection accepts a full direction name or its abbreviation.
func ParseDirection(s string) (Direction, error) {
	if d, ok := directionAliases[s]; ok {
		return d, nil
	}
	if _, ok := directionDeltas[Direction(s)]; ok {
		return Direction(s), nil
	}
	return "", fmt.Errorf("unknown direction %q", s)
}

// Step returns the position one cell from pos in direction d.
func (d Direction) Step(pos character.Pos) character.Pos {
	delta := directionDeltas[d]
	return character.Pos{X: pos.X + delta.X, Y: pos.Y + delta.Y}
}

package world

import (
	"fmt"
	"strings"

	"github.com/cory-johannsen/morph/internal/game/character"
	"github.com/cory-johannsen/morph/internal/game/inventory"
	"github.com/cory-johannsen/morph/internal/game/message"
)

// Level is a rectangular terrain grid plus whatever lies on its floor.
type Level struct {
	ID    string
	Name  string
	Start character.Pos

	cells  [][]Terrain
	floor  *inventory.FloorManager
	notify message.Messenger
}

// NewLevel builds a level from rows of terrain glyphs.
//
// Precondition: rows are non-empty, of equal width, and start is a safe cell.
// Postcondition: Returns a Level with an empty floor or a non-nil error.
func NewLevel(id, name string, rows []string, start character.Pos) (*Level, error) {
	if id == "" {
		return nil, fmt.Errorf("level ID must not be empty")
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("level %q: must have at least one row", id)
	}
	width := len([]rune(rows[0]))
	cells := make([][]Terrain, len(rows))
	for y, row := range rows {
		runes := []rune(row)
		if len(runes) != width {
			return nil, fmt.Errorf("level %q: row %d has width %d, want %d", id, y, len(runes), width)
		}
		cells[y] = make([]Terrain, width)
		for x, r := range runes {
			t, ok := terrainGlyphs[r]
			if !ok {
				return nil, fmt.Errorf("level %q: unknown terrain %q at %d,%d", id, r, x, y)
			}
			cells[y][x] = t
		}
	}
	l := &Level{
		ID:    id,
		Name:  name,
		Start: start,
		cells: cells,
		floor: inventory.NewFloorManager(),
	}
	if !l.InBounds(start) || !l.At(start).Safe() {
		return nil, fmt.Errorf("level %q: start %d,%d is not a safe cell", id, start.X, start.Y)
	}
	return l, nil
}

// SetMessenger routes terrain notifications (falling into water, nets).
func (l *Level) SetMessenger(m message.Messenger) {
	l.notify = m
}

func (l *Level) emit(text string, ch message.Channel) {
	if l.notify != nil {
		l.notify.Emit(text, ch)
	}
}

// Width returns the number of columns.
func (l *Level) Width() int {
	return len(l.cells[0])
}

// Height returns the number of rows.
func (l *Level) Height() int {
	return len(l.cells)
}

// InBounds reports whether pos lies on the grid.
func (l *Level) InBounds(pos character.Pos) bool {
	return pos.Y >= 0 && pos.Y < len(l.cells) && pos.X >= 0 && pos.X < len(l.cells[0])
}

// At returns the terrain at pos; cells off the grid are walls.
func (l *Level) At(pos character.Pos) Terrain {
	if !l.InBounds(pos) {
		return Wall
	}
	return l.cells[pos.Y][pos.X]
}

// Floor exposes the level's floor storage.
func (l *Level) Floor() *inventory.FloorManager {
	return l.floor
}

// Place puts p at the level's start position.
func (l *Level) Place(p *character.Player) {
	p.Pos = l.Start
	l.Revalidate(p)
}

// Move steps p one cell in d, then re-checks the new cell.
func (l *Level) Move(p *character.Player, d Direction) error {
	if p.Held {
		return fmt.Errorf("you are held in a net")
	}
	dest := d.Step(p.Pos)
	if !l.At(dest).Passable() {
		return fmt.Errorf("there is a wall in the way")
	}
	p.Pos = dest
	l.Revalidate(p)
	return nil
}

// Render draws the grid with the player's glyph at its position.
func (l *Level) Render(p *character.Player) string {
	var b strings.Builder
	for y, row := range l.cells {
		for x, t := range row {
			if p != nil && p.Pos.X == x && p.Pos.Y == y {
				b.WriteRune(p.Glyph)
				continue
			}
			b.WriteRune(t.Glyph())
		}
		b.WriteByte('\n')
	}
	return b.String()
}

package world

import (
	"github.com/cory-johannsen/morph/internal/game/character"
	"github.com/cory-johannsen/morph/internal/game/message"
)

// Revalidate re-derives the player's locomotion after a change of form or
// position. A flying player is never swimming. A grounded player in deep
// water swims if its species is aquatic and is otherwise moved to the nearest
// safe cell, as is a grounded player on lava.
func (l *Level) Revalidate(p *character.Player) {
	t := l.At(p.Pos)
	if p.Airborne() {
		p.Swimming = false
		return
	}
	switch t {
	case DeepWater:
		if p.Species.Aquatic {
			p.Swimming = true
			return
		}
		l.emit("You fall into the water and scramble out!", message.Warning)
		l.rescue(p)
	case Lava:
		l.emit("You fall into the lava and scramble out!", message.Warning)
		l.rescue(p)
	case ShallowWater:
		p.Swimming = p.Species.Aquatic
	default:
		p.Swimming = false
	}
}

// rescue moves p to the closest safe cell, scanning rings outward in row order.
func (l *Level) rescue(p *character.Player) {
	maxRadius := max(l.Width(), l.Height())
	for r := 1; r <= maxRadius; r++ {
		for dy := -r; dy <= r; dy++ {
			for dx := -r; dx <= r; dx++ {
				if max(abs(dx), abs(dy)) != r {
					continue
				}
				pos := character.Pos{X: p.Pos.X + dx, Y: p.Pos.Y + dy}
				if l.At(pos).Safe() {
					p.Pos = pos
					p.Swimming = false
					return
				}
			}
		}
	}
	p.Pos = l.Start
	p.Swimming = false
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

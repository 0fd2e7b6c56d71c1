package command

import (
	"fmt"
	"strings"

	"github.com/cory-johannsen/morph/internal/game/character"
	"github.com/cory-johannsen/morph/internal/game/inventory"
	"github.com/cory-johannsen/morph/internal/game/session"
)

// HandleStatus describes the player.
func HandleStatus(s *session.Session) string {
	p := s.Player
	var b strings.Builder
	fmt.Fprintf(&b, "%s the %s  (turn %d)\n", p.Name, p.Species.Name, s.Clock.Turn())
	form := "none"
	if p.Form.Active() {
		form = fmt.Sprintf("%s, %d turns left", p.Form.Current, p.Form.Duration)
	}
	fmt.Fprintf(&b, "Form: %s  Glyph: %c (%s)  Size: %s\n", form, p.Glyph, p.Colour, sizeName(s))
	fmt.Fprintf(&b, "HP: %d/%d  Str: %d  Int: %d  Dex: %d\n", p.HP, p.MaxHP, p.Stats.Str, p.Stats.Int, p.Stats.Dex)
	fmt.Fprintf(&b, "Position: %d,%d%s\n", p.Pos.X, p.Pos.Y, conditionFlags(p))
	fmt.Fprintf(&b, "Life: %s  Hunger: %s\n", p.Undead, p.Hunger)

	var worn []string
	for _, slot := range p.Equipment.Worn() {
		inst, _ := p.Worn(slot)
		worn = append(worn, fmt.Sprintf("%s: %s", strings.ToLower(slot.DisplayName()), inst.Name))
	}
	if len(worn) == 0 {
		worn = []string{"nothing"}
	}
	fmt.Fprintf(&b, "Wearing: %s\n", strings.Join(worn, ", "))

	var blocked []string
	for _, slot := range inventory.AllSlots() {
		if !s.Forms.CanEquip(p, slot, false) {
			blocked = append(blocked, slot.String())
		}
	}
	if len(blocked) > 0 {
		fmt.Fprintf(&b, "Cannot use: %s\n", strings.Join(blocked, ", "))
	}

	var buffs []string
	for _, ac := range p.Buffs.All() {
		if ac.DurationRemaining < 0 {
			buffs = append(buffs, ac.Def.Name)
			continue
		}
		buffs = append(buffs, fmt.Sprintf("%s (%d)", ac.Def.Name, ac.DurationRemaining))
	}
	if len(buffs) > 0 {
		fmt.Fprintf(&b, "Buffs: %s\n", strings.Join(buffs, ", "))
	}
	if cur, ok := p.Delays.Current(); ok {
		fmt.Fprintf(&b, "Busy: %s (%d)\n", cur.Kind, cur.Remaining)
	}
	return strings.TrimRight(b.String(), "\n")
}

func sizeName(s *session.Session) string {
	if size := s.Forms.Size(s.Player); size != "" {
		return string(size)
	}
	return "normal"
}

func conditionFlags(p *character.Player) string {
	var flags []string
	if p.Airborne() {
		flags = append(flags, "flying")
	}
	if p.Swimming {
		flags = append(flags, "swimming")
	}
	if p.Held {
		flags = append(flags, "held")
	}
	if len(flags) == 0 {
		return ""
	}
	return "  [" + strings.Join(flags, ", ") + "]"
}

package transform

import (
	"github.com/cory-johannsen/morph/internal/game/character"
	"github.com/cory-johannsen/morph/internal/game/inventory"
)

// CanEquip reports whether p may wear something in slot. Species and mutation
// restrictions always apply; the active form's restrictions apply unless
// ignoreTemporary is set.
func (c *Controller) CanEquip(p *character.Player, slot inventory.Slot, ignoreTemporary bool) bool {
	switch slot {
	case inventory.SlotHelmet:
		if p.Species.NoHelmet || p.Mutations.Horns > 0 {
			return false
		}
	case inventory.SlotBoots:
		if !p.HasFeet() {
			return false
		}
	case inventory.SlotGloves:
		if p.ClawLevel() >= 3 {
			return false
		}
	}
	if ignoreTemporary || p.Form.Current == character.FormNone {
		return true
	}
	def, ok := c.table.Get(p.Form.Current)
	if !ok {
		return false
	}
	return def.Wearable.Has(slot)
}

// Size returns the size of p's active form, or SizeCharacter when the form
// keeps the player's own size.
func (c *Controller) Size(p *character.Player) Size {
	if def, ok := c.table.Get(p.Form.Current); ok {
		return def.Size
	}
	return SizeCharacter
}

// ChangedPhysiology reports whether the active form overrides species and
// mutation intrinsics. With physScales set it asks only about the armour of
// natural scales, which some forms keep.
func (c *Controller) ChangedPhysiology(p *character.Player, physScales bool) bool {
	def, ok := c.table.Get(p.Form.Current)
	if !ok || !def.ChangesPhysiology {
		return false
	}
	return !physScales || !def.KeepsScales
}

// CanButcherBarehanded reports whether form can butcher corpses without a blade.
func (c *Controller) CanButcherBarehanded(form character.Form) bool {
	def, ok := c.table.Get(form)
	return ok && def.ButcherBarehanded
}

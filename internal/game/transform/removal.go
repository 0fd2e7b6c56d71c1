package transform

import (
	"go.uber.org/zap"

	"github.com/cory-johannsen/morph/internal/game/character"
	"github.com/cory-johannsen/morph/internal/game/inventory"
)

const (
	emptyHandedMessage = "You are now empty-handed."
	cursedMessage      = "Your cursed equipment won't allow you to complete the transformation."
)

// RemoveEquipment takes off everything worn in slots, lowest slot first.
// A wielded weapon is unwielded with its own message; every other item
// "falls away". Empty slots are skipped. Curses are not checked here: call
// HasCursedBlocker first.
//
// Postcondition: no slot in slots is occupied. Always returns true.
func (c *Controller) RemoveEquipment(p *character.Player, slots inventory.SlotSet) bool {
	removed := false
	if slots.Has(inventory.SlotWeapon) && p.Equipment.Occupied(inventory.SlotWeapon) {
		p.Equipment.Clear(inventory.SlotWeapon)
		p.Redraw.Wield = true
		removed = true
		c.say(emptyHandedMessage)
	}
	for _, slot := range slots.Sorted() {
		if slot == inventory.SlotWeapon || !p.Equipment.Occupied(slot) {
			continue
		}
		inst, ok := p.Worn(slot)
		if ok {
			c.say(inst.YourName() + " falls away.")
		}
		p.Equipment.Clear(slot)
		removed = true
		c.logger.Debug("equipment removed",
			zap.String("player", p.Name),
			zap.Stringer("slot", slot),
			zap.String("item", inst.ItemDefID),
		)
	}
	if removed {
		p.Redraw.ArmourClass = true
		p.Redraw.Evasion = true
	}
	return true
}

// RemoveOne is RemoveEquipment for a single slot.
func (c *Controller) RemoveOne(p *character.Player, slot inventory.Slot) bool {
	return c.RemoveEquipment(p, inventory.NewSlotSet(slot))
}

// HasCursedBlocker reports whether a cursed item occupies any of slots,
// emitting one blocking message for the first found in slot order.
func (c *Controller) HasCursedBlocker(p *character.Player, slots inventory.SlotSet) bool {
	for _, slot := range slots.Sorted() {
		inst, ok := p.Worn(slot)
		if !ok || !inst.Cursed {
			continue
		}
		c.warn(cursedMessage)
		return true
	}
	return false
}

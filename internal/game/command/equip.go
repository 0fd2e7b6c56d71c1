package command

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/cory-johannsen/morph/internal/game/character"
	"github.com/cory-johannsen/morph/internal/game/inventory"
	"github.com/cory-johannsen/morph/internal/game/message"
	"github.com/cory-johannsen/morph/internal/game/session"
)

const curseMessage = "Oops, that feels deathly cold."

// findInPack returns the first pack item whose definition id or name matches
// query, preferring items that are not worn.
func findInPack(s *session.Session, query string) (inventory.ItemInstance, bool) {
	query = strings.ToLower(strings.TrimSpace(query))
	var worn inventory.ItemInstance
	found := false
	for _, inst := range s.Player.Pack.Items() {
		if inst.ItemDefID != query && strings.ToLower(inst.Name) != query {
			continue
		}
		if _, isWorn := s.Player.Equipment.SlotOf(inst.InstanceID); !isWorn {
			return inst, true
		}
		if !found {
			worn, found = inst, true
		}
	}
	return worn, found
}

// HandleWear processes "wear <item>": armour and jewellery only.
//
// Precondition: s is non-nil.
// Postcondition: On success the item occupies its slot, replacing whatever
// was there; rings go on a free hand first. On failure, equipment is unchanged.
func HandleWear(s *session.Session, arg string) string {
	if strings.TrimSpace(arg) == "" {
		return "Usage: wear <item>"
	}
	inst, ok := findInPack(s, arg)
	if !ok {
		return fmt.Sprintf("You don't have %q.", arg)
	}
	slot, ok := inst.EquipSlot()
	if !ok {
		return fmt.Sprintf("You can't wear %s.", inst.Name)
	}
	if slot == inventory.SlotWeapon {
		return fmt.Sprintf("%s is a weapon; wield it instead.", inst.YourName())
	}
	if isRingSlot(slot) {
		slot = ringSlot(s.Player, slot)
	}
	return equip(s, inst, slot)
}

func isRingSlot(slot inventory.Slot) bool {
	return slot == inventory.SlotLeftRing || slot == inventory.SlotRightRing
}

// ringSlot picks the hand for a ring. The item's own hand wins when free,
// then the other hand; with both hands full, the first ring that can come
// off is replaced.
func ringSlot(p *character.Player, preferred inventory.Slot) inventory.Slot {
	other := inventory.SlotRightRing
	if preferred == inventory.SlotRightRing {
		other = inventory.SlotLeftRing
	}
	hands := []inventory.Slot{preferred, other}
	for _, hand := range hands {
		if !p.Equipment.Occupied(hand) {
			return hand
		}
	}
	for _, hand := range hands {
		if worn, ok := p.Worn(hand); ok && !worn.Cursed {
			return hand
		}
	}
	return preferred
}

// HandleWield processes "wield <item>".
func HandleWield(s *session.Session, arg string) string {
	if strings.TrimSpace(arg) == "" {
		return "Usage: wield <item>"
	}
	inst, ok := findInPack(s, arg)
	if !ok {
		return fmt.Sprintf("You don't have %q.", arg)
	}
	if slot, ok := inst.EquipSlot(); !ok || slot != inventory.SlotWeapon {
		return fmt.Sprintf("%s is not a weapon.", inst.YourName())
	}
	return equip(s, inst, inventory.SlotWeapon)
}

func equip(s *session.Session, inst inventory.ItemInstance, slot inventory.Slot) string {
	p := s.Player
	if current, worn := p.Equipment.SlotOf(inst.InstanceID); worn {
		return fmt.Sprintf("You are already using %s (%s).", inst.Name, current.DisplayName())
	}
	if !s.Forms.CanEquip(p, slot, true) {
		return fmt.Sprintf("You can't use anything in the %s slot.", strings.ToLower(slot.DisplayName()))
	}
	if !s.Forms.CanEquip(p, slot, false) {
		return "You can't use that in your present form."
	}
	if prev, worn := p.Worn(slot); worn {
		if prev.Cursed {
			return fmt.Sprintf("%s is stuck to your body!", prev.YourName())
		}
		p.Equipment.Clear(slot)
	}
	p.Equipment.Set(slot, inst.InstanceID)
	p.Redraw.ArmourClass = true
	p.Redraw.Evasion = true
	if slot == inventory.SlotWeapon {
		p.Redraw.Wield = true
	}
	if inst.Cursed {
		s.Messages.Emit(curseMessage, message.Warning)
	}
	s.Logger().Debug("item equipped", zap.String("item", inst.ItemDefID), zap.Stringer("slot", slot))
	if slot == inventory.SlotWeapon {
		return fmt.Sprintf("You are now wielding %s.", inst.Name)
	}
	return fmt.Sprintf("You are now wearing %s.", inst.Name)
}

// HandleRemove processes "remove <slot>".
func HandleRemove(s *session.Session, arg string) string {
	if strings.TrimSpace(arg) == "" {
		return "Usage: remove <slot>"
	}
	slot, err := inventory.ParseSlot(arg)
	if err != nil {
		names := make([]string, 0, len(inventory.AllSlots()))
		for _, sl := range inventory.AllSlots() {
			names = append(names, sl.String())
		}
		return fmt.Sprintf("Unknown slot %q. Valid: %s.", arg, strings.Join(names, ", "))
	}
	inst, worn := s.Player.Worn(slot)
	if !worn {
		return "You aren't wearing anything there."
	}
	if inst.Cursed {
		return fmt.Sprintf("%s is stuck to your body!", inst.YourName())
	}
	s.Player.Equipment.Clear(slot)
	s.Player.Redraw.ArmourClass = true
	s.Player.Redraw.Evasion = true
	if slot == inventory.SlotWeapon {
		s.Player.Redraw.Wield = true
		return "You are now empty-handed."
	}
	return fmt.Sprintf("You take off %s.", inst.Name)
}

// HandleInventory lists the pack, marking worn and cursed items.
func HandleInventory(s *session.Session) string {
	items := s.Player.Pack.Items()
	if len(items) == 0 {
		return "You aren't carrying anything."
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Pack (%d/%d):", len(items), s.Player.Pack.MaxSlots)
	for _, inst := range items {
		fmt.Fprintf(&b, "\n  %-20s %s", inst.ItemDefID, inst.Name)
		if slot, worn := s.Player.Equipment.SlotOf(inst.InstanceID); worn {
			fmt.Fprintf(&b, " (%s)", strings.ToLower(slot.DisplayName()))
		}
		if inst.Cursed {
			b.WriteString(" {cursed}")
		}
	}
	return b.String()
}

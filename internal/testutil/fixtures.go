// Package testutil provides shared fixtures for game package tests.
package testutil

import (
	"strings"

	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/morph/internal/game/character"
	"github.com/cory-johannsen/morph/internal/game/condition"
	"github.com/cory-johannsen/morph/internal/game/inventory"
)

// T is the subset of testing.TB the fixtures need; *testing.T and *rapid.T both satisfy it.
type T interface {
	require.TestingT
	Helper()
}

// FixedSource is a dice.Source that always returns V clamped into [0, n).
type FixedSource struct {
	V int
}

// Intn implements dice.Source.
func (f FixedSource) Intn(n int) int {
	if f.V >= n {
		return n - 1
	}
	if f.V < 0 {
		return 0
	}
	return f.V
}

// SequenceSource is a dice.Source that replays Values in order, clamping each
// into [0, n), then repeats the last value.
type SequenceSource struct {
	Values []int
	next   int
}

// Intn implements dice.Source.
func (s *SequenceSource) Intn(n int) int {
	if len(s.Values) == 0 {
		return 0
	}
	i := min(s.next, len(s.Values)-1)
	s.next++
	return FixedSource{V: s.Values[i]}.Intn(n)
}

// ItemRegistry returns a registry holding one item per equipment slot plus a
// cursed variant of each and a net. Ids are "<slot>" and "cursed_<slot>";
// the helmets are "steel_helmet" (hard) and "wizard_hat" (soft).
func ItemRegistry(t T) *inventory.Registry {
	t.Helper()
	reg := inventory.NewRegistry()
	add := func(def *inventory.ItemDef) {
		require.NoError(t, def.Validate())
		require.NoError(t, reg.RegisterItem(def))
	}
	for _, slot := range inventory.AllSlots() {
		kind := inventory.KindArmour
		switch {
		case slot == inventory.SlotWeapon:
			kind = inventory.KindWeapon
		case slot >= inventory.SlotLeftRing:
			kind = inventory.KindJewellery
		}
		hard := slot == inventory.SlotHelmet
		name := strings.ToLower(slot.DisplayName())
		add(&inventory.ItemDef{ID: slot.String(), Name: name, Kind: kind, Slot: slot.String(), HardHelmet: hard})
		add(&inventory.ItemDef{ID: "cursed_" + slot.String(), Name: "cursed " + name, Kind: kind, Slot: slot.String(), Cursed: true, HardHelmet: hard})
	}
	add(&inventory.ItemDef{ID: "steel_helmet", Name: "steel helmet", Kind: inventory.KindArmour, Slot: "helmet", HardHelmet: true})
	add(&inventory.ItemDef{ID: "wizard_hat", Name: "wizard hat", Kind: inventory.KindArmour, Slot: "helmet"})
	add(&inventory.ItemDef{ID: "bread", Name: "bread ration", Kind: inventory.KindMisc})
	add(&inventory.ItemDef{ID: "net", Name: "throwing net", Kind: inventory.KindNet})
	return reg
}

// NewPlayer builds a player of species with a fixed stat block and 20 base hit points.
func NewPlayer(t T, species character.Species, opts ...character.Option) *character.Player {
	t.Helper()
	base := []character.Option{
		character.WithStats(character.Stats{Str: 10, Int: 10, Dex: 10}),
		character.WithBaseHP(20),
	}
	p, err := character.NewPlayer("Tester", species, append(base, opts...)...)
	require.NoError(t, err)
	return p
}

// Equip adds itemID to p's pack and wears it in the item's slot.
func Equip(t T, p *character.Player, reg *inventory.Registry, itemID string) inventory.ItemInstance {
	t.Helper()
	inst, err := p.Pack.Add(itemID, 1, reg)
	require.NoError(t, err)
	slot, ok := inst.EquipSlot()
	require.True(t, ok, "%s is not wearable", itemID)
	p.Equipment.Set(slot, inst.InstanceID)
	return inst
}

// EquipAll wears one ordinary item in every slot.
func EquipAll(t T, p *character.Player, reg *inventory.Registry) {
	t.Helper()
	for _, slot := range inventory.AllSlots() {
		Equip(t, p, reg, slot.String())
	}
}

// ApplyBuff activates the named built-in buff for turns.
func ApplyBuff(t T, p *character.Player, id string, turns int) {
	t.Helper()
	def, ok := condition.DefaultRegistry().Get(id)
	require.True(t, ok, "unknown buff %s", id)
	require.NoError(t, p.Buffs.Apply(def, turns))
}

package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/morph/internal/game/inventory"
)

func makeRegistry(t *testing.T) *inventory.Registry {
	t.Helper()
	reg := inventory.NewRegistry()
	for _, d := range []*inventory.ItemDef{
		{ID: "rock", Name: "stone", Kind: inventory.KindMisc, Weight: 1},
		{ID: "cursed_ring", Name: "ring of teleportation", Kind: inventory.KindJewellery, Slot: "left_ring", Cursed: true},
		{ID: "helm", Name: "helmet", Kind: inventory.KindArmour, Slot: "helmet", HardHelmet: true},
	} {
		require.NoError(t, reg.RegisterItem(d))
	}
	return reg
}

func TestBackpack_Add_CopiesDefProperties(t *testing.T) {
	reg := makeRegistry(t)
	b := inventory.NewBackpack(10)
	inst, err := b.Add("cursed_ring", 1, reg)
	require.NoError(t, err)
	assert.NotEmpty(t, inst.InstanceID)
	assert.True(t, inst.Cursed)
	slot, ok := inst.EquipSlot()
	assert.True(t, ok)
	assert.Equal(t, inventory.SlotLeftRing, slot)
	assert.Equal(t, "Your ring of teleportation", inst.YourName())
}

func TestBackpack_Add_UniqueIDs(t *testing.T) {
	reg := makeRegistry(t)
	b := inventory.NewBackpack(10)
	a, err := b.Add("rock", 1, reg)
	require.NoError(t, err)
	c, err := b.Add("rock", 1, reg)
	require.NoError(t, err)
	assert.NotEqual(t, a.InstanceID, c.InstanceID)
	assert.Len(t, b.FindByItemDefID("rock"), 2)
}

func TestBackpack_Add_Errors(t *testing.T) {
	reg := makeRegistry(t)
	b := inventory.NewBackpack(1)
	_, err := b.Add("missing", 1, reg)
	assert.Error(t, err)
	_, err = b.Add("rock", 0, reg)
	assert.Error(t, err)
	_, err = b.Add("rock", 1, reg)
	require.NoError(t, err)
	_, err = b.Add("rock", 1, reg)
	assert.Error(t, err, "slot limit")
	assert.Equal(t, 1, b.UsedSlots())
}

func TestBackpack_RemoveGetSetCursed(t *testing.T) {
	reg := makeRegistry(t)
	b := inventory.NewBackpack(5)
	inst, err := b.Add("helm", 1, reg)
	require.NoError(t, err)

	assert.True(t, b.SetCursed(inst.InstanceID, true))
	got, ok := b.Get(inst.InstanceID)
	require.True(t, ok)
	assert.True(t, got.Cursed)

	removed, err := b.Remove(inst.InstanceID)
	require.NoError(t, err)
	assert.Equal(t, inst.InstanceID, removed.InstanceID)
	_, ok = b.Get(inst.InstanceID)
	assert.False(t, ok)
	_, err = b.Remove(inst.InstanceID)
	assert.Error(t, err)
	assert.False(t, b.SetCursed("nope", true))
}

func TestBackpack_TakeAll(t *testing.T) {
	reg := makeRegistry(t)
	b := inventory.NewBackpack(5)
	_, _ = b.Add("rock", 1, reg)
	_, _ = b.Add("helm", 1, reg)
	out := b.TakeAll()
	assert.Len(t, out, 2)
	assert.Equal(t, 0, b.UsedSlots())
	assert.Empty(t, b.Items())
}

func TestPropertyBackpack_NeverExceedsMaxSlots(t *testing.T) {
	reg := inventory.NewRegistry()
	require.NoError(t, reg.RegisterItem(&inventory.ItemDef{ID: "rock", Name: "stone", Kind: inventory.KindMisc}))
	rapid.Check(t, func(t *rapid.T) {
		maxSlots := rapid.IntRange(0, 10).Draw(t, "max_slots")
		adds := rapid.IntRange(0, 20).Draw(t, "adds")
		b := inventory.NewBackpack(maxSlots)
		for i := 0; i < adds; i++ {
			_, _ = b.Add("rock", 1, reg)
		}
		assert.LessOrEqual(t, b.UsedSlots(), maxSlots)
	})
}

package transform_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/morph/internal/game/character"
	"github.com/cory-johannsen/morph/internal/game/condition"
	"github.com/cory-johannsen/morph/internal/game/delay"
	"github.com/cory-johannsen/morph/internal/game/inventory"
	"github.com/cory-johannsen/morph/internal/game/transform"
	"github.com/cory-johannsen/morph/internal/testutil"
)

func TestEnter_SpiderThenExit(t *testing.T) {
	h := newHarness(t, character.Human, 3)
	before := h.p.Stats

	res := h.enter(t, character.FormSpider, 10)

	assert.Equal(t, transform.Result{Success: true}, res)
	assert.True(t, h.msgs.Contains("You turn into a venomous arachnid creature."))
	assert.Equal(t, before.Dex+5, h.p.Stats.Dex)
	assert.Equal(t, character.FormSpider, h.p.Form.Current)
	assert.Equal(t, 16, h.p.Form.Duration, "10 + 3 + 3")
	assert.Equal(t, 's', h.p.Glyph)
	assert.Equal(t, character.Brown, h.p.Colour)
	assert.True(t, h.p.Redraw.Evasion)
	assert.True(t, h.p.Redraw.ArmourClass)
	assert.True(t, h.p.Redraw.Wield)

	h.c.Exit(h.p)

	assert.Equal(t, before, h.p.Stats)
	assert.Equal(t, '@', h.p.Glyph)
	assert.Equal(t, character.LightGrey, h.p.Colour)
	assert.Equal(t, character.FormNone, h.p.Form.Current)
	assert.Equal(t, 0, h.p.Form.Duration)
	assert.True(t, h.msgs.Contains("Your transformation has ended."))
}

func TestEnter_DurationCappedPerForm(t *testing.T) {
	for _, f := range character.AllForms() {
		h := newHarness(t, character.Human, 1000)
		h.enter(t, f, 1000)
		def, _ := h.c.Table().Get(f)
		assert.Equal(t, def.Duration.Cap, h.p.Form.Duration, f.String())
	}
}

func TestEnter_ZeroPowerGivesBase(t *testing.T) {
	h := newHarness(t, character.Human, 5)
	h.enter(t, character.FormAir, 0)
	assert.Equal(t, 35, h.p.Form.Duration)
}

func TestEnter_BladeHandsRollsOnce(t *testing.T) {
	h := newHarness(t, character.Human, 4)
	h.enter(t, character.FormBladeHands, 10)
	assert.Equal(t, 14, h.p.Form.Duration)
}

func TestEnter_Errors(t *testing.T) {
	h := newHarness(t, character.Human, 0)

	_, err := h.c.Enter(nil, character.FormSpider, 1)
	assert.ErrorIs(t, err, transform.ErrNilPlayer)

	_, err = h.c.Enter(h.p, character.FormNone, 1)
	assert.ErrorIs(t, err, transform.ErrUnknownForm)

	_, err = h.c.Enter(h.p, character.Form(42), 1)
	assert.ErrorIs(t, err, transform.ErrUnknownForm)

	_, err = h.c.Enter(h.p, character.FormSpider, -1)
	assert.ErrorIs(t, err, transform.ErrNegativePower)

	assert.Equal(t, character.FormNone, h.p.Form.Current)
	assert.Empty(t, h.msgs.Texts())
}

func TestEnter_SubmergedMerfolk(t *testing.T) {
	h := newHarness(t, character.Merfolk, 0)
	h.p.Pos = character.Pos{X: 2, Y: 2}
	h.level.Revalidate(h.p)
	require.True(t, h.p.Swimming)

	res := h.enter(t, character.FormSpider, 10)
	assert.Equal(t, transform.RejectSubmerged, res.Rejection)
	assert.False(t, res.Success)
	assert.True(t, h.msgs.Contains("You cannot transform out of your normal form while in water."))
	assert.Equal(t, character.FormNone, h.p.Form.Current)

	h.msgs.Reset()
	res = h.enter(t, character.FormDragon, 10)
	assert.True(t, res.Success)
	assert.Equal(t, "You fly out of the water as you turn into a fearsome dragon!", h.msgs.Texts()[0])
	assert.False(t, h.p.Swimming)
	assert.True(t, h.p.Airborne())
}

func TestEnter_ExtendActiveForm(t *testing.T) {
	h := newHarness(t, character.Human, 7)
	h.equip(t, "cloak")
	h.enter(t, character.FormStatue, 10)
	require.Equal(t, 34, h.p.Form.Duration)
	stats, hp, worn := h.p.Stats, h.p.HP, wornSnapshot(h.p)
	h.msgs.Reset()

	res := h.enter(t, character.FormStatue, 10)

	assert.Equal(t, transform.Result{Success: true, Extended: true}, res)
	assert.Equal(t, 41, h.p.Form.Duration)
	assert.Equal(t, []string{"You extend your transformation's duration."}, h.msgs.Texts())
	assert.Equal(t, stats, h.p.Stats)
	assert.Equal(t, hp, h.p.HP)
	assert.Equal(t, worn, wornSnapshot(h.p))
}

func TestEnter_ExtendCapsAt100(t *testing.T) {
	h := newHarness(t, character.Human, 50)
	h.enter(t, character.FormSpider, 60)
	require.Equal(t, 60, h.p.Form.Duration)

	h.enter(t, character.FormSpider, 60)
	assert.Equal(t, 100, h.p.Form.Duration)

	h.msgs.Reset()
	res := h.enter(t, character.FormSpider, 60)
	assert.Equal(t, transform.RejectMaxDuration, res.Rejection)
	assert.Equal(t, []string{"You cannot extend your transformation any further!"}, h.msgs.Texts())
	assert.Equal(t, 100, h.p.Form.Duration)
}

func TestEnter_AirAbove100CannotExtend(t *testing.T) {
	h := newHarness(t, character.Human, 100)
	h.enter(t, character.FormAir, 100)
	require.Equal(t, 150, h.p.Form.Duration)

	res := h.enter(t, character.FormAir, 100)
	assert.Equal(t, transform.RejectMaxDuration, res.Rejection)
	assert.Equal(t, 150, h.p.Form.Duration)
}

func TestEnter_SwitchingExitsPreviousForm(t *testing.T) {
	h := newHarness(t, character.Human, 0)
	before := h.p.Stats
	h.enter(t, character.FormBat, 10)

	h.enter(t, character.FormDragon, 10)

	assert.Equal(t, character.FormDragon, h.p.Form.Current)
	assert.Equal(t, before.Dex, h.p.Stats.Dex)
	assert.Equal(t, before.Str+10, h.p.Stats.Str)
	texts := h.msgs.Texts()
	assert.Contains(t, texts, "Your transformation has ended.")
}

func TestEnter_UndeadRejected(t *testing.T) {
	for _, species := range []character.Species{character.Mummy, character.Ghoul} {
		h := newHarness(t, species, 0)
		h.equip(t, "weapon")
		before, worn := h.p.Stats, wornSnapshot(h.p)

		res := h.enter(t, character.FormBat, 10)

		assert.Equal(t, transform.RejectUndead, res.Rejection, species)
		assert.Equal(t, []string{"Your unliving flesh cannot be transformed in this way."}, h.msgs.Texts())
		assert.Equal(t, character.FormNone, h.p.Form.Current)
		assert.Equal(t, before, h.p.Stats)
		assert.Equal(t, worn, wornSnapshot(h.p))
	}
}

func TestEnter_VampireBat(t *testing.T) {
	h := newHarness(t, character.Vampire, 0)

	res := h.enter(t, character.FormBat, 10)
	require.True(t, res.Success)
	assert.Equal(t, "You turn into a vampire bat.", h.msgs.Texts()[0])
	assert.Equal(t, character.DarkGrey, h.p.Colour)

	h.c.Exit(h.p)
	assert.Equal(t, character.UndeadPermanent, h.p.Undead)

	res = h.enter(t, character.FormSpider, 10)
	assert.Equal(t, transform.RejectUndead, res.Rejection)
}

func TestEnter_LivingBat(t *testing.T) {
	h := newHarness(t, character.Human, 0)
	h.enter(t, character.FormBat, 10)
	assert.Equal(t, "You turn into a bat.", h.msgs.Texts()[0])
	assert.Equal(t, character.LightGrey, h.p.Colour)
	assert.Equal(t, 5, h.p.Stats.Str)
	assert.Equal(t, 15, h.p.Stats.Dex)
}

func TestEnter_CursedVeto(t *testing.T) {
	h := newHarness(t, character.Human, 0)
	h.equip(t, "cursed_weapon")
	h.equip(t, "cloak")
	before, worn, hp := h.p.Stats, wornSnapshot(h.p), h.p.HP

	res := h.enter(t, character.FormDragon, 10)

	assert.Equal(t, transform.RejectCursed, res.Rejection)
	assert.Equal(t, []string{"Your cursed equipment won't allow you to complete the transformation."}, h.msgs.Texts())
	assert.Equal(t, character.FormNone, h.p.Form.Current)
	assert.Equal(t, worn, wornSnapshot(h.p))
	assert.Equal(t, before, h.p.Stats)
	assert.Equal(t, hp, h.p.HP)
}

func TestEnter_CursedOutsideRemovalSetIsFine(t *testing.T) {
	h := newHarness(t, character.Human, 0)
	h.equip(t, "cursed_weapon")
	h.equip(t, "cursed_right_ring")

	res := h.enter(t, character.FormStatue, 10)
	assert.True(t, res.Success, "statues keep their weapon")
	assert.True(t, h.p.Equipment.Occupied(inventory.SlotWeapon))

	h.c.Exit(h.p)
	res = h.enter(t, character.FormLich, 10)
	assert.True(t, res.Success, "liches remove nothing")
}

func TestProperty_CursedVetoIsAllOrNothing(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		form := rapid.SampledFrom(character.AllForms()).Draw(rt, "form")
		h := newHarness(rt, character.Human, rapid.IntRange(0, 50).Draw(rt, "roll"))
		def, _ := h.c.Table().Get(form)
		if def.Removes.Len() == 0 {
			return
		}
		cursedSlot := rapid.SampledFrom(def.Removes.Sorted()).Draw(rt, "cursed")
		for _, s := range inventory.AllSlots() {
			if s == cursedSlot {
				h.equip(rt, "cursed_"+s.String())
			} else if rapid.Bool().Draw(rt, "wear_"+s.String()) {
				h.equip(rt, s.String())
			}
		}
		before, worn := h.p.Stats, wornSnapshot(h.p)

		res, err := h.c.Enter(h.p, form, rapid.IntRange(0, 100).Draw(rt, "power"))
		require.NoError(rt, err)

		assert.False(rt, res.Success)
		assert.Equal(rt, transform.RejectCursed, res.Rejection)
		assert.Equal(rt, character.FormNone, h.p.Form.Current)
		assert.Equal(rt, worn, wornSnapshot(h.p))
		assert.Equal(rt, before, h.p.Stats)
	})
}

func TestEnter_SoftHelmetStays(t *testing.T) {
	h := newHarness(t, character.Human, 0)
	h.equip(t, "wizard_hat")
	h.equip(t, "cloak")

	h.enter(t, character.FormSpider, 10)

	assert.True(t, h.p.Equipment.Occupied(inventory.SlotHelmet))
	assert.False(t, h.p.Equipment.Occupied(inventory.SlotCloak))
}

func TestEnter_HardHelmetFallsAway(t *testing.T) {
	h := newHarness(t, character.Human, 0)
	h.equip(t, "steel_helmet")

	h.enter(t, character.FormIceBeast, 10)

	assert.False(t, h.p.Equipment.Occupied(inventory.SlotHelmet))
	assert.True(t, h.msgs.Contains("Your steel helmet falls away."))
}

func TestEnter_CursedSoftHelmetDoesNotBlock(t *testing.T) {
	h := newHarness(t, character.Human, 0)
	inst, err := h.p.Pack.Add("wizard_hat", 1, h.reg)
	require.NoError(t, err)
	require.True(t, h.p.Pack.SetCursed(inst.InstanceID, true))
	h.p.Equipment.Set(inventory.SlotHelmet, inst.InstanceID)

	res := h.enter(t, character.FormBat, 10)
	assert.True(t, res.Success)
}

func TestEnter_MessageOrder(t *testing.T) {
	h := newHarness(t, character.Human, 0)
	h.equip(t, "weapon")
	h.equip(t, "body_armour")
	h.equip(t, "cloak")

	h.enter(t, character.FormDragon, 10)

	assert.Equal(t, []string{
		"You turn into a fearsome dragon!",
		"You are now empty-handed.",
		"Your cloak falls away.",
		"Your body armour falls away.",
	}, h.msgs.Texts())
}

func TestEnter_StoneskinAlwaysDropped(t *testing.T) {
	h := newHarness(t, character.Human, 0)
	testutil.ApplyBuff(t, h.p, condition.StoneSkin, 20)
	h.equip(t, "cursed_gloves")

	res := h.enter(t, character.FormSpider, 10)

	assert.Equal(t, transform.RejectCursed, res.Rejection)
	assert.False(t, h.p.Buffs.Has(condition.StoneSkin))
}

func TestEnter_IceBeastMergesWithIcyArmour(t *testing.T) {
	h := newHarness(t, character.Human, 0)
	testutil.ApplyBuff(t, h.p, condition.IcyArmour, 20)

	h.enter(t, character.FormIceBeast, 10)

	assert.Equal(t, []string{
		"You turn into a creature of crystalline ice.",
		"Your new body merges with your icy armour.",
	}, h.msgs.Texts())
	assert.Equal(t, 24, h.p.MaxHP)
	assert.Equal(t, 24, h.p.HP)
}

func TestEnter_StatueMergesWithStonemail(t *testing.T) {
	h := newHarness(t, character.Human, 0)
	testutil.ApplyBuff(t, h.p, condition.StoneMail, 20)

	h.enter(t, character.FormStatue, 10)

	assert.True(t, h.msgs.Contains("Your new body merges with your stone armour."))
	assert.Equal(t, 30, h.p.MaxHP)
	assert.Equal(t, 8, h.p.Stats.Dex)
	assert.Equal(t, 12, h.p.Stats.Str)
}

func TestEnter_DamagedDragonScalesCurrentHP(t *testing.T) {
	h := newHarness(t, character.Human, 0)
	require.Equal(t, 20, h.p.MaxHP)
	h.p.HP = 10

	h.enter(t, character.FormDragon, 10)

	assert.Equal(t, 32, h.p.MaxHP)
	assert.Equal(t, 16, h.p.HP, "10 * 16 / 10")
}

func TestProperty_EntryScalesDamagedHP(t *testing.T) {
	scaled := []character.Form{
		character.FormIceBeast,
		character.FormStatue,
		character.FormDragon,
		character.FormSerpentOfHell,
	}
	rapid.Check(t, func(rt *rapid.T) {
		form := rapid.SampledFrom(scaled).Draw(rt, "form")
		base := rapid.IntRange(1, 400).Draw(rt, "base_hp")
		hp0 := rapid.IntRange(1, base).Draw(rt, "hp")
		h := newHarness(rt, character.Human, 0, character.WithBaseHP(base))
		h.p.HP = hp0
		def, ok := transform.DefaultTable().Get(form)
		require.True(rt, ok)

		_, err := h.c.Enter(h.p, form, 10)
		require.NoError(rt, err)

		assert.Equal(rt, base*def.Scale()/10, h.p.MaxHP)
		assert.Equal(rt, hp0*def.Scale()/10, h.p.HP)
	})
}

func TestEnter_StatueFlavor(t *testing.T) {
	gnome := newHarness(t, character.Gnome, 0)
	gnome.enter(t, character.FormStatue, 10)
	assert.Equal(t, "Look, a garden gnome.  How cute!", gnome.msgs.Texts()[0])

	dwarf := newHarness(t, character.MountainDwarf, 0)
	dwarf.enter(t, character.FormStatue, 10)
	assert.Equal(t, "You inwardly fear your resemblance to a lawn ornament.", dwarf.msgs.Texts()[0])

	unlucky := newHarness(t, character.MountainDwarf, 5)
	unlucky.enter(t, character.FormStatue, 10)
	assert.Equal(t, "You turn into a living statue of rough stone.", unlucky.msgs.Texts()[0])
}

func TestEnter_DragonRipsNet(t *testing.T) {
	h := newHarness(t, character.Human, 0)
	net, err := h.p.Pack.Add("net", 1, h.reg)
	require.NoError(t, err)
	_, err = h.p.Pack.Remove(net.InstanceID)
	require.NoError(t, err)
	require.NoError(t, h.level.Entangle(h.p, net))

	h.enter(t, character.FormDragon, 10)

	assert.False(t, h.p.Held)
	assert.True(t, h.msgs.Contains("The net rips apart!"))
	_, trapped := h.level.NetAt(h.p.Pos)
	assert.False(t, trapped)
	assert.Empty(t, h.level.ItemsAt(h.p.Pos), "the net is destroyed")
}

func TestEnter_AirDriftsThroughNetAndDropsEverything(t *testing.T) {
	h := newHarness(t, character.Human, 0)
	testutil.EquipAll(t, h.p, h.reg)
	_, err := h.p.Pack.Add("bread", 1, h.reg)
	require.NoError(t, err)
	require.NoError(t, h.level.Entangle(h.p, inventory.ItemInstance{InstanceID: "thrown", Name: "throwing net", Kind: inventory.KindNet, Quantity: 1}))
	packed := h.p.Pack.UsedSlots()

	h.enter(t, character.FormAir, 10)

	texts := h.msgs.Texts()
	assert.Equal(t, "You feel diffuse...", texts[0])
	assert.Contains(t, texts, "You find yourself unable to carry your possessions!")
	assert.Equal(t, "You drift through the net!", texts[len(texts)-1])
	assert.Empty(t, h.p.Equipment.Worn())
	assert.Equal(t, 0, h.p.Pack.UsedSlots())
	assert.Len(t, h.level.ItemsAt(h.p.Pos), packed+1, "pack plus the released net")
	assert.False(t, h.p.Held)
	_, trapped := h.level.NetAt(h.p.Pos)
	assert.False(t, trapped)
}

func TestEnter_AirDropIsRepeated(t *testing.T) {
	h := newHarness(t, character.Human, 0)
	_, err := h.p.Pack.Add("bread", 1, h.reg)
	require.NoError(t, err)
	h.enter(t, character.FormAir, 10)
	h.c.Exit(h.p)

	for _, inst := range h.level.ItemsAt(h.p.Pos) {
		got, ok := h.level.Floor().Pickup(h.p.Pos.Key(), inst.InstanceID)
		require.True(t, ok)
		_, err := h.p.Pack.Insert(got)
		require.NoError(t, err)
	}
	require.Equal(t, 1, h.p.Pack.UsedSlots())

	h.enter(t, character.FormAir, 10)
	assert.Equal(t, 0, h.p.Pack.UsedSlots())
	assert.Len(t, h.level.ItemsAt(h.p.Pos), 1)
}

func TestEnter_AirWithEmptyPackIsQuiet(t *testing.T) {
	h := newHarness(t, character.Human, 0)
	h.enter(t, character.FormAir, 10)
	assert.False(t, h.msgs.Contains("unable to carry"))
}

func TestEnter_Lich(t *testing.T) {
	h := newHarness(t, character.Human, 0)
	testutil.ApplyBuff(t, h.p, condition.Regeneration, 30)
	testutil.ApplyBuff(t, h.p, condition.ResistPoison, 30)
	h.p.Hunger = character.Hungry
	testutil.EquipAll(t, h.p, h.reg)

	res := h.enter(t, character.FormLich, 10)

	require.True(t, res.Success)
	assert.Equal(t, []string{
		"Your body is suffused with negative energy!",
		"You stop regenerating.",
	}, h.msgs.Texts())
	assert.False(t, h.p.Buffs.Has(condition.Regeneration))
	assert.False(t, h.p.Buffs.Has(condition.ResistPoison))
	assert.Equal(t, character.UndeadTemporary, h.p.Undead)
	assert.Equal(t, character.Satiated, h.p.Hunger)
	assert.True(t, h.p.Redraw.Hunger)
	assert.Len(t, h.p.Equipment.Worn(), len(inventory.AllSlots()), "nothing removed")
	assert.Equal(t, 'L', h.p.Glyph)

	h.c.Exit(h.p)
	assert.Equal(t, character.Alive, h.p.Undead)
	assert.True(t, h.msgs.Contains("You feel yourself come back to life."))
}

func TestEnter_LichBlockedByDeathsDoor(t *testing.T) {
	h := newHarness(t, character.Human, 0)
	testutil.ApplyBuff(t, h.p, condition.DeathsDoor, 10)
	testutil.ApplyBuff(t, h.p, condition.Regeneration, 10)

	res := h.enter(t, character.FormLich, 10)

	assert.Equal(t, transform.RejectConflictingBuff, res.Rejection)
	assert.Equal(t, []string{"The transformation conflicts with an enchantment already in effect."}, h.msgs.Texts())
	assert.True(t, h.p.Buffs.Has(condition.Regeneration))
	assert.Equal(t, character.Alive, h.p.Undead)
}

func TestEnter_ButcheringSurvivesEntry(t *testing.T) {
	h := newHarness(t, character.Human, 0)
	h.p.Delays.Push(delay.Butcher, 4)
	h.enter(t, character.FormDragon, 10)
	assert.Equal(t, 1, h.p.Delays.Len())
}

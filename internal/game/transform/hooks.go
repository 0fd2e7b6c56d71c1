package transform

import (
	"go.uber.org/zap"

	"github.com/cory-johannsen/morph/internal/game/character"
	"github.com/cory-johannsen/morph/internal/game/condition"
	"github.com/cory-johannsen/morph/internal/game/message"
)

// Per-form behaviour that is not table data. Each hook is a switch on the
// form id; forms without special behaviour fall through.

const (
	conflictMessage     = "The transformation conflicts with an enchantment already in effect."
	icyMergeMessage     = "Your new body merges with your icy armour."
	stoneMergeMessage   = "Your new body merges with your stone armour."
	netRipMessage       = "The net rips apart!"
	netDriftMessage     = "You drift through the net!"
	dropAllMessage      = "You find yourself unable to carry your possessions!"
	stopRegenMessage    = "You stop regenerating."
	vampireBatMessage   = "You turn into a vampire bat."
	gardenGnomeMessage  = "Look, a garden gnome.  How cute!"
	lawnOrnamentMessage = "You inwardly fear your resemblance to a lawn ornament."
	dragonSwimMessage   = "You fly out of the water as you turn into a fearsome dragon!"
)

// precheck runs form-specific preconditions after the generic ones.
func (c *Controller) precheck(p *character.Player, def *FormDef) (Rejection, string) {
	switch def.Form {
	case character.FormLich:
		if p.Buffs.Has(condition.DeathsDoor) {
			return RejectConflictingBuff, conflictMessage
		}
	}
	return RejectNone, ""
}

// entryMessage picks the announcement for entering def's form.
func (c *Controller) entryMessage(p *character.Player, def *FormDef) string {
	if c.flavor != nil {
		if msg, ok := c.flavor.EntryMessage(p, def.Form); ok {
			return msg
		}
	}
	switch def.Form {
	case character.FormBat:
		if p.Species.ID == character.Vampire {
			return vampireBatMessage
		}
	case character.FormStatue:
		if p.Species.ID == character.Gnome && c.roller.CoinFlip() {
			return gardenGnomeMessage
		}
		if p.Species.Genus == character.GenusDwarven && c.roller.OneChanceIn(10) {
			return lawnOrnamentMessage
		}
	case character.FormDragon:
		if p.Species.Aquatic && p.Swimming {
			return dragonSwimMessage
		}
	}
	return def.EnterMessage
}

// beforeCommit runs after equipment removal and before the form is recorded.
func (c *Controller) beforeCommit(p *character.Player, def *FormDef) {
	switch def.Form {
	case character.FormAir:
		c.dropEverything(p)
	case character.FormLich:
		if p.Buffs.Has(condition.Regeneration) {
			c.msgs.Emit(stopRegenMessage, message.Duration)
			p.Buffs.Remove(condition.Regeneration)
		}
		p.Buffs.Remove(condition.ResistPoison)
	}
}

// afterCommit runs once the form, stats, HP and appearance are in place.
func (c *Controller) afterCommit(p *character.Player, def *FormDef) {
	switch def.Form {
	case character.FormBat:
		if p.Species.ID == character.Vampire {
			p.Colour = character.DarkGrey
		}
	case character.FormIceBeast:
		if p.Buffs.Has(condition.IcyArmour) {
			c.say(icyMergeMessage)
		}
	case character.FormStatue:
		if p.Buffs.Has(condition.StoneMail) || p.Buffs.Has(condition.StoneSkin) {
			c.say(stoneMergeMessage)
		}
	case character.FormDragon:
		c.terrain.Revalidate(p)
		if p.Held {
			c.say(netRipMessage)
			c.freeFromNet(p, c.nets.DestroyNet)
		}
	case character.FormAir:
		if p.Held {
			c.say(netDriftMessage)
			c.freeFromNet(p, c.nets.ReleaseNet)
		}
	case character.FormLich:
		p.Undead = character.UndeadTemporary
		p.Hunger = character.Satiated
		p.Redraw.Hunger = true
	}
}

// exitHook runs the form-specific part of leaving def's form. The player's
// form state has already been cleared.
func (c *Controller) exitHook(p *character.Player, def *FormDef) {
	switch def.Form {
	case character.FormStatue:
		expireSoon(p, condition.StoneMail)
		expireSoon(p, condition.StoneSkin)
	case character.FormIceBeast:
		expireSoon(p, condition.IcyArmour)
	case character.FormDragon:
		c.terrain.Revalidate(p)
	case character.FormLich:
		p.Undead = p.BaseUndead()
	}
}

// expireSoon leaves a linked buff with one turn to run.
func expireSoon(p *character.Player, id string) {
	if p.Buffs.Has(id) {
		p.Buffs.SetDuration(id, 1)
	}
}

func (c *Controller) freeFromNet(p *character.Player, dispose func(character.Pos) bool) {
	p.Held = false
	net, ok := c.nets.NetAt(p.Pos)
	if !ok {
		return
	}
	dispose(p.Pos)
	c.logger.Debug("net disposed", zap.String("player", p.Name), zap.String("net", net.InstanceID))
}

// dropEverything puts the whole pack on the floor under the player.
func (c *Controller) dropEverything(p *character.Player) {
	if p.Pack.UsedSlots() == 0 {
		return
	}
	c.say(dropAllMessage)
	for _, inst := range p.Pack.TakeAll() {
		if slot, worn := p.Equipment.SlotOf(inst.InstanceID); worn {
			p.Equipment.Clear(slot)
		}
		c.floor.DropAt(p.Pos, inst)
	}
}

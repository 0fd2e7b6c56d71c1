package transform

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/morph/internal/game/character"
	"github.com/cory-johannsen/morph/internal/game/condition"
	"github.com/cory-johannsen/morph/internal/game/inventory"
)

// ExtendCap is the longest an active form can be stretched by re-entering it.
const ExtendCap = 100

const (
	submergedMessage    = "You cannot transform out of your normal form while in water."
	extendMessage       = "You extend your transformation's duration."
	cannotExtendMessage = "You cannot extend your transformation any further!"
	undeadMessage       = "Your unliving flesh cannot be transformed in this way."
)

// Enter tries to turn p into form with the given power.
//
// The checks run in a fixed order: an aquatic species swimming may only take
// a flying form; re-entering the active form extends it by random2(power) up
// to ExtendCap; any other active form is exited; undead players may only take
// their species' undead form; per-form preconditions are checked; cursed
// equipment in the removal set vetoes the attempt. Only then is anything
// removed or changed.
//
// Precondition: p is non-nil, form is a transformation in the table, power >= 0.
// Postcondition: on a rejection no equipment, stat, HP or form state has
// changed, apart from exiting a previous form and dropping stoneskin when
// those steps were reached.
func (c *Controller) Enter(p *character.Player, form character.Form, power int) (Result, error) {
	if p == nil {
		return Result{}, ErrNilPlayer
	}
	if power < 0 {
		return Result{}, fmt.Errorf("%w: got %d", ErrNegativePower, power)
	}
	def, ok := c.table.Get(form)
	if !ok {
		return Result{}, fmt.Errorf("%w: %s", ErrUnknownForm, form)
	}

	if p.Species.Aquatic && p.Swimming && !def.Flight {
		return c.reject(p, form, RejectSubmerged, submergedMessage), nil
	}

	if p.Form.Current == form {
		return c.extend(p, power), nil
	}

	if p.Form.Active() {
		c.Exit(p)
	}

	if p.IsUndead() && form != p.Species.UndeadForm {
		return c.reject(p, form, RejectUndead, undeadMessage), nil
	}

	p.Buffs.Remove(condition.StoneSkin)

	removal := c.removalSet(p, def)

	if r, msg := c.precheck(p, def); r != RejectNone {
		return c.reject(p, form, r, msg), nil
	}

	if c.HasCursedBlocker(p, removal) {
		c.logger.Debug("transformation vetoed",
			zap.String("player", p.Name),
			zap.Stringer("form", form),
			zap.Stringer("reason", RejectCursed),
		)
		return rejected(RejectCursed), nil
	}

	c.say(c.entryMessage(p, def))
	c.RemoveEquipment(p, removal)
	c.beforeCommit(p, def)

	duration := c.roller.RollBounded(def.Duration.Base, def.Duration.Rolls, power).Total()
	if duration > def.Duration.Cap {
		duration = def.Duration.Cap
	}
	p.Form = character.FormState{
		Current:  form,
		Duration: duration,
		HPScale:  def.HPScale,
		Flight:   def.Flight,
	}
	c.applyStats(p, def, 1, fmt.Sprintf("gaining the %s transformation", def.Name))
	if def.Scale() != 10 {
		extraHP(p, def.Scale())
	}
	p.Glyph = def.GlyphRune()
	p.Colour = def.Colour
	c.afterCommit(p, def)

	p.Redraw.Evasion = true
	p.Redraw.ArmourClass = true
	p.Redraw.Wield = true

	c.logger.Info("form entered",
		zap.String("player", p.Name),
		zap.Stringer("form", form),
		zap.Int("power", power),
		zap.Int("duration", duration),
		zap.Int("hp", p.HP),
		zap.Int("max_hp", p.MaxHP),
	)
	return Result{Success: true}, nil
}

func (c *Controller) extend(p *character.Player, power int) Result {
	if p.Form.Duration >= ExtendCap {
		return c.reject(p, p.Form.Current, RejectMaxDuration, cannotExtendMessage)
	}
	c.say(extendMessage)
	p.Form.Duration += c.roller.Random2(power)
	if p.Form.Duration > ExtendCap {
		p.Form.Duration = ExtendCap
	}
	c.logger.Debug("form extended",
		zap.String("player", p.Name),
		zap.Stringer("form", p.Form.Current),
		zap.Int("duration", p.Form.Duration),
	)
	return Result{Success: true, Extended: true}
}

func (c *Controller) reject(p *character.Player, form character.Form, r Rejection, msg string) Result {
	c.warn(msg)
	c.logger.Debug("transformation rejected",
		zap.String("player", p.Name),
		zap.Stringer("form", form),
		zap.Stringer("reason", r),
	)
	return rejected(r)
}

// removalSet is the form's removal set, minus a soft helmet the form can keep.
func (c *Controller) removalSet(p *character.Player, def *FormDef) inventory.SlotSet {
	set := def.Removes
	if def.SoftHelmetOK {
		helmet, worn := p.Worn(inventory.SlotHelmet)
		if !worn || !helmet.HardHelmet {
			set = set.Remove(inventory.SlotHelmet)
		}
	}
	return set
}

// extraHP rescales current HP by amount tenths after the form's max HP is in
// effect, so that the scaled value becomes the new high-water mark.
func extraHP(p *character.Player, amount int) {
	p.CalcHP()
	p.HP = p.HP * amount / 10
	p.DeflateHP(p.MaxHP, false)
}

package transform

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/morph/internal/game/character"
	"github.com/cory-johannsen/morph/internal/game/inventory"
	"github.com/cory-johannsen/morph/internal/game/message"
)

const almostOverMessage = "Your transformation is almost over."

// almostOverAt is the remaining duration at which the player is warned.
const almostOverAt = 10

// Exit returns p to its normal form. Exiting FormNone only refreshes the
// display flags.
//
// Invariant: p.Form is cleared before any exit effect runs, so every
// collaborator called from here observes FormNone.
func (c *Controller) Exit(p *character.Player) {
	if p == nil {
		return
	}
	p.Redraw.Evasion = true
	p.Redraw.ArmourClass = true
	p.Redraw.Wield = true
	p.ResetAppearance()

	old := p.Form.Current
	p.Form = character.FormState{}
	if old == character.FormNone {
		return
	}
	def, ok := c.table.Get(old)
	if !ok {
		c.logger.Error("exiting form missing from table", zap.Stringer("form", old))
		p.CalcHP()
		return
	}

	c.msgs.Emit(def.ExitMessage, message.Duration)
	c.applyStats(p, def, -1, fmt.Sprintf("losing the %s transformation", def.Name))
	c.exitHook(p, def)

	if def.ButcherBarehanded {
		c.butcher.StopButchering(p)
	}
	if p.Species.LosesBoots {
		c.RemoveOne(p, inventory.SlotBoots)
	}

	if downscale := def.Scale(); downscale != 10 && p.HP != p.MaxHP {
		p.HP = p.HP * 10 / downscale
		if p.HP < 1 {
			p.HP = 1
		} else if p.HP > p.MaxHP {
			p.HP = p.MaxHP
		}
	}
	p.CalcHP()

	c.logger.Info("form exited",
		zap.String("player", p.Name),
		zap.Stringer("form", old),
		zap.Int("hp", p.HP),
		zap.Int("max_hp", p.MaxHP),
	)
}

// Tick counts the active form down by one turn, warning when it is nearly
// over and exiting when it runs out. It reports whether the form ended.
func (c *Controller) Tick(p *character.Player) bool {
	if p == nil || !p.Form.Active() {
		return false
	}
	p.Form.Duration--
	if p.Form.Duration <= 0 {
		c.Exit(p)
		return true
	}
	if p.Form.Duration == almostOverAt {
		c.msgs.Emit(almostOverMessage, message.Duration)
	}
	return false
}

// Package character defines the explicit player-state object the
// transformation engine operates on.
package character

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/morph/internal/game/condition"
	"github.com/cory-johannsen/morph/internal/game/delay"
	"github.com/cory-johannsen/morph/internal/game/inventory"
)

// DefaultPackSlots is the pack size used when no option overrides it.
const DefaultPackSlots = 52

// Player is the complete mutable state of the player character.
// It is not safe for concurrent use; the turn loop owns it.
type Player struct {
	Name      string
	Species   *SpeciesDef
	Mutations Mutations
	Stats     Stats

	BaseHP int
	HP     int
	MaxHP  int

	Form   FormState
	Glyph  rune
	Colour Colour
	Undead UndeadState
	Hunger Hunger
	Redraw RedrawFlags

	Pack      *inventory.Backpack
	Equipment *inventory.Equipment
	Buffs     *condition.ActiveSet
	Delays    *delay.Queue

	Pos      Pos
	Swimming bool
	Held     bool

	logger *zap.Logger
}

// Option customises a Player built by NewPlayer.
type Option func(*Player)

// WithLogger sets the logger used for stat changes.
func WithLogger(logger *zap.Logger) Option {
	return func(p *Player) { p.logger = logger }
}

// WithPackSlots overrides the pack size.
func WithPackSlots(n int) Option {
	return func(p *Player) { p.Pack = inventory.NewBackpack(n) }
}

// WithBaseHP overrides the species hit points.
func WithBaseHP(hp int) Option {
	return func(p *Player) { p.BaseHP = hp }
}

// WithStats overrides the species starting stats.
func WithStats(s Stats) Option {
	return func(p *Player) { p.Stats = s }
}

// WithMutations sets the player's mutations.
func WithMutations(m Mutations) Option {
	return func(p *Player) { p.Mutations = m }
}

// NewPlayer builds an untransformed player of the given species at full health.
//
// Precondition: name must be non-empty.
// Postcondition: Form.Current is FormNone and HP == MaxHP.
func NewPlayer(name string, species Species, opts ...Option) (*Player, error) {
	if name == "" {
		return nil, fmt.Errorf("player name must not be empty")
	}
	def, ok := LookupSpecies(species)
	if !ok {
		return nil, fmt.Errorf("unknown species %q", species)
	}
	p := &Player{
		Name:      name,
		Species:   def,
		Stats:     def.Stats,
		BaseHP:    def.BaseHP,
		Glyph:     BaseGlyph,
		Colour:    BaseColour,
		Undead:    def.Undead,
		Hunger:    Satiated,
		Pack:      inventory.NewBackpack(DefaultPackSlots),
		Equipment: inventory.NewEquipment(),
		Buffs:     condition.NewActiveSet(),
		Delays:    delay.NewQueue(),
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.BaseHP < 1 {
		return nil, fmt.Errorf("base hp must be positive, got %d", p.BaseHP)
	}
	if p.logger == nil {
		p.logger = zap.NewNop()
	}
	p.CalcHP()
	p.HP = p.MaxHP
	return p, nil
}

// ModifyStat applies a reversible change to stat. reason is used only for logging.
func (p *Player) ModifyStat(stat Stat, delta int, reason string) {
	if delta == 0 {
		return
	}
	p.Stats.add(stat, delta)
	p.logger.Debug("stat modified",
		zap.String("player", p.Name),
		zap.Stringer("stat", stat),
		zap.Int("delta", delta),
		zap.Int("value", p.Stats.Get(stat)),
		zap.String("reason", reason),
	)
}

// CalcHP recomputes MaxHP from BaseHP and the active form's scale, then clamps HP.
//
// Postcondition: 1 <= MaxHP and HP <= MaxHP.
func (p *Player) CalcHP() {
	scale := p.Form.HPScale
	if scale <= 0 {
		scale = 10
	}
	p.MaxHP = p.BaseHP * scale / 10
	if p.MaxHP < 1 {
		p.MaxHP = 1
	}
	p.DeflateHP(p.MaxHP, false)
}

// DeflateHP moves HP toward level: down to it when floor is false, up to it when
// floor is true. HP never exceeds MaxHP afterwards.
func (p *Player) DeflateHP(level int, floor bool) {
	if floor && p.HP < level {
		p.HP = level
	} else if !floor && p.HP > level {
		p.HP = level
	}
	if p.HP > p.MaxHP {
		p.HP = p.MaxHP
	}
	p.Redraw.HitPoints = true
}

// IsUndead reports whether the player is currently undead.
func (p *Player) IsUndead() bool {
	return p.Undead != Alive
}

// PermanentlyUndead reports whether the player's species is undead.
func (p *Player) PermanentlyUndead() bool {
	return p.Undead == UndeadPermanent
}

// BaseUndead returns the undead state of the player's species.
func (p *Player) BaseUndead() UndeadState {
	return p.Species.Undead
}

// HasFeet reports whether the player can currently wear boots.
func (p *Player) HasFeet() bool {
	if p.Species.NoFeet {
		return false
	}
	return !(p.Species.Aquatic && p.Swimming)
}

// ClawLevel returns the strongest of the species and mutation claws.
func (p *Player) ClawLevel() int {
	return max(p.Species.Claws, p.Mutations.Claws)
}

// Airborne reports whether the active form lets the player fly.
func (p *Player) Airborne() bool {
	return p.Form.Flight
}

// Worn returns the item occupying slot.
func (p *Player) Worn(slot inventory.Slot) (inventory.ItemInstance, bool) {
	id, ok := p.Equipment.InstanceID(slot)
	if !ok {
		return inventory.ItemInstance{}, false
	}
	return p.Pack.Get(id)
}

// ResetAppearance restores the untransformed glyph and colour.
func (p *Player) ResetAppearance() {
	p.Glyph = BaseGlyph
	p.Colour = BaseColour
}

// Logger returns the player's logger.
func (p *Player) Logger() *zap.Logger {
	return p.logger
}

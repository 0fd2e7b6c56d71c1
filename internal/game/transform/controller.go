// Package transform implements the player's bodily transformations: entering
// and leaving forms, shedding equipment, and deciding what may be worn.
//
// All operations run synchronously on the turn loop and are not safe for
// concurrent use.
package transform

import (
	"errors"

	"go.uber.org/zap"

	"github.com/cory-johannsen/morph/internal/game/character"
	"github.com/cory-johannsen/morph/internal/game/dice"
	"github.com/cory-johannsen/morph/internal/game/message"
)

// Deps are the collaborators a Controller calls into.
type Deps struct {
	Table    *Table
	Roller   *dice.Roller
	Messages message.Messenger
	Terrain  Terrain
	Nets     NetTrap
	Floor    ItemPlacer
	// Butcher defaults to DelayCanceller.
	Butcher ButcherCanceller
	// Flavor is optional.
	Flavor FlavorHook
	// Logger defaults to a no-op logger.
	Logger *zap.Logger
}

// WithWorld fills Terrain, Nets and Floor from one World.
func (d Deps) WithWorld(w World) Deps {
	d.Terrain = w
	d.Nets = w
	d.Floor = w
	return d
}

// Controller runs the entry and exit state machine over a form table.
type Controller struct {
	table   *Table
	roller  *dice.Roller
	msgs    message.Messenger
	terrain Terrain
	nets    NetTrap
	floor   ItemPlacer
	butcher ButcherCanceller
	flavor  FlavorHook
	logger  *zap.Logger
}

// NewController validates d and returns a Controller.
//
// Precondition: Table, Roller, Messages, Terrain, Nets and Floor are non-nil.
// Postcondition: Returns a ready Controller or a non-nil error.
func NewController(d Deps) (*Controller, error) {
	var errs []error
	if d.Table == nil {
		errs = append(errs, errors.New("table must not be nil"))
	}
	if d.Roller == nil {
		errs = append(errs, errors.New("roller must not be nil"))
	}
	if d.Messages == nil {
		errs = append(errs, errors.New("messenger must not be nil"))
	}
	if d.Terrain == nil || d.Nets == nil || d.Floor == nil {
		errs = append(errs, errors.New("terrain, nets and floor must not be nil"))
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	if d.Butcher == nil {
		d.Butcher = DelayCanceller{}
	}
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	return &Controller{
		table:   d.Table,
		roller:  d.Roller,
		msgs:    d.Messages,
		terrain: d.Terrain,
		nets:    d.Nets,
		floor:   d.Floor,
		butcher: d.Butcher,
		flavor:  d.Flavor,
		logger:  d.Logger,
	}, nil
}

// Table returns the form table the controller was built with.
func (c *Controller) Table() *Table {
	return c.table
}

func (c *Controller) say(text string) {
	c.msgs.Emit(text, message.Plain)
}

func (c *Controller) warn(text string) {
	c.msgs.Emit(text, message.Warning)
}

func (c *Controller) applyStats(p *character.Player, def *FormDef, sign int, reason string) {
	p.ModifyStat(character.StatStrength, sign*def.Stats.Str, reason)
	p.ModifyStat(character.StatIntelligence, sign*def.Stats.Int, reason)
	p.ModifyStat(character.StatDexterity, sign*def.Stats.Dex, reason)
}

// Package session binds one simulated player to its level, its
// transformation controller and the turn clock.
package session

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/morph/internal/game/character"
	"github.com/cory-johannsen/morph/internal/game/condition"
	"github.com/cory-johannsen/morph/internal/game/delay"
	"github.com/cory-johannsen/morph/internal/game/inventory"
	"github.com/cory-johannsen/morph/internal/game/message"
	"github.com/cory-johannsen/morph/internal/game/transform"
	"github.com/cory-johannsen/morph/internal/game/turn"
	"github.com/cory-johannsen/morph/internal/game/world"
)

// Tick names. The clock runs them in this (lexicographic) order.
const (
	TickBuffs  = "buffs"
	TickDelays = "delays"
	TickForm   = "form"
)

// Deps are the parts a Session is assembled from.
type Deps struct {
	Player       *character.Player
	Level        *world.Level
	Forms        *transform.Controller
	Items        *inventory.Registry
	Conditions   *condition.Registry
	Messages     message.Messenger
	DefaultPower int
	Logger       *zap.Logger
}

// Session is one player in one level.
// It is not safe for concurrent use.
type Session struct {
	Player       *character.Player
	Level        *world.Level
	Forms        *transform.Controller
	Items        *inventory.Registry
	Conditions   *condition.Registry
	Messages     message.Messenger
	Clock        *turn.Scheduler
	DefaultPower int

	logger *zap.Logger
	quit   bool
}

// New assembles a Session, places the player at the level start and
// registers the per-turn ticks.
//
// Precondition: every field of d except Logger is set; DefaultPower >= 0.
// Postcondition: Returns a ready Session or a non-nil error.
func New(d Deps) (*Session, error) {
	if d.Player == nil || d.Level == nil || d.Forms == nil || d.Items == nil || d.Conditions == nil || d.Messages == nil {
		return nil, errors.New("session: player, level, forms, items, conditions and messages are required")
	}
	if d.DefaultPower < 0 {
		return nil, fmt.Errorf("session: default power must be >= 0, got %d", d.DefaultPower)
	}
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	s := &Session{
		Player:       d.Player,
		Level:        d.Level,
		Forms:        d.Forms,
		Items:        d.Items,
		Conditions:   d.Conditions,
		Messages:     d.Messages,
		Clock:        turn.NewScheduler(),
		DefaultPower: d.DefaultPower,
		logger:       d.Logger,
	}
	s.Level.Place(s.Player)
	s.Clock.Register(TickBuffs, s.tickBuffs)
	s.Clock.Register(TickDelays, s.tickDelays)
	s.Clock.Register(TickForm, s.tickForm)
	return s, nil
}

// Wait lets n turns pass.
func (s *Session) Wait(ctx context.Context, n int) (int, error) {
	return s.Clock.Advance(ctx, n)
}

// Quit marks the session finished.
func (s *Session) Quit() {
	s.quit = true
}

// Done reports whether Quit was called.
func (s *Session) Done() bool {
	return s.quit
}

// Logger returns the session logger.
func (s *Session) Logger() *zap.Logger {
	return s.logger
}

func (s *Session) tickBuffs(int) {
	for _, id := range s.Player.Buffs.Tick() {
		if def, ok := s.Conditions.Get(id); ok && def.ExpireMessage != "" {
			s.Messages.Emit(def.ExpireMessage, message.Duration)
		}
	}
}

func (s *Session) tickDelays(int) {
	done, ok := s.Player.Delays.Tick()
	if !ok {
		return
	}
	switch done.Kind {
	case delay.Butcher:
		s.Messages.Emit("You finish butchering the corpse.", message.Plain)
	case delay.Rest:
		s.Messages.Emit("You finish resting.", message.Plain)
	}
}

func (s *Session) tickForm(turn int) {
	if s.Forms.Tick(s.Player) {
		s.logger.Debug("form expired", zap.Int("turn", turn))
	}
}

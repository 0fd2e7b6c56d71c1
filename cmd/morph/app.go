package main

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/cory-johannsen/morph/internal/config"
	"github.com/cory-johannsen/morph/internal/game/character"
	"github.com/cory-johannsen/morph/internal/game/condition"
	"github.com/cory-johannsen/morph/internal/game/dice"
	"github.com/cory-johannsen/morph/internal/game/inventory"
	"github.com/cory-johannsen/morph/internal/game/message"
	"github.com/cory-johannsen/morph/internal/game/session"
	"github.com/cory-johannsen/morph/internal/game/transform"
	"github.com/cory-johannsen/morph/internal/game/world"
	"github.com/cory-johannsen/morph/internal/scripting"
)

func loadConfig(overrides func(*config.Config)) (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("loading config: %w", err)
	}
	if overrides != nil {
		overrides(&cfg)
		if err := cfg.Validate(); err != nil {
			return config.Config{}, err
		}
	}
	return cfg, nil
}

func loadForms(cfg config.ContentConfig) (*transform.Table, error) {
	if cfg.FormsDir == "" {
		return transform.DefaultTable(), nil
	}
	table, err := transform.LoadTable(cfg.FormsDir)
	if err != nil {
		return nil, fmt.Errorf("loading forms: %w", err)
	}
	return table, nil
}

// content is the read-only data every session shares.
type content struct {
	cfg        config.Config
	logger     *zap.Logger
	conditions *condition.Registry
	items      *inventory.Registry
	forms      *transform.Table
	species    character.Species
}

func loadContent(cfg config.Config, logger *zap.Logger) (*content, error) {
	conditions, err := condition.LoadDirectory(cfg.Content.ConditionsDir)
	if err != nil {
		return nil, fmt.Errorf("loading conditions: %w", err)
	}
	items, err := inventory.LoadRegistry(cfg.Content.ItemsDir)
	if err != nil {
		return nil, fmt.Errorf("loading items: %w", err)
	}
	forms, err := loadForms(cfg.Content)
	if err != nil {
		return nil, err
	}
	species, err := character.ParseSpecies(cfg.Simulation.Species)
	if err != nil {
		return nil, err
	}
	// Fail at startup rather than on the first connection.
	if _, err := world.LoadLevelFromFile(cfg.Content.LevelFile); err != nil {
		return nil, fmt.Errorf("loading level: %w", err)
	}
	logger.Info("content loaded",
		zap.Int("forms", len(forms.All())),
		zap.Int("items", len(items.AllItems())),
		zap.Int("conditions", len(conditions.All())),
	)
	return &content{
		cfg:        cfg,
		logger:     logger,
		conditions: conditions,
		items:      items,
		forms:      forms,
		species:    species,
	}, nil
}

// app is one player's session and the script VM behind its flavor text.
type app struct {
	scripts *scripting.Manager
	session *session.Session
}

func (c *content) roller(seed uint64, logger *zap.Logger) *dice.Roller {
	if seed == 0 {
		return dice.NewLoggedRoller(dice.NewCryptoSource(), logger)
	}
	return dice.NewLoggedRoller(dice.NewSeededSource(seed), logger)
}

// newApp builds a fresh level, player and session writing messages to out.
// A zero seed draws from crypto randomness.
//
// Postcondition: On success the caller must call close.
func (c *content) newApp(out io.Writer, name string, seed uint64) (*app, error) {
	sim := c.cfg.Simulation
	logger := c.logger.With(zap.String("player", name))
	roller := c.roller(seed, logger)

	level, err := world.LoadLevelFromFile(c.cfg.Content.LevelFile)
	if err != nil {
		return nil, fmt.Errorf("loading level: %w", err)
	}
	msgs := message.NewWriter(out, sim.Color)
	level.SetMessenger(msgs)

	a := &app{}
	deps := transform.Deps{
		Table:    c.forms,
		Roller:   roller,
		Messages: msgs,
		Logger:   logger,
	}.WithWorld(level)
	if c.cfg.Content.ScriptsDir != "" {
		a.scripts = scripting.NewManager(roller, logger)
		if err := a.scripts.Load(c.cfg.Content.ScriptsDir, sim.ScriptInstructionLimit); err != nil {
			a.close()
			return nil, fmt.Errorf("loading scripts: %w", err)
		}
		deps.Flavor = transform.NewLuaFlavor(a.scripts)
	}
	controller, err := transform.NewController(deps)
	if err != nil {
		a.close()
		return nil, fmt.Errorf("creating transform controller: %w", err)
	}

	player, err := character.NewPlayer(name, c.species,
		character.WithLogger(logger),
		character.WithPackSlots(sim.PackSlots),
	)
	if err != nil {
		a.close()
		return nil, fmt.Errorf("creating player: %w", err)
	}

	a.session, err = session.New(session.Deps{
		Player:       player,
		Level:        level,
		Forms:        controller,
		Items:        c.items,
		Conditions:   c.conditions,
		Messages:     msgs,
		DefaultPower: sim.DefaultPower,
		Logger:       logger,
	})
	if err != nil {
		a.close()
		return nil, fmt.Errorf("creating session: %w", err)
	}
	logger.Info("session ready",
		zap.String("species", string(c.species)),
		zap.String("level", level.ID),
		zap.Bool("scripts", a.scripts != nil),
	)
	return a, nil
}

func (a *app) close() {
	if a.scripts != nil {
		a.scripts.Close()
	}
}

// Package config provides Viper-based configuration loading for the
// transformation simulator.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
	// Output is a file path, or "stderr"/"stdout". The console prints game
	// messages to stdout, so logs default to stderr.
	Output string `mapstructure:"output"`
}

// ContentConfig locates the YAML and Lua content loaded at startup.
type ContentConfig struct {
	// FormsDir overrides the embedded form table when non-empty.
	FormsDir      string `mapstructure:"forms_dir"`
	ConditionsDir string `mapstructure:"conditions_dir"`
	ItemsDir      string `mapstructure:"items_dir"`
	// ScriptsDir holds flavor scripts. Empty disables scripting.
	ScriptsDir string `mapstructure:"scripts_dir"`
	LevelFile  string `mapstructure:"level_file"`
}

// SimulationConfig holds settings for the player being simulated.
type SimulationConfig struct {
	// Seed makes every roll reproducible. 0 uses crypto randomness.
	Seed         uint64 `mapstructure:"seed"`
	DefaultPower int    `mapstructure:"default_power"`
	PlayerName   string `mapstructure:"player_name"`
	Species      string `mapstructure:"species"`
	PackSlots    int    `mapstructure:"pack_slots"`
	// ScriptInstructionLimit caps the Lua opcodes of one script call.
	ScriptInstructionLimit int  `mapstructure:"script_instruction_limit"`
	Color                  bool `mapstructure:"color"`
}

// TelnetConfig holds settings for "morph serve", which hosts one console
// per telnet connection.
type TelnetConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	// ReadTimeout disconnects a client that sends nothing for this long.
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	// MaxSessions caps concurrent connections. 0 means no limit.
	MaxSessions int `mapstructure:"max_sessions"`
}

// Addr returns the "host:port" listen address.
func (t TelnetConfig) Addr() string {
	return fmt.Sprintf("%s:%d", t.Host, t.Port)
}

// Config is the top-level application configuration.
type Config struct {
	Logging    LoggingConfig    `mapstructure:"logging"`
	Content    ContentConfig    `mapstructure:"content"`
	Simulation SimulationConfig `mapstructure:"simulation"`
	Telnet     TelnetConfig     `mapstructure:"telnet"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string
	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateContent(c.Content); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateSimulation(c.Simulation); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateTelnet(c.Telnet); err != nil {
		errs = append(errs, err.Error())
	}
	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	if l.Output == "" {
		return errors.New("logging.output must not be empty")
	}
	return nil
}

func validateContent(c ContentConfig) error {
	var errs []string
	if c.ConditionsDir == "" {
		errs = append(errs, "content.conditions_dir must not be empty")
	}
	if c.ItemsDir == "" {
		errs = append(errs, "content.items_dir must not be empty")
	}
	if c.LevelFile == "" {
		errs = append(errs, "content.level_file must not be empty")
	}
	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

func validateSimulation(s SimulationConfig) error {
	var errs []string
	if s.DefaultPower < 0 {
		errs = append(errs, fmt.Sprintf("simulation.default_power must be >= 0, got %d", s.DefaultPower))
	}
	if s.PlayerName == "" {
		errs = append(errs, "simulation.player_name must not be empty")
	}
	if s.Species == "" {
		errs = append(errs, "simulation.species must not be empty")
	}
	if s.PackSlots < 1 {
		errs = append(errs, fmt.Sprintf("simulation.pack_slots must be >= 1, got %d", s.PackSlots))
	}
	if s.ScriptInstructionLimit < 0 {
		errs = append(errs, fmt.Sprintf("simulation.script_instruction_limit must be >= 0, got %d", s.ScriptInstructionLimit))
	}
	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

func validateTelnet(t TelnetConfig) error {
	var errs []string
	if t.Port < 1 || t.Port > 65535 {
		errs = append(errs, fmt.Sprintf("telnet.port must be 1-65535, got %d", t.Port))
	}
	if t.ReadTimeout < 0 {
		errs = append(errs, "telnet.read_timeout must not be negative")
	}
	if t.WriteTimeout < 0 {
		errs = append(errs, "telnet.write_timeout must not be negative")
	}
	if t.MaxSessions < 0 {
		errs = append(errs, fmt.Sprintf("telnet.max_sessions must be >= 0, got %d", t.MaxSessions))
	}
	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

// Load reads configuration from the given file path, applies environment
// variable overrides, and validates the result. An empty path uses only
// defaults and the environment.
//
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	}

	// Environment variable overrides with MORPH_ prefix
	v.SetEnvPrefix("MORPH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}
	return LoadFromViper(v)
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.output", "stderr")

	v.SetDefault("content.forms_dir", "")
	v.SetDefault("content.conditions_dir", "content/conditions")
	v.SetDefault("content.items_dir", "content/items")
	v.SetDefault("content.scripts_dir", "content/scripts")
	v.SetDefault("content.level_file", "content/levels/arena.yaml")

	v.SetDefault("simulation.seed", 0)
	v.SetDefault("simulation.default_power", 50)
	v.SetDefault("simulation.player_name", "Adventurer")
	v.SetDefault("simulation.species", "human")
	v.SetDefault("simulation.pack_slots", 52)
	v.SetDefault("simulation.script_instruction_limit", 100000)
	v.SetDefault("simulation.color", true)

	v.SetDefault("telnet.host", "127.0.0.1")
	v.SetDefault("telnet.port", 4000)
	v.SetDefault("telnet.read_timeout", "10m")
	v.SetDefault("telnet.write_timeout", "30s")
	v.SetDefault("telnet.max_sessions", 16)
}

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/cory-johannsen/morph/internal/config"
	"github.com/cory-johannsen/morph/internal/game/command"
	"github.com/cory-johannsen/morph/internal/observability"
)

var (
	scriptPath  string
	speciesFlag string
	nameFlag    string
	seedFlag    uint64
	powerFlag   int
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the console",
	Long: `Start an interactive console, or replay a command script with --script.
Script lines are echoed before their output; lines starting with # are comments.`,
	RunE: runConsole,
}

func init() {
	f := runCmd.Flags()
	f.StringVar(&scriptPath, "script", "", "read commands from this file instead of stdin")
	f.StringVar(&speciesFlag, "species", "", "override simulation.species")
	f.StringVar(&nameFlag, "name", "", "override simulation.player_name")
	f.Uint64Var(&seedFlag, "seed", 0, "override simulation.seed (0 draws from crypto/rand)")
	f.IntVar(&powerFlag, "power", 0, "override simulation.default_power")
}

func runConsole(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(func(c *config.Config) {
		flags := cmd.Flags()
		if flags.Changed("species") {
			c.Simulation.Species = speciesFlag
		}
		if flags.Changed("name") {
			c.Simulation.PlayerName = nameFlag
		}
		if flags.Changed("seed") {
			c.Simulation.Seed = seedFlag
		}
		if flags.Changed("power") {
			c.Simulation.DefaultPower = powerFlag
		}
	})
	if err != nil {
		return err
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer logger.Sync()

	c, err := loadContent(cfg, logger)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	a, err := c.newApp(out, cfg.Simulation.PlayerName, cfg.Simulation.Seed)
	if err != nil {
		return err
	}
	defer a.close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	console := command.NewConsole(command.DefaultRegistry(), a.session, out)
	var in io.Reader = os.Stdin
	if scriptPath != "" {
		file, err := os.Open(scriptPath)
		if err != nil {
			return fmt.Errorf("opening script: %w", err)
		}
		defer file.Close()
		in = file
		console.Echo = true
	} else {
		console.Prompt = "> "
		fmt.Fprintf(out, "Welcome, %s the %s. Type help for commands.\n",
			a.session.Player.Name, a.session.Player.Species.Name)
	}

	if err := console.Run(ctx, in); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("console: %w", err)
	}
	return nil
}

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"sync/atomic"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cory-johannsen/morph/internal/config"
	"github.com/cory-johannsen/morph/internal/frontend/telnet"
	"github.com/cory-johannsen/morph/internal/game/command"
	"github.com/cory-johannsen/morph/internal/observability"
	"github.com/cory-johannsen/morph/internal/server"
)

var portFlag int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Host a console per telnet connection",
	Long: `Listen for telnet clients. Each client gets its own level, player and
turn clock; nothing is shared between clients except the loaded content.`,
	RunE: serveTelnet,
}

func init() {
	serveCmd.Flags().IntVar(&portFlag, "port", 0, "override telnet.port")
}

// consoleHandler runs a fresh console for each telnet client.
type consoleHandler struct {
	content *content
	clients atomic.Uint64
}

// HandleSession implements telnet.SessionHandler.
func (h *consoleHandler) HandleSession(ctx context.Context, conn *telnet.Conn) error {
	n := h.clients.Add(1)
	fmt.Fprint(conn, "What is your name? ")
	name, err := conn.ReadLine()
	if err != nil {
		return err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = fmt.Sprintf("Guest%d", n)
	}

	seed := h.content.cfg.Simulation.Seed
	if seed != 0 {
		seed += n
	}
	a, err := h.content.newApp(conn, name, seed)
	if err != nil {
		h.content.logger.Error("creating session", zap.String("player", name), zap.Error(err))
		fmt.Fprintln(conn, "Something went wrong setting up your game.")
		return err
	}
	defer a.close()

	fmt.Fprintf(conn, "Welcome, %s the %s. Type help for commands.\n", name, a.session.Player.Species.Name)
	console := command.NewConsole(command.DefaultRegistry(), a.session, conn)
	console.Prompt = "> "
	err = console.Serve(ctx, conn)
	if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func serveTelnet(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(func(c *config.Config) {
		if cmd.Flags().Changed("port") {
			c.Telnet.Port = portFlag
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
	acceptor := telnet.NewAcceptor(cfg.Telnet, &consoleHandler{content: c}, logger)

	lc := server.NewLifecycle(logger)
	lc.Add("telnet", server.FuncService{StartFn: acceptor.ListenAndServe, StopFn: acceptor.Stop})

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return lc.Run(ctx)
}

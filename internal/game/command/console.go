package command

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/cory-johannsen/morph/internal/game/session"
)

// Console resolves and runs command lines against one session.
type Console struct {
	reg  *Registry
	sess *session.Session
	out  io.Writer
	// Echo prints each input line before its output, for scripted runs.
	Echo bool
	// Prompt is written before each line is read. Empty disables it.
	Prompt string
}

// NewConsole returns a Console writing command output to out.
//
// Precondition: reg, sess and out are non-nil.
func NewConsole(reg *Registry, sess *session.Session, out io.Writer) *Console {
	return &Console{reg: reg, sess: sess, out: out}
}

// Execute runs one command line and returns its text output.
//
// Postcondition: Blank and comment-only lines return "".
func (c *Console) Execute(ctx context.Context, line string) string {
	parsed := Parse(line)
	if parsed.Command == "" {
		return ""
	}
	cmd, ok := c.reg.Resolve(parsed.Command)
	if !ok {
		return fmt.Sprintf("Unknown command %q. Type help for a list.", parsed.Command)
	}
	c.sess.Logger().Debug("command",
		zap.String("name", cmd.Name),
		zap.Strings("args", parsed.Args),
	)
	s := c.sess
	switch cmd.Handler {
	case HandlerMove:
		return HandleMove(ctx, s, cmd.Name)
	case HandlerTransform:
		return HandleTransform(s, parsed.Args)
	case HandlerUntransform:
		return HandleUntransform(s)
	case HandlerForms:
		return HandleForms(s)
	case HandlerWear:
		return HandleWear(s, parsed.RawArgs)
	case HandlerWield:
		return HandleWield(s, parsed.RawArgs)
	case HandlerRemove:
		return HandleRemove(s, parsed.RawArgs)
	case HandlerInventory:
		return HandleInventory(s)
	case HandlerGet:
		return HandleGet(s, parsed.RawArgs)
	case HandlerDrop:
		return HandleDrop(s, parsed.RawArgs)
	case HandlerFloor:
		return HandleFloor(s)
	case HandlerMap:
		return HandleMap(s)
	case HandlerWait:
		return HandleWait(ctx, s, parsed.Args)
	case HandlerRest:
		return HandleRest(ctx, s, parsed.Args)
	case HandlerButcher:
		return HandleButcher(s, parsed.Args)
	case HandlerStatus:
		return HandleStatus(s)
	case HandlerHelp:
		return c.help()
	case HandlerQuit:
		s.Quit()
		return "Goodbye."
	case HandlerBuff:
		return HandleBuff(s, parsed.Args)
	case HandlerCurse:
		return HandleCurse(s, parsed.RawArgs)
	case HandlerNet:
		return HandleNet(s)
	default:
		return fmt.Sprintf("Command %q has no handler.", cmd.Name)
	}
}

// LineSource yields one input line at a time, returning io.EOF when done.
type LineSource interface {
	ReadLine() (string, error)
}

type scannerSource struct {
	scanner *bufio.Scanner
}

func (s scannerSource) ReadLine() (string, error) {
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return s.scanner.Text(), nil
}

// Run reads lines from in until EOF, quit, or ctx is cancelled.
//
// Postcondition: Returns nil on EOF or quit, ctx.Err() on cancellation, or
// the read error.
func (c *Console) Run(ctx context.Context, in io.Reader) error {
	return c.Serve(ctx, scannerSource{scanner: bufio.NewScanner(in)})
}

// Serve is Run over an arbitrary line source.
func (c *Console) Serve(ctx context.Context, lines LineSource) error {
	for !c.sess.Done() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if c.Prompt != "" {
			fmt.Fprint(c.out, c.Prompt)
		}
		line, err := lines.ReadLine()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if c.Echo && Parse(line).Command != "" {
			fmt.Fprintf(c.out, "> %s\n", strings.TrimSpace(line))
		}
		if text := c.Execute(ctx, line); text != "" {
			fmt.Fprintln(c.out, text)
		}
	}
	return nil
}

func (c *Console) help() string {
	var b strings.Builder
	byCategory := c.reg.CommandsByCategory()
	for _, category := range c.reg.Categories() {
		fmt.Fprintf(&b, "%s:\n", capitalize(category))
		for _, cmd := range byCategory[category] {
			name := cmd.Name
			if cmd.Usage != "" {
				name += " " + cmd.Usage
			}
			if len(cmd.Aliases) > 0 {
				name += " (" + strings.Join(cmd.Aliases, ", ") + ")"
			}
			fmt.Fprintf(&b, "  %-36s %s\n", name, cmd.Help)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

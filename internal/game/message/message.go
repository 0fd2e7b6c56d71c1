// Package message carries user-visible notifications from the game core to
// whatever is displaying them.
package message

import (
	"fmt"
	"io"
	"strings"
)

// Channel classifies a message for display and filtering.
type Channel int

const (
	// Plain is ordinary game narration.
	Plain Channel = iota
	// Duration marks the start or end of a timed effect.
	Duration
	// Warning marks a refused action.
	Warning
	// Flavor is purely descriptive text.
	Flavor
)

func (c Channel) String() string {
	switch c {
	case Plain:
		return "plain"
	case Duration:
		return "duration"
	case Warning:
		return "warning"
	case Flavor:
		return "flavor"
	default:
		return fmt.Sprintf("channel(%d)", int(c))
	}
}

//go:generate mockgen -destination=mock/mock_messenger.go -package=messagemock github.com/cory-johannsen/morph/internal/game/message Messenger

// Messenger is the fire-and-forget notification sink.
type Messenger interface {
	Emit(text string, ch Channel)
}

// Entry is one recorded message.
type Entry struct {
	Text    string
	Channel Channel
}

// Buffer records every emitted message in order.
// It is not safe for concurrent use.
type Buffer struct {
	entries []Entry
}

// NewBuffer returns an empty Buffer.
func NewBuffer() *Buffer {
	return &Buffer{}
}

// Emit appends text to the buffer.
func (b *Buffer) Emit(text string, ch Channel) {
	b.entries = append(b.entries, Entry{Text: text, Channel: ch})
}

// Entries returns a copy of the recorded messages.
func (b *Buffer) Entries() []Entry {
	out := make([]Entry, len(b.entries))
	copy(out, b.entries)
	return out
}

// Texts returns just the text of each recorded message.
func (b *Buffer) Texts() []string {
	out := make([]string, len(b.entries))
	for i, e := range b.entries {
		out[i] = e.Text
	}
	return out
}

// Contains reports whether any recorded message contains substr.
func (b *Buffer) Contains(substr string) bool {
	for _, e := range b.entries {
		if strings.Contains(e.Text, substr) {
			return true
		}
	}
	return false
}

// Reset discards all recorded messages.
func (b *Buffer) Reset() {
	b.entries = nil
}

// Writer prints messages to an io.Writer, one per line, coloured by channel.
type Writer struct {
	out   io.Writer
	color bool
}

// NewWriter returns a Writer printing to out. color enables ANSI escapes.
//
// Precondition: out must be non-nil.
func NewWriter(out io.Writer, color bool) *Writer {
	return &Writer{out: out, color: color}
}

// Emit writes text followed by a newline. Write errors are ignored: display
// is fire-and-forget from the core's point of view.
func (w *Writer) Emit(text string, ch Channel) {
	if w.color {
		text = Colorize(channelColors[ch], text)
	}
	_, _ = fmt.Fprintln(w.out, text)
}

var channelColors = map[Channel]string{
	Plain:    White,
	Duration: BrightBlue,
	Warning:  BrightRed,
	Flavor:   Yellow,
}

// Tee fans each message out to every sink.
type Tee []Messenger

// Emit forwards text to each sink in order.
func (t Tee) Emit(text string, ch Channel) {
	for _, m := range t {
		m.Emit(text, ch)
	}
}

package command

import (
	"strings"
	"unicode"
)

// ParseResult holds the parsed command name and arguments from a text line.
type ParseResult struct {
	// Command is the first word of the input, lowercased.
	Command string
	// Args are the remaining words. A double-quoted run is one argument.
	Args []string
	// RawArgs is the text after the command with quote marks removed, for
	// handlers that take a single free-form argument such as an item name.
	RawArgs string
}

// Parse splits a line into a command and its arguments. Everything from a
// '#' onwards is a comment, so script files can annotate their steps.
//
// Postcondition: Command is empty if and only if the line is blank or only
// a comment.
func Parse(line string) ParseResult {
	line, _, _ = strings.Cut(line, "#")
	line = strings.TrimSpace(line)
	if line == "" {
		return ParseResult{}
	}
	head, rest := line, ""
	if i := strings.IndexFunc(line, unicode.IsSpace); i >= 0 {
		head, rest = line[:i], strings.TrimSpace(line[i:])
	}
	return ParseResult{
		Command: strings.ToLower(head),
		Args:    splitArgs(rest),
		RawArgs: strings.TrimSpace(strings.ReplaceAll(rest, `"`, "")),
	}
}

// splitArgs splits s on whitespace outside double quotes. An unterminated
// quote runs to the end of s.
func splitArgs(s string) []string {
	var (
		args    []string
		current strings.Builder
		quoted  bool
		started bool
	)
	flush := func() {
		if started {
			args = append(args, current.String())
		}
		current.Reset()
		started = false
	}
	for _, r := range s {
		switch {
		case r == '"':
			quoted = !quoted
			started = true
		case !quoted && unicode.IsSpace(r):
			flush()
		default:
			current.WriteRune(r)
			started = true
		}
	}
	flush()
	return args
}

package command

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// Registry resolves command words, canonical or alias, to Commands.
type Registry struct {
	byWord     map[string]*Command
	sorted     []*Command
	categories []string
}

// NewRegistry indexes cmds by name and alias.
//
// Precondition: every command has a name and a handler, and no word is used
// twice across names and aliases.
// Postcondition: Returns a Registry, or an error naming the first conflict.
func NewRegistry(cmds []Command) (*Registry, error) {
	r := &Registry{byWord: make(map[string]*Command)}
	for i := range cmds {
		cmd := &cmds[i]
		if cmd.Name == "" || cmd.Handler == "" {
			return nil, fmt.Errorf("command %d: name and handler are required", i)
		}
		if err := r.claim(cmd.Name, cmd, "duplicate command name"); err != nil {
			return nil, err
		}
		for _, alias := range cmd.Aliases {
			if err := r.claim(alias, cmd, "duplicate alias"); err != nil {
				return nil, err
			}
		}
		r.sorted = append(r.sorted, cmd)
		if !slices.Contains(r.categories, cmd.Category) {
			r.categories = append(r.categories, cmd.Category)
		}
	}
	slices.SortFunc(r.sorted, func(a, b *Command) int { return cmp.Compare(a.Name, b.Name) })
	return r, nil
}

func (r *Registry) claim(word string, cmd *Command, conflict string) error {
	if owner, taken := r.byWord[word]; taken {
		return fmt.Errorf("%s %q: used by %q and %q", conflict, word, owner.Name, cmd.Name)
	}
	r.byWord[word] = cmd
	return nil
}

// DefaultRegistry returns a Registry of BuiltinCommands. It panics if the
// built-in table conflicts with itself.
func DefaultRegistry() *Registry {
	r, err := NewRegistry(BuiltinCommands())
	if err != nil {
		panic(fmt.Sprintf("building default registry: %v", err))
	}
	return r
}

// Resolve looks up a command by name or alias, ignoring case.
func (r *Registry) Resolve(word string) (*Command, bool) {
	cmd, ok := r.byWord[strings.ToLower(word)]
	return cmd, ok
}

// Commands returns every command ordered by name.
func (r *Registry) Commands() []*Command {
	return slices.Clone(r.sorted)
}

// CommandsByCategory groups Commands by category, keeping name order.
func (r *Registry) CommandsByCategory() map[string][]*Command {
	groups := make(map[string][]*Command, len(r.categories))
	for _, cmd := range r.sorted {
		groups[cmd.Category] = append(groups[cmd.Category], cmd)
	}
	return groups
}

// Categories returns category names in the order they first appear in the
// command table, which is the order help lists them.
func (r *Registry) Categories() []string {
	return slices.Clone(r.categories)
}

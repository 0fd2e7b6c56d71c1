package world

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/morph/internal/game/character"
)

// yamlLevelFile is the top-level YAML structure for level files.
type yamlLevelFile struct {
	Level yamlLevel `yaml:"level"`
}

type yamlLevel struct {
	ID    string   `yaml:"id"`
	Name  string   `yaml:"name"`
	Start yamlPos  `yaml:"start"`
	Rows  []string `yaml:"rows"`
}

type yamlPos struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// LoadLevelFromFile reads and validates a single level YAML file.
//
// Precondition: path must point to a valid YAML level file.
// Postcondition: Returns a validated Level or a non-nil error.
func LoadLevelFromFile(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading level file %s: %w", path, err)
	}
	return LoadLevelFromBytes(data)
}

// LoadLevelFromBytes parses and validates a level from YAML bytes.
func LoadLevelFromBytes(data []byte) (*Level, error) {
	var file yamlLevelFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("parsing level YAML: %w", err)
	}
	yl := file.Level
	l, err := NewLevel(yl.ID, yl.Name, yl.Rows, character.Pos{X: yl.Start.X, Y: yl.Start.Y})
	if err != nil {
		return nil, fmt.Errorf("validating level: %w", err)
	}
	return l, nil
}

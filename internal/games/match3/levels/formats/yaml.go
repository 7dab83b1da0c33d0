// Package formats provides level file format parsers.
package formats

import (
	"fmt"

	"github.com/vovakirdan/tui-match3/internal/games/match3/core"
	"gopkg.in/yaml.v3"
)

// YAMLLevel represents the YAML structure for a level file.
// A level gives either a map or a size with explicit obstacle lists.
type YAMLLevel struct {
	ID      string            `yaml:"id"`
	Name    string            `yaml:"name"`
	Colors  int               `yaml:"colors"`
	Moves   int               `yaml:"moves,omitempty"`
	Target  int               `yaml:"target,omitempty"`
	Map     []string          `yaml:"map,omitempty"`
	Symbols map[string]string `yaml:"symbols,omitempty"`
	Size    int               `yaml:"size,omitempty"`
	Blocked []YAMLCoord       `yaml:"blocked,omitempty"`
	Crates  []YAMLCoord       `yaml:"crates,omitempty"`
}

// YAMLCoord represents a cell position in YAML format.
type YAMLCoord struct {
	R int `yaml:"r"`
	C int `yaml:"c"`
}

// Level represents a parsed but not yet validated level.
type Level struct {
	ID      string
	Name    string
	Colors  int
	Moves   int
	Target  int
	Map     []string
	Symbols map[rune]core.CellType
	Size    int
	Blocked []core.Coord
	Crates  []core.Coord
}

// ParseYAML parses a YAML level file.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	level := Level{
		ID:     yl.ID,
		Name:   yl.Name,
		Colors: yl.Colors,
		Moves:  yl.Moves,
		Target: yl.Target,
		Map:    yl.Map,
		Size:   yl.Size,
	}

	if len(yl.Symbols) > 0 {
		level.Symbols = make(map[rune]core.CellType, len(yl.Symbols))
		for sym, name := range yl.Symbols {
			runes := []rune(sym)
			if len(runes) != 1 {
				return Level{}, fmt.Errorf("symbol %q must be a single character", sym)
			}
			cell, ok := core.ParseCellType(name)
			if !ok {
				return Level{}, fmt.Errorf("symbol %q: unknown cell type %q", sym, name)
			}
			level.Symbols[runes[0]] = cell
		}
	}

	for _, c := range yl.Blocked {
		level.Blocked = append(level.Blocked, core.At(c.R, c.C))
	}
	for _, c := range yl.Crates {
		level.Crates = append(level.Crates, core.At(c.R, c.C))
	}

	return level, nil
}

// MarshalYAML encodes a level back into the file format.
func MarshalYAML(l Level) ([]byte, error) {
	yl := YAMLLevel{
		ID:     l.ID,
		Name:   l.Name,
		Colors: l.Colors,
		Moves:  l.Moves,
		Target: l.Target,
		Map:    l.Map,
		Size:   l.Size,
	}
	if len(l.Symbols) > 0 {
		yl.Symbols = make(map[string]string, len(l.Symbols))
		for sym, cell := range l.Symbols {
			yl.Symbols[string(sym)] = cell.String()
		}
	}
	for _, c := range l.Blocked {
		yl.Blocked = append(yl.Blocked, YAMLCoord{R: c.R, C: c.C})
	}
	for _, c := range l.Crates {
		yl.Crates = append(yl.Crates, YAMLCoord{R: c.R, C: c.C})
	}
	return yaml.Marshal(yl)
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}

// Package levels provides level loading functionality for Match-3.
// This package depends on core but core does not depend on levels.
package levels

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/vovakirdan/tui-match3/internal/games/match3/core"
	"github.com/vovakirdan/tui-match3/internal/games/match3/levels/formats"
)

//go:embed campaign/*.yaml
var campaignFS embed.FS

// ErrNotFound is returned by LoadByID for an unknown level ID.
var ErrNotFound = errors.New("levels: level not found")

// Level represents a complete level definition.
type Level struct {
	ID       string
	Name     string
	Moves    int // Move budget; 0 means unlimited
	Target   int // Score needed to clear; 0 means no target
	Config   core.LevelConfig
	FilePath string
}

// NewBoard builds a settled board for this level.
func (l *Level) NewBoard(src core.Source) (*core.Board, error) {
	b, err := core.NewBoard(l.Config, src)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", l.ID, err)
	}
	return b, nil
}

// Map renders the level's obstacle layout as text rows.
func (l *Level) Map() []string {
	return FormatMap(Layout{Size: l.Config.Size, Blocked: l.Config.Blocked, Crates: l.Config.Crates})
}

// FileError pairs a level file with the reason it failed to load.
type FileError struct {
	Path string
	Err  error
}

func (e FileError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e FileError) Unwrap() error {
	return e.Err
}

// Loader handles loading levels from a file tree.
type Loader struct {
	fsys fs.FS
	root string
}

// NewLoader creates a loader for a directory on disk.
func NewLoader(root string) *Loader {
	return &Loader{fsys: os.DirFS(root), root: root}
}

// Campaign returns a loader over the built-in level pack.
func Campaign() *Loader {
	sub, err := fs.Sub(campaignFS, "campaign")
	if err != nil {
		panic(err) // embedded path is fixed at compile time
	}
	return &Loader{fsys: sub, root: "campaign"}
}

// Root returns the directory the loader reads from.
func (l *Loader) Root() string {
	return l.root
}

// LoadAll recursively scans and loads all level files, skipping files that
// fail to parse or validate. Returns levels sorted by ID.
func (l *Loader) LoadAll() ([]Level, error) {
	levels, _, err := l.scan()
	return levels, err
}

// Check loads every level file and reports each one that fails, plus
// duplicate IDs.
func (l *Loader) Check() ([]Level, []FileError, error) {
	levels, problems, err := l.scan()
	if err != nil {
		return nil, nil, err
	}

	seen := make(map[string]string)
	for _, lvl := range levels {
		if prev, ok := seen[lvl.ID]; ok {
			problems = append(problems, FileError{
				Path: lvl.FilePath,
				Err:  ValidationError{Code: "DUPLICATE_ID", Message: fmt.Sprintf("id %q already used by %s", lvl.ID, prev)},
			})
			continue
		}
		seen[lvl.ID] = lvl.FilePath
	}
	return levels, problems, nil
}

func (l *Loader) scan() ([]Level, []FileError, error) {
	var levels []Level
	var problems []FileError

	err := fs.WalkDir(l.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(path.Ext(p))
		if !isSupportedExtension(ext) {
			return nil
		}

		level, err := l.LoadFile(p)
		if err != nil {
			problems = append(problems, FileError{Path: p, Err: err})
			return nil
		}

		levels = append(levels, level)
		return nil
	})

	if err != nil {
		return nil, nil, fmt.Errorf("walking directory %s: %w", l.root, err)
	}

	// Sort by ID for determinism
	sort.SliceStable(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})

	return levels, problems, nil
}

// LoadFile loads a single level file. The path is relative to the loader root.
func (l *Loader) LoadFile(p string) (Level, error) {
	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", p, err)
	}

	level, err := Parse(data, path.Ext(p))
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", p, err)
	}
	level.FilePath = path.Join(l.root, p)
	return level, nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}

	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}

	return Level{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// ListIDs returns all level IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(levels))
	for i, lvl := range levels {
		ids[i] = lvl.ID
	}
	return ids, nil
}

// Parse decodes and validates level data in the format given by ext.
func Parse(data []byte, ext string) (Level, error) {
	parsed, err := parseByExtension(data, strings.ToLower(ext))
	if err != nil {
		return Level{}, err
	}
	return build(parsed)
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

// parseByExtension routes to the correct parser.
func parseByExtension(data []byte, ext string) (formats.Level, error) {
	switch ext {
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	default:
		return formats.Level{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}

// YAML encodes the level in the file format, with its layout as a map.
func (l *Level) YAML() ([]byte, error) {
	return formats.MarshalYAML(formats.Level{
		ID:     l.ID,
		Name:   l.Name,
		Colors: l.Config.Colors,
		Moves:  l.Moves,
		Target: l.Target,
		Map:    l.Map(),
	})
}

// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, so hosts (TUI, SSH, CLI)
// can list and start modes without importing each one by name.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-match3/internal/core"
)

// Game is the interface every playable mode implements.
// Games contain pure logic with no Bubble Tea dependency; the platform
// handles input mapping, timing and terminal output.
type Game interface {
	// ID returns a unique identifier (e.g. "match3", "match3_endless").
	// Used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or restarts the game.
	// The RuntimeConfig provides screen size, RNG seed and start level.
	Reset(cfg core.RuntimeConfig)

	// Step advances the game by one tick with the actions collected since
	// the previous tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into the pre-cleared screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}

// Describer is implemented by games that provide a one-line description
// for menus and `--help` output.
type Describer interface {
	Description() string
}

// Resizer is implemented by games that can adapt to a new screen size
// without a restart. Hosts fall back to Reset for other games.
type Resizer interface {
	Resize(width, height int)
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID          string
	Title       string
	Description string
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	mu    sync.RWMutex
	games = make(map[string]entry)
)

type entry struct {
	factory Factory
	info    GameInfo
}

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := games[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	// Read metadata from a throwaway instance
	g := f()
	info := GameInfo{ID: id, Title: g.Title()}
	if d, ok := g.(Describer); ok {
		info.Description = d.Description()
	}
	games[id] = entry{factory: f, info: info}
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(games))
	for _, e := range games {
		result = append(result, e.info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := games[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return e.factory(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := games[id]
	return ok
}

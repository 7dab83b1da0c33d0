package levels

import (
	"fmt"

	"github.com/vovakirdan/tui-match3/internal/games/match3/core"
	"github.com/vovakirdan/tui-match3/internal/games/match3/levels/formats"
)

// ValidationError contains details about validation failure.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// MaxSize caps the board dimension a level file may ask for.
const MaxSize = 32

// build validates a parsed file and turns it into a Level.
func build(parsed formats.Level) (Level, error) {
	if parsed.ID == "" {
		return Level{}, ValidationError{Code: "MISSING_ID", Message: "level has no id"}
	}
	if parsed.Colors < core.MinColors {
		return Level{}, ValidationError{
			Code:    "TOO_FEW_COLORS",
			Message: fmt.Sprintf("colors is %d, need at least %d", parsed.Colors, core.MinColors),
		}
	}
	if parsed.Moves < 0 || parsed.Target < 0 {
		return Level{}, ValidationError{Code: "NEGATIVE_GOAL", Message: "moves and target must not be negative"}
	}

	layout, err := layoutOf(parsed)
	if err != nil {
		return Level{}, err
	}
	if layout.Size > MaxSize {
		return Level{}, ValidationError{
			Code:    "TOO_LARGE",
			Message: fmt.Sprintf("size %d exceeds %d", layout.Size, MaxSize),
		}
	}
	if err := checkCoords(layout); err != nil {
		return Level{}, err
	}

	name := parsed.Name
	if name == "" {
		name = parsed.ID
	}

	return Level{
		ID:     parsed.ID,
		Name:   name,
		Moves:  parsed.Moves,
		Target: parsed.Target,
		Config: core.LevelConfig{
			Size:    layout.Size,
			Colors:  parsed.Colors,
			Blocked: layout.Blocked,
			Crates:  layout.Crates,
		},
	}, nil
}

// layoutOf reads the obstacle layout from the map or the structured lists.
func layoutOf(parsed formats.Level) (Layout, error) {
	if len(parsed.Map) == 0 {
		if parsed.Size < 1 {
			return Layout{}, ValidationError{Code: "NO_BOARD", Message: "level needs a map or a size"}
		}
		return Layout{Size: parsed.Size, Blocked: parsed.Blocked, Crates: parsed.Crates}, nil
	}

	if len(parsed.Blocked) > 0 || len(parsed.Crates) > 0 {
		return Layout{}, ValidationError{
			Code:    "MIXED_LAYOUT",
			Message: "blocked/crates lists cannot be combined with a map",
		}
	}

	layout, err := ParseMap(parsed.Map, DefaultSymbols().With(parsed.Symbols))
	if err != nil {
		return Layout{}, fmt.Errorf("map: %w", err)
	}
	if parsed.Size != 0 && parsed.Size != layout.Size {
		return Layout{}, ValidationError{
			Code:    "SIZE_MISMATCH",
			Message: fmt.Sprintf("size is %d but the map is %dx%d", parsed.Size, layout.Size, layout.Size),
		}
	}
	return layout, nil
}

// checkCoords rejects structured obstacles that fall off the board.
func checkCoords(l Layout) error {
	g := core.NewGrid(l.Size)
	for _, list := range [][]core.Coord{l.Blocked, l.Crates} {
		for _, c := range list {
			if !g.InBounds(c) {
				return ValidationError{
					Code:    "OUT_OF_BOUNDS",
					Message: fmt.Sprintf("obstacle %s is outside a %dx%d board", c, l.Size, l.Size),
				}
			}
		}
	}
	return nil
}

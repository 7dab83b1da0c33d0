// Package core is the match-3 board engine: match detection, the cascade
// resolver, boosters and move validation. It is UI-agnostic and
// deterministic for a given random Source.
package core

import (
	"fmt"
	"strings"
)

// MinRun is the shortest run of equal colors that counts as a match.
const MinRun = 3

// CellType is the obstacle layer state of a cell.
type CellType uint8

const (
	CellEmpty   CellType = iota // Open; holds a tile once the board settles
	CellBlocked                 // Permanent wall, stops tiles and gravity
	CellCrate                   // Holds no tile until broken by an adjacent clear
)

// String returns the string representation of a cell type.
func (t CellType) String() string {
	switch t {
	case CellEmpty:
		return "empty"
	case CellBlocked:
		return "blocked"
	case CellCrate:
		return "crate"
	default:
		return "unknown"
	}
}

// ParseCellType converts a string to a CellType.
// Returns CellEmpty and false if the string is not recognized.
func ParseCellType(s string) (CellType, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "empty", "open":
		return CellEmpty, true
	case "blocked", "block", "wall":
		return CellBlocked, true
	case "crate", "box":
		return CellCrate, true
	default:
		return CellEmpty, false
	}
}

// BoosterKind identifies a special tile.
type BoosterKind uint8

const (
	BoosterNone BoosterKind = iota
	BoosterLine             // Clears its whole row and column
	BoosterArea             // Clears the 3x3 block around it
)

// String returns the string representation of a booster kind.
func (k BoosterKind) String() string {
	switch k {
	case BoosterNone:
		return "none"
	case BoosterLine:
		return "line"
	case BoosterArea:
		return "area"
	default:
		return "unknown"
	}
}

// TileKind tags the content of a Tile.
type TileKind uint8

const (
	TileAbsent TileKind = iota
	TileColor
	TileBooster
)

// Tile is the content of a cell: nothing, a color, or a booster.
// The zero value is an absent tile.
type Tile struct {
	Kind    TileKind
	Color   int         // Valid only when Kind is TileColor
	Booster BoosterKind // Valid only when Kind is TileBooster
}

// NoTile returns an absent tile.
func NoTile() Tile {
	return Tile{}
}

// ColorTile returns a tile holding color n.
func ColorTile(n int) Tile {
	return Tile{Kind: TileColor, Color: n}
}

// BoosterTile returns a booster tile of the given kind.
func BoosterTile(k BoosterKind) Tile {
	return Tile{Kind: TileBooster, Booster: k}
}

// Present reports whether the tile is a color or a booster.
func (t Tile) Present() bool {
	return t.Kind != TileAbsent
}

// IsColor reports whether the tile holds a color.
func (t Tile) IsColor() bool {
	return t.Kind == TileColor
}

// IsBooster reports whether the tile is a booster.
func (t Tile) IsBooster() bool {
	return t.Kind == TileBooster
}

// SameColor reports whether both tiles hold the same color.
// Boosters and absent tiles never match anything.
func (t Tile) SameColor(other Tile) bool {
	return t.Kind == TileColor && other.Kind == TileColor && t.Color == other.Color
}

// String returns a short representation used in test failures and logs.
func (t Tile) String() string {
	switch t.Kind {
	case TileColor:
		return fmt.Sprintf("color(%d)", t.Color)
	case TileBooster:
		return fmt.Sprintf("booster(%s)", t.Booster)
	default:
		return "absent"
	}
}

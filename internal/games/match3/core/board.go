package core

import (
	"errors"
	"fmt"
)

// MinColors is the smallest palette a board accepts. With fewer colors
// every refill matches again and the cascade never ends.
const MinColors = 3

// seedAttempts bounds how often seeding re-rolls a tile that would
// complete a run.
const seedAttempts = 20

var (
	// ErrInvalidSize is returned when the board dimension is below 1.
	ErrInvalidSize = errors.New("match3: invalid board size")
	// ErrTooFewColors is returned when the palette is below MinColors.
	ErrTooFewColors = errors.New("match3: too few colors")
)

// LevelConfig describes a board to build: its size, palette and obstacles.
type LevelConfig struct {
	Size    int
	Colors  int
	Blocked []Coord
	Crates  []Coord
}

// Validate checks the size and palette.
func (c LevelConfig) Validate() error {
	if c.Size < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidSize, c.Size)
	}
	if c.Colors < MinColors {
		return fmt.Errorf("%w: %d (need at least %d)", ErrTooFewColors, c.Colors, MinColors)
	}
	return nil
}

// Board is a grid plus the palette and random source used to fill it.
// All engine mutations go through Board methods.
type Board struct {
	grid   *Grid
	colors int
	src    Source
}

// NewBoard builds a board from cfg, seeds it with tiles and settles it.
// Obstacles outside the board are ignored; a coordinate listed as both
// blocked and crate becomes a crate. A nil src is seeded from the clock.
func NewBoard(cfg LevelConfig, src Source) (*Board, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if src == nil {
		src = NewSource(0)
	}

	g := NewGrid(cfg.Size)
	for _, c := range cfg.Blocked {
		g.SetCell(c, CellBlocked)
	}
	for _, c := range cfg.Crates {
		g.SetCell(c, CellCrate)
	}

	b := &Board{grid: g, colors: cfg.Colors, src: src}
	b.seed()
	b.Settle()
	return b, nil
}

// NewBoardFromGrid wraps an existing grid. The grid is used as is: it is
// not copied, seeded or settled.
func NewBoardFromGrid(g *Grid, colors int, src Source) (*Board, error) {
	if g == nil || g.Size() < 1 {
		return nil, ErrInvalidSize
	}
	if colors < MinColors {
		return nil, fmt.Errorf("%w: %d (need at least %d)", ErrTooFewColors, colors, MinColors)
	}
	if src == nil {
		src = NewSource(0)
	}
	return &Board{grid: g, colors: colors, src: src}, nil
}

// seed fills every open cell, avoiding tiles that would complete a run
// with the two cells to the left or the two cells above.
func (b *Board) seed() {
	size := b.grid.Size()
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			p := At(r, c)
			if b.grid.Cell(p) != CellEmpty {
				continue
			}
			b.grid.SetTile(p, b.seedTile(p))
		}
	}
}

func (b *Board) seedTile(p Coord) Tile {
	var t Tile
	for i := 0; i < seedAttempts; i++ {
		t = ColorTile(b.src.Intn(b.colors))
		if !b.completesRun(p, t, DirLeft) && !b.completesRun(p, t, DirUp) {
			break
		}
	}
	return t
}

func (b *Board) completesRun(p Coord, t Tile, d Dir) bool {
	one := p.Step(d)
	two := one.Step(d)
	return b.grid.IsOpen(one) && b.grid.IsOpen(two) &&
		t.SameColor(b.grid.Tile(one)) && t.SameColor(b.grid.Tile(two))
}

// Reseed throws away every tile, seeds the board again and settles it.
// Obstacles are kept. Used when the board has no moves left.
func (b *Board) Reseed() Resolution {
	for _, c := range b.grid.AllCoords() {
		b.grid.SetTile(c, NoTile())
	}
	b.seed()
	return b.Settle()
}

// Size returns the board dimension.
func (b *Board) Size() int { return b.grid.Size() }

// Colors returns the palette size.
func (b *Board) Colors() int { return b.colors }

// Cell returns the obstacle state at c.
func (b *Board) Cell(c Coord) CellType { return b.grid.Cell(c) }

// Tile returns the tile at c.
func (b *Board) Tile(c Coord) Tile { return b.grid.Tile(c) }

// InBounds returns true if c is on the board.
func (b *Board) InBounds(c Coord) bool { return b.grid.InBounds(c) }

// Grid returns a copy of the current grid.
func (b *Board) Grid() *Grid { return b.grid.Clone() }

// Snapshot is a plain copy of the board for renderers and the wire.
type Snapshot struct {
	Size   int          `json:"size"`
	Colors int          `json:"colors"`
	Cells  [][]CellType `json:"cells"`
	Tiles  [][]Tile     `json:"tiles"`
}

// Snapshot copies the board into row slices.
func (b *Board) Snapshot() Snapshot {
	size := b.grid.Size()
	s := Snapshot{
		Size:   size,
		Colors: b.colors,
		Cells:  make([][]CellType, size),
		Tiles:  make([][]Tile, size),
	}
	for r := 0; r < size; r++ {
		s.Cells[r] = make([]CellType, size)
		s.Tiles[r] = make([]Tile, size)
		for c := 0; c < size; c++ {
			s.Cells[r][c] = b.grid.Cell(At(r, c))
			s.Tiles[r][c] = b.grid.Tile(At(r, c))
		}
	}
	return s
}

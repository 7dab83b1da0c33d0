package core

// Move is a swap gesture. To is the landing cell: the cell the player
// dragged the From tile into.
type Move struct {
	From Coord
	To   Coord
}

// String returns a string representation of the move.
func (m Move) String() string {
	return m.From.String() + "->" + m.To.String()
}

// Outcome describes what ApplyMove did.
type Outcome struct {
	Applied    bool        // False means the board is untouched
	Move       Move        // The move as requested
	Created    BoosterKind // Booster placed at the landing cell, if any
	Activated  BoosterKind // Booster fired by the swap, if any
	BoosterAt  Coord       // Where Created was placed or Activated fired
	Resolution Resolution  // Every wave the move caused
}

// CanSwap reports whether both cells are on the board and open.
func (b *Board) CanSwap(a, c Coord) bool {
	return b.grid.IsOpen(a) && b.grid.IsOpen(c)
}

// WouldCreateMatch reports whether swapping a and c would leave a run of
// MinRun or more through either endpoint. The board is read through a
// swapped view and never modified or copied.
func (b *Board) WouldCreateMatch(a, c Coord) bool {
	if !b.CanSwap(a, c) {
		return false
	}
	v := swappedView{g: b.grid, a: a, b: c}
	for _, p := range [2]Coord{a, c} {
		if HorizontalRun(v, p) >= MinRun || VerticalRun(v, p) >= MinRun {
			return true
		}
	}
	return false
}

// Legal reports whether ApplyMove would accept the swap, without
// touching the board.
func (b *Board) Legal(from, to Coord) bool {
	if !b.grid.InBounds(from) || !b.grid.InBounds(to) || !from.Adjacent(to) {
		return false
	}
	if b.grid.Tile(from).IsBooster() || b.grid.Tile(to).IsBooster() {
		return true
	}
	return b.WouldCreateMatch(from, to)
}

// ApplyMove performs a player swap from -> to and settles the board.
//
// Off-board or non-adjacent pairs are rejected. A swap involving a booster
// skips the open-cell check and fires the booster wherever it lands. Any
// other swap must pass CanSwap and produce a match, otherwise it is undone.
// A matching swap may turn the landing cell into a booster before the
// cascade runs.
func (b *Board) ApplyMove(from, to Coord) Outcome {
	out := Outcome{Move: Move{From: from, To: to}}
	if !b.grid.InBounds(from) || !b.grid.InBounds(to) || !from.Adjacent(to) {
		return out
	}

	fromTile, toTile := b.grid.Tile(from), b.grid.Tile(to)
	if fromTile.IsBooster() || toTile.IsBooster() {
		b.grid.Swap(from, to)
		// The dragged booster wins when both ends hold one
		at, kind := to, fromTile.Booster
		if !fromTile.IsBooster() {
			at, kind = from, toTile.Booster
		}
		res, ok := b.ActivateBooster(at)
		out.Applied = ok
		out.Activated = kind
		out.BoosterAt = at
		out.Resolution = res
		return out
	}

	if !b.CanSwap(from, to) {
		return out
	}

	b.grid.Swap(from, to)
	matches := FindMatches(b.grid)
	if matches.Len() == 0 {
		b.grid.Swap(from, to)
		return out
	}

	if kind := BoosterFor(HorizontalRun(b.grid, to), VerticalRun(b.grid, to)); kind != BoosterNone {
		b.grid.SetTile(to, BoosterTile(kind))
		matches.Remove(to)
		out.Created = kind
		out.BoosterAt = to
	}

	out.Applied = true
	out.Resolution = b.resolve(matches)
	return out
}

// Moves returns every adjacent swap that would create a match, scanning
// row-major and trying the right neighbor before the one below.
func (b *Board) Moves() []Move {
	var moves []Move
	size := b.grid.Size()
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			p := At(r, c)
			for _, d := range [2]Dir{DirRight, DirDown} {
				q := p.Step(d)
				if b.WouldCreateMatch(p, q) {
					moves = append(moves, Move{From: p, To: q})
				}
			}
		}
	}
	return moves
}

// Hint returns a playable move. Matching swaps come first; failing that,
// any booster with an on-board neighbor can be fired.
func (b *Board) Hint() (Move, bool) {
	if moves := b.Moves(); len(moves) > 0 {
		return moves[0], true
	}
	for _, p := range b.grid.Boosters() {
		for _, n := range p.Neighbors() {
			if b.grid.InBounds(n) {
				return Move{From: p, To: n}, true
			}
		}
	}
	return Move{}, false
}

// HasMoves reports whether any move would be accepted by ApplyMove.
func (b *Board) HasMoves() bool {
	_, ok := b.Hint()
	return ok
}

package match3

import (
	"fmt"
	"strings"
	"unicode/utf8"

	platformcore "github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/games/match3/core"
)

const (
	cellWidth = 3 // Each board cell is drawn as three columns
	hudHeight = 3
	footer    = 2 // Message line and key help
	helpText  = "arrows move  space select  x fire  ? hint  p pause  q quit"
)

// layoutSize returns the minimum screen size for a board of the given size.
func layoutSize(size int) (w, h int) {
	w = platformcore.Max(size*cellWidth+2, len(helpText))
	h = hudHeight + size + 2 + footer
	return w, h
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	if g.loadErr != nil {
		g.renderError(dst)
		return
	}
	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}
	if g.board == nil {
		return
	}

	size := g.board.Size()
	boardW := size*cellWidth + 2
	boardH := size + 2
	w, h := layoutSize(size)
	area := platformcore.Centered(g.screenW, g.screenH, w, h)
	boardX := area.X + (w-boardW)/2
	boardY := area.Y + hudHeight

	g.renderHUD(dst, area)
	dst.DrawBox(platformcore.NewRect(boardX, boardY, boardW, boardH), platformcore.ColorGray)
	g.renderBoard(dst, boardX+1, boardY+1)
	g.renderFooter(dst, area, boardY+boardH)
	g.renderOverlay(dst, boardY+boardH/2)
}

// renderError shows why the game could not start.
func (g *Game) renderError(dst *platformcore.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y-1, "Could not start "+g.Title())
	dst.DrawTextCentered(y, g.loadErr.Error())
	dst.DrawTextCentered(y+2, "Press Q to quit")
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *platformcore.Screen) {
	w, h := layoutSize(g.board.Size())
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d, have %dx%d", w, h, g.screenW, g.screenH))
}

// renderHUD draws title, score and the level goal.
func (g *Game) renderHUD(dst *platformcore.Screen, area platformcore.Rect) {
	title := g.Title()
	if g.mode == ModeCampaign && g.levelIndex < len(g.levels) {
		lvl := g.levels[g.levelIndex]
		title = fmt.Sprintf("Level %d/%d: %s", g.levelIndex+1, len(g.levels), lvl.Name)
	}
	dst.DrawTextColor(area.X+(area.W-textWidth(title))/2, area.Y, title, platformcore.ColorCyan)

	dst.DrawText(area.X, area.Y+1, fmt.Sprintf("Score: %d", g.score))

	moves := "Moves: ∞"
	if g.movesLeft >= 0 {
		moves = fmt.Sprintf("Moves: %d", g.movesLeft)
	}
	movesColor := platformcore.ColorDefault
	if g.movesLeft >= 0 && g.movesLeft <= 3 {
		movesColor = platformcore.ColorRed
	}
	dst.DrawTextColor(area.Right()-textWidth(moves), area.Y+1, moves, movesColor)

	if g.target > 0 {
		g.renderProgress(dst, area.X, area.Y+2, area.W)
	}
}

// renderProgress draws the level score against its target.
func (g *Game) renderProgress(dst *platformcore.Screen, x, y, width int) {
	label := fmt.Sprintf(" %d/%d", g.levelScore, g.target)
	barW := width - textWidth(label)
	if barW < 1 {
		return
	}
	filled := platformcore.Clamp(g.levelScore*barW/g.target, 0, barW)
	dst.DrawTextColor(x, y, strings.Repeat("█", filled), platformcore.ColorGreen)
	dst.DrawTextColor(x+filled, y, strings.Repeat("░", barW-filled), platformcore.ColorGray)
	dst.DrawText(x+barW, y, label)
}

// renderBoard draws every cell with cursor, selection, hint and preview marks.
func (g *Game) renderBoard(dst *platformcore.Screen, x0, y0 int) {
	size := g.board.Size()

	flash := core.NewCoordSet(size)
	if g.flashTicks > 0 {
		for _, c := range g.flash {
			flash.Add(c)
		}
	}

	preview := core.NewCoordSet(size)
	for _, c := range g.board.BoosterClears(g.cursor) {
		preview.Add(c)
	}

	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			pos := core.At(r, c)
			x := x0 + c*cellWidth
			y := y0 + r

			glyph := tileCell(g.board.Cell(pos), g.board.Tile(pos))
			glyph.Bold = glyph.Bold || flash.Has(pos)

			left := platformcore.Cell{Rune: ' '}
			right := platformcore.Cell{Rune: ' '}
			switch {
			case g.selected && pos == g.selection:
				left = platformcore.Cell{Rune: '[', Color: platformcore.ColorWhite, Bold: true}
				right = platformcore.Cell{Rune: ']', Color: platformcore.ColorWhite, Bold: true}
			case g.showHint && (pos == g.hint.From || pos == g.hint.To):
				left = platformcore.Cell{Rune: '>', Color: platformcore.ColorYellow, Bold: true}
				right = platformcore.Cell{Rune: '<', Color: platformcore.ColorYellow, Bold: true}
			case preview.Has(pos):
				left = platformcore.Cell{Rune: '·', Color: platformcore.ColorMagenta}
				right = platformcore.Cell{Rune: '·', Color: platformcore.ColorMagenta}
			}
			if g.board.Cell(pos) == core.CellBlocked {
				left, right = glyph, glyph
			}

			if pos == g.cursor {
				left.Reverse, glyph.Reverse, right.Reverse = true, true, true
			}
			dst.SetCell(x, y, left)
			dst.SetCell(x+1, y, glyph)
			dst.SetCell(x+2, y, right)
		}
	}
}

// tileCell returns the glyph for one board cell.
func tileCell(cell core.CellType, t core.Tile) platformcore.Cell {
	switch cell {
	case core.CellBlocked:
		return platformcore.Cell{Rune: '░', Color: platformcore.ColorGray}
	case core.CellCrate:
		return platformcore.Cell{Rune: '▣', Color: platformcore.ColorOrange}
	}

	switch t.Kind {
	case core.TileColor:
		return platformcore.Cell{Rune: '●', Color: platformcore.TileColor(t.Color)}
	case core.TileBooster:
		if t.Booster == core.BoosterArea {
			return platformcore.Cell{Rune: '✹', Color: platformcore.ColorWhite, Bold: true}
		}
		return platformcore.Cell{Rune: '╋', Color: platformcore.ColorWhite, Bold: true}
	default:
		return platformcore.Cell{Rune: '·', Color: platformcore.ColorGray}
	}
}

// renderFooter draws the status message and key help.
func (g *Game) renderFooter(dst *platformcore.Screen, area platformcore.Rect, y int) {
	if g.message != "" {
		dst.DrawTextColor(area.X+(area.W-textWidth(g.message))/2, y, g.message, platformcore.ColorYellow)
	}
	dst.DrawTextColor(area.X+(area.W-len(helpText))/2, y+1, helpText, platformcore.ColorGray)
}

// renderOverlay draws a banner over the board for non-playing states.
func (g *Game) renderOverlay(dst *platformcore.Screen, y int) {
	var lines []string
	switch {
	case g.won:
		lines = []string{"ALL LEVELS CLEARED!", fmt.Sprintf("Final score: %d", g.score), "R restart  Q quit"}
	case g.gameOver:
		lines = []string{"GAME OVER", fmt.Sprintf("Score: %d", g.score), "R restart  Q quit"}
	case g.levelCleared:
		lines = []string{"LEVEL CLEARED!", fmt.Sprintf("+%d in %d moves", g.levelScore, g.movesMade)}
	case g.paused:
		lines = []string{"PAUSED", "P to resume"}
	default:
		return
	}

	width := 0
	for _, l := range lines {
		width = platformcore.Max(width, textWidth(l))
	}
	box := platformcore.NewRect((g.screenW-width-4)/2, y-len(lines)/2-1, width+4, len(lines)+2)
	for yy := box.Y; yy < box.Bottom(); yy++ {
		for xx := box.X; xx < box.Right(); xx++ {
			dst.Set(xx, yy, ' ')
		}
	}
	dst.DrawBox(box, platformcore.ColorCyan)
	for i, l := range lines {
		dst.DrawTextColor(box.X+(box.W-textWidth(l))/2, box.Y+1+i, l, platformcore.ColorWhite)
	}
}

func textWidth(s string) int {
	return utf8.RuneCountInString(s)
}

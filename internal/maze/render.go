package maze

import (
	"fmt"

	"github.com/vovakirdan/maze-explorer/internal/core"
)

// Layout of the rendered view.
const (
	hudHeight  = 2 // HUD line and separator
	cellWidth  = 2 // Characters per grid cell
	footerRows = 2 // Banner and instructions

	boardW = GridSize*cellWidth + 2
	boardH = GridSize + 2
)

const instructions = "Collect coins, avoid enemies, reach the goal!"

var minScreenW, minScreenH = screenLimits()

// MinScreenSize returns the smallest screen on which the HUD, the board, the
// footer and the end-of-run overlay all fit unclipped.
func MinScreenSize() (w, h int) {
	return minScreenW, minScreenH
}

// screenLimits measures every text the view can show at its widest.
func screenLimits() (w, h int) {
	maxScore := 0
	w = max(boardW, len(instructions))
	for _, def := range Levels() {
		maxScore += len(def.Coins) * CoinValue
		w = max(w, len(hudLeft(MaxLevel, def.Name))+1+len(hudRight(maxScore)))
	}
	w = max(w, len(levelClearedMessage(MaxLevel-1, MaxLevel)))
	for _, headline := range []string{msgCaught, msgWon} {
		ow, _ := overlaySize(overlayLines(headline, maxScore))
		w = max(w, ow)
	}

	_, oh := overlaySize(overlayLines(msgWon, maxScore))
	h = max(hudHeight+boardH+footerRows, oh)
	return w, h
}

func hudLeft(level int, name string) string {
	return fmt.Sprintf(" Level: %d/%d  %s", level, MaxLevel, name)
}

func hudRight(score int) string {
	return fmt.Sprintf("Score: %d ", score)
}

func overlayLines(headline string, score int) []string {
	return []string{
		headline,
		fmt.Sprintf("Your score: %d", score),
		"Restart? (y/n)",
	}
}

// overlaySize returns the box size for the overlay lines: two columns of
// padding on each side, a blank row between lines.
func overlaySize(lines []string) (w, h int) {
	for _, l := range lines {
		w = max(w, len([]rune(l)))
	}
	return w + 4, len(lines)*2 + 1
}

// glyph is how one kind of grid content is drawn.
type glyph struct {
	r     rune
	color core.Color
}

var (
	glyphWall   = glyph{'█', core.ColorWall}
	glyphCoin   = glyph{'o', core.ColorCoin}
	glyphEnemy  = glyph{'E', core.ColorEnemy}
	glyphGoal   = glyph{'G', core.ColorGoal}
	glyphPlayer = glyph{'@', core.ColorPlayer}
	glyphFloor  = glyph{'·', core.ColorFloor}
)

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	minW, minH := MinScreenSize()
	if dst.Width() < minW || dst.Height() < minH {
		dst.DrawTextCentered(dst.Height()/2, "Window too small", core.ColorYellow)
		dst.DrawTextCentered(dst.Height()/2+1, "Resize to continue", core.ColorGray)
		return
	}

	g.renderHUD(dst)

	boardX := (dst.Width() - boardW) / 2
	board := core.NewRect(boardX, hudHeight, boardW, boardH)
	dst.DrawBox(board, core.ColorWall)
	inner := board.Inset(1)
	g.renderBoard(dst, inner.X, inner.Y)

	// Footer
	footerY := board.Bottom()
	if msg := g.message; msg != "" && g.phase == PhasePlaying {
		dst.DrawTextCentered(footerY, msg, core.ColorBrightGreen)
	}
	dst.DrawTextCentered(footerY+1, instructions, core.ColorGray)

	switch g.phase {
	case PhaseCaught:
		g.renderOverlay(dst, g.message, core.ColorBrightRed)
	case PhaseWon:
		g.renderOverlay(dst, g.message, core.ColorBrightGreen)
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	s := g.state
	left := hudLeft(s.Level(), s.Definition().Name)
	right := hudRight(s.Score())

	dst.DrawTextColor(0, 0, left, core.ColorBrightWhite)
	dst.DrawTextColor(dst.Width()-len(right), 0, right, core.ColorBrightYellow)

	for x := range dst.Width() {
		dst.SetColor(x, 1, '─', core.ColorGray)
	}
}

// renderBoard draws the grid contents with (ox, oy) as the top-left cell.
// Later layers overwrite earlier ones: walls, coins, enemies, goal, player.
func (g *Game) renderBoard(dst *core.Screen, ox, oy int) {
	s := g.state
	put := func(c Cell, gl glyph) {
		dst.SetColor(ox+c.X*cellWidth, oy+c.Y, gl.r, gl.color)
		dst.SetColor(ox+c.X*cellWidth+1, oy+c.Y, ' ', core.ColorDefault)
	}

	for y := range GridSize {
		for x := range GridSize {
			put(C(x, y), glyphFloor)
		}
	}
	for _, w := range s.walls.items {
		// Walls fill both columns of the cell
		dst.SetColor(ox+w.X*cellWidth, oy+w.Y, glyphWall.r, glyphWall.color)
		dst.SetColor(ox+w.X*cellWidth+1, oy+w.Y, glyphWall.r, glyphWall.color)
	}
	for _, c := range s.coins.items {
		put(c, glyphCoin)
	}
	for _, e := range s.enemies {
		put(e, glyphEnemy)
	}
	put(s.Goal(), glyphGoal)
	put(s.Player(), glyphPlayer)
}

// renderOverlay draws the centered end-of-run prompt.
func (g *Game) renderOverlay(dst *core.Screen, headline string, color core.Color) {
	lines := overlayLines(headline, g.state.Score())
	boxW, boxH := overlaySize(lines)
	box := core.Centered(dst.Width(), dst.Height(), boxW, boxH)

	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, color)

	dst.DrawTextCentered(box.Y+1, lines[0], color)
	dst.DrawTextCentered(box.Y+3, lines[1], core.ColorBrightYellow)
	dst.DrawTextCentered(box.Y+5, lines[2], core.ColorBrightWhite)
}

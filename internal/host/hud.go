package host

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/rangeshot/rangeshot/internal/handler"
)

const (
	crosshairArm = 8
	menuWidth    = 360
	lineHeight   = 16
)

var (
	crosshairColor = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	menuBackdrop   = color.RGBA{A: 0xb0}
)

func (g *Game) drawHUD(screen *ebiten.Image) {
	cx, cy := float32(g.width)/2, float32(g.height)/2
	if g.crosshairVisible {
		vector.StrokeLine(screen, cx-crosshairArm, cy, cx+crosshairArm, cy, 2, crosshairColor, false)
		vector.StrokeLine(screen, cx, cy-crosshairArm, cx, cy+crosshairArm, 2, crosshairColor, false)
	}
	if g.exitHintVisible {
		ebitenutil.DebugPrintAt(screen, "Press Esc to exit", 10, 10)
	}
	if !g.menuVisible {
		return
	}

	lines := menuLines(g.board)
	if g.notice != "" {
		lines = append(lines, "", g.notice)
	}
	h := float32(len(lines)*lineHeight + 2*lineHeight)
	x, y := cx-menuWidth/2, cy-h/2
	vector.FillRect(screen, x, y, menuWidth, h, menuBackdrop, false)
	for i, l := range lines {
		ebitenutil.DebugPrintAt(screen, l, int(x)+lineHeight, int(y)+lineHeight*(i+1))
	}
}

// menuLines is the start menu: instructions, the last round and the
// leaderboard.
func menuLines(board *handler.Scoreboard) []string {
	lines := []string{
		"RANGESHOT",
		"",
		"Click to play",
		"WASD move, mouse aim, left click shoots",
		"Esc ends the round",
	}
	if board == nil {
		return lines
	}
	if r := board.LastRound; r != nil {
		lines = append(lines, "",
			fmt.Sprintf("Last round: %d pts (%s)", r.Score, r.Grade),
			fmt.Sprintf("  %d/%d hits, %.0f%% accuracy, %.1fs",
				r.Stats.Hits, r.Stats.Shots, r.Stats.Accuracy()*100, r.Stats.Seconds()))
	}
	switch {
	case board.Pending:
		lines = append(lines, "", "Submitting score...")
	case len(board.Top) > 0:
		lines = append(lines, "", "Top scores:")
		lines = append(lines, strings.Split(LeaderboardText(board), "\n")...)
		lines = append(lines, "", "C copies the leaderboard")
	}
	return lines
}

// LeaderboardText formats the top list one entry per line, best first.
func LeaderboardText(board *handler.Scoreboard) string {
	if board == nil || len(board.Top) == 0 {
		return "no scores yet"
	}
	var b strings.Builder
	for i, s := range board.Top {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%2d. %-16s %6d", i+1, s.PlayerName, s.Score)
	}
	return b.String()
}

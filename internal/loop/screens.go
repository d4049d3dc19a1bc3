package loop

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mhorn/skyfall/internal/draw"
	"github.com/mhorn/skyfall/internal/game"
	"github.com/mhorn/skyfall/internal/score"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("214"))

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	hudStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250"))

	hudWarnStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("203"))

	pausedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("220"))

	gameOverStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("203"))

	scoreRowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))
)

const titleArt = `
 ███  █   █ █   █ █████  ███  █     █
█     █  █   █ █  █     █   █ █     █
 ███  ██      █   ████  █████ █     █
    █ █  █    █   █     █   █ █     █
 ███  █   █   █   █     █   █ █████ █████`

// writeCentered writes a (possibly multi-line, possibly styled) block
// horizontally centered, starting at the given row.
func writeCentered(cw *draw.ChunkWriter, termWidth, row int, block string) int {
	for _, line := range strings.Split(block, "\n") {
		col := (termWidth - lipgloss.Width(line)) / 2
		if col < 1 {
			col = 1
		}
		if line != "" {
			cw.WriteAt(col, row, line)
		}
		row++
	}
	return row
}

func drawTitleScreen(cw *draw.ChunkWriter, canvas *draw.Canvas, snap game.Snapshot) {
	tw, th := canvas.TerminalWidth(), canvas.TerminalHeight()

	row := th/2 - 7
	if row < 1 {
		row = 1
	}
	row = writeCentered(cw, tw, row, titleStyle.Render(titleArt))
	row++
	row = writeCentered(cw, tw, row, subtitleStyle.Render("defend the bases — intercept everything that falls"))
	row++
	row = writeCentered(cw, tw, row, hudStyle.Render("arrows/wasd move the crosshair   1-3 or space fires"))
	row = writeCentered(cw, tw, row, hudStyle.Render("p pause   m mute   r restart   q quit"))
	row++
	writeCentered(cw, tw, row, titleStyle.Render("press SPACE to start"))

	if snap.Muted {
		cw.WriteAt(2, th, hudWarnStyle.Render("[muted]"))
	}
}

// drawHUD writes the status line above the playfield.
func drawHUD(cw *draw.ChunkWriter, canvas *draw.Canvas, snap game.Snapshot) {
	left := hudStyle.Render(fmt.Sprintf("SCORE %d", snap.Score))
	mid := hudStyle.Render(fmt.Sprintf("LEVEL %d  WAVE %d/%d", snap.Level, snap.WaveSpawn, snap.WaveQuota))

	lives := strings.Repeat("▲", snap.Lives)
	right := hudStyle.Render("LIVES " + lives)
	if snap.Lives <= 1 {
		right = hudWarnStyle.Render("LIVES " + lives)
	}
	if snap.Muted {
		right += "  " + hudWarnStyle.Render("[muted]")
	}

	tw := canvas.TerminalWidth()
	cw.WriteAt(2, 1, left)
	cw.WriteAt((tw-lipgloss.Width(mid))/2, 1, mid)

	rcol := tw - lipgloss.Width(right) - 1
	if rcol < 1 {
		rcol = 1
	}
	cw.WriteAt(rcol, 1, right)
}

func drawPauseOverlay(cw *draw.ChunkWriter, canvas *draw.Canvas) {
	tw, th := canvas.TerminalWidth(), canvas.TerminalHeight()
	msg := pausedStyle.Render("── PAUSED ──")
	writeCentered(cw, tw, th/2, msg)
	writeCentered(cw, tw, th/2+1, subtitleStyle.Render("p or space to resume"))
}

func drawGameOverScreen(cw *draw.ChunkWriter, canvas *draw.Canvas, snap game.Snapshot, store *score.Store, gameID string) {
	tw, th := canvas.TerminalWidth(), canvas.TerminalHeight()

	row := th/2 - 8
	if row < 1 {
		row = 1
	}
	row = writeCentered(cw, tw, row, gameOverStyle.Render("GAME OVER"))
	row++
	row = writeCentered(cw, tw, row, hudStyle.Render(fmt.Sprintf("final score: %d   reached level %d", snap.Score, snap.Level)))
	row++

	if store != nil {
		top := store.TopScores(gameID, 5)
		if len(top) > 0 {
			row = writeCentered(cw, tw, row, subtitleStyle.Render("── top scores ──"))
			for i, e := range top {
				line := fmt.Sprintf("%d. %-12s %6d", i+1, truncateName(e.Name, 12), e.Points)
				row = writeCentered(cw, tw, row, scoreRowStyle.Render(line))
			}
			row++
		}
	}

	writeCentered(cw, tw, row, titleStyle.Render("space to play again   q to quit"))
}

func truncateName(name string, max int) string {
	if len(name) <= max {
		return name
	}
	return name[:max-1] + "…"
}

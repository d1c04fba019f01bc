package model

import (
	"fmt"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

const (
	gridPosBlock = "■ "
	gridPosEmpty = "  "

	panelTitle = "─ Game of Life "
)

// TerminalRenderer paints the board to the terminal. It draws on the
// alternate screen buffer so each generation redraws without scrollback
// noise, and only reads the board's public query surface.
type TerminalRenderer struct {
	out       *termenv.Output
	cellStyle termenv.Style
}

// NewTerminalRenderer builds a renderer for stdout using the detected color
// profile.
func NewTerminalRenderer() *TerminalRenderer {
	return newTerminalRenderer(termenv.NewOutput(os.Stdout))
}

func newTerminalRenderer(out *termenv.Output) *TerminalRenderer {
	return &TerminalRenderer{
		out:       out,
		cellStyle: out.String().Foreground(out.Color("#5fd75f")),
	}
}

// EnterScreen switches to the alternate screen buffer and hides the cursor.
func (r *TerminalRenderer) EnterScreen() {
	r.out.AltScreen()
	r.out.HideCursor()
}

// ExitScreen restores the normal screen buffer and the cursor.
func (r *TerminalRenderer) ExitScreen() {
	r.out.ShowCursor()
	r.out.ExitAltScreen()
}

// Display redraws the frame for the current generation, centered in the
// terminal when its size is known.
func (r *TerminalRenderer) Display(b *Board, status string) {
	frame := r.Frame(b, status)
	left, top := r.margins(b.Size()*2+2, b.Size()+3)

	r.out.ClearScreen()
	r.out.MoveCursor(1, 1)
	if top > 0 {
		fmt.Fprint(r.out, strings.Repeat("\n", top))
	}
	pad := strings.Repeat(" ", left)
	for _, line := range strings.Split(strings.TrimRight(frame, "\n"), "\n") {
		fmt.Fprint(r.out, pad+line+"\n")
	}
}

// Frame renders the grid as a titled panel with the status line underneath,
// without any terminal positioning. Cells are two columns wide so the board
// reads roughly square.
func (r *TerminalRenderer) Frame(b *Board, status string) string {
	var (
		sb    strings.Builder
		size  = b.Size()
		width = size * 2
	)

	sb.WriteString("┌" + borderTitle(width) + "┐\n")
	for y := 0; y < size; y++ {
		sb.WriteString("│")
		for x := 0; x < size; x++ {
			if b.Alive(x, y) {
				sb.WriteString(r.cellStyle.Styled(gridPosBlock))
			} else {
				sb.WriteString(gridPosEmpty)
			}
		}
		sb.WriteString("│\n")
	}
	sb.WriteString("└" + strings.Repeat("─", width) + "┘\n")
	sb.WriteString(status + "\n")
	return sb.String()
}

// borderTitle embeds the panel title into the top border when it fits.
func borderTitle(width int) string {
	if n := len([]rune(panelTitle)); width >= n {
		return panelTitle + strings.Repeat("─", width-n)
	}
	return strings.Repeat("─", width)
}

// margins computes the left and top padding that centers a frame of the
// given dimensions, falling back to the top-left corner when the terminal
// size is unknown.
func (r *TerminalRenderer) margins(frameWidth, frameHeight int) (left, top int) {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0, 0
	}
	if w > frameWidth {
		left = (w - frameWidth) / 2
	}
	if h > frameHeight {
		top = (h - frameHeight) / 2
	}
	return left, top
}

// Package cli implements the text output of the solver: boards, move sequences and answers.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/janpfeifer/amphipodGo/internal/puzzle"
	. "github.com/janpfeifer/amphipodGo/internal/state"
	"github.com/muesli/termenv"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"golang.org/x/term"
)

// Color modes accepted by ColorEnabled.
const (
	ColorAuto = "auto"
	ColorOn   = "on"
	ColorOff  = "off"
)

// ColorEnabled resolves the color mode: ColorAuto enables color only if f is a terminal.
func ColorEnabled(mode string, f *os.File) (bool, error) {
	switch mode {
	case ColorAuto:
		return term.IsTerminal(int(f.Fd())), nil
	case ColorOn:
		return true, nil
	case ColorOff:
		return false, nil
	}
	return false, errors.Errorf("invalid color mode %q, valid values are %q, %q or %q", mode, ColorAuto, ColorOn, ColorOff)
}

// TerminalWidth returns the width of f if it is a terminal, or 0 otherwise.
func TerminalWidth(f *os.File) int {
	if !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}

var categoryColors = [LastCategory]lipgloss.Color{
	Amber:  lipgloss.Color("220"),
	Bronze: lipgloss.Color("172"),
	Copper: lipgloss.Color("166"),
	Desert: lipgloss.Color("180"),
}

// UI prints to a writer, optionally with colors and centered on a terminal of the given width.
type UI struct {
	w     io.Writer
	width int

	wall, empty, header lipgloss.Style
	tokens              [LastCategory]lipgloss.Style
}

// New creates a UI writing to w. If width > 0 boards are centered within it.
func New(w io.Writer, color bool, width int) *UI {
	renderer := lipgloss.NewRenderer(w)
	if color {
		renderer.SetColorProfile(termenv.ANSI256)
	} else {
		renderer.SetColorProfile(termenv.Ascii)
	}
	ui := &UI{
		w:      w,
		width:  width,
		wall:   renderer.NewStyle().Foreground(lipgloss.Color("240")),
		empty:  renderer.NewStyle().Foreground(lipgloss.Color("237")),
		header: renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
	}
	for _, c := range Categories {
		ui.tokens[c] = renderer.NewStyle().Bold(true).Foreground(categoryColors[c])
	}
	return ui
}

// Board renders the state with the colors of the UI.
func (ui *UI) Board(s State) string {
	var sb strings.Builder
	for _, r := range s.String() {
		switch r {
		case '#':
			sb.WriteString(ui.wall.Render("#"))
		case '.':
			sb.WriteString(ui.empty.Render("."))
		case ' ', '\n':
			sb.WriteRune(r)
		default:
			c := LetterToCategory[r]
			sb.WriteString(ui.tokens[c].Render(string(r)))
		}
	}
	return sb.String()
}

// printCentered prints the lines of the block, centered if the UI has a width.
func (ui *UI) printCentered(block string) {
	lines := strings.Split(strings.TrimRight(block, "\n"), "\n")
	blockWidth := lo.Max(lo.Map(lines, func(line string, _ int) int { return lipgloss.Width(line) }))
	indent := 0
	if ui.width > blockWidth {
		indent = (ui.width - blockWidth) / 2
	}
	for _, line := range lines {
		_, _ = fmt.Fprintf(ui.w, "%s%s\n", strings.Repeat(" ", indent), line)
	}
}

// PrintState prints the board of the state.
func (ui *UI) PrintState(s State) {
	ui.printCentered(ui.Board(s))
}

// PrintPath prints each move of the path followed by the board it leads to.
func (ui *UI) PrintPath(initial State, path []Move) {
	total := lo.SumBy(path, func(m Move) uint64 { return m.Cost })
	_, _ = fmt.Fprintf(ui.w, "%s\n\n", ui.header.Render(
		fmt.Sprintf("%d moves, total energy %d", len(path), total)))
	ui.PrintState(initial)

	s := initial
	var spent uint64
	for ii, m := range path {
		s = s.Apply(m)
		spent += m.Cost
		_, _ = fmt.Fprintf(ui.w, "\nMove #%d: %s %s -> %s, %d steps, energy %d (total %d)\n\n",
			ii+1, ui.tokens[m.Category].Render(m.Category.String()), m.From, m.To, m.Steps, m.Cost, spent)
		ui.PrintState(s)
	}
}

// PrintAnswer prints the minimum cost of each variant, one per line, as "Part <n>: <cost>".
func (ui *UI) PrintAnswer(answer *puzzle.Answer) {
	for v := range puzzle.NumVariants {
		_, _ = fmt.Fprintf(ui.w, "Part %d: %d\n", int(v)+1, answer.Cost(v))
	}
}

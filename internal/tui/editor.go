package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// editorStage is a minimal square pixel canvas. It only has to produce the
// payload handed to Review.
type editorStage struct {
	size   int
	pixels []int
	x, y   int
	color  int
}

func newEditorStage(size int) *editorStage {
	size = max(1, size)
	return &editorStage{size: size, pixels: make([]int, size*size), color: 1}
}

func (e *editorStage) paint(c int) { e.pixels[e.y*e.size+e.x] = c }

func (a *App) editorKey(m tea.KeyMsg) tea.Cmd {
	e := a.editor
	switch {
	case key.Matches(m, a.keys.Done):
		return a.advance(a.wizard.EditorNext(e.pixels))
	case key.Matches(m, a.keys.Up):
		e.y = max(0, e.y-1)
	case key.Matches(m, a.keys.Down):
		e.y = min(e.size-1, e.y+1)
	case key.Matches(m, a.keys.Left):
		e.x = max(0, e.x-1)
	case key.Matches(m, a.keys.Right):
		e.x = min(e.size-1, e.x+1)
	case key.Matches(m, a.keys.Paint):
		e.paint(e.color)
	case key.Matches(m, a.keys.Erase):
		e.paint(0)
	case key.Matches(m, a.keys.Color):
		e.color = e.color%(len(palette)-1) + 1
	case key.Matches(m, a.keys.Clear):
		clear(e.pixels)
	}
	return nil
}

func (a *App) renderEditor() string {
	e := a.editor
	s := a.styles
	ctx := a.wizard.Context()

	var b strings.Builder
	for y := 0; y < e.size; y++ {
		for x := 0; x < e.size; x++ {
			cell := lipgloss.NewStyle().Background(paletteColor(e.pixels[y*e.size+x]))
			if x == e.x && y == e.y {
				cell = cell.Foreground(paletteColor(e.color)).Reverse(true)
				b.WriteString(cell.Render("▒▒"))
				continue
			}
			b.WriteString(cell.Render("  "))
		}
		if y < e.size-1 {
			b.WriteByte('\n')
		}
	}

	swatch := lipgloss.NewStyle().Background(paletteColor(e.color)).Render("    ")
	return strings.Join([]string{
		s.title.Render("Draw: " + strings.ToUpper(ctx.SelectedWord)),
		"",
		b.String(),
		"",
		"color " + swatch + "   " + hints(a.keys.Paint, a.keys.Erase, a.keys.Color, a.keys.Clear, a.keys.Done),
	}, "\n")
}

// renderPixels draws a square pixel payload into a width x height block of
// half-block characters, two pixel rows per text row.
func renderPixels(pixels []int, width, height int) string {
	side := int(math.Sqrt(float64(len(pixels))))
	if side*side != len(pixels) || side == 0 {
		return strings.TrimSuffix(strings.Repeat(strings.Repeat("·", width)+"\n", height), "\n")
	}
	at := func(col, row, rows int) int {
		px := col * side / width
		py := row * side / rows
		return pixels[py*side+px]
	}
	lines := make([]string, height)
	for row := 0; row < height; row++ {
		var b strings.Builder
		for col := 0; col < width; col++ {
			top := at(col, row*2, height*2)
			bottom := at(col, row*2+1, height*2)
			b.WriteString(lipgloss.NewStyle().
				Foreground(paletteColor(top)).
				Background(paletteColor(bottom)).
				Render("▀"))
		}
		lines[row] = b.String()
	}
	return strings.Join(lines, "\n")
}

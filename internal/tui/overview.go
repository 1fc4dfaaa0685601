package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/pixelary/internal/database/repository"
	"github.com/jask/pixelary/internal/history"
	"github.com/jask/pixelary/internal/pagination"
	"github.com/jask/pixelary/internal/service"
)

// overviewStage is the history grid. Its pager lives as long as the stage.
type overviewStage struct {
	loader *history.Loader
	pager  *pagination.Pager
	cursor int // index into loader.Records()
}

func newOverviewStage(f history.Fetcher, g pagination.Geometry) *overviewStage {
	return &overviewStage{
		loader: history.New(f),
		pager:  pagination.NewPager(g),
	}
}

func (a *App) geometry() pagination.Geometry {
	l := a.cfg.Layout
	return pagination.Geometry{
		TileSize:     l.TileSize,
		TileGap:      l.TileGap,
		OuterPadding: l.OuterPadding,
		MinWidth:     l.MinWidth,
		RowsPerPage:  l.RowsPerPage,
	}
}

// pageRange is the half-open index range of records on the current page,
// not counting the peek row.
func (o *overviewStage) pageRange(width int) (int, int) {
	n := len(o.loader.Records())
	cols := o.pager.Layout(n, width).Columns
	start := o.pager.Offset() * cols
	end := min(n, start+o.pager.Geometry().RowsPerPage*cols)
	return start, end
}

func (o *overviewStage) clampCursor(width int) {
	start, end := o.pageRange(width)
	if o.cursor < start || o.cursor >= end {
		o.cursor = start
	}
}

func (o *overviewStage) selected() (repository.Drawing, bool) {
	records := o.loader.Records()
	if o.cursor < 0 || o.cursor >= len(records) {
		return repository.Drawing{}, false
	}
	return records[o.cursor], true
}

func (a *App) overviewKey(m tea.KeyMsg) tea.Cmd {
	o := a.overview
	// While loading there is nothing to press.
	switch o.loader.State() {
	case history.Loading:
		return nil
	case history.Failed:
		if key.Matches(m, a.keys.Retry) {
			return a.historyCmd(o.loader.Reload(a.ctx))
		}
	case history.Empty, history.Ready:
	}

	n := len(o.loader.Records())
	switch {
	case key.Matches(m, a.keys.Draw):
		return a.advance(a.wizard.OverviewNext())
	case o.loader.State() != history.Ready:
		return nil
	case key.Matches(m, a.keys.Down):
		if o.pager.Advance(n, a.width) {
			o.clampCursor(a.width)
		}
	case key.Matches(m, a.keys.Up):
		if o.pager.Retreat() {
			o.clampCursor(a.width)
		}
	case key.Matches(m, a.keys.Right):
		if _, end := o.pageRange(a.width); o.cursor+1 < end {
			o.cursor++
		}
	case key.Matches(m, a.keys.Left):
		if start, _ := o.pageRange(a.width); o.cursor > start {
			o.cursor--
		}
	case key.Matches(m, a.keys.Open):
		if d, ok := o.selected(); ok {
			return a.openCmd(service.PostURL(a.cfg.User.Subreddit, d.PostID))
		}
	}
	return nil
}

func (a *App) openCmd(url string) tea.Cmd {
	nav := a.services.Navigator
	if nav == nil {
		return func() tea.Msg { return statusMsg(url) }
	}
	return func() tea.Msg {
		if err := nav.Open(url); err != nil {
			return errMsg{fmt.Errorf("open %s: %w", url, err)}
		}
		return statusMsg("opened " + url)
	}
}

func (a *App) renderOverview() string {
	o := a.overview
	s := a.styles
	switch o.loader.State() {
	case history.Loading:
		return s.secondary.Render("Loading ...")
	case history.Failed:
		return strings.Join([]string{
			s.errText.Render("Couldn't load your drawings"),
			s.secondary.Render(o.loader.Err().Error()),
			"",
			hints(a.keys.Draw, a.keys.Retry),
		}, "\n")
	case history.Empty:
		return strings.Join([]string{
			s.title.Render("Draw words"),
			s.title.Render("for others"),
			"",
			s.secondary.Render("Earn points if they"),
			s.secondary.Render("guess correctly!"),
			"",
			hints(a.keys.Draw),
		}, "\n")
	case history.Ready:
	}

	records := o.loader.Records()
	layout := o.pager.Layout(len(records), a.width)
	geom := o.pager.Geometry()
	rows := pagination.Window(records, o.pager.Offset(), layout.Columns, geom.RowsPerPage)

	gap := strings.Repeat(" ", geom.TileGap)
	base := o.pager.Offset() * layout.Columns
	var out []string
	for r, row := range rows {
		tiles := make([]string, 0, len(row)*2)
		for c, d := range row {
			if c > 0 {
				tiles = append(tiles, gap)
			}
			tiles = append(tiles, a.renderTile(d, base+r*layout.Columns+c == o.cursor))
		}
		line := lipgloss.JoinHorizontal(lipgloss.Top, tiles...)
		if r == geom.RowsPerPage {
			// peek row: only its top edge shows above the cut-off
			line = strings.SplitN(line, "\n", 2)[0]
		}
		out = append(out, line)
	}

	gridWidth := pagination.GridWidth(layout.Columns, geom.TileSize, 0, geom.TileGap)
	if layout.HasOverflow {
		out = append(out, s.cutoff.Render(strings.Repeat("▀", gridWidth)))
	}

	footer := []key.Binding{a.keys.Draw}
	if layout.CanRetreat {
		footer = append(footer, a.keys.Up)
	}
	if layout.CanAdvance {
		footer = append(footer, a.keys.Down)
	}
	footer = append(footer, a.keys.Open)
	out = append(out, "", hints(footer...))
	return strings.Join(out, "\n")
}

func (a *App) renderTile(d repository.Drawing, focused bool) string {
	size := a.cfg.Layout.TileSize
	thumb := renderPixels(d.Pixels, size, max(1, size/2))
	marker := strings.Repeat(" ", size)
	if focused {
		marker = a.styles.accent.Render(strings.Repeat("━", size))
	}
	return thumb + "\n" + marker
}

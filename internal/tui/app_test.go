package tui

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/jask/pixelary/internal/config"
	"github.com/jask/pixelary/internal/database/repository"
	"github.com/jask/pixelary/internal/service"
	"github.com/jask/pixelary/internal/wizard"
)

type fakeHistory struct {
	drawings []repository.Drawing
	err      error
	calls    int
}

func (f *fakeHistory) GetDrawingsForUser(_ context.Context, username *string) ([]repository.Drawing, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if username == nil {
		return []repository.Drawing{}, nil
	}
	return f.drawings, nil
}

type fakePosts struct {
	got []service.Submission
	err error
}

func (f *fakePosts) Submit(_ context.Context, sub service.Submission) (repository.Drawing, error) {
	if f.err != nil {
		return repository.Drawing{}, f.err
	}
	f.got = append(f.got, sub)
	return repository.Drawing{PostID: fmt.Sprintf("new%d", len(f.got)), Word: sub.Word, Pixels: sub.Pixels}, nil
}

type fakeNavigator struct{ opened []string }

func (f *fakeNavigator) Open(url string) error {
	f.opened = append(f.opened, url)
	return nil
}

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time                       { return c.t }
func (c *fakeClock) advance(d time.Duration)              { c.t = c.t.Add(d) }
func (c *fakeClock) set(start time.Time, d time.Duration) { c.t = start.Add(d) }

type harness struct {
	app   *App
	clock *fakeClock
	hist  *fakeHistory
	posts *fakePosts
	nav   *fakeNavigator
}

func testConfig(username string) config.Config {
	return config.Config{
		User:       config.UserConfig{Username: username, Subreddit: "pixelary"},
		Game:       config.GameConfig{CardDrawDuration: 2, TickInterval: 900 * time.Millisecond},
		Layout:     config.LayoutConfig{TileSize: 16, TileGap: 2, OuterPadding: 4, MinWidth: 24, RowsPerPage: 3},
		Editor:     config.EditorConfig{CanvasSize: 4},
		Navigation: config.NavigationConfig{Opener: "true"},
	}
}

func sequence(words ...string) func() string {
	i := 0
	return func() string {
		w := words[i%len(words)]
		i++
		return w
	}
}

func drawingsN(n int) []repository.Drawing {
	out := make([]repository.Drawing, n)
	for i := range out {
		out[i] = repository.Drawing{PostID: fmt.Sprintf("p%d", i), Pixels: []int{1, 0, 0, 1}}
	}
	return out
}

// newHarness builds an app whose first history load has already resolved.
// Width 58 fits three 16-cell tiles with 2-cell gaps after 4 cells padding.
func newHarness(t *testing.T, username string, hist *fakeHistory) *harness {
	t.Helper()
	h := &harness{
		clock: &fakeClock{t: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)},
		hist:  hist,
		posts: &fakePosts{},
		nav:   &fakeNavigator{},
	}
	h.app = New(context.Background(), testConfig(username), Services{History: hist, Posts: h.posts, Navigator: h.nav},
		sequence("cat", "dog", "sun", "tree", "moon", "star"))
	h.app.now = h.clock.now
	h.send(t, tea.WindowSizeMsg{Width: 58, Height: 40})
	h.run(t, h.app.Init())
	return h
}

func (h *harness) send(t *testing.T, msg tea.Msg) tea.Cmd {
	t.Helper()
	next, cmd := h.app.Update(msg)
	got, ok := next.(*App)
	require.True(t, ok, "Update returned %T", next)
	require.Same(t, h.app, got)
	return cmd
}

// run executes one command and feeds its message back, returning whatever
// command that produced.
func (h *harness) run(t *testing.T, cmd tea.Cmd) tea.Cmd {
	t.Helper()
	require.NotNil(t, cmd)
	return h.send(t, cmd())
}

func (h *harness) press(t *testing.T, k string) tea.Cmd {
	t.Helper()
	return h.send(t, keyMsg(k))
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

func (h *harness) tick(t *testing.T) tea.Cmd {
	t.Helper()
	return h.send(t, tickMsg{instance: h.app.instance})
}

func TestOverviewShowsLoadingUntilResolved(t *testing.T) {
	t.Parallel()

	hist := &fakeHistory{drawings: drawingsN(10)}
	app := New(context.Background(), testConfig("snoo"), Services{History: hist}, sequence("cat"))
	cmd := app.Init()
	require.NotNil(t, cmd)

	view := app.View()
	require.Contains(t, view, "Loading ...")
	require.NotContains(t, view, "[↓]")
	require.NotContains(t, view, "[↑]")

	// keys do nothing while loading
	_, next := app.Update(keyMsg("enter"))
	require.Nil(t, next)
	require.Equal(t, wizard.Overview, app.wizard.Stage())

	_, _ = app.Update(cmd())
	require.Contains(t, app.View(), "[↓] down")
}

func TestOverviewEmptyForAnonymousUser(t *testing.T) {
	t.Parallel()

	h := newHarness(t, "", &fakeHistory{drawings: drawingsN(3)})
	view := h.app.View()
	require.Contains(t, view, "Draw words")
	require.Contains(t, view, "guess correctly!")
	require.Contains(t, view, "DRAW WORD")
	require.NotContains(t, view, "[↓]")
}

func TestOverviewPaginationTenDrawings(t *testing.T) {
	t.Parallel()

	h := newHarness(t, "snoo", &fakeHistory{drawings: drawingsN(10)})
	o := h.app.overview
	layout := o.pager.Layout(10, h.app.width)
	require.Equal(t, 3, layout.Columns)
	require.Equal(t, 4, layout.TotalRows)
	require.True(t, layout.HasOverflow)

	view := h.app.View()
	require.Contains(t, view, "[↓] down")
	require.NotContains(t, view, "[↑] up")
	require.Contains(t, view, "▀▀▀")

	h.press(t, "up")
	require.Equal(t, 0, o.pager.Offset())

	h.press(t, "down")
	require.Equal(t, 3, o.pager.Offset())
	require.Equal(t, 9, o.cursor)
	view = h.app.View()
	require.Contains(t, view, "[↑] up")
	require.NotContains(t, view, "[↓] down")

	h.press(t, "down")
	require.Equal(t, 3, o.pager.Offset())

	h.press(t, "up")
	require.Equal(t, 0, o.pager.Offset())
	require.Equal(t, 0, o.cursor)
}

func TestOverviewOpensSelectedDrawing(t *testing.T) {
	t.Parallel()

	h := newHarness(t, "snoo", &fakeHistory{drawings: drawingsN(4)})
	h.press(t, "right")
	h.press(t, "right")
	h.press(t, "right")
	h.press(t, "right") // stays on the last tile of the page
	require.Equal(t, 3, h.app.overview.cursor)

	h.run(t, h.press(t, "o"))
	require.Equal(t, []string{"https://www.reddit.com/r/pixelary/comments/p3"}, h.nav.opened)
	require.Contains(t, h.app.status, "opened")
}

func TestOverviewFetchFailureAndRetry(t *testing.T) {
	t.Parallel()

	hist := &fakeHistory{err: errors.New("db locked")}
	h := newHarness(t, "snoo", hist)
	view := h.app.View()
	require.Contains(t, view, "Couldn't load your drawings")
	require.Contains(t, view, "db locked")

	hist.err = nil
	hist.drawings = drawingsN(2)
	cmd := h.press(t, "r")
	require.Contains(t, h.app.View(), "Loading ...")
	h.run(t, cmd)
	require.Equal(t, 2, hist.calls)
	require.Contains(t, h.app.View(), "DRAW WORD")
	require.NotContains(t, h.app.View(), "Couldn't load")
}

func TestFullWizardCycle(t *testing.T) {
	t.Parallel()

	h := newHarness(t, "snoo", &fakeHistory{drawings: drawingsN(1)})
	require.True(t, h.app.showTabs)
	require.Contains(t, h.app.View(), "1:Draw")

	tickCmd := h.press(t, "enter")
	require.NotNil(t, tickCmd)
	require.Equal(t, wizard.Word, h.app.wizard.Stage())
	require.False(t, h.app.showTabs)
	view := h.app.View()
	require.NotContains(t, view, "1:Draw")
	require.Contains(t, view, "Pick a word")
	require.Contains(t, view, "CAT")

	h.press(t, "2")
	require.Equal(t, wizard.Editor, h.app.wizard.Stage())
	require.Equal(t, "dog", h.app.wizard.Context().SelectedWord)
	require.Contains(t, h.app.View(), "Draw: DOG")

	h.press(t, "space")
	h.press(t, "right")
	h.press(t, "c")
	h.press(t, "space")
	h.press(t, "enter")
	require.Equal(t, wizard.Review, h.app.wizard.Stage())
	want := make([]int, 16)
	want[0], want[1] = 1, 2
	require.Equal(t, want, h.app.wizard.Context().Drawing)
	require.Contains(t, h.app.View(), "DOG")

	post := h.press(t, "enter")
	require.NotNil(t, post)
	require.Nil(t, h.press(t, "enter"), "second press while posting is ignored")

	reload := h.run(t, post)
	require.Equal(t, wizard.Overview, h.app.wizard.Stage())
	require.True(t, h.app.showTabs)
	require.Equal(t, wizard.Context{}, h.app.wizard.Context())
	require.Len(t, h.posts.got, 1)
	require.Equal(t, service.Submission{Username: "snoo", Subreddit: "pixelary", Word: "dog", Pixels: want}, h.posts.got[0])

	require.Contains(t, h.app.View(), "Loading ...")
	h.run(t, reload)
	require.Equal(t, 2, h.hist.calls)
	require.Equal(t, 0, h.app.overview.pager.Offset())
}

func TestPostFailureStaysOnReview(t *testing.T) {
	t.Parallel()

	h := newHarness(t, "snoo", &fakeHistory{})
	h.posts.err = errors.New("offline")
	h.press(t, "enter")
	h.press(t, "1")
	h.press(t, "enter")
	require.Equal(t, wizard.Review, h.app.wizard.Stage())

	h.run(t, h.press(t, "enter"))
	require.Equal(t, wizard.Review, h.app.wizard.Stage())
	require.False(t, h.app.review.posting)
	require.Contains(t, h.app.View(), "error: offline")
}

func TestWordAutoAdvancesOnFirstTickPastBudget(t *testing.T) {
	t.Parallel()

	h := newHarness(t, "snoo", &fakeHistory{})
	start := h.clock.t
	h.press(t, "enter")
	require.Equal(t, wizard.Word, h.app.wizard.Stage())
	instance := h.app.instance

	h.clock.set(start, 900*time.Millisecond)
	require.NotNil(t, h.tick(t), "countdown keeps ticking")
	require.Contains(t, h.app.View(), "▶ 1 ◀")

	h.clock.set(start, 2*time.Second)
	require.NotNil(t, h.tick(t), "exactly at the budget is not past it")
	require.Equal(t, wizard.Word, h.app.wizard.Stage())

	h.clock.advance(700 * time.Millisecond)
	require.Nil(t, h.tick(t))
	require.Equal(t, wizard.Editor, h.app.wizard.Stage())
	require.Equal(t, "cat", h.app.wizard.Context().SelectedWord)

	// a tick from the discarded word stage neither fires nor reschedules
	require.Nil(t, h.send(t, tickMsg{instance: instance}))
	require.Equal(t, wizard.Editor, h.app.wizard.Stage())
}

func TestWordManualPickBeatsPendingTick(t *testing.T) {
	t.Parallel()

	h := newHarness(t, "snoo", &fakeHistory{})
	start := h.clock.t
	h.press(t, "enter")
	instance := h.app.instance

	h.clock.set(start, 5*time.Second)
	h.press(t, "down")
	h.press(t, "down")
	h.press(t, "enter")
	require.Equal(t, "sun", h.app.wizard.Context().SelectedWord)

	require.Nil(t, h.send(t, tickMsg{instance: instance}))
	require.Equal(t, wizard.Editor, h.app.wizard.Stage())
	require.Equal(t, "sun", h.app.wizard.Context().SelectedWord)
}

func TestWordRegenerateKeepsClock(t *testing.T) {
	t.Parallel()

	h := newHarness(t, "snoo", &fakeHistory{})
	start := h.clock.t
	h.press(t, "enter")
	cd := h.app.word.countdown
	before := cd.Candidates()

	h.clock.set(start, 1500*time.Millisecond)
	h.tick(t)
	h.press(t, "r")
	require.NotEqual(t, before, cd.Candidates())
	require.Equal(t, start, cd.StartTime())
	require.Equal(t, 1500*time.Millisecond, cd.Elapsed())

	h.clock.set(start, 2100*time.Millisecond)
	h.tick(t)
	require.Equal(t, wizard.Editor, h.app.wizard.Stage())
	require.Equal(t, "tree", h.app.wizard.Context().SelectedWord)
}

func TestTabsOnlySwitchOutsideWizard(t *testing.T) {
	t.Parallel()

	h := newHarness(t, "snoo", &fakeHistory{})
	h.press(t, "2")
	require.Equal(t, tabHowTo, h.app.activeTab)
	require.Contains(t, h.app.View(), "How to play")

	// draw keys are inert on the other tab
	h.press(t, "enter")
	require.Equal(t, wizard.Overview, h.app.wizard.Stage())

	h.press(t, "tab")
	require.Equal(t, tabDraw, h.app.activeTab)
	h.press(t, "enter")
	require.Equal(t, wizard.Word, h.app.wizard.Stage())

	h.press(t, "tab")
	require.Equal(t, tabDraw, h.app.activeTab)
	require.Nil(t, h.press(t, "q"))
}

func TestUnknownStageRendersFallback(t *testing.T) {
	t.Parallel()

	h := newHarness(t, "snoo", &fakeHistory{})
	require.Equal(t, "Error: Step not found in draw tab", h.app.renderStage(wizard.Stage(42)))
	// a known stage without a live instance also falls back
	require.Equal(t, "Error: Step not found in draw tab", h.app.renderStage(wizard.Word))
}

func TestStaleHistoryResultIgnored(t *testing.T) {
	t.Parallel()

	h := newHarness(t, "snoo", &fakeHistory{drawings: drawingsN(2)})
	oldInstance := h.app.instance
	h.press(t, "enter")
	h.send(t, historyMsg{instance: oldInstance})
	require.Nil(t, h.app.overview)
	require.Equal(t, wizard.Word, h.app.wizard.Stage())
}

func TestAnonymousUserCanLeaveReview(t *testing.T) {
	t.Parallel()

	h := newHarness(t, "", &fakeHistory{})
	h.app.services.Posts = &service.DrawingService{}

	h.press(t, "enter")
	h.press(t, "1")
	h.press(t, "enter")
	require.Equal(t, wizard.Review, h.app.wizard.Stage())
	require.Contains(t, h.app.View(), "[esc] discard")

	h.run(t, h.press(t, "enter"))
	require.Equal(t, wizard.Review, h.app.wizard.Stage())
	require.False(t, h.app.showTabs)
	require.Contains(t, h.app.status, "no user signed in")

	reload := h.press(t, "esc")
	require.Equal(t, wizard.Overview, h.app.wizard.Stage())
	require.True(t, h.app.showTabs)
	require.Equal(t, wizard.Context{}, h.app.wizard.Context())
	require.Equal(t, "drawing discarded", h.app.status)
	h.run(t, reload)
	require.Contains(t, h.app.View(), "DRAW WORD")

	quit := h.press(t, "q")
	require.NotNil(t, quit)
	require.IsType(t, tea.QuitMsg{}, quit())
}

func TestDiscardIgnoredWhilePosting(t *testing.T) {
	t.Parallel()

	h := newHarness(t, "snoo", &fakeHistory{})
	h.press(t, "enter")
	h.press(t, "1")
	h.press(t, "enter")
	post := h.press(t, "enter")
	require.NotNil(t, post)

	require.Nil(t, h.press(t, "esc"))
	require.Equal(t, wizard.Review, h.app.wizard.Stage())

	h.run(t, post)
	require.Equal(t, wizard.Overview, h.app.wizard.Stage())
	require.Len(t, h.posts.got, 1)
}

func TestResizeKeepsPageOnGrid(t *testing.T) {
	t.Parallel()

	h := newHarness(t, "snoo", &fakeHistory{drawings: drawingsN(10)})
	o := h.app.overview
	h.press(t, "down")
	require.Equal(t, 3, o.pager.Offset())

	// 100 cells fit five columns, so ten drawings need only two rows
	h.send(t, tea.WindowSizeMsg{Width: 100, Height: 40})
	require.Equal(t, 0, o.pager.Offset())
	require.Equal(t, 9, o.cursor)
	view := h.app.View()
	require.NotContains(t, view, "[↑] up")
	require.NotContains(t, view, "[↓] down")
	require.Contains(t, view, "▀")
}

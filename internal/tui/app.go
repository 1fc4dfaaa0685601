package tui

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/pixelary/internal/config"
	"github.com/jask/pixelary/internal/database/repository"
	"github.com/jask/pixelary/internal/history"
	"github.com/jask/pixelary/internal/service"
	"github.com/jask/pixelary/internal/wizard"
)

// Submitter posts a finished drawing.
type Submitter interface {
	Submit(ctx context.Context, sub service.Submission) (repository.Drawing, error)
}

// Services are the collaborators the draw flow calls out to.
type Services struct {
	History   history.Fetcher
	Posts     Submitter
	Navigator Navigator
}

// App is the terminal host. It owns the tab bar and runs the draw wizard in
// the Draw tab.
type App struct {
	ctx      context.Context
	cfg      config.Config
	services Services
	keys     keyMap
	styles   styles

	now  func() time.Time
	pick func() string

	width  int
	height int

	activeTab viewTab
	showTabs  bool
	status    string

	wizard *wizard.Controller

	// Exactly one of these is live, matching wizard.Stage(). Each is
	// rebuilt when its stage is entered and discarded when it is left.
	instance int
	overview *overviewStage
	word     *wordStage
	editor   *editorStage
	review   *reviewStage
}

type viewTab int

const (
	tabDraw viewTab = iota
	tabHowTo
)

var tabTitles = []string{"Draw", "How to play"}

// New builds the app at the Overview stage. pick draws one word from the
// corpus.
func New(ctx context.Context, cfg config.Config, services Services, pick func() string) *App {
	a := &App{
		ctx:      ctx,
		cfg:      cfg,
		services: services,
		keys:     defaultKeys(),
		styles:   newStyles(cfg.Theme),
		now:      time.Now,
		pick:     pick,
		showTabs: true,
	}
	a.wizard = wizard.New(a)
	return a
}

// SetShowTabs is called by the wizard when it takes or releases the screen.
func (a *App) SetShowTabs(show bool) {
	a.showTabs = show
	if !show {
		a.activeTab = tabDraw
	}
}

func (a *App) Init() tea.Cmd {
	return a.mountStage()
}

// messages
type historyMsg struct {
	instance int
	result   history.Result
}

type tickMsg struct{ instance int }

type postedMsg struct {
	instance int
	drawing  repository.Drawing
}

type statusMsg string

type errMsg struct{ error }

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
		if o := a.overview; o != nil {
			o.pager.Clamp(len(o.loader.Records()), a.width)
			o.clampCursor(a.width)
		}
		return a, nil
	case tea.KeyMsg:
		return a.handleKey(m)
	case historyMsg:
		if a.overview != nil && m.instance == a.instance {
			if a.overview.loader.Resolve(m.result) {
				a.overview.clampCursor(a.width)
			}
		}
		return a, nil
	case tickMsg:
		return a, a.handleTick(m)
	case postedMsg:
		if a.review == nil || m.instance != a.instance {
			return a, nil
		}
		log.Printf("posted drawing %s for %q", m.drawing.PostID, m.drawing.Word)
		a.status = "posted \"" + m.drawing.Word + "\""
		return a, a.advance(a.wizard.ReviewNext())
	case statusMsg:
		a.status = string(m)
	case errMsg:
		if a.review != nil {
			a.review.posting = false
		}
		a.status = "error: " + m.Error()
	}
	return a, nil
}

func (a *App) handleKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(m, a.keys.Interrupt) {
		return a, tea.Quit
	}
	if a.showTabs {
		switch {
		case key.Matches(m, a.keys.Quit):
			return a, tea.Quit
		case key.Matches(m, a.keys.NextTab):
			a.activeTab = (a.activeTab + 1) % viewTab(len(tabTitles))
			return a, nil
		case key.Matches(m, a.keys.Tab1):
			a.activeTab = tabDraw
			return a, nil
		case key.Matches(m, a.keys.Tab2):
			a.activeTab = tabHowTo
			return a, nil
		}
	}
	if a.activeTab != tabDraw {
		return a, nil
	}

	switch stage := a.wizard.Stage(); stage {
	case wizard.Overview:
		return a, a.overviewKey(m)
	case wizard.Word:
		return a, a.wordKey(m)
	case wizard.Editor:
		return a, a.editorKey(m)
	case wizard.Review:
		return a, a.reviewKey(m)
	default:
		log.Printf("draw tab: key %q at unknown stage %s", m.String(), stage)
		return a, nil
	}
}

// advance reacts to a wizard transition by mounting the new stage.
func (a *App) advance(err error) tea.Cmd {
	if err != nil {
		log.Printf("draw tab: %v", err)
		if !errors.Is(err, wizard.ErrWrongStage) {
			a.status = "error: " + err.Error()
		}
		return nil
	}
	return a.mountStage()
}

// mountStage discards every stage instance and builds the current one.
func (a *App) mountStage() tea.Cmd {
	a.instance++
	a.overview, a.word, a.editor, a.review = nil, nil, nil, nil

	switch stage := a.wizard.Stage(); stage {
	case wizard.Overview:
		a.overview = newOverviewStage(a.services.History, a.geometry())
		return a.requestHistory()
	case wizard.Word:
		a.word = newWordStage(a.now(), a.cfg.Game.CardDrawDuration, a.pick)
		return a.scheduleTick()
	case wizard.Editor:
		a.editor = newEditorStage(a.cfg.Editor.CanvasSize)
		return nil
	case wizard.Review:
		a.review = &reviewStage{}
		return nil
	default:
		log.Printf("draw tab: nothing to mount for stage %s", stage)
		return nil
	}
}

func (a *App) requestHistory() tea.Cmd {
	task := a.overview.loader.Request(a.ctx, a.cfg.User.UsernamePtr())
	return a.historyCmd(task)
}

func (a *App) historyCmd(task func() history.Result) tea.Cmd {
	if task == nil {
		return nil
	}
	instance := a.instance
	return func() tea.Msg {
		return historyMsg{instance: instance, result: task()}
	}
}

func (a *App) View() string {
	var body string
	switch a.activeTab {
	case tabDraw:
		body = a.renderStage(a.wizard.Stage())
	case tabHowTo:
		body = a.renderHowTo()
	}
	parts := make([]string, 0, 3)
	if a.showTabs {
		parts = append(parts, a.renderTabs())
	}
	parts = append(parts, body)
	if a.status != "" {
		parts = append(parts, a.styles.status.Render(a.status))
	}
	return strings.Join(parts, "\n\n")
}

// renderStage draws one stage. A stage with no view gets a visible error
// instead of a blank screen.
func (a *App) renderStage(stage wizard.Stage) string {
	switch stage {
	case wizard.Overview:
		if a.overview != nil {
			return a.renderOverview()
		}
	case wizard.Word:
		if a.word != nil {
			return a.renderWord()
		}
	case wizard.Editor:
		if a.editor != nil {
			return a.renderEditor()
		}
	case wizard.Review:
		if a.review != nil {
			return a.renderReview()
		}
	}
	return a.styles.errText.Render("Error: Step not found in draw tab")
}

func (a *App) renderTabs() string {
	tabs := make([]string, 0, len(tabTitles))
	for i, t := range tabTitles {
		label := fmt.Sprintf("%d:%s", i+1, t)
		if viewTab(i) == a.activeTab {
			tabs = append(tabs, a.styles.tabOn.Render(label))
		} else {
			tabs = append(tabs, a.styles.tabOff.Render(label))
		}
	}
	bar := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	return bar + "  " + a.styles.secondary.Render(hints(a.keys.NextTab, a.keys.Quit))
}

func (a *App) renderHowTo() string {
	lines := []string{
		a.styles.title.Render("How to play"),
		"",
		"1. Pick one of three words before the timer runs out.",
		fmt.Sprintf("   You have %d seconds; the highlighted word is picked for you when time is up.", a.cfg.Game.CardDrawDuration),
		"2. Draw it on the canvas.",
		"3. Review and post it for others to guess.",
		"",
		a.styles.secondary.Render("Earn points when others guess your drawing correctly!"),
	}
	return strings.Join(lines, "\n")
}

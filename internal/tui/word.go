package tui

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/pixelary/internal/countdown"
)

type wordStage struct {
	countdown *countdown.Countdown
	cursor    int
}

func newWordStage(now time.Time, durationSeconds int, pick func() string) *wordStage {
	return &wordStage{countdown: countdown.New(now, durationSeconds, pick)}
}

// scheduleTick queues the next countdown tick for the live word stage.
func (a *App) scheduleTick() tea.Cmd {
	instance := a.instance
	return tea.Tick(a.cfg.Game.TickInterval, func(time.Time) tea.Msg {
		return tickMsg{instance: instance}
	})
}

// handleTick is the scheduling adapter around countdown.Tick. Elapsed time is
// read from the injected clock, not the timer. Ticks from a word stage that
// has since been left are dropped, which also stops the repeat.
func (a *App) handleTick(m tickMsg) tea.Cmd {
	if a.word == nil || m.instance != a.instance {
		return nil
	}
	word, fire := a.word.countdown.Tick(a.now())
	if fire {
		return a.advance(a.wizard.WordNext(word))
	}
	return a.scheduleTick()
}

func (a *App) chooseWord(i int) tea.Cmd {
	word, err := a.word.countdown.Choose(i)
	if err != nil {
		return nil
	}
	return a.advance(a.wizard.WordNext(word))
}

func (a *App) wordKey(m tea.KeyMsg) tea.Cmd {
	w := a.word
	switch {
	case key.Matches(m, a.keys.Pick1):
		return a.chooseWord(0)
	case key.Matches(m, a.keys.Pick2):
		return a.chooseWord(1)
	case key.Matches(m, a.keys.Pick3):
		return a.chooseWord(2)
	case key.Matches(m, a.keys.Choose):
		return a.chooseWord(w.cursor)
	case key.Matches(m, a.keys.Up):
		if w.cursor > 0 {
			w.cursor--
		}
	case key.Matches(m, a.keys.Down):
		if w.cursor < len(w.countdown.Candidates())-1 {
			w.cursor++
		}
	case key.Matches(m, a.keys.Regen):
		w.countdown.Regenerate()
	}
	return nil
}

func (a *App) renderWord() string {
	w := a.word
	s := a.styles
	cards := make([]string, 0, len(w.countdown.Candidates()))
	for i, word := range w.countdown.Candidates() {
		label := strconv.Itoa(i+1) + "  " + strings.ToUpper(word)
		if i == 0 {
			label = s.accent.Render("▶") + " " + label + " " + s.accent.Render("◀")
		}
		style := s.card
		if i == w.cursor {
			style = s.cardFocus
		}
		cards = append(cards, style.Width(32).Render(label))
	}

	secondsLeft := s.accent.Render("▶") + " " + s.title.Render(strconv.Itoa(w.countdown.SecondsLeft())) + " " + s.accent.Render("◀")
	return strings.Join([]string{
		s.title.Render("Pick a word"),
		"",
		lipgloss.JoinVertical(lipgloss.Left, cards...),
		"",
		secondsLeft + "   " + s.secondary.Render(hints(a.keys.Regen)),
		"",
		hints(a.keys.Choose, a.keys.Up, a.keys.Down),
	}, "\n")
}

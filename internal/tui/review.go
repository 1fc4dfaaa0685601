package tui

import (
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/pixelary/internal/service"
)

type reviewStage struct {
	posting bool
}

func (a *App) reviewKey(m tea.KeyMsg) tea.Cmd {
	if a.review.posting {
		return nil
	}
	if key.Matches(m, a.keys.Discard) {
		log.Printf("review: discarded drawing of %q", a.wizard.Context().SelectedWord)
		a.status = "drawing discarded"
		return a.advance(a.wizard.ReviewNext())
	}
	if !key.Matches(m, a.keys.Post) {
		return nil
	}
	if a.services.Posts == nil {
		a.status = "error: posting is not configured"
		return nil
	}
	a.review.posting = true
	a.status = "posting..."
	ctx := a.wizard.Context()
	sub := service.Submission{
		Username:  a.cfg.User.Username,
		Subreddit: a.cfg.User.Subreddit,
		Word:      ctx.SelectedWord,
		Pixels:    ctx.Drawing,
	}
	posts, instance := a.services.Posts, a.instance
	return func() tea.Msg {
		d, err := posts.Submit(a.ctx, sub)
		if err != nil {
			return errMsg{err}
		}
		return postedMsg{instance: instance, drawing: d}
	}
}

func (a *App) renderReview() string {
	s := a.styles
	ctx := a.wizard.Context()
	size := a.cfg.Editor.CanvasSize * 2
	action := hints(a.keys.Post, a.keys.Discard)
	if a.review.posting {
		action = s.secondary.Render("posting...")
	}
	return strings.Join([]string{
		s.title.Render("Review your drawing"),
		"",
		s.secondary.Render("The word was") + " " + s.accent.Render(strings.ToUpper(ctx.SelectedWord)),
		"",
		renderPixels(ctx.Drawing, size, max(1, size/2)),
		"",
		action,
	}, "\n")
}

// Package wizard is the draw flow state machine: Overview, Word, Editor,
// Review, and back to Overview.
package wizard

import (
	"errors"
	"fmt"
	"log"
)

// Stage is one screen of the draw flow.
type Stage int

const (
	Overview Stage = iota
	Word
	Editor
	Review
)

func (s Stage) String() string {
	switch s {
	case Overview:
		return "Overview"
	case Word:
		return "Word"
	case Editor:
		return "Editor"
	case Review:
		return "Review"
	default:
		return fmt.Sprintf("Stage(%d)", int(s))
	}
}

// ErrWrongStage is returned by a transition called from another stage.
var ErrWrongStage = errors.New("wizard: transition not valid from current stage")

// Host is the surface the wizard runs in. The wizard hides the host's tab
// bar while it owns the screen.
type Host interface {
	SetShowTabs(show bool)
}

// Context is what the flow has collected so far in this cycle.
type Context struct {
	SelectedWord string
	Drawing      []int
}

func (c Context) HasWord() bool    { return c.SelectedWord != "" }
func (c Context) HasDrawing() bool { return len(c.Drawing) > 0 }

// Controller owns the stage and the context. Only the *Next methods change
// either.
type Controller struct {
	host  Host
	stage Stage
	ctx   Context
}

// New returns a controller at Overview. host may be nil.
func New(host Host) *Controller {
	return &Controller{host: host, stage: Overview}
}

func (c *Controller) Stage() Stage { return c.stage }

// Context returns a copy of the collected context.
func (c *Controller) Context() Context {
	out := c.ctx
	out.Drawing = append([]int(nil), c.ctx.Drawing...)
	if len(out.Drawing) == 0 {
		out.Drawing = nil
	}
	return out
}

// OverviewNext starts a cycle: Overview -> Word.
func (c *Controller) OverviewNext() error {
	if err := c.expect(Overview); err != nil {
		return err
	}
	c.ctx = Context{}
	c.moveTo(Word)
	c.showTabs(false)
	return nil
}

// WordNext records the picked word: Word -> Editor.
func (c *Controller) WordNext(word string) error {
	if err := c.expect(Word); err != nil {
		return err
	}
	c.ctx.SelectedWord = word
	c.moveTo(Editor)
	return nil
}

// EditorNext records the drawing: Editor -> Review.
func (c *Controller) EditorNext(drawing []int) error {
	if err := c.expect(Editor); err != nil {
		return err
	}
	c.ctx.Drawing = append([]int(nil), drawing...)
	c.moveTo(Review)
	return nil
}

// ReviewNext closes the cycle: Review -> Overview with an empty context.
func (c *Controller) ReviewNext() error {
	if err := c.expect(Review); err != nil {
		return err
	}
	c.ctx = Context{}
	c.moveTo(Overview)
	c.showTabs(true)
	return nil
}

func (c *Controller) expect(s Stage) error {
	if c.stage != s {
		return fmt.Errorf("%w: at %s, want %s", ErrWrongStage, c.stage, s)
	}
	return nil
}

func (c *Controller) moveTo(s Stage) {
	log.Printf("wizard: %s -> %s", c.stage, s)
	c.stage = s
}

func (c *Controller) showTabs(show bool) {
	if c.host != nil {
		c.host.SetShowTabs(show)
	}
}

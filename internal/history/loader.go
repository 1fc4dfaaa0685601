// Package history loads a user's past drawings for the overview grid.
package history

import (
	"context"
	"log"

	"github.com/jask/pixelary/internal/database/repository"
)

// State is where a load is.
type State int

const (
	Loading State = iota
	Empty
	Ready
	Failed
)

func (s State) String() string {
	switch s {
	case Loading:
		return "loading"
	case Empty:
		return "empty"
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Fetcher is the backing store for drawings. A nil username must yield an
// empty slice and no error.
type Fetcher interface {
	GetDrawingsForUser(ctx context.Context, username *string) ([]repository.Drawing, error)
}

// Result is the outcome of one fetch task.
type Result struct {
	Seq      int
	Key      *string
	Drawings []repository.Drawing
	Err      error
}

// Loader tracks the latest request. Results from superseded requests are
// dropped.
type Loader struct {
	fetch     Fetcher
	seq       int
	requested bool
	key       *string
	state     State
	records   []repository.Drawing
	err       error
}

func New(f Fetcher) *Loader {
	return &Loader{fetch: f, state: Loading}
}

// Request returns a task fetching drawings for username, or nil if username
// matches the last request. Run the task off the event loop and hand its
// Result to Resolve.
func (l *Loader) Request(ctx context.Context, username *string) func() Result {
	if l.requested && sameKey(l.key, username) {
		return nil
	}
	return l.start(ctx, username)
}

// Reload refetches the current key unconditionally, for example after the
// user posted a new drawing.
func (l *Loader) Reload(ctx context.Context) func() Result {
	return l.start(ctx, l.key)
}

func (l *Loader) start(ctx context.Context, username *string) func() Result {
	l.seq++
	l.requested = true
	l.key = copyKey(username)
	l.state = Loading
	l.err = nil
	seq, key, fetch := l.seq, copyKey(username), l.fetch
	return func() Result {
		drawings, err := fetch.GetDrawingsForUser(ctx, key)
		return Result{Seq: seq, Key: key, Drawings: drawings, Err: err}
	}
}

// Resolve applies r if it answers the latest request and reports whether it
// did.
func (l *Loader) Resolve(r Result) bool {
	if r.Seq != l.seq {
		return false
	}
	switch {
	case r.Err != nil:
		log.Printf("history: fetch for %s failed: %v", keyLabel(r.Key), r.Err)
		l.state, l.records, l.err = Failed, nil, r.Err
	case len(r.Drawings) == 0:
		l.state, l.records = Empty, nil
	default:
		l.state, l.records = Ready, r.Drawings
	}
	return true
}

func (l *Loader) State() State                  { return l.state }
func (l *Loader) Records() []repository.Drawing { return l.records }
func (l *Loader) Err() error                    { return l.err }

// Key is the username of the latest request.
func (l *Loader) Key() *string { return copyKey(l.key) }

func sameKey(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func copyKey(k *string) *string {
	if k == nil {
		return nil
	}
	v := *k
	return &v
}

func keyLabel(k *string) string {
	if k == nil {
		return "<none>"
	}
	return *k
}

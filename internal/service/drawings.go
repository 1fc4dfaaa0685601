package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/jask/pixelary/internal/database"
	"github.com/jask/pixelary/internal/database/repository"
)

// ErrInvalidSubmission is returned when a drawing cannot be posted as given.
var ErrInvalidSubmission = errors.New("invalid submission")

// DrawingService stores and lists drawings.
type DrawingService struct {
	DB       *sql.DB
	Drawings *repository.DrawingRepo
}

// Submission is a finished drawing ready to post.
type Submission struct {
	Username  string
	Subreddit string
	Word      string
	Pixels    []int
}

// GetDrawingsForUser lists a user's drawings, newest first. No user means
// no drawings, not an error.
func (s *DrawingService) GetDrawingsForUser(ctx context.Context, username *string) ([]repository.Drawing, error) {
	if username == nil || strings.TrimSpace(*username) == "" {
		return []repository.Drawing{}, nil
	}
	list, err := s.Drawings.ListByUser(ctx, strings.TrimSpace(*username))
	if err != nil {
		return nil, fmt.Errorf("list drawings for %s: %w", *username, err)
	}
	if list == nil {
		list = []repository.Drawing{}
	}
	return list, nil
}

// Submit validates and stores a drawing under a new post id.
func (s *DrawingService) Submit(ctx context.Context, sub Submission) (repository.Drawing, error) {
	if err := validate(sub); err != nil {
		return repository.Drawing{}, err
	}
	d := repository.Drawing{
		PostID:    uuid.NewString(),
		Username:  strings.TrimSpace(sub.Username),
		Subreddit: strings.TrimSpace(sub.Subreddit),
		Word:      sub.Word,
		Pixels:    append([]int(nil), sub.Pixels...),
		CreatedAt: database.Now(),
	}
	if err := database.WithTx(s.DB, func(tx *sql.Tx) error {
		return s.Drawings.InsertTx(ctx, tx, d)
	}); err != nil {
		return repository.Drawing{}, fmt.Errorf("store drawing: %w", err)
	}
	return d, nil
}

func validate(sub Submission) error {
	switch {
	case strings.TrimSpace(sub.Username) == "":
		return fmt.Errorf("%w: no user signed in", ErrInvalidSubmission)
	case strings.TrimSpace(sub.Subreddit) == "":
		return fmt.Errorf("%w: subreddit is required", ErrInvalidSubmission)
	case strings.TrimSpace(sub.Word) == "":
		return fmt.Errorf("%w: word is required", ErrInvalidSubmission)
	case len(sub.Pixels) == 0:
		return fmt.Errorf("%w: drawing is empty", ErrInvalidSubmission)
	}
	return nil
}

// PostURL is the link opened when a past drawing is selected.
func PostURL(subreddit, postID string) string {
	return fmt.Sprintf("https://www.reddit.com/r/%s/comments/%s", url.PathEscape(subreddit), url.PathEscape(postID))
}

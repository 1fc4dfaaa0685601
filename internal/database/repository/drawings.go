package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

// Execer is satisfied by *sql.DB and *sql.Tx.
type Execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// DrawingRepo handles drawings.
type DrawingRepo struct {
	db *sql.DB
}

func NewDrawingRepo(db *sql.DB) *DrawingRepo {
	return &DrawingRepo{db: db}
}

func (r *DrawingRepo) Insert(ctx context.Context, d Drawing) error {
	return r.InsertTx(ctx, r.db, d)
}

// InsertTx writes d through ex, which may be the repo's db or an open tx.
func (r *DrawingRepo) InsertTx(ctx context.Context, ex Execer, d Drawing) error {
	pixels, err := json.Marshal(d.Pixels)
	if err != nil {
		return fmt.Errorf("encode pixels: %w", err)
	}
	_, err = ex.ExecContext(ctx, `
	INSERT INTO drawings(post_id, username, subreddit, word, pixels, created_at)
	VALUES (?, ?, ?, ?, ?, ?)
	`, d.PostID, d.Username, d.Subreddit, d.Word, string(pixels), d.CreatedAt)
	return err
}

// ListByUser returns a user's drawings, newest first.
func (r *DrawingRepo) ListByUser(ctx context.Context, username string) ([]Drawing, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT post_id, username, subreddit, word, pixels, created_at
	FROM drawings
	WHERE username = ?
	ORDER BY created_at DESC, rowid DESC
	`, username)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Drawing
	for rows.Next() {
		d, err := scanDrawing(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *DrawingRepo) Get(ctx context.Context, postID string) (*Drawing, error) {
	row := r.db.QueryRowContext(ctx, `
	SELECT post_id, username, subreddit, word, pixels, created_at
	FROM drawings WHERE post_id = ?
	`, postID)
	d, err := scanDrawing(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &d, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanDrawing(s scanner) (Drawing, error) {
	var d Drawing
	var pixels string
	if err := s.Scan(&d.PostID, &d.Username, &d.Subreddit, &d.Word, &pixels, &d.CreatedAt); err != nil {
		return Drawing{}, err
	}
	if err := json.Unmarshal([]byte(pixels), &d.Pixels); err != nil {
		return Drawing{}, fmt.Errorf("decode pixels for %s: %w", d.PostID, err)
	}
	return d, nil
}

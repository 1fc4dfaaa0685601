package repository

import (
	"context"
	"database/sql"
)

// WordRepo handles the word corpus.
type WordRepo struct {
	db *sql.DB
}

func NewWordRepo(db *sql.DB) *WordRepo { return &WordRepo{db: db} }

func (r *WordRepo) Upsert(ctx context.Context, w Word) error {
	return r.UpsertTx(ctx, r.db, w)
}

func (r *WordRepo) UpsertTx(ctx context.Context, ex Execer, w Word) error {
	_, err := ex.ExecContext(ctx, `
	INSERT INTO words(id, word, created_at) VALUES (?, ?, CURRENT_TIMESTAMP)
	ON CONFLICT(id) DO UPDATE SET word=excluded.word;
	`, w.ID, w.Word)
	return err
}

func (r *WordRepo) List(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT word FROM words ORDER BY word`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []string
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

func (r *WordRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM words`).Scan(&n)
	return n, err
}

package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/jask/pixelary/internal/database/repository"
)

// SeedDefaults loads the built-in word corpus into an empty words table.
// It is idempotent and safe to run on every startup.
func SeedDefaults(ctx context.Context, db *sql.DB, corpus []string) error {
	wordRepo := repository.NewWordRepo(db)
	n, err := wordRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("count words: %w", err)
	}
	if n > 0 {
		return nil
	}
	return WithTx(db, func(tx *sql.Tx) error {
		for _, w := range corpus {
			id := uuid.NewSHA1(uuid.NameSpaceOID, []byte("word:"+w)).String()
			if err := wordRepo.UpsertTx(ctx, tx, repository.Word{ID: id, Word: w}); err != nil {
				return fmt.Errorf("seed word %q: %w", w, err)
			}
		}
		return nil
	})
}

package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// uniqueWord returns a word that cannot collide with other tests sharing
// the container.
func uniqueWord(prefix string) string {
	return prefix + uuid.New().String()[:8]
}

// SeedWord inserts one lexicon row and returns the word. Either form may be
// empty, in which case NULL is stored.
func SeedWord(t *testing.T, pool *pgxpool.Pool, prefix, us, gb string) string {
	t.Helper()

	word := uniqueWord(prefix)

	var usVal, gbVal *string
	if us != "" {
		usVal = &us
	}
	if gb != "" {
		gbVal = &gb
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO lexicon (word, us, gb) VALUES ($1, $2, $3)`,
		word, usVal, gbVal,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedWord insert: %v", err)
	}

	return word
}

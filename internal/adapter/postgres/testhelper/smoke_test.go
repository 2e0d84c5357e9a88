package testhelper

import (
	"context"
	"testing"
)

func TestSetupTestDB_Smoke(t *testing.T) {
	pool := SetupTestDB(t)

	word := SeedWord(t, pool, "smoke-", "kɑr", "kɑː")

	var us string
	err := pool.QueryRow(
		context.Background(),
		`SELECT us FROM lexicon WHERE word = $1`,
		word,
	).Scan(&us)
	if err != nil {
		t.Fatalf("expected word in DB, got error: %v", err)
	}

	if us != "kɑr" {
		t.Fatalf("expected us form %q, got %q", "kɑr", us)
	}
}

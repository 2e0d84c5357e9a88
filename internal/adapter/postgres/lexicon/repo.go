// Package lexicon implements the word lexicon repository using PostgreSQL.
// One row per word holds the raw American and RP forms; dual strong/weak
// forms are stored in their envelope string and interpreted by the service.
package lexicon

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/ipa-transcriber/internal/adapter/postgres"
	"github.com/heartmarshall/ipa-transcriber/internal/domain"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

const table = "lexicon"

var columns = []string{"word", "us", "gb", "updated_at"}

// Repo provides lexicon persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new lexicon repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Get returns the entry for one normalized word.
func (r *Repo) Get(ctx context.Context, word string) (*domain.LexiconEntry, error) {
	sql, args, err := psql.Select(columns...).
		From(table).
		Where(squirrel.Eq{"word": word}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var e domain.LexiconEntry
	row := querier.QueryRow(ctx, sql, args...)
	if err := row.Scan(&e.Word, &e.American, &e.RP, &e.UpdatedAt); err != nil {
		return nil, mapError(err, word)
	}

	return &e, nil
}

// Upsert inserts or replaces the entry for a word. Absent dialect forms of
// an existing row are preserved via COALESCE, so a partial update never
// erases the other dialect.
func (r *Repo) Upsert(ctx context.Context, entry *domain.LexiconEntry) error {
	sql, args, err := psql.Insert(table).
		Columns("word", "us", "gb").
		Values(entry.Word, entry.American, entry.RP).
		Suffix(`ON CONFLICT (word) DO UPDATE SET
			us = COALESCE(EXCLUDED.us, lexicon.us),
			gb = COALESCE(EXCLUDED.gb, lexicon.gb),
			updated_at = now()`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)
	if _, err := querier.Exec(ctx, sql, args...); err != nil {
		return mapError(err, entry.Word)
	}

	return nil
}

// UpsertBatch writes many entries in one round trip. Used by the seeder;
// per-entry errors surface on batch close.
func (r *Repo) UpsertBatch(ctx context.Context, entries []domain.LexiconEntry) error {
	if len(entries) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, e := range entries {
		sql, args, err := psql.Insert(table).
			Columns("word", "us", "gb").
			Values(e.Word, e.American, e.RP).
			Suffix(`ON CONFLICT (word) DO UPDATE SET
				us = COALESCE(EXCLUDED.us, lexicon.us),
				gb = COALESCE(EXCLUDED.gb, lexicon.gb),
				updated_at = now()`).
			ToSql()
		if err != nil {
			return fmt.Errorf("build batch upsert query: %w", err)
		}
		batch.Queue(sql, args...)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)
	results := querier.SendBatch(ctx, batch)
	defer results.Close()

	for _, e := range entries {
		if _, err := results.Exec(); err != nil {
			return mapError(err, e.Word)
		}
	}

	return results.Close()
}

// Search returns entries whose word starts with prefix, ordered
// alphabetically. Returns an empty slice (not nil) when nothing matches.
func (r *Repo) Search(ctx context.Context, prefix string, limit int) ([]domain.LexiconEntry, error) {
	sql, args, err := psql.Select(columns...).
		From(table).
		Where(squirrel.Like{"word": prefix + "%"}).
		OrderBy("word ASC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build search query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, mapError(err, prefix)
	}
	defer rows.Close()

	entries := []domain.LexiconEntry{}
	for rows.Next() {
		var e domain.LexiconEntry
		if err := rows.Scan(&e.Word, &e.American, &e.RP, &e.UpdatedAt); err != nil {
			return nil, mapError(err, prefix)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err, prefix)
	}

	return entries, nil
}

// Count returns the total number of lexicon entries.
func (r *Repo) Count(ctx context.Context) (int64, error) {
	sql, args, err := psql.Select("count(*)").From(table).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var n int64
	if err := querier.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, mapError(err, "")
	}

	return n, nil
}

package lexicon

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/ipa-transcriber/internal/domain"
)

// mapError converts pgx/pgconn errors into domain errors.
// context.DeadlineExceeded and context.Canceled pass through unmapped.
func mapError(err error, word string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("lexicon entry %q: %w", word, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("lexicon entry %q: %w", word, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("lexicon entry %q: %w", word, domain.ErrAlreadyExists)
		case "23514": // check_violation
			return fmt.Errorf("lexicon entry %q: %w", word, domain.ErrValidation)
		}
	}

	return fmt.Errorf("lexicon entry %q: %w", word, err)
}

package transcription

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/ipa-transcriber/internal/domain"
	"github.com/heartmarshall/ipa-transcriber/internal/provider"
	"github.com/heartmarshall/ipa-transcriber/internal/service/transcription/transform"
)

// getOrFetch returns the lexicon entry for a normalized word, consulting
// the fallback provider on a miss and caching what it finds. A provider
// failure degrades to the not-found path instead of failing the request.
func (s *Service) getOrFetch(ctx context.Context, word string) (*domain.LexiconEntry, error) {
	entry, err := s.lexicon.Get(ctx, word)
	if err == nil && entry.HasAnyForm() {
		return entry, nil
	}
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get lexicon entry: %w", err)
	}

	if s.fallback == nil {
		return nil, domain.ErrNotFound
	}

	candidates, fetchErr := s.fallback.FetchWord(ctx, word)
	if fetchErr != nil {
		s.log.WarnContext(ctx, "fallback provider error, treating word as unknown",
			slog.String("word", word),
			slog.String("error", fetchErr.Error()),
		)
		return nil, domain.ErrNotFound
	}

	american, rp := provider.Merge(candidates)
	if american == nil && rp == nil {
		return nil, domain.ErrNotFound
	}

	fetched := &domain.LexiconEntry{Word: word, American: american, RP: rp}
	if upsertErr := s.lexicon.Upsert(ctx, fetched); upsertErr != nil {
		s.log.WarnContext(ctx, "failed to cache fetched entry",
			slog.String("word", word),
			slog.String("error", upsertErr.Error()),
		)
	}

	return fetched, nil
}

// LookupRaw returns the stored form for one word and dialect, exactly as
// kept in the lexicon (dual forms keep their envelope).
func (s *Service) LookupRaw(ctx context.Context, word string, dialect domain.Dialect) (string, error) {
	normalized := domain.NormalizeWord(word)
	if normalized == "" {
		return "", domain.NewValidationError("word", "required")
	}

	entry, err := s.getOrFetch(ctx, normalized)
	if err != nil {
		return "", err
	}

	form := entry.Form(dialect)
	if form == "" {
		return "", domain.ErrNotFound
	}
	return form, nil
}

// Lookup returns the stored form for one word and dialect with characters
// corrected for presentation. Dual forms keep their parsed members, each
// corrected independently.
func (s *Service) Lookup(ctx context.Context, word string, dialect domain.Dialect) (domain.ParsedForm, error) {
	raw, err := s.LookupRaw(ctx, word, dialect)
	if err != nil {
		return domain.ParsedForm{}, err
	}

	corrector := transform.NewCorrector(dialect)
	form := domain.ParseForm(raw)
	if form.Dual {
		form.Strong = corrector.Correct(form.Strong)
		form.Weak = corrector.Correct(form.Weak)
	} else {
		form.Single = corrector.Correct(form.Single)
	}
	return form, nil
}

// WordForms returns the full lexicon entry for one word.
func (s *Service) WordForms(ctx context.Context, word string) (*domain.LexiconEntry, error) {
	normalized := domain.NormalizeWord(word)
	if normalized == "" {
		return nil, domain.NewValidationError("word", "required")
	}
	return s.getOrFetch(ctx, normalized)
}

// Package transcription turns English text into IPA. The path is: tokenize,
// resolve each word against the lexicon and the weak-form rule chain,
// correct symbols per dialect, join, and run the dialect's transform
// pipeline over the joined line.
package transcription

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/ipa-transcriber/internal/domain"
	"github.com/heartmarshall/ipa-transcriber/internal/provider"
	"github.com/heartmarshall/ipa-transcriber/internal/service/transcription/rules"
)

type lexiconRepo interface {
	Get(ctx context.Context, word string) (*domain.LexiconEntry, error)
	Upsert(ctx context.Context, entry *domain.LexiconEntry) error
}

type fallbackProvider interface {
	FetchWord(ctx context.Context, word string) ([]provider.Candidate, error)
}

// Service implements text transcription. Rule and transformer lists are
// built once here and never mutated afterwards.
type Service struct {
	log      *slog.Logger
	lexicon  lexiconRepo
	fallback fallbackProvider
	chain    *rules.Chain
}

// NewService creates a new transcription service. fallback may be nil, in
// which case lexicon misses go straight to the not-found path.
func NewService(logger *slog.Logger, lexicon lexiconRepo, fallback fallbackProvider) *Service {
	return &Service{
		log:      logger.With("service", "transcription"),
		lexicon:  lexicon,
		fallback: fallback,
		chain:    rules.NewChain(),
	}
}

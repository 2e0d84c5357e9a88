package transcription

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/ipa-transcriber/internal/domain"
	"github.com/heartmarshall/ipa-transcriber/internal/service/transcription/rules"
	"github.com/heartmarshall/ipa-transcriber/internal/service/transcription/transform"
)

// Transcribe converts input text into one IPA line. Unknown words pass
// through literally and are reported in the result's NotFound list.
func (s *Service) Transcribe(ctx context.Context, input string, opts domain.TranscriptionOptions) (*domain.TranscriptionResult, error) {
	if !opts.Dialect.IsValid() {
		return nil, domain.NewValidationError("dialect", "must be american or rp")
	}

	tokens := Tokenize(input)
	if len(tokens) == 0 {
		return &domain.TranscriptionResult{}, nil
	}

	corrector := transform.NewCorrector(opts.Dialect)

	surfaces := make([]string, len(tokens))
	parts := make([]string, len(tokens))
	var notFound []string
	seen := make(map[string]struct{})

	for i, tok := range tokens {
		surfaces[i] = tok.Text

		if tok.IsPunctuation() {
			parts[i] = tok.Text
			continue
		}

		word := domain.NormalizeWord(tok.Text)
		if word == "" {
			parts[i] = tok.Text
			continue
		}

		entry, err := s.getOrFetch(ctx, word)
		if err != nil {
			if !errors.Is(err, domain.ErrNotFound) {
				return nil, fmt.Errorf("resolve %q: %w", word, err)
			}
			parts[i] = tok.Text
			if _, dup := seen[word]; !dup {
				seen[word] = struct{}{}
				notFound = append(notFound, word)
			}
			continue
		}

		form := domain.ParseForm(entry.Form(opts.Dialect))
		ruleCtx := rules.Context{Word: word, Index: i, Tokens: tokens}
		parts[i] = corrector.Correct(s.chooseForm(word, form, ruleCtx, opts.UseWeakForms))
	}

	if opts.Dialect == domain.DialectRP {
		transform.LinkingR{}.Apply(surfaces, parts)
	}

	line := Join(parts)
	line = s.pipeline(opts).Apply(line)

	s.log.DebugContext(ctx, "transcribed",
		slog.String("dialect", string(opts.Dialect)),
		slog.Int("tokens", len(tokens)),
		slog.Int("not_found", len(notFound)),
	)

	return &domain.TranscriptionResult{IPA: line, NotFound: notFound}, nil
}

// pipeline assembles the joined-line stages for one request. Stage order
// is fixed; the stress remover, when enabled, always runs last.
func (s *Service) pipeline(opts domain.TranscriptionOptions) *transform.Pipeline {
	stages := []transform.Transformer{transform.TheVariation{}}
	if opts.Dialect == domain.DialectRP {
		stages = append(stages, transform.SymbolTransform{})
	}
	if opts.IgnoreStress {
		stages = append(stages, transform.StressRemover{})
	}
	return transform.NewPipeline(stages...)
}

package seeder

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/heartmarshall/ipa-transcriber/internal/domain"
	"github.com/heartmarshall/ipa-transcriber/internal/seeder/cmu"
	"github.com/heartmarshall/ipa-transcriber/internal/seeder/weakforms"
)

// allPhases defines the canonical execution order. The weakforms phase must
// run after cmu so the RP dual forms land on top of the CMU rows.
var allPhases = []string{"cmu", "weakforms"}

// LexiconBulkRepo defines the batch repository contract consumed by the
// pipeline. All methods use only domain types, no adapter imports.
// Implemented by lexicon.Repo.
type LexiconBulkRepo interface {
	UpsertBatch(ctx context.Context, entries []domain.LexiconEntry) error
	Count(ctx context.Context) (int64, error)
}

// TxManager wraps one phase's batches in a transaction.
type TxManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// PhaseResult holds the outcome of a single pipeline phase.
type PhaseResult struct {
	Upserted int
	Duration time.Duration
	Err      error
}

// Pipeline orchestrates the two-phase seeding process.
type Pipeline struct {
	log     *slog.Logger
	repo    LexiconBulkRepo
	tx      TxManager
	cfg     Config
	results map[string]PhaseResult
}

// NewPipeline creates a new Pipeline.
func NewPipeline(log *slog.Logger, repo LexiconBulkRepo, tx TxManager, cfg Config) *Pipeline {
	return &Pipeline{
		log:     log,
		repo:    repo,
		tx:      tx,
		cfg:     cfg,
		results: make(map[string]PhaseResult),
	}
}

// Results returns phase results after Run completes.
func (p *Pipeline) Results() map[string]PhaseResult {
	return p.results
}

// HasErrors returns true if any phase recorded an error.
func (p *Pipeline) HasErrors() bool {
	for _, r := range p.results {
		if r.Err != nil {
			return true
		}
	}
	return false
}

// Run executes the pipeline phases in canonical order. An empty filter runs
// all phases. A failed phase is recorded and does not stop later phases.
func (p *Pipeline) Run(ctx context.Context, phases []string) error {
	selected := make(map[string]bool, len(phases))
	for _, name := range phases {
		if !slices.Contains(allPhases, name) {
			return fmt.Errorf("unknown phase %q (known: %v)", name, allPhases)
		}
		selected[name] = true
	}

	for _, phase := range allPhases {
		if len(selected) > 0 && !selected[phase] {
			continue
		}
		start := time.Now()

		var (
			upserted int
			err      error
		)
		switch phase {
		case "cmu":
			upserted, err = p.runCMU(ctx)
		case "weakforms":
			upserted, err = p.runWeakForms(ctx)
		}

		p.results[phase] = PhaseResult{
			Upserted: upserted,
			Duration: time.Since(start),
			Err:      err,
		}

		if err != nil {
			p.log.ErrorContext(ctx, "seeder phase failed",
				slog.String("phase", phase),
				slog.String("error", err.Error()),
			)
			continue
		}

		p.log.InfoContext(ctx, "seeder phase complete",
			slog.String("phase", phase),
			slog.Int("upserted", upserted),
			slog.Duration("duration", p.results[phase].Duration),
		)
	}

	total, err := p.repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("count lexicon: %w", err)
	}
	p.log.InfoContext(ctx, "seeding finished", slog.Int64("lexicon_size", total))

	return nil
}

func (p *Pipeline) runCMU(ctx context.Context) (int, error) {
	if p.cfg.CMUPath == "" {
		return 0, fmt.Errorf("cmu path not configured")
	}

	parsed, err := cmu.Parse(p.cfg.CMUPath)
	if err != nil {
		return 0, fmt.Errorf("parse cmu dict: %w", err)
	}

	p.log.InfoContext(ctx, "cmu dictionary parsed",
		slog.Int("lines", parsed.Stats.TotalLines),
		slog.Int("words", parsed.Stats.UniqueWords),
	)

	return p.upsertAll(ctx, parsed.ToLexiconEntries())
}

func (p *Pipeline) runWeakForms(ctx context.Context) (int, error) {
	return p.upsertAll(ctx, weakforms.Entries())
}

// upsertAll writes entries in batches of cfg.BatchSize, each batch in its
// own transaction so one bad batch never poisons the rest.
func (p *Pipeline) upsertAll(ctx context.Context, entries []domain.LexiconEntry) (int, error) {
	if p.cfg.DryRun {
		p.log.InfoContext(ctx, "dry run, skipping writes", slog.Int("entries", len(entries)))
		return 0, nil
	}

	batchSize := p.cfg.BatchSize
	if batchSize <= 0 {
		batchSize = 500
	}

	written := 0
	for start := 0; start < len(entries); start += batchSize {
		end := min(start+batchSize, len(entries))
		batch := entries[start:end]

		err := p.tx.RunInTx(ctx, func(txCtx context.Context) error {
			return p.repo.UpsertBatch(txCtx, batch)
		})
		if err != nil {
			return written, fmt.Errorf("upsert batch at %d: %w", start, err)
		}

		written += len(batch)
	}

	return written, nil
}

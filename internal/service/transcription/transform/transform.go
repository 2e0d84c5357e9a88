// Package transform implements the post-lookup transformation stages that
// turn a sequence of per-word transcriptions into the final IPA line.
// Stage order is fixed; every stage is a pure string rewrite.
package transform

// Transformer rewrites a fully joined transcription line.
type Transformer interface {
	Name() string
	Apply(text string) string
}

// Pipeline applies its stages in construction order.
type Pipeline struct {
	stages []Transformer
}

func NewPipeline(stages ...Transformer) *Pipeline {
	return &Pipeline{stages: stages}
}

func (p *Pipeline) Apply(text string) string {
	for _, s := range p.stages {
		text = s.Apply(text)
	}
	return text
}

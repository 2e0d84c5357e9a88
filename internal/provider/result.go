package provider

// Candidate is one transcription candidate returned by an external
// dictionary provider. Either dialect form may be missing; candidates are
// ordered by provider preference.
type Candidate struct {
	Source   string
	American *string
	RP       *string
}

// Merge folds candidates into a single pair of dialect forms, first
// non-nil wins per dialect.
func Merge(candidates []Candidate) (american, rp *string) {
	for _, c := range candidates {
		if american == nil && c.American != nil {
			american = c.American
		}
		if rp == nil && c.RP != nil {
			rp = c.RP
		}
	}
	return american, rp
}

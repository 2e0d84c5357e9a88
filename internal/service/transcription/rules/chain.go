package rules

// Chain holds the rules in priority order. Resolution walks the slice and
// stops at the first rule whose AppliesTo returns true.
type Chain struct {
	rules []Rule
}

// NewChain builds the default chain. The order is part of the contract:
// word-specific rules must run before the positional fallback, and the
// contraction guard must run before everything else.
func NewChain() *Chain {
	return &Chain{
		rules: []Rule{
			contractionRule{},
			theRule{},
			thereRule{},
			thatRule{},
			haveRule{},
			mustRule{},
			positionalRule{},
		},
	}
}

// Resolve runs the chain for one word. When no rule applies (unreachable
// with the default chain, whose last rule applies to every word), the
// decision defaults to weak.
func (c *Chain) Resolve(word string, ctx Context) Decision {
	for _, r := range c.rules {
		if !r.AppliesTo(word, ctx) {
			continue
		}

		d := Decision{Rule: r.Name(), UseWeak: r.UseWeak(word, ctx)}
		if d.UseWeak {
			if wf, ok := r.(WeakFormer); ok {
				d.CustomWeak = wf.WeakForm(word, ctx)
			}
		}
		return d
	}

	return Decision{UseWeak: true}
}

package analysis

import "proofscan/internal/prooftree"

// fileAccumulator collects everything observed for one logical source file:
// the representative display name and per-prover timing stats.
type fileAccumulator struct {
	name    string
	provers map[string]*ProverStats
}

func (fa *fileAccumulator) stats(prover string) *ProverStats {
	ps, ok := fa.provers[prover]
	if !ok {
		ps = &ProverStats{}
		fa.provers[prover] = ps
	}
	return ps
}

// Aggregator walks proof trees and builds the two-level file -> prover ->
// stats mapping the ranking engine consumes. State is rebuilt from scratch
// per run; nothing survives across Aggregator values.
//
// All updates are commutative accumulations or max operations, so the result
// does not depend on traversal order, with the one documented exception of
// ResolveSourceName's fold order.
type Aggregator struct {
	normalizer *Normalizer
	files      map[string]*fileAccumulator
}

// NewAggregator returns an empty aggregator using the given step normalizer.
// A nil normalizer uses the default rule table.
func NewAggregator(n *Normalizer) *Aggregator {
	if n == nil {
		n = NewNormalizer(nil)
	}
	return &Aggregator{
		normalizer: n,
		files:      make(map[string]*fileAccumulator),
	}
}

// AddTree folds one proof tree into the accumulators. The tree is trusted to
// be well formed; see the prooftree builder for the invariants it enforces.
func (a *Aggregator) AddTree(t *prooftree.Tree) {
	for _, entity := range t.Entities() {
		for _, itemID := range t.Items(entity) {
			item := t.Item(itemID)
			fa := a.file(FileKey(item.SourceFile))
			fa.name = ResolveSourceName(fa.name, item.SourceFile)

			for _, attemptID := range t.Attempts(itemID) {
				att := t.Attempt(attemptID)
				ps := fa.stats(att.Prover)
				if att.Result.IsValid() {
					ps.Success += att.Time
					if att.Time > ps.MaxSuccess {
						ps.MaxSuccess = att.Time
					}
					if steps := a.normalizer.Steps(att.Prover, att.Steps); steps > ps.MaxSteps {
						ps.MaxSteps = steps
					}
				} else {
					// Anything that is not Valid (Invalid, Timeout, Unknown,
					// values we have never seen) counts as wasted time.
					ps.Failed += att.Time
				}
			}
		}
	}
}

func (a *Aggregator) file(key string) *fileAccumulator {
	fa, ok := a.files[key]
	if !ok {
		fa = &fileAccumulator{provers: make(map[string]*ProverStats)}
		a.files[key] = fa
	}
	return fa
}

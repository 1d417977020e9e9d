package analysis

import "sort"

// TrivialProver marks obligations discharged without real proving effort.
// It is never part of a recommendation.
const TrivialProver = "Trivial"

// RankOptions tunes the ranking output.
type RankOptions struct {
	// ExcludeProvers are dropped from the output in addition to
	// TrivialProver, which is always excluded.
	ExcludeProvers []string
	// Limit caps the number of files returned; 0 means no cap.
	Limit int
}

// Rank turns an aggregator's accumulated stats into the final recommendation:
// files in ascending canonical-name order, each with its provers ordered
// best-first by (Failed ASC, Success DESC). Files whose only recorded provers
// are excluded, or which recorded none, are dropped.
//
// The ranking reflects only provers that were actually invoked. A prover
// skipped because an earlier one already discharged the obligation is simply
// absent, which is accepted imprecision.
func Rank(a *Aggregator, opts RankOptions) []FileData {
	excluded := map[string]bool{TrivialProver: true}
	for _, p := range opts.ExcludeProvers {
		excluded[p] = true
	}

	files := make([]FileData, 0, len(a.files))
	for _, fa := range a.files {
		provers := collectProvers(fa, excluded)
		if len(provers) == 0 {
			continue
		}
		SortProvers(provers)
		files = append(files, FileData{Name: fa.name, Provers: provers})
	}

	SortFiles(files)
	if opts.Limit > 0 && len(files) > opts.Limit {
		files = files[:opts.Limit]
	}
	return files
}

func collectProvers(fa *fileAccumulator, excluded map[string]bool) []ProverData {
	names := make([]string, 0, len(fa.provers))
	for name := range fa.provers {
		if excluded[name] {
			continue
		}
		names = append(names, name)
	}
	// Seed with a deterministic order so that full comparator ties do not
	// depend on map iteration order and reruns stay byte-identical.
	sort.Strings(names)

	provers := make([]ProverData, 0, len(names))
	for _, name := range names {
		provers = append(provers, ProverData{Prover: name, Stats: *fa.provers[name]})
	}
	return provers
}

// SortProvers orders provers best-first: ascending total failed time (less
// wasted time first), then descending total success time as the tie-break
// proxy for "most successfully exercised".
func SortProvers(provers []ProverData) {
	sort.SliceStable(provers, func(i, j int) bool {
		// Primary: failed time ASC
		if provers[i].Stats.Failed != provers[j].Stats.Failed {
			return provers[i].Stats.Failed < provers[j].Stats.Failed
		}
		// Secondary: success time DESC
		return provers[i].Stats.Success > provers[j].Stats.Success
	})
}

// SortFiles orders file entries by ascending canonical name.
func SortFiles(files []FileData) {
	sort.SliceStable(files, func(i, j int) bool {
		return files[i].Name < files[j].Name
	})
}

// Package analysis aggregates prover timing statistics out of a proof tree
// and ranks, per source file, which prover to try first.
package analysis

// ProverStats accumulates the timing profile of one prover on one file.
// All fields are non-negative and only ever grow during one aggregation pass.
type ProverStats struct {
	// Success is the total time (seconds) spent on attempts that proved.
	Success float64 `json:"success" yaml:"success"`
	// Failed is the total time (seconds) spent on attempts that did not prove.
	Failed float64 `json:"failed" yaml:"failed"`
	// MaxSuccess is the longest single proving attempt (seconds).
	MaxSuccess float64 `json:"maxSuccess" yaml:"maxSuccess"`
	// MaxSteps is the largest normalized step count over proving attempts.
	// Zero means no proving attempt was recorded: normalized counts are >= 1.
	MaxSteps int64 `json:"maxSteps" yaml:"maxSteps"`
}

// ProverData pairs a prover identity with its accumulated stats.
type ProverData struct {
	Prover string      `json:"prover" yaml:"prover"`
	Stats  ProverStats `json:"stats" yaml:"stats"`
}

// FileData is the per-file analysis result: the canonical display name and
// the provers recorded for it, ordered best-first.
type FileData struct {
	Name    string       `json:"name" yaml:"name"`
	Provers []ProverData `json:"provers" yaml:"provers"`
}

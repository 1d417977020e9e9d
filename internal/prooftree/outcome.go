package prooftree

// Outcome is the reported result of one prover invocation.
//
// Only OutcomeValid counts as a success anywhere in the analysis; every
// other value (including ones this package has no constant for) is treated
// uniformly as a failure.
type Outcome string

const (
	OutcomeValid   Outcome = "Valid"
	OutcomeInvalid Outcome = "Invalid"
	OutcomeTimeout Outcome = "Timeout"
	OutcomeUnknown Outcome = "Unknown"
)

// IsValid reports whether the outcome is a proven result.
func (o Outcome) IsValid() bool {
	return o == OutcomeValid
}

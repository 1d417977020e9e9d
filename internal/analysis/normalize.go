package analysis

import "strings"

// NormalizationRule rescales the raw step count of provers whose name starts
// with Prefix: steps = max(raw-Offset, 0)/Divisor + 1 (integer division).
type NormalizationRule struct {
	Prefix  string `json:"prefix" toml:"prefix"`
	Offset  int64  `json:"offset" toml:"offset"`
	Divisor int64  `json:"divisor" toml:"divisor"`
}

// DefaultNormalizationRules returns the built-in rescaling table, measured
// against the provers the verification toolchain ships with.
func DefaultNormalizationRules() []NormalizationRule {
	return []NormalizationRule{
		{Prefix: "CVC4", Offset: 15000, Divisor: 35},
		{Prefix: "Z3", Offset: 450000, Divisor: 800},
	}
}

// Normalizer maps raw prover step counts onto a roughly comparable scale.
// Provers matching no rule get raw+1. The result is always >= 1, so an
// attempt that ran with 0 reported steps is distinguishable from a prover
// that never ran at all (which has no accumulator entry).
type Normalizer struct {
	rules []NormalizationRule
}

// NewNormalizer builds a normalizer from a rule table. First matching prefix
// wins. An empty table falls back to the defaults.
func NewNormalizer(rules []NormalizationRule) *Normalizer {
	if len(rules) == 0 {
		rules = DefaultNormalizationRules()
	}
	return &Normalizer{rules: rules}
}

// Steps normalizes a raw step count for the given prover. raw must be >= 0.
func (n *Normalizer) Steps(prover string, raw int64) int64 {
	for _, r := range n.rules {
		if strings.HasPrefix(prover, r.Prefix) {
			adjusted := raw - r.Offset
			if adjusted < 0 {
				adjusted = 0
			}
			return adjusted/r.Divisor + 1
		}
	}
	return raw + 1
}

// NormalizeSteps normalizes with the default rule table.
func NormalizeSteps(prover string, raw int64) int64 {
	return NewNormalizer(nil).Steps(prover, raw)
}

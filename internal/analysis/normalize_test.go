package analysis

import "testing"

func TestNormalizeSteps(t *testing.T) {
	tests := []struct {
		name     string
		prover   string
		raw      int64
		expected int64
	}{
		{
			name:     "cvc4 below threshold",
			prover:   "CVC4",
			raw:      100,
			expected: 1,
		},
		{
			name:     "cvc4 at threshold",
			prover:   "CVC4",
			raw:      15000,
			expected: 1,
		},
		{
			name:     "cvc4 above threshold",
			prover:   "CVC4",
			raw:      15000 + 70,
			expected: 3,
		},
		{
			name:     "cvc4 truncating division",
			prover:   "CVC4",
			raw:      15000 + 34,
			expected: 1,
		},
		{
			name:     "cvc4 versioned name matches by prefix",
			prover:   "CVC4_1.18",
			raw:      15000 + 350,
			expected: 11,
		},
		{
			name:     "z3 below threshold",
			prover:   "Z3",
			raw:      449999,
			expected: 1,
		},
		{
			name:     "z3 above threshold",
			prover:   "Z3-4.8",
			raw:      450000 + 8000,
			expected: 11,
		},
		{
			name:     "unknown prover is raw plus one",
			prover:   "altergo",
			raw:      42,
			expected: 43,
		},
		{
			name:     "zero steps still yields one",
			prover:   "altergo",
			raw:      0,
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeSteps(tt.prover, tt.raw)
			if got != tt.expected {
				t.Errorf("NormalizeSteps(%q, %d) = %d, want %d", tt.prover, tt.raw, got, tt.expected)
			}
		})
	}
}

func TestNormalizeStepsAtLeastOne(t *testing.T) {
	for _, prover := range []string{"CVC4", "Z3", "altergo"} {
		for _, raw := range []int64{0, 1, 14999, 15000, 449999, 450000, 1 << 30} {
			if got := NormalizeSteps(prover, raw); got < 1 {
				t.Errorf("NormalizeSteps(%q, %d) = %d, want >= 1", prover, raw, got)
			}
		}
	}
}

func TestNormalizeStepsNonDecreasing(t *testing.T) {
	tests := []struct {
		prover string
		from   int64
	}{
		{"CVC4", 15000},
		{"Z3", 450000},
		{"altergo", 0},
	}

	for _, tt := range tests {
		prev := int64(0)
		for raw := tt.from; raw < tt.from+5000; raw += 97 {
			got := NormalizeSteps(tt.prover, raw)
			if got < prev {
				t.Fatalf("NormalizeSteps(%q, %d) = %d decreased from %d", tt.prover, raw, got, prev)
			}
			prev = got
		}
	}
}

func TestNormalizerCustomRules(t *testing.T) {
	n := NewNormalizer([]NormalizationRule{
		{Prefix: "CVC5", Offset: 100, Divisor: 10},
	})

	if got := n.Steps("CVC5", 250); got != 16 {
		t.Errorf("Steps(CVC5, 250) = %d, want 16", got)
	}
	// Provers outside the custom table fall through to raw+1, including ones
	// the default table would have rescaled.
	if got := n.Steps("CVC4", 20000); got != 20001 {
		t.Errorf("Steps(CVC4, 20000) = %d, want 20001", got)
	}
}

func TestNewNormalizerEmptyUsesDefaults(t *testing.T) {
	n := NewNormalizer(nil)
	if got := n.Steps("Z3", 450800); got != 2 {
		t.Errorf("Steps(Z3, 450800) = %d, want 2", got)
	}
}

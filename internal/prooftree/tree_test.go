package prooftree

import "testing"

func TestTreeBuildAndTraverse(t *testing.T) {
	tree := New()

	e1 := tree.AddEntity(Entity{Name: "Stack.Push"})
	e2 := tree.AddEntity(Entity{Name: "Stack.Pop"})

	i1 := tree.AddItem(e1, ProofItem{SourceFile: "stack.adb", Line: 12, Check: "overflow"})
	i2 := tree.AddItem(e1, ProofItem{SourceFile: "stack.ads", Line: 4, Check: "precondition"})

	a1 := tree.AddAttempt(i1, Attempt{Prover: "Z3", Result: OutcomeValid, Time: 0.2, Steps: 10})
	a2 := tree.AddAttempt(i1, Attempt{Prover: "CVC4", Result: OutcomeTimeout, Time: 5.0, Steps: 0})

	if got := tree.Entities(); len(got) != 2 || got[0] != e1 || got[1] != e2 {
		t.Errorf("Entities() = %v, want [%d %d]", got, e1, e2)
	}
	if got := tree.Items(e1); len(got) != 2 || got[0] != i1 || got[1] != i2 {
		t.Errorf("Items(e1) = %v, want [%d %d]", got, i1, i2)
	}
	if got := tree.Items(e2); len(got) != 0 {
		t.Errorf("Items(e2) = %v, want empty", got)
	}
	if got := tree.Attempts(i1); len(got) != 2 || got[0] != a1 || got[1] != a2 {
		t.Errorf("Attempts(i1) = %v, want [%d %d]", got, a1, a2)
	}

	if got := tree.Entity(e1).Name; got != "Stack.Push" {
		t.Errorf("Entity(e1).Name = %q", got)
	}
	if got := tree.Item(i2).SourceFile; got != "stack.ads" {
		t.Errorf("Item(i2).SourceFile = %q", got)
	}
	if got := tree.Attempt(a2); got.Prover != "CVC4" || got.Result.IsValid() {
		t.Errorf("Attempt(a2) = %+v", got)
	}

	if tree.Len() != 6 {
		t.Errorf("Len() = %d, want 6", tree.Len())
	}
	if tree.Kind(i1) != KindProofItem {
		t.Errorf("Kind(i1) = %v, want %v", tree.Kind(i1), KindProofItem)
	}
}

func TestTreeKindMismatchPanics(t *testing.T) {
	tree := New()
	entity := tree.AddEntity(Entity{Name: "E"})
	item := tree.AddItem(entity, ProofItem{SourceFile: "e.ads"})

	tests := []struct {
		name string
		fn   func()
	}{
		{"item accessor on entity", func() { tree.Item(entity) }},
		{"entity accessor on item", func() { tree.Entity(item) }},
		{"attempt under entity", func() { tree.AddAttempt(entity, Attempt{Prover: "Z3", Result: OutcomeValid}) }},
		{"item under item", func() { tree.AddItem(item, ProofItem{SourceFile: "x.ads"}) }},
		{"out of range id", func() { tree.Kind(NodeID(99)) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("expected panic")
				}
			}()
			tt.fn()
		})
	}
}

func TestTreeNegativeAttemptPanics(t *testing.T) {
	tree := New()
	entity := tree.AddEntity(Entity{Name: "E"})
	item := tree.AddItem(entity, ProofItem{SourceFile: "e.ads"})

	for _, a := range []Attempt{
		{Prover: "Z3", Result: OutcomeValid, Time: -1},
		{Prover: "Z3", Result: OutcomeValid, Steps: -1},
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("expected panic for %+v", a)
				}
			}()
			tree.AddAttempt(item, a)
		}()
	}
}

func TestOutcomeIsValid(t *testing.T) {
	tests := []struct {
		outcome  Outcome
		expected bool
	}{
		{OutcomeValid, true},
		{OutcomeInvalid, false},
		{OutcomeTimeout, false},
		{OutcomeUnknown, false},
		{Outcome("HighFailure"), false},
		{Outcome(""), false},
	}

	for _, tt := range tests {
		if got := tt.outcome.IsValid(); got != tt.expected {
			t.Errorf("Outcome(%q).IsValid() = %v, want %v", tt.outcome, got, tt.expected)
		}
	}
}

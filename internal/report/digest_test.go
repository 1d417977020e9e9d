package report

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDigestStable(t *testing.T) {
	dir := t.TempDir()
	a := writeReport(t, dir, "a.proof", `{"units": []}`)
	b := writeReport(t, dir, "b.proof", `{"units": []}`)

	first, err := Digest([]string{a, b})
	if err != nil {
		t.Fatalf("Digest() error: %v", err)
	}
	second, err := Digest([]string{a, b})
	if err != nil {
		t.Fatalf("Digest() error: %v", err)
	}
	if first != second {
		t.Errorf("digest changed across runs: %s vs %s", first, second)
	}
	if len(first) != 64 {
		t.Errorf("digest length = %d, want 64 hex chars", len(first))
	}
}

func TestDigestChangesWithContent(t *testing.T) {
	dir := t.TempDir()
	path := writeReport(t, dir, "a.proof", `{"units": []}`)

	before, err := Digest([]string{path})
	if err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(path, []byte(`{"units": [{"name": "U", "items": []}]}`), 0644); err != nil {
		t.Fatal(err)
	}
	after, err := Digest([]string{path})
	if err != nil {
		t.Fatal(err)
	}

	if before == after {
		t.Error("digest did not change with content")
	}
}

func TestDigestChangesWithPath(t *testing.T) {
	dir := t.TempDir()
	a := writeReport(t, dir, "a.proof", `{"units": []}`)
	renamed := filepath.Join(dir, "renamed.proof")
	if err := os.Rename(a, renamed); err != nil {
		t.Fatal(err)
	}
	b := writeReport(t, dir, "a.proof", `{"units": []}`)

	one, err := Digest([]string{b})
	if err != nil {
		t.Fatal(err)
	}
	two, err := Digest([]string{renamed})
	if err != nil {
		t.Fatal(err)
	}
	if one == two {
		t.Error("digest should depend on the file path")
	}
}

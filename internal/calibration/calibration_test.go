package calibration

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"proofscan/internal/analysis"
	pserrors "proofscan/internal/errors"
)

func writeCalibration(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), CalibrationFile)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeCalibration(t, `
version = 1

[[rule]]
prefix = "CVC5"
offset = 20000
divisor = 50

[[rule]]
prefix = "Z3"
offset = 500000
divisor = 1000
`)

	rules, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	want := []analysis.NormalizationRule{
		{Prefix: "CVC5", Offset: 20000, Divisor: 50},
		{Prefix: "Z3", Offset: 500000, Divisor: 1000},
	}
	if !reflect.DeepEqual(rules, want) {
		t.Errorf("Load() = %v, want %v", rules, want)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	rules, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if !reflect.DeepEqual(rules, analysis.DefaultNormalizationRules()) {
		t.Errorf("Load() = %v, want defaults", rules)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "not toml",
			content: "{json: true}",
		},
		{
			name: "empty prefix",
			content: `
[[rule]]
prefix = ""
offset = 1
divisor = 1
`,
		},
		{
			name: "zero divisor",
			content: `
[[rule]]
prefix = "Z3"
offset = 1
divisor = 0
`,
		},
		{
			name: "negative offset",
			content: `
[[rule]]
prefix = "Z3"
offset = -1
divisor = 10
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeCalibration(t, tt.content))
			if err == nil {
				t.Fatal("expected error")
			}
			if got := pserrors.CodeOf(err); got != pserrors.CalibrationInvalid {
				t.Errorf("error code = %s, want %s", got, pserrors.CalibrationInvalid)
			}
		})
	}
}

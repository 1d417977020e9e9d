// Package calibration loads prover step-normalization rules from a TOML
// calibration file, allowing deployments with differently tuned provers to
// override the built-in rescaling table.
package calibration

import (
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"

	"proofscan/internal/analysis"
	pserrors "proofscan/internal/errors"
)

// CalibrationFile is the default filename looked up next to the config.
const CalibrationFile = "calibration.toml"

// File is the root structure of a calibration.toml file.
type File struct {
	// Version is the schema version.
	Version int `toml:"version"`

	// Rules are the prover step-normalization rules, first match wins.
	Rules []analysis.NormalizationRule `toml:"rule"`
}

// Load parses a calibration file and returns the rule table it declares.
// A missing file is not an error: the built-in defaults are returned.
func Load(path string) ([]analysis.NormalizationRule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return analysis.DefaultNormalizationRules(), nil
		}
		return nil, pserrors.New(pserrors.CalibrationInvalid,
			fmt.Sprintf("cannot read calibration file %s", path), err)
	}

	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, pserrors.New(pserrors.CalibrationInvalid,
			fmt.Sprintf("cannot parse calibration file %s", path), err)
	}

	if err := validate(&f); err != nil {
		return nil, err
	}
	return f.Rules, nil
}

func validate(f *File) error {
	for i, r := range f.Rules {
		if r.Prefix == "" {
			return pserrors.New(pserrors.CalibrationInvalid,
				fmt.Sprintf("rule %d: prefix must not be empty", i), nil)
		}
		if r.Divisor <= 0 {
			return pserrors.New(pserrors.CalibrationInvalid,
				fmt.Sprintf("rule %d (%s): divisor must be positive", i, r.Prefix), nil)
		}
		if r.Offset < 0 {
			return pserrors.New(pserrors.CalibrationInvalid,
				fmt.Sprintf("rule %d (%s): offset must not be negative", i, r.Prefix), nil)
		}
	}
	return nil
}

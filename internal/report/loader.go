// Package report loads proof-session report files into proof trees.
//
// A report file is a JSON document describing the provable units of one
// compilation unit, the verification conditions under each, and the prover
// attempts recorded against each condition. Files ending in .gz are read
// through a gzip decoder. Validation is strict: a malformed report yields a
// coded error and no tree, never a partially loaded one.
package report

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/klauspost/compress/gzip"
	"golang.org/x/sync/errgroup"

	pserrors "proofscan/internal/errors"
	"proofscan/internal/prooftree"
)

// DefaultExtension is the report file extension the scanner looks for.
const DefaultExtension = ".proof"

type reportFile struct {
	Units []reportUnit `json:"units"`
}

type reportUnit struct {
	Name  string       `json:"name"`
	Items []reportItem `json:"items"`
}

type reportItem struct {
	File     string          `json:"file"`
	Line     int             `json:"line,omitempty"`
	Check    string          `json:"check,omitempty"`
	Attempts []reportAttempt `json:"attempts"`
}

type reportAttempt struct {
	Prover string  `json:"prover"`
	Result string  `json:"result"`
	Time   float64 `json:"time"`
	Steps  int64   `json:"steps"`
}

// Load parses and validates a single report file into a proof tree.
func Load(path string) (*prooftree.Tree, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, pserrors.New(pserrors.ReportNotFound,
			fmt.Sprintf("cannot open report %s", path), err)
	}
	defer func() { _ = f.Close() }()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, malformed(path, "not a valid gzip stream", err)
		}
		defer func() { _ = gz.Close() }()
		r = gz
	}

	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var rf reportFile
	if err := dec.Decode(&rf); err != nil {
		return nil, malformed(path, "invalid JSON", err)
	}

	return build(path, &rf)
}

// LoadAll loads several report files concurrently, bounded by the number of
// CPUs. The returned trees are in the same order as paths regardless of
// completion order. The first error cancels the remaining loads.
func LoadAll(ctx context.Context, paths []string) ([]*prooftree.Tree, error) {
	trees := make([]*prooftree.Tree, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			t, err := Load(path)
			if err != nil {
				return err
			}
			trees[i] = t
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return trees, nil
}

func build(path string, rf *reportFile) (*prooftree.Tree, error) {
	tree := prooftree.New()
	for ui, u := range rf.Units {
		if u.Name == "" {
			return nil, malformed(path, fmt.Sprintf("unit %d: missing name", ui), nil)
		}
		entity := tree.AddEntity(prooftree.Entity{Name: u.Name})

		for ii, it := range u.Items {
			if it.File == "" {
				return nil, malformed(path,
					fmt.Sprintf("unit %s, item %d: missing file", u.Name, ii), nil)
			}
			item := tree.AddItem(entity, prooftree.ProofItem{
				SourceFile: it.File,
				Line:       it.Line,
				Check:      it.Check,
			})

			for ai, at := range it.Attempts {
				if err := validateAttempt(u.Name, ii, ai, at); err != nil {
					return nil, malformed(path, err.Error(), nil)
				}
				tree.AddAttempt(item, prooftree.Attempt{
					Prover: at.Prover,
					Result: prooftree.Outcome(at.Result),
					Time:   at.Time,
					Steps:  at.Steps,
				})
			}
		}
	}
	return tree, nil
}

func validateAttempt(unit string, item, idx int, at reportAttempt) error {
	where := fmt.Sprintf("unit %s, item %d, attempt %d", unit, item, idx)
	if at.Prover == "" {
		return fmt.Errorf("%s: missing prover", where)
	}
	if at.Result == "" {
		return fmt.Errorf("%s: missing result", where)
	}
	if at.Time < 0 {
		return fmt.Errorf("%s: negative time %v", where, at.Time)
	}
	if at.Steps < 0 {
		return fmt.Errorf("%s: negative steps %d", where, at.Steps)
	}
	return nil
}

func malformed(path, detail string, cause error) error {
	return pserrors.New(pserrors.ReportMalformed,
		fmt.Sprintf("report %s: %s", path, detail), cause)
}

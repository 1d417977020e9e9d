package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"proofscan/internal/analysis"
	"proofscan/internal/calibration"
	"proofscan/internal/logging"
	"proofscan/internal/report"
	"proofscan/internal/scan"
	"proofscan/internal/storage"
)

var (
	analyzeFormat    string
	analyzeLimit     int
	analyzeExclude   []string
	analyzeNoHistory bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [root]",
	Short: "Rank provers per source file by observed timing",
	Long: `Analyze the proof reports under a project root.

Scans the configured report directory, aggregates per-file prover timing
statistics, and prints the recommended prover order for every file: least
wasted (failed) time first, most success time as the tie-break.

Examples:
  proofscan analyze
  proofscan analyze path/to/project
  proofscan analyze --format=human
  proofscan analyze --exclude=altergo --limit=10`,
	Args: cobra.MaximumNArgs(1),
	Run:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeFormat, "format", "json", "Output format (json, human, csv, yaml)")
	analyzeCmd.Flags().IntVar(&analyzeLimit, "limit", 0, "Maximum files to report (0 = unlimited)")
	analyzeCmd.Flags().StringSliceVar(&analyzeExclude, "exclude", nil, "Additional provers to exclude from the ranking")
	analyzeCmd.Flags().BoolVar(&analyzeNoHistory, "no-history", false, "Do not record this run in the history database")
	rootCmd.AddCommand(analyzeCmd)
}

// AnalyzeResponseCLI is the full analyze output.
type AnalyzeResponseCLI struct {
	Files       []analysis.FileData `json:"files" yaml:"files"`
	TotalFiles  int                 `json:"totalFiles" yaml:"totalFiles"`
	ReportCount int                 `json:"reportCount" yaml:"reportCount"`
	Digest      string              `json:"digest" yaml:"digest"`
	DurationMs  int64               `json:"durationMs" yaml:"durationMs"`
	RunID       string              `json:"runId,omitempty" yaml:"runId,omitempty"`
}

func runAnalyze(cmd *cobra.Command, args []string) {
	start := time.Now()
	root := rootArg(args)
	cfg := mustLoadConfig(root)
	logger := newLogger(cfg)

	reportDir := joinRoot(root, cfg.ReportDir)
	paths, err := scan.FindReports(reportDir, cfg.ReportExtension)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error scanning reports: %v\n", err)
		os.Exit(1)
	}
	if len(paths) == 0 {
		fmt.Fprintf(os.Stderr, "No %s reports found under %s\n", cfg.ReportExtension, reportDir)
		os.Exit(1)
	}
	logger.Debug("Found reports", map[string]interface{}{
		"count": len(paths),
		"dir":   reportDir,
	})

	digest, err := report.Digest(paths)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error hashing reports: %v\n", err)
		os.Exit(1)
	}

	trees, err := report.LoadAll(context.Background(), paths)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading reports: %v\n", err)
		os.Exit(1)
	}

	rules, err := calibration.Load(joinRoot(root, cfg.Analysis.CalibrationPath))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading calibration: %v\n", err)
		os.Exit(1)
	}

	aggregator := analysis.NewAggregator(analysis.NewNormalizer(rules))
	for _, tree := range trees {
		aggregator.AddTree(tree)
	}

	limit := analyzeLimit
	if limit == 0 {
		limit = cfg.Analysis.MaxFiles
	}
	files := analysis.Rank(aggregator, analysis.RankOptions{
		ExcludeProvers: append(append([]string{}, cfg.Analysis.ExcludeProvers...), analyzeExclude...),
		Limit:          limit,
	})

	response := &AnalyzeResponseCLI{
		Files:       files,
		TotalFiles:  len(files),
		ReportCount: len(paths),
		Digest:      digest,
		DurationMs:  time.Since(start).Milliseconds(),
	}

	if cfg.History.Enabled && !analyzeNoHistory {
		response.RunID = recordHistory(root, logger, digest, start, len(paths), files)
	}

	output, err := FormatResponse(response, OutputFormat(analyzeFormat))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error formatting output: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(output)

	logger.Debug("Analyze completed", map[string]interface{}{
		"files":    len(files),
		"reports":  len(paths),
		"duration": time.Since(start).Milliseconds(),
	})
}

// recordHistory persists the run; history failures are logged, never fatal.
func recordHistory(root string, logger *logging.Logger, digest string, start time.Time, reportCount int, files []analysis.FileData) string {
	db, err := storage.Open(root, logger)
	if err != nil {
		logger.Warn("History unavailable", map[string]interface{}{"error": err.Error()})
		return ""
	}
	defer func() { _ = db.Close() }()

	runID, err := db.RecordRun(digest, start, time.Since(start), reportCount, files)
	if err != nil {
		logger.Warn("Could not record run", map[string]interface{}{"error": err.Error()})
		return ""
	}
	return runID
}

// joinRoot resolves a config path against the project root.
func joinRoot(root, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}

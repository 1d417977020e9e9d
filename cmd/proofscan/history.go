package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"proofscan/internal/storage"
)

var (
	historyFormat string
	historyLimit  int
	historyRun    string
)

var historyCmd = &cobra.Command{
	Use:   "history [root]",
	Short: "List recorded analyze runs",
	Long: `List past analyze runs from the history database.

Each run records when it happened, how many reports, files and provers it
saw, and a digest of the report set so unchanged inputs are recognizable.

Examples:
  proofscan history
  proofscan history --limit=50
  proofscan history --run=<run-id>`,
	Args: cobra.MaximumNArgs(1),
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().StringVar(&historyFormat, "format", "json", "Output format (json, human, csv, yaml)")
	historyCmd.Flags().IntVar(&historyLimit, "limit", 0, "Maximum runs to list (0 = config default)")
	historyCmd.Flags().StringVar(&historyRun, "run", "", "Show the recorded stats of one run instead of the run list")
	rootCmd.AddCommand(historyCmd)
}

// HistoryResponseCLI lists recorded runs.
type HistoryResponseCLI struct {
	Runs       []storage.RunRecord `json:"runs" yaml:"runs"`
	TotalCount int                 `json:"totalCount" yaml:"totalCount"`
}

func runHistory(cmd *cobra.Command, args []string) {
	root := rootArg(args)
	cfg := mustLoadConfig(root)
	logger := newLogger(cfg)

	db, err := storage.Open(root, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening history: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	var response interface{}
	if historyRun != "" {
		files, err := db.RunStats(historyRun)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading run %s: %v\n", historyRun, err)
			os.Exit(1)
		}
		response = &AnalyzeResponseCLI{
			Files:      files,
			TotalFiles: len(files),
			RunID:      historyRun,
		}
	} else {
		limit := historyLimit
		if limit <= 0 {
			limit = cfg.History.MaxRuns
		}
		runs, err := db.ListRuns(limit)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error listing runs: %v\n", err)
			os.Exit(1)
		}
		response = &HistoryResponseCLI{Runs: runs, TotalCount: len(runs)}
	}

	output, err := FormatResponse(response, OutputFormat(historyFormat))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error formatting output: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(output)
}

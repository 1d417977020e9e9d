package main

import (
	"github.com/spf13/cobra"

	"proofscan/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "proofscan",
	Short: "proofscan - prover timing analysis for proof reports",
	Long: `proofscan reads the proof-session reports a formal verification run leaves
behind and aggregates, per source file, how much time each prover spent
succeeding and failing. From that it recommends which prover to try first
for every file, so subsequent verification runs waste less time.`,
	Version: version.Version,
}

func init() {
	rootCmd.SetVersionTemplate("proofscan version {{.Version}}\n")
}

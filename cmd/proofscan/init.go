package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"proofscan/internal/config"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init [root]",
	Short: "Initialize proofscan configuration",
	Long:  "Creates a .proofscan/ directory with default configuration under the project root",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runInit,
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite an existing configuration")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	root := rootArg(args)
	configPath := filepath.Join(root, config.ConfigDir, "config.json")

	if _, err := os.Stat(configPath); err == nil && !initForce {
		// Idempotent behavior: already initialized is success (CI-friendly)
		fmt.Println("proofscan already initialized.")
		fmt.Printf("Configuration at: %s\n", configPath)
		fmt.Println("\nRun 'proofscan init --force' to overwrite.")
		return nil
	}

	cfg := config.DefaultConfig()
	if err := cfg.Save(root); err != nil {
		return fmt.Errorf("failed to write configuration: %w", err)
	}

	fmt.Printf("Initialized proofscan configuration at %s\n", configPath)
	return nil
}

package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tools",
	Short: "Operator utilities for the Merza backend",
	Long: `Operator utilities for the Merza backend.

Bundles the small one-off helpers used around the service: image color
inversion and directory tree printing.`,
}

func main() {
	_ = godotenv.Load()

	rootCmd.AddCommand(invertCmd)
	rootCmd.AddCommand(treeCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

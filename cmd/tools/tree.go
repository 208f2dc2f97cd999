package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var treeSkipDirs = map[string]bool{
	"node_modules": true,
	".git":         true,
}

var treeCmd = &cobra.Command{
	Use:   "tree [dir]",
	Short: "Print a directory tree",
	Long: `Print a directory tree.

Walks the given directory (default ".") and prints its layout with
branch glyphs, skipping node_modules and .git.`,
	Example: `  tools tree
  tools tree ./frontend`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTree,
}

func runTree(cmd *cobra.Command, args []string) error {
	root := "."
	if len(args) == 1 {
		root = args[0]
	}

	info, err := os.Stat(root)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", root)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintln(w, filepath.Base(filepath.Clean(root))+"/")
	return printTree(w, root, "")
}

func printTree(w io.Writer, dir, prefix string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	kept := entries[:0]
	for _, e := range entries {
		if e.IsDir() && treeSkipDirs[e.Name()] {
			continue
		}
		kept = append(kept, e)
	}

	for i, e := range kept {
		connector := "├── "
		childPrefix := prefix + "│   "
		if i == len(kept)-1 {
			connector = "└── "
			childPrefix = prefix + "    "
		}

		name := e.Name()
		if e.IsDir() {
			name += "/"
		}
		fmt.Fprintln(w, prefix+connector+name)

		if e.IsDir() {
			if err := printTree(w, filepath.Join(dir, e.Name()), childPrefix); err != nil {
				return err
			}
		}
	}
	return nil
}

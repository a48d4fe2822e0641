// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Command gendocs writes the gcschema reference: one markdown page per
// command and the JSON Schema of the converted document.
//
// Usage:
//
//	go run ./cmd/gendocs [output-dir]
//
// Default output directory is ./docs/cli.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dacolabs/gcschema/internal/commands"
	"github.com/dacolabs/gcschema/internal/docschema"
	"github.com/spf13/cobra/doc"
)

func main() {
	dir := "./docs/cli"
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	rootCmd := commands.NewRootCmd()
	rootCmd.DisableAutoGenTag = true

	if err := os.MkdirAll(dir, 0o750); err != nil {
		fmt.Fprintf(os.Stderr, "error creating output dir: %v\n", err)
		os.Exit(1)
	}

	if err := doc.GenMarkdownTree(rootCmd, dir); err != nil {
		fmt.Fprintf(os.Stderr, "error generating docs: %v\n", err)
		os.Exit(1)
	}

	// The root command page is the entry point of the reference.
	oldPath := filepath.Join(dir, "gcschema.md")
	newPath := filepath.Join(dir, "index.md")
	if err := os.Rename(oldPath, newPath); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "error renaming %s to %s: %v\n", oldPath, newPath, err)
		os.Exit(1)
	}

	if err := writeSchema(filepath.Join(dir, "metadata_schema.schema.json")); err != nil {
		fmt.Fprintf(os.Stderr, "error writing document schema: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Documentation generated in %s\n", dir)
}

func writeSchema(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is built from the output dir
	if err != nil {
		return err
	}
	if err := docschema.Encode(f); err != nil {
		f.Close() //nolint:errcheck,gosec
		return err
	}
	return f.Close()
}

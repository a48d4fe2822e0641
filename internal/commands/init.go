// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dacolabs/gcschema/internal/config"
	"github.com/dacolabs/gcschema/internal/prompts"
	"github.com/dacolabs/gcschema/internal/session"
	"github.com/spf13/cobra"
)

type initOptions struct {
	legacyDir      string
	proposed       string
	sheet          string
	tables         string
	nonInteractive bool
}

func newInitCmd() *cobra.Command {
	opts := &initOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a gcschema.yaml project file",
		Long: `Create a gcschema.yaml file in the current directory naming the legacy
schema directory, the proposed schema table and, optionally, a mapping
tables file. Later commands pick it up automatically.`,
		Example: `  # Interactive mode
  gcschema init

  # Non-interactive
  gcschema init --proposed proposed/proposed_schema.csv --non-interactive`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.tables, _ = cmd.Flags().GetString(session.FlagTables)
			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get current directory: %w", err)
			}
			return runInit(cmd, cwd, opts)
		},
	}

	defaults := config.Default()
	cmd.Flags().StringVar(&opts.legacyDir, "legacy-dir", defaults.LegacyDir, "Directory of the 2012 schema and its choice lists")
	cmd.Flags().StringVarP(&opts.proposed, "proposed", "p", defaults.Proposed, "Proposed schema table (.xls, .xlsx or .csv)")
	cmd.Flags().StringVar(&opts.sheet, "sheet", defaults.Sheet, "Workbook sheet holding the proposed fields")
	cmd.Flags().BoolVar(&opts.nonInteractive, "non-interactive", false, "Run without prompts")

	return cmd
}

func runInit(cmd *cobra.Command, dir string, opts *initOptions) error {
	cfgPath := filepath.Join(dir, config.FileName)
	if _, err := os.Stat(cfgPath); err == nil {
		return errors.New("gcschema.yaml already exists; project already initialized")
	}

	if !opts.nonInteractive {
		if err := prompts.RunInitForm(&opts.legacyDir, &opts.proposed, &opts.sheet, &opts.tables); err != nil {
			return err
		}
	}

	cfg := config.Config{
		Version:   config.CurrentConfigVersion,
		LegacyDir: opts.legacyDir,
		Proposed:  opts.proposed,
		Sheet:     opts.sheet,
		Tables:    opts.tables,
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if err := cfg.Save(cfgPath); err != nil {
		return fmt.Errorf("config file couldn't be saved: %w", err)
	}

	prompts.PrintResult(cmd.ErrOrStderr(), []prompts.ResultField{
		{Label: "Config", Value: cfgPath},
		{Label: "Legacy schema", Value: cfg.LegacyDir},
		{Label: "Proposed schema", Value: cfg.Proposed},
	}, "Initialization completed")
	return nil
}

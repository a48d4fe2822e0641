// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dacolabs/gcschema/internal/convert"
	"github.com/dacolabs/gcschema/internal/prompts"
	"github.com/dacolabs/gcschema/internal/session"
	"github.com/spf13/cobra"
)

type tablesCheckOptions struct {
	inputs bool
}

func newTablesCheckCmd() *cobra.Command {
	opts := &tablesCheckOptions{}

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate the mapping tables",
		Long: `Validate the mapping tables on their own and, with --inputs, against the
configured input files. Every problem found is listed instead of stopping at
the first one.`,
		Example: `  # Check the built-in tables
  gcschema tables check

  # Check edited tables against the inputs
  gcschema tables check --tables tables.yaml --inputs`,
		Args: cobra.NoArgs,
		// The session would reject invalid tables before they can be reported.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTablesCheck(cmd, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.inputs, "inputs", false, "Also check the tables against the input files")

	return cmd
}

func runTablesCheck(cmd *cobra.Command, opts *tablesCheckOptions) error {
	cfg, _, err := session.ResolveConfig(session.OptionsFromCommand(cmd))
	if err != nil {
		return err
	}
	tbl, err := session.LoadTables(cfg.Tables)
	if err != nil {
		return err
	}

	var problems []string
	if err := tbl.Validate(); err != nil {
		problems = append(problems, strings.Split(err.Error(), "\n")...)
	} else if opts.inputs {
		found, err := convert.Check(cfg, tbl)
		if err != nil {
			return err
		}
		problems = found
	}

	if len(problems) > 0 {
		prompts.PrintProblems(cmd.ErrOrStderr(), problems)
		return fmt.Errorf("%d problem(s) found in mapping tables", len(problems))
	}

	source := cfg.Tables
	if source == "" {
		source = "built-in"
	}
	prompts.PrintResult(cmd.ErrOrStderr(), []prompts.ResultField{
		{Label: "Tables", Value: source},
		{Label: "Sections", Value: strconv.Itoa(len(tbl.Sections))},
		{Label: "Fields", Value: strconv.Itoa(len(tbl.FieldIDs()))},
		{Label: "Renames", Value: strconv.Itoa(len(tbl.Renames))},
		{Label: "2012 fields", Value: strconv.Itoa(len(tbl.LegacyFields))},
		{Label: "2012 French fields", Value: strconv.Itoa(len(tbl.LegacyFieldsFr))},
	}, "Mapping tables are valid")
	return nil
}

func newTablesShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the mapping tables in effect as YAML",
		Long: `Print the mapping tables in effect as YAML. The output can be edited and
passed back with --tables.`,
		Example: `  # Start editing from the built-in tables
  gcschema tables show > tables.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := session.RequireFromCommand(cmd)
			if err != nil {
				return err
			}
			if ctx.Tables == nil {
				return errors.New("no mapping tables loaded")
			}
			return ctx.Tables.Encode(cmd.OutOrStdout())
		},
	}
}

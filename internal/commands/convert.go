// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/dacolabs/gcschema/internal/assemble"
	"github.com/dacolabs/gcschema/internal/convert"
	"github.com/dacolabs/gcschema/internal/prompts"
	"github.com/dacolabs/gcschema/internal/session"
	"github.com/spf13/cobra"
)

type convertOptions struct {
	legacyDir    string
	legacySchema string
	proposed     string
	sheet        string
	summary      bool
}

func newConvertCmd() *cobra.Command {
	opts := &convertOptions{}

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert the legacy and proposed schemas to one JSON document",
		Long: `Read the 2012 data.gc.ca schema and the proposed schema table, reconcile
every field of the section layout and print the resulting document as JSON
on stdout. Object keys are sorted so the output can be diffed across runs.

Any missing field, text or mapping target aborts the conversion and nothing
is printed.`,
		Example: `  # Convert using ./gcschema.yaml or the default input layout
  gcschema convert > schema.json

  # Convert a CSV export of the proposed table
  gcschema convert --proposed proposed/proposed_schema.csv

  # Use edited mapping tables and show a summary on stderr
  gcschema convert --tables tables.yaml --summary`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.legacyDir, "legacy-dir", "", "Directory of the 2012 schema and its choice lists")
	cmd.Flags().StringVar(&opts.legacySchema, "legacy-schema", "", "Legacy schema file name inside the legacy directory")
	cmd.Flags().StringVarP(&opts.proposed, "proposed", "p", "", "Proposed schema table (.xls, .xlsx or .csv)")
	cmd.Flags().StringVar(&opts.sheet, "sheet", "", "Workbook sheet holding the proposed fields")
	cmd.Flags().BoolVar(&opts.summary, "summary", false, "Print a summary of the converted document to stderr")

	return cmd
}

func runConvert(cmd *cobra.Command, opts *convertOptions) error {
	ctx, err := session.RequireFromCommand(cmd)
	if err != nil {
		return err
	}

	cfg := *ctx.Config
	if opts.legacyDir != "" {
		cfg.LegacyDir = opts.legacyDir
	}
	if opts.legacySchema != "" {
		cfg.LegacySchema = opts.legacySchema
	}
	if opts.proposed != "" {
		cfg.Proposed = opts.proposed
	}
	if opts.sheet != "" {
		cfg.Sheet = opts.sheet
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%w: %v", session.ErrInvalidConfig, err)
	}

	doc, err := convert.Run(&cfg, ctx.Tables, ctx.Logger)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := assemble.Encode(&buf, doc); err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}
	if _, err := cmd.OutOrStdout().Write(buf.Bytes()); err != nil {
		return err
	}

	if opts.summary {
		stats := convert.Summarize(doc)
		prompts.PrintResult(cmd.ErrOrStderr(), []prompts.ResultField{
			{Label: "Sections", Value: strconv.Itoa(stats.Sections)},
			{Label: "Fields", Value: strconv.Itoa(stats.Fields)},
			{Label: "Mapped to 2012 fields", Value: strconv.Itoa(stats.LegacyFields)},
			{Label: "Choice fields", Value: strconv.Itoa(stats.ChoiceFields)},
			{Label: "Bilingual fields", Value: strconv.Itoa(stats.Bilingual)},
		}, "Conversion completed")
	}
	return nil
}

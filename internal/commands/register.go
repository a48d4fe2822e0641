// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package commands contains all CLI command definitions.
package commands

import (
	"github.com/dacolabs/gcschema/internal/session"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command for the CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gcschema",
		Short: "Convert the 2012 data.gc.ca schema to the bilingual metadata schema",
		Long: `gcschema reconciles the 2012 data.gc.ca XML form definition with the
proposed metadata schema table and prints one bilingual JSON schema document.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringP(session.FlagConfig, "c", "", "Path to gcschema.yaml (default: ./gcschema.yaml when present)")
	flags.String(session.FlagTables, "", "Path to a mapping tables file replacing the built-in tables")
	flags.BoolP(session.FlagVerbose, "v", false, "Write debug diagnostics to stderr")

	registerInitCmd(rootCmd)
	registerConvertCmd(rootCmd)
	registerTablesCmd(rootCmd)
	registerSchemaCmd(rootCmd)
	registerVersionCmd(rootCmd)

	return rootCmd
}

func registerInitCmd(parent *cobra.Command) {
	parent.AddCommand(newInitCmd())
}

func registerConvertCmd(parent *cobra.Command) {
	cmd := newConvertCmd()
	cmd.PersistentPreRunE = session.PreRunLoad
	parent.AddCommand(cmd)
}

func registerTablesCmd(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:               "tables",
		Short:             "Inspect the mapping tables",
		PersistentPreRunE: session.PreRunLoad,
	}

	cmd.AddCommand(newTablesCheckCmd())
	cmd.AddCommand(newTablesShowCmd())

	parent.AddCommand(cmd)
}

func registerSchemaCmd(parent *cobra.Command) {
	parent.AddCommand(newSchemaCmd())
}

func registerVersionCmd(parent *cobra.Command) {
	parent.AddCommand(newVersionCmd())
}

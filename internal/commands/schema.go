// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"github.com/dacolabs/gcschema/internal/docschema"
	"github.com/spf13/cobra"
)

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of the converted document",
		Long: `Print the JSON Schema every converted document is checked against before
it is written. Consumers of the document can validate against it.`,
		Example: `  gcschema schema > metadata_schema.schema.json`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return docschema.Encode(cmd.OutOrStdout())
		},
	}
}

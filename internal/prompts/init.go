// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import (
	"path/filepath"
	"strings"

	"github.com/charmbracelet/huh"
)

// RunInitForm runs the interactive form for the init command.
// It fills the provided pointers with user input; prefilled values are
// shown as defaults.
func RunInitForm(legacyDir, proposed, sheet, tables *string) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Legacy schema directory").
				Description("Holds metadata_schema.xml and the choice list files").
				Placeholder("data_gc_ca_2012").
				Validate(requiredValidator("legacy schema directory")).
				Value(legacyDir),
			huh.NewInput().
				Title("Proposed schema table").
				Description(".xls, .xlsx or .csv").
				Placeholder("proposed/proposed_schema.xls").
				Validate(requiredValidator("proposed schema table")).
				Value(proposed),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Sheet name").
				Placeholder("Metadata Schema").
				Validate(requiredValidator("sheet name")).
				Value(sheet),
		).WithHideFunc(func() bool { return isCSV(*proposed) }),
		huh.NewGroup(
			huh.NewInput().
				Title("Mapping tables file").
				Description("Leave empty to use the built-in tables").
				Value(tables),
		),
	).WithTheme(Theme()).Run()
}

func isCSV(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".csv")
}

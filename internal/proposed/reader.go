// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package proposed reads the proposed metadata schema table.
package proposed

import (
	"fmt"
	"strings"

	"github.com/dacolabs/gcschema/internal/ident"
	"github.com/dacolabs/gcschema/internal/model"
)

const (
	// DefaultFile is the proposed schema workbook, relative to the project.
	DefaultFile = "proposed/proposed_schema.xls"
	// DefaultSheet is the sheet holding the field definitions.
	DefaultSheet = "Metadata Schema"
)

// ReadFile reads the proposed fields from the table at path.
func ReadFile(path, sheet string, renames map[string]string) (map[string]model.ProposedField, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	rows, err := format.Rows(path, sheet)
	if err != nil {
		return nil, err
	}
	return Fields(rows, renames)
}

// Fields turns table rows into proposed fields keyed by identifier.
//
// Rows with neither a description nor a GC multiplicity are header rows and
// are skipped. The identifier of a row is its normalized property name,
// replaced by renames[id] when present.
func Fields(rows [][]string, renames map[string]string) (map[string]model.ProposedField, error) {
	out := make(map[string]model.ProposedField)
	rowOf := make(map[string]int)

	for i, raw := range rows {
		line := i + 1
		cells, err := normalizeRow(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", model.ErrMalformedInput, line, err)
		}

		p := model.NewProposedField(cells)
		if p.Description == "" && p.GCMultiplicity == "" {
			continue
		}

		id := ident.Normalize(p.PropertyName)
		if renamed, ok := renames[id]; ok {
			id = renamed
		}

		if prev, ok := rowOf[id]; ok {
			return nil, fmt.Errorf("%w: %q from rows %d and %d", model.ErrDuplicateIdentifier, id, prev, line)
		}
		rowOf[id] = line
		out[id] = p
	}
	return out, nil
}

// normalizeRow trims every cell and pads the row to model.ProposedColumns.
func normalizeRow(raw []string) ([]string, error) {
	cells := make([]string, model.ProposedColumns)
	for c, v := range raw {
		v = strings.TrimSpace(v)
		if c >= model.ProposedColumns {
			if v != "" {
				return nil, fmt.Errorf("unexpected value in column %d", c+1)
			}
			continue
		}
		cells[c] = v
	}
	return cells, nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package reconcile merges proposed schema fields with their 2012
// counterparts.
package reconcile

import (
	"fmt"

	"github.com/dacolabs/gcschema/internal/legacy"
	"github.com/dacolabs/gcschema/internal/model"
	"github.com/dacolabs/gcschema/internal/tables"
)

// LegacyLookup resolves legacy field definitions and choice lists.
type LegacyLookup interface {
	Field(id string) (*legacy.Field, error)
	ChoiceList(id string) ([]model.LegacyChoice, error)
}

// Merge builds the merged field id from its proposed definition and, when
// the tables map it, its legacy definition.
func Merge(id string, proposed map[string]model.ProposedField, lookup LegacyLookup, t *tables.Tables) (model.MergedField, error) {
	p, ok := proposed[id]
	if !ok {
		return model.MergedField{}, fmt.Errorf("%w: field %q not found in proposed schema", model.ErrSchemaIntegrity, id)
	}

	out := model.MergedField{
		ID:                 id,
		ProposedName:       model.EnglishText{En: p.PropertyName},
		ISOMultiplicity:    p.ISOMultiplicity,
		GCMultiplicity:     p.GCMultiplicity,
		Description:        model.EnglishText{En: p.Description},
		Example:            p.Example,
		NAPISO19115Ref:     p.NAPISO19115Ref,
		DomainBestPractice: model.EnglishText{En: p.DomainBestPractice},
	}

	if legacyID, ok := t.LegacyFields[id]; ok {
		f, err := lookup.Field(legacyID)
		if err != nil {
			return model.MergedField{}, fmt.Errorf("field %q: %w", id, err)
		}
		out.LegacyID = legacyID
		out.Name = &f.Name
		out.Help = &f.Help
		out.Type = f.Type

		// An empty declared type marks a selection from a list.
		if out.Type == "" {
			choices, err := lookup.ChoiceList(legacyID)
			if err != nil {
				return model.MergedField{}, fmt.Errorf("field %q: %w", id, err)
			}
			out.Type = model.TypeChoice
			out.Choices = choices
		}
	}

	if legacyIDFr, ok := t.LegacyFieldsFr[id]; ok {
		out.LegacyIDFr = legacyIDFr
		out.Bilingual = true
	}

	return out, nil
}

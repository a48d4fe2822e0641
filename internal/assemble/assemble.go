// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package assemble builds the converted schema document from the section
// layout and the merged fields.
package assemble

import (
	"fmt"

	"github.com/dacolabs/gcschema/internal/ident"
	"github.com/dacolabs/gcschema/internal/model"
	"github.com/dacolabs/gcschema/internal/reconcile"
	"github.com/dacolabs/gcschema/internal/tables"
)

// Legacy is the legacy schema as seen by the assembler.
type Legacy interface {
	reconcile.LegacyLookup
	Intro() (model.BilingualText, error)
}

// Assemble merges every field of the section layout and returns the
// document. Sections and fields keep the layout order.
func Assemble(t *tables.Tables, proposed map[string]model.ProposedField, lgc Legacy) (*model.Document, error) {
	intro, err := lgc.Intro()
	if err != nil {
		return nil, fmt.Errorf("intro: %w", err)
	}

	doc := &model.Document{
		Intro:          intro,
		SectionsFields: make([]model.Section, 0, len(t.Sections)),
	}

	for _, s := range t.Sections {
		sectionID := ident.Normalize(s.Name)
		p, ok := proposed[sectionID]
		if !ok {
			return nil, fmt.Errorf("%w: section %q (%s) not found in proposed schema", model.ErrSchemaIntegrity, s.Name, sectionID)
		}

		section := model.Section{
			Name:        model.EnglishText{En: s.Name},
			Description: model.EnglishText{En: p.Description},
			Fields:      make([]model.MergedField, 0, len(s.Fields)),
		}
		for _, id := range s.Fields {
			f, err := reconcile.Merge(id, proposed, lgc, t)
			if err != nil {
				return nil, fmt.Errorf("section %q: %w", s.Name, err)
			}
			section.Fields = append(section.Fields, f)
		}
		doc.SectionsFields = append(doc.SectionsFields, section)
	}

	return doc, nil
}

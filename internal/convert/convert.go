// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package convert runs one conversion: read both schemas, reconcile them and
// check the resulting document.
package convert

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/dacolabs/gcschema/internal/assemble"
	"github.com/dacolabs/gcschema/internal/config"
	"github.com/dacolabs/gcschema/internal/docschema"
	"github.com/dacolabs/gcschema/internal/legacy"
	"github.com/dacolabs/gcschema/internal/model"
	"github.com/dacolabs/gcschema/internal/proposed"
	"github.com/dacolabs/gcschema/internal/tables"
)

// Run reads the inputs named by cfg and returns the converted document.
func Run(cfg *config.Config, t *tables.Tables, logger *slog.Logger) (*model.Document, error) {
	fields, err := proposed.ReadFile(cfg.Proposed, cfg.Sheet, t.Renames)
	if err != nil {
		return nil, err
	}
	logger.Debug("read proposed schema", "path", cfg.Proposed, "sheet", cfg.Sheet, "fields", len(fields))

	lgc, err := legacy.Open(os.DirFS(cfg.LegacyDir), cfg.LegacySchema)
	if err != nil {
		return nil, err
	}
	logger.Debug("read legacy schema", "dir", cfg.LegacyDir, "file", cfg.LegacySchema)

	doc, err := assemble.Assemble(t, fields, lgc)
	if err != nil {
		return nil, err
	}

	if err := docschema.Validate(doc); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrSchemaIntegrity, err)
	}
	logger.Debug("assembled document", "sections", len(doc.SectionsFields))

	return doc, nil
}

// Stats summarizes a converted document.
type Stats struct {
	Sections     int
	Fields       int
	LegacyFields int
	ChoiceFields int
	Bilingual    int
}

// Summarize counts the sections and fields of doc.
func Summarize(doc *model.Document) Stats {
	s := Stats{Sections: len(doc.SectionsFields)}
	for _, section := range doc.SectionsFields {
		for _, f := range section.Fields {
			s.Fields++
			if f.LegacyID != "" {
				s.LegacyFields++
			}
			if f.Type == model.TypeChoice {
				s.ChoiceFields++
			}
			if f.Bilingual {
				s.Bilingual++
			}
		}
	}
	return s
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package convert

import (
	"fmt"
	"os"

	"github.com/dacolabs/gcschema/internal/config"
	"github.com/dacolabs/gcschema/internal/ident"
	"github.com/dacolabs/gcschema/internal/legacy"
	"github.com/dacolabs/gcschema/internal/proposed"
	"github.com/dacolabs/gcschema/internal/tables"
)

// Check compares the tables with the inputs named by cfg and lists every
// layout entry or mapping that a conversion would fail on. An error is
// returned only when an input cannot be read at all.
func Check(cfg *config.Config, t *tables.Tables) ([]string, error) {
	fields, err := proposed.ReadFile(cfg.Proposed, cfg.Sheet, t.Renames)
	if err != nil {
		return nil, err
	}
	lgc, err := legacy.Open(os.DirFS(cfg.LegacyDir), cfg.LegacySchema)
	if err != nil {
		return nil, err
	}

	var problems []string
	if _, err := lgc.Intro(); err != nil {
		problems = append(problems, err.Error())
	}

	for _, s := range t.Sections {
		if id := ident.Normalize(s.Name); !has(fields, id) {
			problems = append(problems, fmt.Sprintf("section %q: %q not found in proposed schema", s.Name, id))
		}
		for _, id := range s.Fields {
			if !has(fields, id) {
				problems = append(problems, fmt.Sprintf("section %q: field %q not found in proposed schema", s.Name, id))
			}
			legacyID, ok := t.LegacyFields[id]
			if !ok {
				continue
			}
			f, err := lgc.Field(legacyID)
			if err != nil {
				problems = append(problems, fmt.Sprintf("field %q: %v", id, err))
				continue
			}
			if f.Type != "" {
				continue
			}
			if _, err := lgc.ChoiceList(legacyID); err != nil {
				problems = append(problems, fmt.Sprintf("field %q: %v", id, err))
			}
		}
	}
	return problems, nil
}

func has[V any](m map[string]V, key string) bool {
	_, ok := m[key]
	return ok
}

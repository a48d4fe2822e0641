// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package tables holds the hand-authored mapping tables that drive a
// conversion: the section layout, the identifier renames and the legacy
// field mappings.
package tables

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/dacolabs/gcschema/internal/model"
	"gopkg.in/yaml.v3"
)

//go:embed tables.yaml
var defaultTables []byte

// Section is one entry of the section layout.
type Section struct {
	Name   string   `yaml:"name"`
	Fields []string `yaml:"fields"`
}

// Tables is the static configuration of a conversion.
type Tables struct {
	// Sections is the ordered section layout.
	Sections []Section `yaml:"sections"`

	// Renames overrides normalized proposed identifiers that coincide with
	// existing fields.
	Renames map[string]string `yaml:"renames"`

	// LegacyFields maps a field id to its 2012 field id.
	LegacyFields map[string]string `yaml:"legacy_fields"`

	// LegacyFieldsFr maps a field id to its 2012 French field id.
	LegacyFieldsFr map[string]string `yaml:"legacy_fields_fr"`
}

// Default returns the tables shipped with the binary.
func Default() (*Tables, error) {
	return Decode(bytes.NewReader(defaultTables))
}

// Load reads tables from a YAML file.
func Load(path string) (*Tables, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrMalformedInput, err)
	}
	defer f.Close() //nolint:errcheck

	return Decode(f)
}

// Decode reads tables from YAML. Unknown keys are rejected.
func Decode(r io.Reader) (*Tables, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var t Tables
	if err := dec.Decode(&t); err != nil {
		return nil, fmt.Errorf("%w: tables: %v", model.ErrMalformedInput, err)
	}
	return &t, nil
}

// Encode writes the tables as YAML.
func (t *Tables) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(t); err != nil {
		return err
	}
	return enc.Close()
}

// Validate checks the standalone invariants of the tables.
func (t *Tables) Validate() error {
	var errs []error

	if len(t.Sections) == 0 {
		errs = append(errs, errors.New("section layout is empty"))
	}
	seen := make(map[string]string)
	for i, s := range t.Sections {
		if s.Name == "" {
			errs = append(errs, fmt.Errorf("section %d has no name", i))
		}
		if len(s.Fields) == 0 {
			errs = append(errs, fmt.Errorf("section %q has no fields", s.Name))
		}
		for _, f := range s.Fields {
			if f == "" {
				errs = append(errs, fmt.Errorf("section %q has an empty field id", s.Name))
				continue
			}
			if prev, ok := seen[f]; ok {
				errs = append(errs, fmt.Errorf("field %q listed in both %q and %q", f, prev, s.Name))
				continue
			}
			seen[f] = s.Name
		}
	}

	errs = append(errs, checkMapping("renames", t.Renames)...)
	errs = append(errs, checkMapping("legacy_fields", t.LegacyFields)...)
	errs = append(errs, checkMapping("legacy_fields_fr", t.LegacyFieldsFr)...)

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("%w: invalid tables: %w", model.ErrMalformedInput, err)
	}
	return nil
}

func checkMapping(name string, m map[string]string) []error {
	var errs []error
	for _, k := range SortedKeys(m) {
		if k == "" {
			errs = append(errs, fmt.Errorf("%s has an empty key", name))
		}
		if m[k] == "" {
			errs = append(errs, fmt.Errorf("%s: %q maps to an empty value", name, k))
		}
	}
	return errs
}

// FieldIDs returns every field id of the layout in output order.
func (t *Tables) FieldIDs() []string {
	var ids []string
	for _, s := range t.Sections {
		ids = append(ids, s.Fields...)
	}
	return ids
}

// SortedKeys returns the keys of m in sorted order.
func SortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package legacy reads the 2012 data.gc.ca schema: the bilingual form
// definition and the per-field choice lists stored next to it.
package legacy

import (
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/dacolabs/gcschema/internal/model"
)

// DefaultSchemaFile is the name of the legacy form definition.
const DefaultSchemaFile = "metadata_schema.xml"

// Field is the legacy definition of one form field.
type Field struct {
	ID   string
	Name model.BilingualText
	Help model.BilingualText
	// Type is the declared input type. Empty for selection fields.
	Type string
}

// Reader resolves fields, texts and choice lists of a legacy schema.
type Reader struct {
	fsys fs.FS
	dir  string
	root *xmlquery.Node
}

// Open parses the legacy form definition at schemaFile in fsys. Choice list
// files are read from the same directory.
func Open(fsys fs.FS, schemaFile string) (*Reader, error) {
	root, err := parseFile(fsys, schemaFile)
	if err != nil {
		return nil, err
	}
	return &Reader{
		fsys: fsys,
		dir:  path.Dir(schemaFile),
		root: root,
	}, nil
}

func parseFile(fsys fs.FS, name string) (*xmlquery.Node, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrMalformedInput, err)
	}
	defer f.Close() //nolint:errcheck

	doc, err := xmlquery.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", model.ErrMalformedInput, name, err)
	}
	return doc, nil
}

// Intro returns the document level introduction text.
func (r *Reader) Intro() (model.BilingualText, error) {
	return BilingualText(r.root, "//intro")
}

// Field resolves the name, help text and declared type of the legacy field
// whose inputname is id.
func (r *Reader) Field(id string) (*Field, error) {
	lit, err := quote(id)
	if err != nil {
		return nil, err
	}
	xp := fmt.Sprintf("//item[inputname=%s]", lit)

	name, err := BilingualText(r.root, xp+"/name")
	if err != nil {
		return nil, err
	}
	help, err := BilingualText(r.root, xp+"/helpcontext")
	if err != nil {
		return nil, err
	}
	types, err := xmlquery.QueryAll(r.root, xp+"/type1/inputtype[1]")
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", model.ErrMalformedInput, xp, err)
	}

	var typ strings.Builder
	for _, n := range types {
		typ.WriteString(n.InnerText())
	}

	return &Field{
		ID:   id,
		Name: name,
		Help: help,
		Type: typ.String(),
	}, nil
}

// ChoiceList returns the options of the selection field id, read from
// <id>.xml, in document order.
func (r *Reader) ChoiceList(id string) ([]model.LegacyChoice, error) {
	name := path.Join(r.dir, id+".xml")
	doc, err := parseFile(r.fsys, name)
	if err != nil {
		return nil, err
	}

	items, err := xmlquery.QueryAll(doc, "/root/item")
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", model.ErrMalformedInput, name, err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: %s has no choices", model.ErrSchemaIntegrity, name)
	}

	choices := make([]model.LegacyChoice, 0, len(items))
	for _, item := range items {
		text, err := BilingualText(item, "name")
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		choices = append(choices, model.LegacyChoice{
			GUID: item.SelectAttr("id"),
			En:   text.En,
			Fr:   text.Fr,
		})
	}
	return choices, nil
}

// quote renders s as an XPath string literal. XPath 1.0 has no escape
// sequence, so s cannot hold both quote characters.
func quote(s string) (string, error) {
	switch {
	case !strings.Contains(s, `"`):
		return `"` + s + `"`, nil
	case !strings.Contains(s, "'"):
		return "'" + s + "'", nil
	default:
		return "", fmt.Errorf("%w: field id %q holds both quote characters", model.ErrMalformedInput, s)
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package docschema describes the converted document as a JSON Schema, the
// contract shared with the form renderer that consumes it.
package docschema

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/dacolabs/gcschema/internal/assemble"
	"github.com/dacolabs/gcschema/internal/model"
	"github.com/google/jsonschema-go/jsonschema"
)

// Title is the title of the generated schema.
const Title = "data.gc.ca metadata schema"

var resolved = sync.OnceValues(func() (*jsonschema.Resolved, error) {
	s, err := Schema()
	if err != nil {
		return nil, err
	}
	return s.Resolve(nil)
})

// Schema returns the JSON Schema of model.Document.
func Schema() (*jsonschema.Schema, error) {
	s, err := jsonschema.For[model.Document](nil)
	if err != nil {
		return nil, fmt.Errorf("failed to infer document schema: %w", err)
	}
	s.Title = Title
	return s, nil
}

// Encode writes the document schema as canonical JSON.
func Encode(w io.Writer) error {
	s, err := Schema()
	if err != nil {
		return err
	}
	raw, err := json.Marshal(s)
	if err != nil {
		return err
	}
	out, err := assemble.Canonicalize(raw)
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}

// Validate checks doc against the document schema.
func Validate(doc *model.Document) error {
	rs, err := resolved()
	if err != nil {
		return err
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	var instance any
	if err := json.Unmarshal(raw, &instance); err != nil {
		return err
	}

	if err := rs.Validate(instance); err != nil {
		return fmt.Errorf("document does not match its schema: %w", err)
	}
	return nil
}

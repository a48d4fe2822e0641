// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package assemble

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/dacolabs/gcschema/internal/model"
)

// Indent is the indentation of encoded documents.
const Indent = "  "

// Encode writes doc as canonical JSON: object keys sorted at every level,
// two space indentation, no HTML escaping and a trailing newline.
// Nothing is written if encoding fails.
func Encode(w io.Writer, doc *model.Document) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	out, err := Canonicalize(raw)
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}

// Canonicalize re-encodes a JSON value with sorted object keys and stable
// indentation. Numbers keep their literal form.
func Canonicalize(raw []byte) ([]byte, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("canonicalize: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("canonicalize: unexpected data after top-level value")
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", Indent)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package ident turns human-readable names into field identifiers.
package ident

import (
	"strings"
	"unicode"
)

// Normalize converts a name with spaces, punctuation, digits and capital
// letters into an identifier made of lowercase letters and underscores.
// Every maximal run of letters becomes one word; everything else is dropped.
//
//	Normalize("Proposed Metadata Fields for data.gc.ca") == "proposed_metadata_fields_for_data_gc_ca"
func Normalize(name string) string {
	words := strings.FieldsFunc(name, func(r rune) bool {
		return !unicode.IsLetter(r)
	})
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
	return strings.Join(words, "_")
}

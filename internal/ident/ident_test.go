// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package ident

import (
	"strings"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"dotted name", "Proposed Metadata Fields for data.gc.ca", "proposed_metadata_fields_for_data_gc_ca"},
		{"already canonical", "author_email", "author_email"},
		{"leading and trailing noise", "  --Title!! ", "title"},
		{"digits are delimiters", "ISO 19115 Ref", "iso_ref"},
		{"digits inside a word", "abc123def", "abc_def"},
		{"slash and parens", "Dataset URI (Dataset Unique Identifier)", "dataset_uri_dataset_unique_identifier"},
		{"accented letters", "Unité Électronique", "unité_électronique"},
		{"empty", "", ""},
		{"no letters", "12 -- 34", ""},
		{"underscores are delimiters", "__a__b__", "a_b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"Proposed Metadata Fields for data.gc.ca",
		"Metadata Record Information",
		"Telephone Number (Voice)",
		"e-mail",
		"x",
	}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), in)
	}
}

func TestNormalize_Shape(t *testing.T) {
	inputs := []string{
		"..Hello..World..",
		"1a2B3c",
		"  MIXED case\tTabs\nNewlines ",
		"a.b-c_d e/f",
		"ÀÉÎ õü",
	}
	for _, in := range inputs {
		out := Normalize(in)
		assert.False(t, strings.HasPrefix(out, "_"), in)
		assert.False(t, strings.HasSuffix(out, "_"), in)
		assert.NotContains(t, out, "__", in)
		for _, r := range out {
			assert.False(t, unicode.IsUpper(r), in)
		}
	}
}

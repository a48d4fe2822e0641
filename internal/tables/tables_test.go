// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package tables

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dacolabs/gcschema/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	tbl, err := Default()
	require.NoError(t, err)
	require.NoError(t, tbl.Validate())

	require.Len(t, tbl.Sections, 7)
	assert.Equal(t, "Metadata Record Information", tbl.Sections[0].Name)
	assert.Equal(t, []string{"language", "name", "author", "author_email", "metadata_standard_name", "catalog_type"}, tbl.Sections[0].Fields)
	assert.Equal(t, "Time Period", tbl.Sections[6].Name)

	assert.Equal(t, "name", tbl.Renames["dataset_uri_dataset_unique_identifier"])
	assert.Equal(t, "thesaurus", tbl.Renames["subject"])
	assert.Equal(t, "dictionary_list:_en", tbl.LegacyFields["data_dictionary"])
	assert.Equal(t, "group_name_fr", tbl.LegacyFieldsFr["data_series_name"])
}

func TestDefault_BilingualFieldsAreInLayout(t *testing.T) {
	tbl, err := Default()
	require.NoError(t, err)

	layout := make(map[string]bool)
	for _, id := range tbl.FieldIDs() {
		layout[id] = true
	}
	for id := range tbl.LegacyFieldsFr {
		assert.True(t, layout[id], "%s is bilingual but not in the layout", id)
	}
}

func TestDefault_MappingsHaveNoEmptyEntries(t *testing.T) {
	tbl, err := Default()
	require.NoError(t, err)

	for _, m := range []map[string]string{tbl.Renames, tbl.LegacyFields, tbl.LegacyFieldsFr} {
		for k, v := range m {
			assert.NotEmpty(t, k)
			assert.NotEmpty(t, v, k)
		}
	}
}

func TestLoad(t *testing.T) {
	tbl, err := Load(filepath.Join("testdata", "small.yaml"))
	require.NoError(t, err)
	require.NoError(t, tbl.Validate())

	assert.Equal(t, []string{"title", "tags"}, tbl.FieldIDs())
	assert.Equal(t, "tags", tbl.Renames["keyword"])
}

func TestLoad_NotFound(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrMalformedInput)
}

func TestDecode_UnknownKey(t *testing.T) {
	_, err := Decode(strings.NewReader("sectons: []\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrMalformedInput)
}

func TestValidate(t *testing.T) {
	valid := func() *Tables {
		return &Tables{
			Sections:       []Section{{Name: "A", Fields: []string{"x", "y"}}},
			Renames:        map[string]string{"p": "x"},
			LegacyFields:   map[string]string{"x": "x_en"},
			LegacyFieldsFr: map[string]string{"x": "x_fr"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Tables)
		wantErr string
	}{
		{name: "valid", mutate: func(*Tables) {}},
		{name: "no sections", mutate: func(t *Tables) { t.Sections = nil }, wantErr: "section layout is empty"},
		{name: "unnamed section", mutate: func(t *Tables) { t.Sections[0].Name = "" }, wantErr: "has no name"},
		{name: "empty section", mutate: func(t *Tables) { t.Sections[0].Fields = nil }, wantErr: "has no fields"},
		{
			name: "field listed twice",
			mutate: func(t *Tables) {
				t.Sections = append(t.Sections, Section{Name: "B", Fields: []string{"x"}})
			},
			wantErr: `field "x" listed in both "A" and "B"`,
		},
		{name: "empty rename target", mutate: func(t *Tables) { t.Renames["p"] = "" }, wantErr: "renames"},
		{name: "empty legacy key", mutate: func(t *Tables) { t.LegacyFields[""] = "z" }, wantErr: "legacy_fields has an empty key"},
		{name: "empty french value", mutate: func(t *Tables) { t.LegacyFieldsFr["y"] = "" }, wantErr: "legacy_fields_fr"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl := valid()
			tt.mutate(tbl)
			err := tbl.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, model.ErrMalformedInput)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestEncode_RoundTrip(t *testing.T) {
	tbl, err := Default()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, tbl.Encode(&buf))
	assert.Contains(t, buf.String(), "legacy_fields_fr:")

	again, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, tbl, again)
}

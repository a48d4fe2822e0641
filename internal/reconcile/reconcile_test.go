// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package reconcile

import (
	"fmt"
	"testing"

	"github.com/dacolabs/gcschema/internal/legacy"
	"github.com/dacolabs/gcschema/internal/model"
	"github.com/dacolabs/gcschema/internal/tables"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubLookup is an in-memory LegacyLookup.
type stubLookup struct {
	fields  map[string]*legacy.Field
	choices map[string][]model.LegacyChoice
	calls   []string
}

func (s *stubLookup) Field(id string) (*legacy.Field, error) {
	s.calls = append(s.calls, "field:"+id)
	f, ok := s.fields[id]
	if !ok {
		return nil, fmt.Errorf("%w: no legacy field %q", model.ErrSchemaIntegrity, id)
	}
	return f, nil
}

func (s *stubLookup) ChoiceList(id string) ([]model.LegacyChoice, error) {
	s.calls = append(s.calls, "choices:"+id)
	c, ok := s.choices[id]
	if !ok {
		return nil, fmt.Errorf("%w: no choices for %q", model.ErrMalformedInput, id)
	}
	return c, nil
}

func newLookup() *stubLookup {
	return &stubLookup{
		fields: map[string]*legacy.Field{
			"title_en": {
				ID:   "title_en",
				Name: model.BilingualText{En: "Title", Fr: "Titre"},
				Help: model.BilingualText{En: "Title help", Fr: "Aide titre"},
				Type: "text",
			},
			"department": {
				ID:   "department",
				Name: model.BilingualText{En: "Department", Fr: "Ministère"},
				Help: model.BilingualText{En: "Dept help", Fr: "Aide ministère"},
			},
		},
		choices: map[string][]model.LegacyChoice{
			"department": {
				{GUID: "g2", En: "Zeta", Fr: "Zêta"},
				{GUID: "g1", En: "Alpha", Fr: "Alpha"},
			},
		},
	}
}

func testTables() *tables.Tables {
	return &tables.Tables{
		LegacyFields: map[string]string{
			"title":  "title_en",
			"author": "department",
			"phone":  "contact_phone",
		},
		LegacyFieldsFr: map[string]string{
			"title":   "title_fr",
			"program": "program_url_fr",
		},
	}
}

var testProposed = map[string]model.ProposedField{
	"title": {
		PropertyName:       "Title",
		ISOMultiplicity:    "1",
		GCMultiplicity:     "M",
		Description:        "Dataset title.",
		Example:            "Census 2011",
		NAPISO19115Ref:     "MD_DataIdentification.citation",
		DomainBestPractice: "Be concise.",
	},
	"author":  {PropertyName: "Organization Name", GCMultiplicity: "M", Description: "Owner."},
	"program": {PropertyName: "Program URL", GCMultiplicity: "O", Description: "Program page."},
	"catalog": {PropertyName: "Catalog Type", GCMultiplicity: "M", Description: "Kind of catalog."},
	"phone":   {PropertyName: "Telephone", GCMultiplicity: "O", Description: "Voice."},
}

func TestMerge_TypedBilingualField(t *testing.T) {
	got, err := Merge("title", testProposed, newLookup(), testTables())
	require.NoError(t, err)

	assert.Equal(t, model.MergedField{
		ID:                 "title",
		ProposedName:       model.EnglishText{En: "Title"},
		ISOMultiplicity:    "1",
		GCMultiplicity:     "M",
		Description:        model.EnglishText{En: "Dataset title."},
		Example:            "Census 2011",
		NAPISO19115Ref:     "MD_DataIdentification.citation",
		DomainBestPractice: model.EnglishText{En: "Be concise."},
		LegacyID:           "title_en",
		LegacyIDFr:         "title_fr",
		Name:               &model.BilingualText{En: "Title", Fr: "Titre"},
		Help:               &model.BilingualText{En: "Title help", Fr: "Aide titre"},
		Type:               "text",
		Bilingual:          true,
	}, got)
}

func TestMerge_EmptyTypeIsChoice(t *testing.T) {
	lookup := newLookup()
	got, err := Merge("author", testProposed, lookup, testTables())
	require.NoError(t, err)

	assert.Equal(t, model.TypeChoice, got.Type)
	require.Len(t, got.Choices, 2)
	assert.Equal(t, "g2", got.Choices[0].GUID, "legacy order is kept")
	assert.Equal(t, "g1", got.Choices[1].GUID)
	assert.False(t, got.Bilingual)
	assert.Empty(t, got.LegacyIDFr)
	assert.Equal(t, []string{"field:department", "choices:department"}, lookup.calls)
}

func TestMerge_TypedFieldHasNoChoices(t *testing.T) {
	lookup := newLookup()
	got, err := Merge("title", testProposed, lookup, testTables())
	require.NoError(t, err)

	assert.Nil(t, got.Choices)
	assert.Equal(t, []string{"field:title_en"}, lookup.calls)
}

func TestMerge_BilingualWithoutLegacyField(t *testing.T) {
	lookup := newLookup()
	got, err := Merge("program", testProposed, lookup, testTables())
	require.NoError(t, err)

	assert.True(t, got.Bilingual)
	assert.Equal(t, "program_url_fr", got.LegacyIDFr)
	assert.Nil(t, got.Name)
	assert.Nil(t, got.Help)
	assert.Empty(t, got.Type)
	assert.Empty(t, lookup.calls)
}

func TestMerge_UnmappedField(t *testing.T) {
	got, err := Merge("catalog", testProposed, newLookup(), testTables())
	require.NoError(t, err)

	assert.Equal(t, model.MergedField{
		ID:             "catalog",
		ProposedName:   model.EnglishText{En: "Catalog Type"},
		GCMultiplicity: "M",
		Description:    model.EnglishText{En: "Kind of catalog."},
	}, got)
}

func TestMerge_Errors(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		mutate  func(*stubLookup)
		wantErr error
	}{
		{
			name:    "not in proposed schema",
			id:      "missing",
			wantErr: model.ErrSchemaIntegrity,
		},
		{
			name:    "legacy field missing",
			id:      "phone",
			wantErr: model.ErrSchemaIntegrity,
		},
		{
			name:    "choice list unreadable",
			id:      "author",
			mutate:  func(s *stubLookup) { delete(s.choices, "department") },
			wantErr: model.ErrMalformedInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lookup := newLookup()
			if tt.mutate != nil {
				tt.mutate(lookup)
			}
			got, err := Merge(tt.id, testProposed, lookup, testTables())
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, model.MergedField{}, got)
		})
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package model defines the records exchanged between the schema readers,
// the reconciler and the assembler, and the document they produce.
package model

// Languages lists the language codes of every bilingual text, in order.
var Languages = []string{"en", "fr"}

// BilingualText holds a text authored separately in English and French.
type BilingualText struct {
	En string `json:"en"`
	Fr string `json:"fr"`
}

// EnglishText holds a text only available in English.
type EnglishText struct {
	En string `json:"en"`
}

// ProposedField is one row of the proposed schema table.
// The field order matches the table's column order.
type ProposedField struct {
	PropertyName       string
	ISOMultiplicity    string
	GCMultiplicity     string
	Description        string
	Example            string
	NAPISO19115Ref     string
	DomainBestPractice string
}

// ProposedColumns is the number of columns of the proposed schema table.
const ProposedColumns = 7

// NewProposedField builds a ProposedField from exactly ProposedColumns cells.
func NewProposedField(cells []string) ProposedField {
	return ProposedField{
		PropertyName:       cells[0],
		ISOMultiplicity:    cells[1],
		GCMultiplicity:     cells[2],
		Description:        cells[3],
		Example:            cells[4],
		NAPISO19115Ref:     cells[5],
		DomainBestPractice: cells[6],
	}
}

// LegacyChoice is one option of a legacy selection field.
type LegacyChoice struct {
	GUID string `json:"data_gc_ca_2012_guid"`
	En   string `json:"en"`
	Fr   string `json:"fr"`
}

// TypeChoice marks a field whose values come from a legacy choice list.
const TypeChoice = "choice"

// MergedField is a proposed field reconciled with its legacy counterpart.
type MergedField struct {
	ID                 string         `json:"id"`
	ProposedName       EnglishText    `json:"proposed_name"`
	ISOMultiplicity    string         `json:"iso_multiplicity"`
	GCMultiplicity     string         `json:"gc_multiplicity"`
	Description        EnglishText    `json:"description"`
	Example            string         `json:"example"`
	NAPISO19115Ref     string         `json:"nap_iso_19115_ref"`
	DomainBestPractice EnglishText    `json:"domain_best_practice"`
	LegacyID           string         `json:"data_gc_ca_2012_id,omitempty"`
	LegacyIDFr         string         `json:"data_gc_ca_2012_id_fr,omitempty"`
	Name               *BilingualText `json:"name,omitempty"`
	Help               *BilingualText `json:"help,omitempty"`
	Type               string         `json:"type,omitempty"`
	Choices            []LegacyChoice `json:"choices,omitempty"`
	Bilingual          bool           `json:"bilingual"`
}

// Section groups fields under a heading, in a fixed order.
type Section struct {
	Name        EnglishText   `json:"name"`
	Description EnglishText   `json:"description"`
	Fields      []MergedField `json:"fields"`
}

// Document is the converted schema.
type Document struct {
	Intro          BilingualText `json:"intro"`
	SectionsFields []Section     `json:"sections_fields"`
}

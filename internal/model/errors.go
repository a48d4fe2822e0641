// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package model

import "errors"

var (
	// ErrSchemaIntegrity indicates a required text node, field identifier or
	// mapping target is missing from the inputs. The static tables are
	// probably stale relative to the input documents.
	ErrSchemaIntegrity = errors.New("schema integrity error")

	// ErrDuplicateIdentifier indicates two proposed table rows normalize to
	// the same field identifier.
	ErrDuplicateIdentifier = errors.New("duplicate identifier")

	// ErrMalformedInput indicates an input could not be parsed at all.
	ErrMalformedInput = errors.New("malformed input")
)

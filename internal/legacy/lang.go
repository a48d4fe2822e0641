// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package legacy

import (
	"fmt"

	"github.com/antchfx/xmlquery"
	"github.com/dacolabs/gcschema/internal/model"
)

const xmlNamespace = "http://www.w3.org/XML/1998/namespace"

// BilingualText returns the English and French text of the nodes matching
// xp under top. Each language must match exactly one node.
func BilingualText(top *xmlquery.Node, xp string) (model.BilingualText, error) {
	nodes, err := xmlquery.QueryAll(top, xp)
	if err != nil {
		return model.BilingualText{}, fmt.Errorf("%w: %s: %v", model.ErrMalformedInput, xp, err)
	}

	var out model.BilingualText
	for _, lang := range model.Languages {
		text, err := resolveByLanguage(nodes, lang)
		if err != nil {
			return model.BilingualText{}, fmt.Errorf("%w: %s: %v", model.ErrSchemaIntegrity, xp, err)
		}
		switch lang {
		case "en":
			out.En = text
		case "fr":
			out.Fr = text
		}
	}
	return out, nil
}

// resolveByLanguage returns the text of the single node whose xml:lang
// attribute equals lang. The text includes that of child elements; an empty
// node yields "".
func resolveByLanguage(nodes []*xmlquery.Node, lang string) (string, error) {
	var match *xmlquery.Node
	for _, n := range nodes {
		if nodeLang(n) != lang {
			continue
		}
		if match != nil {
			return "", fmt.Errorf("more than one %q node", lang)
		}
		match = n
	}
	if match == nil {
		return "", fmt.Errorf("no %q node", lang)
	}
	return match.InnerText(), nil
}

func nodeLang(n *xmlquery.Node) string {
	for _, a := range n.Attr {
		if a.Name.Local != "lang" {
			continue
		}
		if a.Name.Space == "xml" || a.Name.Space == xmlNamespace {
			return a.Value
		}
	}
	return ""
}

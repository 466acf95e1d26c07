package registry

import (
	"strconv"
	"strings"

	"github.com/graphbio/helix/internal/core/model"
)

// DisplayName picks the friendliest name available for an entity. The
// priority order is a hard contract consumers rely on: explicit name, then
// symbol, then the first gene symbol, then the first of all_names, then the
// nested recommended-name structure proteins carry, then the first usable
// synonym, and only as a last resort a formatted identifier.
func DisplayName(id string, props map[string]interface{}) string {
	if name := asString(props["name"]); name != "" {
		return name
	}
	if symbol := asString(props["symbol"]); symbol != "" {
		return symbol
	}
	if first := firstString(props["genes"]); first != "" {
		return first
	}
	if first := firstString(props["all_names"]); first != "" {
		return first
	}
	if name := recommendedName(props); name != "" {
		return name
	}
	if syn := usableSynonym(props["synonyms"]); syn != "" {
		return syn
	}
	return FormatIdentifier(id)
}

// recommendedName digs out the UniProt-style nested name structure:
// protein.recommendedName.fullName(.value), tolerating each level being
// absent or a plain string.
func recommendedName(props map[string]interface{}) string {
	node := props["protein"]
	if m, ok := node.(map[string]interface{}); ok {
		node = m["recommendedName"]
	} else {
		node = props["recommendedName"]
	}
	m, ok := node.(map[string]interface{})
	if !ok {
		return asString(node)
	}
	full := m["fullName"]
	if fm, ok := full.(map[string]interface{}); ok {
		return asString(fm["value"])
	}
	return asString(full)
}

// usableSynonym returns the first synonym that is not purely numeric and is
// longer than one character.
func usableSynonym(v interface{}) string {
	items, ok := v.([]interface{})
	if !ok {
		return ""
	}
	for _, item := range items {
		s := asString(item)
		if len(s) <= 1 {
			continue
		}
		if _, err := strconv.ParseFloat(s, 64); err == nil {
			continue
		}
		return s
	}
	return ""
}

// FormatIdentifier renders an identifier for display when nothing better is
// known: the namespace is upper-cased back into canonical CURIE form.
func FormatIdentifier(id string) string {
	ns := model.IdentifierNamespace(id)
	if ns == "" {
		return id
	}
	return strings.ToUpper(ns) + ":" + model.IdentifierLocal(id)
}

func firstString(v interface{}) string {
	items, ok := v.([]interface{})
	if !ok || len(items) == 0 {
		return ""
	}
	return asString(items[0])
}

func asString(v interface{}) string {
	switch s := v.(type) {
	case string:
		return s
	case float64:
		// Same coercion the scanner applies, so no candidate survives
		// scanning only to be dropped here.
		if s == float64(int64(s)) {
			return strconv.FormatInt(int64(s), 10)
		}
		return strconv.FormatFloat(s, 'g', -1, 64)
	}
	return ""
}

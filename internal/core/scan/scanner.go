package scan

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Candidate is one entity-bearing fragment proposed by the scanner. Hint is
// the row alias or column prefix it came from ("" when unknown); the
// classifier decides what to do with it. Candidates are not deduplicated
// here, that happens in the registry.
type Candidate struct {
	Props map[string]interface{}
	Hint  string
}

// ID returns the candidate's identifier as a string, or "".
func (c Candidate) ID() string {
	return stringValue(c.Props["id"])
}

// ScanRow walks one result row and proposes every entity-bearing fragment it
// can find: alias fields whose value is an object carrying an id, objects
// nested deeper inside those values, and flat "<prefix>_id"-style columns for
// which a minimal candidate is synthesized. Dotted "prefix.property" columns
// are left for Reconstruct.
func ScanRow(row map[string]interface{}) []Candidate {
	var out []Candidate

	for _, key := range sortedKeys(row) {
		if strings.Contains(key, ".") {
			continue
		}
		value := row[key]

		switch v := value.(type) {
		case map[string]interface{}:
			out = append(out, collect(v, key)...)
		case []interface{}:
			for _, item := range v {
				if m, ok := item.(map[string]interface{}); ok {
					out = append(out, collect(m, key)...)
				}
			}
		default:
			if prefix, ok := idColumnPrefix(key); ok {
				if c, ok := synthesize(row, prefix, value); ok {
					out = append(out, c)
				}
			}
		}
	}

	return out
}

// collect proposes the object itself (when it carries an id) plus any nested
// objects that do. The alias hint applies only at the top level; nested
// objects stand on their own.
func collect(obj map[string]interface{}, hint string) []Candidate {
	var out []Candidate
	if stringValue(obj["id"]) != "" {
		out = append(out, Candidate{Props: obj, Hint: hint})
	}
	for _, key := range sortedKeys(obj) {
		switch v := obj[key].(type) {
		case map[string]interface{}:
			out = append(out, collect(v, "")...)
		case []interface{}:
			for _, item := range v {
				if m, ok := item.(map[string]interface{}); ok {
					out = append(out, collect(m, "")...)
				}
			}
		}
	}
	return out
}

// idColumnPrefix recognizes flat identifier columns: "<prefix>_id",
// "<prefix>Id" and "<prefix>ID".
func idColumnPrefix(key string) (string, bool) {
	for _, suffix := range []string{"_id", "Id", "ID"} {
		if strings.HasSuffix(key, suffix) && len(key) > len(suffix) {
			return key[:len(key)-len(suffix)], true
		}
	}
	return "", false
}

// synthesize builds a minimal candidate from a flat identifier column and its
// "<prefix>_name"/"<prefix>Label" sibling when present.
func synthesize(row map[string]interface{}, prefix string, idValue interface{}) (Candidate, bool) {
	id := stringValue(idValue)
	if id == "" {
		return Candidate{}, false
	}
	props := map[string]interface{}{"id": id}
	for _, sibling := range []string{prefix + "_name", prefix + "Label"} {
		if name := stringValue(row[sibling]); name != "" {
			props["name"] = name
			break
		}
	}
	return Candidate{Props: props, Hint: prefix}, true
}

// NormalizeRows coerces a decoded result payload into a list of row objects.
// Accepts an array of objects or a single object; anything else yields nil.
// Array elements that are not objects are skipped.
func NormalizeRows(payload interface{}) []map[string]interface{} {
	switch v := payload.(type) {
	case []interface{}:
		rows := make([]map[string]interface{}, 0, len(v))
		for _, item := range v {
			if m, ok := item.(map[string]interface{}); ok {
				rows = append(rows, m)
			}
		}
		return rows
	case map[string]interface{}:
		return []map[string]interface{}{v}
	}
	return nil
}

// ParsePayload decodes a raw JSON result payload into rows. Malformed JSON
// yields an error; the caller treats that as an empty result set.
func ParsePayload(raw []byte) ([]map[string]interface{}, error) {
	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("failed to decode result payload: %w", err)
	}
	return NormalizeRows(v), nil
}

func stringValue(v interface{}) string {
	switch s := v.(type) {
	case string:
		return s
	case float64:
		// JSON numbers decode as float64; identifiers are sometimes numeric.
		if s == float64(int64(s)) {
			return fmt.Sprintf("%d", int64(s))
		}
		return fmt.Sprintf("%v", s)
	}
	return ""
}

func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

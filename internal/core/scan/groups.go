package scan

import "strings"

// propertyGroup accumulates the columns of one logical entity that a query
// projected as flattened "prefix.property" siblings instead of a nested
// object.
type propertyGroup struct {
	prefix string
	props  map[string]interface{}
}

// Reconstruct rebuilds entities from flattened projections. Within a row,
// every "prefix.property" column joins its prefix's fragment; across rows a
// fragment is matched against the accumulated groups for that prefix by
// equality on id (preferred) or name (fallback) before a new group is
// started. Matching groups absorb previously-absent properties only; the
// first observed value of a property wins. Each finished group becomes a
// candidate with the prefix as its classification hint.
func Reconstruct(rows []map[string]interface{}) []Candidate {
	var order []*propertyGroup
	byPrefix := make(map[string][]*propertyGroup)

	for _, row := range rows {
		fragments := rowFragments(row)
		for _, frag := range fragments {
			g := matchGroup(byPrefix[frag.prefix], frag)
			if g == nil {
				g = &propertyGroup{prefix: frag.prefix, props: frag.props}
				byPrefix[frag.prefix] = append(byPrefix[frag.prefix], g)
				order = append(order, g)
				continue
			}
			for k, v := range frag.props {
				if _, ok := g.props[k]; !ok {
					g.props[k] = v
				}
			}
		}
	}

	out := make([]Candidate, 0, len(order))
	for _, g := range order {
		out = append(out, Candidate{Props: g.props, Hint: g.prefix})
	}
	return out
}

// rowFragments splits one row's dotted columns into per-prefix fragments,
// in stable prefix order.
func rowFragments(row map[string]interface{}) []*propertyGroup {
	perPrefix := make(map[string]*propertyGroup)
	var order []*propertyGroup

	for _, key := range sortedKeys(row) {
		i := strings.Index(key, ".")
		if i <= 0 || i == len(key)-1 {
			continue
		}
		prefix, property := key[:i], key[i+1:]
		frag, ok := perPrefix[prefix]
		if !ok {
			frag = &propertyGroup{prefix: prefix, props: make(map[string]interface{})}
			perPrefix[prefix] = frag
			order = append(order, frag)
		}
		frag.props[property] = row[key]
	}

	return order
}

// matchGroup finds the accumulated group a fragment belongs to: same id when
// both carry one, same name as fallback.
func matchGroup(groups []*propertyGroup, frag *propertyGroup) *propertyGroup {
	fragID := stringValue(frag.props["id"])
	if fragID != "" {
		for _, g := range groups {
			if stringValue(g.props["id"]) == fragID {
				return g
			}
		}
		return nil
	}

	fragName := stringValue(frag.props["name"])
	if fragName != "" {
		for _, g := range groups {
			if stringValue(g.props["name"]) == fragName {
				return g
			}
		}
	}
	return nil
}

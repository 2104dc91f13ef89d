package resource

import "strings"

// TagAll matches every item.
const TagAll = "all"

// Filter narrows an already-fetched list by a status tag and a free-text query.
type Filter[T any] struct {
	// Tag returns the value compared against the active tag, e.g. "active" or "PENDING".
	Tag func(T) string
	// Fields are the whitelisted fields searched by the query.
	Fields []func(T) string
}

// Apply returns the items matching tag and query, in input order. items is never modified.
func (f Filter[T]) Apply(items []T, tag, query string) []T {
	tag = strings.TrimSpace(tag)
	query = strings.ToLower(strings.TrimSpace(query))
	out := make([]T, 0, len(items))
	for _, it := range items {
		if !f.matchTag(it, tag) || !f.matchQuery(it, query) {
			continue
		}
		out = append(out, it)
	}
	return out
}

func (f Filter[T]) matchTag(it T, tag string) bool {
	if tag == "" || strings.EqualFold(tag, TagAll) || f.Tag == nil {
		return true
	}
	return strings.EqualFold(f.Tag(it), tag)
}

func (f Filter[T]) matchQuery(it T, query string) bool {
	if query == "" {
		return true
	}
	for _, field := range f.Fields {
		if strings.Contains(strings.ToLower(field(it)), query) {
			return true
		}
	}
	return false
}

// ActiveTag maps a boolean flag to the "active"/"inactive" tags.
func ActiveTag(active bool) string {
	if active {
		return "active"
	}
	return "inactive"
}

// ToggleVerb maps a target active flag to the backend action verb.
func ToggleVerb(active bool) string {
	if active {
		return "enable"
	}
	return "disable"
}

package catalog

import "strings"

// DefaultSearchLimit caps result sets the way the dashboard lists them.
const DefaultSearchLimit = 20

// Search filters items by case-insensitive substring match of query against
// name(item), preserving catalog load order and truncating to limit. An empty
// or whitespace-only query returns the first limit items unfiltered. Pure
// function, safe to recompute on every keystroke.
func Search[T any](items []T, name func(T) string, query string, limit int) []T {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		if len(items) > limit {
			items = items[:limit]
		}
		return append([]T(nil), items...)
	}

	matches := make([]T, 0, limit)
	for _, item := range items {
		if strings.Contains(strings.ToLower(name(item)), query) {
			matches = append(matches, item)
			if len(matches) == limit {
				break
			}
		}
	}
	return matches
}

package utils

import "strings"

// MatchesQuery reports whether any of the fields contains the query,
// case-insensitively. A blank query matches everything. Fields are compared
// as rendered text, so missing or placeholder values simply fail to match
// rather than erroring.
func MatchesQuery(query string, fields ...string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return true
	}
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}

// FilterRecords keeps the records whose extracted fields match the query.
// A blank query returns the input unchanged.
func FilterRecords[T any](records []T, query string, fields func(T) []string) []T {
	if strings.TrimSpace(query) == "" {
		return records
	}
	filtered := make([]T, 0, len(records))
	for _, record := range records {
		if MatchesQuery(query, fields(record)...) {
			filtered = append(filtered, record)
		}
	}
	return filtered
}

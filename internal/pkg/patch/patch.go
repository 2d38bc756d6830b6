package patch

import "strings"

// Coalesce returns the value pointed to by ptr if it's not nil, otherwise returns fallback
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// Optional merges a nullable field: a nil ptr keeps current, a pointer to
// an empty string clears it.
func Optional(ptr *string, current *string) *string {
	if ptr == nil {
		return current
	}
	v := strings.TrimSpace(*ptr)
	if v == "" {
		return nil
	}
	return &v
}

// Trimmed returns nil for nil or blank input.
func Trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

package utils

import "strings"

// TrimOrEmpty normalizes user input without turning nil into "nil".
func TrimOrEmpty(s string) string {
	return strings.TrimSpace(s)
}

// NormalizeSpace collapses repeated whitespace into a single space. Used on
// free-text address fields before they hit storage.
func NormalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Package utils holds small shared helpers.
package utils

// Truncate bounds s to maxLen bytes, appending a truncation marker when
// anything was cut.
func Truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

package gateway

import (
	"slices"
	"strings"
)

// Sentinel values that mark a configured secret as unusable. These show up
// in checked-in demo configs and must never trigger a live call.
var placeholderSecrets = []string{
	"",
	"YOUR_API_KEY",
	"sk-proj-placeholder",
}

// HasUsableCredential reports whether secret can authenticate a live call.
// It is the sole gate between the mock and live paths: empty strings, known
// placeholder sentinels, and anything containing "placeholder"
// (case-insensitive) are rejected. Pure function with no side effects;
// NewSystem consults it once at construction to fix the operating mode.
func HasUsableCredential(secret string) bool {
	if slices.Contains(placeholderSecrets, secret) {
		return false
	}
	return !strings.Contains(strings.ToLower(secret), "placeholder")
}

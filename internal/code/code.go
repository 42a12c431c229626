// Package code defines the canonical form of video lookup codes.
package code

import "strings"

// Normalize maps a user-supplied code to its canonical form: trimmed
// and upper-cased. Registry keys are always stored in this form, so a
// lookup matches regardless of the case the user typed.
func Normalize(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

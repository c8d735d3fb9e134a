package domain

import (
	"strings"
)

// NormalizeTag prepares an ear tag for storage and lookup:
//   - trims leading/trailing whitespace
//   - converts to upper case
//   - removes inner spaces
//
// Tags are compared case-insensitively everywhere, so storage uses one form.
func NormalizeTag(tag string) string {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return ""
	}
	tag = strings.ToUpper(tag)

	var b strings.Builder
	b.Grow(len(tag))
	for _, r := range tag {
		if r == ' ' || r == '\t' {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// NormalizeText trims s and compresses runs of spaces into one.
func NormalizeText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

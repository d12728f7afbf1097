// Package utils holds logging helpers shared by the hotel packages
package utils

import (
	"strings"
	"unicode"
)

// MaxLogStringLength is the longest user-provided string written to logs
const MaxLogStringLength = 200

// SanitizeLogString prepares user input such as guest names or typed room
// numbers for logging. Control characters become spaces, unprintable runes
// are dropped and long input is truncated.
func SanitizeLogString(input string) string {
	if input == "" {
		return ""
	}

	truncated := false
	if len(input) > MaxLogStringLength {
		input = input[:MaxLogStringLength]
		truncated = true
	}

	input = strings.ReplaceAll(input, "\r\n", "\n")

	var b strings.Builder
	b.Grow(len(input))
	for _, r := range input {
		switch {
		case unicode.IsControl(r):
			b.WriteRune(' ')
		case unicode.IsPrint(r):
			b.WriteRune(r)
		}
	}

	if truncated {
		b.WriteString("... (truncated)")
	}
	return b.String()
}

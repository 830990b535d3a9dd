// Package validate performs the final acceptance check on generated text.
package validate

import (
	"strings"
	"unicode/utf8"
)

const (
	// minLength and maxLength are exclusive bounds on an acceptable reply.
	minLength = 10
	maxLength = 1000
)

// FallbackMessage replaces any rejected reply; rejection also forces
// escalation so a human follows up.
const FallbackMessage = "I apologize, but I'm having trouble generating a response. Let me connect you with a human agent."

// Response reports whether the reply text is acceptable to send: strictly
// longer than 10 characters, strictly shorter than 1000, and not blank.
// Bounds count characters, not bytes, so multibyte replies are measured the
// same as Latin ones.
func Response(text string) bool {
	length := utf8.RuneCountInString(text)
	return length > minLength &&
		length < maxLength &&
		strings.TrimSpace(text) != ""
}

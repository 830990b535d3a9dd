package respond

import "strings"

// empathyPrefix is blended into replies to strongly negative messages.
const empathyPrefix = "I understand this has been frustrating, and I'm sorry for the trouble. "

// negativeToneThreshold is the sentiment score at or below which the
// empathy acknowledgment is prepended.
const negativeToneThreshold = -0.3

// AdjustTone adapts the reply to the sender's sentiment. Neutral and
// positive scores leave the text untouched; strongly negative scores get
// the empathy prefix. The adjustment never stacks.
func AdjustTone(text string, sentiment float64) string {
	if sentiment > negativeToneThreshold {
		return text
	}
	if strings.HasPrefix(text, empathyPrefix) {
		return text
	}
	return empathyPrefix + text
}

// Package signals computes shallow lexical signals (urgency, sentiment,
// language, entities) from raw message text. Everything here is pure and
// deterministic; the tables are data, not control flow, so they can be
// tuned and tested independently of the pipeline.
package signals

import (
	"regexp"
	"strings"
)

// angerPhrases flag strong frustration that always warrants a human.
var angerPhrases = []string{
	"ridiculous", "unacceptable", "outrageous", "furious", "infuriating",
	"fed up", "sick of this", "this is a joke", "worst experience",
}

// legalPhrases flag threats of legal action or formal complaints.
var legalPhrases = []string{
	"legal action", "lawsuit", "lawyer", "attorney", "sue you", "suing",
	"file a complaint", "better business bureau", "consumer protection",
}

// paymentPhrases flag billing failures, which are treated as critical.
var paymentPhrases = []string{
	"charged twice", "double charged", "double billed", "payment failed",
	"billing error", "unauthorized charge", "money was taken",
	"refund immediately", "cannot access my account", "locked out of my account",
}

// immediacyPhrases flag explicit demands for instant handling.
var immediacyPhrases = []string{
	"immediately", "right now", "asap", "as soon as possible", "emergency",
	"urgent", "urgently",
}

// repeatedExclaim matches two or more consecutive exclamation marks.
var repeatedExclaim = regexp.MustCompile(`!{2,}`)

// shoutedImperative matches all-caps imperative words kept in their
// original casing, e.g. "I need help NOW".
var shoutedImperative = regexp.MustCompile(`\b(NOW|HELP|ASAP|URGENT|IMMEDIATELY|REFUND|STOP)\b`)

// DetectUrgency reports whether the text carries any urgency marker:
// an anger, legal, payment-failure or immediacy phrase (case-insensitive),
// repeated exclamation marks, or an all-caps imperative.
func DetectUrgency(text string) bool {
	if repeatedExclaim.MatchString(text) || shoutedImperative.MatchString(text) {
		return true
	}

	lower := strings.ToLower(text)
	for _, set := range [][]string{angerPhrases, legalPhrases, paymentPhrases, immediacyPhrases} {
		for _, phrase := range set {
			if strings.Contains(lower, phrase) {
				return true
			}
		}
	}
	return false
}

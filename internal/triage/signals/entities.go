package signals

import "regexp"

// orderRefPattern matches identifiers introduced by the word "order",
// e.g. "order #AB123456", "order number 98765", "Order ID: X-44210".
var orderRefPattern = regexp.MustCompile(`(?i)\border\s*(?:number|no\.?|id)?\s*[#:]?\s*([A-Za-z]{0,4}-?\d{4,}[A-Za-z0-9-]*)`)

// bareRefPattern matches a hash-prefixed reference without the keyword,
// e.g. "what happened to #AB123456?".
var bareRefPattern = regexp.MustCompile(`#([A-Za-z]{0,4}-?\d{4,}[A-Za-z0-9-]*)`)

// ExtractOrderNumber returns the first order identifier found in the text.
// ok is false when no identifier is present.
func ExtractOrderNumber(text string) (id string, ok bool) {
	if m := orderRefPattern.FindStringSubmatch(text); m != nil {
		return m[1], true
	}
	if m := bareRefPattern.FindStringSubmatch(text); m != nil {
		return m[1], true
	}
	return "", false
}

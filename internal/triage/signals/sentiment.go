package signals

import "strings"

// sentimentLexicon maps terms to signed weights in [-1, 1]. Matching is
// case-insensitive substring containment, so multi-word phrases work too.
var sentimentLexicon = map[string]float64{
	// positive
	"thank":      0.6,
	"great":      0.7,
	"awesome":    0.8,
	"excellent":  0.8,
	"amazing":    0.8,
	"perfect":    0.7,
	"love":       0.7,
	"appreciate": 0.6,
	"helpful":    0.6,
	"wonderful":  0.8,

	// negative
	"terrible":       -0.8,
	"awful":          -0.8,
	"horrible":       -0.9,
	"unacceptable":   -0.7,
	"ridiculous":     -0.7,
	"worst":          -0.9,
	"useless":        -0.6,
	"disappointed":   -0.5,
	"frustrated":     -0.6,
	"frustrating":    -0.6,
	"angry":          -0.6,
	"furious":        -0.9,
	"hate":           -0.7,
	"scam":           -0.9,
	"never works":    -0.7,
	"waste of money": -0.8,
}

// SentimentScore returns a heuristic polarity estimate in [-1, 1]: the mean
// signed weight of all matched lexicon terms, clamped. Text with no matches
// scores exactly 0.
func SentimentScore(text string) float64 {
	lower := strings.ToLower(text)

	var sum float64
	var matches int
	for term, weight := range sentimentLexicon {
		if strings.Contains(lower, term) {
			sum += weight
			matches++
		}
	}
	if matches == 0 {
		return 0
	}

	score := sum / float64(matches)
	return clamp(score, -1, 1)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

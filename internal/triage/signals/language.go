package signals

import (
	"strings"
	"unicode"
)

// scriptRanges maps non-Latin scripts directly to a language code. A single
// script is a strong enough signal on its own.
var scriptRanges = []struct {
	code  string
	table *unicode.RangeTable
}{
	{"th", unicode.Thai},
	{"ja", unicode.Hiragana},
	{"ja", unicode.Katakana},
	{"zh", unicode.Han},
	{"ko", unicode.Hangul},
	{"ru", unicode.Cyrillic},
	{"ar", unicode.Arabic},
	{"he", unicode.Hebrew},
	{"hi", unicode.Devanagari},
}

// stopwords distinguishes Latin-script languages. Counting whole-word hits
// keeps short function words from matching inside other words.
var stopwords = map[string][]string{
	"en": {"the", "is", "are", "what", "how", "my", "your", "please", "hello", "thanks", "have", "need", "can", "this"},
	"es": {"el", "la", "los", "las", "que", "por", "para", "gracias", "hola", "necesito", "tengo", "como"},
	"fr": {"le", "les", "je", "vous", "est", "pour", "merci", "bonjour", "avec", "mon", "une"},
	"de": {"der", "die", "das", "und", "nicht", "ich", "ist", "mit", "danke", "hallo", "bitte"},
}

// stopwordConfidence is the minimum whole-word hits before a Latin-script
// guess is trusted.
const stopwordConfidence = 2

// DetectLanguage guesses the language of the text. It checks character
// scripts first, then falls back to stopword counting for Latin scripts.
// ok is false when confidence is too low; callers substitute the configured
// default language.
func DetectLanguage(text string) (code string, ok bool) {
	var letters int
	counts := map[string]int{}
	for _, r := range text {
		if !unicode.IsLetter(r) {
			continue
		}
		letters++
		for _, s := range scriptRanges {
			if unicode.Is(s.table, r) {
				counts[s.code]++
				break
			}
		}
	}
	if letters == 0 {
		return "", false
	}
	for lang, n := range counts {
		// a third of the letters in one script is decisive
		if n*3 >= letters {
			return lang, true
		}
	}

	words := tokenize(text)
	if len(words) == 0 {
		return "", false
	}

	best, bestHits := "", 0
	for lang, vocab := range stopwords {
		hits := 0
		for _, w := range vocab {
			if words[w] {
				hits++
			}
		}
		if hits > bestHits {
			best, bestHits = lang, hits
		}
	}
	if bestHits >= stopwordConfidence {
		return best, true
	}
	return "", false
}

func tokenize(text string) map[string]bool {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r)
	})
	words := make(map[string]bool, len(fields))
	for _, f := range fields {
		words[f] = true
	}
	return words
}

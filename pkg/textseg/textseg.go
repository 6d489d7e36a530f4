// Package textseg segments raw corpus text into sentences and matches terms
// against them on whole-word boundaries.
package textseg

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MinSentenceLength is the threshold below which segments are discarded
// before term matching.
const MinSentenceLength = 5

// Split breaks text into sentences at '.', '!' or '?' followed by
// whitespace (or end of input). Segments are trimmed; empty ones dropped.
func Split(text string) []string {
	var (
		sentences []string
		b         strings.Builder
	)
	runes := []rune(text)
	flush := func() {
		if s := strings.TrimSpace(b.String()); s != "" {
			sentences = append(sentences, s)
		}
		b.Reset()
	}
	for i, r := range runes {
		b.WriteRune(r)
		if isTerminator(r) && (i+1 == len(runes) || unicode.IsSpace(runes[i+1])) {
			flush()
		}
	}
	flush()
	return sentences
}

func isTerminator(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

// WordPattern compiles a case-insensitive whole-word matcher for term, so
// that "apple" cannot match inside "pineapple".
func WordPattern(term string) (*regexp.Regexp, error) {
	return regexp.Compile(`(?i)\b` + regexp.QuoteMeta(term) + `\b`)
}

// ContainsWord reports whether sentence contains term as a whole word,
// case-insensitively.
func ContainsWord(sentence, term string) bool {
	pattern, err := WordPattern(term)
	if err != nil {
		return false
	}
	return pattern.MatchString(sentence)
}

// Length counts the characters of the trimmed sentence.
func Length(sentence string) int {
	return utf8.RuneCountInString(strings.TrimSpace(sentence))
}

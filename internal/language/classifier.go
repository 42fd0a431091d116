// Package language classifies free text as English or Taglish using a
// marker-word hit-count heuristic. It is deliberately approximate: a
// best-effort signal, not a real language detector.
package language

import (
	"regexp"
	"strings"
)

// Language is a resolved language label.
type Language string

const (
	English Language = "english"
	Taglish Language = "taglish"
	Auto    Language = "auto"
)

var (
	taglishRe = compileMarkers(taglishMarkers)
	englishRe = compileMarkers(englishMarkers)
)

func compileMarkers(markers []string) *regexp.Regexp {
	return regexp.MustCompile(`\b(?:` + strings.Join(markers, "|") + `)\b`)
}

// Resolve returns the language for the given text. An explicit concrete
// hint wins; otherwise text with at least two distinct Taglish marker
// words is Taglish, everything else English. Total function, never errors.
func Resolve(text string, hint Language) Language {
	if hint == English || hint == Taglish {
		return hint
	}
	if taglishHits(text) >= markerThreshold {
		return Taglish
	}
	return English
}

// LooksLike reports whether generated text plausibly matches the target
// language. Approximate in both directions; callers must treat it as a
// hint, not a guarantee.
func LooksLike(text string, lang Language) bool {
	switch lang {
	case Taglish:
		// A Taglish reply with zero Taglish markers is suspicious.
		return taglishHits(text) >= 1
	case English:
		// An English reply drifting into Taglish shows marker words
		// outnumbering the English ones.
		hits := taglishHits(text)
		return hits < markerThreshold || hits <= englishHits(text)
	default:
		return true
	}
}

func taglishHits(text string) int {
	return countDistinct(taglishRe, text)
}

func englishHits(text string) int {
	return countDistinct(englishRe, text)
}

// countDistinct counts distinct matched marker words, so one particle
// repeated never crosses the threshold on its own.
func countDistinct(re *regexp.Regexp, text string) int {
	seen := make(map[string]struct{})
	for _, m := range re.FindAllString(strings.ToLower(text), -1) {
		seen[m] = struct{}{}
	}
	return len(seen)
}

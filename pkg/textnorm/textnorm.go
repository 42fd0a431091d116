// Package textnorm post-processes raw LLM output with deterministic,
// order-sensitive regex substitutions. Every function is total: empty
// input comes back unchanged and nothing here ever fails.
package textnorm

import (
	"regexp"
	"strings"
)

var typoFixes = []struct {
	re   *regexp.Regexp
	repl string
}{
	{regexp.MustCompile(`(?i)\brecieve\b`), "receive"},
	{regexp.MustCompile(`(?i)\bthankyou\b`), "thank you"},
	{regexp.MustCompile(`(?i)\balot\b`), "a lot"},
	{regexp.MustCompile(`(?i)\bdefinately\b`), "definitely"},
	{regexp.MustCompile(`(?i)\bseperate\b`), "separate"},
}

var (
	corporateRe   = regexp.MustCompile(`(?i)we appreciate your business[.!]*`)
	poDupRe       = regexp.MustCompile(`(?i)\bpo(?:[\s,]+po\b)+`)
	sentenceEndRe = regexp.MustCompile(`[.!?]+(?:\s+|$)`)
	politenessRe  = regexp.MustCompile(`(?i)\b(?:po|opo|salamat)\b`)
	placeholderRe = regexp.MustCompile(`\[[A-Za-z_ ]+\]|\{\{[^}]*\}\}`)
	multiSpacesRe = regexp.MustCompile(`[ \t]{2,}`)
)

// Clean runs the full normalization pipeline for the given target language.
func Clean(text, language string) string {
	if text == "" {
		return text
	}

	text = FixTypos(text)
	text = StripPlaceholders(text)
	text = LocalizeThanks(text, language)
	text = DedupePoliteness(text)
	text = TrimSentences(text, MaxSentences)
	if language == "taglish" {
		text = EnsurePoliteness(text)
	}

	return strings.TrimSpace(multiSpacesRe.ReplaceAllString(text, " "))
}

// FixTypos applies the fixed typo-correction map.
func FixTypos(text string) string {
	for _, fix := range typoFixes {
		text = fix.re.ReplaceAllString(text, fix.repl)
	}
	return text
}

// StripPlaceholders removes template tokens like [NAME] or {{customer}}
// that models sometimes leave behind despite the prompt prohibitions.
func StripPlaceholders(text string) string {
	return placeholderRe.ReplaceAllString(text, "")
}

// LocalizeThanks replaces generic corporate phrasing with a fixed
// localized phrase matching the target language.
func LocalizeThanks(text, language string) string {
	repl := EnglishThanks
	if language == "taglish" {
		repl = TaglishThanks
	}
	return corporateRe.ReplaceAllString(text, repl)
}

// DedupePoliteness collapses a repeated "po" particle into one,
// keeping the casing of the first occurrence.
func DedupePoliteness(text string) string {
	return poDupRe.ReplaceAllStringFunc(text, func(m string) string {
		return m[:2]
	})
}

// TrimSentences keeps the first max sentences, splitting on
// sentence-ending punctuation followed by whitespace. Idempotent.
func TrimSentences(text string, max int) string {
	if max <= 0 {
		return text
	}
	ends := sentenceEndRe.FindAllStringIndex(text, -1)
	if len(ends) < max {
		return text
	}
	cut := ends[max-1][1]
	if cut >= len(text) {
		return text
	}
	return strings.TrimRight(text[:cut], " \t\n")
}

// EnsurePoliteness appends the politeness suffix when no Taglish
// politeness marker is present. Idempotent.
func EnsurePoliteness(text string) string {
	if politenessRe.MatchString(text) {
		return text
	}
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return text
	}
	return trimmed + " " + PolitenessSuffix
}

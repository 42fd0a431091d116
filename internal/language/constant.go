package language

// Marker vocabularies used for classification and output checking.
// Markers are matched on whole-word boundaries against lower-cased text.
var (
	// taglishMarkers are Tagalog politeness particles and common
	// function words that signal code-switched Filipino text.
	taglishMarkers = []string{
		"po", "opo", "naman", "talaga", "salamat", "yung", "kasi",
		"lang", "din", "rin", "ba", "sana", "ganda", "maganda",
		"sobrang", "bilis", "mabilis", "hindi", "wala", "meron",
	}

	// englishMarkers are common English function words, used only by
	// the output-quality check, never by input classification.
	englishMarkers = []string{
		"the", "and", "was", "were", "with", "this", "that",
		"very", "thank", "you", "your", "for",
	}
)

// markerThreshold is the hit count at or above which text is
// classified as Taglish.
const markerThreshold = 2

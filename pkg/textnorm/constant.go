package textnorm

const (
	// MaxSentences is the reply length cap, in sentences
	MaxSentences = 3

	// TaglishThanks replaces generic corporate phrasing for Taglish replies
	TaglishThanks = "Salamat sa suporta mo!"

	// EnglishThanks replaces generic corporate phrasing for English replies
	EnglishThanks = "Thank you for your support!"

	// PolitenessSuffix is appended to Taglish replies missing a politeness marker
	PolitenessSuffix = "Salamat po!"
)

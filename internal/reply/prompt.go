package reply

import (
	"fmt"

	"replypilot/internal/language"
)

// SystemPromptTemplate is the system instruction sent to the provider.
// The prohibitions are hard rules: the model must never invent order
// facts the seller did not state.
const SystemPromptTemplate = `You are a customer-service assistant for a Filipino online marketplace seller. Write a reply to a customer review on the seller's behalf.

RULES:
1. %s
2. %s
3. Keep the reply to 1-3 sentences.
4. NEVER invent or mention specific prices, stock levels, shipping times, or store locations.
5. NEVER use placeholder tokens like [NAME] or {{customer}}.
6. Address the customer directly and reference what they said.

Return ONLY the reply text. No quotes, no markdown, no explanation.`

var toneDirectives = map[Tone]string{
	ToneFriendly:     "Use a warm, friendly tone, like a small shop owner chatting with a suki.",
	ToneProfessional: "Use a polished, professional tone suitable for a brand storefront.",
	ToneApology:      "Lead with a sincere apology and focus on making things right.",
	ToneCheerful:     "Use an upbeat, cheerful tone with light enthusiasm.",
}

var languageDirectives = map[language.Language]string{
	language.English: "Reply in natural, warm English.",
	language.Taglish: "Reply in Taglish (conversational Filipino mixing Tagalog and English) the way Filipino online sellers talk to customers.",
}

// BuildSystemInstruction assembles the system instruction for a tone and
// resolved language. Unknown values fall back to friendly English.
func BuildSystemInstruction(tone Tone, lang language.Language) string {
	toneLine, ok := toneDirectives[tone]
	if !ok {
		toneLine = toneDirectives[ToneFriendly]
	}
	langLine, ok := languageDirectives[lang]
	if !ok {
		langLine = languageDirectives[language.English]
	}
	return fmt.Sprintf(SystemPromptTemplate, toneLine, langLine)
}

// BuildUserInstruction assembles the user instruction embedding the
// review and its context. Deterministic string interpolation only.
func BuildUserInstruction(reviewText, productName string, platform Platform, rating int) string {
	product := "the product"
	if productName != "" {
		product = fmt.Sprintf("%q", productName)
	}
	return fmt.Sprintf(
		"A customer left a %d-star review for %s on %s:\n\n%q\n\nWrite the seller's reply.",
		rating, product, platform, reviewText,
	)
}

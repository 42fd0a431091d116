package reply

import (
	"strings"

	"replypilot/internal/language"
)

// Platform is the marketplace the review came from.
type Platform string

const (
	PlatformShopee Platform = "shopee"
	PlatformLazada Platform = "lazada"
	PlatformTikTok Platform = "tiktok"
)

// Tone selects the voice of the generated reply.
type Tone string

const (
	ToneFriendly     Tone = "friendly"
	ToneProfessional Tone = "professional"
	ToneApology      Tone = "apology"
	ToneCheerful     Tone = "cheerful"
)

// MaxProductNameLen bounds the product name embedded into the prompt.
const MaxProductNameLen = 80

// GenerateInput is the validated request for one reply generation.
type GenerateInput struct {
	ReviewText  string
	ProductName string
	Platform    Platform
	Rating      int
	Tone        Tone
	Language    language.Language
	Caller      string
}

// Normalize clamps and defaults every optional field. ReviewText presence
// is the delivery layer's job; everything else is made valid here.
func (in *GenerateInput) Normalize() {
	in.ReviewText = strings.TrimSpace(in.ReviewText)

	in.ProductName = strings.TrimSpace(in.ProductName)
	if len(in.ProductName) > MaxProductNameLen {
		in.ProductName = in.ProductName[:MaxProductNameLen]
	}

	switch in.Platform {
	case PlatformShopee, PlatformLazada, PlatformTikTok:
	default:
		in.Platform = PlatformShopee
	}

	if in.Rating == 0 {
		in.Rating = 5
	}
	if in.Rating < 1 {
		in.Rating = 1
	}
	if in.Rating > 5 {
		in.Rating = 5
	}

	switch in.Tone {
	case ToneFriendly, ToneProfessional, ToneApology, ToneCheerful:
	default:
		in.Tone = ToneFriendly
	}

	switch in.Language {
	case language.English, language.Taglish:
	default:
		in.Language = language.Auto
	}
}

// GenerateOutput is the result of one reply generation.
type GenerateOutput struct {
	Reply    string
	Engine   string
	Language language.Language
}

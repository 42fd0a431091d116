package reply_test

import (
	"strings"
	"testing"

	"replypilot/internal/language"
	"replypilot/internal/reply"
)

func TestBuildSystemInstruction(t *testing.T) {
	sys := reply.BuildSystemInstruction(reply.ToneApology, language.Taglish)

	if !strings.Contains(sys, "sincere apology") {
		t.Errorf("missing tone directive: %q", sys)
	}
	if !strings.Contains(sys, "Taglish") {
		t.Errorf("missing language directive: %q", sys)
	}
	if !strings.Contains(sys, "1-3 sentences") {
		t.Errorf("missing length constraint: %q", sys)
	}
	if !strings.Contains(sys, "NEVER invent") {
		t.Errorf("missing content prohibitions: %q", sys)
	}
}

func TestBuildSystemInstruction_UnknownFallsBack(t *testing.T) {
	sys := reply.BuildSystemInstruction(reply.Tone("sarcastic"), language.Auto)

	if !strings.Contains(sys, "friendly") {
		t.Errorf("expected friendly fallback: %q", sys)
	}
	if !strings.Contains(sys, "English") {
		t.Errorf("expected english fallback: %q", sys)
	}
}

func TestBuildUserInstruction(t *testing.T) {
	user := reply.BuildUserInstruction("Ang bilis ng delivery!", "Wireless Mouse", reply.PlatformLazada, 5)

	if !strings.Contains(user, "Ang bilis ng delivery!") {
		t.Errorf("missing review text: %q", user)
	}
	if !strings.Contains(user, "Wireless Mouse") {
		t.Errorf("missing product name: %q", user)
	}
	if !strings.Contains(user, "lazada") {
		t.Errorf("missing platform: %q", user)
	}
	if !strings.Contains(user, "5-star") {
		t.Errorf("missing rating: %q", user)
	}
}

func TestBuildUserInstruction_NoProductName(t *testing.T) {
	user := reply.BuildUserInstruction("Good item.", "", reply.PlatformShopee, 4)

	if !strings.Contains(user, "the product") {
		t.Errorf("expected generic product reference: %q", user)
	}
}

func TestGenerateInputNormalize(t *testing.T) {
	in := reply.GenerateInput{
		ReviewText:  "  great!  ",
		ProductName: strings.Repeat("x", 200),
		Platform:    "amazon",
		Rating:      9,
		Tone:        "angry",
		Language:    "tagalog",
	}
	in.Normalize()

	if in.ReviewText != "great!" {
		t.Errorf("review text should be trimmed: %q", in.ReviewText)
	}
	if len(in.ProductName) != reply.MaxProductNameLen {
		t.Errorf("product name should be truncated to %d, got %d", reply.MaxProductNameLen, len(in.ProductName))
	}
	if in.Platform != reply.PlatformShopee {
		t.Errorf("unknown platform should default to shopee, got %q", in.Platform)
	}
	if in.Rating != 5 {
		t.Errorf("rating should clamp to 5, got %d", in.Rating)
	}
	if in.Tone != reply.ToneFriendly {
		t.Errorf("unknown tone should default to friendly, got %q", in.Tone)
	}
	if in.Language != language.Auto {
		t.Errorf("unknown language should default to auto, got %q", in.Language)
	}
}

func TestGenerateInputNormalize_ZeroRatingDefaultsToFive(t *testing.T) {
	in := reply.GenerateInput{ReviewText: "ok"}
	in.Normalize()

	if in.Rating != 5 {
		t.Errorf("zero rating should default to 5, got %d", in.Rating)
	}
	if in.Language != language.Auto {
		t.Errorf("empty language should default to auto, got %q", in.Language)
	}
}

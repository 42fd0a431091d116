package usecase

import (
	"context"

	"replypilot/internal/language"
	"replypilot/internal/reply"
	"replypilot/pkg/textnorm"
)

// Generate resolves the review language, routes the prompt through the
// provider engine, applies the output-language corrective hop when the
// result looks wrong, normalizes the text, and records usage.
func (uc *implUseCase) Generate(ctx context.Context, input reply.GenerateInput) (reply.GenerateOutput, error) {
	input.Normalize()

	lang := language.Resolve(input.ReviewText, input.Language)

	system := reply.BuildSystemInstruction(input.Tone, lang)
	user := reply.BuildUserInstruction(input.ReviewText, input.ProductName, input.Platform, input.Rating)

	text, enginePath, err := uc.engine.Generate(ctx, string(lang), system, user)
	if err != nil {
		return reply.GenerateOutput{}, err
	}
	if text == "" {
		return reply.GenerateOutput{}, reply.ErrEmptyReply
	}

	// Best-effort output-language check: one corrective call, and only
	// if it yields usable text do we keep it.
	if !language.LooksLike(text, lang) {
		uc.l.Warnf(ctx, "reply language looks wrong, retrying: lang=%s engine=%s", lang, enginePath)
		fixed, fixedPath, fixErr := uc.engine.Generate(ctx, string(lang), correctiveInstruction(input.Tone, lang), user)
		if fixErr == nil && fixed != "" {
			text = fixed
			enginePath = fixedPath + "+fix"
		}
	}

	text = textnorm.Clean(text, string(lang))
	if text == "" {
		return reply.GenerateOutput{}, reply.ErrEmptyReply
	}

	uc.tracker.Record(input.Caller)

	return reply.GenerateOutput{
		Reply:    text,
		Engine:   enginePath,
		Language: lang,
	}, nil
}

// correctiveInstruction pins the output language hard for the retry.
func correctiveInstruction(tone reply.Tone, lang language.Language) string {
	base := reply.BuildSystemInstruction(tone, lang)
	if lang == language.Taglish {
		return base + "\n\nIMPORTANT: the reply MUST be in Taglish. Use Tagalog particles like \"po\" naturally."
	}
	return base + "\n\nIMPORTANT: the reply MUST be in English only. No Tagalog words."
}

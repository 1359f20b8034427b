package usecase

import (
	"context"
	"strings"
	"time"

	"health-info-bot/internal/bot"
	"health-info-bot/internal/model"
	"health-info-bot/pkg/dialogflow"
	"health-info-bot/pkg/langdetect"
)

// Handle answers a request whose intent was already resolved upstream.
func (uc *implUseCase) Handle(ctx context.Context, input bot.HandleInput) (out bot.HandleOutput) {
	defer uc.recoverToApology(ctx, &out)

	memory := uc.loadMemory(ctx, input.UserID)

	disease, userLang := uc.resolveDiseaseParam(ctx, input.Disease, memory)
	memory.LastDisease = disease
	memory.UserLang = userLang
	memory.AppendQuery(model.QueryRecord{
		Intent:    string(input.Intent),
		Disease:   disease,
		UserLang:  userLang,
		Timestamp: time.Now().UTC(),
	})

	text := uc.respond(ctx, input.Intent, disease, input.Date, memory)
	text = uc.translateFromEnglish(ctx, text, userLang)

	uc.saveMemory(ctx, input.UserID, memory)
	return bot.HandleOutput{Text: text, UserLang: userLang}
}

// HandleText answers a raw text message, running the NLU round-trip itself.
func (uc *implUseCase) HandleText(ctx context.Context, input bot.HandleTextInput) (out bot.HandleOutput) {
	defer uc.recoverToApology(ctx, &out)

	memory := uc.loadMemory(ctx, input.UserID)

	detected := uc.detectLanguage(ctx, input.Text, memory)
	userLang := langdetect.Normalize(detected)
	english := uc.translateToEnglish(ctx, input.Text, detected)

	result, err := uc.nlu.DetectIntent(ctx, input.UserID, english, model.DefaultLanguage)
	if err != nil {
		uc.l.Errorf(ctx, "bot usecase: detect intent: %v", err)
		result = dialogflow.Result{FulfillmentText: msgNLUUnavailable}
	}

	intent := model.ParseIntent(result.Intent)
	disease := result.StringParam("disease")
	if disease == "" {
		disease = result.StringParam("any")
	}
	if disease == "" {
		disease = memory.LastDisease
	}
	disease = strings.ToLower(strings.TrimSpace(disease))

	memory.LastDisease = disease
	memory.UserLang = userLang
	memory.AppendQuery(model.QueryRecord{
		Intent:    string(intent),
		Disease:   disease,
		UserLang:  userLang,
		Timestamp: time.Now().UTC(),
	})

	text := uc.respond(ctx, intent, disease, result.StringParam("date"), memory)
	if fulfillment := strings.TrimSpace(result.FulfillmentText); fulfillment != "" {
		if intent == model.IntentUnknown || intent == model.IntentFallback {
			// The agent's own reply is better than our shrug.
			text = result.FulfillmentText
		} else {
			text = result.FulfillmentText + "\n\n" + text
		}
	}
	text = uc.translateFromEnglish(ctx, text, userLang)

	uc.saveMemory(ctx, input.UserID, memory)
	return bot.HandleOutput{Text: text, UserLang: userLang}
}

// recoverToApology converts an unexpected fault anywhere in the pipeline
// into the generic apology; the user must never see a raw error.
func (uc *implUseCase) recoverToApology(ctx context.Context, out *bot.HandleOutput) {
	if rec := recover(); rec != nil {
		uc.l.Errorf(ctx, "bot usecase: recovered from panic: %v", rec)
		*out = bot.HandleOutput{Text: msgProcessingError, UserLang: model.DefaultLanguage}
	}
}

// resolveDiseaseParam turns the raw disease parameter into an English,
// lowercased disease name plus the user's normalized language. An empty
// parameter falls back to the remembered disease and language.
func (uc *implUseCase) resolveDiseaseParam(ctx context.Context, raw string, memory *model.UserMemory) (string, string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return memory.LastDisease, memory.Lang()
	}

	detected := uc.detectLanguage(ctx, raw, memory)
	disease := uc.translateToEnglish(ctx, raw, detected)
	return strings.ToLower(strings.TrimSpace(disease)), langdetect.Normalize(detected)
}

// detectLanguage identifies the language of text, falling back to the
// remembered language when detection fails or there is nothing to detect.
func (uc *implUseCase) detectLanguage(ctx context.Context, text string, memory *model.UserMemory) string {
	if strings.TrimSpace(text) == "" {
		return memory.Lang()
	}
	detected, err := uc.detector.Detect(text)
	if err != nil {
		uc.l.Warnf(ctx, "bot usecase: language detection failed: %v", err)
		return memory.Lang()
	}
	return detected
}

// translateToEnglish translates whitelisted-language text to English.
// English and non-whitelisted input passes through; so does the original
// text on any translation failure.
func (uc *implUseCase) translateToEnglish(ctx context.Context, text, lang string) string {
	if text == "" || !langdetect.IsIndianLanguage(lang) {
		return text
	}
	translated, err := uc.translator.Translate(ctx, text, lang, model.DefaultLanguage)
	if err != nil {
		uc.l.Warnf(ctx, "bot usecase: translate to english: %v", err)
		return text
	}
	return translated
}

// translateFromEnglish translates the finished English reply to the user's
// language when it is in the whitelist.
func (uc *implUseCase) translateFromEnglish(ctx context.Context, text, lang string) string {
	if text == "" || !langdetect.IsIndianLanguage(lang) {
		return text
	}
	translated, err := uc.translator.Translate(ctx, text, model.DefaultLanguage, lang)
	if err != nil {
		uc.l.Warnf(ctx, "bot usecase: translate from english: %v", err)
		return text
	}
	return translated
}

// loadMemory reads the user's memory, degrading to the empty memory on any
// persistence failure. Anonymous requests get the empty memory.
func (uc *implUseCase) loadMemory(ctx context.Context, userID string) *model.UserMemory {
	memory := &model.UserMemory{}
	if userID == "" {
		return memory
	}
	stored, err := uc.repo.GetMemory(ctx, userID)
	if err != nil {
		uc.l.Errorf(ctx, "bot usecase: load memory for %s: %v", userID, err)
		return memory
	}
	*memory = stored
	return memory
}

// saveMemory persists the user's memory best-effort; failures are logged
// and otherwise ignored.
func (uc *implUseCase) saveMemory(ctx context.Context, userID string, memory *model.UserMemory) {
	if userID == "" {
		return
	}
	if err := uc.repo.SaveMemory(ctx, userID, *memory); err != nil {
		uc.l.Errorf(ctx, "bot usecase: save memory for %s: %v", userID, err)
	}
}

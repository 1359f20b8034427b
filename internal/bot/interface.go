package bot

import (
	"context"

	"health-info-bot/pkg/dialogflow"
	"health-info-bot/pkg/whoint"
)

// UseCase is the channel-independent intent-handling core. Both webhooks
// delegate here; neither method ever fails, every upstream problem degrades
// to fallback text inside.
type UseCase interface {
	// Handle answers a request whose intent and parameters were already
	// resolved by the NLU provider (the structured fulfillment webhook).
	Handle(ctx context.Context, input HandleInput) HandleOutput

	// HandleText answers a raw text message: it runs language detection,
	// translation and the NLU round-trip itself (the WhatsApp webhook).
	HandleText(ctx context.Context, input HandleTextInput) HandleOutput
}

// WHOGateway is the subset of the WHO client the core depends on.
// Use interface for better testability.
type WHOGateway interface {
	ResolveSlug(ctx context.Context, disease string) (string, error)
	FactSheetURL(slug string) string
	FetchSection(ctx context.Context, url string, section whoint.Section, subject string) (string, error)
	OutbreakNews(ctx context.Context) ([]string, error)
}

// Translator translates text between two ISO-639-1 language codes.
type Translator interface {
	Translate(ctx context.Context, text, from, to string) (string, error)
}

// LanguageDetector identifies the language of user text.
type LanguageDetector interface {
	Detect(text string) (string, error)
}

// IntentDetector resolves intent and parameters from free-form text.
type IntentDetector interface {
	DetectIntent(ctx context.Context, sessionID, text, languageCode string) (dialogflow.Result, error)
}

package bot

import "health-info-bot/internal/model"

// HandleInput carries an already-resolved intent from the structured
// fulfillment webhook.
type HandleInput struct {
	// UserID identifies the user for memory purposes. Empty means an
	// anonymous request: memory is neither loaded nor persisted.
	UserID string

	Intent model.Intent

	// Disease is the raw disease parameter; may be non-English, may be
	// empty (the remembered disease is used then).
	Disease string

	// Date is the raw date parameter for the vaccination intent,
	// RFC3339 or plain yyyy-mm-dd.
	Date string
}

// HandleTextInput carries a raw inbound message from the WhatsApp webhook.
type HandleTextInput struct {
	UserID string
	Text   string
}

// HandleOutput is the finished reply, already translated to the user's
// language.
type HandleOutput struct {
	Text     string
	UserLang string
}

package dialogflow

import (
	"strings"

	"health-info-bot/internal/bot"
	"health-info-bot/internal/model"
)

// webhookReq is the slice of the Dialogflow v2 WebhookRequest envelope the
// bot cares about.
type webhookReq struct {
	Session     string `json:"session"`
	QueryResult struct {
		Intent struct {
			DisplayName string `json:"displayName"`
		} `json:"intent"`
		Parameters map[string]any `json:"parameters"`
	} `json:"queryResult"`
	OriginalDetectIntentRequest struct {
		Payload struct {
			User struct {
				UserID string `json:"userId"`
			} `json:"user"`
		} `json:"payload"`
	} `json:"originalDetectIntentRequest"`
}

// userID prefers the integration payload's user id and falls back to the
// session path, which is unique per conversation.
func (r webhookReq) userID() string {
	if id := strings.TrimSpace(r.OriginalDetectIntentRequest.Payload.User.UserID); id != "" {
		return id
	}
	return strings.TrimSpace(r.Session)
}

// stringParam extracts a parameter as a string. Dialogflow sends list
// parameters for some entities; the first element wins then.
func (r webhookReq) stringParam(key string) string {
	switch v := r.QueryResult.Parameters[key].(type) {
	case string:
		return strings.TrimSpace(v)
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
				return strings.TrimSpace(s)
			}
		}
	}
	return ""
}

func (r webhookReq) toInput() bot.HandleInput {
	disease := r.stringParam("disease")
	if disease == "" {
		disease = r.stringParam("any")
	}
	return bot.HandleInput{
		UserID:  r.userID(),
		Intent:  model.ParseIntent(r.QueryResult.Intent.DisplayName),
		Disease: disease,
		Date:    r.stringParam("date"),
	}
}

// webhookResp is the minimal Dialogflow WebhookResponse.
type webhookResp struct {
	FulfillmentText string `json:"fulfillmentText"`
}

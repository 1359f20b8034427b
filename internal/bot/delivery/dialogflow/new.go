package dialogflow

import (
	"github.com/gin-gonic/gin"

	"health-info-bot/internal/bot"
	"health-info-bot/pkg/log"
)

// Handler is the public interface for the Dialogflow fulfillment webhook.
type Handler interface {
	Webhook(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc bot.UseCase
}

// New creates a new Dialogflow fulfillment handler.
func New(l log.Logger, uc bot.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}

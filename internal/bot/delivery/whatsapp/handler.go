package whatsapp

import (
	"strings"

	"github.com/gin-gonic/gin"

	"health-info-bot/internal/bot"
)

// msgChannelError is the reply of last resort. Twilio surfaces protocol
// errors to nobody, so even a broken webhook must answer with TwiML.
const msgChannelError = "⚠️ Something went wrong. Please try again later."

// defaultSession identifies messages that arrive without a sender number.
const defaultSession = "default_user"

// Webhook godoc
// @Summary     Twilio WhatsApp webhook
// @Description Answers an inbound WhatsApp message with health information text as TwiML.
// @Tags        Webhook
// @Accept      x-www-form-urlencoded
// @Produce     xml
// @Param       Body formData string false "Message text"
// @Param       From formData string false "Sender number"
// @Success     200 {string} string "TwiML response"
// @Router      /whatsapp_webhook [POST]
func (h *handler) Webhook(c *gin.Context) {
	ctx := c.Request.Context()

	defer func() {
		if rec := recover(); rec != nil {
			h.l.Errorf(ctx, "whatsapp webhook: recovered from panic: %v", rec)
			writeTwiML(c, msgChannelError)
		}
	}()

	body := strings.TrimSpace(c.PostForm("Body"))
	from := strings.TrimSpace(c.PostForm("From"))
	if from == "" {
		from = defaultSession
	}

	out := h.uc.HandleText(ctx, bot.HandleTextInput{
		UserID: from,
		Text:   body,
	})

	writeTwiML(c, out.Text)
}

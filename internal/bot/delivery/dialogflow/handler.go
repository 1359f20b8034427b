package dialogflow

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Webhook godoc
// @Summary     Dialogflow fulfillment webhook
// @Description Answers a resolved intent with health information text.
// @Tags        Webhook
// @Accept      json
// @Produce     json
// @Param       body body webhookReq true "Dialogflow WebhookRequest"
// @Success     200 {object} webhookResp
// @Failure     400 {object} webhookResp "Malformed request body"
// @Router      /webhook [POST]
func (h *handler) Webhook(c *gin.Context) {
	ctx := c.Request.Context()

	var req webhookReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "dialogflow webhook: bind request: %v", err)
		c.JSON(http.StatusBadRequest, webhookResp{FulfillmentText: "Invalid request"})
		return
	}

	out := h.uc.Handle(ctx, req.toInput())
	c.JSON(http.StatusOK, webhookResp{FulfillmentText: out.Text})
}

package whatsapp

import (
	"encoding/xml"
	"net/http"

	"github.com/gin-gonic/gin"
)

// messagingResponse is the TwiML document Twilio expects back from a
// message webhook.
type messagingResponse struct {
	XMLName xml.Name `xml:"Response"`
	Message string   `xml:"Message"`
}

// writeTwiML renders a single-message TwiML reply. Twilio treats anything
// that is not valid TwiML as a failure, so this is the only way out of the
// webhook.
func writeTwiML(c *gin.Context, message string) {
	c.XML(http.StatusOK, messagingResponse{Message: message})
}

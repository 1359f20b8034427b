package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	dfDelivery "health-info-bot/internal/bot/delivery/dialogflow"
	waDelivery "health-info-bot/internal/bot/delivery/whatsapp"
	"health-info-bot/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	dialogflowHandler dfDelivery.Handler
	whatsappHandler   waDelivery.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	DialogflowHandler dfDelivery.Handler
	WhatsAppHandler   waDelivery.Handler
}

// New creates a new HTTPServer instance.
func New(cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                 cfg.Logger,
		gin:               gin.New(),
		port:              cfg.Port,
		mode:              cfg.Mode,
		environment:       cfg.Environment,
		dialogflowHandler: cfg.DialogflowHandler,
		whatsappHandler:   cfg.WhatsAppHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.dialogflowHandler == nil {
		return errors.New("dialogflow handler is required")
	}
	if srv.whatsappHandler == nil {
		return errors.New("whatsapp handler is required")
	}
	return nil
}

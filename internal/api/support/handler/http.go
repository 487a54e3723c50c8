package supportHandler

import (
	supportService "YeloSoul/internal/api/support/service"
	"YeloSoul/internal/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type SupportHandler struct {
	log            *logrus.Logger
	supportService supportService.SupportService
	validator      *validator.Validate
	middleware     middleware.Middleware
}

func New(
	log *logrus.Logger,
	ss supportService.SupportService,
	validate *validator.Validate,
	middleware middleware.Middleware,
) *SupportHandler {
	return &SupportHandler{
		log:            log,
		supportService: ss,
		validator:      validate,
		middleware:     middleware,
	}
}

func (h *SupportHandler) Start(srv fiber.Router) {
	supportGroup := srv.Group("/support")
	supportGroup.Post("/returns", h.HandleSendReturnRequest)
}

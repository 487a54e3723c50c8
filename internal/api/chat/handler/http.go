package chatHandler

import (
	chatService "YeloSoul/internal/api/chat/service"
	"YeloSoul/internal/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ChatHandler struct {
	log         *logrus.Logger
	chatService chatService.ChatService
	validator   *validator.Validate
	middleware  middleware.Middleware
}

func New(
	log *logrus.Logger,
	cs chatService.ChatService,
	validate *validator.Validate,
	middleware middleware.Middleware,
) *ChatHandler {
	return &ChatHandler{
		log:         log,
		chatService: cs,
		validator:   validate,
		middleware:  middleware,
	}
}

func (h *ChatHandler) Start(srv fiber.Router) {
	chatGroup := srv.Group("/chat")
	chatGroup.Post("/", h.HandleChat)
	chatGroup.Post("/ai", h.HandleChatAI)
}

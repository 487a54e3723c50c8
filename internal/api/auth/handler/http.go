package authHandler

import (
	authService "YeloSoul/internal/api/auth/service"
	"YeloSoul/internal/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type AuthHandler struct {
	log         *logrus.Logger
	authService authService.AuthService
	validator   *validator.Validate
	middleware  middleware.Middleware
}

func New(
	log *logrus.Logger,
	as authService.AuthService,
	validate *validator.Validate,
	middleware middleware.Middleware,
) *AuthHandler {
	return &AuthHandler{
		log:         log,
		authService: as,
		validator:   validate,
		middleware:  middleware,
	}
}

func (h *AuthHandler) Start(srv fiber.Router) {
	auth := srv.Group("/auth")
	auth.Post("/signup", h.HandleSignup)
	auth.Post("/login", h.HandleLogin)
	auth.Post("/forgot-password", h.HandleForgotPassword)
	auth.Patch("/reset-password", h.HandleResetPassword)
}

package config

import (
	"YeloSoul/database/postgres"
	authHandler "YeloSoul/internal/api/auth/handler"
	authRepository "YeloSoul/internal/api/auth/repository"
	authService "YeloSoul/internal/api/auth/service"
	cartHandler "YeloSoul/internal/api/cart/handler"
	cartRepository "YeloSoul/internal/api/cart/repository"
	cartService "YeloSoul/internal/api/cart/service"
	chatHandler "YeloSoul/internal/api/chat/handler"
	chatService "YeloSoul/internal/api/chat/service"
	occasionHandler "YeloSoul/internal/api/occasion/handler"
	occasionRepository "YeloSoul/internal/api/occasion/repository"
	occasionService "YeloSoul/internal/api/occasion/service"
	orderHandler "YeloSoul/internal/api/order/handler"
	orderRepository "YeloSoul/internal/api/order/repository"
	orderService "YeloSoul/internal/api/order/service"
	productHandler "YeloSoul/internal/api/product/handler"
	productRepository "YeloSoul/internal/api/product/repository"
	productService "YeloSoul/internal/api/product/service"
	supportHandler "YeloSoul/internal/api/support/handler"
	supportService "YeloSoul/internal/api/support/service"
	"YeloSoul/internal/middleware"
	"YeloSoul/pkg/bcrypt"
	"YeloSoul/pkg/chatbot"
	"YeloSoul/pkg/gemini"
	"YeloSoul/pkg/razorpay"
	"YeloSoul/pkg/redis"
	"YeloSoul/pkg/s3"
	"YeloSoul/pkg/smtp"
	"YeloSoul/pkg/utils"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type ServerOption func(*Server) error

type Server struct {
	engine         *fiber.App
	db             *sqlx.DB
	log            *logrus.Logger
	middleware     middleware.Middleware
	validator      *validator.Validate
	utils          utils.IUtils
	bcryptUtils    bcrypt.IBcrypt
	handlers       []handler
	redisServer    redis.IRedis
	smtpMailer     smtp.ItfSmtp
	geminiClient   gemini.IGemini
	razorpayClient razorpay.IRazorpay
	s3Client       s3.ItfS3
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

func WithDatabase() ServerOption {
	return func(s *Server) error {
		db, err := postgres.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to connect to database: %v", err)
			}
			return fmt.Errorf("failed to create database connection: %w", err)
		}
		s.db = db
		return nil
	}
}

func WithRedisServer(redisServer redis.IRedis) ServerOption {
	return func(s *Server) error {
		s.redisServer = redisServer
		return nil
	}
}

func WithSMTPMailer(smtpMailer smtp.ItfSmtp) ServerOption {
	return func(s *Server) error {
		s.smtpMailer = smtpMailer
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log)
		return nil
	}
}

func WithS3Client() ServerOption {
	return func(s *Server) error {
		client, err := s3.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to initialize S3 client: %v", err)
			}
			return fmt.Errorf("failed to create S3 client: %w", err)
		}
		s.s3Client = client
		return nil
	}
}

func WithGeminiClient() ServerOption {
	return func(s *Server) error {
		client, err := gemini.NewFromEnv()
		if err != nil {
			if s.log != nil {
				s.log.Warnf("Gemini client unavailable, AI chat degraded: %v", err)
			}
			s.geminiClient = gemini.NewNull()
			return nil
		}
		s.geminiClient = client
		return nil
	}
}

func WithRazorpayClient() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before razorpay client")
		}
		s.razorpayClient = razorpay.NewRazorpayService(s.log)
		return nil
	}
}

func WithBcryptUtils() ServerOption {
	return func(s *Server) error {
		s.bcryptUtils = bcrypt.New()
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func (s *Server) RegisterHandler() {
	// Auth Domain
	authRepo := authRepository.New(s.db, s.log)
	authServices := authService.New(s.log, authRepo, s.smtpMailer, s.redisServer, s.bcryptUtils, s.utils)
	authHandlers := authHandler.New(s.log, authServices, s.validator, s.middleware)

	// Product Catalog
	productRepo := productRepository.New(s.db, s.log)
	productServices := productService.New(s.log, productRepo, s.s3Client, s.utils)
	productHandlers := productHandler.New(s.log, productServices, s.validator, s.middleware)

	// Cart & Wishlist
	cartRepo := cartRepository.New(s.db, s.log)
	cartServices := cartService.New(s.log, cartRepo, productRepo)
	cartHandlers := cartHandler.New(s.log, cartServices, s.validator, s.middleware)

	// Orders & Payment
	orderRepo := orderRepository.New(s.db, s.log)
	orderServices := orderService.New(s.log, orderRepo, s.razorpayClient, s.utils)
	orderHandlers := orderHandler.New(s.log, orderServices, s.validator, s.middleware)

	// Occasions
	occasionRepo := occasionRepository.New(s.db, s.log)
	occasionServices := occasionService.New(s.log, occasionRepo, productRepo, s.utils)
	occasionHandlers := occasionHandler.New(s.log, occasionServices, s.validator, s.middleware)

	// Support
	supportServices := supportService.New(s.log, s.smtpMailer)
	supportHandlers := supportHandler.New(s.log, supportServices, s.validator, s.middleware)

	// Chat Assistant
	chatServices := chatService.New(s.log, productRepo, s.geminiClient, chatbot.New())
	chatHandlers := chatHandler.New(s.log, chatServices, s.validator, s.middleware)

	s.setupHealthCheck()
	s.handlers = append(s.handlers,
		authHandlers,
		productHandlers,
		cartHandlers,
		orderHandlers,
		occasionHandlers,
		supportHandlers,
		chatHandlers,
	)
}

func (s *Server) Run() error {
	router := s.engine.Group("/api/v1")
	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(middleware.LoggerConfig())
	s.engine.Use(s.middleware.NewRateLimiter)

	for _, h := range s.handlers {
		h.Start(router)
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	return s.engine.Listen(fmt.Sprintf(":%s", port))
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
		})
	})
}

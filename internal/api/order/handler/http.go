package orderHandler

import (
	orderService "YeloSoul/internal/api/order/service"
	"YeloSoul/internal/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type OrderHandler struct {
	log          *logrus.Logger
	orderService orderService.OrderService
	validator    *validator.Validate
	middleware   middleware.Middleware
}

func New(
	log *logrus.Logger,
	os orderService.OrderService,
	validate *validator.Validate,
	middleware middleware.Middleware,
) *OrderHandler {
	return &OrderHandler{
		log:          log,
		orderService: os,
		validator:    validate,
		middleware:   middleware,
	}
}

func (h *OrderHandler) Start(srv fiber.Router) {
	orders := srv.Group("/orders", h.middleware.NewTokenMiddleware)
	orders.Post("/payment", h.HandleCreatePayment)
	orders.Post("/payment/verify", h.HandleVerifyPayment)
	orders.Post("/", h.HandlePlaceOrder)
	orders.Get("/my-orders", h.HandleMyOrders)
	orders.Get("/", h.middleware.NewAdminMiddleware, h.HandleListOrders)
	orders.Get("/:id", h.HandleGetOrder)
	orders.Put("/:id/status", h.middleware.NewAdminMiddleware, h.HandleUpdateStatus)
}

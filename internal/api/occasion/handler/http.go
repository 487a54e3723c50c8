package occasionHandler

import (
	occasionService "YeloSoul/internal/api/occasion/service"
	"YeloSoul/internal/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type OccasionHandler struct {
	log             *logrus.Logger
	occasionService occasionService.OccasionService
	validator       *validator.Validate
	middleware      middleware.Middleware
}

func New(
	log *logrus.Logger,
	os occasionService.OccasionService,
	validate *validator.Validate,
	middleware middleware.Middleware,
) *OccasionHandler {
	return &OccasionHandler{
		log:             log,
		occasionService: os,
		validator:       validate,
		middleware:      middleware,
	}
}

func (h *OccasionHandler) Start(srv fiber.Router) {
	occasions := srv.Group("/occasions")
	occasions.Get("/", h.HandleListOccasions)
	occasions.Get("/:id", h.HandleGetOccasion)
	occasions.Post("/", h.middleware.NewTokenMiddleware, h.middleware.NewAdminMiddleware, h.HandleCreateOccasion)
	occasions.Delete("/:id", h.middleware.NewTokenMiddleware, h.middleware.NewAdminMiddleware, h.HandleDeleteOccasion)
	occasions.Post("/:id/products", h.middleware.NewTokenMiddleware, h.middleware.NewAdminMiddleware, h.HandleAddProducts)
	occasions.Put("/:id/products/:productId", h.middleware.NewTokenMiddleware, h.middleware.NewAdminMiddleware, h.HandleUpdateProduct)
	occasions.Delete("/:id/products/:productId", h.middleware.NewTokenMiddleware, h.middleware.NewAdminMiddleware, h.HandleDeleteProduct)
}

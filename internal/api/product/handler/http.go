package productHandler

import (
	productService "YeloSoul/internal/api/product/service"
	"YeloSoul/internal/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ProductHandler struct {
	log            *logrus.Logger
	productService productService.ProductService
	validator      *validator.Validate
	middleware     middleware.Middleware
}

func New(
	log *logrus.Logger,
	ps productService.ProductService,
	validate *validator.Validate,
	middleware middleware.Middleware,
) *ProductHandler {
	return &ProductHandler{
		log:            log,
		productService: ps,
		validator:      validate,
		middleware:     middleware,
	}
}

func (h *ProductHandler) Start(srv fiber.Router) {
	products := srv.Group("/products")
	products.Get("/", h.HandleListProducts)
	products.Get("/stats/inventory", h.middleware.NewTokenMiddleware, h.middleware.NewAdminMiddleware, h.HandleInventoryStats)
	products.Post("/upload", h.middleware.NewTokenMiddleware, h.middleware.NewAdminMiddleware, h.HandleUploadImages)
	products.Get("/:id", h.HandleGetProduct)
	products.Post("/", h.middleware.NewTokenMiddleware, h.middleware.NewAdminMiddleware, h.HandleCreateProduct)
	products.Put("/:id", h.middleware.NewTokenMiddleware, h.middleware.NewAdminMiddleware, h.HandleUpdateProduct)
	products.Delete("/:id", h.middleware.NewTokenMiddleware, h.middleware.NewAdminMiddleware, h.HandleDeleteProduct)

	products.Post("/:id/reviews", h.middleware.NewTokenMiddleware, h.HandleAddReview)
	products.Delete("/:id/reviews/:reviewId", h.middleware.NewTokenMiddleware, h.HandleDeleteReview)
}

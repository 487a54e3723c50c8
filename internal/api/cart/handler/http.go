package cartHandler

import (
	cartService "YeloSoul/internal/api/cart/service"
	"YeloSoul/internal/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type CartHandler struct {
	log         *logrus.Logger
	cartService cartService.CartService
	validator   *validator.Validate
	middleware  middleware.Middleware
}

func New(
	log *logrus.Logger,
	cs cartService.CartService,
	validate *validator.Validate,
	middleware middleware.Middleware,
) *CartHandler {
	return &CartHandler{
		log:         log,
		cartService: cs,
		validator:   validate,
		middleware:  middleware,
	}
}

func (h *CartHandler) Start(srv fiber.Router) {
	carts := srv.Group("/cart", h.middleware.NewTokenMiddleware)
	carts.Post("/", h.HandleAddCartItem)
	carts.Get("/", h.HandleGetCart)
	carts.Delete("/:productId", h.HandleRemoveCartItem)

	wishlist := srv.Group("/wishlist", h.middleware.NewTokenMiddleware)
	wishlist.Post("/", h.HandleAddWishlistItem)
	wishlist.Get("/", h.HandleGetWishlist)
	wishlist.Delete("/:productId", h.HandleRemoveWishlistItem)
}

package cartHandler

import (
	"YeloSoul/internal/api/cart"
	contextPkg "YeloSoul/pkg/context"
	"YeloSoul/pkg/handlerUtil"
	jwtPkg "YeloSoul/pkg/jwt"
	"context"
	"github.com/gofiber/fiber/v2"
	"time"
)

func (h *CartHandler) HandleAddWishlistItem(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	user, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Invalid token data")
	}

	var req cart.AddWishlistItemRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.cartService.Wishlist().AddItem(c, user.ID, req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "add_wishlist_item")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusCreated, fiber.Map{
			"message": "Item added to wishlist",
		})
	}
}

func (h *CartHandler) HandleGetWishlist(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	user, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Invalid token data")
	}

	res, err := h.cartService.Wishlist().GetWishlist(c, user.ID)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_wishlist")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, res)
	}
}

func (h *CartHandler) HandleRemoveWishlistItem(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	user, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Invalid token data")
	}

	if err := h.cartService.Wishlist().RemoveItem(c, user.ID, ctx.Params("productId")); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "remove_wishlist_item")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, fiber.Map{
			"message": "Item removed from wishlist",
		})
	}
}

package productHandler

import (
	"YeloSoul/internal/api/product"
	contextPkg "YeloSoul/pkg/context"
	"YeloSoul/pkg/handlerUtil"
	jwtPkg "YeloSoul/pkg/jwt"
	"context"
	"github.com/gofiber/fiber/v2"
	"time"
)

func (h *ProductHandler) HandleAddReview(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	user, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Invalid token data")
	}

	var req product.CreateReviewRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	res, err := h.productService.Reviews().AddReview(c, ctx.Params("id"), user, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "add_review")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusCreated, res)
	}
}

func (h *ProductHandler) HandleDeleteReview(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	user, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Invalid token data")
	}

	if err := h.productService.Reviews().DeleteReview(c, ctx.Params("id"), ctx.Params("reviewId"), user); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "delete_review")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, fiber.Map{
			"message": "Review removed",
		})
	}
}

package productHandler

import (
	"YeloSoul/internal/api/product"
	contextPkg "YeloSoul/pkg/context"
	"YeloSoul/pkg/handlerUtil"
	"context"
	"github.com/gofiber/fiber/v2"
	"time"
)

func (h *ProductHandler) HandleUploadImages(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 30*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	form, err := ctx.MultipartForm()
	if err != nil {
		return errHandler.Handle(ctx, requestID, product.ErrNoFilesUploaded, ctx.Path(), "parse_multipart_form")
	}

	files := form.File["images"]

	res, err := h.productService.Media().UploadImages(c, files)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "upload_images")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusCreated, res)
	}
}

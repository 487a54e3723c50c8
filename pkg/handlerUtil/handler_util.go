package handlerUtil

import (
	"YeloSoul/internal/api/auth"
	"YeloSoul/internal/api/cart"
	"YeloSoul/internal/api/occasion"
	"YeloSoul/internal/api/order"
	"YeloSoul/internal/api/product"
	"YeloSoul/internal/api/support"
	"YeloSoul/pkg/response"
	"errors"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/sirupsen/logrus"
)

type ErrorHandler struct {
	logger *logrus.Logger
}

func New(logger *logrus.Logger) *ErrorHandler {
	return &ErrorHandler{
		logger: logger,
	}
}

type domainError struct {
	err     error
	message string
	code    string
}

// Ordered sentinel table. Status codes come from the response.Error values
// themselves; this table supplies the stable machine-readable codes.
var domainErrors = []domainError{
	{auth.ErrEmailAlreadyExists, "Email already registered", "EMAIL_ALREADY_EXISTS"},
	{auth.ErrInvalidCredentials, "Invalid email or password", "INVALID_CREDENTIALS"},
	{auth.ErrUserNotFound, "User not found", "USER_NOT_FOUND"},
	{auth.ErrInvalidOTP, "Invalid OTP provided", "INVALID_OTP"},
	{auth.ErrOTPExpired, "OTP has expired", "EXPIRED_OTP"},

	{product.ErrProductNotFound, "Product not found", "PRODUCT_NOT_FOUND"},
	{product.ErrReviewNotFound, "Review not found", "REVIEW_NOT_FOUND"},
	{product.ErrNotReviewAuthor, "You can only remove your own reviews", "NOT_REVIEW_AUTHOR"},
	{product.ErrImageRequired, "At least one product image is required", "IMAGE_REQUIRED"},
	{product.ErrNoFilesUploaded, "No files uploaded", "NO_FILES_UPLOADED"},
	{product.ErrInvalidImage, "Invalid image file", "INVALID_IMAGE"},

	{cart.ErrCartItemNotFound, "Cart item not found", "CART_ITEM_NOT_FOUND"},
	{cart.ErrWishlistItemNotFound, "Wishlist item not found", "WISHLIST_ITEM_NOT_FOUND"},

	{order.ErrOrderNotFound, "Order not found", "ORDER_NOT_FOUND"},
	{order.ErrNotOrderOwner, "Not authorized to view this order", "NOT_ORDER_OWNER"},
	{order.ErrInvalidStatus, "Invalid order status", "INVALID_ORDER_STATUS"},
	{order.ErrInvalidSignature, "Payment signature verification failed", "INVALID_PAYMENT_SIGNATURE"},
	{order.ErrPaymentGatewayError, "Payment gateway error", "PAYMENT_GATEWAY_ERROR"},

	{occasion.ErrOccasionNotFound, "Occasion not found", "OCCASION_NOT_FOUND"},
	{occasion.ErrProductNotLinked, "Product not found in this occasion", "PRODUCT_NOT_LINKED"},
	{occasion.ErrOccasionNameTaken, "Occasion name already exists", "OCCASION_NAME_TAKEN"},

	{support.ErrMailerFailure, "Something went wrong", "MAILER_FAILURE"},
}

func (h *ErrorHandler) Handle(c *fiber.Ctx, requestID string, err error, path string, operation string) error {
	for _, de := range domainErrors {
		if !errors.Is(err, de.err) {
			continue
		}

		var respErr *response.Error
		status := fiber.StatusInternalServerError
		if errors.As(de.err, &respErr) {
			status = respErr.Code
		}

		h.logger.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"path":       path,
			"operation":  operation,
		}).Warn(de.message)

		return c.Status(status).JSON(fiber.Map{
			"message": de.message,
			"code":    de.code,
		})
	}

	var respErr *response.Error
	if errors.As(err, &respErr) {
		h.logger.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"code":       respErr.Code,
			"path":       path,
			"operation":  operation,
		}).Warn("Operation failed with error response")
		return c.Status(respErr.Code).JSON(fiber.Map{"error": err.Error()})
	}

	h.logger.WithFields(logrus.Fields{
		"request_id": requestID,
		"error":      err.Error(),
		"path":       path,
		"operation":  operation,
	}).Error("Unexpected error")

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "An unexpected error occurred",
	})
}

func (h *ErrorHandler) HandleValidationError(c *fiber.Ctx, requestID string, err error, path string) error {
	h.logger.WithFields(logrus.Fields{
		"request_id": requestID,
		"error":      err.Error(),
		"path":       path,
	}).Warn("Validation failed")

	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": "Validation failed: " + err.Error(),
		"code":  "VALIDATION_ERROR",
	})
}

func (h *ErrorHandler) HandleRequestTimeout(c *fiber.Ctx) error {
	return c.Status(fiber.StatusRequestTimeout).JSON(utils.StatusMessage(fiber.StatusRequestTimeout))
}

func (h *ErrorHandler) HandleUnauthorized(c *fiber.Ctx, requestID string, message string) error {
	h.logger.WithFields(logrus.Fields{
		"request_id": requestID,
		"path":       c.Path(),
		"message":    message,
	}).Warn("Unauthorized access")

	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error": message,
		"code":  "UNAUTHORIZED",
	})
}

func (h *ErrorHandler) HandleSuccess(c *fiber.Ctx, statusCode int, data interface{}) error {
	if data == nil {
		return c.SendStatus(statusCode)
	}
	return c.Status(statusCode).JSON(data)
}

package order

import (
	"YeloSoul/pkg/response"
	"net/http"
)

var (
	ErrOrderNotFound       = response.NewError(http.StatusNotFound, "order not found")
	ErrNotOrderOwner       = response.NewError(http.StatusForbidden, "order belongs to another user")
	ErrInvalidStatus       = response.NewError(http.StatusBadRequest, "invalid order status")
	ErrInvalidSignature    = response.NewError(http.StatusBadRequest, "payment signature verification failed")
	ErrPaymentGatewayError = response.NewError(http.StatusBadGateway, "payment gateway error")
)

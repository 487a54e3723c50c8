package auth

import (
	"YeloSoul/pkg/response"
	"net/http"
)

var (
	ErrEmailAlreadyExists = response.NewError(http.StatusConflict, "user already exists")
	ErrInvalidCredentials = response.NewError(http.StatusBadRequest, "invalid credentials")
	ErrUserNotFound       = response.NewError(http.StatusNotFound, "user not found")
	ErrInvalidOTP         = response.NewError(http.StatusBadRequest, "invalid otp")
	ErrOTPExpired         = response.NewError(http.StatusBadRequest, "otp expired or not found")
)

package support

import (
	"YeloSoul/pkg/response"
	"net/http"
)

var (
	ErrMailerFailure = response.NewError(http.StatusInternalServerError, "something went wrong")
)

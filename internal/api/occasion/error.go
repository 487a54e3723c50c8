package occasion

import (
	"YeloSoul/pkg/response"
	"net/http"
)

var (
	ErrOccasionNotFound  = response.NewError(http.StatusNotFound, "occasion not found")
	ErrProductNotLinked  = response.NewError(http.StatusNotFound, "product not found in this occasion")
	ErrOccasionNameTaken = response.NewError(http.StatusConflict, "occasion name already exists")
)

package product

import (
	"YeloSoul/pkg/response"
	"net/http"
)

var (
	ErrProductNotFound = response.NewError(http.StatusNotFound, "product not found")
	ErrReviewNotFound  = response.NewError(http.StatusNotFound, "review not found")
	ErrNotReviewAuthor = response.NewError(http.StatusForbidden, "review can only be removed by its author")
	ErrImageRequired   = response.NewError(http.StatusBadRequest, "at least one product image is required")
	ErrNoFilesUploaded = response.NewError(http.StatusBadRequest, "no files uploaded")
	ErrInvalidImage    = response.NewError(http.StatusBadRequest, "invalid image file")
)

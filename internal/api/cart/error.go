package cart

import (
	"YeloSoul/pkg/response"
	"net/http"
)

var (
	ErrCartItemNotFound     = response.NewError(http.StatusNotFound, "cart item not found")
	ErrWishlistItemNotFound = response.NewError(http.StatusNotFound, "wishlist item not found")
)

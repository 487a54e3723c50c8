package cart

type AddCartItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

type AddWishlistItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

type CartLineResponse struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Image     string  `json:"image"`
	Price     float64 `json:"price"`
	Discount  float64 `json:"discount"`
	Stock     int     `json:"stock"`
	Quantity  int     `json:"quantity"`
}

type CartResponse struct {
	Items []CartLineResponse `json:"items"`
}

type WishlistItemResponse struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Image     string  `json:"image"`
	Price     float64 `json:"price"`
	Discount  float64 `json:"discount"`
	Rating    float64 `json:"rating"`
}

type WishlistResponse struct {
	Items []WishlistItemResponse `json:"items"`
}

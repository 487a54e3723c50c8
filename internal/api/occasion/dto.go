package occasion

import "time"

type CreateOccasionRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=255"`
	Description string `json:"description" validate:"required"`
	Image       string `json:"image"`
}

type OccasionProductRequest struct {
	Name        string   `json:"name" validate:"required,min=2,max=255"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Image       string   `json:"image"`
	Images      []string `json:"images"`
	Price       float64  `json:"price" validate:"required,gt=0"`
	Stock       int      `json:"stock" validate:"gte=0"`
	Discount    float64  `json:"discount" validate:"gte=0,lte=100"`
}

type AddProductsRequest struct {
	Products []OccasionProductRequest `json:"products" validate:"required,min=1,dive"`
}

type UpdateOccasionProductRequest struct {
	Name        *string  `json:"name" validate:"omitempty,min=2,max=255"`
	Description *string  `json:"description"`
	Category    *string  `json:"category"`
	Image       *string  `json:"image"`
	Price       *float64 `json:"price" validate:"omitempty,gt=0"`
	Stock       *int     `json:"stock" validate:"omitempty,gte=0"`
	Discount    *float64 `json:"discount" validate:"omitempty,gte=0,lte=100"`
}

type OccasionProductResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Image    string  `json:"image"`
	Price    float64 `json:"price"`
	Discount float64 `json:"discount"`
	Stock    int     `json:"stock"`
}

type OccasionResponse struct {
	ID          string                    `json:"id"`
	Name        string                    `json:"name"`
	Description string                    `json:"description"`
	Image       string                    `json:"image"`
	Products    []OccasionProductResponse `json:"products"`
	CreatedAt   time.Time                 `json:"created_at"`
}

type OccasionListResponse struct {
	Occasions []OccasionResponse `json:"occasions"`
}

package product

import "time"

type ListProductsQuery struct {
	Keyword   string  `query:"keyword"`
	Category  string  `query:"category"`
	MinPrice  float64 `query:"min_price"`
	MaxPrice  float64 `query:"max_price"`
	BestDeals bool    `query:"best_deals"`
	InStock   bool    `query:"in_stock"`
	Sort      string  `query:"sort"`
	Page      int     `query:"page"`
	Limit     int     `query:"limit"`
}

type CreateProductRequest struct {
	Name        string   `json:"name" validate:"required,min=2,max=255"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Image       string   `json:"image"`
	Images      []string `json:"images"`
	Price       float64  `json:"price" validate:"required,gt=0"`
	Stock       int      `json:"stock" validate:"gte=0"`
	Discount    float64  `json:"discount" validate:"gte=0,lte=100"`
	OccasionID  string   `json:"occasion_id"`
}

type UpdateProductRequest struct {
	Name        *string   `json:"name" validate:"omitempty,min=2,max=255"`
	Description *string   `json:"description"`
	Category    *string   `json:"category"`
	Image       *string   `json:"image"`
	Images      *[]string `json:"images"`
	Price       *float64  `json:"price" validate:"omitempty,gt=0"`
	Stock       *int      `json:"stock" validate:"omitempty,gte=0"`
	Discount    *float64  `json:"discount" validate:"omitempty,gte=0,lte=100"`
	OccasionID  *string   `json:"occasion_id"`
}

type CreateReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"required,max=2000"`
}

type ProductResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Image       string    `json:"image"`
	Images      []string  `json:"images"`
	Price       float64   `json:"price"`
	Stock       int       `json:"stock"`
	Discount    float64   `json:"discount"`
	Rating      float64   `json:"rating"`
	NumReviews  int       `json:"num_reviews"`
	OccasionID  string    `json:"occasion_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type ReviewResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

type ProductDetailResponse struct {
	ProductResponse
	Reviews []ReviewResponse `json:"reviews"`
}

type ProductListResponse struct {
	Products      []ProductResponse `json:"products"`
	Page          int               `json:"page"`
	Pages         int               `json:"pages"`
	TotalProducts int               `json:"total_products"`
}

type InventoryStatsResponse struct {
	TotalProducts int `json:"total_products"`
	LowStock      int `json:"low_stock"`
	OutOfStock    int `json:"out_of_stock"`
}

type UploadImagesResponse struct {
	URLs []string `json:"urls"`
}

package productService

import (
	"YeloSoul/internal/api/product"
	"YeloSoul/internal/entity"
)

func makeProductResponse(p entity.Product) product.ProductResponse {
	return product.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		Image:       p.BestImage(),
		Images:      p.Images,
		Price:       p.Price,
		Stock:       p.Stock,
		Discount:    p.Discount,
		Rating:      p.Rating,
		NumReviews:  p.NumReviews,
		OccasionID:  p.OccasionID,
		CreatedAt:   p.CreatedAt,
	}
}

func makeReviewResponse(rv entity.Review) product.ReviewResponse {
	return product.ReviewResponse{
		ID:        rv.ID,
		UserID:    rv.UserID,
		UserName:  rv.UserName,
		Rating:    rv.Rating,
		Comment:   rv.Comment,
		CreatedAt: rv.CreatedAt,
	}
}

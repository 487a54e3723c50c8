package productService

import (
	"YeloSoul/internal/api/product"
	"YeloSoul/internal/entity"
	contextPkg "YeloSoul/pkg/context"
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

const defaultPageSize = 12

func (s *catalogDomainImpl) CreateProduct(c context.Context, req product.CreateProductRequest) (product.ProductResponse, error) {
	requestID := contextPkg.GetRequestID(c)
	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return product.ProductResponse{}, err
	}

	if req.Image == "" && len(req.Images) == 0 {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"name":       req.Name,
		}).Warn("Product creation rejected, no image provided")
		return product.ProductResponse{}, product.ErrImageRequired
	}

	id, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate product ID")
		return product.ProductResponse{}, err
	}

	p := entity.Product{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Image:       req.Image,
		Images:      req.Images,
		Price:       req.Price,
		Stock:       req.Stock,
		Discount:    req.Discount,
		OccasionID:  req.OccasionID,
		CreatedAt:   time.Now(),
	}
	if p.Image == "" {
		p.Image = p.Images[0]
	}

	if err := repo.Products.CreateProduct(c, p); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create product")
		return product.ProductResponse{}, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"product_id": p.ID,
	}).Info("Product created")

	return makeProductResponse(p), nil
}

func (s *catalogDomainImpl) GetProduct(c context.Context, id string) (product.ProductDetailResponse, error) {
	requestID := contextPkg.GetRequestID(c)
	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return product.ProductDetailResponse{}, err
	}

	p, err := repo.Products.GetByID(c, id)
	if err != nil {
		return product.ProductDetailResponse{}, err
	}

	reviews, err := repo.Reviews.ListByProduct(c, id)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to list product reviews")
		return product.ProductDetailResponse{}, err
	}

	res := product.ProductDetailResponse{
		ProductResponse: makeProductResponse(p),
		Reviews:         make([]product.ReviewResponse, 0, len(reviews)),
	}
	for _, rv := range reviews {
		res.Reviews = append(res.Reviews, makeReviewResponse(rv))
	}

	return res, nil
}

func (s *catalogDomainImpl) ListProducts(c context.Context, q product.ListProductsQuery) (product.ProductListResponse, error) {
	requestID := contextPkg.GetRequestID(c)
	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return product.ProductListResponse{}, err
	}

	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = defaultPageSize
	}

	products, total, err := repo.Products.ListProducts(c, q)
	if err != nil {
		return product.ProductListResponse{}, err
	}

	pages := (total + q.Limit - 1) / q.Limit

	res := product.ProductListResponse{
		Products:      make([]product.ProductResponse, 0, len(products)),
		Page:          q.Page,
		Pages:         pages,
		TotalProducts: total,
	}
	for _, p := range products {
		res.Products = append(res.Products, makeProductResponse(p))
	}

	return res, nil
}

func (s *catalogDomainImpl) UpdateProduct(c context.Context, id string, req product.UpdateProductRequest) (product.ProductResponse, error) {
	requestID := contextPkg.GetRequestID(c)
	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return product.ProductResponse{}, err
	}

	p, err := repo.Products.GetByID(c, id)
	if err != nil {
		return product.ProductResponse{}, err
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.Category != nil {
		p.Category = *req.Category
	}
	if req.Image != nil {
		p.Image = *req.Image
	}
	if req.Images != nil {
		p.Images = *req.Images
	}
	if req.Price != nil {
		p.Price = *req.Price
	}
	if req.Stock != nil {
		p.Stock = *req.Stock
	}
	if req.Discount != nil {
		p.Discount = *req.Discount
	}
	if req.OccasionID != nil {
		p.OccasionID = *req.OccasionID
	}

	if err := repo.Products.UpdateProduct(c, p); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to update product")
		return product.ProductResponse{}, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"product_id": p.ID,
	}).Info("Product updated")

	return makeProductResponse(p), nil
}

func (s *catalogDomainImpl) DeleteProduct(c context.Context, id string) error {
	requestID := contextPkg.GetRequestID(c)
	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	if err := repo.Products.DeleteProduct(c, id); err != nil {
		return err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"product_id": id,
	}).Info("Product deleted")

	return nil
}

func (s *catalogDomainImpl) InventoryStats(c context.Context) (product.InventoryStatsResponse, error) {
	requestID := contextPkg.GetRequestID(c)
	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return product.InventoryStatsResponse{}, err
	}

	return repo.Products.InventoryStats(c)
}

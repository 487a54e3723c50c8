package occasionService

import (
	"YeloSoul/internal/api/occasion"
	"YeloSoul/internal/entity"
	contextPkg "YeloSoul/pkg/context"
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

func makeOccasionProduct(p entity.Product) occasion.OccasionProductResponse {
	return occasion.OccasionProductResponse{
		ID:       p.ID,
		Name:     p.Name,
		Image:    p.BestImage(),
		Price:    p.Price,
		Discount: p.Discount,
		Stock:    p.Stock,
	}
}

func makeOccasionResponse(o entity.Occasion, products []entity.Product) occasion.OccasionResponse {
	res := occasion.OccasionResponse{
		ID:          o.ID,
		Name:        o.Name,
		Description: o.Description,
		Image:       o.Image,
		Products:    make([]occasion.OccasionProductResponse, 0, len(products)),
		CreatedAt:   o.CreatedAt,
	}
	for _, p := range products {
		res.Products = append(res.Products, makeOccasionProduct(p))
	}
	return res
}

func (s *occasionDomainImpl) CreateOccasion(c context.Context, req occasion.CreateOccasionRequest) (occasion.OccasionResponse, error) {
	requestID := contextPkg.GetRequestID(c)
	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return occasion.OccasionResponse{}, err
	}

	id, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate occasion ID")
		return occasion.OccasionResponse{}, err
	}

	o := entity.Occasion{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
		CreatedAt:   time.Now(),
	}

	if err := repo.Occasions.CreateOccasion(c, o); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create occasion")
		return occasion.OccasionResponse{}, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id":  requestID,
		"occasion_id": o.ID,
	}).Info("Occasion created")

	return makeOccasionResponse(o, nil), nil
}

func (s *occasionDomainImpl) GetOccasion(c context.Context, id string) (occasion.OccasionResponse, error) {
	requestID := contextPkg.GetRequestID(c)
	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return occasion.OccasionResponse{}, err
	}

	o, err := repo.Occasions.GetByID(c, id)
	if err != nil {
		return occasion.OccasionResponse{}, err
	}

	products, err := repo.Occasions.ListProducts(c, id)
	if err != nil {
		return occasion.OccasionResponse{}, err
	}

	return makeOccasionResponse(o, products), nil
}

func (s *occasionDomainImpl) ListOccasions(c context.Context) (occasion.OccasionListResponse, error) {
	requestID := contextPkg.GetRequestID(c)
	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return occasion.OccasionListResponse{}, err
	}

	occasions, err := repo.Occasions.ListOccasions(c)
	if err != nil {
		return occasion.OccasionListResponse{}, err
	}

	res := occasion.OccasionListResponse{Occasions: make([]occasion.OccasionResponse, 0, len(occasions))}
	for _, o := range occasions {
		products, err := repo.Occasions.ListProducts(c, o.ID)
		if err != nil {
			return occasion.OccasionListResponse{}, err
		}
		res.Occasions = append(res.Occasions, makeOccasionResponse(o, products))
	}

	return res, nil
}

func (s *occasionDomainImpl) DeleteOccasion(c context.Context, id string) error {
	requestID := contextPkg.GetRequestID(c)
	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	if err := repo.Occasions.DeleteOccasion(c, id); err != nil {
		return err
	}

	s.log.WithFields(logrus.Fields{
		"request_id":  requestID,
		"occasion_id": id,
	}).Info("Occasion deleted")

	return nil
}

func (s *occasionDomainImpl) AddProducts(c context.Context, occasionID string, req occasion.AddProductsRequest) (occasion.OccasionResponse, error) {
	requestID := contextPkg.GetRequestID(c)
	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return occasion.OccasionResponse{}, err
	}

	o, err := repo.Occasions.GetByID(c, occasionID)
	if err != nil {
		return occasion.OccasionResponse{}, err
	}

	productRepo, err := s.productRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create product repository client")
		return occasion.OccasionResponse{}, err
	}
	defer productRepo.Rollback()

	for _, line := range req.Products {
		id, err := s.utils.NewULIDFromTimestamp(time.Now())
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to generate product ID")
			return occasion.OccasionResponse{}, err
		}

		p := entity.Product{
			ID:          id,
			Name:        line.Name,
			Description: line.Description,
			Category:    line.Category,
			Image:       line.Image,
			Images:      line.Images,
			Price:       line.Price,
			Stock:       line.Stock,
			Discount:    line.Discount,
			OccasionID:  occasionID,
			CreatedAt:   time.Now(),
		}

		if err := productRepo.Products.CreateProduct(c, p); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to create occasion product")
			return occasion.OccasionResponse{}, err
		}
	}

	if err := productRepo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit occasion products transaction")
		return occasion.OccasionResponse{}, err
	}

	products, err := repo.Occasions.ListProducts(c, occasionID)
	if err != nil {
		return occasion.OccasionResponse{}, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id":  requestID,
		"occasion_id": occasionID,
		"count":       len(req.Products),
	}).Info("Products added to occasion")

	return makeOccasionResponse(o, products), nil
}

func (s *occasionDomainImpl) UpdateProduct(c context.Context, occasionID string, productID string, req occasion.UpdateOccasionProductRequest) (occasion.OccasionProductResponse, error) {
	requestID := contextPkg.GetRequestID(c)
	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return occasion.OccasionProductResponse{}, err
	}

	p, err := repo.Occasions.GetLinkedProduct(c, occasionID, productID)
	if err != nil {
		return occasion.OccasionProductResponse{}, err
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
	if req.Price != nil {
		p.Price = *req.Price
	}
	if req.Stock != nil {
		p.Stock = *req.Stock
	}
	if req.Discount != nil {
		p.Discount = *req.Discount
	}

	productRepo, err := s.productRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create product repository client")
		return occasion.OccasionProductResponse{}, err
	}

	if err := productRepo.Products.UpdateProduct(c, p); err != nil {
		return occasion.OccasionProductResponse{}, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id":  requestID,
		"occasion_id": occasionID,
		"product_id":  productID,
	}).Info("Occasion product updated")

	return makeOccasionProduct(p), nil
}

func (s *occasionDomainImpl) DeleteProduct(c context.Context, occasionID string, productID string) error {
	requestID := contextPkg.GetRequestID(c)
	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	if _, err := repo.Occasions.GetLinkedProduct(c, occasionID, productID); err != nil {
		return err
	}

	productRepo, err := s.productRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create product repository client")
		return err
	}

	if err := productRepo.Products.DeleteProduct(c, productID); err != nil {
		return err
	}

	s.log.WithFields(logrus.Fields{
		"request_id":  requestID,
		"occasion_id": occasionID,
		"product_id":  productID,
	}).Info("Occasion product deleted")

	return nil
}

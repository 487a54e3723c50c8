package cartService

import (
	"YeloSoul/internal/api/cart"
	contextPkg "YeloSoul/pkg/context"
	"context"

	"github.com/sirupsen/logrus"
)

func (s *cartDomainImpl) AddItem(c context.Context, userID string, req cart.AddCartItemRequest) error {
	requestID := contextPkg.GetRequestID(c)
	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
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

	if _, err := productRepo.Products.GetByID(c, req.ProductID); err != nil {
		return err
	}

	if err := repo.Carts.UpsertItem(c, userID, req.ProductID, req.Quantity); err != nil {
		return err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"user_id":    userID,
		"product_id": req.ProductID,
	}).Info("Cart item added")

	return nil
}

func (s *cartDomainImpl) GetCart(c context.Context, userID string) (cart.CartResponse, error) {
	requestID := contextPkg.GetRequestID(c)
	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return cart.CartResponse{}, err
	}

	items, err := repo.Carts.ListByUser(c, userID)
	if err != nil {
		return cart.CartResponse{}, err
	}

	return cart.CartResponse{Items: items}, nil
}

func (s *cartDomainImpl) RemoveItem(c context.Context, userID string, productID string) error {
	requestID := contextPkg.GetRequestID(c)
	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	return repo.Carts.DeleteItem(c, userID, productID)
}

package cartService

import (
	"YeloSoul/internal/api/cart"
	contextPkg "YeloSoul/pkg/context"
	"context"

	"github.com/sirupsen/logrus"
)

func (s *wishlistDomainImpl) AddItem(c context.Context, userID string, req cart.AddWishlistItemRequest) error {
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

	if err := repo.Wishlists.AddItem(c, userID, req.ProductID); err != nil {
		return err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"user_id":    userID,
		"product_id": req.ProductID,
	}).Info("Wishlist item added")

	return nil
}

func (s *wishlistDomainImpl) GetWishlist(c context.Context, userID string) (cart.WishlistResponse, error) {
	requestID := contextPkg.GetRequestID(c)
	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return cart.WishlistResponse{}, err
	}

	items, err := repo.Wishlists.ListByUser(c, userID)
	if err != nil {
		return cart.WishlistResponse{}, err
	}

	return cart.WishlistResponse{Items: items}, nil
}

func (s *wishlistDomainImpl) RemoveItem(c context.Context, userID string, productID string) error {
	requestID := contextPkg.GetRequestID(c)
	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	return repo.Wishlists.DeleteItem(c, userID, productID)
}

package productService

import (
	"YeloSoul/internal/api/product"
	"YeloSoul/internal/entity"
	contextPkg "YeloSoul/pkg/context"
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

func (s *reviewDomainImpl) AddReview(c context.Context, productID string, user entity.UserLoginData, req product.CreateReviewRequest) (product.ReviewResponse, error) {
	requestID := contextPkg.GetRequestID(c)
	repo, err := s.repo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return product.ReviewResponse{}, err
	}
	defer repo.Rollback()

	if _, err := repo.Products.GetByID(c, productID); err != nil {
		return product.ReviewResponse{}, err
	}

	id, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate review ID")
		return product.ReviewResponse{}, err
	}

	rv := entity.Review{
		ID:        id,
		ProductID: productID,
		UserID:    user.ID,
		UserName:  user.Name,
		Rating:    req.Rating,
		Comment:   req.Comment,
		CreatedAt: time.Now(),
	}

	if err := repo.Reviews.CreateReview(c, rv); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create review")
		return product.ReviewResponse{}, err
	}

	if err := repo.Products.RecalculateRating(c, productID); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to recalculate product rating")
		return product.ReviewResponse{}, err
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit review transaction")
		return product.ReviewResponse{}, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"product_id": productID,
		"review_id":  rv.ID,
	}).Info("Review added")

	return makeReviewResponse(rv), nil
}

func (s *reviewDomainImpl) DeleteReview(c context.Context, productID string, reviewID string, user entity.UserLoginData) error {
	requestID := contextPkg.GetRequestID(c)
	repo, err := s.repo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}
	defer repo.Rollback()

	rv, err := repo.Reviews.GetReviewByID(c, reviewID)
	if err != nil {
		return err
	}

	if rv.ProductID != productID {
		return product.ErrReviewNotFound
	}

	if rv.UserID != user.ID {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"review_id":  reviewID,
			"user_id":    user.ID,
		}).Warn("Review deletion rejected, requester is not the author")
		return product.ErrNotReviewAuthor
	}

	if err := repo.Reviews.DeleteReview(c, reviewID); err != nil {
		return err
	}

	if err := repo.Products.RecalculateRating(c, productID); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to recalculate product rating")
		return err
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit review transaction")
		return err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"product_id": productID,
		"review_id":  reviewID,
	}).Info("Review deleted")

	return nil
}

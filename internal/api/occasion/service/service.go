package occasionService

import (
	"YeloSoul/internal/api/occasion"
	occasionRepository "YeloSoul/internal/api/occasion/repository"
	productRepository "YeloSoul/internal/api/product/repository"
	"YeloSoul/pkg/utils"
	"context"

	"github.com/sirupsen/logrus"
)

type OccasionService interface {
	Occasions() OccasionDomain
}

type OccasionDomain interface {
	CreateOccasion(c context.Context, req occasion.CreateOccasionRequest) (occasion.OccasionResponse, error)
	GetOccasion(c context.Context, id string) (occasion.OccasionResponse, error)
	ListOccasions(c context.Context) (occasion.OccasionListResponse, error)
	DeleteOccasion(c context.Context, id string) error
	AddProducts(c context.Context, occasionID string, req occasion.AddProductsRequest) (occasion.OccasionResponse, error)
	UpdateProduct(c context.Context, occasionID string, productID string, req occasion.UpdateOccasionProductRequest) (occasion.OccasionProductResponse, error)
	DeleteProduct(c context.Context, occasionID string, productID string) error
}

type occasionService struct {
	log                *logrus.Logger
	occasionRepository occasionRepository.Repository
	productRepository  productRepository.Repository
	utils              utils.IUtils

	occasionDomain OccasionDomain
}

func (s *occasionService) Occasions() OccasionDomain {
	return s.occasionDomain
}

type occasionDomainImpl struct {
	log         *logrus.Logger
	repo        occasionRepository.Repository
	productRepo productRepository.Repository
	utils       utils.IUtils
}

func New(log *logrus.Logger,
	occasionRepo occasionRepository.Repository,
	productRepo productRepository.Repository,
	utils utils.IUtils,
) OccasionService {
	return &occasionService{
		log:                log,
		occasionRepository: occasionRepo,
		productRepository:  productRepo,
		utils:              utils,

		occasionDomain: &occasionDomainImpl{log: log, repo: occasionRepo, productRepo: productRepo, utils: utils},
	}
}

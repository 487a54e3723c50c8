package productService

import (
	"YeloSoul/internal/api/product"
	productRepository "YeloSoul/internal/api/product/repository"
	"YeloSoul/internal/entity"
	"YeloSoul/pkg/s3"
	"YeloSoul/pkg/utils"
	"context"
	"mime/multipart"

	"github.com/sirupsen/logrus"
)

type ProductService interface {
	Catalog() CatalogDomain
	Reviews() ReviewDomain
	Media() MediaDomain
	GetRepository() productRepository.Repository
}

type CatalogDomain interface {
	CreateProduct(c context.Context, req product.CreateProductRequest) (product.ProductResponse, error)
	GetProduct(c context.Context, id string) (product.ProductDetailResponse, error)
	ListProducts(c context.Context, q product.ListProductsQuery) (product.ProductListResponse, error)
	UpdateProduct(c context.Context, id string, req product.UpdateProductRequest) (product.ProductResponse, error)
	DeleteProduct(c context.Context, id string) error
	InventoryStats(c context.Context) (product.InventoryStatsResponse, error)
}

type ReviewDomain interface {
	AddReview(c context.Context, productID string, user entity.UserLoginData, req product.CreateReviewRequest) (product.ReviewResponse, error)
	DeleteReview(c context.Context, productID string, reviewID string, user entity.UserLoginData) error
}

type MediaDomain interface {
	UploadImages(c context.Context, files []*multipart.FileHeader) (product.UploadImagesResponse, error)
}

type productService struct {
	log               *logrus.Logger
	productRepository productRepository.Repository
	s3Client          s3.ItfS3
	utils             utils.IUtils

	catalogDomain CatalogDomain
	reviewDomain  ReviewDomain
	mediaDomain   MediaDomain
}

func (p *productService) Catalog() CatalogDomain {
	return p.catalogDomain
}

func (p *productService) Reviews() ReviewDomain {
	return p.reviewDomain
}

func (p *productService) Media() MediaDomain {
	return p.mediaDomain
}

func (p *productService) GetRepository() productRepository.Repository {
	return p.productRepository
}

type catalogDomainImpl struct {
	log   *logrus.Logger
	repo  productRepository.Repository
	utils utils.IUtils
}

type reviewDomainImpl struct {
	log   *logrus.Logger
	repo  productRepository.Repository
	utils utils.IUtils
}

type mediaDomainImpl struct {
	log      *logrus.Logger
	s3Client s3.ItfS3
	utils    utils.IUtils
}

func New(log *logrus.Logger,
	productRepo productRepository.Repository,
	s3Client s3.ItfS3,
	utils utils.IUtils,
) ProductService {
	return &productService{
		log:               log,
		productRepository: productRepo,
		s3Client:          s3Client,
		utils:             utils,

		catalogDomain: &catalogDomainImpl{log: log, repo: productRepo, utils: utils},
		reviewDomain:  &reviewDomainImpl{log: log, repo: productRepo, utils: utils},
		mediaDomain:   &mediaDomainImpl{log: log, s3Client: s3Client, utils: utils},
	}
}

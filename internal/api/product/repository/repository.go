package productRepository

import (
	"YeloSoul/internal/api/product"
	"YeloSoul/internal/entity"
	"context"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

func New(db *sqlx.DB, log *logrus.Logger) Repository {
	return &repository{
		DB:  db,
		log: log,
	}
}

type repository struct {
	DB  *sqlx.DB
	log *logrus.Logger
}

type Repository interface {
	NewClient(tx bool) (Client, error)
}

func (r *repository) NewClient(tx bool) (Client, error) {
	var db sqlx.ExtContext
	var commitFunc, rollbackFunc func() error

	db = r.DB

	if tx {
		txx, err := r.DB.Beginx()
		if err != nil {
			return Client{}, err
		}

		db = txx
		commitFunc = txx.Commit
		rollbackFunc = txx.Rollback
	} else {
		commitFunc = func() error { return nil }
		rollbackFunc = func() error { return nil }
	}

	return Client{
		Products: &productRepository{q: db, log: r.log},
		Reviews:  &reviewRepository{q: db, log: r.log},
		Commit:   commitFunc,
		Rollback: rollbackFunc,
	}, nil
}

type Client struct {
	Products interface {
		CreateProduct(ctx context.Context, p entity.Product) error
		GetByID(ctx context.Context, id string) (entity.Product, error)
		ListProducts(ctx context.Context, q product.ListProductsQuery) ([]entity.Product, int, error)
		ListAll(ctx context.Context) ([]entity.Product, error)
		UpdateProduct(ctx context.Context, p entity.Product) error
		DeleteProduct(ctx context.Context, id string) error
		InventoryStats(ctx context.Context) (product.InventoryStatsResponse, error)
		RecalculateRating(ctx context.Context, productID string) error
	}

	Reviews interface {
		CreateReview(ctx context.Context, rv entity.Review) error
		GetReviewByID(ctx context.Context, id string) (entity.Review, error)
		ListByProduct(ctx context.Context, productID string) ([]entity.Review, error)
		DeleteReview(ctx context.Context, id string) error
	}

	Commit   func() error
	Rollback func() error
}

type productRepository struct {
	q   sqlx.ExtContext
	log *logrus.Logger
}

type reviewRepository struct {
	q   sqlx.ExtContext
	log *logrus.Logger
}

package occasionRepository

import (
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
		Occasions: &occasionRepository{q: db, log: r.log},
		Commit:    commitFunc,
		Rollback:  rollbackFunc,
	}, nil
}

type Client struct {
	Occasions interface {
		CreateOccasion(ctx context.Context, o entity.Occasion) error
		GetByID(ctx context.Context, id string) (entity.Occasion, error)
		ListOccasions(ctx context.Context) ([]entity.Occasion, error)
		DeleteOccasion(ctx context.Context, id string) error
		ListProducts(ctx context.Context, occasionID string) ([]entity.Product, error)
		GetLinkedProduct(ctx context.Context, occasionID string, productID string) (entity.Product, error)
	}

	Commit   func() error
	Rollback func() error
}

type occasionRepository struct {
	q   sqlx.ExtContext
	log *logrus.Logger
}

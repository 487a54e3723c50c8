package cartRepository

import (
	"YeloSoul/internal/api/cart"
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
		Carts:     &cartRepository{q: db, log: r.log},
		Wishlists: &wishlistRepository{q: db, log: r.log},
		Commit:    commitFunc,
		Rollback:  rollbackFunc,
	}, nil
}

type Client struct {
	Carts interface {
		UpsertItem(ctx context.Context, userID string, productID string, quantity int) error
		ListByUser(ctx context.Context, userID string) ([]cart.CartLineResponse, error)
		DeleteItem(ctx context.Context, userID string, productID string) error
	}

	Wishlists interface {
		AddItem(ctx context.Context, userID string, productID string) error
		ListByUser(ctx context.Context, userID string) ([]cart.WishlistItemResponse, error)
		DeleteItem(ctx context.Context, userID string, productID string) error
	}

	Commit   func() error
	Rollback func() error
}

type cartRepository struct {
	q   sqlx.ExtContext
	log *logrus.Logger
}

type wishlistRepository struct {
	q   sqlx.ExtContext
	log *logrus.Logger
}

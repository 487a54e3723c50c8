package orderRepository

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
		Orders:   &orderRepository{q: db, log: r.log},
		Commit:   commitFunc,
		Rollback: rollbackFunc,
	}, nil
}

type OrderWithUser struct {
	Order     entity.Order
	UserName  string
	UserEmail string
}

type Client struct {
	Orders interface {
		CreateOrder(ctx context.Context, o entity.Order) error
		CreateOrderItem(ctx context.Context, item entity.OrderItem) error
		GetByID(ctx context.Context, id string) (entity.Order, error)
		ListItemsByOrder(ctx context.Context, orderID string) ([]entity.OrderItem, error)
		ListByUser(ctx context.Context, userID string) ([]entity.Order, error)
		ListAll(ctx context.Context) ([]OrderWithUser, error)
		UpdateStatus(ctx context.Context, id string, status string) error
		MarkPaid(ctx context.Context, id string, transactionID string) error
	}

	Commit   func() error
	Rollback func() error
}

type orderRepository struct {
	q   sqlx.ExtContext
	log *logrus.Logger
}

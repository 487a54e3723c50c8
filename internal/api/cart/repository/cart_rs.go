package cartRepository

import (
	"YeloSoul/internal/api/cart"
	contextPkg "YeloSoul/pkg/context"
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type CartLineDB struct {
	ProductID sql.NullString  `db:"product_id"`
	Name      sql.NullString  `db:"name"`
	Image     sql.NullString  `db:"image"`
	Price     sql.NullFloat64 `db:"price"`
	Discount  sql.NullFloat64 `db:"discount"`
	Stock     sql.NullInt64   `db:"stock"`
	Quantity  sql.NullInt64   `db:"quantity"`
}

func makeCartLine(row CartLineDB) cart.CartLineResponse {
	return cart.CartLineResponse{
		ProductID: row.ProductID.String,
		Name:      row.Name.String,
		Image:     row.Image.String,
		Price:     row.Price.Float64,
		Discount:  row.Discount.Float64,
		Stock:     int(row.Stock.Int64),
		Quantity:  int(row.Quantity.Int64),
	}
}

func (r *cartRepository) UpsertItem(c context.Context, userID string, productID string, quantity int) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"user_id":    userID,
		"product_id": productID,
		"quantity":   quantity,
		"created_at": time.Now(),
	}

	query, args, err := sqlx.Named(queryUpsertCartItem, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpsertItem named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpsertItem execution err")
		return err
	}

	return nil
}

func (r *cartRepository) ListByUser(c context.Context, userID string) ([]cart.CartLineResponse, error) {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"user_id": userID,
	}

	query, args, err := sqlx.Named(queryListCartByUser, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("ListByUser named query preparation err")
		return nil, err
	}
	query = r.q.Rebind(query)

	rows, err := r.q.QueryxContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("ListByUser execution err")
		return nil, err
	}
	defer rows.Close()

	lines := make([]cart.CartLineResponse, 0)
	for rows.Next() {
		var row CartLineDB
		if err := rows.StructScan(&row); err != nil {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("ListByUser row scan err")
			return nil, err
		}
		lines = append(lines, makeCartLine(row))
	}

	return lines, rows.Err()
}

func (r *cartRepository) DeleteItem(c context.Context, userID string, productID string) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"user_id":    userID,
		"product_id": productID,
	}

	query, args, err := sqlx.Named(queryDeleteCartItem, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteItem named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	res, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteItem execution err")
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return cart.ErrCartItemNotFound
	}

	return nil
}

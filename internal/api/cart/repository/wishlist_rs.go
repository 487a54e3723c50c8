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

type WishlistLineDB struct {
	ProductID sql.NullString  `db:"product_id"`
	Name      sql.NullString  `db:"name"`
	Image     sql.NullString  `db:"image"`
	Price     sql.NullFloat64 `db:"price"`
	Discount  sql.NullFloat64 `db:"discount"`
	Rating    sql.NullFloat64 `db:"rating"`
}

func makeWishlistItem(row WishlistLineDB) cart.WishlistItemResponse {
	return cart.WishlistItemResponse{
		ProductID: row.ProductID.String,
		Name:      row.Name.String,
		Image:     row.Image.String,
		Price:     row.Price.Float64,
		Discount:  row.Discount.Float64,
		Rating:    row.Rating.Float64,
	}
}

func (r *wishlistRepository) AddItem(c context.Context, userID string, productID string) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"user_id":    userID,
		"product_id": productID,
		"created_at": time.Now(),
	}

	query, args, err := sqlx.Named(queryAddWishlistItem, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("AddItem named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("AddItem execution err")
		return err
	}

	return nil
}

func (r *wishlistRepository) ListByUser(c context.Context, userID string) ([]cart.WishlistItemResponse, error) {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"user_id": userID,
	}

	query, args, err := sqlx.Named(queryListWishlistByUser, argsKV)
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

	items := make([]cart.WishlistItemResponse, 0)
	for rows.Next() {
		var row WishlistLineDB
		if err := rows.StructScan(&row); err != nil {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("ListByUser row scan err")
			return nil, err
		}
		items = append(items, makeWishlistItem(row))
	}

	return items, rows.Err()
}

func (r *wishlistRepository) DeleteItem(c context.Context, userID string, productID string) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"user_id":    userID,
		"product_id": productID,
	}

	query, args, err := sqlx.Named(queryDeleteWishlistItem, argsKV)
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
		return cart.ErrWishlistItemNotFound
	}

	return nil
}

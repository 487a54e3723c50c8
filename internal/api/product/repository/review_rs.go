package productRepository

import (
	"YeloSoul/internal/api/product"
	"YeloSoul/internal/entity"
	contextPkg "YeloSoul/pkg/context"
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type ReviewDB struct {
	ID        sql.NullString `db:"id"`
	ProductID sql.NullString `db:"product_id"`
	UserID    sql.NullString `db:"user_id"`
	UserName  sql.NullString `db:"user_name"`
	Rating    sql.NullInt64  `db:"rating"`
	Comment   sql.NullString `db:"comment"`
	CreatedAt sql.NullTime   `db:"created_at"`
}

func (r *reviewRepository) makeReview(row ReviewDB) entity.Review {
	return entity.Review{
		ID:        row.ID.String,
		ProductID: row.ProductID.String,
		UserID:    row.UserID.String,
		UserName:  row.UserName.String,
		Rating:    int(row.Rating.Int64),
		Comment:   row.Comment.String,
		CreatedAt: row.CreatedAt.Time,
	}
}

func (r *reviewRepository) CreateReview(c context.Context, rv entity.Review) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":         rv.ID,
		"product_id": rv.ProductID,
		"user_id":    rv.UserID,
		"user_name":  rv.UserName,
		"rating":     rv.Rating,
		"comment":    rv.Comment,
		"created_at": rv.CreatedAt,
	}

	query, args, err := sqlx.Named(queryCreateReview, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateReview named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateReview execution err")
		return err
	}

	return nil
}

func (r *reviewRepository) GetReviewByID(c context.Context, id string) (entity.Review, error) {
	requestID := contextPkg.GetRequestID(c)
	var row ReviewDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetReviewByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetReviewByID named query preparation err")
		return entity.Review{}, err
	}
	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Review{}, product.ErrReviewNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetReviewByID execution err")
		return entity.Review{}, err
	}

	return r.makeReview(row), nil
}

func (r *reviewRepository) ListByProduct(c context.Context, productID string) ([]entity.Review, error) {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"product_id": productID,
	}

	query, args, err := sqlx.Named(queryListReviewsByProduct, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("ListByProduct named query preparation err")
		return nil, err
	}
	query = r.q.Rebind(query)

	rows, err := r.q.QueryxContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("ListByProduct execution err")
		return nil, err
	}
	defer rows.Close()

	reviews := make([]entity.Review, 0)
	for rows.Next() {
		var row ReviewDB
		if err := rows.StructScan(&row); err != nil {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("ListByProduct row scan err")
			return nil, err
		}
		reviews = append(reviews, r.makeReview(row))
	}

	return reviews, rows.Err()
}

func (r *reviewRepository) DeleteReview(c context.Context, id string) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryDeleteReview, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteReview named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	res, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteReview execution err")
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return product.ErrReviewNotFound
	}

	return nil
}

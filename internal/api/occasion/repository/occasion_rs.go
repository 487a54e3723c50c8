package occasionRepository

import (
	"YeloSoul/internal/api/occasion"
	"YeloSoul/internal/entity"
	contextPkg "YeloSoul/pkg/context"
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

type OccasionDB struct {
	ID          sql.NullString `db:"id"`
	Name        sql.NullString `db:"name"`
	Description sql.NullString `db:"description"`
	Image       sql.NullString `db:"image"`
	CreatedAt   sql.NullTime   `db:"created_at"`
	UpdatedAt   sql.NullTime   `db:"updated_at"`
}

type occasionProductDB struct {
	ID          sql.NullString  `db:"id"`
	Name        sql.NullString  `db:"name"`
	Description sql.NullString  `db:"description"`
	Category    sql.NullString  `db:"category"`
	Image       sql.NullString  `db:"image"`
	Images      pq.StringArray  `db:"images"`
	Price       sql.NullFloat64 `db:"price"`
	Stock       sql.NullInt64   `db:"stock"`
	Discount    sql.NullFloat64 `db:"discount"`
	Rating      sql.NullFloat64 `db:"rating"`
	NumReviews  sql.NullInt64   `db:"num_reviews"`
	OccasionID  sql.NullString  `db:"occasion_id"`
	CreatedAt   sql.NullTime    `db:"created_at"`
	UpdatedAt   sql.NullTime    `db:"updated_at"`
}

func (r *occasionRepository) makeOccasion(row OccasionDB) entity.Occasion {
	return entity.Occasion{
		ID:          row.ID.String,
		Name:        row.Name.String,
		Description: row.Description.String,
		Image:       row.Image.String,
		CreatedAt:   row.CreatedAt.Time,
		UpdatedAt:   row.UpdatedAt.Time,
	}
}

func (r *occasionRepository) makeProduct(row occasionProductDB) entity.Product {
	return entity.Product{
		ID:          row.ID.String,
		Name:        row.Name.String,
		Description: row.Description.String,
		Category:    row.Category.String,
		Image:       row.Image.String,
		Images:      row.Images,
		Price:       row.Price.Float64,
		Stock:       int(row.Stock.Int64),
		Discount:    row.Discount.Float64,
		Rating:      row.Rating.Float64,
		NumReviews:  int(row.NumReviews.Int64),
		OccasionID:  row.OccasionID.String,
		CreatedAt:   row.CreatedAt.Time,
		UpdatedAt:   row.UpdatedAt.Time,
	}
}

func (r *occasionRepository) CreateOccasion(c context.Context, o entity.Occasion) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":          o.ID,
		"name":        o.Name,
		"description": o.Description,
		"image":       o.Image,
		"created_at":  o.CreatedAt,
	}

	query, args, err := sqlx.Named(queryCreateOccasion, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateOccasion named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return occasion.ErrOccasionNameTaken
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateOccasion execution err")
		return err
	}

	return nil
}

func (r *occasionRepository) GetByID(c context.Context, id string) (entity.Occasion, error) {
	requestID := contextPkg.GetRequestID(c)
	var row OccasionDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetOccasionByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByID named query preparation err")
		return entity.Occasion{}, err
	}
	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Occasion{}, occasion.ErrOccasionNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByID execution err")
		return entity.Occasion{}, err
	}

	return r.makeOccasion(row), nil
}

func (r *occasionRepository) ListOccasions(c context.Context) ([]entity.Occasion, error) {
	requestID := contextPkg.GetRequestID(c)

	rows, err := r.q.QueryxContext(c, r.q.Rebind(queryListOccasions))
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("ListOccasions execution err")
		return nil, err
	}
	defer rows.Close()

	occasions := make([]entity.Occasion, 0)
	for rows.Next() {
		var row OccasionDB
		if err := rows.StructScan(&row); err != nil {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("ListOccasions row scan err")
			return nil, err
		}
		occasions = append(occasions, r.makeOccasion(row))
	}

	return occasions, rows.Err()
}

func (r *occasionRepository) DeleteOccasion(c context.Context, id string) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryDeleteOccasion, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteOccasion named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	res, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteOccasion execution err")
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return occasion.ErrOccasionNotFound
	}

	return nil
}

func (r *occasionRepository) ListProducts(c context.Context, occasionID string) ([]entity.Product, error) {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"occasion_id": occasionID,
	}

	query, args, err := sqlx.Named(queryListOccasionProducts, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("ListProducts named query preparation err")
		return nil, err
	}
	query = r.q.Rebind(query)

	rows, err := r.q.QueryxContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("ListProducts execution err")
		return nil, err
	}
	defer rows.Close()

	products := make([]entity.Product, 0)
	for rows.Next() {
		var row occasionProductDB
		if err := rows.StructScan(&row); err != nil {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("ListProducts row scan err")
			return nil, err
		}
		products = append(products, r.makeProduct(row))
	}

	return products, rows.Err()
}

func (r *occasionRepository) GetLinkedProduct(c context.Context, occasionID string, productID string) (entity.Product, error) {
	requestID := contextPkg.GetRequestID(c)
	var row occasionProductDB

	argsKV := map[string]interface{}{
		"occasion_id": occasionID,
		"product_id":  productID,
	}

	query, args, err := sqlx.Named(queryGetLinkedProduct, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetLinkedProduct named query preparation err")
		return entity.Product{}, err
	}
	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Product{}, occasion.ErrProductNotLinked
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetLinkedProduct execution err")
		return entity.Product{}, err
	}

	return r.makeProduct(row), nil
}

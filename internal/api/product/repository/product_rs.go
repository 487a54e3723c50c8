package productRepository

import (
	"YeloSoul/internal/api/product"
	"YeloSoul/internal/entity"
	contextPkg "YeloSoul/pkg/context"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

type ProductDB struct {
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

func (r *productRepository) makeProduct(row ProductDB) entity.Product {
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

func (r *productRepository) CreateProduct(c context.Context, p entity.Product) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":          p.ID,
		"name":        p.Name,
		"description": p.Description,
		"category":    p.Category,
		"image":       p.Image,
		"images":      p.Images,
		"price":       p.Price,
		"stock":       p.Stock,
		"discount":    p.Discount,
		"occasion_id": sql.NullString{String: p.OccasionID, Valid: p.OccasionID != ""},
		"created_at":  p.CreatedAt,
	}

	query, args, err := sqlx.Named(queryCreateProduct, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateProduct named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateProduct execution err")
		return err
	}

	return nil
}

func (r *productRepository) GetByID(c context.Context, id string) (entity.Product, error) {
	requestID := contextPkg.GetRequestID(c)
	var row ProductDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetProductByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByID named query preparation err")
		return entity.Product{}, err
	}
	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Product{}, product.ErrProductNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByID execution err")
		return entity.Product{}, err
	}

	return r.makeProduct(row), nil
}

func sortClause(sort string) string {
	switch sort {
	case "low-high":
		return "price ASC"
	case "high-low":
		return "price DESC"
	case "rating":
		return "rating DESC"
	case "discount":
		return "discount DESC"
	case "newest":
		return "created_at DESC"
	default:
		return "created_at DESC"
	}
}

func listFilters(q product.ListProductsQuery) ([]string, map[string]interface{}) {
	var conditions []string
	argsKV := map[string]interface{}{}

	if q.Keyword != "" {
		conditions = append(conditions, "name ILIKE :keyword")
		argsKV["keyword"] = "%" + q.Keyword + "%"
	}
	if q.Category != "" {
		conditions = append(conditions, "category = :category")
		argsKV["category"] = q.Category
	}
	if q.MinPrice > 0 {
		conditions = append(conditions, "price >= :min_price")
		argsKV["min_price"] = q.MinPrice
	}
	if q.MaxPrice > 0 {
		conditions = append(conditions, "price <= :max_price")
		argsKV["max_price"] = q.MaxPrice
	}
	if q.BestDeals {
		conditions = append(conditions, "discount >= 20")
	}
	if q.InStock {
		conditions = append(conditions, "stock > 0")
	}

	return conditions, argsKV
}

func (r *productRepository) ListProducts(c context.Context, listQuery product.ListProductsQuery) ([]entity.Product, int, error) {
	requestID := contextPkg.GetRequestID(c)

	conditions, argsKV := listFilters(listQuery)

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "\nWHERE " + strings.Join(conditions, " AND ")
	}

	countQuery, countArgs, err := sqlx.Named(queryCountProducts+whereClause, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("ListProducts count query preparation err")
		return nil, 0, err
	}
	countQuery = r.q.Rebind(countQuery)

	var total int
	if err := r.q.QueryRowxContext(c, countQuery, countArgs...).Scan(&total); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("ListProducts count execution err")
		return nil, 0, err
	}

	argsKV["limit"] = listQuery.Limit
	argsKV["offset"] = (listQuery.Page - 1) * listQuery.Limit

	pageQuery := querySelectProducts + whereClause +
		fmt.Sprintf("\nORDER BY %s\nLIMIT :limit OFFSET :offset", sortClause(listQuery.Sort))

	query, args, err := sqlx.Named(pageQuery, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("ListProducts named query preparation err")
		return nil, 0, err
	}
	query = r.q.Rebind(query)

	rows, err := r.q.QueryxContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("ListProducts execution err")
		return nil, 0, err
	}
	defer rows.Close()

	products := make([]entity.Product, 0)
	for rows.Next() {
		var row ProductDB
		if err := rows.StructScan(&row); err != nil {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("ListProducts row scan err")
			return nil, 0, err
		}
		products = append(products, r.makeProduct(row))
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

func (r *productRepository) ListAll(c context.Context) ([]entity.Product, error) {
	requestID := contextPkg.GetRequestID(c)

	query := r.q.Rebind(querySelectProducts + "\nORDER BY created_at ASC")

	rows, err := r.q.QueryxContext(c, query)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("ListAll execution err")
		return nil, err
	}
	defer rows.Close()

	products := make([]entity.Product, 0)
	for rows.Next() {
		var row ProductDB
		if err := rows.StructScan(&row); err != nil {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("ListAll row scan err")
			return nil, err
		}
		products = append(products, r.makeProduct(row))
	}

	return products, rows.Err()
}

func (r *productRepository) UpdateProduct(c context.Context, p entity.Product) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":          p.ID,
		"name":        p.Name,
		"description": p.Description,
		"category":    p.Category,
		"image":       p.Image,
		"images":      p.Images,
		"price":       p.Price,
		"stock":       p.Stock,
		"discount":    p.Discount,
		"occasion_id": sql.NullString{String: p.OccasionID, Valid: p.OccasionID != ""},
		"updated_at":  time.Now(),
	}

	query, args, err := sqlx.Named(queryUpdateProduct, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateProduct named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	res, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateProduct execution err")
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return product.ErrProductNotFound
	}

	return nil
}

func (r *productRepository) DeleteProduct(c context.Context, id string) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryDeleteProduct, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteProduct named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	res, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteProduct execution err")
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return product.ErrProductNotFound
	}

	return nil
}

func (r *productRepository) InventoryStats(c context.Context) (product.InventoryStatsResponse, error) {
	requestID := contextPkg.GetRequestID(c)

	var stats struct {
		TotalProducts int `db:"total_products"`
		LowStock      int `db:"low_stock"`
		OutOfStock    int `db:"out_of_stock"`
	}

	if err := r.q.QueryRowxContext(c, r.q.Rebind(queryInventoryStats)).StructScan(&stats); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("InventoryStats execution err")
		return product.InventoryStatsResponse{}, err
	}

	return product.InventoryStatsResponse{
		TotalProducts: stats.TotalProducts,
		LowStock:      stats.LowStock,
		OutOfStock:    stats.OutOfStock,
	}, nil
}

func (r *productRepository) RecalculateRating(c context.Context, productID string) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"product_id": productID,
		"updated_at": time.Now(),
	}

	query, args, err := sqlx.Named(queryRecalculateRating, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("RecalculateRating named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("RecalculateRating execution err")
		return err
	}

	return nil
}

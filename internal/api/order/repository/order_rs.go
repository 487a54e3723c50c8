package orderRepository

import (
	"YeloSoul/internal/api/order"
	"YeloSoul/internal/entity"
	contextPkg "YeloSoul/pkg/context"
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type OrderDB struct {
	ID            sql.NullString  `db:"id"`
	UserID        sql.NullString  `db:"user_id"`
	TotalPrice    sql.NullFloat64 `db:"total_price"`
	Address       sql.NullString  `db:"address"`
	City          sql.NullString  `db:"city"`
	PostalCode    sql.NullString  `db:"postal_code"`
	Country       sql.NullString  `db:"country"`
	Status        sql.NullString  `db:"status"`
	PaymentMethod sql.NullString  `db:"payment_method"`
	PaymentStatus sql.NullString  `db:"payment_status"`
	TransactionID sql.NullString  `db:"transaction_id"`
	CreatedAt     sql.NullTime    `db:"created_at"`
	UpdatedAt     sql.NullTime    `db:"updated_at"`
	UserName      sql.NullString  `db:"user_name"`
	UserEmail     sql.NullString  `db:"user_email"`
}

type OrderItemDB struct {
	ID        sql.NullString  `db:"id"`
	OrderID   sql.NullString  `db:"order_id"`
	ProductID sql.NullString  `db:"product_id"`
	Name      sql.NullString  `db:"name"`
	Qty       sql.NullInt64   `db:"qty"`
	Price     sql.NullFloat64 `db:"price"`
}

func (r *orderRepository) makeOrder(row OrderDB) entity.Order {
	return entity.Order{
		ID:            row.ID.String,
		UserID:        row.UserID.String,
		TotalPrice:    row.TotalPrice.Float64,
		Address:       row.Address.String,
		City:          row.City.String,
		PostalCode:    row.PostalCode.String,
		Country:       row.Country.String,
		Status:        row.Status.String,
		PaymentMethod: row.PaymentMethod.String,
		PaymentStatus: row.PaymentStatus.String,
		TransactionID: row.TransactionID.String,
		CreatedAt:     row.CreatedAt.Time,
		UpdatedAt:     row.UpdatedAt.Time,
	}
}

func (r *orderRepository) makeOrderItem(row OrderItemDB) entity.OrderItem {
	return entity.OrderItem{
		ID:        row.ID.String,
		OrderID:   row.OrderID.String,
		ProductID: row.ProductID.String,
		Name:      row.Name.String,
		Qty:       int(row.Qty.Int64),
		Price:     row.Price.Float64,
	}
}

func (r *orderRepository) CreateOrder(c context.Context, o entity.Order) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":             o.ID,
		"user_id":        o.UserID,
		"total_price":    o.TotalPrice,
		"address":        o.Address,
		"city":           o.City,
		"postal_code":    o.PostalCode,
		"country":        o.Country,
		"status":         o.Status,
		"payment_method": o.PaymentMethod,
		"payment_status": o.PaymentStatus,
		"created_at":     o.CreatedAt,
	}

	query, args, err := sqlx.Named(queryCreateOrder, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateOrder named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateOrder execution err")
		return err
	}

	return nil
}

func (r *orderRepository) CreateOrderItem(c context.Context, item entity.OrderItem) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":         item.ID,
		"order_id":   item.OrderID,
		"product_id": item.ProductID,
		"name":       item.Name,
		"qty":        item.Qty,
		"price":      item.Price,
	}

	query, args, err := sqlx.Named(queryCreateOrderItem, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateOrderItem named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateOrderItem execution err")
		return err
	}

	return nil
}

func (r *orderRepository) GetByID(c context.Context, id string) (entity.Order, error) {
	requestID := contextPkg.GetRequestID(c)
	var row OrderDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetOrderByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByID named query preparation err")
		return entity.Order{}, err
	}
	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Order{}, order.ErrOrderNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByID execution err")
		return entity.Order{}, err
	}

	return r.makeOrder(row), nil
}

func (r *orderRepository) ListItemsByOrder(c context.Context, orderID string) ([]entity.OrderItem, error) {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"order_id": orderID,
	}

	query, args, err := sqlx.Named(queryListItemsByOrder, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("ListItemsByOrder named query preparation err")
		return nil, err
	}
	query = r.q.Rebind(query)

	rows, err := r.q.QueryxContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("ListItemsByOrder execution err")
		return nil, err
	}
	defer rows.Close()

	items := make([]entity.OrderItem, 0)
	for rows.Next() {
		var row OrderItemDB
		if err := rows.StructScan(&row); err != nil {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("ListItemsByOrder row scan err")
			return nil, err
		}
		items = append(items, r.makeOrderItem(row))
	}

	return items, rows.Err()
}

func (r *orderRepository) ListByUser(c context.Context, userID string) ([]entity.Order, error) {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"user_id": userID,
	}

	query, args, err := sqlx.Named(queryListOrdersByUser, argsKV)
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

	orders := make([]entity.Order, 0)
	for rows.Next() {
		var row OrderDB
		if err := rows.StructScan(&row); err != nil {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("ListByUser row scan err")
			return nil, err
		}
		orders = append(orders, r.makeOrder(row))
	}

	return orders, rows.Err()
}

func (r *orderRepository) ListAll(c context.Context) ([]OrderWithUser, error) {
	requestID := contextPkg.GetRequestID(c)

	rows, err := r.q.QueryxContext(c, r.q.Rebind(queryListAllOrders))
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("ListAll execution err")
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderWithUser, 0)
	for rows.Next() {
		var row OrderDB
		if err := rows.StructScan(&row); err != nil {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("ListAll row scan err")
			return nil, err
		}
		orders = append(orders, OrderWithUser{
			Order:     r.makeOrder(row),
			UserName:  row.UserName.String,
			UserEmail: row.UserEmail.String,
		})
	}

	return orders, rows.Err()
}

func (r *orderRepository) UpdateStatus(c context.Context, id string, status string) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":         id,
		"status":     status,
		"updated_at": time.Now(),
	}

	query, args, err := sqlx.Named(queryUpdateOrderStatus, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateStatus named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	res, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateStatus execution err")
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return order.ErrOrderNotFound
	}

	return nil
}

func (r *orderRepository) MarkPaid(c context.Context, id string, transactionID string) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":             id,
		"payment_status": entity.PaymentStatusPaid,
		"status":         entity.OrderStatusProcessing,
		"transaction_id": transactionID,
		"updated_at":     time.Now(),
	}

	query, args, err := sqlx.Named(queryMarkOrderPaid, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("MarkPaid named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	res, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("MarkPaid execution err")
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return order.ErrOrderNotFound
	}

	return nil
}

package orderService

import (
	"YeloSoul/internal/api/order"
	"YeloSoul/internal/entity"
	contextPkg "YeloSoul/pkg/context"
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

func makeOrderResponse(o entity.Order, items []entity.OrderItem) order.OrderResponse {
	res := order.OrderResponse{
		ID:     o.ID,
		UserID: o.UserID,
		Items:  make([]order.OrderItemResponse, 0, len(items)),
		ShippingAddress: order.ShippingAddressResponse{
			Address:    o.Address,
			City:       o.City,
			PostalCode: o.PostalCode,
			Country:    o.Country,
		},
		TotalPrice:    o.TotalPrice,
		Status:        o.Status,
		PaymentMethod: o.PaymentMethod,
		PaymentStatus: o.PaymentStatus,
		TransactionID: o.TransactionID,
		CreatedAt:     o.CreatedAt,
	}
	for _, item := range items {
		res.Items = append(res.Items, order.OrderItemResponse{
			ProductID: item.ProductID,
			Name:      item.Name,
			Qty:       item.Qty,
			Price:     item.Price,
		})
	}
	return res
}

func (s *orderDomainImpl) PlaceOrder(c context.Context, user entity.UserLoginData, req order.PlaceOrderRequest) (order.OrderResponse, error) {
	requestID := contextPkg.GetRequestID(c)
	repo, err := s.repo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return order.OrderResponse{}, err
	}
	defer repo.Rollback()

	id, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate order ID")
		return order.OrderResponse{}, err
	}

	o := entity.Order{
		ID:            id,
		UserID:        user.ID,
		TotalPrice:    req.TotalPrice,
		Address:       req.ShippingAddress.Address,
		City:          req.ShippingAddress.City,
		PostalCode:    req.ShippingAddress.PostalCode,
		Country:       req.ShippingAddress.Country,
		Status:        entity.OrderStatusPending,
		PaymentMethod: entity.PaymentMethodRazorpay,
		PaymentStatus: entity.PaymentStatusPending,
		CreatedAt:     time.Now(),
	}

	if err := repo.Orders.CreateOrder(c, o); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create order")
		return order.OrderResponse{}, err
	}

	items := make([]entity.OrderItem, 0, len(req.Items))
	for _, line := range req.Items {
		itemID, err := s.utils.NewULIDFromTimestamp(time.Now())
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to generate order item ID")
			return order.OrderResponse{}, err
		}

		item := entity.OrderItem{
			ID:        itemID,
			OrderID:   o.ID,
			ProductID: line.ProductID,
			Name:      line.Name,
			Qty:       line.Qty,
			Price:     line.Price,
		}

		if err := repo.Orders.CreateOrderItem(c, item); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to create order item")
			return order.OrderResponse{}, err
		}

		items = append(items, item)
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit order transaction")
		return order.OrderResponse{}, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"order_id":   o.ID,
		"user_id":    user.ID,
	}).Info("Order placed")

	return makeOrderResponse(o, items), nil
}

func (s *orderDomainImpl) MyOrders(c context.Context, userID string) (order.OrderListResponse, error) {
	requestID := contextPkg.GetRequestID(c)
	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return order.OrderListResponse{}, err
	}

	orders, err := repo.Orders.ListByUser(c, userID)
	if err != nil {
		return order.OrderListResponse{}, err
	}

	res := order.OrderListResponse{Orders: make([]order.OrderResponse, 0, len(orders))}
	for _, o := range orders {
		items, err := repo.Orders.ListItemsByOrder(c, o.ID)
		if err != nil {
			return order.OrderListResponse{}, err
		}
		res.Orders = append(res.Orders, makeOrderResponse(o, items))
	}

	return res, nil
}

func (s *orderDomainImpl) GetOrder(c context.Context, id string, user entity.UserLoginData) (order.OrderResponse, error) {
	requestID := contextPkg.GetRequestID(c)
	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return order.OrderResponse{}, err
	}

	o, err := repo.Orders.GetByID(c, id)
	if err != nil {
		return order.OrderResponse{}, err
	}

	if o.UserID != user.ID && !user.IsAdmin {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"order_id":   id,
			"user_id":    user.ID,
		}).Warn("Order access rejected, requester is not owner or admin")
		return order.OrderResponse{}, order.ErrNotOrderOwner
	}

	items, err := repo.Orders.ListItemsByOrder(c, id)
	if err != nil {
		return order.OrderResponse{}, err
	}

	return makeOrderResponse(o, items), nil
}

func (s *orderDomainImpl) ListOrders(c context.Context) (order.OrderListResponse, error) {
	requestID := contextPkg.GetRequestID(c)
	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return order.OrderListResponse{}, err
	}

	orders, err := repo.Orders.ListAll(c)
	if err != nil {
		return order.OrderListResponse{}, err
	}

	res := order.OrderListResponse{Orders: make([]order.OrderResponse, 0, len(orders))}
	for _, o := range orders {
		items, err := repo.Orders.ListItemsByOrder(c, o.Order.ID)
		if err != nil {
			return order.OrderListResponse{}, err
		}
		item := makeOrderResponse(o.Order, items)
		item.UserName = o.UserName
		item.UserEmail = o.UserEmail
		res.Orders = append(res.Orders, item)
	}

	return res, nil
}

func (s *orderDomainImpl) UpdateStatus(c context.Context, id string, req order.UpdateStatusRequest) error {
	requestID := contextPkg.GetRequestID(c)
	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	if !entity.ValidOrderStatus(req.Status) {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"order_id":   id,
			"status":     req.Status,
		}).Warn("Rejected unknown order status")
		return order.ErrInvalidStatus
	}

	if err := repo.Orders.UpdateStatus(c, id, req.Status); err != nil {
		return err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"order_id":   id,
		"status":     req.Status,
	}).Info("Order status updated")

	return nil
}

package orderService

import (
	"YeloSoul/internal/api/order"
	orderRepository "YeloSoul/internal/api/order/repository"
	"YeloSoul/internal/entity"
	"YeloSoul/pkg/razorpay"
	"YeloSoul/pkg/utils"
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
)

type fakeOrders struct {
	orders    map[string]entity.Order
	items     []entity.OrderItem
	statusLog []string
	paid      []string
}

func (f *fakeOrders) CreateOrder(ctx context.Context, o entity.Order) error {
	if f.orders == nil {
		f.orders = map[string]entity.Order{}
	}
	f.orders[o.ID] = o
	return nil
}
func (f *fakeOrders) CreateOrderItem(ctx context.Context, item entity.OrderItem) error {
	f.items = append(f.items, item)
	return nil
}
func (f *fakeOrders) GetByID(ctx context.Context, id string) (entity.Order, error) {
	o, ok := f.orders[id]
	if !ok {
		return entity.Order{}, order.ErrOrderNotFound
	}
	return o, nil
}
func (f *fakeOrders) ListItemsByOrder(ctx context.Context, orderID string) ([]entity.OrderItem, error) {
	var out []entity.OrderItem
	for _, item := range f.items {
		if item.OrderID == orderID {
			out = append(out, item)
		}
	}
	return out, nil
}
func (f *fakeOrders) ListByUser(ctx context.Context, userID string) ([]entity.Order, error) {
	var out []entity.Order
	for _, o := range f.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}
func (f *fakeOrders) ListAll(ctx context.Context) ([]orderRepository.OrderWithUser, error) {
	return nil, nil
}
func (f *fakeOrders) UpdateStatus(ctx context.Context, id string, status string) error {
	if _, ok := f.orders[id]; !ok {
		return order.ErrOrderNotFound
	}
	f.statusLog = append(f.statusLog, status)
	return nil
}
func (f *fakeOrders) MarkPaid(ctx context.Context, id string, transactionID string) error {
	f.paid = append(f.paid, id)
	return nil
}

type fakeOrderRepository struct {
	orders    *fakeOrders
	committed bool
}

func (f *fakeOrderRepository) NewClient(tx bool) (orderRepository.Client, error) {
	return orderRepository.Client{
		Orders:   f.orders,
		Commit:   func() error { f.committed = true; return nil },
		Rollback: func() error { return nil },
	}, nil
}

type fakeGateway struct {
	valid bool
}

func (g *fakeGateway) CreateOrder(req razorpay.CreateOrderRequest) (*razorpay.CreateOrderResponse, error) {
	return &razorpay.CreateOrderResponse{OrderID: "order_test", Amount: int64(req.TotalPrice * 100), Currency: "INR"}, nil
}
func (g *fakeGateway) VerifySignature(orderID string, paymentID string, signature string) bool {
	return g.valid
}

func TestPlaceOrderDefaults(t *testing.T) {
	repo := &fakeOrderRepository{orders: &fakeOrders{}}
	s := New(logrus.New(), repo, &fakeGateway{}, utils.New())

	res, err := s.Orders().PlaceOrder(context.Background(), entity.UserLoginData{ID: "u1"}, order.PlaceOrderRequest{
		Items: []order.OrderItemRequest{
			{ProductID: "p1", Name: "Gold Ring", Qty: 2, Price: 120},
		},
		ShippingAddress: order.ShippingAddressRequest{
			Address: "1 Main St", City: "Mumbai", PostalCode: "400001", Country: "IN",
		},
		TotalPrice: 240,
	})
	if err != nil {
		t.Fatalf("PlaceOrder returned error: %v", err)
	}

	if res.Status != entity.OrderStatusPending {
		t.Errorf("status = %q, want Pending", res.Status)
	}
	if res.PaymentStatus != entity.PaymentStatusPending {
		t.Errorf("payment status = %q, want Pending", res.PaymentStatus)
	}
	if res.PaymentMethod != entity.PaymentMethodRazorpay {
		t.Errorf("payment method = %q, want Razorpay", res.PaymentMethod)
	}
	if len(res.Items) != 1 || res.Items[0].Qty != 2 {
		t.Errorf("unexpected item snapshot: %+v", res.Items)
	}
	if !repo.committed {
		t.Error("order transaction was not committed")
	}
}

func TestGetOrderOwnership(t *testing.T) {
	orders := &fakeOrders{orders: map[string]entity.Order{
		"o1": {ID: "o1", UserID: "u1"},
	}}
	s := New(logrus.New(), &fakeOrderRepository{orders: orders}, &fakeGateway{}, utils.New())

	tests := []struct {
		name    string
		user    entity.UserLoginData
		wantErr error
	}{
		{"owner", entity.UserLoginData{ID: "u1"}, nil},
		{"admin", entity.UserLoginData{ID: "u2", IsAdmin: true}, nil},
		{"stranger", entity.UserLoginData{ID: "u2"}, order.ErrNotOrderOwner},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Orders().GetOrder(context.Background(), "o1", tt.user)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestUpdateStatusValidation(t *testing.T) {
	orders := &fakeOrders{orders: map[string]entity.Order{
		"o1": {ID: "o1", UserID: "u1"},
	}}
	s := New(logrus.New(), &fakeOrderRepository{orders: orders}, &fakeGateway{}, utils.New())

	err := s.Orders().UpdateStatus(context.Background(), "o1", order.UpdateStatusRequest{Status: "Teleported"})
	if !errors.Is(err, order.ErrInvalidStatus) {
		t.Fatalf("err = %v, want ErrInvalidStatus", err)
	}
	if len(orders.statusLog) != 0 {
		t.Error("invalid status reached the repository")
	}

	if err := s.Orders().UpdateStatus(context.Background(), "o1", order.UpdateStatusRequest{Status: "Shipped"}); err != nil {
		t.Fatalf("valid status rejected: %v", err)
	}
	if len(orders.statusLog) != 1 || orders.statusLog[0] != "Shipped" {
		t.Errorf("statusLog = %v, want [Shipped]", orders.statusLog)
	}
}

func TestVerifyPayment(t *testing.T) {
	orders := &fakeOrders{orders: map[string]entity.Order{
		"o1": {ID: "o1", UserID: "u1"},
	}}

	t.Run("signature mismatch", func(t *testing.T) {
		s := New(logrus.New(), &fakeOrderRepository{orders: orders}, &fakeGateway{valid: false}, utils.New())
		err := s.Payment().VerifyPayment(context.Background(), order.VerifyPaymentRequest{
			RazorpayOrderID: "r1", RazorpayPaymentID: "pay1", RazorpaySignature: "bad",
		})
		if !errors.Is(err, order.ErrInvalidSignature) {
			t.Fatalf("err = %v, want ErrInvalidSignature", err)
		}
	})

	t.Run("verified without local order", func(t *testing.T) {
		s := New(logrus.New(), &fakeOrderRepository{orders: orders}, &fakeGateway{valid: true}, utils.New())
		err := s.Payment().VerifyPayment(context.Background(), order.VerifyPaymentRequest{
			RazorpayOrderID: "r1", RazorpayPaymentID: "pay1", RazorpaySignature: "good",
		})
		if err != nil {
			t.Fatalf("VerifyPayment returned error: %v", err)
		}
		if len(orders.paid) != 0 {
			t.Error("no order should be marked paid without a local reference")
		}
	})

	t.Run("verified with local order", func(t *testing.T) {
		s := New(logrus.New(), &fakeOrderRepository{orders: orders}, &fakeGateway{valid: true}, utils.New())
		err := s.Payment().VerifyPayment(context.Background(), order.VerifyPaymentRequest{
			RazorpayOrderID: "r1", RazorpayPaymentID: "pay1", RazorpaySignature: "good", OrderID: "o1",
		})
		if err != nil {
			t.Fatalf("VerifyPayment returned error: %v", err)
		}
		if len(orders.paid) != 1 || orders.paid[0] != "o1" {
			t.Errorf("paid = %v, want [o1]", orders.paid)
		}
	})
}

package entity

import "time"

const (
	OrderStatusPending    = "Pending"
	OrderStatusProcessing = "Processing"
	OrderStatusShipped    = "Shipped"
	OrderStatusDelivered  = "Delivered"
	OrderStatusCancelled  = "Cancelled"

	PaymentStatusPending = "Pending"
	PaymentStatusPaid    = "Paid"

	PaymentMethodRazorpay = "Razorpay"
)

type Order struct {
	ID            string    `db:"id"`
	UserID        string    `db:"user_id"`
	TotalPrice    float64   `db:"total_price"`
	Address       string    `db:"address"`
	City          string    `db:"city"`
	PostalCode    string    `db:"postal_code"`
	Country       string    `db:"country"`
	Status        string    `db:"status"`
	PaymentMethod string    `db:"payment_method"`
	PaymentStatus string    `db:"payment_status"`
	TransactionID string    `db:"transaction_id"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

// OrderItem snapshots name and price at purchase time so later catalog edits
// do not rewrite order history.
type OrderItem struct {
	ID        string  `db:"id"`
	OrderID   string  `db:"order_id"`
	ProductID string  `db:"product_id"`
	Name      string  `db:"name"`
	Qty       int     `db:"qty"`
	Price     float64 `db:"price"`
}

func ValidOrderStatus(status string) bool {
	switch status {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

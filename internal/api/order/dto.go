package order

import "time"

type OrderItemRequest struct {
	ProductID string  `json:"product_id" validate:"required"`
	Name      string  `json:"name" validate:"required"`
	Qty       int     `json:"qty" validate:"required,min=1"`
	Price     float64 `json:"price" validate:"required,gt=0"`
}

type ShippingAddressRequest struct {
	Address    string `json:"address" validate:"required"`
	City       string `json:"city" validate:"required"`
	PostalCode string `json:"postal_code" validate:"required"`
	Country    string `json:"country" validate:"required"`
}

type PlaceOrderRequest struct {
	Items           []OrderItemRequest     `json:"items" validate:"required,min=1,dive"`
	ShippingAddress ShippingAddressRequest `json:"shipping_address" validate:"required"`
	TotalPrice      float64                `json:"total_price" validate:"required,gt=0"`
}

type CreatePaymentRequest struct {
	TotalPrice float64 `json:"total_price" validate:"required,gt=0"`
}

type CreatePaymentResponse struct {
	OrderID  string `json:"order_id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

type VerifyPaymentRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id" validate:"required"`
	RazorpayPaymentID string `json:"razorpay_payment_id" validate:"required"`
	RazorpaySignature string `json:"razorpay_signature" validate:"required"`
	OrderID           string `json:"order_id"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type OrderItemResponse struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Qty       int     `json:"qty"`
	Price     float64 `json:"price"`
}

type ShippingAddressResponse struct {
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

type OrderResponse struct {
	ID              string                  `json:"id"`
	UserID          string                  `json:"user_id"`
	UserName        string                  `json:"user_name,omitempty"`
	UserEmail       string                  `json:"user_email,omitempty"`
	Items           []OrderItemResponse     `json:"items"`
	ShippingAddress ShippingAddressResponse `json:"shipping_address"`
	TotalPrice      float64                 `json:"total_price"`
	Status          string                  `json:"status"`
	PaymentMethod   string                  `json:"payment_method"`
	PaymentStatus   string                  `json:"payment_status"`
	TransactionID   string                  `json:"transaction_id,omitempty"`
	CreatedAt       time.Time               `json:"created_at"`
}

type OrderListResponse struct {
	Orders []OrderResponse `json:"orders"`
}

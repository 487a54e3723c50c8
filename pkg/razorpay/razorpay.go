package razorpay

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math"
	"os"

	razorpaySDK "github.com/razorpay/razorpay-go"
	"github.com/sirupsen/logrus"
)

type CreateOrderRequest struct {
	TotalPrice float64
}

type CreateOrderResponse struct {
	OrderID  string
	Amount   int64
	Currency string
}

type IRazorpay interface {
	CreateOrder(req CreateOrderRequest) (*CreateOrderResponse, error)
	VerifySignature(orderID string, paymentID string, signature string) bool
}

type razorpayService struct {
	client    *razorpaySDK.Client
	keySecret string
	log       *logrus.Logger
}

func NewRazorpayService(log *logrus.Logger) IRazorpay {
	keyID := os.Getenv("RAZORPAY_KEY_ID")
	keySecret := os.Getenv("RAZORPAY_KEY_SECRET")

	return &razorpayService{
		client:    razorpaySDK.NewClient(keyID, keySecret),
		keySecret: keySecret,
		log:       log,
	}
}

func (r *razorpayService) CreateOrder(req CreateOrderRequest) (*CreateOrderResponse, error) {
	receipt, err := newReceiptID()
	if err != nil {
		return nil, err
	}

	// Razorpay expects the amount in paise.
	data := map[string]interface{}{
		"amount":   int64(math.Round(req.TotalPrice * 100)),
		"currency": "INR",
		"receipt":  receipt,
	}

	body, err := r.client.Order.Create(data, nil)
	if err != nil {
		r.log.WithError(err).Error("Failed to create Razorpay order")
		return nil, err
	}

	orderID, ok := body["id"].(string)
	if !ok || orderID == "" {
		return nil, fmt.Errorf("razorpay order response missing id")
	}

	amount := int64(math.Round(req.TotalPrice * 100))
	if raw, ok := body["amount"].(float64); ok {
		amount = int64(raw)
	}

	currency := "INR"
	if raw, ok := body["currency"].(string); ok && raw != "" {
		currency = raw
	}

	return &CreateOrderResponse{
		OrderID:  orderID,
		Amount:   amount,
		Currency: currency,
	}, nil
}

// VerifySignature checks the payment signature Razorpay hands to the
// frontend: HMAC-SHA256 over "orderID|paymentID" keyed with the key secret,
// compared in constant time.
func (r *razorpayService) VerifySignature(orderID string, paymentID string, signature string) bool {
	return verify(orderID, paymentID, signature, r.keySecret)
}

func verify(orderID string, paymentID string, signature string, secret string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}

func newReceiptID() (string, error) {
	buf := make([]byte, 6)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return "rcpt_" + hex.EncodeToString(buf), nil
}

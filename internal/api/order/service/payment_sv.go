package orderService

import (
	"YeloSoul/internal/api/order"
	contextPkg "YeloSoul/pkg/context"
	"YeloSoul/pkg/razorpay"
	"context"

	"github.com/sirupsen/logrus"
)

func (s *paymentDomainImpl) CreatePayment(c context.Context, req order.CreatePaymentRequest) (order.CreatePaymentResponse, error) {
	requestID := contextPkg.GetRequestID(c)

	res, err := s.razorpayClient.CreateOrder(razorpay.CreateOrderRequest{
		TotalPrice: req.TotalPrice,
	})
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create payment order")
		return order.CreatePaymentResponse{}, order.ErrPaymentGatewayError
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"order_id":   res.OrderID,
		"amount":     res.Amount,
	}).Info("Payment order created")

	return order.CreatePaymentResponse{
		OrderID:  res.OrderID,
		Amount:   res.Amount,
		Currency: res.Currency,
	}, nil
}

func (s *paymentDomainImpl) VerifyPayment(c context.Context, req order.VerifyPaymentRequest) error {
	requestID := contextPkg.GetRequestID(c)

	if !s.razorpayClient.VerifySignature(req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature) {
		s.log.WithFields(logrus.Fields{
			"request_id":        requestID,
			"razorpay_order_id": req.RazorpayOrderID,
		}).Warn("Payment signature mismatch")
		return order.ErrInvalidSignature
	}

	if req.OrderID == "" {
		s.log.WithFields(logrus.Fields{
			"request_id":        requestID,
			"razorpay_order_id": req.RazorpayOrderID,
		}).Info("Payment verified without a local order reference")
		return nil
	}

	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	if err := repo.Orders.MarkPaid(c, req.OrderID, req.RazorpayPaymentID); err != nil {
		return err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"order_id":   req.OrderID,
	}).Info("Order marked as paid")

	return nil
}

package orderService

import (
	"YeloSoul/internal/api/order"
	orderRepository "YeloSoul/internal/api/order/repository"
	"YeloSoul/internal/entity"
	"YeloSoul/pkg/razorpay"
	"YeloSoul/pkg/utils"
	"context"

	"github.com/sirupsen/logrus"
)

type OrderService interface {
	Orders() OrderDomain
	Payment() PaymentDomain
}

type OrderDomain interface {
	PlaceOrder(c context.Context, user entity.UserLoginData, req order.PlaceOrderRequest) (order.OrderResponse, error)
	MyOrders(c context.Context, userID string) (order.OrderListResponse, error)
	GetOrder(c context.Context, id string, user entity.UserLoginData) (order.OrderResponse, error)
	ListOrders(c context.Context) (order.OrderListResponse, error)
	UpdateStatus(c context.Context, id string, req order.UpdateStatusRequest) error
}

type PaymentDomain interface {
	CreatePayment(c context.Context, req order.CreatePaymentRequest) (order.CreatePaymentResponse, error)
	VerifyPayment(c context.Context, req order.VerifyPaymentRequest) error
}

type orderService struct {
	log             *logrus.Logger
	orderRepository orderRepository.Repository
	razorpayClient  razorpay.IRazorpay
	utils           utils.IUtils

	orderDomain   OrderDomain
	paymentDomain PaymentDomain
}

func (s *orderService) Orders() OrderDomain {
	return s.orderDomain
}

func (s *orderService) Payment() PaymentDomain {
	return s.paymentDomain
}

type orderDomainImpl struct {
	log   *logrus.Logger
	repo  orderRepository.Repository
	utils utils.IUtils
}

type paymentDomainImpl struct {
	log            *logrus.Logger
	repo           orderRepository.Repository
	razorpayClient razorpay.IRazorpay
}

func New(log *logrus.Logger,
	orderRepo orderRepository.Repository,
	razorpayClient razorpay.IRazorpay,
	utils utils.IUtils,
) OrderService {
	return &orderService{
		log:             log,
		orderRepository: orderRepo,
		razorpayClient:  razorpayClient,
		utils:           utils,

		orderDomain:   &orderDomainImpl{log: log, repo: orderRepo, utils: utils},
		paymentDomain: &paymentDomainImpl{log: log, repo: orderRepo, razorpayClient: razorpayClient},
	}
}

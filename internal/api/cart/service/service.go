package cartService

import (
	"YeloSoul/internal/api/cart"
	cartRepository "YeloSoul/internal/api/cart/repository"
	productRepository "YeloSoul/internal/api/product/repository"
	"context"

	"github.com/sirupsen/logrus"
)

type CartService interface {
	Cart() CartDomain
	Wishlist() WishlistDomain
}

type CartDomain interface {
	AddItem(c context.Context, userID string, req cart.AddCartItemRequest) error
	GetCart(c context.Context, userID string) (cart.CartResponse, error)
	RemoveItem(c context.Context, userID string, productID string) error
}

type WishlistDomain interface {
	AddItem(c context.Context, userID string, req cart.AddWishlistItemRequest) error
	GetWishlist(c context.Context, userID string) (cart.WishlistResponse, error)
	RemoveItem(c context.Context, userID string, productID string) error
}

type cartService struct {
	log               *logrus.Logger
	cartRepository    cartRepository.Repository
	productRepository productRepository.Repository

	cartDomain     CartDomain
	wishlistDomain WishlistDomain
}

func (s *cartService) Cart() CartDomain {
	return s.cartDomain
}

func (s *cartService) Wishlist() WishlistDomain {
	return s.wishlistDomain
}

type cartDomainImpl struct {
	log         *logrus.Logger
	repo        cartRepository.Repository
	productRepo productRepository.Repository
}

type wishlistDomainImpl struct {
	log         *logrus.Logger
	repo        cartRepository.Repository
	productRepo productRepository.Repository
}

func New(log *logrus.Logger,
	cartRepo cartRepository.Repository,
	productRepo productRepository.Repository,
) CartService {
	return &cartService{
		log:               log,
		cartRepository:    cartRepo,
		productRepository: productRepo,

		cartDomain:     &cartDomainImpl{log: log, repo: cartRepo, productRepo: productRepo},
		wishlistDomain: &wishlistDomainImpl{log: log, repo: cartRepo, productRepo: productRepo},
	}
}

package services

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"agromarket/internal/market"
	"agromarket/internal/repositories"
	"agromarket/internal/session"
)

// ErrInvalidQuantity is returned when an add-to-cart request falls outside
// 1..maxQuantity for the listing.
var ErrInvalidQuantity = errors.New("invalid quantity")

// CartService keeps one ephemeral cart per authenticated user. Carts live in
// memory only; they are destroyed by checkout or explicit clearing, never
// persisted.
type CartService struct {
	productRepo repositories.ProductRepository
	carts       map[string]market.Cart
	mu          sync.RWMutex
	now         func() time.Time
}

// NewCartService creates a new CartService.
func NewCartService(productRepo repositories.ProductRepository) *CartService {
	return &CartService{
		productRepo: productRepo,
		carts:       make(map[string]market.Cart),
		now:         time.Now,
	}
}

// Get returns the user's current cart. A user without a cart gets an empty
// one, never an error.
func (s *CartService) Get(sess session.Session) market.Cart {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.carts[sess.UserID]
}

// AddItem puts a listing in the user's cart. Expired listings are not
// purchasable, and the requested quantity must fit in 1..maxQuantity.
// Adding a product already in the cart merges into its existing line.
func (s *CartService) AddItem(sess session.Session, productID string, quantity int) (market.Cart, error) {
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if market.EvaluateSpoilage(product.ExpirationDate, s.now()) == market.SpoilageExpired {
		return nil, fmt.Errorf("%w: %s", ErrProductExpired, product.Name)
	}
	if quantity < 1 || quantity > product.MaxQuantity {
		return nil, fmt.Errorf("%w: %d not in 1..%d for %s", ErrInvalidQuantity, quantity, product.MaxQuantity, product.Name)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	cart := s.carts[sess.UserID].Add(*product, quantity)
	s.carts[sess.UserID] = cart
	return cart, nil
}

// AdjustItem changes a line's quantity by delta, clamping at 1.
func (s *CartService) AdjustItem(sess session.Session, productID string, delta int) market.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	cart := s.carts[sess.UserID].Adjust(productID, delta)
	s.carts[sess.UserID] = cart
	return cart
}

// RemoveItem drops a line from the cart entirely.
func (s *CartService) RemoveItem(sess session.Session, productID string) market.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	cart := s.carts[sess.UserID].Remove(productID)
	s.carts[sess.UserID] = cart
	return cart
}

// Clear destroys the user's cart. Checkout calls this once the order is
// safely created.
func (s *CartService) Clear(sess session.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sess.UserID)
}

// internal/domain/checkout/service.go
package checkout

import (
	"errors"
	"fmt"

	"github.com/murkimart/grocery-backend/internal/domain/address"
	"github.com/murkimart/grocery-backend/internal/domain/cart"
	"github.com/murkimart/grocery-backend/internal/domain/order"
)

// The order engine assumes valid input; these preconditions are checked here,
// before Create is ever called.
var (
	ErrEmptyCart = errors.New("cart is empty")
	ErrNoAddress = errors.New("no delivery address selected")
)

// Service composes the cart, the address directory and the order engine into
// the checkout flow.
type Service struct {
	addresses *address.Directory
	orders    *order.Engine
}

// NewService creates a checkout service.
func NewService(addresses *address.Directory, orders *order.Engine) *Service {
	return &Service{addresses: addresses, orders: orders}
}

// PlaceOrderRequest represents checkout data.
type PlaceOrderRequest struct {
	PaymentMethod string `json:"payment_method" binding:"required,oneof=UPI CARD COD"`
}

// PlaceOrder freezes the cart into an order snapshot, creates the order and
// clears the cart. The cart is cleared only after the order exists, so a
// failed checkout leaves it untouched.
func (s *Service) PlaceOrder(c *cart.Cart, req *PlaceOrderRequest) (*order.Order, error) {
	lines := c.Lines()
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	addr := s.addresses.Selected()
	if addr == nil {
		return nil, ErrNoAddress
	}

	totals := c.Totals()
	o := s.orders.Create(order.Snapshot{
		Items:          lines,
		Subtotal:       totals.Subtotal,
		DeliveryFee:    totals.DeliveryFee,
		Total:          totals.Total,
		Savings:        totals.Savings,
		CouponDiscount: totals.CouponDiscount,
		Address:        addr.Text(),
		PaymentMethod:  req.PaymentMethod,
	})

	c.Clear()

	return o, nil
}

// Summary previews the amounts checkout would freeze, without mutating
// anything.
func (s *Service) Summary(c *cart.Cart) (cart.Totals, string, error) {
	addr := s.addresses.Selected()
	if addr == nil {
		return cart.Totals{}, "", fmt.Errorf("cannot build checkout summary: %w", ErrNoAddress)
	}
	return c.Totals(), addr.Text(), nil
}

// internal/domain/cart/service.go
package cart

import (
	"errors"
	"sync"

	"github.com/murkimart/grocery-backend/internal/domain/catalog"
)

// ErrInvalidCoupon is returned when a coupon code is not in the coupon table.
// Prior coupon state is left untouched on failure.
var ErrInvalidCoupon = errors.New("invalid coupon code")

// Cart holds a session's line items and an optional applied coupon. Lines keep
// insertion order. All totals are recomputed from current state on every read.
type Cart struct {
	mu             sync.RWMutex
	lines          []Line
	couponCode     string
	couponDiscount int64
}

// New creates an empty cart.
func New() *Cart {
	return &Cart{}
}

// AddItem adds one unit of the product. If the product already has a line its
// quantity is incremented; otherwise a new line is appended with quantity 1.
// Stock is not checked here: availability is the caller's concern.
func (c *Cart) AddItem(product catalog.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].Product.ID == product.ID {
			c.lines[i].Quantity++
			return
		}
	}
	c.lines = append(c.lines, Line{Product: product, Quantity: 1})
}

// SetQuantity overwrites a line's quantity. A quantity <= 0 removes the line.
func (c *Cart) SetQuantity(productID string, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(productID)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].Product.ID == productID {
			c.lines[i].Quantity = quantity
			return
		}
	}
}

// RemoveItem removes a line. Removing a non-existent line is a no-op.
func (c *Cart) RemoveItem(productID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].Product.ID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Clear empties all lines and resets coupon state.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.lines = nil
	c.couponCode = ""
	c.couponDiscount = 0
}

// ApplyCoupon looks up the code case-insensitively. On a match the normalized
// code and discount are stored; on a miss the previous coupon is kept and
// ErrInvalidCoupon is returned.
func (c *Cart) ApplyCoupon(code string) error {
	normalized, discount, ok := LookupCoupon(code)
	if !ok {
		return ErrInvalidCoupon
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.couponCode = normalized
	c.couponDiscount = discount
	return nil
}

// RemoveCoupon clears coupon code and discount unconditionally.
func (c *Cart) RemoveCoupon() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.couponCode = ""
	c.couponDiscount = 0
}

// Lines returns a copy of the current lines in insertion order.
func (c *Cart) Lines() []Line {
	c.mu.RLock()
	defer c.mu.RUnlock()

	lines := make([]Line, len(c.lines))
	copy(lines, c.lines)
	return lines
}

// Coupon returns the applied coupon code and discount, if any.
func (c *Cart) Coupon() (code string, discount int64) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.couponCode, c.couponDiscount
}

// Subtotal returns the sum of discounted price times quantity over all lines.
func (c *Cart) Subtotal() int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.subtotalLocked()
}

// Savings returns the sum of (MRP - discounted price) times quantity.
func (c *Cart) Savings() int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var savings int64
	for _, l := range c.lines {
		savings += (l.Product.MRP - l.Product.DiscountedPrice) * int64(l.Quantity)
	}
	return savings
}

// DeliveryFee returns the tiered fee for the current subtotal.
func (c *Cart) DeliveryFee() int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return DeliveryFee(c.subtotalLocked())
}

// Total returns max(0, subtotal + delivery fee - coupon discount).
func (c *Cart) Total() int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	subtotal := c.subtotalLocked()
	total := subtotal + DeliveryFee(subtotal) - c.couponDiscount
	if total < 0 {
		return 0
	}
	return total
}

// ItemCount returns the sum of all line quantities.
func (c *Cart) ItemCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	count := 0
	for _, l := range c.lines {
		count += l.Quantity
	}
	return count
}

// Totals computes all derived amounts in one consistent read.
func (c *Cart) Totals() Totals {
	c.mu.RLock()
	defer c.mu.RUnlock()

	t := Totals{CouponDiscount: c.couponDiscount}
	for _, l := range c.lines {
		t.ItemCount += l.Quantity
		t.Subtotal += l.Product.DiscountedPrice * int64(l.Quantity)
		t.Savings += (l.Product.MRP - l.Product.DiscountedPrice) * int64(l.Quantity)
	}
	t.DeliveryFee = DeliveryFee(t.Subtotal)
	t.Total = t.Subtotal + t.DeliveryFee - t.CouponDiscount
	if t.Total < 0 {
		t.Total = 0
	}
	return t
}

func (c *Cart) subtotalLocked() int64 {
	var subtotal int64
	for _, l := range c.lines {
		subtotal += l.Product.DiscountedPrice * int64(l.Quantity)
	}
	return subtotal
}

// Sessions owns the per-session cart instances. Carts are session-scoped and
// memory-only: they never survive a restart.
type Sessions struct {
	mu    sync.Mutex
	carts map[string]*Cart
}

// NewSessions creates an empty session cart registry.
func NewSessions() *Sessions {
	return &Sessions{carts: make(map[string]*Cart)}
}

// Get returns the cart owned by the session, creating it on first use.
func (s *Sessions) Get(sessionID string) *Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.carts[sessionID]
	if !ok {
		c = New()
		s.carts[sessionID] = c
	}
	return c
}

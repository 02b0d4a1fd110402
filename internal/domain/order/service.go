// internal/domain/order/service.go
package order

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/murkimart/grocery-backend/internal/domain/cart"
	"github.com/sirupsen/logrus"
)

// ErrNotFound is returned when an order number matches no known order.
var ErrNotFound = errors.New("order not found")

// Engine owns the order history and the status state machine. Orders are
// append-only: history grows and is never pruned. The engine never schedules
// time itself; Advance is its sole mutation point after creation, so a timer,
// an admin override and a test harness all drive progression identically.
type Engine struct {
	mu            sync.RWMutex
	orders        []*Order // most recent first
	byNumber      map[string]*Order
	currentNumber string
	seq           int
	initialETA    int
	logger        *logrus.Logger
	rand          *rand.Rand
	now           func() time.Time
}

// NewEngine creates an order engine. initialETA is the estimated-minutes value
// assigned to every new order.
func NewEngine(initialETA int, logger *logrus.Logger) *Engine {
	return &Engine{
		byNumber:   make(map[string]*Order),
		initialETA: initialETA,
		logger:     logger,
		rand:       rand.New(rand.NewSource(time.Now().UnixNano())),
		now:        time.Now,
	}
}

// Create creates an order from a frozen snapshot: assigns an order number, a
// rider from the fixed roster, the initial ETA and status confirmed, prepends
// it to the history and marks it current. Creation never fails at this layer.
func (e *Engine) Create(snap Snapshot) *Order {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.seq++
	now := e.now().UTC()

	items := make([]cart.Line, len(snap.Items))
	copy(items, snap.Items)

	o := &Order{
		Number:           fmt.Sprintf("ORD-%s-%05d", now.Format("20060102"), e.seq),
		Items:            items,
		Subtotal:         snap.Subtotal,
		DeliveryFee:      snap.DeliveryFee,
		Total:            snap.Total,
		Savings:          snap.Savings,
		CouponDiscount:   snap.CouponDiscount,
		Address:          snap.Address,
		PaymentMethod:    snap.PaymentMethod,
		Status:           StatusConfirmed,
		CreatedAt:        now,
		RiderName:        riderNames[e.rand.Intn(len(riderNames))],
		EstimatedMinutes: e.initialETA,
	}

	e.orders = append([]*Order{o}, e.orders...)
	e.byNumber[o.Number] = o
	e.currentNumber = o.Number

	if e.logger != nil {
		e.logger.WithFields(logrus.Fields{
			"order_number": o.Number,
			"total":        o.Total,
			"rider":        o.RiderName,
		}).Info("Order created")
	}

	return e.copyLocked(o)
}

// Advance moves the order one step forward in the status sequence. Calling it
// on a delivered order is a no-op.
func (e *Engine) Advance(number string) (*Order, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	o, ok := e.byNumber[number]
	if !ok {
		return nil, ErrNotFound
	}

	if !o.Status.IsTerminal() {
		o.Status = o.Status.Next()
		if e.logger != nil {
			e.logger.WithFields(logrus.Fields{
				"order_number": o.Number,
				"status":       o.Status,
			}).Info("Order status advanced")
		}
	}

	return e.copyLocked(o), nil
}

// Get retrieves an order by number.
func (e *Engine) Get(number string) (*Order, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	o, ok := e.byNumber[number]
	if !ok {
		return nil, ErrNotFound
	}
	return e.copyLocked(o), nil
}

// Current returns the order currently tracked, or nil if there is none.
func (e *Engine) Current() *Order {
	e.mu.RLock()
	defer e.mu.RUnlock()

	o, ok := e.byNumber[e.currentNumber]
	if !ok {
		return nil
	}
	return e.copyLocked(o)
}

// SetCurrent changes which order is tracked as current.
func (e *Engine) SetCurrent(number string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.byNumber[number]; !ok {
		return ErrNotFound
	}
	e.currentNumber = number
	return nil
}

// History returns all orders, most recent first.
func (e *Engine) History() []Order {
	e.mu.RLock()
	defer e.mu.RUnlock()

	out := make([]Order, len(e.orders))
	for i, o := range e.orders {
		out[i] = *e.copyLocked(o)
	}
	return out
}

// copyLocked returns a defensive copy so callers never share the engine's
// mutable order record.
func (e *Engine) copyLocked(o *Order) *Order {
	cp := *o
	cp.Items = make([]cart.Line, len(o.Items))
	copy(cp.Items, o.Items)
	return &cp
}

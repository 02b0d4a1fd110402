// internal/domain/order/entity.go
package order

import (
	"time"

	"github.com/murkimart/grocery-backend/internal/domain/cart"
)

// Status represents the order status.
type Status string

const (
	StatusConfirmed      Status = "confirmed"
	StatusPreparing      Status = "preparing"
	StatusPickedUp       Status = "picked_up"
	StatusOutForDelivery Status = "out_for_delivery"
	StatusDelivered      Status = "delivered"
)

// statusSequence is the strictly linear lifecycle. There are no branches,
// no rollback and no cancellation: every order eventually reaches delivered.
var statusSequence = []Status{
	StatusConfirmed,
	StatusPreparing,
	StatusPickedUp,
	StatusOutForDelivery,
	StatusDelivered,
}

// Next returns the status following s in the sequence. Delivered is terminal
// and returns itself.
func (s Status) Next() Status {
	for i, st := range statusSequence {
		if st == s && i < len(statusSequence)-1 {
			return statusSequence[i+1]
		}
	}
	return StatusDelivered
}

// IsTerminal reports whether the status is the terminal delivered state.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered
}

// Order represents a placed order. The monetary snapshot fields are frozen at
// creation; only Status changes over the order's lifetime.
type Order struct {
	Number           string      `json:"number"`
	Items            []cart.Line `json:"items"`
	Subtotal         int64       `json:"subtotal"`
	DeliveryFee      int64       `json:"delivery_fee"`
	Total            int64       `json:"total"`
	Savings          int64       `json:"savings"`
	CouponDiscount   int64       `json:"coupon_discount"`
	Address          string      `json:"address"`
	PaymentMethod    string      `json:"payment_method"`
	Status           Status      `json:"status"`
	CreatedAt        time.Time   `json:"created_at"`
	RiderName        string      `json:"rider_name"`
	EstimatedMinutes int         `json:"estimated_minutes"`
}

// Snapshot carries the frozen cart state and pre-computed totals into order
// creation. Callers validate business preconditions before building one; the
// engine does not re-validate.
type Snapshot struct {
	Items          []cart.Line
	Subtotal       int64
	DeliveryFee    int64
	Total          int64
	Savings        int64
	CouponDiscount int64
	Address        string
	PaymentMethod  string
}

// riderNames is the fixed roster riders are assigned from.
var riderNames = []string{
	"Rahul Kumar",
	"Amit Singh",
	"Suresh Yadav",
	"Vikram Gupta",
	"Ravi Sharma",
}

// internal/domain/instantorder/service.go
package instantorder

import (
	"errors"

	"github.com/murkimart/grocery-backend/internal/domain/address"
	"github.com/murkimart/grocery-backend/internal/domain/cart"
	"github.com/murkimart/grocery-backend/internal/domain/catalog"
	"github.com/murkimart/grocery-backend/internal/domain/order"
	"github.com/murkimart/grocery-backend/internal/pkg/notify"
	"github.com/murkimart/grocery-backend/internal/pkg/whatsapp"
)

// ErrNoAddress is returned when the directory has no address to deliver to.
// No order is created in that case.
var ErrNoAddress = errors.New("no delivery address found")

// Service is the buy-now workflow: a single-item order created directly from a
// product, bypassing the cart. Delivery is always free on this path.
type Service struct {
	addresses *address.Directory
	orders    *order.Engine
	messenger *whatsapp.Service
	notifier  notify.Notifier
	onPlaced  func(orderNumber string)
}

// NewService creates the instant-order workflow. onPlaced is invoked after a
// successful order so the caller can move to tracking; it may be nil.
func NewService(
	addresses *address.Directory,
	orders *order.Engine,
	messenger *whatsapp.Service,
	notifier notify.Notifier,
	onPlaced func(orderNumber string),
) *Service {
	return &Service{
		addresses: addresses,
		orders:    orders,
		messenger: messenger,
		notifier:  notifier,
		onPlaced:  onPlaced,
	}
}

// Result carries the created order and the messaging hand-off.
type Result struct {
	Order       *order.Order `json:"order"`
	Message     string       `json:"message"`
	WhatsAppURL string       `json:"whatsapp_url"`
}

// BuyNow places a one-unit order for the product against the default-or-first
// address. With no address present it fails before anything is created; a
// retry after adding an address starts from a clean slate.
func (s *Service) BuyNow(product catalog.Product) (*Result, error) {
	addr := s.addresses.DefaultOrFirst()
	if addr == nil {
		if s.notifier != nil {
			s.notifier.Notify("No delivery address found",
				"Please add a delivery address in your Profile first.", notify.SeverityError)
		}
		return nil, ErrNoAddress
	}

	subtotal := product.DiscountedPrice
	o := s.orders.Create(order.Snapshot{
		Items:          []cart.Line{{Product: product, Quantity: 1}},
		Subtotal:       subtotal,
		DeliveryFee:    0, // always free on the instant path
		Total:          subtotal,
		Savings:        product.Savings(),
		CouponDiscount: 0,
		Address:        addr.Text(),
		PaymentMethod:  "Cash on Delivery",
	})

	message := s.messenger.FormatOrderSummary(o)

	if s.notifier != nil {
		s.notifier.Notify("Order placed! 🎉",
			"Opening WhatsApp to confirm your order.", notify.SeveritySuccess)
	}

	if s.onPlaced != nil {
		s.onPlaced(o.Number)
	}

	return &Result{
		Order:       o,
		Message:     message,
		WhatsAppURL: s.messenger.DeepLink(message),
	}, nil
}

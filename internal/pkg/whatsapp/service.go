// internal/pkg/whatsapp/service.go
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/murkimart/grocery-backend/internal/config"
	"github.com/murkimart/grocery-backend/internal/domain/order"
)

// Service formats order summaries and builds the wa.me deep link used to hand
// an order off to the store's WhatsApp number.
type Service struct {
	recipient string
}

// NewService creates a WhatsApp messaging service.
func NewService(cfg *config.Config) *Service {
	return &Service{recipient: cfg.Messaging.WhatsAppNumber}
}

// FormatOrderSummary renders the human-readable order summary sent on the
// instant-order path.
func (s *Service) FormatOrderSummary(o *order.Order) string {
	var b strings.Builder

	fmt.Fprintf(&b, "🛒 *New Order from MurkiMart!*\n")
	fmt.Fprintf(&b, "Order ID: #%s\n\n", o.Number)

	b.WriteString("*Item:*\n")
	for _, item := range o.Items {
		fmt.Fprintf(&b, "  • %s x%d — ₹%d\n", item.Product.Name, item.Quantity, item.Product.DiscountedPrice*int64(item.Quantity))
	}

	b.WriteString("\n*Bill Summary:*\n")
	fmt.Fprintf(&b, "  Subtotal: ₹%d\n", o.Subtotal)
	if o.DeliveryFee == 0 {
		b.WriteString("  Delivery: FREE 🎉\n")
	} else {
		fmt.Fprintf(&b, "  Delivery: ₹%d\n", o.DeliveryFee)
	}
	fmt.Fprintf(&b, "  *Total: ₹%d*\n\n", o.Total)

	fmt.Fprintf(&b, "*Delivery Address:*\n  %s\n\n", o.Address)
	fmt.Fprintf(&b, "Payment: %s 💵", o.PaymentMethod)

	return b.String()
}

// DeepLink builds the wa.me URL that opens a chat with the configured
// recipient, pre-filled with the message.
func (s *Service) DeepLink(message string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", s.recipient, url.QueryEscape(message))
}

// internal/domain/cart/entity.go
package cart

import (
	"strings"

	"github.com/murkimart/grocery-backend/internal/domain/catalog"
)

// Line represents a (product, quantity) pair in a cart. A cart holds at most
// one line per product identifier and quantity is always >= 1.
type Line struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

// Totals represents calculated cart totals. Derived on demand, never stored.
type Totals struct {
	ItemCount      int   `json:"item_count"` // Sum of all quantities
	Subtotal       int64 `json:"subtotal"`
	Savings        int64 `json:"savings"`
	DeliveryFee    int64 `json:"delivery_fee"`
	CouponDiscount int64 `json:"coupon_discount"`
	Total          int64 `json:"total"`
}

// Delivery fee tiers for the cart checkout path. The instant-order path uses a
// flat free-delivery override instead.
const (
	freeDeliveryThreshold = 199
	midTierThreshold      = 100
	midTierDeliveryFee    = 25
	baseDeliveryFee       = 50
)

// DeliveryFee returns the tiered delivery fee for a subtotal.
func DeliveryFee(subtotal int64) int64 {
	switch {
	case subtotal == 0:
		return 0
	case subtotal >= freeDeliveryThreshold:
		return 0
	case subtotal >= midTierThreshold:
		return midTierDeliveryFee
	default:
		return baseDeliveryFee
	}
}

// validCoupons maps normalized coupon codes to flat rupee discounts.
var validCoupons = map[string]int64{
	"MURKI10":   10,
	"FIRST50":   50,
	"SAVE20":    20,
	"JAUNPUR15": 15,
}

// LookupCoupon resolves a coupon code case-insensitively. Returns the
// normalized code and its discount, or ok=false for unknown codes.
func LookupCoupon(code string) (normalized string, discount int64, ok bool) {
	normalized = strings.ToUpper(strings.TrimSpace(code))
	discount, ok = validCoupons[normalized]
	if !ok {
		return "", 0, false
	}
	return normalized, discount, true
}

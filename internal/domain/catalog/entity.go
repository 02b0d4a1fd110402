// internal/domain/catalog/entity.go
package catalog

// Product represents a catalog product. Products are supplied by the catalog
// provider and treated as read-only everywhere else; the cart and order engines
// only read prices, names and identifiers.
//
// Amounts are whole rupees. DiscountedPrice <= MRP is expected from the
// provider but not enforced here.
type Product struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Category         string   `json:"category"`
	Brand            string   `json:"brand"`
	MRP              int64    `json:"mrp"`
	DiscountedPrice  int64    `json:"discounted_price"`
	WeightOrQuantity string   `json:"weight_or_quantity"`
	Rating           float64  `json:"rating"`
	ReviewCount      int      `json:"review_count"`
	IsVeg            bool     `json:"is_veg"`
	InStock          bool     `json:"in_stock"`
	Tags             []string `json:"tags"`
}

// Savings returns the per-unit saving against MRP, floored at zero.
func (p Product) Savings() int64 {
	if p.MRP > p.DiscountedPrice {
		return p.MRP - p.DiscountedPrice
	}
	return 0
}

// internal/domain/cart/service_test.go
package cart

import (
	"testing"

	"github.com/murkimart/grocery-backend/internal/domain/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func productA() catalog.Product {
	return catalog.Product{ID: "p-a", Name: "Fresh Tomatoes", MRP: 40, DiscountedPrice: 32, InStock: true}
}

func productB() catalog.Product {
	return catalog.Product{ID: "p-b", Name: "Onions", MRP: 35, DiscountedPrice: 28, InStock: true}
}

func TestAddItemMergesExistingLine(t *testing.T) {
	c := New()

	c.AddItem(productA())
	c.AddItem(productA())
	c.AddItem(productB())

	lines := c.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "p-a", lines[0].Product.ID)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, "p-b", lines[1].Product.ID)
	assert.Equal(t, 1, lines[1].Quantity)
}

func TestSetQuantity(t *testing.T) {
	tests := []struct {
		name      string
		quantity  int
		wantLines int
		wantQty   int
	}{
		{name: "overwrite", quantity: 5, wantLines: 1, wantQty: 5},
		{name: "zero removes line", quantity: 0, wantLines: 0},
		{name: "negative removes line", quantity: -3, wantLines: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			c.AddItem(productA())

			c.SetQuantity("p-a", tt.quantity)

			lines := c.Lines()
			require.Len(t, lines, tt.wantLines)
			if tt.wantLines > 0 {
				assert.Equal(t, tt.wantQty, lines[0].Quantity)
			}
		})
	}
}

func TestRemoveItemIsIdempotent(t *testing.T) {
	c := New()
	c.AddItem(productA())

	c.RemoveItem("p-a")
	c.RemoveItem("p-a")
	c.RemoveItem("never-existed")

	assert.Empty(t, c.Lines())
}

func TestItemCountMatchesQuantities(t *testing.T) {
	c := New()

	c.AddItem(productA())
	c.AddItem(productA())
	c.AddItem(productB())
	c.SetQuantity("p-b", 4)

	assert.Equal(t, 6, c.ItemCount())

	c.RemoveItem("p-a")
	assert.Equal(t, 4, c.ItemCount())

	c.SetQuantity("p-b", 0)
	assert.Equal(t, 0, c.ItemCount())
}

func TestSubtotalAndSavingsAreLinearInQuantity(t *testing.T) {
	c := New()
	c.AddItem(productA())

	singleSubtotal := c.Subtotal()
	singleSavings := c.Savings()

	c.SetQuantity("p-a", 2)

	assert.Equal(t, 2*singleSubtotal, c.Subtotal())
	assert.Equal(t, 2*singleSavings, c.Savings())
}

func TestDeliveryFeeTiers(t *testing.T) {
	tests := []struct {
		subtotal int64
		want     int64
	}{
		{subtotal: 0, want: 0},
		{subtotal: 50, want: 50},
		{subtotal: 99, want: 50},
		{subtotal: 100, want: 25},
		{subtotal: 150, want: 25},
		{subtotal: 199, want: 0},
		{subtotal: 500, want: 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, DeliveryFee(tt.subtotal), "subtotal %d", tt.subtotal)
	}
}

func TestApplyCouponIsCaseInsensitive(t *testing.T) {
	for _, code := range []string{"murki10", "MURKI10", "Murki10"} {
		c := New()
		require.NoError(t, c.ApplyCoupon(code))

		applied, discount := c.Coupon()
		assert.Equal(t, "MURKI10", applied)
		assert.Equal(t, int64(10), discount)
	}
}

func TestApplyInvalidCouponKeepsPriorCoupon(t *testing.T) {
	c := New()
	require.NoError(t, c.ApplyCoupon("SAVE20"))

	err := c.ApplyCoupon("BOGUS")
	require.ErrorIs(t, err, ErrInvalidCoupon)

	code, discount := c.Coupon()
	assert.Equal(t, "SAVE20", code)
	assert.Equal(t, int64(20), discount)
}

func TestRemoveCoupon(t *testing.T) {
	c := New()
	require.NoError(t, c.ApplyCoupon("FIRST50"))

	c.RemoveCoupon()

	code, discount := c.Coupon()
	assert.Empty(t, code)
	assert.Zero(t, discount)
}

func TestTwoLineScenarioTotals(t *testing.T) {
	c := New()

	// Product A: 32 (mrp 40) x2, Product B: 28 (mrp 35) x1
	c.AddItem(productA())
	c.SetQuantity("p-a", 2)
	c.AddItem(productB())

	totals := c.Totals()
	assert.Equal(t, int64(92), totals.Subtotal)
	assert.Equal(t, int64(23), totals.Savings)
	assert.Equal(t, int64(50), totals.DeliveryFee)
	assert.Equal(t, int64(142), totals.Total)
	assert.Equal(t, 3, totals.ItemCount)

	require.NoError(t, c.ApplyCoupon("SAVE20"))
	assert.Equal(t, int64(122), c.Total())
}

func TestTotalNeverNegative(t *testing.T) {
	c := New()
	require.NoError(t, c.ApplyCoupon("FIRST50"))

	// Empty cart: subtotal 0, fee 0, discount 50.
	assert.Equal(t, int64(0), c.Total())
}

func TestClearResetsLinesAndCoupon(t *testing.T) {
	c := New()
	c.AddItem(productA())
	require.NoError(t, c.ApplyCoupon("JAUNPUR15"))

	c.Clear()

	assert.Empty(t, c.Lines())
	code, discount := c.Coupon()
	assert.Empty(t, code)
	assert.Zero(t, discount)
	assert.Equal(t, int64(0), c.Total())
}

func TestCouponEffectVisibleImmediately(t *testing.T) {
	c := New()
	c.AddItem(productA()) // subtotal 32, fee 50

	before := c.Total()
	require.NoError(t, c.ApplyCoupon("MURKI10"))

	assert.Equal(t, before-10, c.Total())
}

func TestSessionsOwnSeparateCarts(t *testing.T) {
	sessions := NewSessions()

	a := sessions.Get("session-a")
	b := sessions.Get("session-b")
	a.AddItem(productA())

	assert.Equal(t, 1, a.ItemCount())
	assert.Equal(t, 0, b.ItemCount())
	assert.Same(t, a, sessions.Get("session-a"))
}

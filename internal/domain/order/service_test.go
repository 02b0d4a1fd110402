// internal/domain/order/service_test.go
package order

import (
	"strings"
	"testing"

	"github.com/murkimart/grocery-backend/internal/domain/cart"
	"github.com/murkimart/grocery-backend/internal/domain/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSnapshot() Snapshot {
	return Snapshot{
		Items: []cart.Line{
			{Product: catalog.Product{ID: "p-a", Name: "Fresh Tomatoes", MRP: 40, DiscountedPrice: 32}, Quantity: 2},
		},
		Subtotal:      64,
		DeliveryFee:   50,
		Total:         114,
		Savings:       16,
		Address:       "42, Gandhi Nagar, Murki Bazar, Jaunpur, UP",
		PaymentMethod: "UPI",
	}
}

func TestCreateAssignsOrderFields(t *testing.T) {
	e := NewEngine(12, nil)

	o := e.Create(testSnapshot())

	assert.True(t, strings.HasPrefix(o.Number, "ORD-"), "order number %q", o.Number)
	assert.Equal(t, StatusConfirmed, o.Status)
	assert.Contains(t, riderNames, o.RiderName)
	assert.Equal(t, 12, o.EstimatedMinutes)
	assert.False(t, o.CreatedAt.IsZero())
	assert.Equal(t, int64(114), o.Total)
}

func TestCreatePrependsAndMarksCurrent(t *testing.T) {
	e := NewEngine(12, nil)

	first := e.Create(testSnapshot())
	second := e.Create(testSnapshot())

	history := e.History()
	require.Len(t, history, 2)
	assert.Equal(t, second.Number, history[0].Number)
	assert.Equal(t, first.Number, history[1].Number)

	current := e.Current()
	require.NotNil(t, current)
	assert.Equal(t, second.Number, current.Number)
}

func TestAdvanceFollowsLinearSequence(t *testing.T) {
	e := NewEngine(12, nil)
	o := e.Create(testSnapshot())

	want := []Status{StatusPreparing, StatusPickedUp, StatusOutForDelivery, StatusDelivered}
	for _, expected := range want {
		advanced, err := e.Advance(o.Number)
		require.NoError(t, err)
		assert.Equal(t, expected, advanced.Status)
	}
}

func TestAdvanceOnDeliveredIsNoOp(t *testing.T) {
	e := NewEngine(12, nil)
	o := e.Create(testSnapshot())

	for i := 0; i < 10; i++ {
		_, err := e.Advance(o.Number)
		require.NoError(t, err)
	}

	got, err := e.Get(o.Number)
	require.NoError(t, err)
	assert.Equal(t, StatusDelivered, got.Status)
}

func TestAdvanceUnknownOrder(t *testing.T) {
	e := NewEngine(12, nil)

	_, err := e.Advance("ORD-00000000-99999")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetUnknownOrder(t *testing.T) {
	e := NewEngine(12, nil)

	_, err := e.Get("ORD-00000000-99999")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, e.Current())
}

func TestSetCurrent(t *testing.T) {
	e := NewEngine(12, nil)
	first := e.Create(testSnapshot())
	e.Create(testSnapshot())

	require.NoError(t, e.SetCurrent(first.Number))
	assert.Equal(t, first.Number, e.Current().Number)

	assert.ErrorIs(t, e.SetCurrent("ORD-bogus"), ErrNotFound)
}

func TestMonetarySnapshotFrozenAcrossAdvance(t *testing.T) {
	e := NewEngine(12, nil)
	o := e.Create(testSnapshot())

	_, err := e.Advance(o.Number)
	require.NoError(t, err)

	got, err := e.Get(o.Number)
	require.NoError(t, err)
	assert.Equal(t, o.Subtotal, got.Subtotal)
	assert.Equal(t, o.DeliveryFee, got.DeliveryFee)
	assert.Equal(t, o.Total, got.Total)
	assert.Equal(t, o.Savings, got.Savings)
	assert.Equal(t, o.RiderName, got.RiderName)
}

func TestReturnedOrdersAreCopies(t *testing.T) {
	e := NewEngine(12, nil)
	o := e.Create(testSnapshot())

	o.Items[0].Quantity = 99
	o.Total = 0

	got, err := e.Get(o.Number)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Items[0].Quantity)
	assert.Equal(t, int64(114), got.Total)
}

func TestStatusNext(t *testing.T) {
	assert.Equal(t, StatusPreparing, StatusConfirmed.Next())
	assert.Equal(t, StatusDelivered, StatusOutForDelivery.Next())
	assert.Equal(t, StatusDelivered, StatusDelivered.Next())
	assert.True(t, StatusDelivered.IsTerminal())
	assert.False(t, StatusConfirmed.IsTerminal())
}

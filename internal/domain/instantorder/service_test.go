// internal/domain/instantorder/service_test.go
package instantorder

import (
	"testing"

	"github.com/murkimart/grocery-backend/internal/config"
	"github.com/murkimart/grocery-backend/internal/domain/address"
	"github.com/murkimart/grocery-backend/internal/domain/catalog"
	"github.com/murkimart/grocery-backend/internal/domain/order"
	"github.com/murkimart/grocery-backend/internal/pkg/notify"
	"github.com/murkimart/grocery-backend/internal/pkg/whatsapp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingNotifier struct {
	titles     []string
	severities []notify.Severity
}

func (r *recordingNotifier) Notify(title, message string, severity notify.Severity) {
	r.titles = append(r.titles, title)
	r.severities = append(r.severities, severity)
}

func testMessenger() *whatsapp.Service {
	return whatsapp.NewService(&config.Config{
		Messaging: config.MessagingConfig{WhatsAppNumber: "917348050803"},
	})
}

func testProduct() catalog.Product {
	return catalog.Product{
		ID:              "p-amul",
		Name:            "Amul Gold Milk",
		MRP:             66,
		DiscountedPrice: 62,
		InStock:         true,
	}
}

func TestBuyNowWithoutAddress(t *testing.T) {
	dir, err := address.NewDirectory(nil, nil)
	require.NoError(t, err)
	engine := order.NewEngine(12, nil)
	rec := &recordingNotifier{}

	svc := NewService(dir, engine, testMessenger(), rec, nil)

	_, err = svc.BuyNow(testProduct())
	assert.ErrorIs(t, err, ErrNoAddress)
	assert.Empty(t, engine.History(), "no order may be created without an address")

	require.Len(t, rec.severities, 1)
	assert.Equal(t, notify.SeverityError, rec.severities[0])
}

func TestBuyNowCreatesSingleItemOrder(t *testing.T) {
	dir, err := address.NewDirectory(nil, nil)
	require.NoError(t, err)
	_, err = dir.Add(address.AddAddressRequest{
		Label:       "Home",
		HouseNumber: "42",
		Street:      "Gandhi Nagar",
		Locality:    "Murki Bazar",
	})
	require.NoError(t, err)

	engine := order.NewEngine(12, nil)
	rec := &recordingNotifier{}

	var placed []string
	svc := NewService(dir, engine, testMessenger(), rec, func(number string) {
		placed = append(placed, number)
	})

	res, err := svc.BuyNow(testProduct())
	require.NoError(t, err)

	o := res.Order
	require.Len(t, o.Items, 1)
	assert.Equal(t, 1, o.Items[0].Quantity)
	assert.Equal(t, int64(62), o.Subtotal)
	assert.Zero(t, o.DeliveryFee)
	assert.Equal(t, int64(62), o.Total)
	assert.Equal(t, int64(4), o.Savings)
	assert.Equal(t, "Cash on Delivery", o.PaymentMethod)
	assert.Equal(t, order.StatusConfirmed, o.Status)

	assert.Contains(t, res.Message, "Amul Gold Milk")
	assert.Contains(t, res.Message, "FREE")
	assert.Contains(t, res.WhatsAppURL, "https://wa.me/917348050803?text=")

	require.Len(t, placed, 1)
	assert.Equal(t, o.Number, placed[0])

	require.Len(t, rec.severities, 1)
	assert.Equal(t, notify.SeveritySuccess, rec.severities[0])

	current := engine.Current()
	require.NotNil(t, current)
	assert.Equal(t, o.Number, current.Number)
}

func TestBuyNowUsesDefaultAddressOverFirst(t *testing.T) {
	dir, err := address.NewDirectory(nil, nil)
	require.NoError(t, err)
	_, err = dir.Add(address.AddAddressRequest{
		Label:       "Office",
		HouseNumber: "7",
		Street:      "Station Road",
		Locality:    "Civil Lines",
	})
	require.NoError(t, err)
	_, err = dir.Add(address.AddAddressRequest{
		Label:       "Home",
		HouseNumber: "42",
		Street:      "Gandhi Nagar",
		Locality:    "Murki Bazar",
		IsDefault:   true,
	})
	require.NoError(t, err)

	engine := order.NewEngine(12, nil)
	svc := NewService(dir, engine, testMessenger(), nil, nil)

	res, err := svc.BuyNow(testProduct())
	require.NoError(t, err)
	assert.Contains(t, res.Order.Address, "Gandhi Nagar")
	assert.NotContains(t, res.Order.Address, "Station Road")
}

func TestBuyNowSavingsNeverNegative(t *testing.T) {
	dir, err := address.NewDirectory(nil, nil)
	require.NoError(t, err)
	_, err = dir.Add(address.AddAddressRequest{
		Label:       "Home",
		HouseNumber: "42",
		Street:      "Gandhi Nagar",
		Locality:    "Murki Bazar",
	})
	require.NoError(t, err)

	engine := order.NewEngine(12, nil)
	svc := NewService(dir, engine, testMessenger(), nil, nil)

	p := testProduct()
	p.MRP = 50
	p.DiscountedPrice = 60

	res, err := svc.BuyNow(p)
	require.NoError(t, err)
	assert.Zero(t, res.Order.Savings)
}

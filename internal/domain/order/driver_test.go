// internal/domain/order/driver_test.go
package order

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDriverAdvancesToDelivered(t *testing.T) {
	e := NewEngine(12, nil)
	o := e.Create(testSnapshot())

	d := NewDriver(e, time.Millisecond, nil)

	done := make(chan struct{})
	go func() {
		d.Track(context.Background(), o.Number)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("driver did not finish")
	}

	got, err := e.Get(o.Number)
	require.NoError(t, err)
	assert.Equal(t, StatusDelivered, got.Status)
}

func TestDriverStopsOnCancel(t *testing.T) {
	e := NewEngine(12, nil)
	o := e.Create(testSnapshot())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	d := NewDriver(e, 10*time.Millisecond, nil)

	done := make(chan struct{})
	go func() {
		d.Track(ctx, o.Number)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("driver did not stop after cancel")
	}
}

func TestDriverStopsOnUnknownOrder(t *testing.T) {
	e := NewEngine(12, nil)
	d := NewDriver(e, time.Millisecond, nil)

	done := make(chan struct{})
	go func() {
		d.Track(context.Background(), "ORD-bogus")
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("driver did not stop on unknown order")
	}
}

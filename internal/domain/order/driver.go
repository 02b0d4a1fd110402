// internal/domain/order/driver.go
package order

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

// Driver simulates backend fulfillment by advancing an order on a fixed
// interval until it is delivered. It lives outside the engine: the state
// machine stays free of scheduling and can be driven synchronously in tests
// through the same Advance call.
type Driver struct {
	engine   *Engine
	interval time.Duration
	logger   *logrus.Logger
}

// NewDriver creates a progression driver for the engine.
func NewDriver(engine *Engine, interval time.Duration, logger *logrus.Logger) *Driver {
	return &Driver{engine: engine, interval: interval, logger: logger}
}

// Track advances the order every interval until it reaches delivered or the
// context is cancelled. It blocks; callers run it in a goroutine.
func (d *Driver) Track(ctx context.Context, number string) {
	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			o, err := d.engine.Advance(number)
			if err != nil {
				if d.logger != nil {
					d.logger.WithError(err).WithField("order_number", number).Warn("Progression stopped")
				}
				return
			}
			if o.Status.IsTerminal() {
				return
			}
		}
	}
}

// Start launches Track in a goroutine.
func (d *Driver) Start(ctx context.Context, number string) {
	go d.Track(ctx, number)
}

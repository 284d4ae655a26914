package pomodoro

import (
	"context"
	"time"
)

// Run counts the current interval down on ticks until it completes or ctx
// is done. It starts the controller if it is idle. The caller owns ticks;
// a time.Ticker's channel is the usual source.
func Run(ctx context.Context, c *Controller, ticks <-chan time.Time) error {
	c.Start()
	id := c.TickID()
	for {
		select {
		case <-ctx.Done():
			c.Pause()
			return ctx.Err()
		case <-ticks:
			if !c.Tick(id) {
				return nil
			}
		}
	}
}

package browser

import (
	"context"
	"time"
)

//go:generate mockgen -source=driver.go -destination=../flow/mock_driver_test.go -package=flow

// Driver is the set of browser capabilities a flow needs. Probes (Locate,
// Clickable, Value) answer immediately; waiting is the caller's business.
// Actions operate on the first element matching the locator.
type Driver interface {
	Navigate(ctx context.Context, url string) error

	// Locate reports whether at least one element matches right now.
	Locate(ctx context.Context, loc Locator) (bool, error)
	// Clickable reports whether the first match is visible and enabled.
	Clickable(ctx context.Context, loc Locator) (bool, error)

	Click(ctx context.Context, loc Locator) error
	SendKeys(ctx context.Context, loc Locator, text string) error
	Clear(ctx context.Context, loc Locator) error
	Value(ctx context.Context, loc Locator) (string, error)

	// Windows lists window handles in the order they were opened.
	Windows(ctx context.Context) ([]string, error)
	SwitchWindow(ctx context.Context, handle string) error

	Snapshot(ctx context.Context) (*PageSnapshot, error)

	Close() error
}

// Options shared by both backends.
type Options struct {
	Headless bool
	// ActionTimeout caps a single driver call when ctx carries no deadline.
	ActionTimeout time.Duration
}

const defaultActionTimeout = 30 * time.Second

func (o Options) actionTimeout() time.Duration {
	if o.ActionTimeout <= 0 {
		return defaultActionTimeout
	}
	return o.ActionTimeout
}

// budget returns how long a call under ctx may run, in milliseconds, the
// unit playwright timeouts are expressed in.
func budget(ctx context.Context, fallback time.Duration) float64 {
	d := fallback
	if deadline, ok := ctx.Deadline(); ok {
		d = time.Until(deadline)
	}
	ms := d.Milliseconds()
	if ms < 1 {
		// zero would mean "no timeout" to playwright
		ms = 1
	}
	return float64(ms)
}

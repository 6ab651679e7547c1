package flow

import (
	"context"
	"errors"
	"fmt"

	"github.com/nbenliogludev/go-checkout-flow/internal/browser"
)

// Opener starts a browser session.
type Opener func(ctx context.Context) (browser.Driver, error)

// WithSession opens one session, hands a Runner bound to it to fn, and closes
// the session exactly once when fn returns, whatever the outcome.
func WithSession(ctx context.Context, open Opener, opts Options, fn func(ctx context.Context, r *Runner) error) (err error) {
	d, err := open(ctx)
	if err != nil {
		return fmt.Errorf("open browser session: %w", err)
	}
	defer func() {
		if cerr := d.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("close browser session: %w", cerr))
		}
	}()
	return fn(ctx, NewRunner(d, opts))
}

package flow

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// errNotYet marks a probe that ran fine but whose condition does not hold.
var errNotYet = errors.New("condition not met")

// poll evaluates cond once per interval until it reports true, it fails, or
// timeout elapses. It returns context.DeadlineExceeded when the bound is hit
// and the condition never held; a probe error is returned as is.
func poll(ctx context.Context, timeout, interval time.Duration, cond func(context.Context) (bool, error)) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	op := func() error {
		ok, err := cond(ctx)
		switch {
		case err != nil && ctx.Err() != nil:
			// the probe was cut off by the deadline, not broken
			return backoff.Permanent(ctx.Err())
		case err != nil && (errors.Is(err, context.DeadlineExceeded) || expiring(ctx, interval)):
			// the driver ran out the bound with its own clock
			return backoff.Permanent(context.DeadlineExceeded)
		case err != nil:
			return backoff.Permanent(err)
		case !ok:
			return errNotYet
		}
		return nil
	}
	err := backoff.Retry(op, backoff.WithContext(backoff.NewConstantBackOff(interval), ctx))
	if errors.Is(err, errNotYet) && ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}

// expiring reports whether less than one interval is left before ctx's
// deadline, so no further probe would run.
func expiring(ctx context.Context, interval time.Duration) bool {
	deadline, ok := ctx.Deadline()
	return ok && time.Until(deadline) < interval
}

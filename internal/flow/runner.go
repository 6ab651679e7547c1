package flow

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nbenliogludev/go-checkout-flow/internal/browser"
	"github.com/nbenliogludev/go-checkout-flow/internal/logr"
)

const (
	DefaultTimeout      = 20 * time.Second
	DefaultPollInterval = 250 * time.Millisecond
)

// CheckoutPolicy decides what a timeout on the checkout or place-order
// control does to the run.
type CheckoutPolicy string

const (
	// CheckoutStrict fails the run.
	CheckoutStrict CheckoutPolicy = "strict"
	// CheckoutLenient logs the timeout and goes on to the contact field.
	CheckoutLenient CheckoutPolicy = "lenient"
)

func (p CheckoutPolicy) Valid() bool {
	return p == CheckoutStrict || p == CheckoutLenient
}

type Options struct {
	// Timeout bounds every wait in the flow.
	Timeout      time.Duration
	PollInterval time.Duration
	Checkout     CheckoutPolicy
	Contacts     *ContactGenerator
	Logger       logr.Logger
}

// Runner performs flow steps against one browser session.
type Runner struct {
	driver   browser.Driver
	timeout  time.Duration
	interval time.Duration
	checkout CheckoutPolicy
	contacts *ContactGenerator
	logger   logr.Logger
}

func NewRunner(d browser.Driver, opts Options) *Runner {
	r := &Runner{
		driver:   d,
		timeout:  opts.Timeout,
		interval: opts.PollInterval,
		checkout: opts.Checkout,
		contacts: opts.Contacts,
		logger:   opts.Logger,
	}
	if r.timeout <= 0 {
		r.timeout = DefaultTimeout
	}
	if r.interval <= 0 {
		r.interval = DefaultPollInterval
	}
	if r.checkout == "" {
		r.checkout = CheckoutStrict
	}
	if r.contacts == nil {
		r.contacts = NewContactGenerator(nil)
	}
	if r.logger.GetSink() == nil {
		r.logger = logr.Discard()
	}
	return r
}

func (r *Runner) Open(ctx context.Context, url string) error {
	r.logger.Info("opening page", "url", url)
	if err := r.driver.Navigate(ctx, url); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrNavigation, url, err)
	}
	return nil
}

func (r *Runner) TypeInto(ctx context.Context, loc browser.Locator, text string) error {
	if err := r.waitPresent(ctx, loc); err != nil {
		return err
	}
	if err := r.driver.SendKeys(ctx, loc, text); err != nil {
		return fmt.Errorf("typing into %s: %w", loc, err)
	}
	return nil
}

func (r *Runner) WaitAndClick(ctx context.Context, loc browser.Locator) error {
	err := r.poll(ctx, func(ctx context.Context) (bool, error) {
		ok, err := r.driver.Clickable(ctx, loc)
		r.logger.V(1).Info("clickable probe", "locator", loc.String(), "clickable", ok)
		return ok, err
	})
	if err != nil {
		return r.waitErr(ctx, err, ErrTimeout, loc.String())
	}
	if err := r.driver.Click(ctx, loc); err != nil {
		return fmt.Errorf("clicking %s: %w", loc, err)
	}
	return nil
}

func (r *Runner) SwitchToNewestWindow(ctx context.Context) error {
	handles, err := r.driver.Windows(ctx)
	if err != nil {
		return fmt.Errorf("listing windows: %w", err)
	}
	if len(handles) < 2 {
		return fmt.Errorf("%w: %d window(s) open", ErrNoWindow, len(handles))
	}
	newest := handles[len(handles)-1]
	if err := r.driver.SwitchWindow(ctx, newest); err != nil {
		return fmt.Errorf("switching to window %s: %w", newest, err)
	}
	r.logger.Info("switched window", "handle", newest)
	return nil
}

// PickFirstSuggestion waits for the suggestion list to show up and clicks
// its first entry.
func (r *Runner) PickFirstSuggestion(ctx context.Context, loc browser.Locator) error {
	if err := r.waitPresent(ctx, loc); err != nil {
		return err
	}
	return r.WaitAndClick(ctx, loc)
}

func (r *Runner) ApplyFilter(ctx context.Context, name string, loc browser.Locator) error {
	r.logger.Info("applying filter", "filter", name)
	return r.WaitAndClick(ctx, loc)
}

// SelectResult opens a search result, which the site opens in a new window,
// and moves to that window.
func (r *Runner) SelectResult(ctx context.Context, loc browser.Locator) error {
	before, err := r.driver.Windows(ctx)
	if err != nil {
		return fmt.Errorf("listing windows: %w", err)
	}
	if err := r.WaitAndClick(ctx, loc); err != nil {
		return err
	}
	err = r.poll(ctx, func(ctx context.Context) (bool, error) {
		handles, err := r.driver.Windows(ctx)
		return len(handles) > len(before), err
	})
	if err != nil {
		return r.waitErr(ctx, err, ErrNoWindow, "new window")
	}
	return r.SwitchToNewestWindow(ctx)
}

// CheckoutLocators are the controls RunCheckout works through.
type CheckoutLocators struct {
	Checkout     browser.Locator
	PlaceOrder   browser.Locator
	ContactField browser.Locator
}

// RunCheckout clicks through checkout and place-order, then types a generated
// email into the contact field, clears it, and types a generated phone
// number. It returns the contact that was used.
func (r *Runner) RunCheckout(ctx context.Context, loc CheckoutLocators) (Contact, error) {
	err := r.WaitAndClick(ctx, loc.Checkout)
	if err == nil {
		err = r.WaitAndClick(ctx, loc.PlaceOrder)
	}
	if err != nil {
		if !errors.Is(err, ErrTimeout) || r.checkout != CheckoutLenient {
			return Contact{}, err
		}
		r.logger.Error(err, "checkout controls never became clickable, continuing", "policy", string(r.checkout))
	}

	contact := r.contacts.Next()
	if err := r.fillContact(ctx, loc.ContactField, contact); err != nil {
		return Contact{}, err
	}
	return contact, nil
}

func (r *Runner) fillContact(ctx context.Context, field browser.Locator, c Contact) error {
	if err := r.waitPresent(ctx, field); err != nil {
		return err
	}
	if err := r.driver.Click(ctx, field); err != nil {
		return fmt.Errorf("clicking %s: %w", field, err)
	}
	if err := r.driver.SendKeys(ctx, field, c.Email); err != nil {
		return fmt.Errorf("typing email into %s: %w", field, err)
	}
	if err := r.waitValue(ctx, field, c.Email); err != nil {
		return err
	}
	if err := r.driver.Clear(ctx, field); err != nil {
		return fmt.Errorf("clearing %s: %w", field, err)
	}
	if err := r.waitValue(ctx, field, ""); err != nil {
		return err
	}
	if err := r.driver.SendKeys(ctx, field, c.Phone); err != nil {
		return fmt.Errorf("typing phone into %s: %w", field, err)
	}
	return nil
}

func (r *Runner) waitPresent(ctx context.Context, loc browser.Locator) error {
	err := r.poll(ctx, func(ctx context.Context) (bool, error) {
		ok, err := r.driver.Locate(ctx, loc)
		r.logger.V(1).Info("presence probe", "locator", loc.String(), "present", ok)
		return ok, err
	})
	if err != nil {
		return r.waitErr(ctx, err, ErrElementNotFound, loc.String())
	}
	return nil
}

// waitValue waits for the field to reflect want, so the next keystrokes do
// not race the page's own input handling.
func (r *Runner) waitValue(ctx context.Context, loc browser.Locator, want string) error {
	err := r.poll(ctx, func(ctx context.Context) (bool, error) {
		got, err := r.driver.Value(ctx, loc)
		return got == want, err
	})
	if err != nil {
		return r.waitErr(ctx, err, ErrTimeout, fmt.Sprintf("%s to hold %q", loc, want))
	}
	return nil
}

func (r *Runner) poll(ctx context.Context, cond func(context.Context) (bool, error)) error {
	return poll(ctx, r.timeout, r.interval, cond)
}

// waitErr turns a failed wait into the run's error. The caller's own
// cancellation or deadline is kept, an exhausted bound becomes sentinel and
// anything else is a driver failure.
func (r *Runner) waitErr(ctx context.Context, err, sentinel error, what string) error {
	if ctx.Err() != nil {
		return fmt.Errorf("waiting for %s: %w", what, ctx.Err())
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %s after %s", sentinel, what, r.timeout)
	}
	return fmt.Errorf("waiting for %s: %w", what, err)
}

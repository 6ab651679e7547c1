package browser

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/playwright-community/playwright-go"
)

var _ Driver = (*Manager)(nil)

// Manager drives Chromium through playwright. Pages of its single browser
// context are its windows.
type Manager struct {
	pw      *playwright.Playwright
	Browser playwright.Browser
	Context playwright.BrowserContext
	Page    playwright.Page

	opts    Options
	handles map[playwright.Page]string
	order   []playwright.Page

	closeOnce sync.Once
	closeErr  error
}

func NewManager(opts Options) (*Manager, error) {
	if err := playwright.Install(&playwright.RunOptions{Browsers: []string{"chromium"}}); err != nil {
		return nil, fmt.Errorf("install pw failed: %w", err)
	}

	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("start pw failed: %w", err)
	}

	b, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(opts.Headless),
		Args: []string{
			"--start-maximized",
			"--disable-blink-features=AutomationControlled",
		},
	})
	if err != nil {
		_ = pw.Stop()
		return nil, fmt.Errorf("launch chromium failed: %w", err)
	}

	// NoViewport lets the maximized window decide the page size
	bctx, err := b.NewContext(playwright.BrowserNewContextOptions{
		NoViewport: playwright.Bool(true),
	})
	if err != nil {
		_ = b.Close()
		_ = pw.Stop()
		return nil, fmt.Errorf("new context failed: %w", err)
	}

	page, err := bctx.NewPage()
	if err != nil {
		_ = bctx.Close()
		_ = b.Close()
		_ = pw.Stop()
		return nil, fmt.Errorf("failed to create page: %w", err)
	}

	timeout := float64(opts.actionTimeout().Milliseconds())
	page.SetDefaultTimeout(timeout)
	page.SetDefaultNavigationTimeout(timeout)

	m := &Manager{
		pw:      pw,
		Browser: b,
		Context: bctx,
		Page:    page,
		opts:    opts,
		handles: make(map[playwright.Page]string),
	}
	m.track(page)
	return m, nil
}

func (m *Manager) Navigate(ctx context.Context, url string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	resp, err := m.Page.Goto(url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		Timeout:   playwright.Float(budget(ctx, m.opts.actionTimeout())),
	})
	if err != nil {
		return err
	}
	if resp != nil && !resp.Ok() {
		return fmt.Errorf("%s responded with status %d", url, resp.Status())
	}
	return nil
}

func (m *Manager) Locate(ctx context.Context, loc Locator) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	n, err := m.Page.Locator(loc.Selector()).Count()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (m *Manager) Clickable(ctx context.Context, loc Locator) (bool, error) {
	found, err := m.Locate(ctx, loc)
	if err != nil || !found {
		return false, err
	}
	first := m.Page.Locator(loc.Selector()).First()
	visible, err := first.IsVisible()
	if err != nil || !visible {
		return false, err
	}
	enabled, err := first.IsEnabled(playwright.LocatorIsEnabledOptions{
		Timeout: playwright.Float(budget(ctx, m.opts.actionTimeout())),
	})
	return enabled, probeErr(err)
}

func (m *Manager) Click(ctx context.Context, loc Locator) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return m.Page.Locator(loc.Selector()).First().Click(playwright.LocatorClickOptions{
		Timeout: playwright.Float(budget(ctx, m.opts.actionTimeout())),
	})
}

func (m *Manager) SendKeys(ctx context.Context, loc Locator, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return m.Page.Locator(loc.Selector()).First().PressSequentially(text, playwright.LocatorPressSequentiallyOptions{
		Timeout: playwright.Float(budget(ctx, m.opts.actionTimeout())),
	})
}

func (m *Manager) Clear(ctx context.Context, loc Locator) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return m.Page.Locator(loc.Selector()).First().Clear(playwright.LocatorClearOptions{
		Timeout: playwright.Float(budget(ctx, m.opts.actionTimeout())),
	})
}

func (m *Manager) Value(ctx context.Context, loc Locator) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	v, err := m.Page.Locator(loc.Selector()).First().InputValue(playwright.LocatorInputValueOptions{
		Timeout: playwright.Float(budget(ctx, m.opts.actionTimeout())),
	})
	return v, probeErr(err)
}

func (m *Manager) Windows(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, p := range m.Context.Pages() {
		m.track(p)
	}
	handles := make([]string, 0, len(m.order))
	for _, p := range m.order {
		if p.IsClosed() {
			continue
		}
		handles = append(handles, m.handles[p])
	}
	return handles, nil
}

func (m *Manager) SwitchWindow(ctx context.Context, handle string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	for _, p := range m.order {
		if m.handles[p] != handle || p.IsClosed() {
			continue
		}
		if err := p.BringToFront(); err != nil {
			return fmt.Errorf("bring %s to front: %w", handle, err)
		}
		m.Page = p
		return nil
	}
	return fmt.Errorf("unknown window %q", handle)
}

// Close releases the context, the browser and the playwright driver. Only
// the first call does any work.
func (m *Manager) Close() error {
	m.closeOnce.Do(func() {
		var errs []error
		if m.Context != nil {
			errs = append(errs, m.Context.Close())
		}
		if m.Browser != nil {
			errs = append(errs, m.Browser.Close())
		}
		if m.pw != nil {
			errs = append(errs, m.pw.Stop())
		}
		m.closeErr = errors.Join(errs...)
	})
	return m.closeErr
}

// track assigns p a handle the first time it is seen, so handle order
// follows open order.
func (m *Manager) track(p playwright.Page) {
	if _, ok := m.handles[p]; ok {
		return
	}
	m.handles[p] = fmt.Sprintf("page-%d", len(m.order)+1)
	m.order = append(m.order, p)
}

// probeErr reports a playwright timeout as context.DeadlineExceeded, since
// the probe budget is the caller's remaining deadline.
func probeErr(err error) error {
	if errors.Is(err, playwright.ErrTimeout) {
		return fmt.Errorf("%w: %w", context.DeadlineExceeded, err)
	}
	return err
}

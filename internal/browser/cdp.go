package browser

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/cdproto/dom"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/cdproto/runtime"
	"github.com/chromedp/cdproto/target"
	"github.com/chromedp/chromedp"
)

var _ Driver = (*CDPSession)(nil)

// clickableScript runs with `this` bound to the candidate element.
const clickableScript = `function() {
	const rect = this.getBoundingClientRect();
	const style = window.getComputedStyle(this);
	return rect.width > 0 && rect.height > 0 &&
		style.visibility !== 'hidden' &&
		style.display !== 'none' &&
		!this.disabled &&
		this.getAttribute('aria-disabled') !== 'true';
}`

// CDPSession drives Chrome over the DevTools protocol. Page targets are its
// windows.
type CDPSession struct {
	// Ctx is the chromedp context of the active tab.
	Ctx context.Context

	browserCtx  context.Context
	allocCancel context.CancelFunc
	cancels     []context.CancelFunc

	opts  Options
	order []target.ID

	closeOnce sync.Once
	closeErr  error
}

func NewCDPSession(opts Options) (*CDPSession, error) {
	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", opts.Headless),
		chromedp.Flag("start-maximized", true),
		chromedp.Flag("disable-blink-features", "AutomationControlled"),
	)
	allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(), allocOpts...)

	ctx, cancel := chromedp.NewContext(allocCtx)
	// first Run starts the browser and attaches to its initial tab
	if err := chromedp.Run(ctx); err != nil {
		cancel()
		allocCancel()
		return nil, fmt.Errorf("start chrome failed: %w", err)
	}

	s := &CDPSession{
		Ctx:         ctx,
		browserCtx:  ctx,
		allocCancel: allocCancel,
		cancels:     []context.CancelFunc{cancel},
		opts:        opts,
	}
	if c := chromedp.FromContext(ctx); c != nil && c.Target != nil {
		s.order = append(s.order, c.Target.TargetID)
	}
	return s, nil
}

// scope bounds the active tab context by the caller's deadline and
// cancellation.
func (s *CDPSession) scope(ctx context.Context) (context.Context, context.CancelFunc, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	d := s.opts.actionTimeout()
	if deadline, ok := ctx.Deadline(); ok {
		d = time.Until(deadline)
	}
	runCtx, cancel := context.WithTimeout(s.Ctx, d)
	stop := context.AfterFunc(ctx, cancel)
	return runCtx, func() { stop(); cancel() }, nil
}

func (s *CDPSession) run(ctx context.Context, actions ...chromedp.Action) error {
	runCtx, cancel, err := s.scope(ctx)
	if err != nil {
		return err
	}
	defer cancel()
	return chromedp.Run(runCtx, actions...)
}

func (s *CDPSession) Navigate(ctx context.Context, url string) error {
	return s.run(ctx, chromedp.Navigate(url))
}

func (s *CDPSession) Locate(ctx context.Context, loc Locator) (bool, error) {
	sel, by := loc.Query()
	var nodes []*cdp.Node
	if err := s.run(ctx, chromedp.Nodes(sel, &nodes, by, chromedp.AtLeast(0))); err != nil {
		return false, err
	}
	return len(nodes) > 0, nil
}

func (s *CDPSession) Clickable(ctx context.Context, loc Locator) (bool, error) {
	sel, by := loc.Query()
	var (
		nodes     []*cdp.Node
		clickable bool
	)
	err := s.run(ctx,
		chromedp.Nodes(sel, &nodes, by, chromedp.AtLeast(0)),
		chromedp.ActionFunc(func(ctx context.Context) error {
			if len(nodes) == 0 {
				return nil
			}
			obj, err := dom.ResolveNode().
				WithBackendNodeID(nodes[0].BackendNodeID).
				Do(ctx)
			if err != nil {
				return fmt.Errorf("resolve node failed: %w", err)
			}
			if obj == nil || obj.ObjectID == "" {
				// detached between query and resolve
				return nil
			}
			res, exc, err := runtime.CallFunctionOn(clickableScript).
				WithObjectID(obj.ObjectID).
				WithReturnByValue(true).
				Do(ctx)
			if err != nil {
				return err
			}
			if exc != nil {
				return fmt.Errorf("clickable probe: %s", exc.Text)
			}
			clickable = res != nil && string(res.Value) == "true"
			return nil
		}),
	)
	return clickable, err
}

func (s *CDPSession) Click(ctx context.Context, loc Locator) error {
	sel, by := loc.Query()
	return s.run(ctx, chromedp.Click(sel, by, chromedp.NodeVisible))
}

func (s *CDPSession) SendKeys(ctx context.Context, loc Locator, text string) error {
	sel, by := loc.Query()
	return s.run(ctx, chromedp.SendKeys(sel, text, by))
}

func (s *CDPSession) Clear(ctx context.Context, loc Locator) error {
	sel, by := loc.Query()
	return s.run(ctx, chromedp.Clear(sel, by))
}

func (s *CDPSession) Value(ctx context.Context, loc Locator) (string, error) {
	sel, by := loc.Query()
	var v string
	if err := s.run(ctx, chromedp.Value(sel, &v, by)); err != nil {
		return "", err
	}
	return v, nil
}

func (s *CDPSession) Windows(ctx context.Context) ([]string, error) {
	runCtx, cancel, err := s.scope(ctx)
	if err != nil {
		return nil, err
	}
	defer cancel()

	infos, err := chromedp.Targets(runCtx)
	if err != nil {
		return nil, fmt.Errorf("list targets: %w", err)
	}
	open := make(map[target.ID]bool, len(infos))
	for _, info := range infos {
		if info.Type != "page" {
			continue
		}
		open[info.TargetID] = true
		if !slices.Contains(s.order, info.TargetID) {
			s.order = append(s.order, info.TargetID)
		}
	}
	handles := make([]string, 0, len(open))
	for _, id := range s.order {
		if open[id] {
			handles = append(handles, string(id))
		}
	}
	return handles, nil
}

func (s *CDPSession) SwitchWindow(ctx context.Context, handle string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	tabCtx, cancel := chromedp.NewContext(s.browserCtx, chromedp.WithTargetID(target.ID(handle)))
	// attach with the unbounded context; a timeout ctx here would own the tab
	if err := chromedp.Run(tabCtx); err != nil {
		cancel()
		return fmt.Errorf("attach to %s: %w", handle, err)
	}
	prev := s.Ctx
	s.Ctx = tabCtx
	if err := s.run(ctx, page.BringToFront()); err != nil {
		s.Ctx = prev
		cancel()
		return fmt.Errorf("switch to %s: %w", handle, err)
	}
	s.cancels = append(s.cancels, cancel)
	return nil
}

// Close shuts the browser down. Only the first call does any work.
func (s *CDPSession) Close() error {
	s.closeOnce.Do(func() {
		// graceful browser close before the contexts go away
		s.closeErr = chromedp.Cancel(s.browserCtx)
		for i := len(s.cancels) - 1; i >= 0; i-- {
			s.cancels[i]()
		}
		s.allocCancel()
	})
	return s.closeErr
}

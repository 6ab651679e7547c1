package browser

import (
	"context"
	"fmt"

	"github.com/chromedp/chromedp"
)

// PageSnapshot is what is known about the active window at one moment. It is
// taken when a step fails so the log says where the browser actually was.
type PageSnapshot struct {
	URL   string
	Title string
}

func (s *PageSnapshot) String() string {
	if s == nil {
		return "<no snapshot>"
	}
	return fmt.Sprintf("%q (%s)", s.Title, s.URL)
}

func (m *Manager) Snapshot(ctx context.Context) (*PageSnapshot, error) {
	if m == nil || m.Page == nil {
		return nil, fmt.Errorf("page is not initialized")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	title, err := m.Page.Title()
	if err != nil {
		return nil, fmt.Errorf("read title: %w", err)
	}
	return &PageSnapshot{URL: m.Page.URL(), Title: title}, nil
}

func (s *CDPSession) Snapshot(ctx context.Context) (*PageSnapshot, error) {
	if s == nil || s.Ctx == nil {
		return nil, fmt.Errorf("tab is not initialized")
	}
	var snap PageSnapshot
	if err := s.run(ctx, chromedp.Location(&snap.URL), chromedp.Title(&snap.Title)); err != nil {
		return nil, err
	}
	return &snap, nil
}

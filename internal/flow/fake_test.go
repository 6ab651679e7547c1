package flow

import (
	"context"
	"fmt"

	"github.com/nbenliogludev/go-checkout-flow/internal/browser"
)

// fakePage is an in-memory page: elements exist once added, inputs keep what
// is typed into them.
type fakePage struct {
	url       string
	present   map[browser.Locator]bool
	clickable map[browser.Locator]bool
	values    map[browser.Locator]string
	windows   []string
	active    string
	closed    int

	// opens maps a locator to the window a click on it opens
	opens map[browser.Locator]string
}

var _ browser.Driver = (*fakePage)(nil)

func newFakePage(locs ...browser.Locator) *fakePage {
	p := &fakePage{
		present:   make(map[browser.Locator]bool),
		clickable: make(map[browser.Locator]bool),
		values:    make(map[browser.Locator]string),
		opens:     make(map[browser.Locator]string),
		windows:   []string{"main"},
		active:    "main",
	}
	for _, l := range locs {
		p.present[l] = true
	}
	return p
}

func (p *fakePage) Navigate(_ context.Context, url string) error {
	p.url = url
	return nil
}

func (p *fakePage) Locate(_ context.Context, loc browser.Locator) (bool, error) {
	return p.present[loc], nil
}

func (p *fakePage) Clickable(_ context.Context, loc browser.Locator) (bool, error) {
	return p.present[loc] && p.clickable[loc], nil
}

func (p *fakePage) Click(_ context.Context, loc browser.Locator) error {
	if !p.present[loc] {
		return fmt.Errorf("no element %s", loc)
	}
	if w, ok := p.opens[loc]; ok {
		p.windows = append(p.windows, w)
	}
	return nil
}

func (p *fakePage) SendKeys(_ context.Context, loc browser.Locator, text string) error {
	if !p.present[loc] {
		return fmt.Errorf("no element %s", loc)
	}
	p.values[loc] += text
	return nil
}

func (p *fakePage) Clear(_ context.Context, loc browser.Locator) error {
	p.values[loc] = ""
	return nil
}

func (p *fakePage) Value(_ context.Context, loc browser.Locator) (string, error) {
	return p.values[loc], nil
}

func (p *fakePage) Windows(context.Context) ([]string, error) {
	return append([]string(nil), p.windows...), nil
}

func (p *fakePage) SwitchWindow(_ context.Context, handle string) error {
	p.active = handle
	return nil
}

func (p *fakePage) Snapshot(context.Context) (*browser.PageSnapshot, error) {
	return &browser.PageSnapshot{URL: p.url, Title: "fake"}, nil
}

func (p *fakePage) Close() error {
	p.closed++
	return nil
}

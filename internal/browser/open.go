package browser

import "fmt"

// Backend names a Driver implementation.
type Backend string

const (
	Playwright Backend = "playwright"
	Chromedp   Backend = "chromedp"
)

// Open starts a browser on the given backend.
func Open(backend Backend, opts Options) (Driver, error) {
	switch backend {
	case Playwright, "":
		m, err := NewManager(opts)
		if err != nil {
			return nil, err
		}
		return m, nil
	case Chromedp:
		s, err := NewCDPSession(opts)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown browser backend: %q", backend)
	}
}

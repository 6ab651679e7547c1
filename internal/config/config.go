package config

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/nbenliogludev/go-checkout-flow/internal/browser"
	"github.com/nbenliogludev/go-checkout-flow/internal/flow"
)

// Config holds everything a flow run needs from the outside world.
type Config struct {
	URL          string
	SearchTerm   string
	FilterName   string
	Timeout      time.Duration
	PollInterval time.Duration
	Backend      string
	Headless     bool
	Checkout     string
}

// Load reads FLOW_* variables through getenv, falling back to the defaults of
// the stock scenario.
func Load(getenv func(string) string) (*Config, error) {
	def := flow.DefaultScenario()
	cfg := &Config{
		URL:          orDefault(getenv("FLOW_URL"), def.URL),
		SearchTerm:   orDefault(getenv("FLOW_SEARCH_TERM"), def.SearchTerm),
		FilterName:   orDefault(getenv("FLOW_FILTER"), def.FilterName),
		Timeout:      flow.DefaultTimeout,
		PollInterval: flow.DefaultPollInterval,
		Backend:      orDefault(getenv("FLOW_BACKEND"), string(browser.Playwright)),
		Checkout:     orDefault(getenv("FLOW_CHECKOUT_POLICY"), string(flow.CheckoutStrict)),
	}

	var err error
	if v := getenv("FLOW_TIMEOUT"); v != "" {
		if cfg.Timeout, err = time.ParseDuration(v); err != nil {
			return nil, fmt.Errorf("parsing FLOW_TIMEOUT: %w", err)
		}
	}
	if v := getenv("FLOW_POLL_INTERVAL"); v != "" {
		if cfg.PollInterval, err = time.ParseDuration(v); err != nil {
			return nil, fmt.Errorf("parsing FLOW_POLL_INTERVAL: %w", err)
		}
	}
	if v := getenv("FLOW_HEADLESS"); v != "" {
		if cfg.Headless, err = strconv.ParseBool(v); err != nil {
			return nil, fmt.Errorf("parsing FLOW_HEADLESS: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the config is runnable. Call it again after flags have
// overridden fields.
func (c *Config) Validate() error {
	u, err := url.Parse(c.URL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("URL must be an absolute http(s) URL, got %q", c.URL)
	}
	if c.SearchTerm == "" {
		return fmt.Errorf("search term is required")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}
	if c.PollInterval <= 0 || c.PollInterval > c.Timeout {
		return fmt.Errorf("poll interval must be in (0, %s], got %s", c.Timeout, c.PollInterval)
	}
	switch browser.Backend(c.Backend) {
	case browser.Playwright, browser.Chromedp:
	default:
		return fmt.Errorf("unknown backend %q: want %s or %s", c.Backend, browser.Playwright, browser.Chromedp)
	}
	if !flow.CheckoutPolicy(c.Checkout).Valid() {
		return fmt.Errorf("unknown checkout policy %q: want %s or %s", c.Checkout, flow.CheckoutStrict, flow.CheckoutLenient)
	}
	return nil
}

// Scenario is the stock scenario with this config's URL, search term and
// filter name.
func (c *Config) Scenario() flow.Scenario {
	s := flow.DefaultScenario()
	s.URL = c.URL
	s.SearchTerm = c.SearchTerm
	s.FilterName = c.FilterName
	return s
}

func (c *Config) BrowserOptions() browser.Options {
	return browser.Options{Headless: c.Headless}
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

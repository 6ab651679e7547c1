package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/nbenliogludev/go-checkout-flow/internal/browser"
	"github.com/nbenliogludev/go-checkout-flow/internal/config"
	"github.com/nbenliogludev/go-checkout-flow/internal/flow"
	"github.com/nbenliogludev/go-checkout-flow/internal/logr"
)

var version = "0.1.0"

func runFlags(cfg *config.Config) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "url", Usage: "Storefront start URL", Value: cfg.URL, Destination: &cfg.URL},
		&cli.StringFlag{Name: "search", Usage: "Term typed into the search box", Value: cfg.SearchTerm, Destination: &cfg.SearchTerm},
		&cli.StringFlag{Name: "filter", Usage: "Name of the filter applied to results", Value: cfg.FilterName, Destination: &cfg.FilterName},
		&cli.DurationFlag{Name: "timeout", Usage: "Bound on every wait in the flow", Value: cfg.Timeout, Destination: &cfg.Timeout},
		&cli.DurationFlag{Name: "poll-interval", Usage: "Delay between readiness probes", Value: cfg.PollInterval, Destination: &cfg.PollInterval},
		&cli.StringFlag{Name: "backend", Usage: "Browser driver: playwright or chromedp", Value: cfg.Backend, Destination: &cfg.Backend},
		&cli.BoolFlag{Name: "headless", Usage: "Run the browser without a window", Value: cfg.Headless, Destination: &cfg.Headless},
		&cli.StringFlag{Name: "checkout-policy", Usage: "On checkout timeouts: strict fails, lenient logs and continues", Value: cfg.Checkout, Destination: &cfg.Checkout},
	}
}

// RunCommand drives the shop flow once against a live browser.
func RunCommand(cfg *config.Config) *cli.Command {
	logCfg := &logr.Config{}
	return &cli.Command{
		Name:  "run",
		Usage: "Search, filter, select and check out in a real browser",
		Flags: append(runFlags(cfg), logr.Flags(logCfg)...),
		Action: func(c *cli.Context) error {
			if err := cfg.Validate(); err != nil {
				return err
			}
			logger, err := logr.New(logCfg)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
			defer stop()

			open := func(context.Context) (browser.Driver, error) {
				return browser.Open(browser.Backend(cfg.Backend), cfg.BrowserOptions())
			}
			opts := flow.Options{
				Timeout:      cfg.Timeout,
				PollInterval: cfg.PollInterval,
				Checkout:     flow.CheckoutPolicy(cfg.Checkout),
				Logger:       logger.WithValues("backend", cfg.Backend),
			}
			plan := flow.ShopPlan(cfg.Scenario())
			return flow.WithSession(ctx, open, opts, plan.Run)
		},
	}
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables")
	}

	cfg, err := config.Load(os.Getenv)
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	app := &cli.App{
		Name:    "flow-cli",
		Usage:   "Scripted storefront checkout flow",
		Version: version,
		Commands: []*cli.Command{
			RunCommand(cfg),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

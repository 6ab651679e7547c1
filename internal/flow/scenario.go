package flow

import (
	"context"

	"github.com/nbenliogludev/go-checkout-flow/internal/browser"
)

// Scenario is the data a shop flow runs on: where to go, what to search for,
// and how to find each control on the way to checkout.
type Scenario struct {
	URL        string
	SearchTerm string
	FilterName string

	SearchBox  browser.Locator
	Suggestion browser.Locator
	Filter     browser.Locator
	Product    browser.Locator
	Checkout   CheckoutLocators
}

// DefaultScenario targets the Flipkart storefront.
func DefaultScenario() Scenario {
	return Scenario{
		URL:        "https://www.flipkart.com",
		SearchTerm: "ipad",
		FilterName: "Online Only",
		SearchBox:  browser.Name("q"),
		Suggestion: browser.XPath("//li[@class='_3D0G9a']"),
		Filter:     browser.XPath("//div[contains(text(),'Brand') and @class='_2gmUFU _3V8rao']"),
		Product:    browser.Class("_4rR01T"),
		Checkout: CheckoutLocators{
			Checkout:     browser.XPath("//button[@class='_2KpZ6l _2U9uOA _3v1-ww']"),
			PlaceOrder:   browser.XPath("//span[contains(text(),'Place Order')]"),
			ContactField: browser.XPath("//input[@class='_2IX_2- _17N0em']"),
		},
	}
}

// ShopPlan is search, pick suggestion, filter, select, checkout.
func ShopPlan(s Scenario) Plan {
	return Plan{
		{Name: "open", Run: func(ctx context.Context, r *Runner) error {
			return r.Open(ctx, s.URL)
		}},
		{Name: "search", Run: func(ctx context.Context, r *Runner) error {
			return r.TypeInto(ctx, s.SearchBox, s.SearchTerm)
		}},
		{Name: "pick-suggestion", Run: func(ctx context.Context, r *Runner) error {
			return r.PickFirstSuggestion(ctx, s.Suggestion)
		}},
		{Name: "apply-filter", Run: func(ctx context.Context, r *Runner) error {
			return r.ApplyFilter(ctx, s.FilterName, s.Filter)
		}},
		{Name: "select-result", Run: func(ctx context.Context, r *Runner) error {
			return r.SelectResult(ctx, s.Product)
		}},
		{Name: "checkout", Run: func(ctx context.Context, r *Runner) error {
			contact, err := r.RunCheckout(ctx, s.Checkout)
			if err != nil {
				return err
			}
			r.logger.Info("contact entered", "email", contact.Email, "phone", contact.Phone)
			return nil
		}},
	}
}

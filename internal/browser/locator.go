package browser

import (
	"fmt"
	"strings"

	"github.com/chromedp/chromedp"
)

// Strategy is how a Locator picks elements out of the page.
type Strategy string

const (
	ByName  Strategy = "name"
	ByClass Strategy = "class"
	ByXPath Strategy = "xpath"
	ByCSS   Strategy = "css"
)

// Locator identifies a UI element. Locators are plain values; build a fresh
// one per step.
type Locator struct {
	By     Strategy
	Target string
}

func Name(name string) Locator   { return Locator{By: ByName, Target: name} }
func Class(class string) Locator { return Locator{By: ByClass, Target: class} }
func XPath(expr string) Locator  { return Locator{By: ByXPath, Target: expr} }
func CSS(sel string) Locator     { return Locator{By: ByCSS, Target: sel} }

func (l Locator) String() string {
	return fmt.Sprintf("%s=%s", l.By, l.Target)
}

// Selector renders the locator in playwright's selector syntax.
func (l Locator) Selector() string {
	switch l.By {
	case ByName:
		return fmt.Sprintf(`[name=%q]`, l.Target)
	case ByClass:
		return classSelector(l.Target)
	case ByXPath:
		return "xpath=" + l.Target
	default:
		return l.Target
	}
}

// Query renders the locator as a chromedp selector plus the query option that
// goes with it.
func (l Locator) Query() (string, chromedp.QueryOption) {
	switch l.By {
	case ByName:
		return fmt.Sprintf(`[name=%q]`, l.Target), chromedp.ByQuery
	case ByClass:
		return classSelector(l.Target), chromedp.ByQuery
	case ByXPath:
		return l.Target, chromedp.BySearch
	default:
		return l.Target, chromedp.ByQuery
	}
}

// classSelector accepts a compound class attribute ("a b") the same way a
// single class name is accepted.
func classSelector(class string) string {
	fields := strings.Fields(class)
	if len(fields) == 0 {
		return "." + class
	}
	return "." + strings.Join(fields, ".")
}

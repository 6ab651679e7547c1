package browser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocator_Selector(t *testing.T) {
	tests := []struct {
		name string
		loc  Locator
		want string
	}{
		{"name", Name("q"), `[name="q"]`},
		{"class", Class("_4rR01T"), "._4rR01T"},
		{"compound class", Class("_2KpZ6l _2U9uOA"), "._2KpZ6l._2U9uOA"},
		{"xpath", XPath("//li[@class='a']"), "xpath=//li[@class='a']"},
		{"css", CSS("button.buy"), "button.buy"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.loc.Selector())
		})
	}
}

func TestLocator_Query(t *testing.T) {
	sel, _ := Name("q").Query()
	assert.Equal(t, `[name="q"]`, sel)

	sel, _ = XPath("//span[contains(text(),'Place Order')]").Query()
	assert.Equal(t, "//span[contains(text(),'Place Order')]", sel)

	// option funcs are not comparable; check they are set
	for _, loc := range []Locator{Name("q"), Class("c"), XPath("//a"), CSS("a")} {
		_, opt := loc.Query()
		assert.NotNil(t, opt, loc.String())
	}
}

func TestLocator_String(t *testing.T) {
	assert.Equal(t, "name=q", Name("q").String())
}

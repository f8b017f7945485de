package ui

import (
	"fmt"
	"strings"

	"storefront/cart"
	"storefront/price"
)

// Panel texts.
const (
	cartTitle      = "Your cart"
	emptyCartText  = "Your cart is empty."
	checkoutLabel  = "Continue to checkout"
	checkoutNotice = "Checkout is coming soon."
)

// CartPanel renders the cart. It never mutates the store; it only keeps the
// last Snapshot it was handed through Render.
type CartPanel struct {
	snap   cart.Snapshot
	open   bool
	cursor int
	notice string
}

// NewCartPanel returns a closed panel showing an empty cart.
func NewCartPanel() *CartPanel {
	return &CartPanel{snap: cart.Snapshot{Empty: true}}
}

// Render is the cart.Listener that keeps the panel in sync with the store.
func (p *CartPanel) Render(s cart.Snapshot) {
	p.snap = s
	if p.cursor >= len(s.Items) {
		p.cursor = len(s.Items) - 1
	}
	if p.cursor < 0 {
		p.cursor = 0
	}
}

// Badge is the label of the cart trigger: "Cart" or "Cart (n)".
func (p *CartPanel) Badge() string {
	if n := p.snap.TotalQuantity; n > 0 {
		return fmt.Sprintf("Cart (%d)", n)
	}
	return "Cart"
}

// CheckoutEnabled reports whether the checkout button is active.
func (p *CartPanel) CheckoutEnabled() bool { return !p.snap.Empty }

func (p *CartPanel) Open() { p.open = true }

func (p *CartPanel) Close() {
	p.open = false
	p.notice = ""
}

func (p *CartPanel) IsOpen() bool { return p.open }

// Selected returns the name of the highlighted line.
func (p *CartPanel) Selected() (string, bool) {
	if p.cursor < 0 || p.cursor >= len(p.snap.Items) {
		return "", false
	}
	return p.snap.Items[p.cursor].Name, true
}

func (p *CartPanel) MoveCursor(delta int) {
	n := len(p.snap.Items)
	if n == 0 {
		return
	}
	p.cursor += delta
	if p.cursor < 0 {
		p.cursor = 0
	}
	if p.cursor >= n {
		p.cursor = n - 1
	}
}

// Checkout shows the placeholder notice; there is no payment flow.
func (p *CartPanel) Checkout() {
	if p.CheckoutEnabled() {
		p.notice = checkoutNotice
	}
}

// Notice is the current placeholder message, if any.
func (p *CartPanel) Notice() string { return p.notice }

func (p *CartPanel) clearNotice() { p.notice = "" }

// View draws the panel contents.
func (p *CartPanel) View(st Styles, f *price.Formatter) string {
	var b strings.Builder
	b.WriteString(st.Title.Render(cartTitle))
	b.WriteString("\n\n")

	if p.snap.Empty {
		b.WriteString(st.Empty.Render(emptyCartText))
		b.WriteString("\n")
	}
	for i, it := range p.snap.Items {
		marker := "  "
		name := it.Name
		if i == p.cursor {
			marker = "> "
			name = st.Selected.Render(name)
		}
		fmt.Fprintf(&b, "%s%s  %s\n", marker, name, f.Format(it.UnitPrice))
		fmt.Fprintf(&b, "    [-] %d [+]  = %s\n", it.Quantity, f.Format(it.Subtotal()))
	}

	b.WriteString("\n")
	b.WriteString(st.Total.Render(fmt.Sprintf("Total  %s", f.Format(p.snap.TotalPrice))))
	b.WriteString("\n")
	if p.CheckoutEnabled() {
		b.WriteString(st.Button.Render("[ " + checkoutLabel + " ]"))
	} else {
		b.WriteString(st.Disabled.Render("[ " + checkoutLabel + " ]"))
	}
	if p.notice != "" {
		b.WriteString("\n")
		b.WriteString(st.Notice.Render(p.notice))
	}
	return st.Panel.Render(b.String())
}

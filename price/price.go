// Package price converts between displayed price text and integer amounts in
// the smallest currency unit.
package price

import (
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Defaults match the shop's VND listing.
const (
	DefaultLocale = "vi"
	DefaultSymbol = "₫"
)

// Parse strips every non-digit from text and reads the rest as a base-10
// integer. Empty, digit-free or overflowing input yields 0.
func Parse(text string) int64 {
	var b strings.Builder
	for i := 0; i < len(text); i++ {
		if c := text[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}
	if b.Len() == 0 {
		return 0
	}
	n, err := strconv.ParseInt(b.String(), 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// Formatter renders amounts with locale digit grouping and a currency symbol.
type Formatter struct {
	printer *message.Printer
	symbol  string
}

// NewFormatter builds a Formatter. An unparsable locale falls back to
// DefaultLocale and an empty symbol to DefaultSymbol.
func NewFormatter(locale, symbol string) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil || locale == "" {
		tag = language.Vietnamese
	}
	if symbol == "" {
		symbol = DefaultSymbol
	}
	return &Formatter{printer: message.NewPrinter(tag), symbol: symbol}
}

// Format renders amount, e.g. 25000 -> "25.000 ₫" for the vi locale.
func (f *Formatter) Format(amount int64) string {
	return f.printer.Sprintf("%d %s", amount, f.symbol)
}

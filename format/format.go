// Package format renders calculation figures for display.
package format

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	DefaultSymbol     = "₹"
	DefaultLocale     = "en-IN"
	DefaultDateLayout = "1/2/2006"
)

// Formatter renders money in a single currency and dates in short form.
type Formatter struct {
	symbol     string
	dateLayout string
	printer    *message.Printer
}

// New builds a Formatter. Empty arguments fall back to the defaults and an
// unparseable locale falls back to DefaultLocale.
func New(symbol, locale, dateLayout string) *Formatter {
	if symbol == "" {
		symbol = DefaultSymbol
	}
	if dateLayout == "" {
		dateLayout = DefaultDateLayout
	}
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.MustParse(DefaultLocale)
	}
	return &Formatter{
		symbol:     symbol,
		dateLayout: dateLayout,
		printer:    message.NewPrinter(tag),
	}
}

// Default returns a Formatter with the default symbol, locale and layout.
func Default() *Formatter {
	return New("", "", "")
}

// Money formats v with exactly two decimals and the currency symbol.
func (f *Formatter) Money(v float64) string {
	if v < 0 {
		return "-" + f.symbol + f.Number(-v)
	}
	return f.symbol + f.Number(v)
}

// Number formats v with locale grouping and exactly two decimals.
func (f *Formatter) Number(v float64) string {
	return f.printer.Sprintf("%.2f", v)
}

// Date formats t in short form. The zero time renders as an empty string.
func (f *Formatter) Date(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(f.dateLayout)
}

func (f *Formatter) Symbol() string {
	return f.symbol
}

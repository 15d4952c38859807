// Package money formats amounts the way Indonesian receipts do: "Rp 12.345".
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.Indonesian)

// Whole formats d rounded to whole units with Indonesian digit grouping.
func Whole(d decimal.Decimal) string {
	return printer.Sprintf("%d", d.Round(0).IntPart())
}

// Rupiah is Whole with the currency prefix.
func Rupiah(d decimal.Decimal) string {
	return "Rp " + Whole(d)
}

// Qty formats a quantity with up to 3 decimals, trailing zeros dropped.
func Qty(d decimal.Decimal) string {
	return d.Round(3).String()
}

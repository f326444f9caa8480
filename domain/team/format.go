package team

import (
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var usPrinter = message.NewPrinter(language.AmericanEnglish)

// FormatCurrency renders an amount with a dollar prefix and US thousands
// grouping: 1234567 -> "$1,234,567", -100 -> "$-100".
func FormatCurrency(amount int64) string {
	return "$" + usPrinter.Sprintf("%d", amount)
}

// FormatCount renders a plain integer
func FormatCount(n int) string {
	return strconv.Itoa(n)
}

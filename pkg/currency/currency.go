package currency

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.Vietnamese)

// FormatVND renders a whole-VND amount in the vi-VN convention,
// e.g. 1500000 -> "1.500.000 ₫".
func FormatVND(amount int64) string {
	return printer.Sprintf("%d ₫", amount)
}

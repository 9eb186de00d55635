package assistant

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var usdPrinter = message.NewPrinter(language.English)

// usd renders a dollar figure with comma grouping, e.g. $25,100.00.
func usd(v float64) string {
	return usdPrinter.Sprintf("$%.2f", v)
}

package engine

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Amounts are whole currency units; human readable strings use the
// Vietnamese digit grouping the application displays everywhere.
var printer = message.NewPrinter(language.Vietnamese)

func formatAmount(d decimal.Decimal) string {
	return printer.Sprintf("%d", d.Round(0).IntPart())
}

package currency

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter は金額を通貨付きの表示文字列にする。
// 表示専用。計算は全部decimalで済ませてから渡すこと。
type Formatter struct {
	unit    currency.Unit
	printer *message.Printer
}

// DI。codeはISO 4217（USD/EUR/JPYなど）。
func NewFormatter(code string) (*Formatter, error) {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return nil, err
	}
	return &Formatter{
		unit:    unit,
		printer: message.NewPrinter(language.English),
	}, nil
}

func (f *Formatter) Format(amount decimal.Decimal) string {
	return f.printer.Sprintf("%v", currency.Symbol(f.unit.Amount(amount.InexactFloat64())))
}

func (f *Formatter) Code() string {
	return f.unit.String()
}

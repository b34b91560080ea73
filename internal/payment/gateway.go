package payment

import (
	"context"

	"github.com/shopspring/decimal"
)

// 決済の入力。カード情報はここを通るだけで、どこにも保存しない。
type Charge struct {
	CardNumber string
	ExpiryDate string
	CVV        string
	Name       string
	Amount     decimal.Decimal
}

type Receipt struct {
	TransactionID string
}

// 決済ゲートウェイの約束。失敗はそのままerrorで返す（メッセージはユーザー向け）。
type Gateway interface {
	Charge(ctx context.Context, c Charge) (Receipt, error)
}

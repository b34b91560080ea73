package model

import "github.com/shopspring/decimal"

// カートの明細
// 同一商品は行を増やさず quantity を加算する。idはカート内で一意。
type CartItem struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Image    string          `json:"image"`
	Quantity int64           `json:"quantity"`
}

// Subtotal は price × quantity。常に再計算して使う。
func (i CartItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(i.Quantity))
}

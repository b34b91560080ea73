package model

import "github.com/shopspring/decimal"

// カタログ商品（花卉）
// 静的データ。価格は基軸通貨の単価。
type Product struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
}

package model

// カード情報
// チェックアウト中だけメモリに保持する。ストアには絶対に書かない。
type PaymentDetails struct {
	CardNumber string `json:"-"`
	ExpiryDate string `json:"-"`
	CVV        string `json:"-"`
	NameOnCard string `json:"-"`
}

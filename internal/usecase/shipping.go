package usecase

import "github.com/shopspring/decimal"

type ShippingEstimate struct {
	Cost decimal.Decimal `json:"cost"`
	Days int             `json:"days"`
}

// EstimateShipping は郵便番号の先頭1桁だけで料金と日数を決める粗い見積り。
// しきい値（7より大・3未満）は既存挙動に合わせて固定。
// 先頭が数字でない・空の場合は基準値に落ちる。
func EstimateShipping(zipCode string) ShippingEstimate {
	first, hasDigit := firstDigit(zipCode)

	switch {
	case hasDigit && first > 7:
		return ShippingEstimate{Cost: decimal.RequireFromString("14.99"), Days: 5}
	case hasDigit && first < 3:
		return ShippingEstimate{Cost: decimal.RequireFromString("11.99"), Days: 4}
	default:
		return ShippingEstimate{Cost: decimal.RequireFromString("9.99"), Days: 3}
	}
}

func firstDigit(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	c := s[0]
	if c < '0' || c > '9' {
		return 0, false
	}
	return int(c - '0'), true
}

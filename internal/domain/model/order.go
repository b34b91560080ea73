package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// 注文
// 決済シミュレーション成功時にだけ作る。作成後は不変で、履歴に追記するのみ。
// items は注文確定時点のカートのスナップショット。
type Order struct {
	ID                string          `json:"id"`
	Items             []CartItem      `json:"items"`
	TotalPrice        decimal.Decimal `json:"total_price"`
	ShippingCost      decimal.Decimal `json:"shipping_cost"`
	Status            OrderStatus     `json:"status"`
	ShippingAddress   ShippingAddress `json:"shipping_address"`
	PaymentMethod     string          `json:"payment_method"`
	CreatedAt         time.Time       `json:"created_at"`
	ConfirmationCode  string          `json:"confirmation_code"`
	EstimatedDelivery time.Time       `json:"estimated_delivery"`
}

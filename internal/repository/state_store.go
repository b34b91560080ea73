package repository

import (
	"errors"

	"app/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// ストアのスロットキー（固定文字列）
const (
	SlotCart         = "cart"
	SlotAddress      = "shippingAddress"
	SlotOrderHistory = "orderHistory"
)

// セッション状態の永続化だけを約束。
// 各スロットはJSONひとかたまりの上書き保存（write-through、last-write-wins）。
// 読み出し失敗（スロット無し・壊れたJSON）はログだけ出して空デフォルトに倒す。
// エラーで落とさない。
type StateStore interface {
	LoadCart() []model.CartItem
	SaveCart(items []model.CartItem) error

	// 2番目の返り値は保存済みの住所が有ったかどうか
	LoadAddress() (model.ShippingAddress, bool)
	SaveAddress(addr model.ShippingAddress) error

	LoadOrders() []model.Order
	AppendOrder(o model.Order) error
}

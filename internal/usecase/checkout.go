package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"app/internal/domain/model"
	"app/internal/notify"
	"app/internal/payment"
)

// SetShippingAddress は住所を上書き保存する。検証は呼び出し側（画面）の責任。
func (u *CartUsecase) SetShippingAddress(addr model.ShippingAddress) {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.address = addr
	u.addressSet = true
	if err := u.store.SaveAddress(addr); err != nil {
		u.notifier.Notify(notify.KindError, "Failed to save shipping address")
	}
}

func (u *CartUsecase) SetPaymentMethod(tag string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.paymentMethod = tag
}

// カード情報はメモリだけ。storeには書かない。
func (u *CartUsecase) SetPaymentDetails(details model.PaymentDetails) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.paymentDetails = details
	u.paymentDetailsSet = true
}

// SetCheckoutStep は範囲チェックしない（範囲内で呼ぶのが前提条件）。
func (u *CartUsecase) SetCheckoutStep(step int) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.checkoutStep = step
}

// CalculateShippingCost は見積りを取ってチェックアウト状態に保持する。
func (u *CartUsecase) CalculateShippingCost(zipCode string) ShippingEstimate {
	est := EstimateShipping(zipCode)

	u.mu.Lock()
	defer u.mu.Unlock()
	u.shippingCost = est.Cost
	u.estimatedDeliveryDays = est.Days
	return est
}

// ProcessCheckout は唯一の非同期処理。
// 前提：住所とカード情報が設定済み。欠けていれば何もせず通知だけ出す。
// 成功時：配達予定日を計算→注文を作成→履歴に追記→カートを空に→確認ステップへ。
// 失敗時（ゲートウェイ拒否・途中のエラー）：状態は触らず通知のみ。
// isProcessing はどの経路でも必ず下ろす。
// 戻り値は注文が完了したかどうか。失敗の詳細は通知側にしか出さない。
func (u *CartUsecase) ProcessCheckout(ctx context.Context) bool {
	u.mu.Lock()

	if len(u.items) == 0 {
		u.mu.Unlock()
		u.notifier.Notify(notify.KindError, "Your cart is empty")
		return false
	}
	if !u.addressSet || !u.paymentDetailsSet {
		u.mu.Unlock()
		u.notifier.Notify(notify.KindError, "Please fill in all required information")
		return false
	}

	u.isProcessing = true
	charge := payment.Charge{
		CardNumber: u.paymentDetails.CardNumber,
		ExpiryDate: u.paymentDetails.ExpiryDate,
		CVV:        u.paymentDetails.CVV,
		Name:       u.paymentDetails.NameOnCard,
		Amount:     totalOf(u.items).Add(u.shippingCost),
	}

	// ゲートウェイ待ちの間はロックを持たない。
	// その間のカート変更は許される：注文は決済が返った時点のカートを写す。
	u.mu.Unlock()

	receipt, chargeErr := u.gateway.Charge(ctx, charge)

	u.mu.Lock()
	defer u.mu.Unlock()
	defer func() { u.isProcessing = false }()

	if chargeErr != nil {
		//シミュレーターのメッセージをそのまま出す。カートと注文は触らない。
		u.notifier.Notify(notify.KindError, chargeErr.Error())
		return false
	}

	now := u.clock.Now()

	orderID := receipt.TransactionID
	if orderID == "" {
		orderID = fmt.Sprintf("ORD-%d", now.UnixMilli())
	}

	order := model.Order{
		ID:                orderID,
		Items:             u.snapshotLocked(),
		TotalPrice:        totalOf(u.items),
		ShippingCost:      u.shippingCost,
		Status:            model.OrderStatusPending,
		ShippingAddress:   u.address,
		PaymentMethod:     u.paymentMethod,
		CreatedAt:         now,
		ConfirmationCode:  newConfirmationCode(),
		EstimatedDelivery: now.AddDate(0, 0, u.estimatedDeliveryDays),
	}

	if err := u.store.AppendOrder(order); err != nil {
		u.notifier.Notify(notify.KindError, "An error occurred during checkout")
		return false
	}

	u.order = &order
	u.items = []model.CartItem{}
	u.persistCart()
	u.checkoutStep = StepConfirmation

	u.notifier.Notify(notify.KindSuccess, "Order placed successfully")
	return true
}

// 注文履歴（storeの写し）
func (u *CartUsecase) OrderHistory() []model.Order {
	return u.store.LoadOrders()
}

func newConfirmationCode() string {
	return "CONF-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
}

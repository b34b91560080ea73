package usecase

import (
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"app/internal/domain/model"
	"app/internal/notify"
	"app/internal/payment"
	repo "app/internal/repository"
)

// チェックアウトの段階
const (
	StepCart         = 0
	StepAddress      = 1
	StepPayment      = 2
	StepConfirmation = 3
)

type Clock interface {
	Now() time.Time
}

// CartUsecase はカートとチェックアウトの唯一の状態置き場。
// ミューテーションはmutexで直列化する。storeには都度書き込む。
// カード情報だけはメモリ保持のみで、storeには絶対渡さない。
type CartUsecase struct {
	mu sync.Mutex

	store    repo.StateStore
	gateway  payment.Gateway
	notifier notify.Notifier
	clock    Clock

	items      []model.CartItem
	isCartOpen bool

	checkoutStep          int
	address               model.ShippingAddress
	addressSet            bool
	paymentMethod         string
	paymentDetails        model.PaymentDetails
	paymentDetailsSet     bool
	shippingCost          decimal.Decimal
	estimatedDeliveryDays int

	isProcessing bool
	order        *model.Order
}

// DI。storeに残っているカートと住所をここで復元する。
func NewCartUsecase(
	store repo.StateStore,
	gateway payment.Gateway,
	notifier notify.Notifier,
	clock Clock,
) *CartUsecase {
	u := &CartUsecase{
		store:    store,
		gateway:  gateway,
		notifier: notifier,
		clock:    clock,
	}

	u.items = store.LoadCart()
	if addr, ok := store.LoadAddress(); ok {
		u.address = addr
		u.addressSet = true
	}

	return u
}

// 追加対象（カタログ由来の信頼済みデータ。ここでは検証しない）
type AddItemInput struct {
	ID    int64
	Name  string
	Price decimal.Decimal
	Image string
}

// AddItem は同一idなら数量+1、無ければ数量1で追加。追加後はカートを開く。
func (u *CartUsecase) AddItem(in AddItemInput) {
	u.mu.Lock()
	defer u.mu.Unlock()

	found := false
	for i := range u.items {
		if u.items[i].ID == in.ID {
			u.items[i].Quantity++
			found = true
			break
		}
	}

	if found {
		u.notifier.Notify(notify.KindSuccess, "Added another "+in.Name+" to cart")
	} else {
		u.items = append(u.items, model.CartItem{
			ID:       in.ID,
			Name:     in.Name,
			Price:    in.Price,
			Image:    in.Image,
			Quantity: 1,
		})
		u.notifier.Notify(notify.KindSuccess, in.Name+" added to cart")
	}

	u.isCartOpen = true
	u.persistCart()
}

// RemoveItem は該当idが無ければ黙って何もしない。
func (u *CartUsecase) RemoveItem(id int64) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.removeLocked(id)
}

func (u *CartUsecase) removeLocked(id int64) {
	for i := range u.items {
		if u.items[i].ID == id {
			name := u.items[i].Name
			u.items = append(u.items[:i], u.items[i+1:]...)
			u.notifier.Notify(notify.KindInfo, name+" removed from cart")
			u.persistCart()
			return
		}
	}
}

// UpdateQuantity は数量を置き換える（加算ではない）。0以下は削除と同じ。
func (u *CartUsecase) UpdateQuantity(id int64, quantity int64) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if quantity <= 0 {
		u.removeLocked(id)
		return
	}

	for i := range u.items {
		if u.items[i].ID == id {
			u.items[i].Quantity = quantity
			u.persistCart()
			return
		}
	}
}

func (u *CartUsecase) ClearCart() {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.items = []model.CartItem{}
	u.notifier.Notify(notify.KindInfo, "Cart cleared")
	u.persistCart()
}

// UIの開閉フラグだけ。業務的な意味はない。
func (u *CartUsecase) ToggleCart() {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.isCartOpen = !u.isCartOpen
}

// 書き込み失敗はログ扱い（通知）にして落とさない
func (u *CartUsecase) persistCart() {
	if err := u.store.SaveCart(u.items); err != nil {
		u.notifier.Notify(notify.KindError, "Failed to save cart")
	}
}

// ---- 読み取り側（常にitemsから再計算）----

func (u *CartUsecase) Items() []model.CartItem {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.snapshotLocked()
}

func (u *CartUsecase) snapshotLocked() []model.CartItem {
	out := make([]model.CartItem, len(u.items))
	copy(out, u.items)
	return out
}

func (u *CartUsecase) TotalItems() int64 {
	u.mu.Lock()
	defer u.mu.Unlock()

	var n int64 = 0
	for _, it := range u.items {
		n += it.Quantity
	}
	return n
}

func (u *CartUsecase) TotalPrice() decimal.Decimal {
	u.mu.Lock()
	defer u.mu.Unlock()
	return totalOf(u.items)
}

func totalOf(items []model.CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Subtotal())
	}
	return total
}

func (u *CartUsecase) IsCartOpen() bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.isCartOpen
}

func (u *CartUsecase) CheckoutStep() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.checkoutStep
}

func (u *CartUsecase) IsProcessing() bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.isProcessing
}

// 直近の完了注文。まだ無ければnil。
func (u *CartUsecase) Order() *model.Order {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.order == nil {
		return nil
	}
	o := *u.order
	return &o
}

func (u *CartUsecase) ShippingCost() decimal.Decimal {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.shippingCost
}

func (u *CartUsecase) EstimatedDeliveryDays() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.estimatedDeliveryDays
}

func (u *CartUsecase) ShippingAddress() (model.ShippingAddress, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.address, u.addressSet
}

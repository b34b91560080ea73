package payment

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrMissingPaymentInfo = errors.New("missing payment information")
	ErrInvalidCardNumber  = errors.New("invalid card number")
)

// Simulator は決済ゲートウェイの代役。
// 固定ディレイの後に成否を返すだけで、外部には一切つながない。
// LuhnもCVV書式も見ない（モック境界であってセキュリティ対策ではない）。
type Simulator struct {
	delay time.Duration
}

// DI
func NewSimulator(delay time.Duration) *Simulator {
	return &Simulator{delay: delay}
}

func (s *Simulator) Charge(ctx context.Context, c Charge) (Receipt, error) {
	select {
	case <-time.After(s.delay):
	case <-ctx.Done():
		return Receipt{}, ctx.Err()
	}

	//検証はこの順番で行う
	if c.CardNumber == "" || c.ExpiryDate == "" || c.CVV == "" {
		return Receipt{}, ErrMissingPaymentInfo
	}

	digits := strings.ReplaceAll(c.CardNumber, " ", "")
	if len(digits) != 16 || !allDigits(digits) {
		return Receipt{}, ErrInvalidCardNumber
	}

	return Receipt{TransactionID: "TXN-" + uuid.NewString()}, nil
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

package payment

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCharge() Charge {
	return Charge{
		CardNumber: "4242 4242 4242 4242",
		ExpiryDate: "12/27",
		CVV:        "123",
		Name:       "Hana Sato",
		Amount:     decimal.RequireFromString("34.99"),
	}
}

// Test: 必須項目が欠けていたら最初の検証で落ちる
func TestChargeMissingFields(t *testing.T) {
	s := NewSimulator(time.Millisecond)

	for _, mutate := range []func(*Charge){
		func(c *Charge) { c.CardNumber = "" },
		func(c *Charge) { c.ExpiryDate = "" },
		func(c *Charge) { c.CVV = "" },
	} {
		c := validCharge()
		mutate(&c)

		_, err := s.Charge(context.Background(), c)
		assert.ErrorIs(t, err, ErrMissingPaymentInfo)
	}
}

// Test: 空白を除いて16桁ちょうどでなければ無効
func TestChargeInvalidCardNumber(t *testing.T) {
	s := NewSimulator(time.Millisecond)

	for _, num := range []string{
		"4242",
		"4242 4242 4242 424",    //15桁
		"4242 4242 4242 42421",  //17桁
		"4242-4242-4242-4242",   //区切りがスペース以外
		"4242 4242 4242 424a",   //数字以外
	} {
		c := validCharge()
		c.CardNumber = num

		_, err := s.Charge(context.Background(), c)
		assert.ErrorIs(t, err, ErrInvalidCardNumber, "card=%q", num)
	}
}

// Test: 欠落チェックが桁数チェックより先
func TestChargeValidationOrder(t *testing.T) {
	s := NewSimulator(time.Millisecond)

	c := validCharge()
	c.CardNumber = "bad"
	c.CVV = ""

	_, err := s.Charge(context.Background(), c)
	assert.ErrorIs(t, err, ErrMissingPaymentInfo)
}

// Test: 成功時はトランザクションidが返る
func TestChargeSuccess(t *testing.T) {
	s := NewSimulator(time.Millisecond)

	r, err := s.Charge(context.Background(), validCharge())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(r.TransactionID, "TXN-"))
}

// Test: 成功のたびに別のid
func TestChargeUniqueTransactionIDs(t *testing.T) {
	s := NewSimulator(time.Millisecond)

	r1, err := s.Charge(context.Background(), validCharge())
	require.NoError(t, err)
	r2, err := s.Charge(context.Background(), validCharge())
	require.NoError(t, err)

	assert.NotEqual(t, r1.TransactionID, r2.TransactionID)
}

// Test: ディレイ中のキャンセルはctx.Errで返る
func TestChargeContextCancel(t *testing.T) {
	s := NewSimulator(10 * time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Charge(ctx, validCharge())
	assert.ErrorIs(t, err, context.Canceled)
}

package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"app/internal/currency"
	"app/internal/handler"
	infraRepo "app/internal/infra/repository"
	"app/internal/notify"
	"app/internal/payment"
	"app/internal/server"
	"app/internal/usecase"
)

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}

func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	store, err := infraRepo.NewFileStateStore(t.TempDir())
	require.NoError(t, err)

	formatter, err := currency.NewFormatter("USD")
	require.NoError(t, err)

	catalog := infraRepo.NewStaticProductCatalog()
	gateway := payment.NewSimulator(time.Millisecond)

	cartUC := usecase.NewCartUsecase(store, gateway, notify.NewLogNotifier(), &realClock{})
	catalogUC := usecase.NewCatalogUsecase(catalog, formatter)

	return server.New(server.Handlers{
		Catalog:  handler.NewCatalogHandler(catalogUC),
		Cart:     handler.NewCartHandler(cartUC, catalogUC, formatter),
		Checkout: handler.NewCheckoutHandler(cartUC),
		Orders:   handler.NewOrderHandler(cartUC),
	})
}

func doJSON(t *testing.T, e *echo.Echo, method, path string, body any) (*httptest.ResponseRecorder, []byte) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec, rec.Body.Bytes()
}

func decodeCart(t *testing.T, body []byte) handler.CartResponse {
	t.Helper()
	var v handler.CartResponse
	require.NoError(t, json.Unmarshal(body, &v))
	return v
}

// Test: カタログ一覧と明細
func TestCatalogEndpoints(t *testing.T) {
	e := newTestServer(t)

	rec, body := doJSON(t, e, http.MethodGet, "/catalog", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var products []usecase.ProductResponse
	require.NoError(t, json.Unmarshal(body, &products))
	assert.NotEmpty(t, products)
	assert.NotEmpty(t, products[0].DisplayPrice)

	rec, _ = doJSON(t, e, http.MethodGet, "/catalog/1", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = doJSON(t, e, http.MethodGet, "/catalog/9999", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// Test: 追加は同一商品で数量加算、不正idは404
func TestCartAddAndAccumulate(t *testing.T) {
	e := newTestServer(t)

	rec, body := doJSON(t, e, http.MethodPost, "/cart/items", handler.AddCartItemRequest{ProductID: 1})
	require.Equal(t, http.StatusOK, rec.Code)

	cart := decodeCart(t, body)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, int64(1), cart.TotalItems)

	rec, body = doJSON(t, e, http.MethodPost, "/cart/items", handler.AddCartItemRequest{ProductID: 1})
	require.Equal(t, http.StatusOK, rec.Code)

	cart = decodeCart(t, body)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, int64(2), cart.Items[0].Quantity)
	assert.True(t, cart.IsOpen)
	assert.NotEmpty(t, cart.DisplayTotal)

	rec, _ = doJSON(t, e, http.MethodPost, "/cart/items", handler.AddCartItemRequest{ProductID: 9999})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// Test: 数量0へのPATCHで行が消える、クリアで空になる
func TestCartUpdateAndClear(t *testing.T) {
	e := newTestServer(t)

	doJSON(t, e, http.MethodPost, "/cart/items", handler.AddCartItemRequest{ProductID: 1})
	doJSON(t, e, http.MethodPost, "/cart/items", handler.AddCartItemRequest{ProductID: 3})

	rec, body := doJSON(t, e, http.MethodPatch, "/cart/items/1", handler.UpdateCartItemRequest{Quantity: 0})
	require.Equal(t, http.StatusOK, rec.Code)
	cart := decodeCart(t, body)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, int64(3), cart.Items[0].ID)

	rec, body = doJSON(t, e, http.MethodDelete, "/cart", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	cart = decodeCart(t, body)
	assert.Empty(t, cart.Items)
	assert.True(t, cart.TotalPrice.Equal(decimal.Zero))
}

// Test: チェックアウトを最後まで通す
func TestCheckoutFlow(t *testing.T) {
	e := newTestServer(t)

	doJSON(t, e, http.MethodPost, "/cart/items", handler.AddCartItemRequest{ProductID: 1})

	rec, _ := doJSON(t, e, http.MethodPost, "/checkout/address", handler.ShippingAddressRequest{
		FirstName: "Hana", LastName: "Sato", Address: "1-2-3", City: "Test City",
		State: "CA", ZipCode: "90210", Country: "US", Phone: "555-0100",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec, body := doJSON(t, e, http.MethodPost, "/checkout/shipping-estimate", handler.ShippingEstimateRequest{ZipCode: "90210"})
	require.Equal(t, http.StatusOK, rec.Code)

	var est usecase.ShippingEstimate
	require.NoError(t, json.Unmarshal(body, &est))
	assert.True(t, est.Cost.Equal(decimal.RequireFromString("14.99")))
	assert.Equal(t, 5, est.Days)

	rec, _ = doJSON(t, e, http.MethodPost, "/checkout/payment", handler.PaymentRequest{
		Method: "credit_card", CardNumber: "4242 4242 4242 4242",
		ExpiryDate: "12/27", CVV: "123", NameOnCard: "Hana Sato",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec, _ = doJSON(t, e, http.MethodPut, "/checkout/step", handler.SetStepRequest{Step: 2})
	require.Equal(t, http.StatusOK, rec.Code)

	rec, body = doJSON(t, e, http.MethodPost, "/checkout/process", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var result handler.ProcessCheckoutResponse
	require.NoError(t, json.Unmarshal(body, &result))
	require.True(t, result.Success)
	require.NotNil(t, result.Order)
	assert.True(t, result.Order.ShippingCost.Equal(decimal.RequireFromString("14.99")))

	//カートは空、ステップは確認へ
	rec, body = doJSON(t, e, http.MethodGet, "/cart", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decodeCart(t, body).Items)

	var state handler.CheckoutStateResponse
	_, body = doJSON(t, e, http.MethodGet, "/checkout", nil)
	require.NoError(t, json.Unmarshal(body, &state))
	assert.Equal(t, usecase.StepConfirmation, state.Step)
	assert.False(t, state.IsProcessing)

	//履歴に1件
	rec, body = doJSON(t, e, http.MethodGet, "/orders", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var orders []json.RawMessage
	require.NoError(t, json.Unmarshal(body, &orders))
	assert.Len(t, orders, 1)

	rec, _ = doJSON(t, e, http.MethodGet, "/orders/current", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

// Test: 不正カードではチェックアウトが失敗し、カートが残る
func TestCheckoutInvalidCard(t *testing.T) {
	e := newTestServer(t)

	doJSON(t, e, http.MethodPost, "/cart/items", handler.AddCartItemRequest{ProductID: 1})
	doJSON(t, e, http.MethodPost, "/checkout/address", handler.ShippingAddressRequest{FirstName: "Hana", ZipCode: "90210"})
	doJSON(t, e, http.MethodPost, "/checkout/payment", handler.PaymentRequest{
		Method: "credit_card", CardNumber: "1234", ExpiryDate: "12/27", CVV: "123",
	})

	rec, body := doJSON(t, e, http.MethodPost, "/checkout/process", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var result handler.ProcessCheckoutResponse
	require.NoError(t, json.Unmarshal(body, &result))
	assert.False(t, result.Success)
	assert.Nil(t, result.Order)

	_, body = doJSON(t, e, http.MethodGet, "/cart", nil)
	assert.Len(t, decodeCart(t, body).Items, 1)

	rec, _ = doJSON(t, e, http.MethodGet, "/orders/current", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// Test: ステップの境界チェック（範囲外は400）
func TestSetStepBounds(t *testing.T) {
	e := newTestServer(t)

	rec, _ := doJSON(t, e, http.MethodPut, "/checkout/step", handler.SetStepRequest{Step: 9})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = doJSON(t, e, http.MethodPut, "/checkout/step", handler.SetStepRequest{Step: -1})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = doJSON(t, e, http.MethodPut, "/checkout/step", handler.SetStepRequest{Step: 1})
	assert.Equal(t, http.StatusOK, rec.Code)
}

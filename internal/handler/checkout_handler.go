package handler

import (
	"net/http"

	"app/internal/domain/model"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// /checkoutのHTTP
type CheckoutHandler struct {
	cart *usecase.CartUsecase
}

// DI
func NewCheckoutHandler(cart *usecase.CartUsecase) *CheckoutHandler {
	return &CheckoutHandler{cart: cart}
}

type ShippingAddressRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zip_code"`
	Country   string `json:"country"`
	Phone     string `json:"phone"`
}

type PaymentRequest struct {
	Method string `json:"method"`
	//カード情報。保存されないのでレスポンスには決して返さない。
	CardNumber string `json:"card_number"`
	ExpiryDate string `json:"expiry_date"`
	CVV        string `json:"cvv"`
	NameOnCard string `json:"name_on_card"`
}

type ShippingEstimateRequest struct {
	ZipCode string `json:"zip_code"`
}

type SetStepRequest struct {
	Step int `json:"step"`
}

type CheckoutStateResponse struct {
	Step                  int             `json:"step"`
	ShippingCost          decimal.Decimal `json:"shipping_cost"`
	EstimatedDeliveryDays int             `json:"estimated_delivery_days"`
	IsProcessing          bool            `json:"is_processing"`
	HasAddress            bool            `json:"has_address"`
	Order                 *model.Order    `json:"order"`
}

type ProcessCheckoutResponse struct {
	Success bool         `json:"success"`
	Order   *model.Order `json:"order"`
}

func (h *CheckoutHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/checkout")

	g.GET("", h.state)
	g.POST("/address", h.setAddress)
	g.POST("/payment", h.setPayment)
	g.POST("/shipping-estimate", h.estimate)
	g.PUT("/step", h.setStep)
	g.POST("/process", h.process)
}

func (h *CheckoutHandler) buildState() CheckoutStateResponse {
	_, hasAddr := h.cart.ShippingAddress()
	return CheckoutStateResponse{
		Step:                  h.cart.CheckoutStep(),
		ShippingCost:          h.cart.ShippingCost(),
		EstimatedDeliveryDays: h.cart.EstimatedDeliveryDays(),
		IsProcessing:          h.cart.IsProcessing(),
		HasAddress:            hasAddr,
		Order:                 h.cart.Order(),
	}
}

func (h *CheckoutHandler) state(c echo.Context) error {
	return c.JSON(http.StatusOK, h.buildState())
}

// 住所の形式検証は画面側の責任。ここは受けて保存するだけ。
func (h *CheckoutHandler) setAddress(c echo.Context) error {
	var req ShippingAddressRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	h.cart.SetShippingAddress(model.ShippingAddress{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Address:   req.Address,
		City:      req.City,
		State:     req.State,
		ZipCode:   req.ZipCode,
		Country:   req.Country,
		Phone:     req.Phone,
	})

	return c.JSON(http.StatusOK, h.buildState())
}

func (h *CheckoutHandler) setPayment(c echo.Context) error {
	var req PaymentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	h.cart.SetPaymentMethod(req.Method)
	h.cart.SetPaymentDetails(model.PaymentDetails{
		CardNumber: req.CardNumber,
		ExpiryDate: req.ExpiryDate,
		CVV:        req.CVV,
		NameOnCard: req.NameOnCard,
	})

	return c.JSON(http.StatusOK, h.buildState())
}

func (h *CheckoutHandler) estimate(c echo.Context) error {
	var req ShippingEstimateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	est := h.cart.CalculateShippingCost(req.ZipCode)
	return c.JSON(http.StatusOK, est)
}

// コンテナ側は範囲を見ないので、境界チェックは呼び出し側のここで行う。
func (h *CheckoutHandler) setStep(c echo.Context) error {
	var req SetStepRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if req.Step < usecase.StepCart || req.Step > usecase.StepConfirmation {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid step"})
	}

	h.cart.SetCheckoutStep(req.Step)
	return c.JSON(http.StatusOK, h.buildState())
}

// 失敗の内訳は通知に出る。HTTPには成否と注文だけ返す。
func (h *CheckoutHandler) process(c echo.Context) error {
	ok := h.cart.ProcessCheckout(c.Request().Context())

	resp := ProcessCheckoutResponse{Success: ok}
	if ok {
		resp.Order = h.cart.Order()
	}
	return c.JSON(http.StatusOK, resp)
}

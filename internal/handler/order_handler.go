package handler

import (
	"net/http"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /ordersのHTTP（履歴の読み取りのみ。注文は作成後に変更されない）
type OrderHandler struct {
	cart *usecase.CartUsecase
}

// DI
func NewOrderHandler(cart *usecase.CartUsecase) *OrderHandler {
	return &OrderHandler{cart: cart}
}

func (h *OrderHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/orders", h.list)
	e.GET("/orders/current", h.current)
}

func (h *OrderHandler) list(c echo.Context) error {
	return c.JSON(http.StatusOK, h.cart.OrderHistory())
}

func (h *OrderHandler) current(c echo.Context) error {
	o := h.cart.Order()
	if o == nil {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	}
	return c.JSON(http.StatusOK, o)
}

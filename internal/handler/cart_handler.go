package handler

import (
	"net/http"
	"strconv"

	"app/internal/currency"
	"app/internal/domain/model"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// /cartのHTTP
type CartHandler struct {
	cart      *usecase.CartUsecase
	catalog   *usecase.CatalogUsecase
	formatter *currency.Formatter
}

// DI
func NewCartHandler(cart *usecase.CartUsecase, catalog *usecase.CatalogUsecase, formatter *currency.Formatter) *CartHandler {
	return &CartHandler{cart: cart, catalog: catalog, formatter: formatter}
}

type CartResponse struct {
	Items        []model.CartItem `json:"items"`
	TotalItems   int64            `json:"total_items"`
	TotalPrice   decimal.Decimal  `json:"total_price"`
	DisplayTotal string           `json:"display_total"`
	IsOpen       bool             `json:"is_open"`
}

type AddCartItemRequest struct {
	ProductID int64 `json:"product_id"`
}

type UpdateCartItemRequest struct {
	Quantity int64 `json:"quantity"`
}

func (h *CartHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/cart", h.getCart)
	e.POST("/cart/items", h.addItem)
	e.PATCH("/cart/items/:id", h.updateItem)
	e.DELETE("/cart/items/:id", h.deleteItem)
	e.DELETE("/cart", h.clear)
	e.POST("/cart/toggle", h.toggle)
}

func (h *CartHandler) buildResponse() CartResponse {
	total := h.cart.TotalPrice()
	return CartResponse{
		Items:        h.cart.Items(),
		TotalItems:   h.cart.TotalItems(),
		TotalPrice:   total,
		DisplayTotal: h.formatter.Format(total),
		IsOpen:       h.cart.IsCartOpen(),
	}
}

func (h *CartHandler) getCart(c echo.Context) error {
	return c.JSON(http.StatusOK, h.buildResponse())
}

// 追加はカタログの商品idで受けて、価格と名前はカタログから引く。
func (h *CartHandler) addItem(c echo.Context) error {
	var req AddCartItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if req.ProductID <= 0 {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid product_id"})
	}

	p, err := h.catalog.GetProduct(c.Request().Context(), req.ProductID)
	if err != nil {
		return writeError(c, err)
	}

	h.cart.AddItem(usecase.AddItemInput{
		ID:    p.ID,
		Name:  p.Name,
		Price: p.Price,
		Image: p.Image,
	})

	return c.JSON(http.StatusOK, h.buildResponse())
}

func (h *CartHandler) updateItem(c echo.Context) error {
	itemID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req UpdateCartItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	h.cart.UpdateQuantity(itemID, req.Quantity)
	return c.JSON(http.StatusOK, h.buildResponse())
}

func (h *CartHandler) deleteItem(c echo.Context) error {
	itemID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	h.cart.RemoveItem(itemID)
	return c.JSON(http.StatusOK, h.buildResponse())
}

func (h *CartHandler) clear(c echo.Context) error {
	h.cart.ClearCart()
	return c.JSON(http.StatusOK, h.buildResponse())
}

func (h *CartHandler) toggle(c echo.Context) error {
	h.cart.ToggleCart()
	return c.JSON(http.StatusOK, h.buildResponse())
}

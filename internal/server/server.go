package server

import (
	"app/internal/handler"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type Handlers struct {
	Catalog  *handler.CatalogHandler
	Cart     *handler.CartHandler
	Checkout *handler.CheckoutHandler
	Orders   *handler.OrderHandler
}

func Start(addr string, h Handlers) error {
	e := New(h)
	return e.Start(addr)
}

// New はルーティング済みのechoを返す（テストからも使う）。
func New(h Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())

	RegisterRoutes(e, h)
	return e
}

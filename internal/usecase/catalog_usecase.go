package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"

	"app/internal/currency"
	"app/internal/domain/model"
	repo "app/internal/repository"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

// CatalogUsecase は公開カタログの読み取りロジック。
type CatalogUsecase struct {
	catalog   repo.ProductCatalog
	formatter *currency.Formatter
}

// DI
func NewCatalogUsecase(catalog repo.ProductCatalog, formatter *currency.Formatter) *CatalogUsecase {
	return &CatalogUsecase{catalog: catalog, formatter: formatter}
}

// 表示用の商品。display_price はロケール整形済み文字列。
type ProductResponse struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Price        decimal.Decimal `json:"price"`
	DisplayPrice string          `json:"display_price"`
	Image        string          `json:"image"`
	Description  string          `json:"description"`
	Category     string          `json:"category"`
}

type ListProductsInput struct {
	Q        string
	Category string
}

func (u *CatalogUsecase) ListProducts(ctx context.Context, in ListProductsInput) ([]ProductResponse, error) {
	products, err := u.catalog.List(ctx, repo.ProductListQuery{
		Q:        in.Q,
		Category: in.Category,
	})
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "catalog error")
	}

	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, u.toResponse(p))
	}
	return out, nil
}

func (u *CatalogUsecase) GetProduct(ctx context.Context, id int64) (ProductResponse, error) {
	p, err := u.catalog.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return ProductResponse{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return ProductResponse{}, NewHTTPError(http.StatusInternalServerError, "catalog error")
	}
	return u.toResponse(p), nil
}

func (u *CatalogUsecase) toResponse(p model.Product) ProductResponse {
	return ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Price:        p.Price,
		DisplayPrice: u.formatter.Format(p.Price),
		Image:        p.Image,
		Description:  p.Description,
		Category:     p.Category,
	}
}

package repository

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// StaticProductCatalog は組み込みの花卉カタログ。
// マーケ側で管理する静的データなので永続化しない。
type StaticProductCatalog struct {
	products []model.Product
}

func NewStaticProductCatalog() *StaticProductCatalog {
	return &StaticProductCatalog{products: defaultProducts()}
}

func (r *StaticProductCatalog) List(ctx context.Context, q repo.ProductListQuery) ([]model.Product, error) {
	out := make([]model.Product, 0, len(r.products))
	for _, p := range r.products {
		if q.Category != "" && p.Category != q.Category {
			continue
		}
		if q.Q != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(q.Q)) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *StaticProductCatalog) FindByID(ctx context.Context, id int64) (model.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return model.Product{}, repo.ErrNotFound
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func defaultProducts() []model.Product {
	return []model.Product{
		{ID: 1, Name: "Premium Red Roses", Price: price("24.99"), Image: "/images/roses-red.jpg", Description: "Long-stem export grade red roses, bunch of 12", Category: "roses"},
		{ID: 2, Name: "White Roses", Price: price("22.99"), Image: "/images/roses-white.jpg", Description: "Export grade white roses, bunch of 12", Category: "roses"},
		{ID: 3, Name: "Dutch Tulips", Price: price("18.50"), Image: "/images/tulips.jpg", Description: "Mixed color tulips, bunch of 10", Category: "tulips"},
		{ID: 4, Name: "Oriental Lilies", Price: price("27.00"), Image: "/images/lilies.jpg", Description: "Fragrant oriental lilies, bunch of 5", Category: "lilies"},
		{ID: 5, Name: "Carnations", Price: price("12.99"), Image: "/images/carnations.jpg", Description: "Standard carnations, bunch of 20", Category: "carnations"},
		{ID: 6, Name: "Phalaenopsis Orchids", Price: price("34.99"), Image: "/images/orchids.jpg", Description: "Potted phalaenopsis orchid, two spikes", Category: "orchids"},
		{ID: 7, Name: "Sunflowers", Price: price("15.75"), Image: "/images/sunflowers.jpg", Description: "Tall cut sunflowers, bunch of 8", Category: "sunflowers"},
		{ID: 8, Name: "Baby's Breath", Price: price("9.50"), Image: "/images/gypsophila.jpg", Description: "Gypsophila filler bunches", Category: "fillers"},
		{ID: 9, Name: "Mixed Seasonal Bouquet", Price: price("29.99"), Image: "/images/seasonal.jpg", Description: "Florist's choice seasonal arrangement", Category: "bouquets"},
		{ID: 10, Name: "Chrysanthemums", Price: price("14.25"), Image: "/images/chrysanthemums.jpg", Description: "Spray chrysanthemums, bunch of 10", Category: "chrysanthemums"},
	}
}

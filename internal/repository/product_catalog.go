package repository

import (
	"context"

	"app/internal/domain/model"
)

// 一覧検索
type ProductListQuery struct {
	Q        string
	Category string
}

// カタログの取得だけを約束（読み取り専用）。
type ProductCatalog interface {
	List(ctx context.Context, q ProductListQuery) ([]model.Product, error)
	FindByID(ctx context.Context, id int64) (model.Product, error)
}

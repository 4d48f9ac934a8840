package repository

import (
	"context"
	"time"

	"invtrack/internal/domain/model"
)

// 一覧表示用に商品のcode/nameを結合した履歴
type TransactionWithProduct struct {
	model.Transaction
	ProductCode string `json:"product_code"`
	ProductName string `json:"product_name"`
}

// 履歴の絞り込み条件。ゼロ値なら全件
type TransactionListFilter struct {
	ProductCode string
	Since       *time.Time
	Limit       int
}

type TransactionRepository interface {
	//新しい順（recorded_at DESC, id DESC）
	ListWithProduct(ctx context.Context, filter TransactionListFilter) ([]TransactionWithProduct, error)
}

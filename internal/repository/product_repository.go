package repository

import (
	"context"
	"errors"

	"invtrack/internal/domain/model"
)

var (
	ErrNotFound = errors.New("not found")

	// 一意制約違反（codeの重複など）
	ErrDuplicateKey = errors.New("duplicate key")

	// 読んだ在庫と更新時の在庫が食い違った
	ErrConflict = errors.New("conflict")
)

// 商品の永続化（保存・取得）だけを約束。
type ProductRepository interface {
	FindByCode(ctx context.Context, code string) (model.Product, error)
	Create(ctx context.Context, p model.Product) (model.Product, error)
	//登録順
	List(ctx context.Context) ([]model.Product, error)
}

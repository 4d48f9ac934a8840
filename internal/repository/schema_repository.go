package repository

import "context"

// テーブルの作成（何度呼んでもよい）
type SchemaRepository interface {
	Migrate(ctx context.Context) error
	IsInitialized(ctx context.Context) (bool, error)
}

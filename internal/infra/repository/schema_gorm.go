package repository

import (
	"context"
	"fmt"

	"invtrack/internal/domain/model"

	"gorm.io/gorm"
)

// 管理するテーブル（作成順）
var schemaModels = []interface{}{
	&model.Product{},
	&model.Image{},
	&model.Transaction{},
}

type SchemaGormRepository struct {
	db *gorm.DB
}

func NewSchemaGormRepository(db *gorm.DB) *SchemaGormRepository {
	return &SchemaGormRepository{db: db}
}

// テーブルがなければ作る
func (r *SchemaGormRepository) Migrate(ctx context.Context) error {
	if err := r.db.WithContext(ctx).AutoMigrate(schemaModels...); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

func (r *SchemaGormRepository) IsInitialized(ctx context.Context) (bool, error) {
	m := r.db.WithContext(ctx).Migrator()
	for _, mdl := range schemaModels {
		if !m.HasTable(mdl) {
			return false, nil
		}
	}
	return true, nil
}

package repository

import (
	"context"

	repo "invtrack/internal/repository"

	"gorm.io/gorm"
)

type TransactionGormRepository struct {
	db *gorm.DB
}

func NewTransactionGormRepository(db *gorm.DB) *TransactionGormRepository {
	return &TransactionGormRepository{db: db}
}

func (r *TransactionGormRepository) ListWithProduct(ctx context.Context, filter repo.TransactionListFilter) ([]repo.TransactionWithProduct, error) {
	q := r.db.WithContext(ctx).
		Table("transactions AS t").
		Select("t.id, t.product_id, t.kind, t.quantity, t.unit_price, t.recorded_at, p.code AS product_code, p.name AS product_name").
		Joins("JOIN products p ON p.id = t.product_id")

	if filter.ProductCode != "" {
		q = q.Where("p.code = ?", filter.ProductCode)
	}
	if filter.Since != nil {
		q = q.Where("t.recorded_at >= ?", filter.Since.UTC())
	}

	//新しい順。同時刻なら後から入った方が先
	q = q.Order("t.recorded_at DESC").Order("t.id DESC")

	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}

	rows := []repo.TransactionWithProduct{}
	if err := q.Scan(&rows).Error; err != nil {
		return []repo.TransactionWithProduct{}, err
	}
	return rows, nil
}

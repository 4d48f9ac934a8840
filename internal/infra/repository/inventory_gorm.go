package repository

import (
	"context"

	"invtrack/internal/domain/model"
	repo "invtrack/internal/repository"

	"gorm.io/gorm"
)

type InventoryGormRepository struct {
	db *gorm.DB
}

func NewInventoryGormRepository(db *gorm.DB) *InventoryGormRepository {
	return &InventoryGormRepository{db: db}
}

// 在庫を「現在値」に更新し、入出庫の履歴も残す。
// WithinTxの中から呼ばれた場合はsavepointになる
func (r *InventoryGormRepository) SetQuantityWithTransaction(ctx context.Context, productID int64, expectedQty int64, newQty int64, txn model.Transaction) (model.Transaction, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		//読んだ時点の在庫のままなら更新
		res := tx.Model(&model.Product{}).
			Where("id = ? AND quantity = ?", productID, expectedQty).
			Update("quantity", newQty)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			var count int64
			if err := tx.Model(&model.Product{}).Where("id = ?", productID).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return repo.ErrNotFound
			}
			return repo.ErrConflict
		}

		//transactionsを作成
		txn.ProductID = productID
		if err := tx.Omit("Product").Create(&txn).Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return model.Transaction{}, translate(err)
	}
	return txn, nil
}

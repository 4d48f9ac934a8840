package repository

import (
	"context"

	"invtrack/internal/domain/model"
)

type InventoryRepository interface {
	// 在庫の更新と履歴の追加を1つの単位で行う。
	// 在庫がexpectedQtyのときだけnewQtyにする（違えばErrConflict）
	SetQuantityWithTransaction(ctx context.Context, productID int64, expectedQty int64, newQty int64, txn model.Transaction) (model.Transaction, error)
}

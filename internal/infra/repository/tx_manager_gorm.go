package repository

import (
	"context"

	repo "invtrack/internal/repository"

	"gorm.io/gorm"
)

type txReposGorm struct {
	products     repo.ProductRepository
	images       repo.ImageRepository
	transactions repo.TransactionRepository
	inventory    repo.InventoryRepository
}

func (r *txReposGorm) Products() repo.ProductRepository         { return r.products }
func (r *txReposGorm) Images() repo.ImageRepository             { return r.images }
func (r *txReposGorm) Transactions() repo.TransactionRepository { return r.transactions }
func (r *txReposGorm) Inventory() repo.InventoryRepository      { return r.inventory }

type TxManagerGorm struct {
	db *gorm.DB
}

func NewTxManagerGorm(db *gorm.DB) *TxManagerGorm {
	return &TxManagerGorm{db: db}
}

// fnがnilを返せばcommit、エラーかpanicならrollback
func (tm *TxManagerGorm) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		//repoはtxを持ったDBで作り直す
		r := &txReposGorm{
			products:     NewProductGormRepository(tx),
			images:       NewImageGormRepository(tx),
			transactions: NewTransactionGormRepository(tx),
			inventory:    NewInventoryGormRepository(tx),
		}
		return fn(r)
	})
}

var (
	_ repo.TransactionManager    = (*TxManagerGorm)(nil)
	_ repo.ProductRepository     = (*ProductGormRepository)(nil)
	_ repo.ImageRepository       = (*ImageGormRepository)(nil)
	_ repo.TransactionRepository = (*TransactionGormRepository)(nil)
	_ repo.InventoryRepository   = (*InventoryGormRepository)(nil)
	_ repo.SchemaRepository      = (*SchemaGormRepository)(nil)
)

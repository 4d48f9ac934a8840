package usecase_test

import (
	"context"
	"time"

	"invtrack/internal/domain/model"
	repo "invtrack/internal/repository"

	"github.com/stretchr/testify/mock"
)

// =====================
// Mocks
// =====================

type ProductRepoMock struct{ mock.Mock }

func (m *ProductRepoMock) FindByCode(ctx context.Context, code string) (model.Product, error) {
	args := m.Called(ctx, code)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProductRepoMock) Create(ctx context.Context, p model.Product) (model.Product, error) {
	args := m.Called(ctx, p)
	created, _ := args.Get(0).(model.Product)
	return created, args.Error(1)
}

func (m *ProductRepoMock) List(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

type ImageRepoMock struct{ mock.Mock }

func (m *ImageRepoMock) Create(ctx context.Context, img model.Image) (model.Image, error) {
	args := m.Called(ctx, img)
	created, _ := args.Get(0).(model.Image)
	return created, args.Error(1)
}

func (m *ImageRepoMock) ListByProductID(ctx context.Context, productID int64) ([]model.Image, error) {
	args := m.Called(ctx, productID)
	items, _ := args.Get(0).([]model.Image)
	return items, args.Error(1)
}

type TransactionRepoMock struct{ mock.Mock }

func (m *TransactionRepoMock) ListWithProduct(ctx context.Context, f repo.TransactionListFilter) ([]repo.TransactionWithProduct, error) {
	args := m.Called(ctx, f)
	items, _ := args.Get(0).([]repo.TransactionWithProduct)
	return items, args.Error(1)
}

type InventoryRepoMock struct{ mock.Mock }

func (m *InventoryRepoMock) SetQuantityWithTransaction(ctx context.Context, productID int64, expectedQty int64, newQty int64, txn model.Transaction) (model.Transaction, error) {
	args := m.Called(ctx, productID, expectedQty, newQty, txn)
	created, _ := args.Get(0).(model.Transaction)
	return created, args.Error(1)
}

type SchemaRepoMock struct{ mock.Mock }

func (m *SchemaRepoMock) Migrate(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *SchemaRepoMock) IsInitialized(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

// WithinTxはそのままfnを呼ぶ
type TxManagerMock struct {
	repos *TxReposMock
	err   error
}

func (m *TxManagerMock) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	if err := fn(m.repos); err != nil {
		return err
	}
	return m.err
}

type TxReposMock struct {
	products     *ProductRepoMock
	images       *ImageRepoMock
	transactions *TransactionRepoMock
	inventory    *InventoryRepoMock
}

func (r *TxReposMock) Products() repo.ProductRepository         { return r.products }
func (r *TxReposMock) Images() repo.ImageRepository             { return r.images }
func (r *TxReposMock) Transactions() repo.TransactionRepository { return r.transactions }
func (r *TxReposMock) Inventory() repo.InventoryRepository      { return r.inventory }

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

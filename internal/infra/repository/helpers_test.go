package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"invtrack/internal/config"
	"invtrack/internal/domain/model"
	"invtrack/internal/infra/db"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// テストごとに一時ファイルのsqliteを作る
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "inventory.db")
	gdb, err := db.Connect(config.Database{Driver: config.DriverSQLite, Path: path, MaxOpenConns: 1}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close(gdb) })

	require.NoError(t, NewSchemaGormRepository(gdb).Migrate(context.Background()))
	return gdb
}

func seedProduct(t *testing.T, gdb *gorm.DB, code string, price float64, qty int64) model.Product {
	t.Helper()

	p, err := NewProductGormRepository(gdb).Create(context.Background(), model.Product{
		Code:     code,
		Name:     "Product " + code,
		Price:    price,
		Quantity: qty,
	})
	require.NoError(t, err)
	return p
}

func seedTransaction(t *testing.T, gdb *gorm.DB, productID int64, kind model.TransactionKind, qty int64, at time.Time) model.Transaction {
	t.Helper()

	txn := model.Transaction{
		ProductID:  productID,
		Kind:       kind,
		Quantity:   qty,
		UnitPrice:  1,
		RecordedAt: at.UTC(),
	}
	require.NoError(t, gdb.Create(&txn).Error)
	return txn
}

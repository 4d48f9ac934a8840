package model

import (
	"fmt"
	"strings"
	"time"
)

// 入出庫の種類
type TransactionKind string

const (
	//仕入れ（在庫が増える）
	TransactionKindPurchase TransactionKind = "purchase"
	//販売（在庫が減る）
	TransactionKindSale TransactionKind = "sale"
)

// ParseTransactionKind は文字列を閉じた種類に変換する。
func ParseTransactionKind(s string) (TransactionKind, error) {
	k := TransactionKind(strings.ToLower(strings.TrimSpace(s)))
	if !k.Valid() {
		return "", fmt.Errorf("unknown transaction kind %q", s)
	}
	return k, nil
}

func (k TransactionKind) Valid() bool {
	switch k {
	case TransactionKindPurchase, TransactionKindSale:
		return true
	}
	return false
}

// 在庫に対する符号付きの変化量
func (k TransactionKind) Delta(qty int64) int64 {
	if k == TransactionKindSale {
		return -qty
	}
	return qty
}

// 入出庫の履歴（監査ログ）。作成後は変更しない
type Transaction struct {
	ID         int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID  int64           `gorm:"not null;index" json:"product_id"`
	Kind       TransactionKind `gorm:"type:varchar(16);not null;index" json:"kind"`
	Quantity   int64           `gorm:"not null" json:"quantity"`
	UnitPrice  float64         `gorm:"not null" json:"unit_price"`
	RecordedAt time.Time       `gorm:"not null;index" json:"recorded_at"`

	Product *Product `gorm:"foreignKey:ProductID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
}

func (Transaction) TableName() string {
	return "transactions"
}

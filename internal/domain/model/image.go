package model

import "time"

// 商品に紐づく画像。pathの存在確認は呼び出し側
type Image struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID int64     `gorm:"not null;index" json:"product_id"`
	Path      string    `gorm:"type:text;not null" json:"path"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`

	Product *Product `gorm:"foreignKey:ProductID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
}

func (Image) TableName() string {
	return "images"
}

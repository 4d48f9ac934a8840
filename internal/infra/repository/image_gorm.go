package repository

import (
	"context"

	"invtrack/internal/domain/model"

	"gorm.io/gorm"
)

type ImageGormRepository struct {
	db *gorm.DB
}

func NewImageGormRepository(db *gorm.DB) *ImageGormRepository {
	return &ImageGormRepository{db: db}
}

func (r *ImageGormRepository) Create(ctx context.Context, img model.Image) (model.Image, error) {
	if err := r.db.WithContext(ctx).Omit("Product").Create(&img).Error; err != nil {
		return model.Image{}, translate(err)
	}
	return img, nil
}

func (r *ImageGormRepository) ListByProductID(ctx context.Context, productID int64) ([]model.Image, error) {
	images := []model.Image{}
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("id asc").
		Find(&images).Error
	if err != nil {
		return []model.Image{}, err
	}
	return images, nil
}

package repository

import (
	"context"

	"invtrack/internal/domain/model"
)

type ImageRepository interface {
	Create(ctx context.Context, img model.Image) (model.Image, error)
	ListByProductID(ctx context.Context, productID int64) ([]model.Image, error)
}

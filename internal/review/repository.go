package review

import (
	"context"

	"github.com/hnthao/foodorder/internal/model"
	"github.com/hnthao/foodorder/internal/review/dto"
)

type Repository interface {
	Create(ctx context.Context, r *model.Review) (int64, error)
	FindByProduct(ctx context.Context, productID int64) ([]model.Review, error)
	FindAll(ctx context.Context) ([]model.ReviewDetail, error)
	FindRecent(ctx context.Context, limit int) ([]model.ReviewDetail, error)
	AverageRating(ctx context.Context, productID int64) (*dto.RatingInfo, error)
	CountByRating(ctx context.Context) ([]dto.RatingCount, error)
	Delete(ctx context.Context, id int64) error
}

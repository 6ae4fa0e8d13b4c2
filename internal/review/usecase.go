package review

import (
	"context"

	"github.com/hnthao/foodorder/internal/model"
	"github.com/hnthao/foodorder/internal/review/dto"
)

type UseCase interface {
	CreateReview(ctx context.Context, input *dto.CreateReviewInput) (*model.Review, error)
	ListByProduct(ctx context.Context, productID int64) ([]model.Review, error)
	ListAll(ctx context.Context) ([]model.ReviewDetail, error)
	ListRecent(ctx context.Context, limit int) ([]model.ReviewDetail, error)
	AverageRating(ctx context.Context, productID int64) (*dto.RatingInfo, error)
	DeleteReview(ctx context.Context, id int64) error
	Statistics(ctx context.Context) (*dto.ReviewStatistics, error)
}

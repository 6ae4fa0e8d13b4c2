package usecase

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/hnthao/foodorder/internal/model"
	"github.com/hnthao/foodorder/internal/review"
	"github.com/hnthao/foodorder/internal/review/dto"
	"go.uber.org/zap"
)

type reviewUseCase struct {
	repo   review.Repository
	logger *zap.Logger
}

func NewReviewUseCase(repo review.Repository, log *zap.Logger) review.UseCase {
	return &reviewUseCase{
		repo:   repo,
		logger: log,
	}
}

// CreateReview bound-checks the rating here; the reviews table carries a
// CHECK constraint as a second line of defense.
func (uc *reviewUseCase) CreateReview(ctx context.Context, input *dto.CreateReviewInput) (*model.Review, error) {
	name := strings.TrimSpace(input.CustomerName)
	if name == "" {
		return nil, fmt.Errorf("%w: customer name is required", review.ErrInvalidInput)
	}
	if input.Rating < 1 || input.Rating > 5 {
		return nil, review.ErrInvalidRating
	}

	rev := &model.Review{
		ProductID:    input.ProductID,
		OrderID:      input.OrderID,
		CustomerName: name,
		Rating:       input.Rating,
		Comment:      strings.TrimSpace(input.Comment),
		CreatedAt:    time.Now(),
	}

	id, err := uc.repo.Create(ctx, rev)
	if err != nil {
		return nil, err
	}
	rev.ID = id

	uc.logger.Info("review created",
		zap.Int64("review_id", id),
		zap.Int64("product_id", input.ProductID),
		zap.Int("rating", input.Rating))
	return rev, nil
}

func (uc *reviewUseCase) ListByProduct(ctx context.Context, productID int64) ([]model.Review, error) {
	return uc.repo.FindByProduct(ctx, productID)
}

func (uc *reviewUseCase) ListAll(ctx context.Context) ([]model.ReviewDetail, error) {
	return uc.repo.FindAll(ctx)
}

func (uc *reviewUseCase) ListRecent(ctx context.Context, limit int) ([]model.ReviewDetail, error) {
	if limit <= 0 {
		limit = 10
	}
	return uc.repo.FindRecent(ctx, limit)
}

func (uc *reviewUseCase) AverageRating(ctx context.Context, productID int64) (*dto.RatingInfo, error) {
	return uc.repo.AverageRating(ctx, productID)
}

func (uc *reviewUseCase) DeleteReview(ctx context.Context, id int64) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.logger.Info("review deleted", zap.Int64("review_id", id))
	return nil
}

// Statistics folds the per-rating aggregate into totals, an average rounded
// to one decimal, and a distribution that always carries keys 1 through 5.
func (uc *reviewUseCase) Statistics(ctx context.Context) (*dto.ReviewStatistics, error) {
	rows, err := uc.repo.CountByRating(ctx)
	if err != nil {
		return nil, err
	}

	stats := &dto.ReviewStatistics{
		Distribution: map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0},
	}

	sum := 0
	for _, row := range rows {
		stats.Total += row.Count
		sum += row.Rating * row.Count
		if row.Rating >= 1 && row.Rating <= 5 {
			stats.Distribution[row.Rating] = row.Count
		}
	}
	if stats.Total > 0 {
		stats.Average = math.Round(float64(sum)/float64(stats.Total)*10) / 10
	}

	return stats, nil
}

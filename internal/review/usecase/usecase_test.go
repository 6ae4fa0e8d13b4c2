package usecase_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/hnthao/foodorder/config"
	"github.com/hnthao/foodorder/internal/model"
	prodrepo "github.com/hnthao/foodorder/internal/product/repository"
	"github.com/hnthao/foodorder/internal/review"
	"github.com/hnthao/foodorder/internal/review/dto"
	"github.com/hnthao/foodorder/internal/review/repository"
	"github.com/hnthao/foodorder/internal/review/usecase"
	"github.com/hnthao/foodorder/internal/storage"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

func setup(t *testing.T) (*sqlx.DB, review.Repository, review.UseCase) {
	t.Helper()
	db, err := storage.Open(config.SQLite{
		Path:        filepath.Join(t.TempDir(), "test.db"),
		BusyTimeout: 5000,
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := storage.InitSchema(context.Background(), db); err != nil {
		t.Fatalf("init schema: %v", err)
	}

	repo := repository.NewSQLiteRepository(db)
	return db, repo, usecase.NewReviewUseCase(repo, zap.NewNop())
}

func createProduct(t *testing.T, db *sqlx.DB, name string) int64 {
	t.Helper()
	id, err := prodrepo.NewSQLiteRepository(db).Create(context.Background(), &model.Product{
		Name:        name,
		Price:       50000,
		ImageURL:    "https://example.com/" + name + ".jpg",
		Category:    "Test",
		IsAvailable: true,
		CreatedAt:   time.Now(),
	})
	if err != nil {
		t.Fatalf("create product: %v", err)
	}
	return id
}

func addReview(t *testing.T, uc review.UseCase, productID int64, rating int) *model.Review {
	t.Helper()
	rev, err := uc.CreateReview(context.Background(), &dto.CreateReviewInput{
		ProductID:    productID,
		CustomerName: "Le Van C",
		Rating:       rating,
		Comment:      "ngon",
	})
	if err != nil {
		t.Fatalf("create review: %v", err)
	}
	return rev
}

func TestCreateReview_Validation(t *testing.T) {
	db, _, uc := setup(t)
	ctx := context.Background()

	pid := createProduct(t, db, "Pho")

	for _, rating := range []int{0, 6, -1} {
		_, err := uc.CreateReview(ctx, &dto.CreateReviewInput{
			ProductID:    pid,
			CustomerName: "Le Van C",
			Rating:       rating,
		})
		if !errors.Is(err, review.ErrInvalidRating) {
			t.Fatalf("rating %d: expected ErrInvalidRating, got %v", rating, err)
		}
	}

	_, err := uc.CreateReview(ctx, &dto.CreateReviewInput{
		ProductID:    pid,
		CustomerName: "  ",
		Rating:       4,
	})
	if !errors.Is(err, review.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank name, got %v", err)
	}

	rev, err := uc.CreateReview(ctx, &dto.CreateReviewInput{
		ProductID:    pid,
		CustomerName: " Le Van C ",
		Rating:       5,
		Comment:      " tuyet voi ",
	})
	if err != nil {
		t.Fatalf("CreateReview: %v", err)
	}
	if rev.ID == 0 {
		t.Fatalf("expected assigned id")
	}
	if rev.CustomerName != "Le Van C" || rev.Comment != "tuyet voi" {
		t.Fatalf("expected trimmed fields, got %+v", rev)
	}
}

func TestAverageRating(t *testing.T) {
	db, _, uc := setup(t)
	ctx := context.Background()

	pid := createProduct(t, db, "Pho")
	other := createProduct(t, db, "Bun Bo")

	addReview(t, uc, pid, 5)
	addReview(t, uc, pid, 4)
	addReview(t, uc, other, 1)

	info, err := uc.AverageRating(ctx, pid)
	if err != nil {
		t.Fatalf("AverageRating: %v", err)
	}
	if info.Count != 2 {
		t.Fatalf("expected 2 reviews, got %d", info.Count)
	}
	if info.Average != 4.5 {
		t.Fatalf("expected average 4.5, got %v", info.Average)
	}

	empty, err := uc.AverageRating(ctx, 9999)
	if err != nil {
		t.Fatalf("AverageRating empty: %v", err)
	}
	if empty.Count != 0 || empty.Average != 0 {
		t.Fatalf("expected zero info for unreviewed product, got %+v", empty)
	}
}

func TestReviewStatistics(t *testing.T) {
	db, _, uc := setup(t)
	ctx := context.Background()

	pid := createProduct(t, db, "Pho")
	for _, rating := range []int{5, 5, 3} {
		addReview(t, uc, pid, rating)
	}

	stats, err := uc.Statistics(ctx)
	if err != nil {
		t.Fatalf("Statistics: %v", err)
	}
	if stats.Total != 3 {
		t.Fatalf("expected 3 reviews, got %d", stats.Total)
	}
	// 13/3 rounded to one decimal
	if stats.Average != 4.3 {
		t.Fatalf("expected average 4.3, got %v", stats.Average)
	}
	if len(stats.Distribution) != 5 {
		t.Fatalf("distribution must carry keys 1..5, got %v", stats.Distribution)
	}
	if stats.Distribution[5] != 2 || stats.Distribution[3] != 1 {
		t.Fatalf("distribution mismatch: %v", stats.Distribution)
	}
	sum := 0
	for _, n := range stats.Distribution {
		sum += n
	}
	if sum != stats.Total {
		t.Fatalf("distribution sums to %d, want %d", sum, stats.Total)
	}
}

func TestReviewStatistics_Empty(t *testing.T) {
	_, _, uc := setup(t)

	stats, err := uc.Statistics(context.Background())
	if err != nil {
		t.Fatalf("Statistics: %v", err)
	}
	if stats.Total != 0 || stats.Average != 0 {
		t.Fatalf("expected zero stats, got %+v", stats)
	}
	for rating := 1; rating <= 5; rating++ {
		if stats.Distribution[rating] != 0 {
			t.Fatalf("expected zero-filled distribution, got %v", stats.Distribution)
		}
	}
}

func TestListAllJoinsProducts(t *testing.T) {
	db, _, uc := setup(t)
	ctx := context.Background()

	pid := createProduct(t, db, "Pho")
	addReview(t, uc, pid, 4)

	all, err := uc.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected 1 review, got %d", len(all))
	}
	if all[0].ProductName != "Pho" || all[0].ProductImage == "" {
		t.Fatalf("product join mismatch: %+v", all[0])
	}
}

func TestDeleteReview(t *testing.T) {
	db, _, uc := setup(t)
	ctx := context.Background()

	pid := createProduct(t, db, "Pho")
	rev := addReview(t, uc, pid, 4)

	if err := uc.DeleteReview(ctx, rev.ID); err != nil {
		t.Fatalf("DeleteReview: %v", err)
	}

	remaining, err := uc.ListByProduct(ctx, pid)
	if err != nil {
		t.Fatalf("ListByProduct: %v", err)
	}
	if len(remaining) != 0 {
		t.Fatalf("expected no reviews after delete, got %+v", remaining)
	}
}

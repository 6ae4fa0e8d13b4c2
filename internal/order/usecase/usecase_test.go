package usecase_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/hnthao/foodorder/config"
	"github.com/hnthao/foodorder/internal/model"
	"github.com/hnthao/foodorder/internal/order"
	"github.com/hnthao/foodorder/internal/order/dto"
	"github.com/hnthao/foodorder/internal/order/repository"
	"github.com/hnthao/foodorder/internal/order/usecase"
	prodrepo "github.com/hnthao/foodorder/internal/product/repository"
	"github.com/hnthao/foodorder/internal/storage"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

func setup(t *testing.T) (*sqlx.DB, order.Repository, order.UseCase) {
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
	return db, repo, usecase.NewOrderUseCase(repo, zap.NewNop())
}

func createProduct(t *testing.T, db *sqlx.DB, name string, price float64) int64 {
	t.Helper()
	id, err := prodrepo.NewSQLiteRepository(db).Create(context.Background(), &model.Product{
		Name:        name,
		Price:       price,
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

func insertOrder(t *testing.T, repo order.Repository, status model.OrderStatus, total float64, createdAt time.Time) int64 {
	t.Helper()
	id, err := repo.Create(context.Background(), &model.Order{
		CustomerName:    "Tran Thi B",
		CustomerPhone:   "0987654321",
		CustomerAddress: "2 Hai Ba Trung, Q3",
		TotalAmount:     total,
		Status:          status,
		CreatedAt:       createdAt,
	}, nil)
	if err != nil {
		t.Fatalf("insert order: %v", err)
	}
	return id
}

func TestCheckout(t *testing.T) {
	db, repo, uc := setup(t)
	ctx := context.Background()

	p1 := createProduct(t, db, "Pizza", 20000)
	p2 := createProduct(t, db, "Cola", 15000)

	id, err := uc.Checkout(ctx, &dto.CheckoutInput{
		CustomerName:    "Nguyen Van A",
		CustomerPhone:   "0901234567",
		CustomerAddress: "1 Le Loi, Q1",
		Items: []model.CartItem{
			{ProductID: p1, Name: "Pizza", Price: 20000, Quantity: 2},
			{ProductID: p2, Name: "Cola", Price: 15000, Quantity: 1},
		},
	})
	if err != nil {
		t.Fatalf("Checkout: %v", err)
	}

	o, err := repo.FindByID(ctx, id)
	if err != nil || o == nil {
		t.Fatalf("FindByID: %v %v", o, err)
	}
	if o.TotalAmount != 55000 {
		t.Fatalf("expected total 55000, got %v", o.TotalAmount)
	}
	if o.Status != model.OrderStatusPending {
		t.Fatalf("new order should be pending, got %s", o.Status)
	}

	items, err := repo.FindItems(ctx, id)
	if err != nil {
		t.Fatalf("FindItems: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
}

func TestCheckout_Validation(t *testing.T) {
	_, _, uc := setup(t)
	ctx := context.Background()

	line := []model.CartItem{{ProductID: 1, Name: "Pizza", Price: 20000, Quantity: 1}}

	_, err := uc.Checkout(ctx, &dto.CheckoutInput{
		CustomerName:    "Nguyen Van A",
		CustomerPhone:   "0901234567",
		CustomerAddress: "1 Le Loi, Q1",
	})
	if !errors.Is(err, order.ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}

	_, err = uc.Checkout(ctx, &dto.CheckoutInput{
		CustomerName:    "   ",
		CustomerPhone:   "0901234567",
		CustomerAddress: "1 Le Loi, Q1",
		Items:           line,
	})
	if !errors.Is(err, order.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank name, got %v", err)
	}

	_, err = uc.Checkout(ctx, &dto.CheckoutInput{
		CustomerName:    "Nguyen Van A",
		CustomerPhone:   "0901234567",
		CustomerAddress: "1 Le Loi, Q1",
		Items:           []model.CartItem{{ProductID: 1, Name: "Pizza", Price: 20000, Quantity: 0}},
	})
	if !errors.Is(err, order.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for zero quantity, got %v", err)
	}
}

func TestStatistics(t *testing.T) {
	_, repo, uc := setup(t)
	ctx := context.Background()

	now := time.Now()
	insertOrder(t, repo, model.OrderStatusCompleted, 50000, now)
	insertOrder(t, repo, model.OrderStatusPending, 30000, now)
	insertOrder(t, repo, model.OrderStatusCompleted, 70000, now)

	stats, err := uc.Statistics(ctx)
	if err != nil {
		t.Fatalf("Statistics: %v", err)
	}
	if stats.Total != 3 {
		t.Fatalf("expected 3 total orders, got %d", stats.Total)
	}
	if stats.Completed != 2 || stats.Pending != 1 {
		t.Fatalf("status counts mismatch: %+v", stats)
	}
	if stats.Revenue != 120000 {
		t.Fatalf("revenue must count completed orders only, got %v", stats.Revenue)
	}
}

func TestRevenueByDate_ZeroFilledWindow(t *testing.T) {
	_, repo, uc := setup(t)
	ctx := context.Background()

	now := time.Now()
	insertOrder(t, repo, model.OrderStatusCompleted, 50000, now)
	insertOrder(t, repo, model.OrderStatusCompleted, 25000, now)
	// outside the window and wrong status, both must be ignored
	insertOrder(t, repo, model.OrderStatusCompleted, 99999, now.AddDate(0, 0, -10))
	insertOrder(t, repo, model.OrderStatusPending, 88888, now)

	buckets, err := uc.RevenueByDate(ctx, 7)
	if err != nil {
		t.Fatalf("RevenueByDate: %v", err)
	}
	if len(buckets) != 7 {
		t.Fatalf("expected 7 buckets, got %d", len(buckets))
	}

	for i := 1; i < len(buckets); i++ {
		if buckets[i-1].Date >= buckets[i].Date {
			t.Fatalf("buckets not ascending: %s before %s", buckets[i-1].Date, buckets[i].Date)
		}
	}

	today := now.Format("2006-01-02")
	last := buckets[len(buckets)-1]
	if last.Date != today {
		t.Fatalf("last bucket should be today %s, got %s", today, last.Date)
	}
	if last.Revenue != 75000 {
		t.Fatalf("expected 75000 for today, got %v", last.Revenue)
	}
	for _, b := range buckets[:len(buckets)-1] {
		if b.Revenue != 0 {
			t.Fatalf("expected zero revenue on %s, got %v", b.Date, b.Revenue)
		}
	}
}

func TestRevenueByMonth_ZeroFilledWindow(t *testing.T) {
	_, repo, uc := setup(t)
	ctx := context.Background()

	now := time.Now()
	insertOrder(t, repo, model.OrderStatusCompleted, 120000, now)

	buckets, err := uc.RevenueByMonth(ctx, 6)
	if err != nil {
		t.Fatalf("RevenueByMonth: %v", err)
	}
	if len(buckets) != 6 {
		t.Fatalf("expected 6 buckets, got %d", len(buckets))
	}

	thisMonth := now.Format("2006-01")
	last := buckets[len(buckets)-1]
	if last.Month != thisMonth {
		t.Fatalf("last bucket should be %s, got %s", thisMonth, last.Month)
	}
	if last.Revenue != 120000 {
		t.Fatalf("expected 120000 this month, got %v", last.Revenue)
	}
	for _, b := range buckets[:len(buckets)-1] {
		if b.Revenue != 0 {
			t.Fatalf("expected zero revenue in %s, got %v", b.Month, b.Revenue)
		}
	}
}

func TestStatusBreakdown_FallbackWhenEmpty(t *testing.T) {
	_, _, uc := setup(t)

	breakdown, err := uc.StatusBreakdown(context.Background())
	if err != nil {
		t.Fatalf("StatusBreakdown: %v", err)
	}
	if len(breakdown) != 2 {
		t.Fatalf("expected fallback pair, got %+v", breakdown)
	}
	if breakdown[0].Status != "pending" || breakdown[1].Status != "completed" {
		t.Fatalf("fallback statuses mismatch: %+v", breakdown)
	}
	if breakdown[0].Count != 0 || breakdown[1].Count != 0 {
		t.Fatalf("fallback counts must be zero: %+v", breakdown)
	}
}

func TestStatusBreakdown_SkipsEmptyStatuses(t *testing.T) {
	_, repo, uc := setup(t)
	ctx := context.Background()

	insertOrder(t, repo, model.OrderStatusCompleted, 50000, time.Now())

	breakdown, err := uc.StatusBreakdown(ctx)
	if err != nil {
		t.Fatalf("StatusBreakdown: %v", err)
	}
	if len(breakdown) != 1 || breakdown[0].Status != "completed" || breakdown[0].Count != 1 {
		t.Fatalf("unexpected breakdown: %+v", breakdown)
	}
}

func TestUpdateStatus(t *testing.T) {
	_, repo, uc := setup(t)
	ctx := context.Background()

	id := insertOrder(t, repo, model.OrderStatusPending, 50000, time.Now())

	if err := uc.UpdateStatus(ctx, id, "shipped"); !errors.Is(err, order.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
	if err := uc.UpdateStatus(ctx, 9999, "completed"); !errors.Is(err, order.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := uc.UpdateStatus(ctx, id, "completed"); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	o, _ := repo.FindByID(ctx, id)
	if o.Status != model.OrderStatusCompleted {
		t.Fatalf("expected completed, got %s", o.Status)
	}
}

func TestListOrders_RejectsUnknownStatus(t *testing.T) {
	_, _, uc := setup(t)

	if _, err := uc.ListOrders(context.Background(), "shipped"); !errors.Is(err, order.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestOrderCounters(t *testing.T) {
	_, repo, uc := setup(t)
	ctx := context.Background()

	now := time.Now()
	insertOrder(t, repo, model.OrderStatusPending, 10000, now)
	insertOrder(t, repo, model.OrderStatusPending, 10000, now.AddDate(0, 0, -3))
	insertOrder(t, repo, model.OrderStatusPending, 10000, now.AddDate(0, -2, 0))

	today, err := uc.OrdersToday(ctx)
	if err != nil {
		t.Fatalf("OrdersToday: %v", err)
	}
	if today != 1 {
		t.Fatalf("expected 1 order today, got %d", today)
	}

	week, err := uc.OrdersThisWeek(ctx)
	if err != nil {
		t.Fatalf("OrdersThisWeek: %v", err)
	}
	if week != 2 {
		t.Fatalf("expected 2 orders this week, got %d", week)
	}
}

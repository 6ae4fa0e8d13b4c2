package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hnthao/foodorder/internal/model"
	"github.com/hnthao/foodorder/internal/order"
	"github.com/hnthao/foodorder/internal/order/dto"
	"go.uber.org/zap"
)

type orderUseCase struct {
	repo   order.Repository
	logger *zap.Logger
}

func NewOrderUseCase(repo order.Repository, log *zap.Logger) order.UseCase {
	return &orderUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *orderUseCase) Checkout(ctx context.Context, input *dto.CheckoutInput) (int64, error) {
	name := strings.TrimSpace(input.CustomerName)
	phone := strings.TrimSpace(input.CustomerPhone)
	address := strings.TrimSpace(input.CustomerAddress)

	if name == "" || phone == "" || address == "" {
		return 0, fmt.Errorf("%w: customer name, phone and address are required", order.ErrInvalidInput)
	}
	if len(input.Items) == 0 {
		return 0, order.ErrEmptyCart
	}

	var total float64
	items := make([]model.OrderItem, 0, len(input.Items))
	for _, line := range input.Items {
		if line.Quantity <= 0 {
			return 0, fmt.Errorf("%w: quantity must be positive", order.ErrInvalidInput)
		}
		total += line.Price * float64(line.Quantity)
		items = append(items, model.OrderItem{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Price:     line.Price,
		})
	}

	o := &model.Order{
		CustomerName:    name,
		CustomerPhone:   phone,
		CustomerAddress: address,
		TotalAmount:     total,
		Status:          model.OrderStatusPending,
		CreatedAt:       time.Now(),
	}

	id, err := uc.repo.Create(ctx, o, items)
	if err != nil {
		return 0, err
	}

	uc.logger.Info("order created",
		zap.Int64("order_id", id),
		zap.Float64("total_amount", total),
		zap.Int("items", len(items)))
	return id, nil
}

func (uc *orderUseCase) GetOrder(ctx context.Context, id int64) (*model.Order, []model.OrderItemDetail, error) {
	o, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if o == nil {
		return nil, nil, order.ErrNotFound
	}

	items, err := uc.repo.FindItems(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return o, items, nil
}

func (uc *orderUseCase) ListOrders(ctx context.Context, status string) ([]model.OrderSummary, error) {
	if status == "" {
		return uc.repo.FindAll(ctx)
	}

	s := model.OrderStatus(status)
	if !s.Valid() {
		return nil, order.ErrInvalidStatus
	}
	return uc.repo.FindByStatus(ctx, s)
}

func (uc *orderUseCase) UpdateStatus(ctx context.Context, id int64, status string) error {
	s := model.OrderStatus(status)
	if !s.Valid() {
		return order.ErrInvalidStatus
	}

	o, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if o == nil {
		return order.ErrNotFound
	}

	if err := uc.repo.UpdateStatus(ctx, id, s); err != nil {
		return err
	}

	uc.logger.Info("order status updated",
		zap.Int64("order_id", id),
		zap.String("from", string(o.Status)),
		zap.String("to", status))
	return nil
}

// Statistics folds a single per-status aggregate query into the dashboard
// headline numbers. Only completed orders contribute to revenue.
func (uc *orderUseCase) Statistics(ctx context.Context) (*dto.OrderStatistics, error) {
	rows, err := uc.repo.AggregateByStatus(ctx)
	if err != nil {
		return nil, err
	}

	stats := &dto.OrderStatistics{}
	for _, row := range rows {
		stats.Total += row.Count
		switch model.OrderStatus(row.Status) {
		case model.OrderStatusPending:
			stats.Pending = row.Count
		case model.OrderStatusProcessing:
			stats.Processing = row.Count
		case model.OrderStatusCompleted:
			stats.Completed = row.Count
			stats.Revenue += row.Revenue
		case model.OrderStatusCancelled:
			stats.Cancelled = row.Count
		}
	}
	return stats, nil
}

func (uc *orderUseCase) OrdersToday(ctx context.Context) (int, error) {
	return uc.repo.CountSince(ctx, startOfDay(time.Now()))
}

func (uc *orderUseCase) OrdersThisWeek(ctx context.Context) (int, error) {
	return uc.repo.CountSince(ctx, startOfDay(time.Now()).AddDate(0, 0, -7))
}

func (uc *orderUseCase) OrdersThisMonth(ctx context.Context) (int, error) {
	return uc.repo.CountSince(ctx, startOfMonth(time.Now()))
}

// RevenueByDate returns exactly `days` ascending calendar-day buckets ending
// today. Buckets are zero-filled first so the chart always has a full series,
// then completed-order revenue is overlaid per day.
func (uc *orderUseCase) RevenueByDate(ctx context.Context, days int) ([]dto.DailyRevenue, error) {
	if days <= 0 {
		days = 7
	}

	now := time.Now()
	windowStart := startOfDay(now).AddDate(0, 0, -(days - 1))

	buckets := make([]dto.DailyRevenue, days)
	index := make(map[string]int, days)
	for i := 0; i < days; i++ {
		date := windowStart.AddDate(0, 0, i).Format("2006-01-02")
		buckets[i] = dto.DailyRevenue{Date: date}
		index[date] = i
	}

	completed, err := uc.repo.CompletedSince(ctx, windowStart)
	if err != nil {
		return nil, err
	}
	for _, row := range completed {
		date := row.CreatedAt.In(now.Location()).Format("2006-01-02")
		if i, ok := index[date]; ok {
			buckets[i].Revenue += row.TotalAmount
		}
	}

	return buckets, nil
}

// RevenueByMonth is the monthly variant of RevenueByDate, with YYYY-MM buckets.
func (uc *orderUseCase) RevenueByMonth(ctx context.Context, months int) ([]dto.MonthlyRevenue, error) {
	if months <= 0 {
		months = 6
	}

	now := time.Now()
	windowStart := startOfMonth(now).AddDate(0, -(months - 1), 0)

	buckets := make([]dto.MonthlyRevenue, months)
	index := make(map[string]int, months)
	for i := 0; i < months; i++ {
		month := windowStart.AddDate(0, i, 0).Format("2006-01")
		buckets[i] = dto.MonthlyRevenue{Month: month}
		index[month] = i
	}

	completed, err := uc.repo.CompletedSince(ctx, windowStart)
	if err != nil {
		return nil, err
	}
	for _, row := range completed {
		month := row.CreatedAt.In(now.Location()).Format("2006-01")
		if i, ok := index[month]; ok {
			buckets[i].Revenue += row.TotalAmount
		}
	}

	return buckets, nil
}

// StatusBreakdown reports counts for statuses present in storage. An empty
// order set yields a fixed pending/completed pair so chart rendering never
// receives an empty series.
func (uc *orderUseCase) StatusBreakdown(ctx context.Context) ([]dto.StatusCount, error) {
	rows, err := uc.repo.AggregateByStatus(ctx)
	if err != nil {
		return nil, err
	}

	breakdown := make([]dto.StatusCount, 0, len(rows))
	for _, row := range rows {
		if row.Count > 0 {
			breakdown = append(breakdown, dto.StatusCount{Status: row.Status, Count: row.Count})
		}
	}

	if len(breakdown) == 0 {
		return []dto.StatusCount{
			{Status: string(model.OrderStatusPending), Count: 0},
			{Status: string(model.OrderStatusCompleted), Count: 0},
		}, nil
	}
	return breakdown, nil
}

func (uc *orderUseCase) TopProducts(ctx context.Context, limit int) ([]dto.TopProduct, error) {
	if limit <= 0 {
		limit = 10
	}
	return uc.repo.TopProducts(ctx, limit)
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func startOfMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
}

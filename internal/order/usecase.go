package order

import (
	"context"

	"github.com/hnthao/foodorder/internal/model"
	"github.com/hnthao/foodorder/internal/order/dto"
)

type UseCase interface {
	Checkout(ctx context.Context, input *dto.CheckoutInput) (int64, error)
	GetOrder(ctx context.Context, id int64) (*model.Order, []model.OrderItemDetail, error)
	ListOrders(ctx context.Context, status string) ([]model.OrderSummary, error)
	UpdateStatus(ctx context.Context, id int64, status string) error

	Statistics(ctx context.Context) (*dto.OrderStatistics, error)
	OrdersToday(ctx context.Context) (int, error)
	OrdersThisWeek(ctx context.Context) (int, error)
	OrdersThisMonth(ctx context.Context) (int, error)
	RevenueByDate(ctx context.Context, days int) ([]dto.DailyRevenue, error)
	RevenueByMonth(ctx context.Context, months int) ([]dto.MonthlyRevenue, error)
	StatusBreakdown(ctx context.Context) ([]dto.StatusCount, error)
	TopProducts(ctx context.Context, limit int) ([]dto.TopProduct, error)
}

package order

import (
	"context"
	"time"

	"github.com/hnthao/foodorder/internal/model"
	"github.com/hnthao/foodorder/internal/order/dto"
)

type Repository interface {
	// Create persists the order and its items in one transaction.
	// Partial writes are never visible to callers.
	Create(ctx context.Context, o *model.Order, items []model.OrderItem) (int64, error)

	FindByID(ctx context.Context, id int64) (*model.Order, error)
	FindItems(ctx context.Context, orderID int64) ([]model.OrderItemDetail, error)
	FindAll(ctx context.Context) ([]model.OrderSummary, error)
	FindByStatus(ctx context.Context, status model.OrderStatus) ([]model.OrderSummary, error)
	UpdateStatus(ctx context.Context, id int64, status model.OrderStatus) error

	// Aggregate reads feeding the statistics engine.
	AggregateByStatus(ctx context.Context) ([]dto.StatusAggregate, error)
	CountSince(ctx context.Context, since time.Time) (int, error)
	CompletedSince(ctx context.Context, since time.Time) ([]dto.CompletedOrder, error)
	TopProducts(ctx context.Context, limit int) ([]dto.TopProduct, error)
}

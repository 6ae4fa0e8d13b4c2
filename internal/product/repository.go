package product

import (
	"context"

	"github.com/hnthao/foodorder/internal/model"
	"github.com/hnthao/foodorder/internal/product/dto"
)

type Repository interface {
	Create(ctx context.Context, p *model.Product) (int64, error)
	FindByID(ctx context.Context, id int64) (*model.Product, error)
	FindAll(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, error)
	Categories(ctx context.Context) ([]string, error)
	Update(ctx context.Context, p *model.Product) error

	// SoftDelete clears is_available; rows are never removed so that
	// historical order items keep a valid product reference.
	SoftDelete(ctx context.Context, id int64) error
}

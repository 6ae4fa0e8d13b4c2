package product

import (
	"context"

	"github.com/hnthao/foodorder/internal/model"
	"github.com/hnthao/foodorder/internal/product/dto"
)

type UseCase interface {
	CreateProduct(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error)
	GetProduct(ctx context.Context, id int64) (*model.Product, error)
	ListProducts(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, error)
	Categories(ctx context.Context) ([]string, error)
	UpdateProduct(ctx context.Context, input *dto.UpdateProductInput) (*model.Product, error)
	DeleteProduct(ctx context.Context, id int64) error

	// RelatedProducts returns other available products of the same category.
	RelatedProducts(ctx context.Context, p *model.Product, limit int) ([]model.Product, error)
}

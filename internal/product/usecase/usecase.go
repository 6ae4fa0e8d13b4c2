package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hnthao/foodorder/internal/model"
	"github.com/hnthao/foodorder/internal/product"
	"github.com/hnthao/foodorder/internal/product/dto"
	"go.uber.org/zap"
)

type productUseCase struct {
	repo   product.Repository
	logger *zap.Logger
}

func NewProductUseCase(repo product.Repository, log *zap.Logger) product.UseCase {
	return &productUseCase{
		repo:   repo,
		logger: log,
	}
}

func validateInput(name, imageURL, category string, price float64) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name is required", product.ErrInvalidInput)
	}
	if strings.TrimSpace(imageURL) == "" {
		return fmt.Errorf("%w: image_url is required", product.ErrInvalidInput)
	}
	if strings.TrimSpace(category) == "" {
		return fmt.Errorf("%w: category is required", product.ErrInvalidInput)
	}
	if price <= 0 {
		return fmt.Errorf("%w: price must be greater than zero", product.ErrInvalidInput)
	}
	return nil
}

func (uc *productUseCase) CreateProduct(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error) {
	if err := validateInput(input.Name, input.ImageURL, input.Category, input.Price); err != nil {
		return nil, err
	}

	p := &model.Product{
		Name:        strings.TrimSpace(input.Name),
		Description: strings.TrimSpace(input.Description),
		Price:       input.Price,
		ImageURL:    strings.TrimSpace(input.ImageURL),
		Category:    strings.TrimSpace(input.Category),
		IsAvailable: true,
		CreatedAt:   time.Now(),
	}

	id, err := uc.repo.Create(ctx, p)
	if err != nil {
		return nil, err
	}
	p.ID = id

	uc.logger.Info("product created", zap.Int64("id", id), zap.String("name", p.Name))
	return p, nil
}

func (uc *productUseCase) GetProduct(ctx context.Context, id int64) (*model.Product, error) {
	p, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, product.ErrNotFound
	}
	return p, nil
}

func (uc *productUseCase) ListProducts(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, error) {
	return uc.repo.FindAll(ctx, filters)
}

func (uc *productUseCase) Categories(ctx context.Context) ([]string, error) {
	return uc.repo.Categories(ctx)
}

func (uc *productUseCase) UpdateProduct(ctx context.Context, input *dto.UpdateProductInput) (*model.Product, error) {
	if err := validateInput(input.Name, input.ImageURL, input.Category, input.Price); err != nil {
		return nil, err
	}

	p, err := uc.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, product.ErrNotFound
	}

	p.Name = strings.TrimSpace(input.Name)
	p.Description = strings.TrimSpace(input.Description)
	p.Price = input.Price
	p.ImageURL = strings.TrimSpace(input.ImageURL)
	p.Category = strings.TrimSpace(input.Category)

	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}

	uc.logger.Info("product updated", zap.Int64("id", p.ID))
	return p, nil
}

func (uc *productUseCase) DeleteProduct(ctx context.Context, id int64) error {
	p, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return product.ErrNotFound
	}

	if err := uc.repo.SoftDelete(ctx, id); err != nil {
		return err
	}

	uc.logger.Info("product soft-deleted", zap.Int64("id", id), zap.String("name", p.Name))
	return nil
}

func (uc *productUseCase) RelatedProducts(ctx context.Context, p *model.Product, limit int) ([]model.Product, error) {
	same, err := uc.repo.FindAll(ctx, &dto.ProductFilters{Category: p.Category})
	if err != nil {
		return nil, err
	}

	related := make([]model.Product, 0, limit)
	for _, candidate := range same {
		if candidate.ID == p.ID {
			continue
		}
		related = append(related, candidate)
		if len(related) == limit {
			break
		}
	}
	return related, nil
}

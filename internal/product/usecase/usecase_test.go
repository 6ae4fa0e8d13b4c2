package usecase_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/hnthao/foodorder/config"
	"github.com/hnthao/foodorder/internal/product"
	"github.com/hnthao/foodorder/internal/product/dto"
	"github.com/hnthao/foodorder/internal/product/repository"
	"github.com/hnthao/foodorder/internal/product/usecase"
	"github.com/hnthao/foodorder/internal/storage"
	"go.uber.org/zap"
)

func setup(t *testing.T) product.UseCase {
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
	return usecase.NewProductUseCase(repository.NewSQLiteRepository(db), zap.NewNop())
}

func createInput(name, category string, price float64) *dto.CreateProductInput {
	return &dto.CreateProductInput{
		Name:        name,
		Description: name + " description",
		Price:       price,
		ImageURL:    "https://example.com/" + name + ".jpg",
		Category:    category,
	}
}

func TestCreateProduct_Validation(t *testing.T) {
	uc := setup(t)
	ctx := context.Background()

	cases := []struct {
		name  string
		input *dto.CreateProductInput
	}{
		{"blank name", &dto.CreateProductInput{Name: "  ", Price: 100, ImageURL: "x", Category: "y"}},
		{"missing image", &dto.CreateProductInput{Name: "Pho", Price: 100, Category: "y"}},
		{"missing category", &dto.CreateProductInput{Name: "Pho", Price: 100, ImageURL: "x"}},
		{"zero price", &dto.CreateProductInput{Name: "Pho", Price: 0, ImageURL: "x", Category: "y"}},
		{"negative price", &dto.CreateProductInput{Name: "Pho", Price: -5, ImageURL: "x", Category: "y"}},
	}
	for _, tc := range cases {
		if _, err := uc.CreateProduct(ctx, tc.input); !errors.Is(err, product.ErrInvalidInput) {
			t.Fatalf("%s: expected ErrInvalidInput, got %v", tc.name, err)
		}
	}

	p, err := uc.CreateProduct(ctx, createInput(" Pho ", "Vietnamese", 55000))
	if err != nil {
		t.Fatalf("CreateProduct: %v", err)
	}
	if p.ID == 0 || p.Name != "Pho" || !p.IsAvailable {
		t.Fatalf("unexpected product: %+v", p)
	}
}

func TestGetProduct_NotFound(t *testing.T) {
	uc := setup(t)

	if _, err := uc.GetProduct(context.Background(), 9999); !errors.Is(err, product.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateProduct(t *testing.T) {
	uc := setup(t)
	ctx := context.Background()

	p, err := uc.CreateProduct(ctx, createInput("Sushi", "Japanese", 95000))
	if err != nil {
		t.Fatalf("CreateProduct: %v", err)
	}

	updated, err := uc.UpdateProduct(ctx, &dto.UpdateProductInput{
		ID:          p.ID,
		Name:        "Salmon Sushi",
		Description: "fresh",
		Price:       99000,
		ImageURL:    p.ImageURL,
		Category:    p.Category,
	})
	if err != nil {
		t.Fatalf("UpdateProduct: %v", err)
	}
	if updated.Name != "Salmon Sushi" || updated.Price != 99000 {
		t.Fatalf("update mismatch: %+v", updated)
	}

	_, err = uc.UpdateProduct(ctx, &dto.UpdateProductInput{
		ID:       9999,
		Name:     "Ghost",
		Price:    100,
		ImageURL: "x",
		Category: "y",
	})
	if !errors.Is(err, product.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteProduct(t *testing.T) {
	uc := setup(t)
	ctx := context.Background()

	p, err := uc.CreateProduct(ctx, createInput("Ramen", "Japanese", 85000))
	if err != nil {
		t.Fatalf("CreateProduct: %v", err)
	}

	if err := uc.DeleteProduct(ctx, p.ID); err != nil {
		t.Fatalf("DeleteProduct: %v", err)
	}

	visible, err := uc.ListProducts(ctx, &dto.ProductFilters{})
	if err != nil {
		t.Fatalf("ListProducts: %v", err)
	}
	if len(visible) != 0 {
		t.Fatalf("soft-deleted product still listed: %+v", visible)
	}

	if err := uc.DeleteProduct(ctx, 9999); !errors.Is(err, product.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRelatedProducts(t *testing.T) {
	uc := setup(t)
	ctx := context.Background()

	base, err := uc.CreateProduct(ctx, createInput("Pizza Margherita", "Pizza", 120000))
	if err != nil {
		t.Fatalf("CreateProduct: %v", err)
	}
	for _, name := range []string{"Pizza Pepperoni", "Pizza Hawaiian", "Pizza Seafood"} {
		if _, err := uc.CreateProduct(ctx, createInput(name, "Pizza", 130000)); err != nil {
			t.Fatalf("CreateProduct: %v", err)
		}
	}
	if _, err := uc.CreateProduct(ctx, createInput("Cola", "Drinks", 15000)); err != nil {
		t.Fatalf("CreateProduct: %v", err)
	}

	related, err := uc.RelatedProducts(ctx, base, 2)
	if err != nil {
		t.Fatalf("RelatedProducts: %v", err)
	}
	if len(related) != 2 {
		t.Fatalf("expected 2 related products, got %d", len(related))
	}
	for _, r := range related {
		if r.ID == base.ID {
			t.Fatalf("related listing must exclude the product itself")
		}
		if r.Category != "Pizza" {
			t.Fatalf("related product from wrong category: %+v", r)
		}
	}
}

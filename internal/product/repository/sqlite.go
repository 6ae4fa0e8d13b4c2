package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/hnthao/foodorder/internal/model"
	"github.com/hnthao/foodorder/internal/product/dto"
	"github.com/jmoiron/sqlx"
)

type SQLiteRepository struct {
	DB *sqlx.DB
}

func NewSQLiteRepository(db *sqlx.DB) *SQLiteRepository {
	return &SQLiteRepository{DB: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, p *model.Product) (int64, error) {
	query := `
        INSERT INTO products (name, description, price, image_url, category, is_available, created_at)
        VALUES (:name, :description, :price, :image_url, :category, :is_available, :created_at)
    `
	res, err := r.DB.NamedExecContext(ctx, query, p)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *SQLiteRepository) FindByID(ctx context.Context, id int64) (*model.Product, error) {
	var product model.Product
	query := `SELECT * FROM products WHERE id = ? LIMIT 1`
	err := r.DB.GetContext(ctx, &product, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (r *SQLiteRepository) FindAll(ctx context.Context, f *dto.ProductFilters) ([]model.Product, error) {
	conditions := []string{}
	args := []interface{}{}

	if !f.IncludeUnavailable {
		conditions = append(conditions, "is_available = TRUE")
	}
	if f.Category != "" {
		conditions = append(conditions, "category = ?")
		args = append(args, f.Category)
	}
	if f.SearchQuery != "" {
		conditions = append(conditions, "(name LIKE ? OR description LIKE ?)")
		keyword := "%" + f.SearchQuery + "%"
		args = append(args, keyword, keyword)
	}

	query := "SELECT * FROM products"
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC, id DESC"

	products := []model.Product{}
	if err := r.DB.SelectContext(ctx, &products, query, args...); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *SQLiteRepository) Categories(ctx context.Context) ([]string, error) {
	categories := []string{}
	query := `SELECT DISTINCT category FROM products WHERE is_available = TRUE ORDER BY category`
	if err := r.DB.SelectContext(ctx, &categories, query); err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *SQLiteRepository) Update(ctx context.Context, p *model.Product) error {
	query := `
        UPDATE products
        SET name = :name,
            description = :description,
            price = :price,
            image_url = :image_url,
            category = :category
        WHERE id = :id
    `
	_, err := r.DB.NamedExecContext(ctx, query, p)
	return err
}

func (r *SQLiteRepository) SoftDelete(ctx context.Context, id int64) error {
	_, err := r.DB.ExecContext(ctx, "UPDATE products SET is_available = FALSE WHERE id = ?", id)
	return err
}

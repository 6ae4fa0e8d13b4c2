package repository

import (
	"context"
	"database/sql"
	"math"

	"github.com/hnthao/foodorder/internal/model"
	"github.com/hnthao/foodorder/internal/review/dto"
	"github.com/jmoiron/sqlx"
)

type SQLiteRepository struct {
	DB *sqlx.DB
}

func NewSQLiteRepository(db *sqlx.DB) *SQLiteRepository {
	return &SQLiteRepository{DB: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, rev *model.Review) (int64, error) {
	query := `
        INSERT INTO reviews (product_id, order_id, customer_name, rating, comment, created_at)
        VALUES (:product_id, :order_id, :customer_name, :rating, :comment, :created_at)
    `
	res, err := r.DB.NamedExecContext(ctx, query, rev)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *SQLiteRepository) FindByProduct(ctx context.Context, productID int64) ([]model.Review, error) {
	reviews := []model.Review{}
	query := `SELECT * FROM reviews WHERE product_id = ? ORDER BY created_at DESC, id DESC`
	if err := r.DB.SelectContext(ctx, &reviews, query, productID); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *SQLiteRepository) FindAll(ctx context.Context) ([]model.ReviewDetail, error) {
	reviews := []model.ReviewDetail{}
	query := `
        SELECT r.*, p.name AS product_name, p.image_url AS product_image
        FROM reviews r
        JOIN products p ON r.product_id = p.id
        ORDER BY r.created_at DESC, r.id DESC
    `
	if err := r.DB.SelectContext(ctx, &reviews, query); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *SQLiteRepository) FindRecent(ctx context.Context, limit int) ([]model.ReviewDetail, error) {
	reviews := []model.ReviewDetail{}
	query := `
        SELECT r.*, p.name AS product_name, p.image_url AS product_image
        FROM reviews r
        JOIN products p ON r.product_id = p.id
        ORDER BY r.created_at DESC, r.id DESC
        LIMIT ?
    `
	if err := r.DB.SelectContext(ctx, &reviews, query, limit); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *SQLiteRepository) AverageRating(ctx context.Context, productID int64) (*dto.RatingInfo, error) {
	var row struct {
		Average sql.NullFloat64 `db:"avg_rating"`
		Count   int             `db:"review_count"`
	}
	query := `
        SELECT AVG(rating) AS avg_rating, COUNT(*) AS review_count
        FROM reviews
        WHERE product_id = ?
    `
	if err := r.DB.GetContext(ctx, &row, query, productID); err != nil {
		return nil, err
	}

	info := &dto.RatingInfo{Count: row.Count}
	if row.Average.Valid {
		info.Average = math.Round(row.Average.Float64*10) / 10
	}
	return info, nil
}

func (r *SQLiteRepository) CountByRating(ctx context.Context) ([]dto.RatingCount, error) {
	rows := []dto.RatingCount{}
	query := `SELECT rating, COUNT(*) AS count FROM reviews GROUP BY rating`
	if err := r.DB.SelectContext(ctx, &rows, query); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.DB.ExecContext(ctx, "DELETE FROM reviews WHERE id = ?", id)
	return err
}

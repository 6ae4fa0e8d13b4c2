package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/hnthao/foodorder/internal/model"
	"github.com/hnthao/foodorder/internal/order/dto"
	"github.com/jmoiron/sqlx"
)

type SQLiteRepository struct {
	DB *sqlx.DB
}

func NewSQLiteRepository(db *sqlx.DB) *SQLiteRepository {
	return &SQLiteRepository{DB: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, o *model.Order, items []model.OrderItem) (int64, error) {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	res, err := tx.NamedExecContext(ctx, `
        INSERT INTO orders (customer_name, customer_phone, customer_address, total_amount, status, created_at)
        VALUES (:customer_name, :customer_phone, :customer_address, :total_amount, :status, :created_at)
    `, o)
	if err != nil {
		return 0, err
	}

	orderID, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	for i := range items {
		items[i].OrderID = orderID
		_, err := tx.NamedExecContext(ctx, `
            INSERT INTO order_items (order_id, product_id, quantity, price)
            VALUES (:order_id, :product_id, :quantity, :price)
        `, items[i])
		if err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return orderID, nil
}

func (r *SQLiteRepository) FindByID(ctx context.Context, id int64) (*model.Order, error) {
	var order model.Order
	err := r.DB.GetContext(ctx, &order, "SELECT * FROM orders WHERE id = ? LIMIT 1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

func (r *SQLiteRepository) FindItems(ctx context.Context, orderID int64) ([]model.OrderItemDetail, error) {
	items := []model.OrderItemDetail{}
	query := `
        SELECT oi.*, p.name, p.image_url
        FROM order_items oi
        JOIN products p ON oi.product_id = p.id
        WHERE oi.order_id = ?
    `
	if err := r.DB.SelectContext(ctx, &items, query, orderID); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *SQLiteRepository) FindAll(ctx context.Context) ([]model.OrderSummary, error) {
	orders := []model.OrderSummary{}
	query := `
        SELECT o.*, COUNT(oi.id) AS item_count
        FROM orders o
        LEFT JOIN order_items oi ON o.id = oi.order_id
        GROUP BY o.id
        ORDER BY o.created_at DESC, o.id DESC
    `
	if err := r.DB.SelectContext(ctx, &orders, query); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *SQLiteRepository) FindByStatus(ctx context.Context, status model.OrderStatus) ([]model.OrderSummary, error) {
	orders := []model.OrderSummary{}
	query := `
        SELECT o.*, COUNT(oi.id) AS item_count
        FROM orders o
        LEFT JOIN order_items oi ON o.id = oi.order_id
        WHERE o.status = ?
        GROUP BY o.id
        ORDER BY o.created_at DESC, o.id DESC
    `
	if err := r.DB.SelectContext(ctx, &orders, query, status); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *SQLiteRepository) UpdateStatus(ctx context.Context, id int64, status model.OrderStatus) error {
	_, err := r.DB.ExecContext(ctx, "UPDATE orders SET status = ? WHERE id = ?", status, id)
	return err
}

func (r *SQLiteRepository) AggregateByStatus(ctx context.Context) ([]dto.StatusAggregate, error) {
	rows := []dto.StatusAggregate{}
	query := `
        SELECT status, COUNT(*) AS count, COALESCE(SUM(total_amount), 0) AS revenue
        FROM orders
        GROUP BY status
    `
	if err := r.DB.SelectContext(ctx, &rows, query); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *SQLiteRepository) CountSince(ctx context.Context, since time.Time) (int, error) {
	var count int
	err := r.DB.GetContext(ctx, &count, "SELECT COUNT(*) FROM orders WHERE created_at >= ?", since)
	return count, err
}

func (r *SQLiteRepository) CompletedSince(ctx context.Context, since time.Time) ([]dto.CompletedOrder, error) {
	rows := []dto.CompletedOrder{}
	query := `
        SELECT created_at, total_amount
        FROM orders
        WHERE status = ? AND created_at >= ?
        ORDER BY created_at ASC
    `
	if err := r.DB.SelectContext(ctx, &rows, query, model.OrderStatusCompleted, since); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *SQLiteRepository) TopProducts(ctx context.Context, limit int) ([]dto.TopProduct, error) {
	rows := []dto.TopProduct{}
	query := `
        SELECT p.name, SUM(oi.quantity) AS total_sold, SUM(oi.quantity * oi.price) AS revenue
        FROM order_items oi
        JOIN products p ON oi.product_id = p.id
        JOIN orders o ON oi.order_id = o.id
        WHERE o.status = ?
        GROUP BY oi.product_id, p.name
        ORDER BY total_sold DESC
        LIMIT ?
    `
	if err := r.DB.SelectContext(ctx, &rows, query, model.OrderStatusCompleted, limit); err != nil {
		return nil, err
	}
	return rows, nil
}

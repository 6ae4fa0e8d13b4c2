package model

import "time"

type Review struct {
	ID           int64     `db:"id" json:"id"`
	ProductID    int64     `db:"product_id" json:"product_id"`
	OrderID      *int64    `db:"order_id" json:"order_id"`
	CustomerName string    `db:"customer_name" json:"customer_name"`
	Rating       int       `db:"rating" json:"rating"`
	Comment      string    `db:"comment" json:"comment"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// ReviewDetail is a review joined with its product.
type ReviewDetail struct {
	Review
	ProductName  string `db:"product_name" json:"product_name"`
	ProductImage string `db:"product_image" json:"product_image"`
}

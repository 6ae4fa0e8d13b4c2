package dto

import "time"

// OrderStatistics is the dashboard headline block. Revenue counts
// completed orders only.
type OrderStatistics struct {
	Total      int     `json:"total"`
	Pending    int     `json:"pending"`
	Processing int     `json:"processing"`
	Completed  int     `json:"completed"`
	Cancelled  int     `json:"cancelled"`
	Revenue    float64 `json:"revenue"`
}

type DailyRevenue struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
}

type MonthlyRevenue struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

type TopProduct struct {
	Name      string  `db:"name" json:"name"`
	TotalSold int     `db:"total_sold" json:"total_sold"`
	Revenue   float64 `db:"revenue" json:"revenue"`
}

// StatusAggregate is one row of the per-status aggregate query.
type StatusAggregate struct {
	Status  string  `db:"status"`
	Count   int     `db:"count"`
	Revenue float64 `db:"revenue"`
}

// CompletedOrder is the slim projection the revenue bucketing works on.
type CompletedOrder struct {
	CreatedAt   time.Time `db:"created_at"`
	TotalAmount float64   `db:"total_amount"`
}

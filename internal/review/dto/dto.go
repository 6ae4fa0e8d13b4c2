package dto

type CreateReviewInput struct {
	ProductID    int64
	OrderID      *int64
	CustomerName string
	Rating       int
	Comment      string
}

// RatingInfo summarizes one product's reviews. Average is rounded to one
// decimal and zero when there are no reviews.
type RatingInfo struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

// ReviewStatistics always carries all five distribution keys, zero-filled.
type ReviewStatistics struct {
	Total        int         `json:"total"`
	Average      float64     `json:"average"`
	Distribution map[int]int `json:"distribution"`
}

// RatingCount is one row of the per-rating aggregate query.
type RatingCount struct {
	Rating int `db:"rating"`
	Count  int `db:"count"`
}

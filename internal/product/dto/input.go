package dto

type CreateProductInput struct {
	Name        string
	Description string
	Price       float64
	ImageURL    string
	Category    string
}

type UpdateProductInput struct {
	ID          int64
	Name        string
	Description string
	Price       float64
	ImageURL    string
	Category    string
}

// ProductFilters narrows catalog listings. IncludeUnavailable is only ever
// set by the admin surface.
type ProductFilters struct {
	Category           string
	SearchQuery        string
	IncludeUnavailable bool
}

package model

// CartItem is one line of a session cart. Price is snapshotted when the
// item is added, so a later catalog price change does not move the cart.
type CartItem struct {
	ProductID int64   `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	ImageURL  string  `json:"image_url"`
	Quantity  int     `json:"quantity"`
}

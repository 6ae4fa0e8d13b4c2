// Package cart holds the session-scoped shopping cart and its arithmetic.
// Carts are never persisted; they live as JSON inside the caller's cookie
// session and are rebuilt from it on every request.
package cart

import (
	"encoding/json"

	"github.com/hnthao/foodorder/internal/model"
)

type Action string

const (
	ActionIncrease Action = "increase"
	ActionDecrease Action = "decrease"
	ActionRemove   Action = "remove"
)

func (a Action) Valid() bool {
	switch a {
	case ActionIncrease, ActionDecrease, ActionRemove:
		return true
	}
	return false
}

// Pricing carries the checkout fee rules. Shipping is free at or above
// the threshold, otherwise the flat fee applies.
type Pricing struct {
	FreeShippingThreshold float64
	ShippingFee           float64
}

type Summary struct {
	Subtotal    float64 `json:"subtotal"`
	ShippingFee float64 `json:"shipping_fee"`
	Total       float64 `json:"total"`
}

type Cart struct {
	Items []model.CartItem `json:"items"`
}

// Add merges the quantity into an existing line for the same product, or
// appends a new line with a price snapshot taken from the product.
func (c *Cart) Add(p *model.Product, quantity int) {
	for i := range c.Items {
		if c.Items[i].ProductID == p.ID {
			c.Items[i].Quantity += quantity
			return
		}
	}
	c.Items = append(c.Items, model.CartItem{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		ImageURL:  p.ImageURL,
		Quantity:  quantity,
	})
}

// Apply mutates the line for productID. Decreasing to zero or below removes
// the line. Unknown products are a no-op.
func (c *Cart) Apply(productID int64, action Action) {
	for i := range c.Items {
		if c.Items[i].ProductID != productID {
			continue
		}
		switch action {
		case ActionIncrease:
			c.Items[i].Quantity++
		case ActionDecrease:
			c.Items[i].Quantity--
			if c.Items[i].Quantity <= 0 {
				c.remove(i)
			}
		case ActionRemove:
			c.remove(i)
		}
		return
	}
}

func (c *Cart) remove(i int) {
	c.Items = append(c.Items[:i], c.Items[i+1:]...)
}

func (c *Cart) Clear() {
	c.Items = nil
}

func (c *Cart) Empty() bool {
	return len(c.Items) == 0
}

func (c *Cart) Subtotal() float64 {
	var subtotal float64
	for _, item := range c.Items {
		subtotal += item.Price * float64(item.Quantity)
	}
	return subtotal
}

// TotalQuantity sums quantities across all lines.
func (c *Cart) TotalQuantity() int {
	var total int
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}

func (c *Cart) Summarize(p Pricing) Summary {
	subtotal := c.Subtotal()
	fee := p.ShippingFee
	if subtotal >= p.FreeShippingThreshold {
		fee = 0
	}
	return Summary{
		Subtotal:    subtotal,
		ShippingFee: fee,
		Total:       subtotal + fee,
	}
}

// Encode serializes the cart for session storage.
func (c *Cart) Encode() string {
	data, err := json.Marshal(c.Items)
	if err != nil {
		return "[]"
	}
	return string(data)
}

// Decode rebuilds a cart from its session form. Corrupt payloads yield an
// empty cart rather than an error; the session is the only copy anyway.
func Decode(raw string) Cart {
	var items []model.CartItem
	if raw != "" {
		if err := json.Unmarshal([]byte(raw), &items); err != nil {
			items = nil
		}
	}
	return Cart{Items: items}
}

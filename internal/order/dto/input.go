package dto

import "github.com/hnthao/foodorder/internal/model"

type CheckoutInput struct {
	CustomerName    string
	CustomerPhone   string
	CustomerAddress string
	Items           []model.CartItem
}

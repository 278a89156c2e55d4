package command

import "github.com/shopspring/decimal"

// Shoe Commands
type AddShoe struct {
	Code     string          `json:"code"`
	SKU      string          `json:"sku"`
	Name     string          `json:"name"`
	Brand    string          `json:"brand"`
	Size     string          `json:"size"`
	Image    string          `json:"image"`
	Price    decimal.Decimal `json:"price"`
	Owner    string          `json:"owner"`
	Location string          `json:"location"`
}

type UpdateShoe struct {
	ShoeID   string          `json:"shoe_id"`
	Code     string          `json:"code"`
	SKU      string          `json:"sku"`
	Name     string          `json:"name"`
	Brand    string          `json:"brand"`
	Size     string          `json:"size"`
	Image    string          `json:"image"`
	Price    decimal.Decimal `json:"price"`
	Owner    string          `json:"owner"`
	Location string          `json:"location"`
}

type DeleteShoe struct {
	ShoeID string `json:"shoe_id"`
}

// Sale Commands
type SellShoe struct {
	ShoeID    string          `json:"shoe_id"`
	PriceSale decimal.Decimal `json:"price_sale"`
	SoldTo    string          `json:"sold_to"`
	SoldBy    string          `json:"sold_by"`
	SoldAt    string          `json:"sold_at"`
}

type ReturnShoe struct {
	ShoeID string `json:"shoe_id"`
}

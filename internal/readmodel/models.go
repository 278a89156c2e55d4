package readmodel

import (
	"time"

	"github.com/shopspring/decimal"
)

// CommissionReadModel mirrors the commission sub-record persisted on each
// shoe. Sneakergram and Sneakfits are legacy fields kept for the stored
// shape; current policy never credits them.
type CommissionReadModel struct {
	Fitz        decimal.Decimal `json:"fitz"`
	Bryan       decimal.Decimal `json:"bryan"`
	Ashley      decimal.Decimal `json:"ashley"`
	Sneakergram decimal.Decimal `json:"sneakergram"`
	Sneakfits   decimal.Decimal `json:"sneakfits"`
	Profit      decimal.Decimal `json:"profit"`
	DateSold    *time.Time      `json:"date_sold"`
}

// ShoeReadModel is the read model for inventory items
type ShoeReadModel struct {
	ID           string              `json:"id"`
	Code         string              `json:"code"`
	SKU          string              `json:"sku"`
	Name         string              `json:"name"`
	Brand        string              `json:"brand"`
	Size         string              `json:"size"`
	Image        string              `json:"image,omitempty"`
	Price        decimal.Decimal     `json:"price"`
	PriceSale    *decimal.Decimal    `json:"price_sale"`
	Owner        string              `json:"owner"`
	Location     string              `json:"location"`
	Availability string              `json:"availability"`
	SoldTo       string              `json:"sold_to,omitempty"`
	SoldBy       string              `json:"sold_by,omitempty"`
	SoldAt       string              `json:"sold_at,omitempty"`
	Commission   CommissionReadModel `json:"commission"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

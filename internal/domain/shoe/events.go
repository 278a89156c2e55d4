package shoe

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/example/sneakfits/internal/domain/commission"
)

const (
	EventShoeAdded    = "ShoeAdded"
	EventShoeUpdated  = "ShoeUpdated"
	EventShoeSold     = "ShoeSold"
	EventShoeReturned = "ShoeReturned"
	EventShoeDeleted  = "ShoeDeleted"
)

type ShoeAdded struct {
	ShoeID   string           `json:"shoe_id"`
	Code     string           `json:"code"`
	SKU      string           `json:"sku"`
	Name     string           `json:"name"`
	Brand    string           `json:"brand"`
	Size     string           `json:"size"`
	Image    string           `json:"image"`
	Price    decimal.Decimal  `json:"price"`
	Owner    commission.Party `json:"owner"`
	Location Location         `json:"location"`
	AddedAt  time.Time        `json:"added_at"`
}

type ShoeUpdated struct {
	ShoeID    string           `json:"shoe_id"`
	Code      string           `json:"code"`
	SKU       string           `json:"sku"`
	Name      string           `json:"name"`
	Brand     string           `json:"brand"`
	Size      string           `json:"size"`
	Image     string           `json:"image"`
	Price     decimal.Decimal  `json:"price"`
	Owner     commission.Party `json:"owner"`
	Location  Location         `json:"location"`
	UpdatedAt time.Time        `json:"updated_at"`
}

type ShoeSold struct {
	ShoeID     string             `json:"shoe_id"`
	PriceSale  decimal.Decimal    `json:"price_sale"`
	SoldTo     string             `json:"sold_to"`
	SoldBy     commission.Party   `json:"sold_by"`
	SoldAt     commission.Channel `json:"sold_at"`
	Commission commission.Record  `json:"commission"`
	SoldOn     time.Time          `json:"sold_on"`
}

type ShoeReturned struct {
	ShoeID     string    `json:"shoe_id"`
	ReturnedAt time.Time `json:"returned_at"`
}

type ShoeDeleted struct {
	ShoeID    string    `json:"shoe_id"`
	DeletedAt time.Time `json:"deleted_at"`
}

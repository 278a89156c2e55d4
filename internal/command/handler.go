package command

import (
	"context"
	"log"

	"github.com/example/sneakfits/internal/catalog"
	"github.com/example/sneakfits/internal/domain/shoe"
)

// CatalogClient is the slice of the catalog API the command side needs
type CatalogClient interface {
	Lookup(ctx context.Context, sku string) (*catalog.Product, error)
}

type Handler struct {
	shoeSvc *shoe.Service
	catalog CatalogClient
}

func NewHandler(shoeSvc *shoe.Service, catalogClient CatalogClient) *Handler {
	return &Handler{
		shoeSvc: shoeSvc,
		catalog: catalogClient,
	}
}

// AddShoe adds a shoe to inventory (async projection - updates via Kafka).
// Missing name, brand, or image details are filled from the catalog when a
// SKU is given; lookup failures fall back to the submitted values.
func (h *Handler) AddShoe(ctx context.Context, cmd AddShoe) (*shoe.Shoe, error) {
	h.enrichFromCatalog(ctx, &cmd)

	return h.shoeSvc.Add(ctx, shoe.AddParams{
		Code:     cmd.Code,
		SKU:      cmd.SKU,
		Name:     cmd.Name,
		Brand:    cmd.Brand,
		Size:     cmd.Size,
		Image:    cmd.Image,
		Price:    cmd.Price,
		Owner:    cmd.Owner,
		Location: cmd.Location,
	})
}

// UpdateShoe updates an available shoe's details
func (h *Handler) UpdateShoe(ctx context.Context, cmd UpdateShoe) error {
	return h.shoeSvc.Update(ctx, cmd.ShoeID, shoe.AddParams{
		Code:     cmd.Code,
		SKU:      cmd.SKU,
		Name:     cmd.Name,
		Brand:    cmd.Brand,
		Size:     cmd.Size,
		Image:    cmd.Image,
		Price:    cmd.Price,
		Owner:    cmd.Owner,
		Location: cmd.Location,
	})
}

// DeleteShoe removes a shoe from inventory
func (h *Handler) DeleteShoe(ctx context.Context, cmd DeleteShoe) error {
	return h.shoeSvc.Delete(ctx, cmd.ShoeID)
}

// SellShoe records a sale: the commission split is computed and stored on
// the emitted event
func (h *Handler) SellShoe(ctx context.Context, cmd SellShoe) (*shoe.Shoe, error) {
	return h.shoeSvc.Sell(ctx, cmd.ShoeID, shoe.SellParams{
		PriceSale: cmd.PriceSale,
		SoldTo:    cmd.SoldTo,
		SoldBy:    cmd.SoldBy,
		SoldAt:    cmd.SoldAt,
	})
}

// ReturnShoe reverses a sale
func (h *Handler) ReturnShoe(ctx context.Context, cmd ReturnShoe) error {
	return h.shoeSvc.Return(ctx, cmd.ShoeID)
}

func (h *Handler) enrichFromCatalog(ctx context.Context, cmd *AddShoe) {
	if h.catalog == nil || cmd.SKU == "" {
		return
	}
	if cmd.Name != "" && cmd.Brand != "" && cmd.Image != "" {
		return
	}

	product, err := h.catalog.Lookup(ctx, cmd.SKU)
	if err != nil {
		log.Printf("[Command] Catalog lookup for %s failed: %v", cmd.SKU, err)
		return
	}

	if cmd.Name == "" {
		cmd.Name = product.Name
	}
	if cmd.Brand == "" {
		cmd.Brand = product.Brand
	}
	if cmd.Image == "" {
		cmd.Image = product.Image
	}
}

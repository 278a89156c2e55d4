package projection

import (
	"context"
	"encoding/json"
	"log"

	"github.com/example/sneakfits/internal/domain/shoe"
	"github.com/example/sneakfits/internal/infrastructure/store"
	"github.com/example/sneakfits/internal/readmodel"
)

type Projector struct {
	readStore store.ReadStoreInterface
}

func NewProjector(readStore store.ReadStoreInterface) *Projector {
	return &Projector{readStore: readStore}
}

func (p *Projector) HandleEvent(ctx context.Context, key, value []byte) error {
	var event store.Event
	if err := json.Unmarshal(value, &event); err != nil {
		return err
	}

	log.Printf("[Projector] Received event: %s (aggregate: %s)", event.EventType, event.AggregateType)

	switch event.AggregateType {
	case shoe.AggregateType:
		return p.handleShoeEvent(event)
	}

	return nil
}

// Replay rebuilds read models from the full event log
func (p *Projector) Replay(events []store.Event) error {
	for _, event := range events {
		if event.AggregateType != shoe.AggregateType {
			continue
		}
		if err := p.handleShoeEvent(event); err != nil {
			return err
		}
	}
	return nil
}

func (p *Projector) handleShoeEvent(event store.Event) error {
	switch event.EventType {
	case shoe.EventShoeAdded:
		var e shoe.ShoeAdded
		if err := json.Unmarshal(event.Data, &e); err != nil {
			return err
		}
		p.readStore.Set("shoes", e.ShoeID, &readmodel.ShoeReadModel{
			ID:           e.ShoeID,
			Code:         e.Code,
			SKU:          e.SKU,
			Name:         e.Name,
			Brand:        e.Brand,
			Size:         e.Size,
			Image:        e.Image,
			Price:        e.Price,
			Owner:        string(e.Owner),
			Location:     string(e.Location),
			Availability: string(shoe.StatusAvailable),
			CreatedAt:    e.AddedAt,
			UpdatedAt:    e.AddedAt,
		})

	case shoe.EventShoeUpdated:
		var e shoe.ShoeUpdated
		if err := json.Unmarshal(event.Data, &e); err != nil {
			return err
		}
		p.readStore.Update("shoes", e.ShoeID, func(current any) any {
			sh := current.(*readmodel.ShoeReadModel)
			sh.Code = e.Code
			sh.SKU = e.SKU
			sh.Name = e.Name
			sh.Brand = e.Brand
			sh.Size = e.Size
			sh.Image = e.Image
			sh.Price = e.Price
			sh.Owner = string(e.Owner)
			sh.Location = string(e.Location)
			sh.UpdatedAt = e.UpdatedAt
			return sh
		})

	case shoe.EventShoeSold:
		var e shoe.ShoeSold
		if err := json.Unmarshal(event.Data, &e); err != nil {
			return err
		}
		p.readStore.Update("shoes", e.ShoeID, func(current any) any {
			sh := current.(*readmodel.ShoeReadModel)
			priceSale := e.PriceSale
			sh.PriceSale = &priceSale
			sh.Availability = string(shoe.StatusSold)
			sh.SoldTo = e.SoldTo
			sh.SoldBy = string(e.SoldBy)
			sh.SoldAt = string(e.SoldAt)
			sh.Commission = readmodel.CommissionReadModel{
				Fitz:        e.Commission.Fitz,
				Bryan:       e.Commission.Bryan,
				Ashley:      e.Commission.Ashley,
				Sneakergram: e.Commission.Sneakergram,
				Sneakfits:   e.Commission.Sneakfits,
				Profit:      e.Commission.Profit,
				DateSold:    e.Commission.DateSold,
			}
			sh.UpdatedAt = e.SoldOn
			return sh
		})

	case shoe.EventShoeReturned:
		var e shoe.ShoeReturned
		if err := json.Unmarshal(event.Data, &e); err != nil {
			return err
		}
		p.readStore.Update("shoes", e.ShoeID, func(current any) any {
			sh := current.(*readmodel.ShoeReadModel)
			sh.Availability = string(shoe.StatusAvailable)
			sh.SoldTo = ""
			sh.SoldBy = ""
			sh.SoldAt = ""
			sh.Commission = readmodel.CommissionReadModel{}
			sh.UpdatedAt = e.ReturnedAt
			return sh
		})

	case shoe.EventShoeDeleted:
		var e shoe.ShoeDeleted
		if err := json.Unmarshal(event.Data, &e); err != nil {
			return err
		}
		p.readStore.Delete("shoes", e.ShoeID)
	}

	return nil
}

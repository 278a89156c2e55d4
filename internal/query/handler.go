package query

import (
	"sort"
	"time"

	"github.com/example/sneakfits/internal/domain/commission"
	"github.com/example/sneakfits/internal/domain/shoe"
	"github.com/example/sneakfits/internal/infrastructure/store"
	"github.com/example/sneakfits/internal/reporting"
)

type Handler struct {
	readStore store.ReadStoreInterface
}

func NewHandler(readStore store.ReadStoreInterface) *Handler {
	return &Handler{readStore: readStore}
}

// Shoes
func (h *Handler) GetShoe(id string) (*ShoeReadModel, bool) {
	data, ok := h.readStore.Get("shoes", id)
	if !ok {
		return nil, false
	}
	return data.(*ShoeReadModel), true
}

func (h *Handler) ListShoes() []*ShoeReadModel {
	items := h.readStore.GetAll("shoes")
	shoes := make([]*ShoeReadModel, 0, len(items))
	for _, item := range items {
		shoes = append(shoes, item.(*ShoeReadModel))
	}
	sort.Slice(shoes, func(i, j int) bool {
		return shoes[i].CreatedAt.After(shoes[j].CreatedAt)
	})
	return shoes
}

// ListAvailable returns shoes still in inventory
func (h *Handler) ListAvailable() []*ShoeReadModel {
	return h.filterByAvailability(string(shoe.StatusAvailable))
}

// ListSold returns shoes that have been sold
func (h *Handler) ListSold() []*ShoeReadModel {
	return h.filterByAvailability(string(shoe.StatusSold))
}

func (h *Handler) filterByAvailability(availability string) []*ShoeReadModel {
	shoes := make([]*ShoeReadModel, 0)
	for _, sh := range h.ListShoes() {
		if sh.Availability == availability {
			shoes = append(shoes, sh)
		}
	}
	return shoes
}

// ListByOwner returns shoes owned by the given party
func (h *Handler) ListByOwner(owner string) []*ShoeReadModel {
	shoes := make([]*ShoeReadModel, 0)
	for _, sh := range h.ListShoes() {
		if sh.Owner == owner {
			shoes = append(shoes, sh)
		}
	}
	return shoes
}

// SalesSummary aggregates sold shoes over the given date range
func (h *Handler) SalesSummary(r reporting.Range) (*reporting.Summary, error) {
	return reporting.Summarize(h.ListShoes(), r, time.Now())
}

// SalesSeries returns a party's cumulative daily totals over the given range
func (h *Handler) SalesSeries(r reporting.Range, party commission.Party) ([]reporting.DailyPoint, error) {
	return reporting.DailySeries(h.ListShoes(), r, party, time.Now())
}

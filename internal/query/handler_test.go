package query

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/sneakfits/internal/domain/commission"
	"github.com/example/sneakfits/internal/infrastructure/store/mocks"
	"github.com/example/sneakfits/internal/reporting"
)

func newTestQueryHandler() (*Handler, *mocks.MockReadStore) {
	readStore := mocks.NewMockReadStore()
	handler := NewHandler(readStore)
	return handler, readStore
}

func seedShoe(rs *mocks.MockReadStore, id, availability, owner string, createdAt time.Time) *ShoeReadModel {
	sh := &ShoeReadModel{
		ID:           id,
		Code:         "F1",
		SKU:          "DD1391-100",
		Name:         "Dunk Low Panda",
		Brand:        "Nike",
		Size:         "10",
		Price:        decimal.NewFromInt(200),
		Owner:        owner,
		Location:     "Store",
		Availability: availability,
		CreatedAt:    createdAt,
		UpdatedAt:    createdAt,
	}
	rs.SetData("shoes", id, sh)
	return sh
}

// ============================================
// Shoe Query Tests
// ============================================

func TestHandler_GetShoe_Found(t *testing.T) {
	handler, readStore := newTestQueryHandler()
	seedShoe(readStore, "shoe-123", "available", "Fitz", time.Now())

	sh, found := handler.GetShoe("shoe-123")

	assert.True(t, found)
	assert.Equal(t, "shoe-123", sh.ID)
	assert.Equal(t, "Dunk Low Panda", sh.Name)
}

func TestHandler_GetShoe_NotFound(t *testing.T) {
	handler, _ := newTestQueryHandler()

	sh, found := handler.GetShoe("non-existent")

	assert.False(t, found)
	assert.Nil(t, sh)
}

func TestHandler_ListShoes_NewestFirst(t *testing.T) {
	handler, readStore := newTestQueryHandler()

	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	seedShoe(readStore, "shoe-1", "available", "Fitz", base)
	seedShoe(readStore, "shoe-2", "available", "Bryan", base.Add(48*time.Hour))
	seedShoe(readStore, "shoe-3", "available", "Ashley", base.Add(24*time.Hour))

	shoes := handler.ListShoes()

	require.Len(t, shoes, 3)
	assert.Equal(t, "shoe-2", shoes[0].ID)
	assert.Equal(t, "shoe-3", shoes[1].ID)
	assert.Equal(t, "shoe-1", shoes[2].ID)
}

func TestHandler_ListShoes_Empty(t *testing.T) {
	handler, _ := newTestQueryHandler()

	shoes := handler.ListShoes()

	assert.Empty(t, shoes)
}

func TestHandler_ListAvailableAndSold(t *testing.T) {
	handler, readStore := newTestQueryHandler()
	now := time.Now()

	seedShoe(readStore, "shoe-1", "available", "Fitz", now)
	seedShoe(readStore, "shoe-2", "sold", "Fitz", now)
	seedShoe(readStore, "shoe-3", "available", "Bryan", now)

	assert.Len(t, handler.ListAvailable(), 2)
	assert.Len(t, handler.ListSold(), 1)
}

func TestHandler_ListByOwner(t *testing.T) {
	handler, readStore := newTestQueryHandler()
	now := time.Now()

	seedShoe(readStore, "shoe-1", "available", "Fitz", now)
	seedShoe(readStore, "shoe-2", "sold", "Bryan", now)
	seedShoe(readStore, "shoe-3", "available", "Fitz", now)

	fitz := handler.ListByOwner("Fitz")

	assert.Len(t, fitz, 2)
	assert.Empty(t, handler.ListByOwner("Ashley"))
}

// ============================================
// Sales Summary Tests
// ============================================

func TestHandler_SalesSummary(t *testing.T) {
	handler, readStore := newTestQueryHandler()
	now := time.Now()

	sh := seedShoe(readStore, "shoe-1", "sold", "Fitz", now)
	price := decimal.NewFromInt(1500)
	sh.PriceSale = &price
	sh.SoldBy = "Fitz"
	sh.Commission = CommissionReadModel{
		Fitz:   decimal.NewFromInt(400),
		Bryan:  decimal.NewFromInt(50),
		Ashley: decimal.NewFromInt(50),
		Profit: decimal.NewFromInt(500),
	}

	seedShoe(readStore, "shoe-2", "available", "Bryan", now)

	summary, err := handler.SalesSummary(reporting.RangeAllTime)

	require.NoError(t, err)
	assert.Equal(t, 1, summary.ShoesSold)
	assert.Equal(t, 1, summary.Available)
	assert.True(t, summary.Revenue.Equal(decimal.NewFromInt(1500)))
	assert.True(t, summary.Parties[commission.PartyFitz].Profit.Equal(decimal.NewFromInt(400)))
}

func TestHandler_SalesSummary_UnknownRange(t *testing.T) {
	handler, _ := newTestQueryHandler()

	_, err := handler.SalesSummary(reporting.Range("fortnight"))

	assert.ErrorIs(t, err, reporting.ErrUnknownRange)
}

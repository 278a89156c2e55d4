package reporting

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/sneakfits/internal/domain/commission"
	"github.com/example/sneakfits/internal/readmodel"
)

func dec(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f)
}

// A Wednesday, mid-June
var testNow = time.Date(2024, 6, 12, 15, 30, 0, 0, time.UTC)

func soldShoe(soldBy string, priceSale, profit, share float64, updatedAt time.Time) *readmodel.ShoeReadModel {
	price := dec(priceSale)
	rec := readmodel.CommissionReadModel{Profit: dec(profit), DateSold: &updatedAt}
	switch soldBy {
	case "Fitz":
		rec.Fitz = dec(share)
	case "Bryan":
		rec.Bryan = dec(share)
	case "Ashley":
		rec.Ashley = dec(share)
	}
	return &readmodel.ShoeReadModel{
		ID:           "shoe-" + updatedAt.Format("20060102150405"),
		Availability: "sold",
		PriceSale:    &price,
		SoldBy:       soldBy,
		Commission:   rec,
		UpdatedAt:    updatedAt,
	}
}

func availableShoe(updatedAt time.Time) *readmodel.ShoeReadModel {
	return &readmodel.ShoeReadModel{
		ID:           "avail-" + updatedAt.Format("20060102"),
		Availability: "available",
		UpdatedAt:    updatedAt,
	}
}

// ============================================
// Range Bounds
// ============================================

func TestBounds_LastWeek_MidWeek(t *testing.T) {
	start, end, err := RangeLastWeek.Bounds(testNow)

	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 6, 16, 23, 59, 59, int(999*time.Millisecond), time.UTC), end)
}

func TestBounds_LastWeek_Sunday(t *testing.T) {
	// A Sunday belongs to the week that started the previous Monday
	sunday := time.Date(2024, 6, 16, 10, 0, 0, 0, time.UTC)

	start, end, err := RangeLastWeek.Bounds(sunday)

	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 6, 16, 23, 59, 59, int(999*time.Millisecond), time.UTC), end)
}

func TestBounds_LastWeek_Monday(t *testing.T) {
	monday := time.Date(2024, 6, 10, 0, 30, 0, 0, time.UTC)

	start, _, err := RangeLastWeek.Bounds(monday)

	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), start)
}

func TestBounds_LastMonth(t *testing.T) {
	start, end, err := RangeLastMonth.Bounds(testNow)

	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 6, 30, 23, 59, 59, int(999*time.Millisecond), time.UTC), end)
}

func TestBounds_Last3Months(t *testing.T) {
	start, end, err := RangeLast3Months.Bounds(testNow)

	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 6, 30, 23, 59, 59, int(999*time.Millisecond), time.UTC), end)
}

func TestBounds_LastYear(t *testing.T) {
	start, end, err := RangeLastYear.Bounds(testNow)

	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 12, 31, 23, 59, 59, int(999*time.Millisecond), time.UTC), end)
}

func TestBounds_YearToDate_EndsNow(t *testing.T) {
	start, end, err := RangeYearToDate.Bounds(testNow)

	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, testNow, end)
}

func TestParseRange(t *testing.T) {
	r, err := ParseRange("last-month")
	require.NoError(t, err)
	assert.Equal(t, RangeLastMonth, r)

	_, err = ParseRange("fortnight")
	assert.ErrorIs(t, err, ErrUnknownRange)
}

// ============================================
// Summarize
// ============================================

func TestSummarize_LastMonth_ExcludesOutOfRange(t *testing.T) {
	shoes := []*readmodel.ShoeReadModel{
		soldShoe("Fitz", 1500, 500, 400, time.Date(2024, 6, 3, 12, 0, 0, 0, time.UTC)),
		soldShoe("Bryan", 2000, 300, 150, time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)),
		soldShoe("Fitz", 1200, 200, 200, time.Date(2024, 6, 20, 12, 0, 0, 0, time.UTC)),
		// Sold in May: outside the current calendar month
		soldShoe("Ashley", 9000, 1000, 1000, time.Date(2024, 5, 20, 12, 0, 0, 0, time.UTC)),
	}

	s, err := Summarize(shoes, RangeLastMonth, testNow)

	require.NoError(t, err)
	assert.Equal(t, 3, s.ShoesSold)
	assert.True(t, s.Revenue.Equal(dec(4700)), "revenue %s", s.Revenue)
	assert.True(t, s.Profit.Equal(dec(1000)), "profit %s", s.Profit)
}

func TestSummarize_PartyBreakdown(t *testing.T) {
	shoes := []*readmodel.ShoeReadModel{
		soldShoe("Fitz", 1500, 500, 400, time.Date(2024, 6, 3, 12, 0, 0, 0, time.UTC)),
		soldShoe("Fitz", 1200, 200, 200, time.Date(2024, 6, 5, 12, 0, 0, 0, time.UTC)),
		soldShoe("Bryan", 2000, 300, 150, time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)),
	}

	s, err := Summarize(shoes, RangeLastMonth, testNow)

	require.NoError(t, err)

	fitz := s.Parties[commission.PartyFitz]
	assert.Equal(t, 2, fitz.ShoesSold)
	assert.True(t, fitz.Revenue.Equal(dec(2700)))
	// Commission share across every sale in the window, not just own sales
	assert.True(t, fitz.Profit.Equal(dec(600)))

	bryan := s.Parties[commission.PartyBryan]
	assert.Equal(t, 1, bryan.ShoesSold)
	assert.True(t, bryan.Revenue.Equal(dec(2000)))
	assert.True(t, bryan.Profit.Equal(dec(150)))

	ashley := s.Parties[commission.PartyAshley]
	assert.Equal(t, 0, ashley.ShoesSold)
	assert.True(t, ashley.Revenue.IsZero())
}

func TestSummarize_CountsAvailableAcrossCollection(t *testing.T) {
	shoes := []*readmodel.ShoeReadModel{
		availableShoe(time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)),
		availableShoe(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)),
		soldShoe("Fitz", 1500, 500, 400, time.Date(2024, 6, 3, 12, 0, 0, 0, time.UTC)),
	}

	s, err := Summarize(shoes, RangeLastWeek, testNow)

	require.NoError(t, err)
	assert.Equal(t, 2, s.Available)
	assert.Equal(t, 0, s.ShoesSold) // sale on June 3 predates this week
}

func TestSummarize_DoesNotMutateInput(t *testing.T) {
	sh := soldShoe("Fitz", 1500, 500, 400, time.Date(2024, 6, 3, 12, 0, 0, 0, time.UTC))
	before := *sh

	_, err := Summarize([]*readmodel.ShoeReadModel{sh}, RangeLastMonth, testNow)

	require.NoError(t, err)
	assert.Equal(t, before, *sh)
}

// ============================================
// Daily Series
// ============================================

func TestDailySeries_Cumulative(t *testing.T) {
	shoes := []*readmodel.ShoeReadModel{
		soldShoe("Fitz", 1500, 500, 400, time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)),  // Monday
		soldShoe("Fitz", 1000, 200, 200, time.Date(2024, 6, 12, 13, 0, 0, 0, time.UTC)), // Wednesday
		soldShoe("Bryan", 3000, 900, 450, time.Date(2024, 6, 12, 14, 0, 0, 0, time.UTC)),
	}

	points, err := DailySeries(shoes, RangeLastWeek, commission.PartyFitz, testNow)

	require.NoError(t, err)
	require.Len(t, points, 7)

	assert.Equal(t, "2024-06-10", points[0].Date)
	assert.Equal(t, 1, points[0].ShoesSold)
	assert.True(t, points[0].Revenue.Equal(dec(1500)))

	// Tuesday carries Monday's totals forward
	assert.Equal(t, 1, points[1].ShoesSold)

	assert.Equal(t, 2, points[2].ShoesSold)
	assert.True(t, points[2].Revenue.Equal(dec(2500)))
	assert.True(t, points[2].Profit.Equal(dec(600)))

	// Sunday holds the week total
	assert.Equal(t, 2, points[6].ShoesSold)
	assert.True(t, points[6].Revenue.Equal(dec(2500)))
}

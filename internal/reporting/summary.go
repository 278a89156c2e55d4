package reporting

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/example/sneakfits/internal/domain/commission"
	"github.com/example/sneakfits/internal/readmodel"
)

// PartyTotals is one party's slice of a reporting window: revenue and count
// from the shoes they sold, plus their commission share across every sale
// in the window regardless of who brokered it.
type PartyTotals struct {
	Revenue   decimal.Decimal `json:"revenue"`
	Profit    decimal.Decimal `json:"profit"`
	ShoesSold int             `json:"shoes_sold"`
}

// Summary is the dashboard aggregate for one reporting window.
type Summary struct {
	Range     Range           `json:"range"`
	Start     time.Time       `json:"start"`
	End       time.Time       `json:"end"`
	ShoesSold int             `json:"shoes_sold"`
	Revenue   decimal.Decimal `json:"revenue"`
	Profit    decimal.Decimal `json:"profit"`
	Available int             `json:"available"`

	Parties map[commission.Party]PartyTotals `json:"parties"`
}

// inWindow reports whether a shoe counts toward the window: it must be sold
// and its last update must fall inside [start, end].
func inWindow(sh *readmodel.ShoeReadModel, start, end time.Time) bool {
	if sh.Availability != "sold" {
		return false
	}
	return !sh.UpdatedAt.Before(start) && !sh.UpdatedAt.After(end)
}

// Summarize aggregates sold shoes whose last update falls within the range.
// The available count covers the whole collection, not just the window.
func Summarize(shoes []*readmodel.ShoeReadModel, r Range, now time.Time) (*Summary, error) {
	start, end, err := r.Bounds(now)
	if err != nil {
		return nil, err
	}

	s := &Summary{
		Range:   r,
		Start:   start,
		End:     end,
		Parties: make(map[commission.Party]PartyTotals, len(commission.Parties())),
	}
	for _, p := range commission.Parties() {
		s.Parties[p] = PartyTotals{}
	}

	for _, sh := range shoes {
		if sh.Availability == "available" {
			s.Available++
		}
		if !inWindow(sh, start, end) {
			continue
		}

		s.ShoesSold++
		if sh.PriceSale != nil {
			s.Revenue = s.Revenue.Add(*sh.PriceSale)
		}
		s.Profit = s.Profit.Add(sh.Commission.Profit)

		for _, p := range commission.Parties() {
			totals := s.Parties[p]
			totals.Profit = totals.Profit.Add(commissionShare(sh, p))
			if sh.SoldBy == string(p) {
				totals.ShoesSold++
				if sh.PriceSale != nil {
					totals.Revenue = totals.Revenue.Add(*sh.PriceSale)
				}
			}
			s.Parties[p] = totals
		}
	}

	return s, nil
}

func commissionShare(sh *readmodel.ShoeReadModel, p commission.Party) decimal.Decimal {
	switch p {
	case commission.PartyFitz:
		return sh.Commission.Fitz
	case commission.PartyBryan:
		return sh.Commission.Bryan
	case commission.PartyAshley:
		return sh.Commission.Ashley
	}
	return decimal.Zero
}

// DailyPoint is one day of a cumulative chart series.
type DailyPoint struct {
	Date      string          `json:"date"`
	Revenue   decimal.Decimal `json:"revenue"`
	Profit    decimal.Decimal `json:"profit"`
	ShoesSold int             `json:"shoes_sold"`
}

// DailySeries builds the cumulative per-day series for one party over the
// range: revenue and counts from shoes the party sold, profit from their
// commission share on those sales.
func DailySeries(shoes []*readmodel.ShoeReadModel, r Range, party commission.Party, now time.Time) ([]DailyPoint, error) {
	start, end, err := r.Bounds(now)
	if err != nil {
		return nil, err
	}

	days := daysBetween(start, end) + 1
	points := make([]DailyPoint, days)
	for i := range points {
		points[i].Date = start.AddDate(0, 0, i).Format("2006-01-02")
	}

	for _, sh := range shoes {
		if !inWindow(sh, start, end) || sh.SoldBy != string(party) {
			continue
		}
		i := daysBetween(start, sh.UpdatedAt)
		if i < 0 || i >= days {
			continue
		}
		if sh.PriceSale != nil {
			points[i].Revenue = points[i].Revenue.Add(*sh.PriceSale)
		}
		points[i].Profit = points[i].Profit.Add(commissionShare(sh, party))
		points[i].ShoesSold++
	}

	// Accumulate
	for i := 1; i < len(points); i++ {
		points[i].Revenue = points[i].Revenue.Add(points[i-1].Revenue)
		points[i].Profit = points[i].Profit.Add(points[i-1].Profit)
		points[i].ShoesSold += points[i-1].ShoesSold
	}

	return points, nil
}

// daysBetween counts whole calendar days from a to b in a's location.
func daysBetween(a, b time.Time) int {
	a = startOfDay(a)
	b = startOfDay(b.In(a.Location()))
	return int(b.Sub(a).Hours() / 24)
}

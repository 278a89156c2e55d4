// Package commission computes the per-party profit split applied when a
// shoe is sold. The split depends on who owns the shoe, who brokered the
// sale, and the channel it was sold through.
package commission

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrMissingParty   = errors.New("owner and seller are required")
	ErrUnknownParty   = errors.New("unknown party")
	ErrUnknownChannel = errors.New("unknown sales channel")
	ErrWalkInSeller   = errors.New("walk-in sales must be recorded by the owner")
)

// Party is one of the three people who own and sell inventory.
type Party string

const (
	PartyFitz   Party = "Fitz"
	PartyBryan  Party = "Bryan"
	PartyAshley Party = "Ashley"
)

// Parties returns the closed set of recognized parties.
func Parties() []Party {
	return []Party{PartyFitz, PartyBryan, PartyAshley}
}

// Known reports whether p is a member of the recognized set.
func (p Party) Known() bool {
	switch p {
	case PartyFitz, PartyBryan, PartyAshley:
		return true
	}
	return false
}

// ParseParty resolves a case-insensitive party name.
func ParseParty(s string) (Party, error) {
	for _, p := range Parties() {
		if strings.EqualFold(s, string(p)) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownParty, s)
}

// Channel is the outlet a shoe was sold through. The set is closed; each
// channel carries its own split policy.
type Channel string

const (
	ChannelStore       Channel = "Store"
	ChannelSneakergram Channel = "Sneakergram"
	ChannelSneakfits   Channel = "Sneakfits"
	ChannelMarketplace Channel = "Marketplace"
	ChannelRandom      Channel = "Random" // walk-in sale
)

// Channels returns the closed set of recognized channels.
func Channels() []Channel {
	return []Channel{ChannelStore, ChannelSneakergram, ChannelSneakfits, ChannelMarketplace, ChannelRandom}
}

// ParseChannel resolves a case-insensitive channel name.
func ParseChannel(s string) (Channel, error) {
	for _, c := range Channels() {
		if strings.EqualFold(s, string(c)) {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownChannel, s)
}

// Split rates per channel.
var (
	rateStoreOwnSale = decimal.NewFromFloat(0.80)
	rateStoreHouse   = decimal.NewFromFloat(0.10)
	rateStoreBroker  = decimal.NewFromFloat(0.45)
	rateDirectBroker = decimal.NewFromFloat(0.50)
	rateWalkInOwner  = decimal.NewFromFloat(0.40)
	rateWalkInHouse  = decimal.NewFromFloat(0.30)
)

// Split holds one commission amount per party. The zero value pays nobody.
type Split struct {
	Fitz   decimal.Decimal `json:"fitz"`
	Bryan  decimal.Decimal `json:"bryan"`
	Ashley decimal.Decimal `json:"ashley"`
}

// Share returns the amount owed to p.
func (s Split) Share(p Party) decimal.Decimal {
	switch p {
	case PartyFitz:
		return s.Fitz
	case PartyBryan:
		return s.Bryan
	case PartyAshley:
		return s.Ashley
	}
	return decimal.Zero
}

func (s *Split) credit(p Party, amount decimal.Decimal) {
	switch p {
	case PartyFitz:
		s.Fitz = amount
	case PartyBryan:
		s.Bryan = amount
	case PartyAshley:
		s.Ashley = amount
	}
}

// Total returns the sum of all three shares.
func (s Split) Total() decimal.Decimal {
	return s.Fitz.Add(s.Bryan).Add(s.Ashley)
}

// Calculate computes the per-party split of profit for a sale brokered by
// soldBy through channel. Profit may be negative; a loss flows through the
// same rates. No rounding is applied; callers round for display only.
//
// For the walk-in channel the seller must be the owner. The historical
// behavior of silently overwriting the seller is rejected instead.
func Calculate(profit decimal.Decimal, owner, soldBy Party, channel Channel) (Split, error) {
	if owner == "" || soldBy == "" {
		return Split{}, ErrMissingParty
	}
	if !owner.Known() {
		return Split{}, fmt.Errorf("%w: %q", ErrUnknownParty, owner)
	}
	if !soldBy.Known() {
		return Split{}, fmt.Errorf("%w: %q", ErrUnknownParty, soldBy)
	}

	var split Split
	switch channel {
	case ChannelStore:
		if owner == soldBy {
			split.credit(owner, profit.Mul(rateStoreOwnSale))
			for _, p := range Parties() {
				if p != owner {
					split.credit(p, profit.Mul(rateStoreHouse))
				}
			}
		} else {
			split.credit(owner, profit.Mul(rateStoreBroker))
			split.credit(soldBy, profit.Mul(rateStoreBroker))
			for _, p := range Parties() {
				if p != owner && p != soldBy {
					split.credit(p, profit.Mul(rateStoreHouse))
				}
			}
		}

	case ChannelSneakergram, ChannelSneakfits, ChannelMarketplace:
		if owner == soldBy {
			split.credit(owner, profit)
		} else {
			split.credit(owner, profit.Mul(rateDirectBroker))
			split.credit(soldBy, profit.Mul(rateDirectBroker))
		}

	case ChannelRandom:
		if owner != soldBy {
			return Split{}, ErrWalkInSeller
		}
		split.credit(owner, profit.Mul(rateWalkInOwner))
		for _, p := range Parties() {
			if p != owner {
				split.credit(p, profit.Mul(rateWalkInHouse))
			}
		}

	default:
		return Split{}, fmt.Errorf("%w: %q", ErrUnknownChannel, channel)
	}

	return split, nil
}

// Record is the commission sub-record persisted on a shoe. Sneakergram and
// Sneakfits are legacy columns kept for the stored shape; no current policy
// writes to them.
type Record struct {
	Fitz        decimal.Decimal `json:"fitz"`
	Bryan       decimal.Decimal `json:"bryan"`
	Ashley      decimal.Decimal `json:"ashley"`
	Sneakergram decimal.Decimal `json:"sneakergram"`
	Sneakfits   decimal.Decimal `json:"sneakfits"`
	Profit      decimal.Decimal `json:"profit"`
	DateSold    *time.Time      `json:"date_sold"`
}

// NewRecord builds the persisted record for a completed sale.
func NewRecord(split Split, profit decimal.Decimal, dateSold time.Time) Record {
	return Record{
		Fitz:     split.Fitz,
		Bryan:    split.Bryan,
		Ashley:   split.Ashley,
		Profit:   profit,
		DateSold: &dateSold,
	}
}

// Share returns the recorded amount for p.
func (r Record) Share(p Party) decimal.Decimal {
	switch p {
	case PartyFitz:
		return r.Fitz
	case PartyBryan:
		return r.Bryan
	case PartyAshley:
		return r.Ashley
	}
	return decimal.Zero
}

package shoe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/example/sneakfits/internal/domain/commission"
	"github.com/example/sneakfits/internal/infrastructure/store"
)

const AggregateType = "Shoe"

type Availability string

const (
	StatusAvailable Availability = "available"
	StatusSold      Availability = "sold"
)

type Location string

const (
	LocationStore Location = "Store"
	LocationHouse Location = "House"
)

var (
	ErrShoeNotFound    = errors.New("shoe not found")
	ErrAlreadySold     = errors.New("shoe is already sold")
	ErrNotSold         = errors.New("shoe has not been sold")
	ErrInvalidPrice    = errors.New("price must be positive")
	ErrInvalidLocation = errors.New("location must be Store or House")
	ErrMissingField    = errors.New("missing required field")
)

func missingField(name string) error {
	return fmt.Errorf("%w: %s", ErrMissingField, name)
}

// validTransitions defines the availability state machine
var validTransitions = map[Availability][]Availability{
	StatusAvailable: {StatusSold},
	StatusSold:      {StatusAvailable},
}

// Shoe is a single physical inventory unit: one shoe, one size, one
// condition. While available, descriptive and commercial fields are
// editable; selling attaches sale metadata and the commission record, and a
// return clears them again.
type Shoe struct {
	ID           string             `json:"id"`
	Code         string             `json:"code"` // externally visible shoe code
	SKU          string             `json:"sku"`
	Name         string             `json:"name"`
	Brand        string             `json:"brand"`
	Size         string             `json:"size"`
	Image        string             `json:"image"`
	Price        decimal.Decimal    `json:"price"`
	PriceSale    *decimal.Decimal   `json:"price_sale"`
	Owner        commission.Party   `json:"owner"`
	Location     Location           `json:"location"`
	Availability Availability       `json:"availability"`
	SoldTo       string             `json:"sold_to,omitempty"`
	SoldBy       commission.Party   `json:"sold_by,omitempty"`
	SoldAt       commission.Channel `json:"sold_at,omitempty"`
	Commission   commission.Record  `json:"commission"`
	IsDeleted    bool               `json:"is_deleted,omitempty"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
	Version      int                `json:"version"`
}

// CanTransitionTo checks if the shoe can move to the target availability
func (sh *Shoe) CanTransitionTo(target Availability) bool {
	for _, a := range validTransitions[sh.Availability] {
		if a == target {
			return true
		}
	}
	return false
}

// ApplyEvent applies a single event to the shoe state
func (sh *Shoe) ApplyEvent(event store.Event) error {
	switch event.EventType {
	case EventShoeAdded:
		var data ShoeAdded
		if err := json.Unmarshal(event.Data, &data); err != nil {
			return err
		}
		sh.ID = data.ShoeID
		sh.Code = data.Code
		sh.SKU = data.SKU
		sh.Name = data.Name
		sh.Brand = data.Brand
		sh.Size = data.Size
		sh.Image = data.Image
		sh.Price = data.Price
		sh.Owner = data.Owner
		sh.Location = data.Location
		sh.Availability = StatusAvailable
		sh.CreatedAt = data.AddedAt
		sh.UpdatedAt = data.AddedAt

	case EventShoeUpdated:
		var data ShoeUpdated
		if err := json.Unmarshal(event.Data, &data); err != nil {
			return err
		}
		sh.Code = data.Code
		sh.SKU = data.SKU
		sh.Name = data.Name
		sh.Brand = data.Brand
		sh.Size = data.Size
		sh.Image = data.Image
		sh.Price = data.Price
		sh.Owner = data.Owner
		sh.Location = data.Location
		sh.UpdatedAt = data.UpdatedAt

	case EventShoeSold:
		var data ShoeSold
		if err := json.Unmarshal(event.Data, &data); err != nil {
			return err
		}
		price := data.PriceSale
		sh.PriceSale = &price
		sh.SoldTo = data.SoldTo
		sh.SoldBy = data.SoldBy
		sh.SoldAt = data.SoldAt
		sh.Commission = data.Commission
		sh.Availability = StatusSold
		sh.UpdatedAt = data.SoldOn

	case EventShoeReturned:
		var data ShoeReturned
		if err := json.Unmarshal(event.Data, &data); err != nil {
			return err
		}
		sh.SoldTo = ""
		sh.SoldBy = ""
		sh.SoldAt = ""
		sh.Commission = commission.Record{}
		sh.Availability = StatusAvailable
		sh.UpdatedAt = data.ReturnedAt

	case EventShoeDeleted:
		var data ShoeDeleted
		if err := json.Unmarshal(event.Data, &data); err != nil {
			return err
		}
		sh.IsDeleted = true
		sh.UpdatedAt = data.DeletedAt
	}
	sh.Version = event.Version
	return nil
}

type Service struct {
	eventStore store.EventStoreInterface
}

func NewService(es store.EventStoreInterface) *Service {
	return &Service{eventStore: es}
}

// loadShoe rebuilds a shoe by replaying its events
func (s *Service) loadShoe(ctx context.Context, shoeID string) (*Shoe, error) {
	events := s.eventStore.GetEvents(shoeID)
	if len(events) == 0 {
		return nil, ErrShoeNotFound
	}

	sh := &Shoe{}
	for _, event := range events {
		if err := sh.ApplyEvent(event); err != nil {
			return nil, fmt.Errorf("failed to apply event: %w", err)
		}
	}
	if sh.IsDeleted {
		return nil, ErrShoeNotFound
	}
	return sh, nil
}

// Get returns the current state of a shoe.
func (s *Service) Get(ctx context.Context, shoeID string) (*Shoe, error) {
	return s.loadShoe(ctx, shoeID)
}

// AddParams carries the fields for a new inventory item. Descriptive fields
// usually come from the catalog lookup.
type AddParams struct {
	Code     string
	SKU      string
	Name     string
	Brand    string
	Size     string
	Image    string
	Price    decimal.Decimal
	Owner    string
	Location string
}

func (p AddParams) validate() (commission.Party, Location, error) {
	switch {
	case p.Code == "":
		return "", "", missingField("code")
	case p.SKU == "":
		return "", "", missingField("sku")
	case p.Name == "":
		return "", "", missingField("name")
	case p.Brand == "":
		return "", "", missingField("brand")
	case p.Size == "":
		return "", "", missingField("size")
	}
	if !p.Price.IsPositive() {
		return "", "", ErrInvalidPrice
	}

	owner, err := commission.ParseParty(p.Owner)
	if err != nil {
		return "", "", err
	}

	loc := Location(p.Location)
	if loc != LocationStore && loc != LocationHouse {
		return "", "", ErrInvalidLocation
	}
	return owner, loc, nil
}

// Add creates a new shoe in the available state.
func (s *Service) Add(ctx context.Context, p AddParams) (*Shoe, error) {
	owner, loc, err := p.validate()
	if err != nil {
		return nil, err
	}

	shoeID := uuid.New().String()
	now := time.Now()

	event := ShoeAdded{
		ShoeID:   shoeID,
		Code:     p.Code,
		SKU:      p.SKU,
		Name:     p.Name,
		Brand:    p.Brand,
		Size:     p.Size,
		Image:    p.Image,
		Price:    p.Price,
		Owner:    owner,
		Location: loc,
		AddedAt:  now,
	}

	storedEvent, err := s.eventStore.Append(ctx, shoeID, AggregateType, EventShoeAdded, event)
	if err != nil {
		return nil, err
	}

	sh := &Shoe{
		ID:           shoeID,
		Code:         p.Code,
		SKU:          p.SKU,
		Name:         p.Name,
		Brand:        p.Brand,
		Size:         p.Size,
		Image:        p.Image,
		Price:        p.Price,
		Owner:        owner,
		Location:     loc,
		Availability: StatusAvailable,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if storedEvent != nil {
		sh.Version = storedEvent.Version
	}
	return sh, nil
}

// Update edits the descriptive and commercial fields of an available shoe.
func (s *Service) Update(ctx context.Context, shoeID string, p AddParams) error {
	owner, loc, err := p.validate()
	if err != nil {
		return err
	}

	sh, err := s.loadShoe(ctx, shoeID)
	if err != nil {
		return err
	}
	if sh.Availability == StatusSold {
		return ErrAlreadySold
	}

	event := ShoeUpdated{
		ShoeID:    shoeID,
		Code:      p.Code,
		SKU:       p.SKU,
		Name:      p.Name,
		Brand:     p.Brand,
		Size:      p.Size,
		Image:     p.Image,
		Price:     p.Price,
		Owner:     owner,
		Location:  loc,
		UpdatedAt: time.Now(),
	}

	_, err = s.eventStore.Append(ctx, shoeID, AggregateType, EventShoeUpdated, event)
	return err
}

// SellParams carries the inputs for a sale transition.
type SellParams struct {
	PriceSale decimal.Decimal
	SoldBy    string
	SoldAt    string
	SoldTo    string
}

// Sell moves an available shoe to sold. The commission split is computed
// from the sale profit and attached to the shoe, and the sale date is taken
// from the clock here rather than from the caller.
func (s *Service) Sell(ctx context.Context, shoeID string, p SellParams) (*Shoe, error) {
	sh, err := s.loadShoe(ctx, shoeID)
	if err != nil {
		return nil, err
	}
	if !sh.CanTransitionTo(StatusSold) {
		return nil, ErrAlreadySold
	}

	if !p.PriceSale.IsPositive() {
		return nil, missingField("price_sale")
	}
	if p.SoldTo == "" {
		return nil, missingField("sold_to")
	}
	if p.SoldBy == "" {
		return nil, missingField("sold_by")
	}
	if p.SoldAt == "" {
		return nil, missingField("sold_at")
	}

	soldBy, err := commission.ParseParty(p.SoldBy)
	if err != nil {
		return nil, err
	}
	soldAt, err := commission.ParseChannel(p.SoldAt)
	if err != nil {
		return nil, err
	}

	profit := p.PriceSale.Sub(sh.Price)
	split, err := commission.Calculate(profit, sh.Owner, soldBy, soldAt)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	event := ShoeSold{
		ShoeID:     shoeID,
		PriceSale:  p.PriceSale,
		SoldTo:     p.SoldTo,
		SoldBy:     soldBy,
		SoldAt:     soldAt,
		Commission: commission.NewRecord(split, profit, now),
		SoldOn:     now,
	}

	storedEvent, err := s.eventStore.Append(ctx, shoeID, AggregateType, EventShoeSold, event)
	if err != nil {
		return nil, err
	}

	sh.PriceSale = &p.PriceSale
	sh.SoldTo = p.SoldTo
	sh.SoldBy = soldBy
	sh.SoldAt = soldAt
	sh.Commission = event.Commission
	sh.Availability = StatusSold
	sh.UpdatedAt = now
	if storedEvent != nil {
		sh.Version = storedEvent.Version
	}
	return sh, nil
}

// Return reverses a sale: the shoe becomes available again and the sale
// metadata and commission record are cleared.
func (s *Service) Return(ctx context.Context, shoeID string) error {
	sh, err := s.loadShoe(ctx, shoeID)
	if err != nil {
		return err
	}
	if !sh.CanTransitionTo(StatusAvailable) {
		return ErrNotSold
	}

	event := ShoeReturned{
		ShoeID:     shoeID,
		ReturnedAt: time.Now(),
	}

	_, err = s.eventStore.Append(ctx, shoeID, AggregateType, EventShoeReturned, event)
	return err
}

// Delete removes a shoe from inventory.
func (s *Service) Delete(ctx context.Context, shoeID string) error {
	if _, err := s.loadShoe(ctx, shoeID); err != nil {
		return err
	}

	event := ShoeDeleted{
		ShoeID:    shoeID,
		DeletedAt: time.Now(),
	}

	_, err := s.eventStore.Append(ctx, shoeID, AggregateType, EventShoeDeleted, event)
	return err
}

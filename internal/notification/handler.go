package notification

import (
	"context"
	"encoding/json"
	"log"

	"github.com/example/sneakfits/internal/domain/shoe"
	"github.com/example/sneakfits/internal/email"
	"github.com/example/sneakfits/internal/infrastructure/store"
	"github.com/example/sneakfits/internal/readmodel"
)

// Handler processes events for sending notifications
type Handler struct {
	emailService *email.Service
	readStore    store.ReadStoreInterface
	recipient    string // shared store inbox
}

// NewHandler creates a new notification handler
func NewHandler(emailSvc *email.Service, readStore store.ReadStoreInterface, recipient string) *Handler {
	return &Handler{
		emailService: emailSvc,
		readStore:    readStore,
		recipient:    recipient,
	}
}

// HandleEvent processes an event from Kafka
func (h *Handler) HandleEvent(ctx context.Context, key, value []byte) error {
	var event store.Event
	if err := json.Unmarshal(value, &event); err != nil {
		log.Printf("[Notifier] Failed to unmarshal event: %v", err)
		return err
	}

	// Only sales trigger an email
	if event.EventType == shoe.EventShoeSold {
		return h.handleShoeSold(event)
	}

	return nil
}

func (h *Handler) handleShoeSold(event store.Event) error {
	var e shoe.ShoeSold
	if err := json.Unmarshal(event.Data, &e); err != nil {
		log.Printf("[Notifier] Failed to unmarshal ShoeSold event: %v", err)
		return err
	}

	log.Printf("[Notifier] Processing ShoeSold event for shoe %s", e.ShoeID)

	receipt := email.SaleReceipt{
		ShoeID:    e.ShoeID,
		Name:      e.ShoeID,
		PriceSale: e.PriceSale,
		Profit:    e.Commission.Profit,
		SoldTo:    e.SoldTo,
		SoldBy:    string(e.SoldBy),
		Channel:   string(e.SoldAt),
		SoldOn:    e.SoldOn,
		Shares: []email.PartyShare{
			{Party: "Fitz", Amount: e.Commission.Fitz},
			{Party: "Bryan", Amount: e.Commission.Bryan},
			{Party: "Ashley", Amount: e.Commission.Ashley},
		},
	}

	// Fill in shoe details from the read model when the projection has them
	if data, ok := h.readStore.Get("shoes", e.ShoeID); ok {
		if sh, ok := data.(*readmodel.ShoeReadModel); ok {
			receipt.Name = sh.Name
			receipt.SKU = sh.SKU
			receipt.Size = sh.Size
		}
	}

	if err := h.emailService.SendSaleReceipt(h.recipient, receipt); err != nil {
		log.Printf("[Notifier] Failed to send email to %s: %v", h.recipient, err)
		return err
	}

	log.Printf("[Notifier] Sale receipt sent to %s for shoe %s", h.recipient, e.ShoeID)
	return nil
}

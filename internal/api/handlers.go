package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/example/sneakfits/internal/catalog"
	"github.com/example/sneakfits/internal/command"
	"github.com/example/sneakfits/internal/domain/commission"
	"github.com/example/sneakfits/internal/domain/shoe"
	"github.com/example/sneakfits/internal/query"
	"github.com/example/sneakfits/internal/reporting"
)

// CatalogSearcher is the slice of the catalog client the search endpoint
// needs. Nil when no catalog URL is configured.
type CatalogSearcher interface {
	Search(ctx context.Context, query string) ([]catalog.Product, error)
}

type Handlers struct {
	cmdHandler   *command.Handler
	queryHandler *query.Handler
	catalog      CatalogSearcher
}

func NewHandlers(cmdHandler *command.Handler, queryHandler *query.Handler, catalogClient CatalogSearcher) *Handlers {
	return &Handlers{
		cmdHandler:   cmdHandler,
		queryHandler: queryHandler,
		catalog:      catalogClient,
	}
}

// Shoe Handlers

func (h *Handlers) AddShoe(w http.ResponseWriter, r *http.Request) {
	var cmd command.AddShoe
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		respondJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	sh, err := h.cmdHandler.AddShoe(r.Context(), cmd)
	if err != nil {
		respondJSONError(w, err.Error(), statusForError(err))
		return
	}

	respondJSON(w, http.StatusCreated, sh)
}

func (h *Handlers) GetShoes(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Query().Get("availability") {
	case "available":
		respondJSON(w, http.StatusOK, h.queryHandler.ListAvailable())
	case "sold":
		respondJSON(w, http.StatusOK, h.queryHandler.ListSold())
	default:
		respondJSON(w, http.StatusOK, h.queryHandler.ListShoes())
	}
}

func (h *Handlers) GetShoe(w http.ResponseWriter, r *http.Request) {
	id := extractPathParam(r.URL.Path, "/shoes/")
	sh, ok := h.queryHandler.GetShoe(id)
	if !ok {
		respondJSONError(w, "Shoe not found", http.StatusNotFound)
		return
	}
	respondJSON(w, http.StatusOK, sh)
}

func (h *Handlers) UpdateShoe(w http.ResponseWriter, r *http.Request) {
	id := extractPathParam(r.URL.Path, "/shoes/")

	var cmd command.UpdateShoe
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		respondJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	cmd.ShoeID = id

	if err := h.cmdHandler.UpdateShoe(r.Context(), cmd); err != nil {
		respondJSONError(w, err.Error(), statusForError(err))
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Shoe updated"})
}

func (h *Handlers) DeleteShoe(w http.ResponseWriter, r *http.Request) {
	id := extractPathParam(r.URL.Path, "/shoes/")

	cmd := command.DeleteShoe{ShoeID: id}
	if err := h.cmdHandler.DeleteShoe(r.Context(), cmd); err != nil {
		respondJSONError(w, err.Error(), statusForError(err))
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Shoe deleted"})
}

// Sale Handlers

func (h *Handlers) SellShoe(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/shoes/")
	id := strings.TrimSuffix(path, "/sell")

	var cmd command.SellShoe
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		respondJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	cmd.ShoeID = id

	sh, err := h.cmdHandler.SellShoe(r.Context(), cmd)
	if err != nil {
		respondJSONError(w, err.Error(), statusForError(err))
		return
	}

	respondJSON(w, http.StatusOK, sh)
}

func (h *Handlers) ReturnShoe(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/shoes/")
	id := strings.TrimSuffix(path, "/return")

	cmd := command.ReturnShoe{ShoeID: id}
	if err := h.cmdHandler.ReturnShoe(r.Context(), cmd); err != nil {
		respondJSONError(w, err.Error(), statusForError(err))
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Sale reversed"})
}

// Catalog Handlers

func (h *Handlers) SearchCatalog(w http.ResponseWriter, r *http.Request) {
	if h.catalog == nil {
		respondJSONError(w, "Catalog is not configured", http.StatusServiceUnavailable)
		return
	}

	query := r.URL.Query().Get("query")
	if query == "" {
		respondJSONError(w, "query parameter is required", http.StatusBadRequest)
		return
	}

	products, err := h.catalog.Search(r.Context(), query)
	if err != nil {
		if errors.Is(err, catalog.ErrUnavailable) {
			respondJSONError(w, "Catalog is temporarily unavailable", http.StatusServiceUnavailable)
			return
		}
		respondJSONError(w, err.Error(), http.StatusBadGateway)
		return
	}

	respondJSON(w, http.StatusOK, products)
}

// Report Handlers

func (h *Handlers) GetSalesReport(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("range")
	if token == "" {
		token = string(reporting.RangeAllTime)
	}

	rng, err := reporting.ParseRange(token)
	if err != nil {
		respondJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	summary, err := h.queryHandler.SalesSummary(rng)
	if err != nil {
		respondJSONError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, summary)
}

func (h *Handlers) GetSalesSeries(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("range")
	if token == "" {
		token = string(reporting.RangeLastMonth)
	}

	rng, err := reporting.ParseRange(token)
	if err != nil {
		respondJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	party, err := commission.ParseParty(r.URL.Query().Get("party"))
	if err != nil {
		respondJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	points, err := h.queryHandler.SalesSeries(rng, party)
	if err != nil {
		respondJSONError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, points)
}

// Helper functions

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func extractPathParam(path, prefix string) string {
	return strings.TrimPrefix(path, prefix)
}

// statusForError maps domain errors to HTTP status codes: bad input is 400,
// state conflicts are 409, unknown shoes are 404.
func statusForError(err error) int {
	switch {
	case errors.Is(err, shoe.ErrShoeNotFound):
		return http.StatusNotFound
	case errors.Is(err, shoe.ErrAlreadySold),
		errors.Is(err, shoe.ErrNotSold):
		return http.StatusConflict
	case errors.Is(err, shoe.ErrMissingField),
		errors.Is(err, shoe.ErrInvalidPrice),
		errors.Is(err, shoe.ErrInvalidLocation),
		errors.Is(err, commission.ErrMissingParty),
		errors.Is(err, commission.ErrUnknownParty),
		errors.Is(err, commission.ErrUnknownChannel),
		errors.Is(err, commission.ErrWalkInSeller):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Package service exposes the party workflow as a JSON HTTP API: create a
// party, add friends and menu items, assign orders, and calculate the bill.
//
// Every handler is one atomic load-mutate-save round trip against the
// stored party; nothing is kept in process memory between requests.
package service

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/tkarolak/dinesplit/internal/allocation"
	"github.com/tkarolak/dinesplit/internal/catalog"
	"github.com/tkarolak/dinesplit/internal/models"
	"github.com/tkarolak/dinesplit/internal/storage"
)

// PartyService wires the domain packages behind the HTTP API.
type PartyService struct {
	store    storage.Store
	catalog  *catalog.Catalog
	validate *validator.Validate
}

// NewPartyService creates a PartyService with the given storage backend and
// restaurant catalog.
func NewPartyService(store storage.Store, cat *catalog.Catalog) *PartyService {
	return &PartyService{
		store:    store,
		catalog:  cat,
		validate: validator.New(),
	}
}

// Routes returns the API routes for mounting under /api.
func (s *PartyService) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/restaurants", s.handleListRestaurants)

	r.Route("/parties", func(r chi.Router) {
		r.Post("/", s.handleCreateParty)
		r.Get("/", s.handleListParties)

		r.Route("/{partyID}", func(r chi.Router) {
			r.Get("/", s.handleGetParty)
			r.Put("/", s.handleUpdateParty)
			r.Delete("/", s.handleDeleteParty)

			r.Post("/participants", s.handleAddParticipant)
			r.Delete("/participants/{name}", s.handleRemoveParticipant)

			r.Post("/items", s.handleAddItem)
			r.Delete("/items/{name}", s.handleRemoveItem)

			r.Put("/orders", s.handleSetOrder)
			r.Get("/bill", s.handleGetBill)
		})
	})

	return r
}

// presetFor resolves the bill's selected preset. A missing preset (custom
// restaurant, or a preset removed from the catalog since the party was
// saved) degrades to per-item pricing.
func (s *PartyService) presetFor(bill *models.Bill) *models.RestaurantPreset {
	if bill.PresetName == "" {
		return nil
	}
	preset := s.catalog.Get(bill.PresetName)
	if preset == nil {
		slog.Warn("Preset no longer in catalog, falling back to per-item pricing",
			"party_id", bill.ID, "preset", bill.PresetName)
	}
	return preset
}

// decode unmarshals and validates a JSON request body.
func (s *PartyService) decode(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errors.New("malformed request body")
	}
	return s.validate.Struct(dst)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

// statusFor maps domain errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, storage.ErrNotFound),
		errors.Is(err, models.ErrUnknownItem),
		errors.Is(err, models.ErrUnknownParticipant):
		return http.StatusNotFound
	case errors.Is(err, models.ErrDuplicateItem),
		errors.Is(err, models.ErrDuplicateName):
		return http.StatusConflict
	case errors.Is(err, allocation.ErrInvalidQuantity),
		errors.Is(err, models.ErrEmptyName):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

package service

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tkarolak/dinesplit/internal/models"
	"github.com/tkarolak/dinesplit/internal/pricing"
)

type createPartyRequest struct {
	// Name is the party name.
	Name string `json:"name" validate:"required"`

	// Restaurant selects a preset by name; empty means a custom restaurant.
	Restaurant string `json:"restaurant,omitempty"`

	// RestaurantName is the display name for a custom restaurant.
	RestaurantName string `json:"restaurant_name,omitempty"`

	// Participants optionally seeds the friend list.
	Participants []string `json:"participants,omitempty"`
}

type updatePartyRequest struct {
	Name string `json:"name" validate:"required"`

	// Restaurant switches the selected preset. Changing it resets the
	// party's menu and all orders, matching the interactive flow.
	Restaurant string `json:"restaurant,omitempty"`

	RestaurantName string `json:"restaurant_name,omitempty"`
}

// handleListRestaurants returns all loaded presets.
func (s *PartyService) handleListRestaurants(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"restaurants": s.catalog.List(),
	})
}

// handleCreateParty creates a party, optionally seeded from a preset menu.
func (s *PartyService) handleCreateParty(w http.ResponseWriter, r *http.Request) {
	var req createPartyRequest
	if err := s.decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	var bill *models.Bill
	if req.Restaurant != "" {
		preset := s.catalog.Get(req.Restaurant)
		if preset == nil {
			writeError(w, http.StatusBadRequest, fmt.Errorf("unknown restaurant: %s", req.Restaurant))
			return
		}
		bill = models.NewBillFromPreset(req.Name, preset)
	} else {
		bill = &models.Bill{Name: req.Name, RestaurantName: req.RestaurantName}
	}

	for _, p := range req.Participants {
		if err := bill.AddParticipant(p); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
	}

	if err := s.store.CreateParty(r.Context(), bill); err != nil {
		slog.Error("CreateParty failed", "error", err)
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	slog.Info("Party created", "party_id", bill.ID, "name", bill.Name, "restaurant", bill.RestaurantName)
	writeJSON(w, http.StatusCreated, bill)
}

// handleListParties returns saved party summaries, newest first.
func (s *PartyService) handleListParties(w http.ResponseWriter, r *http.Request) {
	parties, err := s.store.ListParties(r.Context())
	if err != nil {
		slog.Error("ListParties failed", "error", err)
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"parties": parties})
}

func (s *PartyService) handleGetParty(w http.ResponseWriter, r *http.Request) {
	bill, err := s.store.GetParty(r.Context(), chi.URLParam(r, "partyID"))
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, bill)
}

// handleUpdateParty renames the party or switches its restaurant.
// Switching to a different preset replaces the menu and clears all orders.
func (s *PartyService) handleUpdateParty(w http.ResponseWriter, r *http.Request) {
	var req updatePartyRequest
	if err := s.decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	bill, err := s.store.GetParty(r.Context(), chi.URLParam(r, "partyID"))
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	bill.Name = req.Name
	if req.Restaurant != bill.PresetName {
		if req.Restaurant == "" {
			bill.PresetName = ""
			bill.Items = nil
		} else {
			preset := s.catalog.Get(req.Restaurant)
			if preset == nil {
				writeError(w, http.StatusBadRequest, fmt.Errorf("unknown restaurant: %s", req.Restaurant))
				return
			}
			bill.PresetName = preset.Name
			bill.RestaurantName = preset.Name
			bill.Items = preset.CloneMenu()
		}
		slog.Info("Party restaurant switched", "party_id", bill.ID, "restaurant", req.Restaurant)
	}
	if req.RestaurantName != "" && bill.PresetName == "" {
		bill.RestaurantName = req.RestaurantName
	}

	s.saveAndRespond(w, r, bill)
}

func (s *PartyService) handleDeleteParty(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "partyID")
	if err := s.store.DeleteParty(r.Context(), id); err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	slog.Info("Party deleted", "party_id", id)
	w.WriteHeader(http.StatusNoContent)
}

// saveAndRespond persists the mutated bill with its recomputed grand total
// and writes it back to the client.
func (s *PartyService) saveAndRespond(w http.ResponseWriter, r *http.Request, bill *models.Bill) {
	summary := pricing.Summarize(bill, s.presetFor(bill))
	if err := s.store.UpdateParty(r.Context(), bill, summary.GrandTotal); err != nil {
		slog.Error("UpdateParty failed", "party_id", bill.ID, "error", err)
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, bill)
}

package service

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/tkarolak/dinesplit/internal/allocation"
	"github.com/tkarolak/dinesplit/internal/models"
	"github.com/tkarolak/dinesplit/internal/pricing"
)

type addParticipantRequest struct {
	Name string `json:"name" validate:"required"`
}

type addItemRequest struct {
	Name       string  `json:"name" validate:"required"`
	Price      float64 `json:"price" validate:"gte=0"`
	Category   string  `json:"category" validate:"required"`
	CourseItem bool    `json:"course_item,omitempty"`
}

type setOrderRequest struct {
	Item        string `json:"item" validate:"required"`
	Participant string `json:"participant" validate:"required"`
	Quantity    int    `json:"quantity" validate:"gte=0"`
}

func (s *PartyService) handleAddParticipant(w http.ResponseWriter, r *http.Request) {
	var req addParticipantRequest
	if err := s.decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	bill, err := s.store.GetParty(r.Context(), chi.URLParam(r, "partyID"))
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	if err := bill.AddParticipant(req.Name); err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	s.saveAndRespond(w, r, bill)
}

func (s *PartyService) handleRemoveParticipant(w http.ResponseWriter, r *http.Request) {
	name, err := url.PathUnescape(chi.URLParam(r, "name"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	bill, err := s.store.GetParty(r.Context(), chi.URLParam(r, "partyID"))
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	if err := bill.RemoveParticipant(name); err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	s.saveAndRespond(w, r, bill)
}

// handleAddItem adds a menu item to the party. Custom parties grow their
// menu this way; preset parties can add off-menu extras too.
func (s *PartyService) handleAddItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := s.decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	category := models.Category(req.Category)
	if !models.ValidCategory(category) {
		writeError(w, http.StatusBadRequest, fmt.Errorf("unknown category: %s", req.Category))
		return
	}

	bill, err := s.store.GetParty(r.Context(), chi.URLParam(r, "partyID"))
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	item := models.MenuItem{
		Name:         req.Name,
		Category:     category,
		UnitCost:     req.Price,
		IsCourseItem: req.CourseItem,
	}
	if err := bill.AddItem(item); err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	s.saveAndRespond(w, r, bill)
}

func (s *PartyService) handleRemoveItem(w http.ResponseWriter, r *http.Request) {
	name, err := url.PathUnescape(chi.URLParam(r, "name"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	bill, err := s.store.GetParty(r.Context(), chi.URLParam(r, "partyID"))
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	if err := bill.RemoveItem(name); err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	s.saveAndRespond(w, r, bill)
}

// handleSetOrder sets a participant's quantity for one item.
// Replace-based: the new quantity overwrites whatever was there before, and
// quantity zero removes the item from the participant's order.
func (s *PartyService) handleSetOrder(w http.ResponseWriter, r *http.Request) {
	var req setOrderRequest
	if err := s.decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	bill, err := s.store.GetParty(r.Context(), chi.URLParam(r, "partyID"))
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	item := bill.ItemByName(req.Item)
	if item == nil {
		writeError(w, statusFor(models.ErrUnknownItem), models.ErrUnknownItem)
		return
	}
	participant, ok := bill.ParticipantByName(req.Participant)
	if !ok {
		writeError(w, statusFor(models.ErrUnknownParticipant), models.ErrUnknownParticipant)
		return
	}

	if err := allocation.SetQuantity(item, participant, req.Quantity); err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	s.saveAndRespond(w, r, bill)
}

// handleGetBill computes the per-participant breakdown and grand total.
// ?sort=total re-sorts participants by descending total for presentation.
func (s *PartyService) handleGetBill(w http.ResponseWriter, r *http.Request) {
	bill, err := s.store.GetParty(r.Context(), chi.URLParam(r, "partyID"))
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	summary := pricing.Summarize(bill, s.presetFor(bill))
	if r.URL.Query().Get("sort") == "total" {
		summary.SortByTotal()
	}
	writeJSON(w, http.StatusOK, summary)
}

// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/tkarolak/dinesplit/internal/models"
)

// ErrNotFound is returned when a requested party does not exist.
var ErrNotFound = errors.New("party not found")

// PartySummary is the lightweight listing entry shown on the start page.
type PartySummary struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	RestaurantName string  `json:"restaurant_name"`
	Participants   int     `json:"participants"`
	TotalCost      float64 `json:"total_cost"`
	UpdatedAt      int64   `json:"updated_at"`
}

// Store defines the interface for party persistence. The snapshot shape is
// the Bill model itself; how it is laid out on disk is the store's concern,
// as long as GetParty reconstructs an equivalent Bill (including each
// item's OrderedBy multiset).
type Store interface {
	// CreateParty persists a new party. The bill's ID and CreatedAt fields
	// are populated by the store when unset.
	CreateParty(ctx context.Context, bill *models.Bill) error

	// GetParty retrieves a party by ID. Returns ErrNotFound when absent.
	GetParty(ctx context.Context, id string) (*models.Bill, error)

	// ListParties returns summaries of all saved parties, most recently
	// updated first. totalCost is computed by the caller and stored on
	// save, so listing needs no pricing logic.
	ListParties(ctx context.Context) ([]PartySummary, error)

	// UpdateParty replaces a saved party's snapshot.
	// Returns ErrNotFound when the party does not exist.
	UpdateParty(ctx context.Context, bill *models.Bill, totalCost float64) error

	// DeleteParty removes a party. Returns ErrNotFound when absent.
	DeleteParty(ctx context.Context, id string) error

	// Close releases any resources held by the store.
	Close() error
}

package models

import (
	"errors"
	"fmt"
	"strings"
)

// Errors reported by Bill operations. The failed operation is always a
// no-op; callers decide whether to surface or ignore the condition.
var (
	ErrUnknownItem        = errors.New("item not on the bill")
	ErrUnknownParticipant = errors.New("participant not on the bill")
	ErrDuplicateItem      = errors.New("item already on the bill")
	ErrDuplicateName      = errors.New("participant already on the bill")
	ErrEmptyName          = errors.New("participant name is empty")
)

// Bill is one party's active bill: the menu items in play and the people
// splitting them. A bill is created empty (custom restaurant) or seeded by
// copying a preset's menu, and is mutated only through its methods.
type Bill struct {
	// ID is the unique identifier for the bill (UUID format).
	ID string `json:"id"`

	// Name is the party name shown on the start page.
	Name string `json:"name"`

	// RestaurantName is the display name of the restaurant.
	RestaurantName string `json:"restaurant_name"`

	// PresetName is the name of the selected RestaurantPreset, or empty
	// for a custom restaurant (per-item pricing).
	PresetName string `json:"preset_name,omitempty"`

	// Items is the menu for this bill, in insertion order.
	Items []MenuItem `json:"items"`

	// Participants is the list of people splitting the bill, in the order
	// they were added. Names are case-insensitive unique.
	Participants []string `json:"participants"`

	// CreatedAt and UpdatedAt are Unix timestamps maintained by storage.
	CreatedAt int64 `json:"created_at"`
	UpdatedAt int64 `json:"updated_at"`
}

// NewBillFromPreset creates a bill seeded with the preset's menu.
// Every item starts with an empty OrderedBy.
func NewBillFromPreset(name string, preset *RestaurantPreset) *Bill {
	return &Bill{
		Name:           name,
		RestaurantName: preset.Name,
		PresetName:     preset.Name,
		Items:          preset.CloneMenu(),
	}
}

// ItemByName returns the item with the given name, or nil.
func (b *Bill) ItemByName(name string) *MenuItem {
	for i := range b.Items {
		if b.Items[i].Name == name {
			return &b.Items[i]
		}
	}
	return nil
}

// ParticipantByName returns the participant's canonical stored name.
// Matching is case-insensitive, same as AddParticipant's uniqueness check;
// callers must use the returned spelling when writing into OrderedBy, which
// compares exactly.
func (b *Bill) ParticipantByName(name string) (string, bool) {
	for _, p := range b.Participants {
		if strings.EqualFold(p, name) {
			return p, true
		}
	}
	return "", false
}

// HasParticipant reports whether the name is on the bill.
func (b *Bill) HasParticipant(name string) bool {
	_, ok := b.ParticipantByName(name)
	return ok
}

// AddItem appends a menu item to the bill. Item names must be unique.
func (b *Bill) AddItem(item MenuItem) error {
	if b.ItemByName(item.Name) != nil {
		return fmt.Errorf("%w: %s", ErrDuplicateItem, item.Name)
	}
	b.Items = append(b.Items, item)
	return nil
}

// RemoveItem removes the named item and every order against it.
func (b *Bill) RemoveItem(name string) error {
	for i := range b.Items {
		if b.Items[i].Name == name {
			b.Items = append(b.Items[:i], b.Items[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrUnknownItem, name)
}

// AddParticipant adds a person to the bill. Names are trimmed and must be
// unique ignoring case.
func (b *Bill) AddParticipant(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	if b.HasParticipant(name) {
		return fmt.Errorf("%w: %s", ErrDuplicateName, name)
	}
	b.Participants = append(b.Participants, name)
	return nil
}

// RemoveParticipant removes a person from the bill and clears their orders
// from every item.
func (b *Bill) RemoveParticipant(name string) error {
	exact, ok := b.ParticipantByName(name)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownParticipant, name)
	}
	for i, p := range b.Participants {
		if p == exact {
			b.Participants = append(b.Participants[:i], b.Participants[i+1:]...)
			break
		}
	}

	for i := range b.Items {
		item := &b.Items[i]
		kept := item.OrderedBy[:0]
		for _, who := range item.OrderedBy {
			if who != exact {
				kept = append(kept, who)
			}
		}
		item.OrderedBy = kept
	}
	return nil
}

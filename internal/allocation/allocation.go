// Package allocation maintains the ordered-by multiset on menu items:
// how many units of each item each participant has ordered.
//
// Writes are replace-based, never diff-based: SetQuantity always strips the
// participant's existing entries before appending the requested count, so
// repeated calls with the same arguments are idempotent and never depend on
// call ordering.
package allocation

import (
	"errors"
	"fmt"

	"github.com/tkarolak/dinesplit/internal/models"
)

// ErrInvalidQuantity is returned when a requested quantity is negative or
// exceeds the category cap. The item is left untouched.
var ErrInvalidQuantity = errors.New("invalid quantity")

const (
	// MaxCourseQuantity caps Starter/Main/Dessert items at one unit per
	// participant.
	MaxCourseQuantity = 1

	// MaxExtraQuantity caps Drink/Other items per participant.
	MaxExtraQuantity = 10

	// MaxSelectableDuplicates is how many duplicate units an interactive
	// picker should offer for Drink/Other items. The engine itself accepts
	// up to MaxExtraQuantity.
	MaxSelectableDuplicates = 6
)

// MaxQuantity returns the per-participant cap for a category.
func MaxQuantity(c models.Category) int {
	switch c {
	case models.CategoryDrink, models.CategoryOther:
		return MaxExtraQuantity
	default:
		return MaxCourseQuantity
	}
}

// QuantityOf returns how many units of item the participant has ordered.
func QuantityOf(item *models.MenuItem, participant string) int {
	return item.Quantity(participant)
}

// SetQuantity sets the participant's quantity for the item.
//
// All existing occurrences of the participant are removed from the item's
// OrderedBy, then the participant is appended exactly qty times. Setting a
// quantity of zero on a pair that is already at zero is a valid no-op.
// Out-of-range requests are rejected with ErrInvalidQuantity rather than
// clamped.
func SetQuantity(item *models.MenuItem, participant string, qty int) error {
	if qty < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidQuantity, qty)
	}
	if limit := MaxQuantity(item.Category); qty > limit {
		return fmt.Errorf("%w: %d exceeds cap %d for category %s", ErrInvalidQuantity, qty, limit, item.Category)
	}

	kept := item.OrderedBy[:0]
	for _, who := range item.OrderedBy {
		if who != participant {
			kept = append(kept, who)
		}
	}
	for i := 0; i < qty; i++ {
		kept = append(kept, participant)
	}
	item.OrderedBy = kept
	return nil
}

// RemoveParticipant clears the participant's orders for the item.
// Equivalent to SetQuantity(item, participant, 0).
func RemoveParticipant(item *models.MenuItem, participant string) {
	// qty 0 never exceeds a cap, so the error is unreachable.
	_ = SetQuantity(item, participant, 0)
}

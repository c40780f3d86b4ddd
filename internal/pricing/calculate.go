// Package pricing computes per-participant bill breakdowns and party-wide
// summaries. All functions are pure: they never mutate the bill and never
// fail for a valid bill.
package pricing

import (
	"sort"

	"github.com/tkarolak/dinesplit/internal/models"
)

// Line is one entry on a participant's itemized bill.
type Line struct {
	// Name and Category identify the menu item.
	Name     string          `json:"name"`
	Category models.Category `json:"category"`

	// Quantity is how many units this participant ordered.
	Quantity int `json:"quantity"`

	// UnitCost is the item's listed price per unit.
	UnitCost float64 `json:"unit_cost"`

	// Total is UnitCost * Quantity. For a surcharge line this is the amount
	// added on top of the fixed course price, not a standalone charge.
	Total float64 `json:"total"`

	// Surcharge marks course items under course-based pricing.
	Surcharge bool `json:"surcharge,omitempty"`
}

// ParticipantBill is one person's computed share of the bill.
type ParticipantBill struct {
	Participant string `json:"participant"`

	// Lines is the itemized breakdown, sorted by category (canonical menu
	// order, unknown categories last) and then by item name.
	Lines []Line `json:"lines"`

	// CourseCount is the number of distinct course categories ordered.
	// Always zero under per-item pricing.
	CourseCount int `json:"course_count,omitempty"`

	// BasePrice is the fixed course price charged, zero when no course
	// items were ordered or under per-item pricing.
	BasePrice float64 `json:"base_price,omitempty"`

	// SurchargeTotal is the sum of course-item surcharges.
	SurchargeTotal float64 `json:"surcharge_total,omitempty"`

	// ExtrasTotal is the sum of everything charged at its listed price.
	ExtrasTotal float64 `json:"extras_total,omitempty"`

	// Total is the amount this participant owes.
	Total float64 `json:"total"`
}

// ForParticipant computes one participant's itemized cost over the given
// items. preset selects the pricing model; a nil preset or a preset that is
// not course-based means plain per-item pricing.
func ForParticipant(items []models.MenuItem, participant string, preset *models.RestaurantPreset) ParticipantBill {
	result := ParticipantBill{Participant: participant}

	ordered := collect(items, participant)
	if len(ordered) == 0 {
		return result
	}

	if preset != nil && preset.PricingModel == models.PricingCourseBased {
		return courseBased(result, ordered, preset.CoursePricing)
	}
	return perItem(result, ordered)
}

// entry pairs an item with the participant's quantity of it.
type entry struct {
	item *models.MenuItem
	qty  int
}

// collect gathers every item the participant ordered, sorted by category
// rank and then name. Sorting here makes the line order deterministic
// regardless of how the bill's item list is arranged.
func collect(items []models.MenuItem, participant string) []entry {
	var ordered []entry
	for i := range items {
		if qty := items[i].Quantity(participant); qty > 0 {
			ordered = append(ordered, entry{item: &items[i], qty: qty})
		}
	}
	sort.Slice(ordered, func(i, j int) bool {
		ri, rj := models.CategoryRank(ordered[i].item.Category), models.CategoryRank(ordered[j].item.Category)
		if ri != rj {
			return ri < rj
		}
		return ordered[i].item.Name < ordered[j].item.Name
	})
	return ordered
}

func perItem(result ParticipantBill, ordered []entry) ParticipantBill {
	for _, e := range ordered {
		line := Line{
			Name:     e.item.Name,
			Category: e.item.Category,
			Quantity: e.qty,
			UnitCost: e.item.UnitCost,
			Total:    e.item.UnitCost * float64(e.qty),
		}
		result.Lines = append(result.Lines, line)
		result.ExtrasTotal += line.Total
	}
	result.Total = result.ExtrasTotal
	return result
}

// courseBased prices the fixed-course model: course items contribute their
// category to the course count and their listed price as a surcharge, while
// everything else is charged at full price. Multiple items in the same
// category fill a single course slot.
func courseBased(result ParticipantBill, ordered []entry, prices models.CoursePricing) ParticipantBill {
	courses := make(map[models.Category]bool)

	for _, e := range ordered {
		isCourse := e.item.IsCourseItem && e.item.Category.IsCourseCategory()
		line := Line{
			Name:      e.item.Name,
			Category:  e.item.Category,
			Quantity:  e.qty,
			UnitCost:  e.item.UnitCost,
			Total:     e.item.UnitCost * float64(e.qty),
			Surcharge: isCourse,
		}
		result.Lines = append(result.Lines, line)

		if isCourse {
			courses[e.item.Category] = true
			result.SurchargeTotal += line.Total
		} else {
			result.ExtrasTotal += line.Total
		}
	}

	result.CourseCount = len(courses)
	result.BasePrice = prices.ForCount(result.CourseCount)
	result.Total = result.BasePrice + result.SurchargeTotal + result.ExtrasTotal
	return result
}

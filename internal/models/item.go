package models

// MenuItem represents a single dish on a bill's menu.
// The same struct doubles as the menu template inside a RestaurantPreset,
// where OrderedBy is always empty.
type MenuItem struct {
	// ID is the unique identifier for the item (UUID format).
	// Empty for preset menu templates; assigned when the item joins a bill.
	ID string `json:"id,omitempty"`

	// Name is the display name of the dish (e.g., "Caesar Salad").
	// Unique within a bill.
	Name string `json:"name"`

	// Category is the menu section this item belongs to.
	Category Category `json:"category"`

	// UnitCost is the listed price for one unit. Under course-based pricing
	// the listed price of a course item is a surcharge on top of the fixed
	// course price, not a standalone charge.
	UnitCost float64 `json:"price"`

	// IsCourseItem marks the item as part of the fixed-price course menu.
	// Only meaningful for course-based restaurants and only for
	// Starter/Main/Dessert items.
	IsCourseItem bool `json:"course_item,omitempty"`

	// OrderedBy is the multiset of participant names who ordered this item,
	// one entry per unit. A name appearing twice means quantity two.
	OrderedBy []string `json:"ordered_by"`
}

// Quantity returns how many units of the item the participant ordered.
func (m *MenuItem) Quantity(participant string) int {
	n := 0
	for _, name := range m.OrderedBy {
		if name == participant {
			n++
		}
	}
	return n
}

// TotalUnits returns the number of units ordered across all participants.
func (m *MenuItem) TotalUnits() int {
	return len(m.OrderedBy)
}

// Clone returns a deep copy of the item.
func (m *MenuItem) Clone() MenuItem {
	out := *m
	out.OrderedBy = append([]string(nil), m.OrderedBy...)
	return out
}

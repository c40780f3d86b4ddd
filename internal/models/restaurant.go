package models

// PricingModel selects how a participant's bill is computed.
type PricingModel string

const (
	// PricingPerItem charges every ordered unit at its listed price.
	// This is the default for custom restaurants.
	PricingPerItem PricingModel = "per_item"

	// PricingCourseBased charges a fixed price per number of distinct
	// course categories ordered (1/2/3+), plus surcharges for premium
	// course items, plus full price for everything else.
	PricingCourseBased PricingModel = "course_based"
)

// CoursePricing maps the number of distinct courses ordered to a fixed
// price. Three courses or more always charge the three-course price.
type CoursePricing struct {
	OneCourse   float64 `json:"1_course"`
	TwoCourse   float64 `json:"2_course"`
	ThreeCourse float64 `json:"3_course"`
}

// ForCount returns the fixed base price for the given number of distinct
// courses. Zero courses charge nothing; counts above three clamp to the
// three-course tier.
func (cp CoursePricing) ForCount(courses int) float64 {
	switch {
	case courses <= 0:
		return 0
	case courses == 1:
		return cp.OneCourse
	case courses == 2:
		return cp.TwoCourse
	default:
		return cp.ThreeCourse
	}
}

// RestaurantPreset is a predefined restaurant: a menu plus a pricing model.
// Presets are loaded once at startup and treated as immutable; bills copy
// the menu rather than referencing it.
type RestaurantPreset struct {
	Name          string        `json:"name"`
	Cuisine       string        `json:"cuisine"`
	PricingModel  PricingModel  `json:"pricing_model"`
	CoursePricing CoursePricing `json:"course_pricing"`
	Menu          []MenuItem    `json:"menu"`
}

// CloneMenu returns a deep copy of the preset's menu with every OrderedBy
// reset, suitable for seeding a new bill.
func (r *RestaurantPreset) CloneMenu() []MenuItem {
	menu := make([]MenuItem, len(r.Menu))
	for i, item := range r.Menu {
		menu[i] = item
		menu[i].OrderedBy = nil
	}
	return menu
}

package models

// Category classifies a menu item. Only Starter, Main and Dessert can count
// toward course-based pricing.
type Category string

const (
	CategoryStarter Category = "Starter"
	CategoryMain    Category = "Main"
	CategoryDessert Category = "Dessert"
	CategoryDrink   Category = "Drink"
	CategoryOther   Category = "Other"
)

// CategoryOrder is the canonical display order for bill breakdowns.
// Categories not listed here sort after all known ones.
var CategoryOrder = []Category{
	CategoryStarter,
	CategoryMain,
	CategoryDessert,
	CategoryDrink,
	CategoryOther,
}

// CategoryRank returns the position of c in CategoryOrder, or
// len(CategoryOrder) for unknown categories so they sort last.
func CategoryRank(c Category) int {
	for i, known := range CategoryOrder {
		if c == known {
			return i
		}
	}
	return len(CategoryOrder)
}

// IsCourseCategory reports whether items of this category may occupy a
// course slot under course-based pricing.
func (c Category) IsCourseCategory() bool {
	return c == CategoryStarter || c == CategoryMain || c == CategoryDessert
}

// ValidCategory reports whether c is one of the known categories.
func ValidCategory(c Category) bool {
	return CategoryRank(c) < len(CategoryOrder)
}

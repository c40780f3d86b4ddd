package pricing

import (
	"math"
	"testing"

	"github.com/tkarolak/dinesplit/internal/models"
)

// orderedBy builds a repeated-entry multiset: each name appears once per
// unit ordered.
func orderedBy(pairs map[string]int) []string {
	var out []string
	for _, name := range []string{"Alice", "Bob", "Charlie", "Diana"} {
		for i := 0; i < pairs[name]; i++ {
			out = append(out, name)
		}
	}
	return out
}

func courseMenu() *models.RestaurantPreset {
	return &models.RestaurantPreset{
		Name:         "Le Petit Gourmand",
		PricingModel: models.PricingCourseBased,
		CoursePricing: models.CoursePricing{
			OneCourse:   12.00,
			TwoCourse:   20.00,
			ThreeCourse: 26.00,
		},
	}
}

func TestForParticipant(t *testing.T) {
	tests := []struct {
		name         string
		items        []models.MenuItem
		participant  string
		preset       *models.RestaurantPreset
		validateFunc func(t *testing.T, bill ParticipantBill)
	}{
		{
			name:        "no orders yields zero result",
			items:       []models.MenuItem{{Name: "Pizza", Category: models.CategoryMain, UnitCost: 12.0}},
			participant: "Alice",
			validateFunc: func(t *testing.T, bill ParticipantBill) {
				if bill.Total != 0 {
					t.Errorf("Total = %v, want 0", bill.Total)
				}
				if len(bill.Lines) != 0 {
					t.Errorf("Lines = %d entries, want 0", len(bill.Lines))
				}
			},
		},
		{
			name: "per-item total multiplies quantity",
			items: []models.MenuItem{
				{Name: "Beer", Category: models.CategoryDrink, UnitCost: 10.00,
					OrderedBy: orderedBy(map[string]int{"Alice": 3})},
			},
			participant: "Alice",
			validateFunc: func(t *testing.T, bill ParticipantBill) {
				if math.Abs(bill.Total-30.00) > 0.01 {
					t.Errorf("Total = %v, want 30.00", bill.Total)
				}
				if len(bill.Lines) != 1 {
					t.Fatalf("Lines = %d entries, want 1", len(bill.Lines))
				}
				if bill.Lines[0].Quantity != 3 {
					t.Errorf("Quantity = %d, want 3", bill.Lines[0].Quantity)
				}
				if math.Abs(bill.Lines[0].Total-30.00) > 0.01 {
					t.Errorf("line Total = %v, want 30.00", bill.Lines[0].Total)
				}
			},
		},
		{
			name: "per-item ignores other participants",
			items: []models.MenuItem{
				{Name: "Pizza", Category: models.CategoryMain, UnitCost: 12.00,
					OrderedBy: orderedBy(map[string]int{"Alice": 1, "Bob": 1})},
				{Name: "Salad", Category: models.CategoryStarter, UnitCost: 8.00,
					OrderedBy: orderedBy(map[string]int{"Bob": 1})},
			},
			participant: "Alice",
			validateFunc: func(t *testing.T, bill ParticipantBill) {
				if math.Abs(bill.Total-12.00) > 0.01 {
					t.Errorf("Total = %v, want 12.00", bill.Total)
				}
			},
		},
		{
			name: "category sort orders lines canonically",
			items: []models.MenuItem{
				{Name: "Cola", Category: models.CategoryDrink, UnitCost: 3.00,
					OrderedBy: orderedBy(map[string]int{"Alice": 1})},
				{Name: "Bruschetta", Category: models.CategoryStarter, UnitCost: 6.00,
					OrderedBy: orderedBy(map[string]int{"Alice": 1})},
				{Name: "Pizza", Category: models.CategoryMain, UnitCost: 12.00,
					OrderedBy: orderedBy(map[string]int{"Alice": 1})},
			},
			participant: "Alice",
			validateFunc: func(t *testing.T, bill ParticipantBill) {
				want := []string{"Bruschetta", "Pizza", "Cola"}
				if len(bill.Lines) != len(want) {
					t.Fatalf("Lines = %d entries, want %d", len(bill.Lines), len(want))
				}
				for i, name := range want {
					if bill.Lines[i].Name != name {
						t.Errorf("Lines[%d] = %s, want %s", i, bill.Lines[i].Name, name)
					}
				}
			},
		},
		{
			name: "unknown categories sort last alphabetically",
			items: []models.MenuItem{
				{Name: "Zeta Special", Category: models.Category("Chef's Choice"), UnitCost: 5.00,
					OrderedBy: orderedBy(map[string]int{"Alice": 1})},
				{Name: "Alpha Special", Category: models.Category("Chef's Choice"), UnitCost: 5.00,
					OrderedBy: orderedBy(map[string]int{"Alice": 1})},
				{Name: "Water", Category: models.CategoryDrink, UnitCost: 2.00,
					OrderedBy: orderedBy(map[string]int{"Alice": 1})},
			},
			participant: "Alice",
			validateFunc: func(t *testing.T, bill ParticipantBill) {
				want := []string{"Water", "Alpha Special", "Zeta Special"}
				for i, name := range want {
					if bill.Lines[i].Name != name {
						t.Errorf("Lines[%d] = %s, want %s", i, bill.Lines[i].Name, name)
					}
				}
			},
		},
		{
			name: "one course charges base plus surcharge",
			items: []models.MenuItem{
				{Name: "Steak Frites", Category: models.CategoryMain, UnitCost: 2.00, IsCourseItem: true,
					OrderedBy: orderedBy(map[string]int{"Alice": 1})},
			},
			participant: "Alice",
			preset:      courseMenu(),
			validateFunc: func(t *testing.T, bill ParticipantBill) {
				if bill.CourseCount != 1 {
					t.Errorf("CourseCount = %d, want 1", bill.CourseCount)
				}
				if math.Abs(bill.BasePrice-12.00) > 0.01 {
					t.Errorf("BasePrice = %v, want 12.00", bill.BasePrice)
				}
				if math.Abs(bill.SurchargeTotal-2.00) > 0.01 {
					t.Errorf("SurchargeTotal = %v, want 2.00", bill.SurchargeTotal)
				}
				if math.Abs(bill.Total-14.00) > 0.01 {
					t.Errorf("Total = %v, want 14.00", bill.Total)
				}
				if !bill.Lines[0].Surcharge {
					t.Error("course line should be marked as surcharge")
				}
			},
		},
		{
			name: "mixed courses and extras",
			items: []models.MenuItem{
				{Name: "Soupe", Category: models.CategoryStarter, UnitCost: 0.00, IsCourseItem: true,
					OrderedBy: orderedBy(map[string]int{"Alice": 1})},
				{Name: "Steak Frites", Category: models.CategoryMain, UnitCost: 3.00, IsCourseItem: true,
					OrderedBy: orderedBy(map[string]int{"Alice": 1})},
				{Name: "House White", Category: models.CategoryDrink, UnitCost: 5.00,
					OrderedBy: orderedBy(map[string]int{"Alice": 1})},
			},
			participant: "Alice",
			preset:      courseMenu(),
			validateFunc: func(t *testing.T, bill ParticipantBill) {
				if bill.CourseCount != 2 {
					t.Errorf("CourseCount = %d, want 2", bill.CourseCount)
				}
				if math.Abs(bill.BasePrice-20.00) > 0.01 {
					t.Errorf("BasePrice = %v, want 20.00", bill.BasePrice)
				}
				if math.Abs(bill.SurchargeTotal-3.00) > 0.01 {
					t.Errorf("SurchargeTotal = %v, want 3.00", bill.SurchargeTotal)
				}
				if math.Abs(bill.ExtrasTotal-5.00) > 0.01 {
					t.Errorf("ExtrasTotal = %v, want 5.00", bill.ExtrasTotal)
				}
				if math.Abs(bill.Total-28.00) > 0.01 {
					t.Errorf("Total = %v, want 28.00", bill.Total)
				}
			},
		},
		{
			name: "same category fills one course slot",
			items: []models.MenuItem{
				{Name: "Soupe", Category: models.CategoryStarter, UnitCost: 0.00, IsCourseItem: true,
					OrderedBy: orderedBy(map[string]int{"Alice": 1})},
				{Name: "Escargots", Category: models.CategoryStarter, UnitCost: 3.50, IsCourseItem: true,
					OrderedBy: orderedBy(map[string]int{"Alice": 1})},
			},
			participant: "Alice",
			preset:      courseMenu(),
			validateFunc: func(t *testing.T, bill ParticipantBill) {
				if bill.CourseCount != 1 {
					t.Errorf("CourseCount = %d, want 1", bill.CourseCount)
				}
				// one-course base plus both surcharges
				if math.Abs(bill.Total-15.50) > 0.01 {
					t.Errorf("Total = %v, want 15.50", bill.Total)
				}
			},
		},
		{
			name: "three categories use the three-course tier",
			items: []models.MenuItem{
				{Name: "Soupe", Category: models.CategoryStarter, IsCourseItem: true,
					OrderedBy: orderedBy(map[string]int{"Alice": 1})},
				{Name: "Coq au Vin", Category: models.CategoryMain, IsCourseItem: true,
					OrderedBy: orderedBy(map[string]int{"Alice": 1})},
				{Name: "Creme Brulee", Category: models.CategoryDessert, IsCourseItem: true,
					OrderedBy: orderedBy(map[string]int{"Alice": 1})},
			},
			participant: "Alice",
			preset:      courseMenu(),
			validateFunc: func(t *testing.T, bill ParticipantBill) {
				if bill.CourseCount != 3 {
					t.Errorf("CourseCount = %d, want 3", bill.CourseCount)
				}
				if math.Abs(bill.Total-26.00) > 0.01 {
					t.Errorf("Total = %v, want 26.00", bill.Total)
				}
			},
		},
		{
			name: "no course items means no base price",
			items: []models.MenuItem{
				{Name: "House White", Category: models.CategoryDrink, UnitCost: 5.00,
					OrderedBy: orderedBy(map[string]int{"Alice": 1})},
			},
			participant: "Alice",
			preset:      courseMenu(),
			validateFunc: func(t *testing.T, bill ParticipantBill) {
				if bill.CourseCount != 0 {
					t.Errorf("CourseCount = %d, want 0", bill.CourseCount)
				}
				if bill.BasePrice != 0 {
					t.Errorf("BasePrice = %v, want 0", bill.BasePrice)
				}
				if math.Abs(bill.Total-5.00) > 0.01 {
					t.Errorf("Total = %v, want 5.00", bill.Total)
				}
			},
		},
		{
			name: "unflagged main is charged at full price",
			items: []models.MenuItem{
				{Name: "Lobster", Category: models.CategoryMain, UnitCost: 30.00, IsCourseItem: false,
					OrderedBy: orderedBy(map[string]int{"Alice": 1})},
			},
			participant: "Alice",
			preset:      courseMenu(),
			validateFunc: func(t *testing.T, bill ParticipantBill) {
				if bill.CourseCount != 0 {
					t.Errorf("CourseCount = %d, want 0", bill.CourseCount)
				}
				if math.Abs(bill.ExtrasTotal-30.00) > 0.01 {
					t.Errorf("ExtrasTotal = %v, want 30.00", bill.ExtrasTotal)
				}
				if math.Abs(bill.Total-30.00) > 0.01 {
					t.Errorf("Total = %v, want 30.00", bill.Total)
				}
			},
		},
		{
			name: "course flag on a drink does not count as a course",
			items: []models.MenuItem{
				{Name: "Pairing Wine", Category: models.CategoryDrink, UnitCost: 8.00, IsCourseItem: true,
					OrderedBy: orderedBy(map[string]int{"Alice": 1})},
			},
			participant: "Alice",
			preset:      courseMenu(),
			validateFunc: func(t *testing.T, bill ParticipantBill) {
				if bill.CourseCount != 0 {
					t.Errorf("CourseCount = %d, want 0", bill.CourseCount)
				}
				if math.Abs(bill.Total-8.00) > 0.01 {
					t.Errorf("Total = %v, want 8.00", bill.Total)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bill := ForParticipant(tt.items, tt.participant, tt.preset)
			if bill.Participant != tt.participant {
				t.Errorf("Participant = %s, want %s", bill.Participant, tt.participant)
			}
			tt.validateFunc(t, bill)
		})
	}
}

// Per-item pricing must not depend on the active preset when the preset is
// not course-based.
func TestForParticipantPerItemPreset(t *testing.T) {
	items := []models.MenuItem{
		{Name: "Ramen", Category: models.CategoryMain, UnitCost: 14.00,
			OrderedBy: orderedBy(map[string]int{"Alice": 1})},
	}
	preset := &models.RestaurantPreset{Name: "Sakura House", PricingModel: models.PricingPerItem}

	withPreset := ForParticipant(items, "Alice", preset)
	withoutPreset := ForParticipant(items, "Alice", nil)

	if withPreset.Total != withoutPreset.Total {
		t.Errorf("per-item preset total = %v, custom total = %v; want equal", withPreset.Total, withoutPreset.Total)
	}
}

// The calculator must be a pure function: same input, same output, and the
// input items are never touched.
func TestForParticipantDeterministic(t *testing.T) {
	items := []models.MenuItem{
		{Name: "Soupe", Category: models.CategoryStarter, UnitCost: 1.00, IsCourseItem: true,
			OrderedBy: orderedBy(map[string]int{"Alice": 1, "Bob": 1})},
		{Name: "Steak Frites", Category: models.CategoryMain, UnitCost: 4.00, IsCourseItem: true,
			OrderedBy: orderedBy(map[string]int{"Alice": 1})},
		{Name: "Cola", Category: models.CategoryDrink, UnitCost: 3.00,
			OrderedBy: orderedBy(map[string]int{"Alice": 2})},
	}
	preset := courseMenu()

	first := ForParticipant(items, "Alice", preset)
	for i := 0; i < 10; i++ {
		again := ForParticipant(items, "Alice", preset)
		if again.Total != first.Total {
			t.Fatalf("run %d: Total = %v, want %v", i, again.Total, first.Total)
		}
		if len(again.Lines) != len(first.Lines) {
			t.Fatalf("run %d: line count changed", i)
		}
		for j := range again.Lines {
			if again.Lines[j] != first.Lines[j] {
				t.Fatalf("run %d: line %d = %+v, want %+v", i, j, again.Lines[j], first.Lines[j])
			}
		}
	}

	if got := items[0].Quantity("Alice"); got != 1 {
		t.Errorf("input items mutated: quantity = %d, want 1", got)
	}
}

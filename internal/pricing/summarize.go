package pricing

import (
	"sort"

	"github.com/tkarolak/dinesplit/internal/models"
)

// BillSummary is the party-wide breakdown: one ParticipantBill per person
// plus the grand total.
type BillSummary struct {
	// Participants holds one breakdown per person, in the bill's insertion
	// order unless re-sorted for presentation.
	Participants []ParticipantBill `json:"participants"`

	// GrandTotal is the sum of all participant totals.
	GrandTotal float64 `json:"grand_total"`

	// TotalUnits is the number of units ordered across the whole bill.
	TotalUnits int `json:"total_units"`
}

// Summarize runs the calculator over every participant and aggregates the
// grand total. A bill with no items or no participants yields an empty
// breakdown and a zero total. The bill is never mutated.
func Summarize(bill *models.Bill, preset *models.RestaurantPreset) BillSummary {
	summary := BillSummary{}
	for _, p := range bill.Participants {
		pb := ForParticipant(bill.Items, p, preset)
		summary.Participants = append(summary.Participants, pb)
		summary.GrandTotal += pb.Total
	}
	for i := range bill.Items {
		summary.TotalUnits += bill.Items[i].TotalUnits()
	}
	return summary
}

// SortByTotal reorders the summary's participants by descending total for
// presentation. The sort is stable, so equal totals keep insertion order.
func (s *BillSummary) SortByTotal() {
	sort.SliceStable(s.Participants, func(i, j int) bool {
		return s.Participants[i].Total > s.Participants[j].Total
	})
}

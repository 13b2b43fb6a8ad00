package checkout

import (
	"turfbook/internal/domain/booking"
	"turfbook/internal/domain/squad"
)

const fallbackTurfName = "Turf"

// Summary is the final payable record assembled just before the payment
// step. Ownership passes to the payment collaborator; it is never stored
// by this core.
type Summary struct {
	TurfName  string
	Selection booking.Selection
	Breakdown booking.Breakdown
	Squad     *squad.Squad
}

// AssembleSummary aggregates the pipeline outputs. Missing display fields
// are substituted, never fatal; the squad is optional.
func AssembleSummary(turfName string, sel booking.Selection, bd booking.Breakdown, sq *squad.Squad) Summary {
	if turfName == "" {
		turfName = fallbackTurfName
	}
	return Summary{
		TurfName:  turfName,
		Selection: sel,
		Breakdown: bd,
		Squad:     sq,
	}
}

package pricing

import "github.com/google/uuid"

// Line is one itemized contribution to the base amount, e.g. an age-group
// entry of a tour or the per-seat price of an event section.
type Line struct {
	Label     string
	UnitPrice Money
	Quantity  int
	Amount    Money
}

// Adjustment is a named delta: a pricing-rule application, a time surcharge
// or a fee.
type Adjustment struct {
	RuleID uuid.UUID
	Label  string
	Amount Money
}

// RuleIssue records a malformed rule that was skipped. The computation
// continues with the remaining rules; the caller logs these at its boundary.
type RuleIssue struct {
	RuleID uuid.UUID
	Name   string
	Reason string
}

// Breakdown is the immutable, itemized decomposition of a final price.
// Produced fresh per request and never mutated afterwards.
type Breakdown struct {
	Currency          string
	Lines             []Line
	Base              Money
	Adjustments       []Adjustment
	OptionsTotal      Money
	RoundTripDiscount Money
	DiscountAmount    Money
	Fees              []Adjustment
	FeesTotal         Money
	TaxAmount         Money
	FinalPrice        Money
	SkippedRules      []RuleIssue
}

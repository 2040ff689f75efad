package pricing

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
)

// Rule is a configured event pricing rule. Rules apply in descending
// priority; a rule whose conditions do not match is skipped without error,
// a malformed rule is skipped and reported.
type Rule struct {
	ID         uuid.UUID
	Name       string
	Kind       CalcKind
	Percent    float64
	Amount     Money
	Priority   int
	ValidFrom  *time.Time
	ValidUntil *time.Time
	MinAmount  *Money
	MaxAmount  *Money
	Active     bool
}

func (r Rule) malformedReason() string {
	switch r.Kind {
	case CalcFixed:
		return ""
	case CalcPercentage:
		if r.Percent < -100 || r.Percent > 100 {
			return fmt.Sprintf("percentage %v out of range [-100, 100]", r.Percent)
		}
		return ""
	default:
		return fmt.Sprintf("unsupported calculation kind %q", r.Kind)
	}
}

// matches checks the rule's applicability conditions against the performance
// time and the running amount.
func (r Rule) matches(performanceAt time.Time, current Money) bool {
	if !r.Active {
		return false
	}
	if r.ValidFrom != nil && performanceAt.Before(*r.ValidFrom) {
		return false
	}
	if r.ValidUntil != nil && performanceAt.After(*r.ValidUntil) {
		return false
	}
	if r.MinAmount != nil && current.Cents() < r.MinAmount.Cents() {
		return false
	}
	if r.MaxAmount != nil && current.Cents() > r.MaxAmount.Cents() {
		return false
	}
	return true
}

func (r Rule) adjustment(current Money) Money {
	if r.Kind == CalcPercentage {
		return current.Percent(r.Percent)
	}
	return r.Amount
}

// evaluateRules applies the rules in descending priority order to the
// starting amount. Malformed rules are collected, never fatal.
func evaluateRules(rules []Rule, performanceAt time.Time, start Money) (Money, []Adjustment, []RuleIssue) {
	ordered := make([]Rule, len(rules))
	copy(ordered, rules)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Priority > ordered[j].Priority
	})

	current := start
	var applied []Adjustment
	var skipped []RuleIssue
	for _, r := range ordered {
		if reason := r.malformedReason(); reason != "" {
			skipped = append(skipped, RuleIssue{RuleID: r.ID, Name: r.Name, Reason: reason})
			continue
		}
		if !r.matches(performanceAt, current) {
			continue
		}
		delta := r.adjustment(current)
		current = current.Add(delta)
		applied = append(applied, Adjustment{RuleID: r.ID, Label: r.Name, Amount: delta})
	}
	return current, applied, skipped
}

// Fee is a configured fee rule: fixed, a percentage of the amount, or a
// per-unit charge, optionally gated by a minimum amount and capped.
type Fee struct {
	ID        uuid.UUID
	Name      string
	Kind      CalcKind
	Percent   float64
	Amount    Money
	MinAmount *Money
	MaxFee    *Money
	Active    bool
}

func (f Fee) malformedReason() string {
	switch f.Kind {
	case CalcFixed, CalcPerUnit:
		if f.Amount.IsNegative() {
			return "negative fee amount"
		}
		return ""
	case CalcPercentage:
		if f.Percent < 0 || f.Percent > 100 {
			return fmt.Sprintf("percentage %v out of range [0, 100]", f.Percent)
		}
		return ""
	default:
		return fmt.Sprintf("unsupported calculation kind %q", f.Kind)
	}
}

func (f Fee) apply(base Money, units int) Money {
	var amount Money
	switch f.Kind {
	case CalcFixed:
		amount = f.Amount
	case CalcPercentage:
		amount = base.Percent(f.Percent)
	case CalcPerUnit:
		amount = f.Amount.MulInt(units)
	}
	if f.MaxFee != nil {
		amount = amount.Min(*f.MaxFee)
	}
	return amount
}

// evaluateFees totals every active fee against the amount the fees are based
// on. Fees below their minimum-amount gate do not apply.
func evaluateFees(fees []Fee, base Money, units int) (Money, []Adjustment, []RuleIssue) {
	total := Zero()
	var applied []Adjustment
	var skipped []RuleIssue
	for _, f := range fees {
		if !f.Active {
			continue
		}
		if reason := f.malformedReason(); reason != "" {
			skipped = append(skipped, RuleIssue{RuleID: f.ID, Name: f.Name, Reason: reason})
			continue
		}
		if f.MinAmount != nil && base.Cents() < f.MinAmount.Cents() {
			continue
		}
		amount := f.apply(base, units)
		applied = append(applied, Adjustment{RuleID: f.ID, Label: f.Name, Amount: amount})
		total = total.Add(amount)
	}
	return total, applied, skipped
}

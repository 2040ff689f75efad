package response

import (
	"travel-booking/internal/domain/pricing"

	"github.com/google/uuid"
)

type LineResponse struct {
	Label          string `json:"label"`
	UnitPriceCents int64  `json:"unitPriceCents"`
	Quantity       int    `json:"quantity"`
	AmountCents    int64  `json:"amountCents"`
}

type AdjustmentResponse struct {
	RuleID      uuid.UUID `json:"ruleId"`
	Label       string    `json:"label"`
	AmountCents int64     `json:"amountCents"`
}

type QuoteResponse struct {
	Currency               string               `json:"currency"`
	Lines                  []LineResponse       `json:"lines"`
	BaseCents              int64                `json:"baseCents"`
	Adjustments            []AdjustmentResponse `json:"adjustments,omitempty"`
	OptionsTotalCents      int64                `json:"optionsTotalCents"`
	RoundTripDiscountCents int64                `json:"roundTripDiscountCents"`
	DiscountCents          int64                `json:"discountCents"`
	Fees                   []AdjustmentResponse `json:"fees,omitempty"`
	FeesTotalCents         int64                `json:"feesTotalCents"`
	TaxCents               int64                `json:"taxCents"`
	FinalPriceCents        int64                `json:"finalPriceCents"`
}

func FromBreakdown(b *pricing.Breakdown) *QuoteResponse {
	lines := make([]LineResponse, len(b.Lines))
	for i, l := range b.Lines {
		lines[i] = LineResponse{
			Label:          l.Label,
			UnitPriceCents: l.UnitPrice.Cents(),
			Quantity:       l.Quantity,
			AmountCents:    l.Amount.Cents(),
		}
	}
	return &QuoteResponse{
		Currency:               b.Currency,
		Lines:                  lines,
		BaseCents:              b.Base.Cents(),
		Adjustments:            fromAdjustments(b.Adjustments),
		OptionsTotalCents:      b.OptionsTotal.Cents(),
		RoundTripDiscountCents: b.RoundTripDiscount.Cents(),
		DiscountCents:          b.DiscountAmount.Cents(),
		Fees:                   fromAdjustments(b.Fees),
		FeesTotalCents:         b.FeesTotal.Cents(),
		TaxCents:               b.TaxAmount.Cents(),
		FinalPriceCents:        b.FinalPrice.Cents(),
	}
}

func fromAdjustments(adjs []pricing.Adjustment) []AdjustmentResponse {
	if len(adjs) == 0 {
		return nil
	}
	out := make([]AdjustmentResponse, len(adjs))
	for i, a := range adjs {
		out[i] = AdjustmentResponse{
			RuleID:      a.RuleID,
			Label:       a.Label,
			AmountCents: a.Amount.Cents(),
		}
	}
	return out
}

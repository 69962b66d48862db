package request

import "strings"

type CreateQuoteRequest struct {
	CustomerName string `json:"customer_name" binding:"required"`
}

type AddLineItemRequest struct {
	Description    string `json:"description" binding:"required"`
	Quantity       int    `json:"quantity" binding:"required"`
	UnitPriceCents int64  `json:"unit_price_cents" binding:"required"`
}

// TransitionQuoteRequest drives POST /quotes/:id/transition. CancelReason
// is only meaningful when the target is CANCELLED.
type TransitionQuoteRequest struct {
	TargetStatus string `json:"target_status" binding:"required"`
	CancelReason string `json:"cancel_reason"`
}

func (r TransitionQuoteRequest) ResolveTargetStatus() string {
	return strings.TrimSpace(strings.ToUpper(r.TargetStatus))
}

func (r TransitionQuoteRequest) ResolveCancelReason() string {
	return strings.TrimSpace(strings.ToLower(r.CancelReason))
}

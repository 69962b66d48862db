package entities

import "time"

// QuoteStatus represents the lifecycle of a sales quote.
//
// Domain notes:
//   - The workflow engine is the source of truth for quote state.
//   - Status only changes through the lifecycle usecase; repositories and
//     handlers never write it directly.
//   - COMPLETED, CANCELLED and EXPIRED are terminal.

type QuoteStatus string

const (
	QuoteStatusBuilding  QuoteStatus = "BUILDING"
	QuoteStatusDraft     QuoteStatus = "DRAFT"
	QuoteStatusPresented QuoteStatus = "PRESENTED"
	QuoteStatusSigned    QuoteStatus = "SIGNED"
	QuoteStatusCompleted QuoteStatus = "COMPLETED"
	QuoteStatusCancelled QuoteStatus = "CANCELLED"
	QuoteStatusExpired   QuoteStatus = "EXPIRED"
)

// QuoteStatuses lists every known status, used for boundary validation.
func QuoteStatuses() []QuoteStatus {
	return []QuoteStatus{
		QuoteStatusBuilding,
		QuoteStatusDraft,
		QuoteStatusPresented,
		QuoteStatusSigned,
		QuoteStatusCompleted,
		QuoteStatusCancelled,
		QuoteStatusExpired,
	}
}

// ParseQuoteStatus validates a raw status string at the API boundary.
func ParseQuoteStatus(raw string) (QuoteStatus, bool) {
	s := QuoteStatus(raw)
	for _, known := range QuoteStatuses() {
		if s == known {
			return s, true
		}
	}
	return "", false
}

// CancelReason is the fixed reason set recorded when a quote is cancelled.

type CancelReason string

const (
	CancelReasonCustomerChangedMind CancelReason = "customer_changed_mind"
	CancelReasonCustomerUnreachable CancelReason = "customer_unreachable"
	CancelReasonPricingError        CancelReason = "pricing_error"
	CancelReasonDuplicateQuote      CancelReason = "duplicate_quote"
	CancelReasonInsuranceDenied     CancelReason = "insurance_denied"
	CancelReasonProductUnavailable  CancelReason = "product_unavailable"
	CancelReasonStaffEntryError     CancelReason = "staff_entry_error"
)

func CancelReasons() []CancelReason {
	return []CancelReason{
		CancelReasonCustomerChangedMind,
		CancelReasonCustomerUnreachable,
		CancelReasonPricingError,
		CancelReasonDuplicateQuote,
		CancelReasonInsuranceDenied,
		CancelReasonProductUnavailable,
		CancelReasonStaffEntryError,
	}
}

func ParseCancelReason(raw string) (CancelReason, bool) {
	r := CancelReason(raw)
	for _, known := range CancelReasons() {
		if r == known {
			return r, true
		}
	}
	return "", false
}

// LineItem is a priced entry on a quote. Prices are stored in cents.
type LineItem struct {
	ID             string `json:"id"`
	Description    string `json:"description"`
	Quantity       int    `json:"quantity"`
	UnitPriceCents int64  `json:"unit_price_cents"`
}

// Quote is the mutable proposal document persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - version: monotonic counter; every mutating write is conditioned on
//     the expected version so concurrent writers race safely.
//
// Timestamps:
//   - LastActivityAt is bumped on every mutating operation and drives
//     expiration sweeps.
//   - SignedAt / CompletedAt / CancelReason are set only by the transition
//     that enters the corresponding state.

type Quote struct {
	ID             string        `json:"id"`
	CustomerName   string        `json:"customer_name"`
	Status         QuoteStatus   `json:"status"`
	LineItems      []LineItem    `json:"line_items"`
	CancelReason   *CancelReason `json:"cancel_reason,omitempty"`
	LastActivityAt time.Time     `json:"last_activity_at"`
	SignedAt       *time.Time    `json:"signed_at,omitempty"`
	CompletedAt    *time.Time    `json:"completed_at,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
	Version        int64         `json:"version"`
}

// HasPricedLineItem reports whether at least one line item carries a
// positive price, the precondition for presenting a quote.
func (q Quote) HasPricedLineItem() bool {
	for _, li := range q.LineItems {
		if li.UnitPriceCents > 0 && li.Quantity > 0 {
			return true
		}
	}
	return false
}

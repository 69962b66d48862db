package response

import (
	"time"

	"visionpos/internal/domain/entities"
)

type LineItemResponse struct {
	ID             string `json:"id"`
	Description    string `json:"description"`
	Quantity       int    `json:"quantity"`
	UnitPriceCents int64  `json:"unit_price_cents"`
}

type QuoteResponse struct {
	ID             string             `json:"id"`
	CustomerName   string             `json:"customer_name"`
	Status         string             `json:"status"`
	LineItems      []LineItemResponse `json:"line_items"`
	CancelReason   string             `json:"cancel_reason,omitempty"`
	LastActivityAt time.Time          `json:"last_activity_at"`
	SignedAt       *time.Time         `json:"signed_at,omitempty"`
	CompletedAt    *time.Time         `json:"completed_at,omitempty"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	items := make([]LineItemResponse, len(q.LineItems))
	for i, li := range q.LineItems {
		items[i] = LineItemResponse(li)
	}

	cancelReason := ""
	if q.CancelReason != nil {
		cancelReason = string(*q.CancelReason)
	}

	return QuoteResponse{
		ID:             q.ID,
		CustomerName:   q.CustomerName,
		Status:         string(q.Status),
		LineItems:      items,
		CancelReason:   cancelReason,
		LastActivityAt: q.LastActivityAt,
		SignedAt:       q.SignedAt,
		CompletedAt:    q.CompletedAt,
		CreatedAt:      q.CreatedAt,
		UpdatedAt:      q.UpdatedAt,
	}
}

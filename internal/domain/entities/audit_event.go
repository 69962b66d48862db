package entities

import "time"

type AuditSubjectType string

const (
	AuditSubjectQuote     AuditSubjectType = "QUOTE"
	AuditSubjectSignature AuditSubjectType = "SIGNATURE"
)

type AuditEventKind string

const (
	AuditEventQuoteCreated         AuditEventKind = "QUOTE_CREATED"
	AuditEventQuoteResumed         AuditEventKind = "QUOTE_RESUMED"
	AuditEventLineItemAdded        AuditEventKind = "LINE_ITEM_ADDED"
	AuditEventStatusChanged        AuditEventKind = "STATUS_CHANGED"
	AuditEventSignatureCaptured    AuditEventKind = "SIGNATURE_CAPTURED"
	AuditEventSignatureInvalidated AuditEventKind = "SIGNATURE_INVALIDATED"
	AuditEventSignerNameVerified   AuditEventKind = "SIGNER_NAME_VERIFIED"
)

// Detail keys used by the quote-history view.
const (
	DetailPreviousStatus = "previous_status"
	DetailNewStatus      = "new_status"
	DetailCancelReason   = "cancel_reason"
	DetailSignatureType  = "signature_type"
	DetailReason         = "reason"
	DetailVerifiedBy     = "verified_by"
	DetailWarnings       = "warnings"
)

// AuditEvent is one append-only log entry. Events are written in the same
// DynamoDB transaction as the state change they document, so the two are
// never separable.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (quote_id-index): quote_id, range key occurred_at
//   - GSI2 (subject_id-index): subject_id, range key occurred_at
//
// Seq carries the quote version at commit time; it breaks occurred_at ties
// so history ordering is stable.

type AuditEvent struct {
	ID          string            `json:"id"`
	SubjectType AuditSubjectType  `json:"subject_type"`
	SubjectID   string            `json:"subject_id"`
	QuoteID     string            `json:"quote_id"`
	EventKind   AuditEventKind    `json:"event_kind"`
	Actor       string            `json:"actor"`
	OccurredAt  time.Time         `json:"occurred_at"`
	Seq         int64             `json:"seq"`
	Detail      map[string]string `json:"detail,omitempty"`
}

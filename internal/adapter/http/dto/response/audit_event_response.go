package response

import (
	"time"

	"visionpos/internal/domain/entities"
)

type AuditEventResponse struct {
	ID          string            `json:"id"`
	SubjectType string            `json:"subject_type"`
	SubjectID   string            `json:"subject_id"`
	EventKind   string            `json:"event_kind"`
	Actor       string            `json:"actor"`
	OccurredAt  time.Time         `json:"occurred_at"`
	Detail      map[string]string `json:"detail,omitempty"`
}

func FromAuditEvents(events []entities.AuditEvent) []AuditEventResponse {
	out := make([]AuditEventResponse, len(events))
	for i, e := range events {
		out[i] = AuditEventResponse{
			ID:          e.ID,
			SubjectType: string(e.SubjectType),
			SubjectID:   e.SubjectID,
			EventKind:   string(e.EventKind),
			Actor:       e.Actor,
			OccurredAt:  e.OccurredAt,
			Detail:      e.Detail,
		}
	}
	return out
}

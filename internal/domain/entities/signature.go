package entities

import "time"

// SignatureType distinguishes the two independent consent artifacts a
// quote needs before it may reach SIGNED.

type SignatureType string

const (
	SignatureTypeExam      SignatureType = "EXAM"
	SignatureTypeMaterials SignatureType = "MATERIALS"
)

func SignatureTypes() []SignatureType {
	return []SignatureType{SignatureTypeExam, SignatureTypeMaterials}
}

func ParseSignatureType(raw string) (SignatureType, bool) {
	t := SignatureType(raw)
	for _, known := range SignatureTypes() {
		if t == known {
			return t, true
		}
	}
	return "", false
}

// SignatureRecord is one capture attempt, immutable once stored except for
// the single is_valid flip on invalidation and the name-verification
// fields. Records are never physically deleted; invalidation is the only
// removal path so the audit trail survives.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (quote_id-index): quote_id, range key captured_at

type SignatureRecord struct {
	ID            string        `json:"id"`
	QuoteID       string        `json:"quote_id"`
	SignatureType SignatureType `json:"signature_type"`
	SignatureData string        `json:"signature_data"`

	SignerName string    `json:"signer_name"`
	SignerRole string    `json:"signer_role"`
	IPAddress  string    `json:"ip_address"`
	UserAgent  string    `json:"user_agent"`
	DeviceInfo string    `json:"device_info"`
	CapturedAt time.Time `json:"captured_at"`

	IsValid           bool       `json:"is_valid"`
	InvalidatedReason string     `json:"invalidated_reason,omitempty"`
	InvalidatedBy     string     `json:"invalidated_by,omitempty"`
	InvalidatedAt     *time.Time `json:"invalidated_at,omitempty"`

	NameVerified   bool       `json:"name_verified"`
	NameVerifiedBy string     `json:"name_verified_by,omitempty"`
	NameVerifiedAt *time.Time `json:"name_verified_at,omitempty"`
}

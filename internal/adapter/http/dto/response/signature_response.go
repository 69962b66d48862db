package response

import (
	"time"

	"visionpos/internal/domain/entities"
	"visionpos/internal/usecase"
)

// SignatureResponse intentionally omits the raw signature payload; history
// and listing views only need the audit attributes.
type SignatureResponse struct {
	ID                string     `json:"id"`
	QuoteID           string     `json:"quote_id"`
	SignatureType     string     `json:"signature_type"`
	SignerName        string     `json:"signer_name"`
	SignerRole        string     `json:"signer_role,omitempty"`
	CapturedAt        time.Time  `json:"captured_at"`
	IsValid           bool       `json:"is_valid"`
	InvalidatedReason string     `json:"invalidated_reason,omitempty"`
	InvalidatedBy     string     `json:"invalidated_by,omitempty"`
	InvalidatedAt     *time.Time `json:"invalidated_at,omitempty"`
	NameVerified      bool       `json:"name_verified"`
	NameVerifiedBy    string     `json:"name_verified_by,omitempty"`
	NameVerifiedAt    *time.Time `json:"name_verified_at,omitempty"`
}

func FromSignatureRecord(rec entities.SignatureRecord) SignatureResponse {
	return SignatureResponse{
		ID:                rec.ID,
		QuoteID:           rec.QuoteID,
		SignatureType:     string(rec.SignatureType),
		SignerName:        rec.SignerName,
		SignerRole:        rec.SignerRole,
		CapturedAt:        rec.CapturedAt,
		IsValid:           rec.IsValid,
		InvalidatedReason: rec.InvalidatedReason,
		InvalidatedBy:     rec.InvalidatedBy,
		InvalidatedAt:     rec.InvalidatedAt,
		NameVerified:      rec.NameVerified,
		NameVerifiedBy:    rec.NameVerifiedBy,
		NameVerifiedAt:    rec.NameVerifiedAt,
	}
}

func FromSignatureRecords(recs []entities.SignatureRecord) []SignatureResponse {
	out := make([]SignatureResponse, len(recs))
	for i, rec := range recs {
		out[i] = FromSignatureRecord(rec)
	}
	return out
}

type CaptureWarningResponse struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type SignatureResultResponse struct {
	Success     bool                     `json:"success"`
	SignatureID string                   `json:"signature_id"`
	Signature   SignatureResponse        `json:"signature"`
	Warnings    []CaptureWarningResponse `json:"warnings,omitempty"`
}

func FromSignatureResult(res usecase.SignatureResult) SignatureResultResponse {
	warnings := make([]CaptureWarningResponse, len(res.Warnings))
	for i, w := range res.Warnings {
		warnings[i] = CaptureWarningResponse{Kind: string(w.Kind), Message: w.Message}
	}
	if len(warnings) == 0 {
		warnings = nil
	}

	return SignatureResultResponse{
		Success:     res.Success,
		SignatureID: res.SignatureID,
		Signature:   FromSignatureRecord(res.Record),
		Warnings:    warnings,
	}
}

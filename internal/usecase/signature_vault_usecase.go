package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"visionpos/internal/domain/entities"
	"visionpos/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrSignatureNotFound         = errors.New("signature not found")
	ErrInvalidSignatureID        = errors.New("invalid signature id")
	ErrInvalidSignatureType      = errors.New("invalid signature type")
	ErrMalformedPayload          = errors.New("malformed signature payload")
	ErrMissingSignerName         = errors.New("signer name is required")
	ErrMissingInvalidationReason = errors.New("invalidation reason is required")
)

// SupersededReason is recorded on a signature invalidated because a newer
// capture of the same type replaced it.
const SupersededReason = "superseded by new capture"

// Signature payloads are opaque encoded blobs; anything past this size is
// treated as malformed rather than stored.
const maxSignatureDataBytes = 1 << 20

type WarningKind string

const (
	WarningNameMismatch     WarningKind = "NAME_MISMATCH"
	WarningDuplicateCapture WarningKind = "DUPLICATE_CAPTURE"
)

// CaptureWarning is a non-fatal finding returned alongside a successful
// capture. Warnings are recorded on the audit event but never block.
type CaptureWarning struct {
	Kind    WarningKind `json:"kind"`
	Message string      `json:"message"`
}

type ClientMeta struct {
	IPAddress  string
	UserAgent  string
	DeviceInfo string
}

type CaptureSignatureParams struct {
	QuoteID       string
	SignatureType entities.SignatureType
	SignatureData string
	SignerName    string
	SignerRole    string
	ClientMeta    ClientMeta
	Actor         string
}

type SignatureResult struct {
	Success     bool
	SignatureID string
	Record      entities.SignatureRecord
	Warnings    []CaptureWarning
}

// ISignatureVaultUseCase owns signature records: capture (with automatic
// supersession of a still-valid predecessor of the same type),
// invalidation, signer-name verification, and ordered listing.

type ISignatureVaultUseCase interface {
	CaptureSignature(ctx context.Context, p CaptureSignatureParams) (SignatureResult, error)
	InvalidateSignature(ctx context.Context, signatureID, reason, invalidatedBy string) (bool, error)
	VerifySignerName(ctx context.Context, signatureID, verifiedBy string) (bool, error)
	GetQuoteSignatures(ctx context.Context, quoteID string) ([]entities.SignatureRecord, error)
}

type SignatureVaultUseCase struct {
	sigRepo         interfaces.ISignatureRepository
	quoteRepo       interfaces.IQuoteRepository
	clock           interfaces.Clock
	duplicateWindow time.Duration
}

var _ ISignatureVaultUseCase = (*SignatureVaultUseCase)(nil)

func NewSignatureVaultUseCase(
	sigRepo interfaces.ISignatureRepository,
	quoteRepo interfaces.IQuoteRepository,
	clock interfaces.Clock,
	duplicateWindow time.Duration,
) *SignatureVaultUseCase {
	return &SignatureVaultUseCase{
		sigRepo:         sigRepo,
		quoteRepo:       quoteRepo,
		clock:           clock,
		duplicateWindow: duplicateWindow,
	}
}

func (u *SignatureVaultUseCase) CaptureSignature(ctx context.Context, p CaptureSignatureParams) (SignatureResult, error) {
	p.QuoteID = strings.TrimSpace(p.QuoteID)
	if p.QuoteID == "" {
		return SignatureResult{}, ErrInvalidQuoteID
	}
	p.Actor = strings.TrimSpace(p.Actor)
	if p.Actor == "" {
		return SignatureResult{}, ErrInvalidActor
	}
	if _, ok := entities.ParseSignatureType(string(p.SignatureType)); !ok {
		return SignatureResult{}, fmt.Errorf("%w: %q", ErrInvalidSignatureType, p.SignatureType)
	}
	if strings.TrimSpace(p.SignatureData) == "" || len(p.SignatureData) > maxSignatureDataBytes {
		return SignatureResult{}, ErrMalformedPayload
	}
	p.SignerName = strings.TrimSpace(p.SignerName)
	if p.SignerName == "" {
		return SignatureResult{}, ErrMissingSignerName
	}

	q, err := u.quoteRepo.GetByID(ctx, p.QuoteID)
	if err != nil {
		return SignatureResult{}, err
	}
	if q.ID == "" {
		return SignatureResult{}, ErrQuoteNotFound
	}
	if q.Status != entities.QuoteStatusPresented {
		return SignatureResult{}, fmt.Errorf("%w: capture requires PRESENTED, quote is %s", ErrInvalidState, q.Status)
	}

	existing, err := u.sigRepo.ListByQuoteID(ctx, q.ID)
	if err != nil {
		return SignatureResult{}, err
	}

	now := u.clock.Now().UTC()
	warnings := u.captureWarnings(q, existing, p, now)

	rec := entities.SignatureRecord{
		ID:            uuid.NewString(),
		QuoteID:       q.ID,
		SignatureType: p.SignatureType,
		SignatureData: p.SignatureData,
		SignerName:    p.SignerName,
		SignerRole:    strings.TrimSpace(p.SignerRole),
		IPAddress:     p.ClientMeta.IPAddress,
		UserAgent:     p.ClientMeta.UserAgent,
		DeviceInfo:    p.ClientMeta.DeviceInfo,
		CapturedAt:    now,
		IsValid:       true,
	}

	expected := q.Version
	q.LastActivityAt = now
	q.UpdatedAt = now
	q.Version++

	var events []entities.AuditEvent
	superseded := supersededRecord(existing, p.SignatureType, p.Actor, now)
	if superseded != nil {
		events = append(events, entities.AuditEvent{
			ID:          uuid.NewString(),
			SubjectType: entities.AuditSubjectSignature,
			SubjectID:   superseded.ID,
			QuoteID:     q.ID,
			EventKind:   entities.AuditEventSignatureInvalidated,
			Actor:       p.Actor,
			OccurredAt:  now,
			Seq:         q.Version,
			Detail: map[string]string{
				entities.DetailSignatureType: string(superseded.SignatureType),
				entities.DetailReason:        SupersededReason,
			},
		})
	}
	events = append(events, entities.AuditEvent{
		ID:          uuid.NewString(),
		SubjectType: entities.AuditSubjectSignature,
		SubjectID:   rec.ID,
		QuoteID:     q.ID,
		EventKind:   entities.AuditEventSignatureCaptured,
		Actor:       p.Actor,
		OccurredAt:  now,
		Seq:         q.Version,
		Detail:      captureDetail(rec, warnings),
	})

	err = u.sigRepo.CommitCapture(ctx, interfaces.SignatureCapture{
		Record:               rec,
		Superseded:           superseded,
		Quote:                q,
		ExpectedQuoteVersion: expected,
		Events:               events,
	})
	if err != nil {
		return SignatureResult{}, mapVersionConflict(err)
	}

	return SignatureResult{
		Success:     true,
		SignatureID: rec.ID,
		Record:      rec,
		Warnings:    warnings,
	}, nil
}

// InvalidateSignature flips is_valid exactly once. Calling it on an
// already-invalid signature returns false without error and appends no
// audit event. A signature is never re-validated.
func (u *SignatureVaultUseCase) InvalidateSignature(ctx context.Context, signatureID, reason, invalidatedBy string) (bool, error) {
	signatureID = strings.TrimSpace(signatureID)
	if signatureID == "" {
		return false, ErrInvalidSignatureID
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return false, ErrMissingInvalidationReason
	}
	invalidatedBy = strings.TrimSpace(invalidatedBy)
	if invalidatedBy == "" {
		return false, ErrInvalidActor
	}

	rec, err := u.sigRepo.GetByID(ctx, signatureID)
	if err != nil {
		return false, err
	}
	if rec.ID == "" {
		return false, ErrSignatureNotFound
	}
	if !rec.IsValid {
		return false, nil
	}

	now := u.clock.Now().UTC()
	rec.IsValid = false
	rec.InvalidatedReason = reason
	rec.InvalidatedBy = invalidatedBy
	rec.InvalidatedAt = &now

	event := entities.AuditEvent{
		ID:          uuid.NewString(),
		SubjectType: entities.AuditSubjectSignature,
		SubjectID:   rec.ID,
		QuoteID:     rec.QuoteID,
		EventKind:   entities.AuditEventSignatureInvalidated,
		Actor:       invalidatedBy,
		OccurredAt:  now,
		Detail: map[string]string{
			entities.DetailSignatureType: string(rec.SignatureType),
			entities.DetailReason:        reason,
		},
	}

	if err := u.sigRepo.Invalidate(ctx, rec, event); err != nil {
		// A concurrent invalidation won the race; the record is already
		// invalid, which is the outcome this call wanted.
		if errors.Is(err, interfaces.ErrVersionConflict) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// VerifySignerName records the secondary human confirmation of the signer
// name. Last writer wins; verifying an invalidated signature fails.
func (u *SignatureVaultUseCase) VerifySignerName(ctx context.Context, signatureID, verifiedBy string) (bool, error) {
	signatureID = strings.TrimSpace(signatureID)
	if signatureID == "" {
		return false, ErrInvalidSignatureID
	}
	verifiedBy = strings.TrimSpace(verifiedBy)
	if verifiedBy == "" {
		return false, ErrInvalidActor
	}

	rec, err := u.sigRepo.GetByID(ctx, signatureID)
	if err != nil {
		return false, err
	}
	if rec.ID == "" {
		return false, ErrSignatureNotFound
	}
	if !rec.IsValid {
		return false, nil
	}

	now := u.clock.Now().UTC()
	rec.NameVerified = true
	rec.NameVerifiedBy = verifiedBy
	rec.NameVerifiedAt = &now

	event := entities.AuditEvent{
		ID:          uuid.NewString(),
		SubjectType: entities.AuditSubjectSignature,
		SubjectID:   rec.ID,
		QuoteID:     rec.QuoteID,
		EventKind:   entities.AuditEventSignerNameVerified,
		Actor:       verifiedBy,
		OccurredAt:  now,
		Detail: map[string]string{
			entities.DetailSignatureType: string(rec.SignatureType),
			entities.DetailVerifiedBy:    verifiedBy,
		},
	}

	if err := u.sigRepo.UpdateNameVerification(ctx, rec, event); err != nil {
		if errors.Is(err, interfaces.ErrVersionConflict) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (u *SignatureVaultUseCase) GetQuoteSignatures(ctx context.Context, quoteID string) ([]entities.SignatureRecord, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return nil, ErrInvalidQuoteID
	}

	q, err := u.quoteRepo.GetByID(ctx, quoteID)
	if err != nil {
		return nil, err
	}
	if q.ID == "" {
		return nil, ErrQuoteNotFound
	}
	return u.sigRepo.ListByQuoteID(ctx, quoteID)
}

func (u *SignatureVaultUseCase) captureWarnings(q entities.Quote, existing []entities.SignatureRecord, p CaptureSignatureParams, now time.Time) []CaptureWarning {
	var warnings []CaptureWarning

	if !strings.EqualFold(p.SignerName, q.CustomerName) {
		warnings = append(warnings, CaptureWarning{
			Kind:    WarningNameMismatch,
			Message: fmt.Sprintf("signer name %q does not match quote customer %q", p.SignerName, q.CustomerName),
		})
	}

	if u.duplicateWindow > 0 {
		for _, s := range existing {
			if s.SignatureType == p.SignatureType && now.Sub(s.CapturedAt) < u.duplicateWindow {
				warnings = append(warnings, CaptureWarning{
					Kind:    WarningDuplicateCapture,
					Message: fmt.Sprintf("a %s signature was already captured %s ago", s.SignatureType, now.Sub(s.CapturedAt).Round(time.Second)),
				})
				break
			}
		}
	}
	return warnings
}

// supersededRecord returns the post-image of the still-valid signature of
// the captured type, if one exists. At most one can be valid at a time, so
// the first match is the only match.
func supersededRecord(existing []entities.SignatureRecord, t entities.SignatureType, actor string, now time.Time) *entities.SignatureRecord {
	for i := range existing {
		if existing[i].IsValid && existing[i].SignatureType == t {
			old := existing[i]
			old.IsValid = false
			old.InvalidatedReason = SupersededReason
			old.InvalidatedBy = actor
			old.InvalidatedAt = &now
			return &old
		}
	}
	return nil
}

func captureDetail(rec entities.SignatureRecord, warnings []CaptureWarning) map[string]string {
	detail := map[string]string{
		entities.DetailSignatureType: string(rec.SignatureType),
	}
	if len(warnings) > 0 {
		kinds := make([]string, len(warnings))
		for i, w := range warnings {
			kinds[i] = string(w.Kind)
		}
		detail[entities.DetailWarnings] = strings.Join(kinds, ",")
	}
	return detail
}

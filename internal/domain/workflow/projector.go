package workflow

import "visionpos/internal/domain/entities"

// Project combines the current quote state and its signature records into
// the read-only workflow status consumed by callers. Deterministic and
// side-effect-free: safe for polling, never touches the audit ledger.
//
// Recapture while a valid signature exists is allowed (the vault
// supersedes the old record), so the can-capture gates depend only on the
// quote being PRESENTED.
func Project(q entities.Quote, sigs []entities.SignatureRecord) entities.WorkflowStatus {
	examDone := HasValidSignature(sigs, entities.SignatureTypeExam)
	materialsDone := HasValidSignature(sigs, entities.SignatureTypeMaterials)

	// Signatures become a requirement the moment the quote is handed to
	// the customer, and stay one for the rest of the lifecycle.
	required := signaturesRequired(q.Status)
	capturable := q.Status == entities.QuoteStatusPresented

	return entities.WorkflowStatus{
		QuoteStatus: q.Status,

		ExamSignatureRequired:       required,
		ExamSignatureCompleted:      examDone,
		MaterialsSignatureRequired:  required,
		MaterialsSignatureCompleted: materialsDone,

		CanCaptureExamSignature:      capturable,
		CanCaptureMaterialsSignature: capturable,
		CanTransitionToSigned:        capturable && examDone && materialsDone,

		CanResume:   q.Status == entities.QuoteStatusBuilding || q.Status == entities.QuoteStatusDraft,
		CanCancel:   CanTransition(q.Status, entities.QuoteStatusCancelled),
		CanComplete: CanTransition(q.Status, entities.QuoteStatusCompleted),
		IsTerminal:  IsTerminal(q.Status),
	}
}

func signaturesRequired(s entities.QuoteStatus) bool {
	switch s {
	case entities.QuoteStatusPresented, entities.QuoteStatusSigned, entities.QuoteStatusCompleted:
		return true
	default:
		return false
	}
}

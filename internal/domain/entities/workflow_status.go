package entities

// WorkflowStatus is the derived, read-only summary of what a quote may
// legally do next. It is produced by the workflow projector and is the one
// source of truth for gating decisions; UI helpers must consume it instead
// of re-deriving state.

type WorkflowStatus struct {
	QuoteStatus QuoteStatus `json:"quote_status"`

	ExamSignatureRequired       bool `json:"exam_signature_required"`
	ExamSignatureCompleted      bool `json:"exam_signature_completed"`
	MaterialsSignatureRequired  bool `json:"materials_signature_required"`
	MaterialsSignatureCompleted bool `json:"materials_signature_completed"`

	CanCaptureExamSignature      bool `json:"can_capture_exam_signature"`
	CanCaptureMaterialsSignature bool `json:"can_capture_materials_signature"`
	CanTransitionToSigned        bool `json:"can_transition_to_signed"`

	CanResume   bool `json:"can_resume"`
	CanCancel   bool `json:"can_cancel"`
	CanComplete bool `json:"can_complete"`
	IsTerminal  bool `json:"is_terminal"`
}

package response

import "visionpos/internal/domain/entities"

type WorkflowStatusResponse struct {
	QuoteStatus string `json:"quote_status"`

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

func FromWorkflowStatus(ws entities.WorkflowStatus) WorkflowStatusResponse {
	return WorkflowStatusResponse{
		QuoteStatus: string(ws.QuoteStatus),

		ExamSignatureRequired:       ws.ExamSignatureRequired,
		ExamSignatureCompleted:      ws.ExamSignatureCompleted,
		MaterialsSignatureRequired:  ws.MaterialsSignatureRequired,
		MaterialsSignatureCompleted: ws.MaterialsSignatureCompleted,

		CanCaptureExamSignature:      ws.CanCaptureExamSignature,
		CanCaptureMaterialsSignature: ws.CanCaptureMaterialsSignature,
		CanTransitionToSigned:        ws.CanTransitionToSigned,

		CanResume:   ws.CanResume,
		CanCancel:   ws.CanCancel,
		CanComplete: ws.CanComplete,
		IsTerminal:  ws.IsTerminal,
	}
}

package request

import "strings"

type CaptureSignatureRequest struct {
	SignatureType string `json:"signature_type" binding:"required"`
	SignatureData string `json:"signature_data" binding:"required"`
	SignerName    string `json:"signer_name" binding:"required"`
	SignerRole    string `json:"signer_role"`
	DeviceInfo    string `json:"device_info"`
}

func (r CaptureSignatureRequest) ResolveSignatureType() string {
	return strings.TrimSpace(strings.ToUpper(r.SignatureType))
}

type InvalidateSignatureRequest struct {
	Reason string `json:"reason" binding:"required"`
}

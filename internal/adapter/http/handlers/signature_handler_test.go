package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"visionpos/internal/adapter/http/handlers/mocks"
	"visionpos/internal/domain/entities"
	"visionpos/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func signatureRouter(h *SignatureHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/quotes/:id/signatures", h.CaptureSignature)
	r.GET("/v1/quotes/:id/signatures", h.GetQuoteSignatures)
	r.DELETE("/v1/signatures/:id", h.InvalidateSignature)
	r.POST("/v1/signatures/:id/verify-name", h.VerifySignerName)
	return r
}

func TestSignatureHandler_CaptureSignature(t *testing.T) {
	gin.SetMode(gin.TestMode)
	body := `{"signature_type":"exam","signature_data":"base64data","signer_name":"Maria Silva","signer_role":"patient","device_info":"ipad-pos-3"}`

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISignatureVaultUseCase(ctrl)
		r := signatureRouter(NewSignatureHandler(uc))

		w := doJSON(t, r, http.MethodPost, "/v1/quotes/q-1/signatures", "{", "emp-1")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing actor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISignatureVaultUseCase(ctrl)
		r := signatureRouter(NewSignatureHandler(uc))

		w := doJSON(t, r, http.MethodPost, "/v1/quotes/q-1/signatures", body, "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success threads path, payload and client metadata", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISignatureVaultUseCase(ctrl)
		r := signatureRouter(NewSignatureHandler(uc))

		uc.EXPECT().CaptureSignature(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, p usecase.CaptureSignatureParams) (usecase.SignatureResult, error) {
				if p.QuoteID != "q-1" || p.Actor != "emp-1" {
					t.Fatalf("unexpected params: %+v", p)
				}
				if p.SignatureType != entities.SignatureTypeExam {
					t.Fatalf("expected uppercased type, got %s", p.SignatureType)
				}
				if p.ClientMeta.DeviceInfo != "ipad-pos-3" || p.ClientMeta.UserAgent != "pos-tablet/2.1" {
					t.Fatalf("unexpected client meta: %+v", p.ClientMeta)
				}
				return usecase.SignatureResult{
					Success:     true,
					SignatureID: "s-1",
					Record:      entities.SignatureRecord{ID: "s-1", QuoteID: "q-1", SignatureType: entities.SignatureTypeExam, IsValid: true},
					Warnings:    []usecase.CaptureWarning{{Kind: usecase.WarningNameMismatch, Message: "names differ"}},
				}, nil
			},
		)

		req := doJSONRequest(http.MethodPost, "/v1/quotes/q-1/signatures", body, "emp-1")
		req.Header.Set("User-Agent", "pos-tablet/2.1")
		w := serve(r, req)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var res map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if res["success"] != true || res["signature_id"] != "s-1" {
			t.Fatalf("unexpected body: %v", res)
		}
		warnings, ok := res["warnings"].([]any)
		if !ok || len(warnings) != 1 {
			t.Fatalf("expected one warning: %v", res)
		}
		if _, hasData := res["signature"].(map[string]any)["signature_data"]; hasData {
			t.Fatal("raw signature payload must not be echoed back")
		}
	})

	t.Run("quote not presented maps to 422", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISignatureVaultUseCase(ctrl)
		r := signatureRouter(NewSignatureHandler(uc))

		uc.EXPECT().CaptureSignature(gomock.Any(), gomock.Any()).Return(usecase.SignatureResult{}, usecase.ErrInvalidState)

		w := doJSON(t, r, http.MethodPost, "/v1/quotes/q-1/signatures", body, "emp-1")
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("malformed payload maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISignatureVaultUseCase(ctrl)
		r := signatureRouter(NewSignatureHandler(uc))

		uc.EXPECT().CaptureSignature(gomock.Any(), gomock.Any()).Return(usecase.SignatureResult{}, usecase.ErrMalformedPayload)

		w := doJSON(t, r, http.MethodPost, "/v1/quotes/q-1/signatures", body, "emp-1")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("concurrent capture maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISignatureVaultUseCase(ctrl)
		r := signatureRouter(NewSignatureHandler(uc))

		uc.EXPECT().CaptureSignature(gomock.Any(), gomock.Any()).Return(usecase.SignatureResult{}, usecase.ErrConcurrentModification)

		w := doJSON(t, r, http.MethodPost, "/v1/quotes/q-1/signatures", body, "emp-1")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestSignatureHandler_GetQuoteSignatures(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("quote not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISignatureVaultUseCase(ctrl)
		r := signatureRouter(NewSignatureHandler(uc))

		uc.EXPECT().GetQuoteSignatures(gomock.Any(), "q-9").Return(nil, usecase.ErrQuoteNotFound)

		w := doJSON(t, r, http.MethodGet, "/v1/quotes/q-9/signatures", "", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("lists every record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISignatureVaultUseCase(ctrl)
		r := signatureRouter(NewSignatureHandler(uc))

		uc.EXPECT().GetQuoteSignatures(gomock.Any(), "q-1").Return([]entities.SignatureRecord{
			{ID: "s-1", SignatureType: entities.SignatureTypeExam, IsValid: false, InvalidatedReason: "superseded by new capture"},
			{ID: "s-2", SignatureType: entities.SignatureTypeExam, IsValid: true},
		}, nil)

		w := doJSON(t, r, http.MethodGet, "/v1/quotes/q-1/signatures", "", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if len(body) != 2 || body[0]["is_valid"] != false || body[1]["is_valid"] != true {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestSignatureHandler_InvalidateSignature(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing reason", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISignatureVaultUseCase(ctrl)
		r := signatureRouter(NewSignatureHandler(uc))

		w := doJSON(t, r, http.MethodDelete, "/v1/signatures/s-1", `{}`, "emp-1")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISignatureVaultUseCase(ctrl)
		r := signatureRouter(NewSignatureHandler(uc))

		uc.EXPECT().InvalidateSignature(gomock.Any(), "s-1", "wrong signer", "emp-1").Return(true, nil)

		w := doJSON(t, r, http.MethodDelete, "/v1/signatures/s-1", `{"reason":"wrong signer"}`, "emp-1")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body["invalidated"] != true {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("already invalid reports false", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISignatureVaultUseCase(ctrl)
		r := signatureRouter(NewSignatureHandler(uc))

		uc.EXPECT().InvalidateSignature(gomock.Any(), "s-1", "wrong signer", "emp-1").Return(false, nil)

		w := doJSON(t, r, http.MethodDelete, "/v1/signatures/s-1", `{"reason":"wrong signer"}`, "emp-1")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body["invalidated"] != false {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("signature not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISignatureVaultUseCase(ctrl)
		r := signatureRouter(NewSignatureHandler(uc))

		uc.EXPECT().InvalidateSignature(gomock.Any(), "s-9", "wrong signer", "emp-1").Return(false, usecase.ErrSignatureNotFound)

		w := doJSON(t, r, http.MethodDelete, "/v1/signatures/s-9", `{"reason":"wrong signer"}`, "emp-1")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestSignatureHandler_VerifySignerName(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing actor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISignatureVaultUseCase(ctrl)
		r := signatureRouter(NewSignatureHandler(uc))

		w := doJSON(t, r, http.MethodPost, "/v1/signatures/s-1/verify-name", "", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISignatureVaultUseCase(ctrl)
		r := signatureRouter(NewSignatureHandler(uc))

		uc.EXPECT().VerifySignerName(gomock.Any(), "s-1", "emp-2").Return(true, nil)

		w := doJSON(t, r, http.MethodPost, "/v1/signatures/s-1/verify-name", "", "emp-2")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body["verified"] != true {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

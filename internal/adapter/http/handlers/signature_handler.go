package handlers

import (
	"errors"
	"net/http"

	request "visionpos/internal/adapter/http/dto/request"
	response "visionpos/internal/adapter/http/dto/response"
	"visionpos/internal/domain/entities"
	"visionpos/internal/usecase"
	"visionpos/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidSignaturePayload = pkg.NewDomainErrorSimple("INVALID_SIGNATURE_INPUT", "Invalid signature payload", http.StatusBadRequest)
)

// SignatureHandler exposes the signature vault over HTTP.

type SignatureHandler struct {
	usecase usecase.ISignatureVaultUseCase
}

func NewSignatureHandler(uc usecase.ISignatureVaultUseCase) *SignatureHandler {
	return &SignatureHandler{usecase: uc}
}

func (h *SignatureHandler) CaptureSignature(c *gin.Context) {
	var payload request.CaptureSignatureRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSignaturePayload.HTTPStatus, errInvalidSignaturePayload.ToHTTPError())
		return
	}

	actor := actorFrom(c)
	if actor == "" {
		c.JSON(errMissingActor.HTTPStatus, errMissingActor.ToHTTPError())
		return
	}

	params := usecase.CaptureSignatureParams{
		QuoteID:       c.Param("id"),
		SignatureType: entities.SignatureType(payload.ResolveSignatureType()),
		SignatureData: payload.SignatureData,
		SignerName:    payload.SignerName,
		SignerRole:    payload.SignerRole,
		ClientMeta: usecase.ClientMeta{
			IPAddress:  c.ClientIP(),
			UserAgent:  c.Request.UserAgent(),
			DeviceInfo: payload.DeviceInfo,
		},
		Actor: actor,
	}

	res, err := h.usecase.CaptureSignature(c.Request.Context(), params)
	if err != nil {
		appErr := mapSignatureError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromSignatureResult(res))
}

func (h *SignatureHandler) GetQuoteSignatures(c *gin.Context) {
	records, err := h.usecase.GetQuoteSignatures(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapSignatureError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSignatureRecords(records))
}

func (h *SignatureHandler) InvalidateSignature(c *gin.Context) {
	var payload request.InvalidateSignatureRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSignaturePayload.HTTPStatus, errInvalidSignaturePayload.ToHTTPError())
		return
	}

	actor := actorFrom(c)
	if actor == "" {
		c.JSON(errMissingActor.HTTPStatus, errMissingActor.ToHTTPError())
		return
	}

	invalidated, err := h.usecase.InvalidateSignature(c.Request.Context(), c.Param("id"), payload.Reason, actor)
	if err != nil {
		appErr := mapSignatureError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gin.H{"invalidated": invalidated})
}

func (h *SignatureHandler) VerifySignerName(c *gin.Context) {
	actor := actorFrom(c)
	if actor == "" {
		c.JSON(errMissingActor.HTTPStatus, errMissingActor.ToHTTPError())
		return
	}

	verified, err := h.usecase.VerifySignerName(c.Request.Context(), c.Param("id"), actor)
	if err != nil {
		appErr := mapSignatureError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gin.H{"verified": verified})
}

func mapSignatureError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteID),
		errors.Is(err, usecase.ErrInvalidSignatureID),
		errors.Is(err, usecase.ErrInvalidActor),
		errors.Is(err, usecase.ErrInvalidSignatureType),
		errors.Is(err, usecase.ErrMissingInvalidationReason):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMalformedPayload):
		return pkg.NewDomainErrorSimple("MALFORMED_PAYLOAD", "Signature payload is empty or malformed", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMissingSignerName):
		return pkg.NewDomainErrorSimple("MISSING_SIGNER_NAME", "Signer name is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSignatureNotFound):
		return pkg.NewDomainErrorSimple("SIGNATURE_NOT_FOUND", "Signature not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidState):
		return pkg.NewDomainErrorSimple("INVALID_STATE", err.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrConcurrentModification):
		return pkg.NewDomainErrorSimple("CONCURRENT_MODIFICATION", "Signature state changed concurrently, re-read and retry if appropriate", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

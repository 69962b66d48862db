package handlers

import (
	"errors"
	"net/http"
	"strings"

	request "visionpos/internal/adapter/http/dto/request"
	response "visionpos/internal/adapter/http/dto/response"
	"visionpos/internal/domain/entities"
	"visionpos/internal/usecase"
	"visionpos/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)
	errMissingActor        = pkg.NewDomainErrorSimple("MISSING_ACTOR", "X-Actor header is required", http.StatusBadRequest)
)

// actorFrom reads the caller-supplied identity. The engine records it on
// every audit event; it never authenticates.
func actorFrom(c *gin.Context) string {
	return strings.TrimSpace(c.GetHeader("X-Actor"))
}

// QuoteHandler exposes the quote lifecycle operations over HTTP.

type QuoteHandler struct {
	usecase usecase.IQuoteLifecycleUseCase
}

func NewQuoteHandler(uc usecase.IQuoteLifecycleUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var payload request.CreateQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	actor := actorFrom(c)
	if actor == "" {
		c.JSON(errMissingActor.HTTPStatus, errMissingActor.ToHTTPError())
		return
	}

	quote, err := h.usecase.CreateQuote(c.Request.Context(), payload.CustomerName, actor)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromQuote(quote))
}

func (h *QuoteHandler) AddLineItem(c *gin.Context) {
	var payload request.AddLineItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	actor := actorFrom(c)
	if actor == "" {
		c.JSON(errMissingActor.HTTPStatus, errMissingActor.ToHTTPError())
		return
	}

	item := entities.LineItem{
		Description:    payload.Description,
		Quantity:       payload.Quantity,
		UnitPriceCents: payload.UnitPriceCents,
	}

	quote, err := h.usecase.AddLineItem(c.Request.Context(), c.Param("id"), item, actor)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

func (h *QuoteHandler) TransitionQuote(c *gin.Context) {
	var payload request.TransitionQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	actor := actorFrom(c)
	if actor == "" {
		c.JSON(errMissingActor.HTTPStatus, errMissingActor.ToHTTPError())
		return
	}

	tc := usecase.TransitionContext{
		Actor:        actor,
		CancelReason: entities.CancelReason(payload.ResolveCancelReason()),
	}

	quote, err := h.usecase.TransitionQuote(c.Request.Context(), c.Param("id"), entities.QuoteStatus(payload.ResolveTargetStatus()), tc)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

func (h *QuoteHandler) ResumeQuote(c *gin.Context) {
	actor := actorFrom(c)
	if actor == "" {
		c.JSON(errMissingActor.HTTPStatus, errMissingActor.ToHTTPError())
		return
	}

	quote, err := h.usecase.ResumeQuote(c.Request.Context(), c.Param("id"), actor)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

func (h *QuoteHandler) GetQuote(c *gin.Context) {
	quote, err := h.usecase.GetQuote(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

func (h *QuoteHandler) GetWorkflowStatus(c *gin.Context) {
	ws, err := h.usecase.GetWorkflowStatus(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWorkflowStatus(ws))
}

func (h *QuoteHandler) GetQuoteHistory(c *gin.Context) {
	events, err := h.usecase.GetQuoteHistory(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAuditEvents(events))
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteID),
		errors.Is(err, usecase.ErrInvalidActor),
		errors.Is(err, usecase.ErrInvalidCustomerName),
		errors.Is(err, usecase.ErrInvalidLineItem),
		errors.Is(err, usecase.ErrInvalidTargetStatus),
		errors.Is(err, usecase.ErrInvalidCancelReason):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", err.Error(), http.StatusConflict)
	case errors.Is(err, usecase.ErrPreconditionFailed):
		return pkg.NewDomainErrorSimple("PRECONDITION_FAILED", err.Error(), http.StatusPreconditionFailed)
	case errors.Is(err, usecase.ErrInvalidState):
		return pkg.NewDomainErrorSimple("INVALID_STATE", err.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrConcurrentModification):
		return pkg.NewDomainErrorSimple("CONCURRENT_MODIFICATION", "Quote was modified concurrently, re-read and retry if appropriate", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

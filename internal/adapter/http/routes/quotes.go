package routes

import (
	"time"

	"visionpos/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes     = "/quotes"
	PathSignatures = "/signatures"
)

func timeNowUTC() time.Time {
	return time.Now().UTC()
}

func addQuoteRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteHandler, signatureHandler *handlers.SignatureHandler) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("", quoteHandler.CreateQuote)
		quotes.GET("/:id", quoteHandler.GetQuote)
		quotes.POST("/:id/line-items", quoteHandler.AddLineItem)
		quotes.POST("/:id/transition", quoteHandler.TransitionQuote)
		quotes.POST("/:id/resume", quoteHandler.ResumeQuote)
		quotes.GET("/:id/workflow-status", quoteHandler.GetWorkflowStatus)
		quotes.GET("/:id/history", quoteHandler.GetQuoteHistory)

		quotes.POST("/:id/signatures", signatureHandler.CaptureSignature)
		quotes.GET("/:id/signatures", signatureHandler.GetQuoteSignatures)
	}

	signatures := rg.Group(PathSignatures)
	{
		signatures.DELETE("/:id", signatureHandler.InvalidateSignature)
		signatures.POST("/:id/verify-name", signatureHandler.VerifySignerName)
	}
}

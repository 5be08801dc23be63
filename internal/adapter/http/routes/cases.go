package routes

import (
	"github.com/web-source-dev/Vos-backend-sub000/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCases       = "/cases"
	PathInspections = "/inspections"
	PathQuotes      = "/quotes"
	PathSigning     = "/signing"
)

// addCaseRoutes registers the workflow surface. Case-addressed routes require
// a staff session; token-addressed routes carry their credential in the URL
// and stay public.
func addCaseRoutes(rg *gin.RouterGroup, caseHandler *handlers.CaseHandler, inspectionHandler *handlers.InspectionHandler, quoteHandler *handlers.QuoteHandler) {
	cases := rg.Group(PathCases, StaffSession())
	{
		cases.POST("", caseHandler.CreateCase)
		cases.GET("", caseHandler.ListCases)
		cases.GET("/:caseId", caseHandler.GetCase)
		cases.POST("/:caseId/inspection", caseHandler.ScheduleInspection)
		cases.POST("/:caseId/estimator", quoteHandler.AssignEstimator)
		cases.POST("/:caseId/payoff/confirm", caseHandler.ConfirmPayoff)
		cases.POST("/:caseId/complete", caseHandler.CompleteCase)
		cases.GET("/:caseId/pdf", caseHandler.GetCasePDF)

		// Admin-only maintenance surface.
		cases.PUT("/:caseId/stage", AdminSession(), caseHandler.OverrideStage)
		cases.DELETE("/:caseId", AdminSession(), caseHandler.DeleteCase)
	}

	inspections := rg.Group(PathInspections)
	{
		inspections.GET("/:token", inspectionHandler.GetByToken)
		inspections.PUT("/:token/draft", inspectionHandler.SaveDraft)
		inspections.POST("/:token/submit", inspectionHandler.Submit)
	}

	quotes := rg.Group(PathQuotes)
	{
		// Staff-session variants addressed by case id.
		quotes.GET("/case/:caseId", StaffSession(), quoteHandler.GetByCase)
		quotes.POST("/case/:caseId/submit", StaffSession(), quoteHandler.SubmitOfferByCase)
		quotes.PUT("/case/:caseId/decision", StaffSession(), quoteHandler.RecordDecisionByCase)
		quotes.PUT("/case/:caseId/paperwork", StaffSession(), quoteHandler.SavePaperworkByCase)

		// Token-addressed estimator variants.
		quotes.GET("/:token", quoteHandler.GetByToken)
		quotes.POST("/:token/submit", quoteHandler.SubmitOfferByToken)
		quotes.PUT("/:token/decision", quoteHandler.RecordDecisionByToken)
		quotes.PUT("/:token/paperwork", quoteHandler.SavePaperworkByToken)
	}

	signing := rg.Group(PathSigning)
	{
		signing.GET("/:token", quoteHandler.GetSigningSession)
	}
}

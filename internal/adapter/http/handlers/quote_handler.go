package handlers

import (
	"errors"
	"net/http"

	request "github.com/web-source-dev/Vos-backend-sub000/internal/adapter/http/dto/request"
	response "github.com/web-source-dev/Vos-backend-sub000/internal/adapter/http/dto/response"
	"github.com/web-source-dev/Vos-backend-sub000/internal/domain/entities"
	"github.com/web-source-dev/Vos-backend-sub000/internal/usecase"
	"github.com/web-source-dev/Vos-backend-sub000/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)
)

// QuoteHandler exposes the quote/decision/paperwork endpoints in both access
// modes: token-addressed routes for external estimators and case-addressed
// routes for authenticated staff.
type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// AssignEstimator creates (or reuses) the case's quote and returns it with the
// estimator access token.
func (h *QuoteHandler) AssignEstimator(c *gin.Context) {
	var payload request.AssignEstimatorRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	estimator := entities.ContactRef{
		Name:  payload.Name,
		Email: payload.Email,
		Phone: payload.Phone,
	}
	q, err := h.usecase.AssignEstimator(c.Request.Context(), c.Param("caseId"), estimator, payload.UserID)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.OK(response.FromQuote(q)))
}

func (h *QuoteHandler) GetByToken(c *gin.Context) {
	q, err := h.usecase.GetByToken(c.Request.Context(), c.Param("token"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.OK(response.FromQuote(q)))
}

func (h *QuoteHandler) GetByCase(c *gin.Context) {
	q, err := h.usecase.GetByCaseID(c.Request.Context(), c.Param("caseId"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.OK(response.FromQuote(q)))
}

func (h *QuoteHandler) SubmitOfferByToken(c *gin.Context) {
	h.submitOffer(c, usecase.QuoteRef{Token: c.Param("token")})
}

func (h *QuoteHandler) SubmitOfferByCase(c *gin.Context) {
	h.submitOffer(c, usecase.QuoteRef{CaseID: c.Param("caseId")})
}

func (h *QuoteHandler) submitOffer(c *gin.Context, ref usecase.QuoteRef) {
	var payload request.SubmitQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	q, err := h.usecase.SubmitOffer(c.Request.Context(), ref, payload.OfferAmount)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.OK(response.FromQuote(q)))
}

func (h *QuoteHandler) RecordDecisionByToken(c *gin.Context) {
	h.recordDecision(c, usecase.QuoteRef{Token: c.Param("token")})
}

func (h *QuoteHandler) RecordDecisionByCase(c *gin.Context) {
	h.recordDecision(c, usecase.QuoteRef{CaseID: c.Param("caseId")})
}

func (h *QuoteHandler) recordDecision(c *gin.Context, ref usecase.QuoteRef) {
	var payload request.DecisionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	q, err := h.usecase.RecordDecision(c.Request.Context(), ref, usecase.DecisionInput{
		Decision:     entities.OfferDecisionValue(payload.Decision),
		CounterOffer: payload.CounterOffer,
		FinalAmount:  payload.FinalAmount,
		Notes:        payload.Notes,
	})
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.OK(response.FromQuote(q)))
}

func (h *QuoteHandler) SavePaperworkByToken(c *gin.Context) {
	h.savePaperwork(c, usecase.QuoteRef{Token: c.Param("token")})
}

func (h *QuoteHandler) SavePaperworkByCase(c *gin.Context) {
	h.savePaperwork(c, usecase.QuoteRef{CaseID: c.Param("caseId")})
}

func (h *QuoteHandler) savePaperwork(c *gin.Context, ref usecase.QuoteRef) {
	var payload request.PaperworkRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	tx, err := h.usecase.SavePaperwork(c.Request.Context(), ref, usecase.PaperworkInput{
		TitleNumber:      payload.TitleNumber,
		TitleState:       payload.TitleState,
		LicensePlate:     payload.LicensePlate,
		TitleStatus:      payload.TitleStatus,
		LoanOnTitle:      payload.LoanOnTitle,
		SaleDate:         payload.SaleDate,
		SellerName:       payload.SellerName,
		PaymentType:      payload.PaymentType,
		BankName:         payload.BankName,
		LoanNumber:       payload.LoanNumber,
		PayoffAmount:     payload.PayoffAmount,
		OfferAmount:      payload.OfferAmount,
		RequestSignature: payload.RequestSignature,
	})
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.OK(tx))
}

// GetSigningSession serves the customer-facing signing page lookup.
func (h *QuoteHandler) GetSigningSession(c *gin.Context) {
	s, err := h.usecase.GetSigningSession(c.Request.Context(), c.Param("token"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.OK(response.FromSigningSession(s)))
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrQuoteDecided):
		// The message carries the recorded decision.
		return pkg.NewDomainErrorSimple("QUOTE_DECIDED", err.Error(), http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidOfferAmount), errors.Is(err, usecase.ErrInvalidDecision),
		errors.Is(err, usecase.ErrInvalidEstimator), errors.Is(err, usecase.ErrInvalidQuoteRef),
		errors.Is(err, usecase.ErrInvalidCaseID), errors.Is(err, usecase.ErrCaseMissingVehicle):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCaseNotFound):
		return pkg.NewDomainErrorSimple("CASE_NOT_FOUND", "Case not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSigningNotFound):
		return pkg.NewDomainErrorSimple("SIGNING_SESSION_NOT_FOUND", "Signing session not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

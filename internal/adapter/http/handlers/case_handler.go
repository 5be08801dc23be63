package handlers

import (
	"errors"
	"net/http"
	"strconv"

	request "github.com/web-source-dev/Vos-backend-sub000/internal/adapter/http/dto/request"
	response "github.com/web-source-dev/Vos-backend-sub000/internal/adapter/http/dto/response"
	"github.com/web-source-dev/Vos-backend-sub000/internal/domain/entities"
	"github.com/web-source-dev/Vos-backend-sub000/internal/usecase"
	"github.com/web-source-dev/Vos-backend-sub000/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidCasePayload = pkg.NewDomainErrorSimple("INVALID_CASE_INPUT", "Invalid case payload", http.StatusBadRequest)
)

// CaseHandler exposes the staff-facing case workflow endpoints.
type CaseHandler struct {
	usecase usecase.ICaseUseCase
}

func NewCaseHandler(uc usecase.ICaseUseCase) *CaseHandler {
	return &CaseHandler{usecase: uc}
}

// CreateCase is the intake action: customer + vehicle + case in one request.
func (h *CaseHandler) CreateCase(c *gin.Context) {
	var payload request.CreateCaseRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCasePayload.HTTPStatus, errInvalidCasePayload.ToHTTPError())
		return
	}

	customer := usecase.CustomerInput{
		FirstName: payload.Customer.FirstName,
		LastName:  payload.Customer.LastName,
		Email:     payload.Customer.Email,
		Phone:     payload.Customer.Phone,
		Address:   payload.Customer.Address,
		City:      payload.Customer.City,
		State:     payload.Customer.State,
		Zip:       payload.Customer.Zip,
	}
	vehicle := usecase.VehicleInput{
		VIN:      payload.Vehicle.VIN,
		Year:     payload.Vehicle.Year,
		Make:     payload.Vehicle.Make,
		Model:    payload.Vehicle.Model,
		Trim:     payload.Vehicle.Trim,
		Color:    payload.Vehicle.Color,
		Odometer: payload.Vehicle.Odometer,
	}

	graph, err := h.usecase.CreateCase(c.Request.Context(), customer, vehicle)
	if err != nil {
		appErr := mapCaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.OK(response.FromCaseGraph(graph)))
}

func (h *CaseHandler) ListCases(c *gin.Context) {
	cases, err := h.usecase.ListCases(c.Request.Context())
	if err != nil {
		appErr := mapCaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.OK(response.FromCases(cases)))
}

func (h *CaseHandler) GetCase(c *gin.Context) {
	graph, err := h.usecase.GetCase(c.Request.Context(), c.Param("caseId"))
	if err != nil {
		appErr := mapCaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.OK(response.FromCaseGraph(graph)))
}

// ScheduleInspection drives the 2→3 transition and returns the inspection
// with its access token.
func (h *CaseHandler) ScheduleInspection(c *gin.Context) {
	var payload request.ScheduleInspectionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCasePayload.HTTPStatus, errInvalidCasePayload.ToHTTPError())
		return
	}

	insp, err := h.usecase.ScheduleInspection(c.Request.Context(), c.Param("caseId"), usecase.ScheduleInspectionInput{
		Inspector: entities.ContactRef{
			Name:  payload.InspectorName,
			Email: payload.InspectorEmail,
			Phone: payload.InspectorPhone,
		},
		InspectorUserID: payload.InspectorUserID,
		ScheduledDate:   payload.ScheduledDate,
		ScheduledTime:   payload.ScheduledTime,
	})
	if err != nil {
		appErr := mapCaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.OK(response.FromInspection(insp)))
}

// OverrideStage is the administrative stage override; the payload is applied
// verbatim, with no transition-table validation.
func (h *CaseHandler) OverrideStage(c *gin.Context) {
	var payload request.StageOverrideRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCasePayload.HTTPStatus, errInvalidCasePayload.ToHTTPError())
		return
	}

	statuses, err := stageStatusesFromPayload(payload.StageStatuses)
	if err != nil {
		c.JSON(errInvalidCasePayload.HTTPStatus, errInvalidCasePayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.AdvanceStage(c.Request.Context(), c.Param("caseId"), payload.CurrentStage, statuses, entities.CaseStatus(payload.Status))
	if err != nil {
		appErr := mapCaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.OK(response.FromCase(updated)))
}

func (h *CaseHandler) ConfirmPayoff(c *gin.Context) {
	tx, err := h.usecase.ConfirmPayoff(c.Request.Context(), c.Param("caseId"))
	if err != nil {
		appErr := mapCaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.OK(tx))
}

func (h *CaseHandler) CompleteCase(c *gin.Context) {
	updated, err := h.usecase.CompleteCase(c.Request.Context(), c.Param("caseId"))
	if err != nil {
		appErr := mapCaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.OK(response.FromCase(updated)))
}

func (h *CaseHandler) GetCasePDF(c *gin.Context) {
	url, err := h.usecase.GetCasePDF(c.Request.Context(), c.Param("caseId"))
	if err != nil {
		appErr := mapCaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.OK(response.CasePDFResponse{URL: url}))
}

func (h *CaseHandler) DeleteCase(c *gin.Context) {
	if err := h.usecase.DeleteCase(c.Request.Context(), c.Param("caseId")); err != nil {
		appErr := mapCaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.OK(nil))
}

// stageStatusesFromPayload converts the "1".."7" wire keys back to stage
// numbers. A nil payload means "keep the current map".
func stageStatusesFromPayload(in map[string]string) (map[int]entities.StageStatus, error) {
	if in == nil {
		return nil, nil
	}
	out := make(map[int]entities.StageStatus, len(in))
	for key, status := range in {
		stage, err := strconv.Atoi(key)
		if err != nil {
			return nil, err
		}
		out[stage] = entities.StageStatus(status)
	}
	return out, nil
}

func mapCaseError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCaseID), errors.Is(err, usecase.ErrInvalidIntake), errors.Is(err, usecase.ErrInvalidStage):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCaseMissingCustomer), errors.Is(err, usecase.ErrCaseMissingVehicle):
		return pkg.NewDomainErrorSimple("CASE_INCOMPLETE", "Case is missing intake records", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCaseNotFound):
		return pkg.NewDomainErrorSimple("CASE_NOT_FOUND", "Case not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrTransactionNotFound):
		return pkg.NewDomainErrorSimple("TRANSACTION_NOT_FOUND", "Transaction not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPDFUnavailable):
		return pkg.NewDomainErrorSimple("PDF_NOT_AVAILABLE", "Case PDF not available", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

package handlers

import (
	"errors"
	"net/http"

	request "github.com/web-source-dev/Vos-backend-sub000/internal/adapter/http/dto/request"
	response "github.com/web-source-dev/Vos-backend-sub000/internal/adapter/http/dto/response"
	"github.com/web-source-dev/Vos-backend-sub000/internal/usecase"
	"github.com/web-source-dev/Vos-backend-sub000/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidInspectionPayload = pkg.NewDomainErrorSimple("INVALID_INSPECTION_INPUT", "Invalid inspection payload", http.StatusBadRequest)
)

// InspectionHandler exposes the token-gated inspector endpoints. The URL token
// is the only credential; no session middleware applies here.
type InspectionHandler struct {
	usecase usecase.IInspectionUseCase
}

func NewInspectionHandler(uc usecase.IInspectionUseCase) *InspectionHandler {
	return &InspectionHandler{usecase: uc}
}

func (h *InspectionHandler) GetByToken(c *gin.Context) {
	insp, err := h.usecase.GetByToken(c.Request.Context(), c.Param("token"))
	if err != nil {
		appErr := mapInspectionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.OK(response.FromInspection(insp)))
}

func (h *InspectionHandler) SaveDraft(c *gin.Context) {
	var payload request.InspectionSectionsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInspectionPayload.HTTPStatus, errInvalidInspectionPayload.ToHTTPError())
		return
	}

	insp, err := h.usecase.SaveDraft(c.Request.Context(), c.Param("token"), payload.ToSections())
	if err != nil {
		appErr := mapInspectionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.OK(response.FromInspection(insp)))
}

// Submit finalizes the inspection and advances the case to quote preparation.
func (h *InspectionHandler) Submit(c *gin.Context) {
	var payload request.InspectionSectionsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInspectionPayload.HTTPStatus, errInvalidInspectionPayload.ToHTTPError())
		return
	}

	insp, err := h.usecase.Submit(c.Request.Context(), c.Param("token"), payload.ToSections())
	if err != nil {
		appErr := mapInspectionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.OK(response.FromInspection(insp)))
}

func mapInspectionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSections):
		return pkg.NewDomainErrorSimple("INVALID_SECTIONS", "Invalid inspection sections", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInspectionCompleted):
		return pkg.NewDomainErrorSimple("INSPECTION_COMPLETED", "Inspection has already been submitted", http.StatusConflict)
	case errors.Is(err, usecase.ErrInspectionNotFound):
		return pkg.NewDomainErrorSimple("INSPECTION_NOT_FOUND", "Inspection not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCaseNotFound):
		return pkg.NewDomainErrorSimple("CASE_NOT_FOUND", "Case not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

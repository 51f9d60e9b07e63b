package handlers

import (
	"errors"
	"net/http"
	"strings"

	"caza_backend/internal/adapter/http/dto/response"
	"caza_backend/internal/usecase"
	"caza_backend/pkg"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// InspectionHandler backs the field inspectors' lookups.
type InspectionHandler struct {
	usecase usecase.IInspectionUseCase
}

func NewInspectionHandler(uc usecase.IInspectionUseCase) *InspectionHandler {
	return &InspectionHandler{usecase: uc}
}

// SearchInscriptions godoc
// @Summary Find inscriptions by CUIT
// @Tags inspection
// @Produce json
// @Param cuit query string true "CUIT, punctuation ignored"
// @Success 200 {object} response.InspectionResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 422 {object} pkg.HTTPError
// @Router /inspection/inscriptions [get]
func (h *InspectionHandler) SearchInscriptions(c *gin.Context) {
	result, err := h.usecase.SearchInscriptionsByCUIT(c.Request.Context(), c.Query("cuit"))
	if err != nil {
		log.Printf("[inspection][handler] inscription search failed err=%v", err)
		writeError(c, mapInspectionError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromInspection(result))
}

// SearchPermits godoc
// @Summary Find permits by id or DNI
// @Tags inspection
// @Produce json
// @Param id query string false "Permit id"
// @Param dni query string false "Holder DNI"
// @Success 200 {object} response.InspectionResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /inspection/permits [get]
func (h *InspectionHandler) SearchPermits(c *gin.Context) {
	result, err := h.usecase.SearchPermits(c.Request.Context(), c.Query("id"), c.Query("dni"))
	if err != nil {
		log.Printf("[inspection][handler] permit search failed err=%v", err)
		writeError(c, mapInspectionError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromInspection(result))
}

func mapInspectionError(err error) *pkg.AppError {
	var missing *usecase.MissingColumnError
	switch {
	case errors.Is(err, usecase.ErrMissingSearchTerm):
		return pkg.NewDomainErrorSimple("MISSING_SEARCH_TERM", "At least one search term is required", http.StatusBadRequest)
	case errors.As(err, &missing):
		return pkg.NewDomainError("COLUMN_NOT_FOUND", "Searched column is not in the sheet", err, http.StatusUnprocessableEntity).
			WithDetails("available columns: " + strings.Join(missing.Available, ", "))
	}
	if appErr, ok := mapUpstreamError(err); ok {
		return appErr
	}
	return internalError(err)
}

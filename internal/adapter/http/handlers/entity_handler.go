package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"caza_backend/internal/adapter/http/dto/request"
	"caza_backend/internal/adapter/http/dto/response"
	"caza_backend/internal/domain/entities"
	"caza_backend/internal/usecase"
	"caza_backend/internal/usecase/interfaces"
	"caza_backend/pkg"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// EntityHandler serves the staff read model and the payment-status column update.
type EntityHandler struct {
	usecase usecase.IEntityListingUseCase
}

func NewEntityHandler(uc usecase.IEntityListingUseCase) *EntityHandler {
	return &EntityHandler{usecase: uc}
}

// ListEntities godoc
// @Summary Paginated entities enriched with payment status
// @Tags entities
// @Produce json
// @Param kind path string true "inscription | permit"
// @Param page query int false "1-based page"
// @Param limit query int false "page size, clamped to the configured maximum"
// @Success 200 {object} response.EntityPageResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 502 {object} pkg.HTTPError
// @Router /entities/{kind} [get]
func (h *EntityHandler) ListEntities(c *gin.Context) {
	kind, ok := parseKind(c)
	if !ok {
		return
	}
	page, err := optionalInt(c.Query("page"))
	if err != nil {
		writeError(c, errInvalidRequest.WithDetails("page must be an integer"))
		return
	}
	limit, err := optionalInt(firstNonEmpty(c.Query("limit"), c.Query("page_size")))
	if err != nil {
		writeError(c, errInvalidRequest.WithDetails("limit must be an integer"))
		return
	}

	result, err := h.usecase.ListEntities(c.Request.Context(), kind, page, limit)
	if err != nil {
		log.Printf("[entity][handler] list failed kind=%s page=%d limit=%d err=%v", kind, page, limit, err)
		writeError(c, mapEntityError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEntityPage(result))
}

// GetEntityStatus godoc
// @Summary Derived payment status of one entity
// @Tags entities
// @Produce json
// @Param kind path string true "inscription | permit"
// @Param entity_id path string true "Entity id"
// @Success 200 {object} response.EntityStatusResponse
// @Router /entities/{kind}/{entity_id}/status [get]
func (h *EntityHandler) GetEntityStatus(c *gin.Context) {
	kind, ok := parseKind(c)
	if !ok {
		return
	}
	entityID := c.Param("entity_id")

	status, err := h.usecase.GetEntityStatus(c.Request.Context(), kind, entityID)
	if err != nil {
		writeError(c, mapEntityError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDerivedStatus(kind, entityID, status))
}

// ListPayments godoc
// @Summary Ledger rows of one entity, newest first
// @Tags entities
// @Produce json
// @Param kind path string true "inscription | permit"
// @Param entity_id path string true "Entity id"
// @Success 200 {array} response.PaymentRecordResponse
// @Router /entities/{kind}/{entity_id}/payments [get]
func (h *EntityHandler) ListPayments(c *gin.Context) {
	kind, ok := parseKind(c)
	if !ok {
		return
	}
	records, err := h.usecase.ListPayments(c.Request.Context(), kind, c.Param("entity_id"))
	if err != nil {
		writeError(c, mapEntityError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentRecords(records))
}

// UpdatePaymentStatus godoc
// @Summary Overwrite the payment-status display column of a record
// @Tags entities
// @Accept json
// @Produce json
// @Param kind path string true "inscription | permit"
// @Param entity_id path string true "Entity id"
// @Param body body request.PaymentStatusUpdateRequest true "New display value"
// @Success 204
// @Failure 404 {object} pkg.HTTPError
// @Router /entities/{kind}/{entity_id}/payment-status [patch]
func (h *EntityHandler) UpdatePaymentStatus(c *gin.Context) {
	kind, ok := parseKind(c)
	if !ok {
		return
	}
	var payload request.PaymentStatusUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest.WithDetails("status is required"))
		return
	}
	entityID := c.Param("entity_id")

	if err := h.usecase.UpdatePaymentStatusDisplay(c.Request.Context(), kind, entityID, payload.Status); err != nil {
		log.Printf("[entity][handler] status update failed kind=%s entity_id=%s err=%v", kind, entityID, err)
		writeError(c, mapEntityError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func optionalInt(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}

func mapEntityError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, entities.ErrUnknownEntityKind):
		return errUnknownKind
	case errors.Is(err, usecase.ErrEntityNotFound):
		return pkg.NewDomainErrorSimple("ENTITY_NOT_FOUND", "Entity not found", http.StatusNotFound)
	case errors.Is(err, interfaces.ErrColumnNotFound):
		return pkg.NewDomainError("COLUMN_NOT_FOUND", "Column not found in record store", err, http.StatusNotFound).WithDetails(err.Error())
	case errors.Is(err, usecase.ErrInvalidPaymentStatus):
		return pkg.NewDomainErrorSimple("INVALID_PAYMENT_STATUS", "Invalid payment status", http.StatusBadRequest)
	}
	if appErr, ok := mapUpstreamError(err); ok {
		return appErr
	}
	return internalError(err)
}

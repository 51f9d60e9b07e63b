package handlers

import (
	"errors"
	"io"
	"net/http"

	"caza_backend/internal/adapter/http/dto/request"
	"caza_backend/internal/adapter/http/dto/response"
	"caza_backend/internal/domain/entities"
	"caza_backend/internal/usecase"
	"caza_backend/internal/usecase/interfaces"
	"caza_backend/pkg"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

const (
	credentialSentMessage = "Credencial enviada."
	documentSentMessage   = "Documento enviado."
)

// DispatchHandler sends outbound emails for one entity: payment links,
// credentials and stored documents.
type DispatchHandler struct {
	usecase usecase.INotificationUseCase
}

func NewDispatchHandler(uc usecase.INotificationUseCase) *DispatchHandler {
	return &DispatchHandler{usecase: uc}
}

// SendPaymentLink godoc
// @Summary Create a checkout link and email it
// @Tags dispatch
// @Accept json
// @Produce json
// @Param kind path string true "inscription | permit"
// @Param entity_id path string true "Entity id"
// @Param body body request.DispatchRequest false "Overrides for recipient, category and display name"
// @Success 200 {object} response.PaymentLinkResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 404 {object} pkg.HTTPError
// @Failure 422 {object} pkg.HTTPError
// @Failure 502 {object} pkg.HTTPError
// @Router /entities/{kind}/{entity_id}/payment-link [post]
func (h *DispatchHandler) SendPaymentLink(c *gin.Context) {
	req, ok := h.bind(c)
	if !ok {
		return
	}
	result, err := h.usecase.SendPaymentLink(c.Request.Context(), req)
	if err != nil {
		log.Printf("[dispatch][handler] payment link failed kind=%s entity_id=%s err=%v", req.Kind, req.EntityID, err)
		writeError(c, mapDispatchError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentLink(result))
}

// SendCredential godoc
// @Summary Email the hunting credential of a paid entity
// @Tags dispatch
// @Accept json
// @Produce json
// @Param kind path string true "inscription | permit"
// @Param entity_id path string true "Entity id"
// @Param body body request.DispatchRequest false "Overrides"
// @Success 200 {object} response.DispatchResponse
// @Failure 409 {object} pkg.HTTPError
// @Router /entities/{kind}/{entity_id}/credential [post]
func (h *DispatchHandler) SendCredential(c *gin.Context) {
	req, ok := h.bind(c)
	if !ok {
		return
	}
	result, err := h.usecase.SendCredential(c.Request.Context(), req)
	if err != nil {
		log.Printf("[dispatch][handler] credential failed kind=%s entity_id=%s err=%v", req.Kind, req.EntityID, err)
		writeError(c, mapDispatchError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDispatch(result, credentialSentMessage))
}

// SendDocument godoc
// @Summary Email the stored PDF of an entity
// @Tags dispatch
// @Accept json
// @Produce json
// @Param kind path string true "inscription | permit"
// @Param entity_id path string true "Entity id"
// @Param body body request.DispatchRequest false "Overrides"
// @Success 200 {object} response.DispatchResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /entities/{kind}/{entity_id}/document [post]
func (h *DispatchHandler) SendDocument(c *gin.Context) {
	req, ok := h.bind(c)
	if !ok {
		return
	}
	result, err := h.usecase.SendDocument(c.Request.Context(), req)
	if err != nil {
		log.Printf("[dispatch][handler] document failed kind=%s entity_id=%s err=%v", req.Kind, req.EntityID, err)
		writeError(c, mapDispatchError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDispatch(result, documentSentMessage))
}

// bind reads the optional body. An empty body means every value comes from the record store.
func (h *DispatchHandler) bind(c *gin.Context) (usecase.DispatchRequest, bool) {
	kind, ok := parseKind(c)
	if !ok {
		return usecase.DispatchRequest{}, false
	}
	var payload request.DispatchRequest
	if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
		writeError(c, errInvalidRequest.WithDetails(err.Error()))
		return usecase.DispatchRequest{}, false
	}
	return usecase.DispatchRequest{
		Kind:        kind,
		EntityID:    c.Param("entity_id"),
		Email:       payload.Email,
		Category:    payload.Category,
		DisplayName: payload.ResolveDisplayName(),
	}, true
}

func mapDispatchError(err error) *pkg.AppError {
	appErr := dispatchAppError(err)
	var de *usecase.DispatchError
	if errors.As(err, &de) && appErr.Details == "" {
		return appErr.WithDetails("step: " + string(de.Step))
	}
	return appErr
}

func dispatchAppError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, entities.ErrUnknownEntityKind):
		return errUnknownKind
	case errors.Is(err, usecase.ErrEntityNotFound):
		return pkg.NewDomainErrorSimple("ENTITY_NOT_FOUND", "Entity not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDocumentNotFound):
		return pkg.NewDomainErrorSimple("DOCUMENT_NOT_FOUND", "No document stored for this entity", http.StatusNotFound)
	case errors.Is(err, usecase.ErrMissingRecipient):
		return pkg.NewDomainErrorSimple("MISSING_RECIPIENT", "Recipient email is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMissingCategory):
		return pkg.NewDomainErrorSimple("MISSING_CATEGORY", "Category is required", http.StatusBadRequest)
	case errors.Is(err, interfaces.ErrPriceNotFound):
		return pkg.NewDomainError("PRICE_NOT_FOUND", "No price for this category", err, http.StatusUnprocessableEntity)
	case errors.Is(err, interfaces.ErrInvalidPrice):
		return pkg.NewDomainError("INVALID_PRICE", "Price could not be parsed", err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrEntityNotPaid):
		return pkg.NewDomainErrorSimple("ENTITY_NOT_PAID", "Entity has no approved payment", http.StatusConflict)
	case errors.Is(err, usecase.ErrSenderNotConfigured),
		errors.Is(err, usecase.ErrPriceCatalogMissing),
		errors.Is(err, usecase.ErrBlobStoreNotConfigured),
		errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainError("NOT_CONFIGURED", "A required service is not configured", err, http.StatusServiceUnavailable)
	}
	if appErr, ok := mapUpstreamError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrPaymentLinkFailed):
		return pkg.NewDomainError("PAYMENT_LINK_FAILED", "Payment link could not be created", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrEmailDeliveryFailed):
		return pkg.NewDomainError("EMAIL_DELIVERY_FAILED", "Email could not be sent", err, http.StatusBadGateway)
	default:
		return internalError(err)
	}
}

package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"caza_backend/internal/domain/entities"
	"caza_backend/internal/usecase"
	"caza_backend/internal/usecase/interfaces"
	"caza_backend/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errUpstreamTimeout     = pkg.NewDomainErrorSimple("UPSTREAM_TIMEOUT", "An external service timed out", http.StatusGatewayTimeout)
	errUpstreamUnavailable = pkg.NewDomainErrorSimple("UPSTREAM_UNAVAILABLE", "An external service is unavailable", http.StatusBadGateway)
	errUnknownKind         = pkg.NewDomainErrorSimple("UNKNOWN_ENTITY_KIND", "Unknown entity kind", http.StatusNotFound)
	errInvalidRequest      = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
)

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func internalError(err error) *pkg.AppError {
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}

// mapUpstreamError covers the failures every area shares: timeouts and
// unreachable external stores.
func mapUpstreamError(err error) (*pkg.AppError, bool) {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return errUpstreamTimeout, true
	case errors.Is(err, usecase.ErrRecordStoreUnavailable),
		errors.Is(err, usecase.ErrLedgerUnavailable),
		errors.Is(err, usecase.ErrBlobStoreUnavailable),
		errors.Is(err, interfaces.ErrPaymentGatewayUnavailable):
		return errUpstreamUnavailable, true
	}
	return nil, false
}

func parseKind(c *gin.Context) (entities.EntityKind, bool) {
	kind, err := entities.ParseEntityKind(c.Param("kind"))
	if err != nil {
		writeError(c, errUnknownKind.WithDetails(c.Param("kind")))
		return "", false
	}
	return kind, true
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"caza_backend/internal/adapter/http/handlers"
	"caza_backend/internal/adapter/http/handlers/mocks"
	"caza_backend/internal/domain/entities"
	"caza_backend/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type routerMocks struct {
	reconciliation *mocks.MockIReconciliationUseCase
	listing        *mocks.MockIEntityListingUseCase
}

func newTestRouter(t *testing.T) (*gin.Engine, routerMocks) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	m := routerMocks{
		reconciliation: mocks.NewMockIReconciliationUseCase(ctrl),
		listing:        mocks.NewMockIEntityListingUseCase(ctrl),
	}
	h := Handlers{
		Payments:   handlers.NewPaymentHandler(m.reconciliation),
		Entities:   handlers.NewEntityHandler(m.listing),
		Dispatch:   handlers.NewDispatchHandler(mocks.NewMockINotificationUseCase(ctrl)),
		Inspection: handlers.NewInspectionHandler(mocks.NewMockIInspectionUseCase(ctrl)),
	}
	reg := prometheus.NewRegistry()
	reg.MustRegister(prometheus.NewCounter(prometheus.CounterOpts{Name: "caza_test_total", Help: "test"}))
	return NewRouter(h, reg, []string{"http://localhost:3000/"}), m
}

func do(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRouter_Ping(t *testing.T) {
	r, _ := newTestRouter(t)
	w := do(r, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "pong")
}

func TestRouter_Metrics(t *testing.T) {
	r, _ := newTestRouter(t)
	w := do(r, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "caza_test_total")
}

func TestRouter_CORS(t *testing.T) {
	r, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/v1/entities/permit", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := do(r, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodOptions, "/v1/entities/permit", nil)
	req.Header.Set("Origin", "https://evil.example")
	w = do(r, req)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_EntityRoutes(t *testing.T) {
	r, m := newTestRouter(t)
	m.listing.EXPECT().GetEntityStatus(gomock.Any(), entities.EntityKindPermit, "15").
		Return(entities.DerivedStatus{Label: entities.DerivedStatusNoID}, nil)

	w := do(r, httptest.NewRequest(http.MethodGet, "/v1/entities/permisos/15/status", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_LegacyRoutes(t *testing.T) {
	r, m := newTestRouter(t)
	m.listing.EXPECT().ListEntities(gomock.Any(), entities.EntityKindInscription, 1, 10).
		Return(usecase.EntityPage{Page: 1, Limit: 10}, nil)
	m.reconciliation.EXPECT().IngestNotification(gomock.Any(), "payment", "42").Return(usecase.IngestStored)

	w := do(r, httptest.NewRequest(http.MethodGet, "/api/inscripciones?page=1&limit=10", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	req := httptest.NewRequest(http.MethodPost, "/api/mercadopago-webhook", strings.NewReader(`{"type":"payment","data":{"id":"42"}}`))
	req.Header.Set("Content-Type", "application/json")
	w = do(r, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

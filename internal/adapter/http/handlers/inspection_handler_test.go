package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"caza_backend/internal/adapter/http/handlers/mocks"
	"caza_backend/internal/domain/entities"
	"caza_backend/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newInspectionRouter(t *testing.T) (*gin.Engine, *mocks.MockIInspectionUseCase) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIInspectionUseCase(ctrl)
	h := NewInspectionHandler(uc)
	r := gin.New()
	r.GET("/v1/inspection/inscriptions", h.SearchInscriptions)
	r.GET("/v1/inspection/permits", h.SearchPermits)
	return r, uc
}

func TestInspectionHandler_SearchInscriptions(t *testing.T) {
	r, uc := newInspectionRouter(t)
	uc.EXPECT().SearchInscriptionsByCUIT(gomock.Any(), "20-12345678-9").Return(usecase.InspectionResult{
		Found: true, Total: 1,
		Results: []usecase.InspectionMatch{{EntityID: "INS-1", Fields: entities.Record{"cuit": "20123456789"}, PaymentStatus: "Paid", PaymentID: "p1"}},
	}, nil)

	w := serve(r, http.MethodGet, "/v1/inspection/inscriptions?cuit=20-12345678-9", nil)

	expectStatus(t, w, http.StatusOK)
	body := decode(t, w)
	assert.Equal(t, true, body["found"])
	assert.EqualValues(t, 1, body["total"])
}

func TestInspectionHandler_SearchPermits(t *testing.T) {
	t.Run("no matches", func(t *testing.T) {
		r, uc := newInspectionRouter(t)
		uc.EXPECT().SearchPermits(gomock.Any(), "", "30111222").Return(usecase.InspectionResult{Results: []usecase.InspectionMatch{}}, nil)

		w := serve(r, http.MethodGet, "/v1/inspection/permits?dni=30111222", nil)

		expectStatus(t, w, http.StatusOK)
		assert.Equal(t, false, decode(t, w)["found"])
	})

	t.Run("no search term", func(t *testing.T) {
		r, uc := newInspectionRouter(t)
		uc.EXPECT().SearchPermits(gomock.Any(), "", "").Return(usecase.InspectionResult{}, usecase.ErrMissingSearchTerm)

		w := serve(r, http.MethodGet, "/v1/inspection/permits", nil)
		expectStatus(t, w, http.StatusBadRequest)
	})

	t.Run("missing column", func(t *testing.T) {
		r, uc := newInspectionRouter(t)
		uc.EXPECT().SearchPermits(gomock.Any(), "", "1").Return(usecase.InspectionResult{},
			&usecase.MissingColumnError{Column: "DNI", Available: []string{"ID", "Nombre"}})

		w := serve(r, http.MethodGet, "/v1/inspection/permits?dni=1", nil)

		expectStatus(t, w, http.StatusUnprocessableEntity)
		assert.Equal(t, "available columns: ID, Nombre", decode(t, w)["details"])
	})

	t.Run("store down", func(t *testing.T) {
		r, uc := newInspectionRouter(t)
		uc.EXPECT().SearchPermits(gomock.Any(), "7", "").Return(usecase.InspectionResult{},
			fmt.Errorf("%w: 500", usecase.ErrRecordStoreUnavailable))

		w := serve(r, http.MethodGet, "/v1/inspection/permits?id=7", nil)
		expectStatus(t, w, http.StatusBadGateway)
	})
}

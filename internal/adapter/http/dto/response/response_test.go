package response

import (
	"testing"
	"time"

	"caza_backend/internal/domain/entities"
	"caza_backend/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFromEntityPage(t *testing.T) {
	paidAt := time.Date(2026, 4, 2, 10, 0, 0, 0, time.UTC)
	page := usecase.EntityPage{
		Data: []usecase.EnrichedEntity{
			{
				Kind: entities.EntityKindPermit, EntityID: "15",
				Fields:        entities.Record{"ID": "15", "nombre": "Juan"},
				PaymentStatus: entities.DerivedStatus{Label: "Paid", PaymentID: "999", PaidAt: &paidAt},
				DocumentLink:  "https://drive/f1",
				SentActions:   []entities.ActionKind{entities.ActionPaymentLink},
			},
			{Kind: entities.EntityKindPermit, EntityID: "16", Fields: entities.Record{"ID": "16"}, PaymentStatus: entities.DerivedStatus{Label: "Pending"}},
		},
		TotalRecords: 12, Page: 2, Limit: 2, TotalPages: 6,
	}

	res := FromEntityPage(page)
	assert.Equal(t, 12, res.TotalRecords)
	assert.Equal(t, 6, res.TotalPages)
	assert.Len(t, res.Data, 2)

	first := res.Data[0]
	assert.Equal(t, "Juan", first["nombre"])
	assert.Equal(t, "Paid", first["payment_status"])
	assert.Equal(t, "999", first["payment_id"])
	assert.Equal(t, "2026-04-02T10:00:00Z", first["payment_date"])
	assert.Equal(t, []string{"payment_link"}, first["sent_actions"])

	second := res.Data[1]
	assert.Nil(t, second["pdf_link"])
	_, hasPaymentID := second["payment_id"]
	assert.False(t, hasPaymentID)
	assert.Equal(t, []string{}, second["sent_actions"])
}

func TestFromPaymentRecord(t *testing.T) {
	res := FromPaymentRecord(entities.PaymentRecord{
		PaymentID: "1", EntityID: "INS-1", Kind: entities.EntityKindInscription,
		Status: "approved", Amount: decimal.RequireFromString("15000.5"),
	})
	assert.Equal(t, "15000.50", res.Amount)
	assert.Equal(t, "inscription", res.Kind)
}

func TestFromInspection(t *testing.T) {
	res := FromInspection(usecase.InspectionResult{
		Found: true, Total: 1,
		Results: []usecase.InspectionMatch{{EntityID: "INS-1", Fields: entities.Record{"cuit": "20-1"}, PaymentStatus: "Pending"}},
	})
	assert.True(t, res.Found)
	assert.Equal(t, "20-1", res.Results[0]["cuit"])
	assert.Equal(t, "Pending", res.Results[0]["payment_status"])

	empty := FromInspection(usecase.InspectionResult{})
	assert.NotNil(t, empty.Results)
}

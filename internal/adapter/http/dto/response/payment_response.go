package response

import "caza_backend/internal/domain/entities"

const (
	BackfillStored        = "stored"
	BackfillAlreadyExists = "already_exists"
)

type WebhookResponse struct {
	Status  string `json:"status"`
	Outcome string `json:"outcome"`
}

type BackfillResponse struct {
	Status  string                `json:"status"`
	Payment PaymentRecordResponse `json:"payment"`
}

func FromBackfill(status string, p entities.PaymentRecord) BackfillResponse {
	return BackfillResponse{Status: status, Payment: FromPaymentRecord(p)}
}

package response

import (
	"time"

	"caza_backend/internal/domain/entities"
	"caza_backend/internal/usecase"
)

// EntityPageResponse is the paginated staff listing.
type EntityPageResponse struct {
	Data         []map[string]interface{} `json:"data"`
	TotalRecords int                      `json:"total_records"`
	Page         int                      `json:"page"`
	Limit        int                      `json:"limit"`
	TotalPages   int                      `json:"total_pages"`
}

// FromEntityPage flattens each row: the record-store columns plus the
// enrichment keys (payment_status, payment_id, payment_date, pdf_link, sent_actions).
func FromEntityPage(p usecase.EntityPage) EntityPageResponse {
	data := make([]map[string]interface{}, 0, len(p.Data))
	for _, e := range p.Data {
		data = append(data, FromEnrichedEntity(e))
	}
	return EntityPageResponse{
		Data:         data,
		TotalRecords: p.TotalRecords,
		Page:         p.Page,
		Limit:        p.Limit,
		TotalPages:   p.TotalPages,
	}
}

func FromEnrichedEntity(e usecase.EnrichedEntity) map[string]interface{} {
	row := make(map[string]interface{}, len(e.Fields)+6)
	for k, v := range e.Fields {
		row[k] = v
	}
	row["entity_id"] = e.EntityID
	row["payment_status"] = e.PaymentStatus.Label
	if e.PaymentStatus.PaymentID != "" {
		row["payment_id"] = e.PaymentStatus.PaymentID
	}
	if e.PaymentStatus.PaidAt != nil {
		row["payment_date"] = e.PaymentStatus.PaidAt.UTC().Format(time.RFC3339)
	}
	if e.DocumentLink != "" {
		row["pdf_link"] = e.DocumentLink
	} else {
		row["pdf_link"] = nil
	}
	actions := make([]string, 0, len(e.SentActions))
	for _, a := range e.SentActions {
		actions = append(actions, string(a))
	}
	row["sent_actions"] = actions
	return row
}

type EntityStatusResponse struct {
	Kind          string     `json:"kind"`
	EntityID      string     `json:"entity_id"`
	PaymentStatus string     `json:"payment_status"`
	PaymentID     string     `json:"payment_id,omitempty"`
	PaymentDate   *time.Time `json:"payment_date,omitempty"`
}

func FromDerivedStatus(kind entities.EntityKind, entityID string, s entities.DerivedStatus) EntityStatusResponse {
	return EntityStatusResponse{
		Kind:          string(kind),
		EntityID:      entityID,
		PaymentStatus: s.Label,
		PaymentID:     s.PaymentID,
		PaymentDate:   s.PaidAt,
	}
}

type PaymentRecordResponse struct {
	PaymentID    string    `json:"payment_id"`
	EntityID     string    `json:"entity_id"`
	Kind         string    `json:"kind"`
	Status       string    `json:"status"`
	StatusDetail string    `json:"status_detail"`
	Amount       string    `json:"amount"`
	PayerEmail   string    `json:"payer_email,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func FromPaymentRecord(p entities.PaymentRecord) PaymentRecordResponse {
	return PaymentRecordResponse{
		PaymentID:    p.PaymentID,
		EntityID:     p.EntityID,
		Kind:         string(p.Kind),
		Status:       p.Status,
		StatusDetail: p.StatusDetail,
		Amount:       p.Amount.StringFixed(2),
		PayerEmail:   p.PayerEmail,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func FromPaymentRecords(records []entities.PaymentRecord) []PaymentRecordResponse {
	out := make([]PaymentRecordResponse, 0, len(records))
	for _, r := range records {
		out = append(out, FromPaymentRecord(r))
	}
	return out
}

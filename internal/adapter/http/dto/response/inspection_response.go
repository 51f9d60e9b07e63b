package response

import (
	"time"

	"caza_backend/internal/usecase"
)

type InspectionResponse struct {
	Found   bool                     `json:"found"`
	Total   int                      `json:"total"`
	Results []map[string]interface{} `json:"results"`
}

func FromInspection(r usecase.InspectionResult) InspectionResponse {
	results := make([]map[string]interface{}, 0, len(r.Results))
	for _, m := range r.Results {
		row := make(map[string]interface{}, len(m.Fields)+4)
		for k, v := range m.Fields {
			row[k] = v
		}
		row["entity_id"] = m.EntityID
		row["payment_status"] = m.PaymentStatus
		if m.PaymentID != "" {
			row["payment_id"] = m.PaymentID
		}
		if m.PaymentDate != nil {
			row["payment_date"] = m.PaymentDate.UTC().Format(time.RFC3339)
		}
		results = append(results, row)
	}
	return InspectionResponse{Found: r.Found, Total: r.Total, Results: results}
}

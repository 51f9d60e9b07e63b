package request

import "strings"

type PaymentStatusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
}

// DispatchRequest is the body of the payment-link, credential and document routes.
// Every field is optional; blanks are filled from the record store.
type DispatchRequest struct {
	Email       string `json:"email"`
	Category    string `json:"category"`
	DisplayName string `json:"display_name"`
	// NombreEstablecimiento is the field name the staff frontend still sends.
	NombreEstablecimiento string `json:"nombre_establecimiento"`
}

func (r DispatchRequest) ResolveDisplayName() string {
	if v := strings.TrimSpace(r.DisplayName); v != "" {
		return v
	}
	return strings.TrimSpace(r.NombreEstablecimiento)
}

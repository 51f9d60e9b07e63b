package response

import "caza_backend/internal/usecase"

type PaymentLinkResponse struct {
	Status       string `json:"status"`
	Message      string `json:"message"`
	EntityID     string `json:"entity_id"`
	Recipient    string `json:"recipient"`
	CheckoutURL  string `json:"checkout_url"`
	PreferenceID string `json:"preference_id"`
	Amount       string `json:"amount"`
}

func FromPaymentLink(r usecase.PaymentLinkResult) PaymentLinkResponse {
	return PaymentLinkResponse{
		Status:       "success",
		Message:      "Email con enlace de pago enviado.",
		EntityID:     r.EntityID,
		Recipient:    r.Recipient,
		CheckoutURL:  r.CheckoutURL,
		PreferenceID: r.PreferenceID,
		Amount:       r.Amount.StringFixed(2),
	}
}

type DispatchResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	EntityID  string `json:"entity_id"`
	Action    string `json:"action"`
	Recipient string `json:"recipient"`
}

func FromDispatch(r usecase.DispatchResult, message string) DispatchResponse {
	return DispatchResponse{
		Status:    "success",
		Message:   message,
		EntityID:  r.EntityID,
		Action:    string(r.Action),
		Recipient: r.Recipient,
	}
}

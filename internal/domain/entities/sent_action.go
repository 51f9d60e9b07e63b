package entities

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var ErrUnknownActionKind = errors.New("unknown action kind")

// ActionKind names an outbound artifact dispatched for an entity.
type ActionKind string

const (
	ActionPaymentLink ActionKind = "payment_link"
	ActionCredential  ActionKind = "credential"
	ActionDocument    ActionKind = "document"
)

func ParseActionKind(raw string) (ActionKind, error) {
	switch ActionKind(strings.ToLower(strings.TrimSpace(raw))) {
	case ActionPaymentLink:
		return ActionPaymentLink, nil
	case ActionCredential:
		return ActionCredential, nil
	case ActionDocument:
		return ActionDocument, nil
	}
	return "", ErrUnknownActionKind
}

// SentAction is an append-only log entry marking that an action was dispatched.
// It answers "has X been sent" and is never used as payment truth.
type SentAction struct {
	ID             string           `json:"id"`
	EntityID       string           `json:"entity_id"`
	Kind           EntityKind       `json:"kind"`
	Action         ActionKind       `json:"action"`
	RecipientEmail string           `json:"recipient_email,omitempty"`
	Amount         *decimal.Decimal `json:"amount,omitempty"`
	SentAt         time.Time        `json:"sent_at"`
}

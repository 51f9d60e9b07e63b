package request

import (
	"bytes"
	"encoding/json"
	"strings"
)

// NotificationID accepts the provider's ids both as JSON strings and as numbers.
type NotificationID string

func (n *NotificationID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*n = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*n = NotificationID(strings.TrimSpace(s))
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(b, &num); err != nil {
		// objects, arrays and booleans carry no usable id
		*n = ""
		return nil
	}
	*n = NotificationID(num.String())
	return nil
}

// WebhookNotification covers both provider shapes:
// {"topic":"payment","id":123} and {"type":"payment","data":{"id":"123"}}.
type WebhookNotification struct {
	Topic string         `json:"topic"`
	Type  string         `json:"type"`
	ID    NotificationID `json:"id"`
	Data  struct {
		ID NotificationID `json:"id"`
	} `json:"data"`
}

func (w WebhookNotification) ResolveTopic() string {
	if t := strings.TrimSpace(w.Topic); t != "" {
		return t
	}
	return strings.TrimSpace(w.Type)
}

func (w WebhookNotification) ResolvePaymentID() string {
	if id := strings.TrimSpace(string(w.Data.ID)); id != "" {
		return id
	}
	return strings.TrimSpace(string(w.ID))
}

// ParseWebhookBody decodes a notification body. Anything unparsable yields an
// empty notification.
func ParseWebhookBody(raw []byte) WebhookNotification {
	var n WebhookNotification
	if len(bytes.TrimSpace(raw)) == 0 {
		return n
	}
	if err := json.Unmarshal(raw, &n); err != nil {
		return WebhookNotification{}
	}
	return n
}

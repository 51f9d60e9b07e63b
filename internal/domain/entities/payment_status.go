package entities

import (
	"sort"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

const (
	DerivedStatusPaid    = "Paid"
	DerivedStatusPending = "Pending"
	DerivedStatusNoID    = "No ID"
)

// DerivedStatus is computed on read from ledger rows; it is never stored.
type DerivedStatus struct {
	Label string `json:"payment_status"`
	// PaymentID and PaidAt are set only when Label is Paid.
	PaymentID string     `json:"payment_id,omitempty"`
	PaidAt    *time.Time `json:"payment_date,omitempty"`
}

func (s DerivedStatus) IsPaid() bool {
	return s.Label == DerivedStatusPaid
}

// DeriveStatus folds the ledger rows of one entity into its display status:
//   - Paid when any row is approved (most recent approved row supplies id and date)
//   - otherwise the capitalized status of the most recent row
//   - Pending when there are no rows
//
// The input slice is not modified.
func DeriveStatus(records []PaymentRecord) DerivedStatus {
	if len(records) == 0 {
		return DerivedStatus{Label: DerivedStatusPending}
	}

	sorted := SortNewestFirst(records)
	for _, r := range sorted {
		if strings.EqualFold(strings.TrimSpace(r.Status), ProviderStatusApproved) {
			paidAt := r.CreatedAt
			return DerivedStatus{Label: DerivedStatusPaid, PaymentID: r.PaymentID, PaidAt: &paidAt}
		}
	}

	label := Capitalize(sorted[0].Status)
	if label == "" {
		label = DerivedStatusPending
	}
	return DerivedStatus{Label: label}
}

// SortNewestFirst returns a copy ordered by CreatedAt desc, ties broken by payment id desc.
func SortNewestFirst(records []PaymentRecord) []PaymentRecord {
	out := make([]PaymentRecord, len(records))
	copy(out, records)
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].PaymentID > out[j].PaymentID
	})
	return out
}

// Capitalize upper-cases the first rune and lower-cases the rest ("in_process" -> "In_process").
func Capitalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}

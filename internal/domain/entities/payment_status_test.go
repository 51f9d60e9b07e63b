package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDeriveStatus(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("no records is pending", func(t *testing.T) {
		assert.Equal(t, DerivedStatus{Label: DerivedStatusPending}, DeriveStatus(nil))
	})

	t.Run("approved wins regardless of order", func(t *testing.T) {
		records := []PaymentRecord{
			{PaymentID: "1", Status: "rejected", CreatedAt: base.Add(3 * time.Hour)},
			{PaymentID: "2", Status: "approved", CreatedAt: base},
			{PaymentID: "3", Status: "pending", CreatedAt: base.Add(time.Hour)},
		}
		for i := 0; i < len(records); i++ {
			rotated := append(append([]PaymentRecord{}, records[i:]...), records[:i]...)
			got := DeriveStatus(rotated)
			assert.Equal(t, DerivedStatusPaid, got.Label)
			assert.Equal(t, "2", got.PaymentID)
			if assert.NotNil(t, got.PaidAt) {
				assert.True(t, got.PaidAt.Equal(base))
			}
		}
	})

	t.Run("most recent approved supplies id and date", func(t *testing.T) {
		got := DeriveStatus([]PaymentRecord{
			{PaymentID: "10", Status: "approved", CreatedAt: base},
			{PaymentID: "11", Status: "APPROVED", CreatedAt: base.Add(time.Minute)},
		})
		assert.Equal(t, "11", got.PaymentID)
	})

	t.Run("latest status passes through capitalized", func(t *testing.T) {
		got := DeriveStatus([]PaymentRecord{
			{PaymentID: "1", Status: "pending", CreatedAt: base},
			{PaymentID: "2", Status: "refunded", CreatedAt: base.Add(time.Hour)},
		})
		assert.Equal(t, DerivedStatus{Label: "Refunded"}, got)
	})

	t.Run("pure", func(t *testing.T) {
		records := []PaymentRecord{
			{PaymentID: "b", Status: "in_process", CreatedAt: base},
			{PaymentID: "a", Status: "rejected", CreatedAt: base},
		}
		first := DeriveStatus(records)
		second := DeriveStatus(records)
		assert.Equal(t, first, second)
		assert.Equal(t, "In_process", first.Label, "ties break on payment id")
		assert.Equal(t, "b", records[0].PaymentID, "input is not reordered")
	})
}

func TestCapitalize(t *testing.T) {
	cases := map[string]string{
		"":             "",
		"approved":     "Approved",
		"CHARGED_BACK": "Charged_back",
		" in_process ": "In_process",
		"ñandú":        "Ñandú",
	}
	for in, want := range cases {
		assert.Equal(t, want, Capitalize(in), in)
	}
}

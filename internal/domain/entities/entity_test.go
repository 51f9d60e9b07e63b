package entities

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseEntityKind(t *testing.T) {
	for _, raw := range []string{"inscription", "Inscripciones", " registration "} {
		k, err := ParseEntityKind(raw)
		assert.NoError(t, err)
		assert.Equal(t, EntityKindInscription, k)
	}
	k, err := ParseEntityKind("permisos")
	assert.NoError(t, err)
	assert.Equal(t, EntityKindPermit, k)

	_, err = ParseEntityKind("licencia")
	assert.ErrorIs(t, err, ErrUnknownEntityKind)
}

func TestRecord(t *testing.T) {
	var nilRecord Record
	assert.Equal(t, "", nilRecord.Get("x"))

	r := Record{"CUIT": " 20-1 ", "numero_inscripcion": "INS-1"}
	assert.Equal(t, "INS-1", r.Get("numero_inscripcion"))
	assert.Equal(t, "", r.Get("missing"))

	v, ok := r.Lookup("cuit")
	assert.True(t, ok)
	assert.Equal(t, "20-1", v)

	clone := r.Clone()
	clone["extra"] = "1"
	_, present := r["extra"]
	assert.False(t, present)
}

func TestNormalizeID(t *testing.T) {
	cases := map[string]string{
		"12.0":   "12",
		" 7 ":    "7",
		"nan":    "",
		"":       "",
		"12.5":   "12.5",
		"PER-1.": "PER-1.",
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizeID(in), in)
	}
}

func TestKindSchema_EntityID(t *testing.T) {
	s := DefaultKindSchemas("inscrip", "permisos")[EntityKindPermit]
	assert.Equal(t, "15", s.EntityID(Record{"id": "15.0"}))
	assert.Equal(t, "", s.EntityID(Record{"other": "x"}))
}

func TestProviderPayment_ResolveCreatedAt(t *testing.T) {
	now := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	p := ProviderPayment{DateCreated: "2026-04-30T10:00:00.000-04:00"}
	got := p.ResolveCreatedAt(now)
	assert.True(t, got.Equal(time.Date(2026, 4, 30, 14, 0, 0, 0, time.UTC)))

	p = ProviderPayment{DateCreated: "2026-04-30T10:00:00"}
	got = p.ResolveCreatedAt(now)
	assert.Equal(t, time.UTC, got.Location())
	assert.Equal(t, 10, got.Hour())

	assert.True(t, ProviderPayment{}.ResolveCreatedAt(now).Equal(now))
	assert.True(t, ProviderPayment{DateCreated: "yesterday"}.ResolveCreatedAt(now).Equal(now))
}

func TestProviderPayment_ToRecord(t *testing.T) {
	now := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	p := ProviderPayment{
		ID: "999", ExternalReference: "INS-1", Status: "approved", StatusDetail: "accredited",
		Amount: decimal.RequireFromString("15000.50"), PayerEmail: "a@b.com",
	}
	r := p.ToRecord(EntityKindInscription, "INS-1", now)
	assert.Equal(t, "999", r.PaymentID)
	assert.Equal(t, "INS-1", r.EntityID)
	assert.Equal(t, EntityKindInscription, r.Kind)
	assert.True(t, r.Amount.Equal(decimal.RequireFromString("15000.5")))
	assert.True(t, r.CreatedAt.Equal(now))
}

package entities

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReferenceClassifier(t *testing.T) {
	c, err := NewReferenceClassifier(map[string]string{
		"INS-":  "inscription",
		"PER-":  "permit",
		"PERX-": "inscription",
	})
	require.NoError(t, err)

	cases := []struct {
		ref  string
		kind EntityKind
		id   string
	}{
		{"INS-1", EntityKindInscription, "INS-1"},
		{" ins-22 ", EntityKindInscription, "ins-22"},
		{"PER-5", EntityKindPermit, "PER-5"},
		{"PERX-9", EntityKindInscription, "PERX-9"},
	}
	for _, tc := range cases {
		kind, id, err := c.Classify(tc.ref)
		require.NoError(t, err, tc.ref)
		assert.Equal(t, tc.kind, kind, tc.ref)
		assert.Equal(t, tc.id, id, tc.ref)
	}

	for _, ref := range []string{"", "superman", "12345", "XINS-1"} {
		_, _, err := c.Classify(ref)
		assert.True(t, errors.Is(err, ErrUnclassifiedReference), ref)
	}

	prefix, ok := c.PrefixFor(EntityKindPermit)
	assert.True(t, ok)
	assert.Equal(t, "PER-", prefix)
}

func TestNewReferenceClassifier_Invalid(t *testing.T) {
	for _, m := range []map[string]string{
		nil,
		{"": "permit"},
		{"X-": "licencia"},
	} {
		_, err := NewReferenceClassifier(m)
		assert.ErrorIs(t, err, ErrInvalidPrefixMapping)
	}
}

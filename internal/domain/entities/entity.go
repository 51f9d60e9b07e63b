package entities

import (
	"errors"
	"strconv"
	"strings"
)

var ErrUnknownEntityKind = errors.New("unknown entity kind")

// EntityKind distinguishes the two kinds of record managed by the program.
type EntityKind string

const (
	EntityKindInscription EntityKind = "inscription"
	EntityKindPermit      EntityKind = "permit"
)

var AllEntityKinds = []EntityKind{EntityKindInscription, EntityKindPermit}

// ParseEntityKind accepts the canonical names plus the route aliases used by the staff UI.
func ParseEntityKind(raw string) (EntityKind, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "inscription", "inscriptions", "inscripcion", "inscripciones", "registration":
		return EntityKindInscription, nil
	case "permit", "permits", "permiso", "permisos":
		return EntityKindPermit, nil
	}
	return "", ErrUnknownEntityKind
}

// Record is one record-store row keyed by header name. Column presence varies
// between sheets and revisions, so every read goes through Get.
type Record map[string]string

// Get returns the trimmed value for field, or "" when the column is absent.
func (r Record) Get(field string) string {
	if r == nil {
		return ""
	}
	return strings.TrimSpace(r[field])
}

// Lookup finds a field by case-insensitive header name.
func (r Record) Lookup(field string) (string, bool) {
	if v, ok := r[field]; ok {
		return strings.TrimSpace(v), true
	}
	for k, v := range r {
		if strings.EqualFold(strings.TrimSpace(k), field) {
			return strings.TrimSpace(v), true
		}
	}
	return "", false
}

// Clone returns a shallow copy safe to enrich without touching cached rows.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// NormalizeID renders spreadsheet ids the way staff typed them: "12.0" becomes "12".
func NormalizeID(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" || strings.EqualFold(s, "nan") {
		return ""
	}
	if strings.Contains(s, ".") {
		if f, err := strconv.ParseFloat(s, 64); err == nil && f == float64(int64(f)) {
			return strconv.FormatInt(int64(f), 10)
		}
	}
	return s
}

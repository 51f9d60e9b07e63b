package entities

// KindSchema describes where a kind lives in the record store and which
// columns carry the fields the back office needs.
type KindSchema struct {
	Kind           EntityKind
	Collection     string
	IDColumn       string
	EmailColumn    string
	CategoryColumn string
	NameColumn     string
	StatusColumn   string
}

// DefaultKindSchemas returns the column layout of the season spreadsheet.
func DefaultKindSchemas(inscriptionSheet, permitSheet string) map[EntityKind]KindSchema {
	return map[EntityKind]KindSchema{
		EntityKindInscription: {
			Kind:           EntityKindInscription,
			Collection:     inscriptionSheet,
			IDColumn:       "numero_inscripcion",
			EmailColumn:    "email",
			CategoryColumn: "tipo_establecimiento",
			NameColumn:     "nombre_establecimiento",
			StatusColumn:   "Estado de Pago",
		},
		EntityKindPermit: {
			Kind:           EntityKindPermit,
			Collection:     permitSheet,
			IDColumn:       "ID",
			EmailColumn:    "email",
			CategoryColumn: "tipo_permiso",
			NameColumn:     "nombre",
			StatusColumn:   "Estado de Pago",
		},
	}
}

// EntityID returns the normalized business key of row.
func (s KindSchema) EntityID(row Record) string {
	if v, ok := row.Lookup(s.IDColumn); ok {
		return NormalizeID(v)
	}
	return ""
}

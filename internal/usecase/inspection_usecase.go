package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"caza_backend/internal/domain/entities"
	"caza_backend/internal/usecase/interfaces"

	log "github.com/sirupsen/logrus"
)

var ErrMissingSearchTerm = errors.New("at least one search term is required")

// MissingColumnError is returned when a searched column is not in the collection.
type MissingColumnError struct {
	Column    string
	Available []string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("column %q not found", e.Column)
}

func (e *MissingColumnError) Unwrap() error { return interfaces.ErrColumnNotFound }

type InspectionMatch struct {
	EntityID      string
	Fields        entities.Record
	PaymentStatus string
	PaymentID     string
	PaymentDate   *time.Time
}

type InspectionResult struct {
	Found   bool
	Total   int
	Results []InspectionMatch
}

// IInspectionUseCase backs the field inspectors' lookups.
type IInspectionUseCase interface {
	SearchInscriptionsByCUIT(ctx context.Context, cuit string) (InspectionResult, error)
	SearchPermits(ctx context.Context, id, dni string) (InspectionResult, error)
}

type InspectionUseCase struct {
	records    interfaces.IRecordStore
	ledger     interfaces.IPaymentLedgerRepository
	catalog    KindCatalog
	classifier *entities.ReferenceClassifier
	timeout    time.Duration
}

var _ IInspectionUseCase = (*InspectionUseCase)(nil)

func NewInspectionUseCase(records interfaces.IRecordStore, ledger interfaces.IPaymentLedgerRepository, catalog KindCatalog, classifier *entities.ReferenceClassifier, timeout time.Duration) *InspectionUseCase {
	return &InspectionUseCase{records: records, ledger: ledger, catalog: catalog, classifier: classifier, timeout: timeout}
}

func (u *InspectionUseCase) SearchInscriptionsByCUIT(ctx context.Context, cuit string) (InspectionResult, error) {
	want := normalizeDigits(cuit, "-", " ")
	if want == "" {
		return InspectionResult{}, ErrMissingSearchTerm
	}
	schema, rows, err := u.read(ctx, entities.EntityKindInscription)
	if err != nil {
		return InspectionResult{}, err
	}

	column, ok := findColumn(rows, func(h string) bool { return strings.EqualFold(h, "cuit") })
	if !ok {
		return InspectionResult{}, &MissingColumnError{Column: "cuit", Available: columnsOf(rows)}
	}

	var matched []entities.Record
	for _, row := range rows {
		if strings.Contains(normalizeDigits(row[column], "-", " "), want) {
			matched = append(matched, row)
		}
	}
	log.Printf("[inspection][cuit] search matches=%d", len(matched))
	return u.enrich(ctx, schema, matched)
}

// SearchPermits matches the id column and/or any column whose header contains
// "dni". Both terms are OR-ed.
func (u *InspectionUseCase) SearchPermits(ctx context.Context, id, dni string) (InspectionResult, error) {
	wantID := entities.NormalizeID(id)
	wantDNI := normalizeDigits(dni, ".", " ")
	if wantID == "" && wantDNI == "" {
		return InspectionResult{}, ErrMissingSearchTerm
	}
	schema, rows, err := u.read(ctx, entities.EntityKindPermit)
	if err != nil {
		return InspectionResult{}, err
	}

	var dniColumns []string
	if wantDNI != "" {
		for _, c := range columnsOf(rows) {
			if strings.Contains(strings.ToLower(c), "dni") {
				dniColumns = append(dniColumns, c)
			}
		}
	}

	var matched []entities.Record
	for _, row := range rows {
		hit := wantID != "" && strings.EqualFold(schema.EntityID(row), wantID)
		for _, c := range dniColumns {
			if hit {
				break
			}
			hit = normalizeDigits(row[c], ".", " ") == wantDNI
		}
		if hit {
			matched = append(matched, row)
		}
	}
	log.Printf("[inspection][permit] search id=%q dni_columns=%d matches=%d", wantID, len(dniColumns), len(matched))
	return u.enrich(ctx, schema, matched)
}

func (u *InspectionUseCase) read(ctx context.Context, kind entities.EntityKind) (entities.KindSchema, []entities.Record, error) {
	schema, err := u.catalog.Schema(kind)
	if err != nil {
		return schema, nil, err
	}
	callCtx, cancel := external(ctx, u.timeout)
	defer cancel()
	rows, err := u.records.ReadRows(callCtx, u.catalog.SourceID, schema.Collection)
	if err != nil {
		return schema, nil, fmt.Errorf("%w: %w", ErrRecordStoreUnavailable, err)
	}
	return schema, rows, nil
}

func (u *InspectionUseCase) enrich(ctx context.Context, schema entities.KindSchema, rows []entities.Record) (InspectionResult, error) {
	refs := make([]string, 0, len(rows))
	for _, row := range rows {
		if id := schema.EntityID(row); id != "" {
			refs = append(refs, ledgerReference(u.classifier, schema.Kind, id))
		}
	}
	payments := map[string][]entities.PaymentRecord{}
	if len(refs) > 0 {
		callCtx, cancel := external(ctx, u.timeout)
		var err error
		payments, err = u.ledger.ListByEntityIDs(callCtx, schema.Kind, refs)
		cancel()
		if err != nil {
			return InspectionResult{}, fmt.Errorf("%w: %w", ErrLedgerUnavailable, err)
		}
	}

	out := InspectionResult{Results: make([]InspectionMatch, 0, len(rows))}
	for _, row := range rows {
		m := InspectionMatch{EntityID: schema.EntityID(row), Fields: row.Clone()}
		if m.EntityID == "" {
			m.PaymentStatus = entities.DerivedStatusNoID
		} else {
			status := entities.DeriveStatus(payments[ledgerReference(u.classifier, schema.Kind, m.EntityID)])
			m.PaymentStatus = status.Label
			m.PaymentID = status.PaymentID
			m.PaymentDate = status.PaidAt
		}
		out.Results = append(out.Results, m)
	}
	out.Total = len(out.Results)
	out.Found = out.Total > 0
	return out, nil
}

func findColumn(rows []entities.Record, match func(string) bool) (string, bool) {
	for _, c := range columnsOf(rows) {
		if match(strings.TrimSpace(c)) {
			return c, true
		}
	}
	return "", false
}

// columnsOf returns the sorted union of headers present in rows.
func columnsOf(rows []entities.Record) []string {
	set := map[string]struct{}{}
	for _, row := range rows {
		for k := range row {
			set[k] = struct{}{}
		}
	}
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func normalizeDigits(raw string, strip ...string) string {
	s := strings.TrimSpace(raw)
	for _, c := range strip {
		s = strings.ReplaceAll(s, c, "")
	}
	if strings.EqualFold(s, "nan") {
		return ""
	}
	return entities.NormalizeID(s)
}

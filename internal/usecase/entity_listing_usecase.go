package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"caza_backend/internal/domain/entities"
	"caza_backend/internal/usecase/interfaces"

	log "github.com/sirupsen/logrus"
)

var ErrInvalidPaymentStatus = errors.New("invalid payment status")

// EnrichedEntity is one record-store row joined with its ledger-derived status,
// its document link and the actions already sent for it.
type EnrichedEntity struct {
	Kind          entities.EntityKind
	EntityID      string
	Fields        entities.Record
	PaymentStatus entities.DerivedStatus
	DocumentLink  string
	SentActions   []entities.ActionKind
}

type EntityPage struct {
	Data         []EnrichedEntity
	TotalRecords int
	Page         int
	Limit        int
	TotalPages   int
}

type IEntityListingUseCase interface {
	ListEntities(ctx context.Context, kind entities.EntityKind, page, limit int) (EntityPage, error)
	GetEntityStatus(ctx context.Context, kind entities.EntityKind, entityID string) (entities.DerivedStatus, error)
	ListPayments(ctx context.Context, kind entities.EntityKind, entityID string) ([]entities.PaymentRecord, error)
	UpdatePaymentStatusDisplay(ctx context.Context, kind entities.EntityKind, entityID, status string) error
}

type EntityListingUseCase struct {
	records      interfaces.IRecordStore
	ledger       interfaces.IPaymentLedgerRepository
	sentActions  interfaces.ISentActionRepository
	blobs        interfaces.IBlobStore
	catalog      KindCatalog
	classifier   *entities.ReferenceClassifier
	defaultLimit int
	maxLimit     int
	timeout      time.Duration
}

var _ IEntityListingUseCase = (*EntityListingUseCase)(nil)

type EntityListingOptions struct {
	DefaultLimit int
	MaxLimit     int
	Timeout      time.Duration
}

func NewEntityListingUseCase(
	records interfaces.IRecordStore,
	ledger interfaces.IPaymentLedgerRepository,
	sentActions interfaces.ISentActionRepository,
	blobs interfaces.IBlobStore,
	catalog KindCatalog,
	classifier *entities.ReferenceClassifier,
	opts EntityListingOptions,
) *EntityListingUseCase {
	if opts.MaxLimit < 1 {
		opts.MaxLimit = 100
	}
	if opts.DefaultLimit < 1 || opts.DefaultLimit > opts.MaxLimit {
		opts.DefaultLimit = min(10, opts.MaxLimit)
	}
	return &EntityListingUseCase{
		records:      records,
		ledger:       ledger,
		sentActions:  sentActions,
		blobs:        blobs,
		catalog:      catalog,
		classifier:   classifier,
		defaultLimit: opts.DefaultLimit,
		maxLimit:     opts.MaxLimit,
		timeout:      opts.Timeout,
	}
}

// ListEntities reads the whole collection, orders it newest first, slices the
// requested page and enriches only the rows of that page.
func (u *EntityListingUseCase) ListEntities(ctx context.Context, kind entities.EntityKind, page, limit int) (EntityPage, error) {
	schema, err := u.catalog.Schema(kind)
	if err != nil {
		return EntityPage{}, err
	}
	page, limit = u.clamp(page, limit)

	readCtx, cancel := external(ctx, u.timeout)
	rows, err := u.records.ReadRows(readCtx, u.catalog.SourceID, schema.Collection)
	cancel()
	if err != nil {
		log.Printf("[entity][list] record store read failed kind=%s err=%v", kind, err)
		return EntityPage{}, fmt.Errorf("%w: %w", ErrRecordStoreUnavailable, err)
	}

	total := len(rows)
	result := EntityPage{
		TotalRecords: total,
		Page:         page,
		Limit:        limit,
		TotalPages:   (total + limit - 1) / limit,
		Data:         []EnrichedEntity{},
	}

	// compare pages before multiplying so a huge page cannot overflow the offset
	if page-1 >= result.TotalPages {
		return result, nil
	}
	start := (page - 1) * limit
	end := min(start+limit, total)

	// newest first: the record store appends at the bottom
	pageRows := make([]entities.Record, 0, end-start)
	for i := start; i < end; i++ {
		pageRows = append(pageRows, rows[total-1-i])
	}

	enriched, err := u.enrich(ctx, schema, pageRows)
	if err != nil {
		return EntityPage{}, err
	}
	result.Data = enriched
	return result, nil
}

func (u *EntityListingUseCase) enrich(ctx context.Context, schema entities.KindSchema, rows []entities.Record) ([]EnrichedEntity, error) {
	ids := make([]string, 0, len(rows))
	refs := make([]string, 0, len(rows))
	for _, row := range rows {
		if id := schema.EntityID(row); id != "" {
			ids = append(ids, id)
			refs = append(refs, ledgerReference(u.classifier, schema.Kind, id))
		}
	}

	payments := map[string][]entities.PaymentRecord{}
	if len(refs) > 0 {
		ledgerCtx, cancel := external(ctx, u.timeout)
		var err error
		payments, err = u.ledger.ListByEntityIDs(ledgerCtx, schema.Kind, refs)
		cancel()
		if err != nil {
			log.Printf("[entity][list] ledger batch read failed kind=%s ids=%d err=%v", schema.Kind, len(refs), err)
			return nil, fmt.Errorf("%w: %w", ErrLedgerUnavailable, err)
		}
	}

	sent := map[string][]entities.ActionKind{}
	if u.sentActions != nil && len(ids) > 0 {
		sentCtx, cancel := external(ctx, u.timeout)
		var err error
		sent, err = u.sentActions.ActionsFor(sentCtx, schema.Kind, ids)
		cancel()
		if err != nil {
			log.Printf("[entity][list] sent-action read failed kind=%s err=%v", schema.Kind, err)
			return nil, fmt.Errorf("%w: %w", ErrLedgerUnavailable, err)
		}
	}

	links, err := u.documentLinks(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]EnrichedEntity, 0, len(rows))
	for _, row := range rows {
		id := schema.EntityID(row)
		item := EnrichedEntity{
			Kind:        schema.Kind,
			EntityID:    id,
			Fields:      row.Clone(),
			SentActions: []entities.ActionKind{},
		}
		if id == "" {
			item.PaymentStatus = entities.DerivedStatus{Label: entities.DerivedStatusNoID}
			out = append(out, item)
			continue
		}
		item.PaymentStatus = entities.DeriveStatus(payments[ledgerReference(u.classifier, schema.Kind, id)])
		item.DocumentLink = links[strings.ToLower(id+".pdf")]
		if actions := sent[id]; len(actions) > 0 {
			item.SentActions = actions
		}
		out = append(out, item)
	}
	return out, nil
}

// documentLinks indexes the blob directory by lower-cased file name.
func (u *EntityListingUseCase) documentLinks(ctx context.Context) (map[string]string, error) {
	links := map[string]string{}
	if u.blobs == nil {
		return links, nil
	}
	blobCtx, cancel := external(ctx, u.timeout)
	defer cancel()

	files, err := u.blobs.ListPDFs(blobCtx)
	if err != nil {
		log.Printf("[entity][list] blob listing failed err=%v", err)
		return nil, fmt.Errorf("%w: %w", ErrBlobStoreUnavailable, err)
	}
	for _, f := range files {
		links[strings.ToLower(strings.TrimSpace(f.Name))] = f.Link
	}
	return links, nil
}

func (u *EntityListingUseCase) GetEntityStatus(ctx context.Context, kind entities.EntityKind, entityID string) (entities.DerivedStatus, error) {
	payments, err := u.ListPayments(ctx, kind, entityID)
	if err != nil {
		return entities.DerivedStatus{}, err
	}
	return entities.DeriveStatus(payments), nil
}

func (u *EntityListingUseCase) ListPayments(ctx context.Context, kind entities.EntityKind, entityID string) ([]entities.PaymentRecord, error) {
	if _, err := u.catalog.Schema(kind); err != nil {
		return nil, err
	}
	id := entities.NormalizeID(entityID)
	if id == "" {
		return nil, ErrEntityNotFound
	}

	callCtx, cancel := external(ctx, u.timeout)
	defer cancel()
	rows, err := u.ledger.ListByEntityID(callCtx, kind, ledgerReference(u.classifier, kind, id))
	if err != nil {
		log.Printf("[entity][payments] ledger read failed kind=%s entity_id=%s err=%v", kind, id, err)
		return nil, fmt.Errorf("%w: %w", ErrLedgerUnavailable, err)
	}
	return entities.SortNewestFirst(rows), nil
}

// UpdatePaymentStatusDisplay writes the staff-facing payment status column. It does
// not touch the ledger.
func (u *EntityListingUseCase) UpdatePaymentStatusDisplay(ctx context.Context, kind entities.EntityKind, entityID, status string) error {
	schema, err := u.catalog.Schema(kind)
	if err != nil {
		return err
	}
	id := entities.NormalizeID(entityID)
	status = strings.TrimSpace(status)
	if id == "" {
		return ErrEntityNotFound
	}
	if status == "" {
		return ErrInvalidPaymentStatus
	}

	callCtx, cancel := external(ctx, u.timeout)
	defer cancel()
	err = u.records.UpdateCell(callCtx, u.catalog.SourceID, schema.Collection, schema.IDColumn, id, schema.StatusColumn, status)
	switch {
	case err == nil:
		log.Printf("[entity][status] display updated kind=%s entity_id=%s status=%q", kind, id, status)
		return nil
	case errors.Is(err, interfaces.ErrRecordNotFound):
		return ErrEntityNotFound
	case errors.Is(err, interfaces.ErrColumnNotFound):
		return err
	default:
		return fmt.Errorf("%w: %w", ErrRecordStoreUnavailable, err)
	}
}

func (u *EntityListingUseCase) clamp(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = u.defaultLimit
	}
	if limit > u.maxLimit {
		limit = u.maxLimit
	}
	return page, limit
}

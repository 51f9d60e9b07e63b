package usecase

import (
	"context"
	"fmt"
	"slices"
	"time"

	"caza_backend/internal/domain/entities"
	"caza_backend/internal/infrastructure/metrics"
	"caza_backend/internal/usecase/interfaces"

	log "github.com/sirupsen/logrus"
)

type SweepReport struct {
	Candidates int
	Sent       int
	Failed     int
}

// ISweepUseCase sends payment links to unpaid entities that never received one.
type ISweepUseCase interface {
	RunOnce(ctx context.Context) (SweepReport, error)
	Run(ctx context.Context, interval time.Duration)
}

type SweepUseCase struct {
	records     interfaces.IRecordStore
	ledger      interfaces.IPaymentLedgerRepository
	sentActions interfaces.ISentActionRepository
	dispatcher  INotificationUseCase
	catalog     KindCatalog
	classifier  *entities.ReferenceClassifier
	timeout     time.Duration
}

var _ ISweepUseCase = (*SweepUseCase)(nil)

func NewSweepUseCase(records interfaces.IRecordStore, ledger interfaces.IPaymentLedgerRepository, sentActions interfaces.ISentActionRepository,
	dispatcher INotificationUseCase, catalog KindCatalog, classifier *entities.ReferenceClassifier, timeout time.Duration) *SweepUseCase {
	return &SweepUseCase{
		records:     records,
		ledger:      ledger,
		sentActions: sentActions,
		dispatcher:  dispatcher,
		catalog:     catalog,
		classifier:  classifier,
		timeout:     timeout,
	}
}

// RunOnce walks every kind. A failing kind is reported in the returned error
// after the remaining kinds have been processed.
func (u *SweepUseCase) RunOnce(ctx context.Context) (SweepReport, error) {
	var report SweepReport
	var failedKinds []entities.EntityKind
	for _, kind := range entities.AllEntityKinds {
		if err := u.sweepKind(ctx, kind, &report); err != nil {
			log.Printf("[sweep][usecase] kind failed kind=%s err=%v", kind, err)
			failedKinds = append(failedKinds, kind)
		}
	}
	log.Printf("[sweep][usecase] done candidates=%d sent=%d failed=%d", report.Candidates, report.Sent, report.Failed)
	if len(failedKinds) > 0 {
		return report, fmt.Errorf("sweep failed for kinds %v", failedKinds)
	}
	return report, nil
}

func (u *SweepUseCase) sweepKind(ctx context.Context, kind entities.EntityKind, report *SweepReport) error {
	schema, err := u.catalog.Schema(kind)
	if err != nil {
		return err
	}

	readCtx, cancel := external(ctx, u.timeout)
	rows, err := u.records.ReadRows(readCtx, u.catalog.SourceID, schema.Collection)
	cancel()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRecordStoreUnavailable, err)
	}

	var pending []DispatchRequest
	for _, row := range rows {
		id := schema.EntityID(row)
		email, _ := row.Lookup(schema.EmailColumn)
		category, _ := row.Lookup(schema.CategoryColumn)
		if id == "" || email == "" || category == "" {
			continue
		}
		name, _ := row.Lookup(schema.NameColumn)
		pending = append(pending, DispatchRequest{Kind: kind, EntityID: id, Email: email, Category: category, DisplayName: name})
	}
	if len(pending) == 0 {
		return nil
	}

	ids := make([]string, 0, len(pending))
	for _, p := range pending {
		ids = append(ids, p.EntityID)
	}
	sentCtx, cancel := external(ctx, u.timeout)
	sent, err := u.sentActions.ActionsFor(sentCtx, kind, ids)
	cancel()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLedgerUnavailable, err)
	}

	unsent := pending[:0]
	for _, req := range pending {
		if !slices.Contains(sent[req.EntityID], entities.ActionPaymentLink) {
			unsent = append(unsent, req)
		}
	}
	paid, err := u.paidEntities(ctx, kind, unsent)
	if err != nil {
		return err
	}

	for _, req := range unsent {
		if paid[req.EntityID] {
			continue
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		report.Candidates++
		if _, err := u.dispatcher.SendPaymentLink(ctx, req); err != nil {
			report.Failed++
			continue
		}
		report.Sent++
	}
	return nil
}

// paidEntities reports which requests already have an approved payment, so
// rows paid before any link was logged are not billed again.
func (u *SweepUseCase) paidEntities(ctx context.Context, kind entities.EntityKind, reqs []DispatchRequest) (map[string]bool, error) {
	paid := map[string]bool{}
	if u.ledger == nil || len(reqs) == 0 {
		return paid, nil
	}
	refs := make([]string, 0, len(reqs))
	for _, req := range reqs {
		refs = append(refs, ledgerReference(u.classifier, kind, req.EntityID))
	}
	ledgerCtx, cancel := external(ctx, u.timeout)
	payments, err := u.ledger.ListByEntityIDs(ledgerCtx, kind, refs)
	cancel()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLedgerUnavailable, err)
	}
	for _, req := range reqs {
		if entities.DeriveStatus(payments[ledgerReference(u.classifier, kind, req.EntityID)]).IsPaid() {
			log.Printf("[sweep][usecase] skip paid kind=%s entity_id=%s", kind, req.EntityID)
			paid[req.EntityID] = true
		}
	}
	return paid, nil
}

// Run calls RunOnce every interval until ctx is done. Failed or panicking
// iterations are logged and the loop continues.
func (u *SweepUseCase) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	log.Printf("[sweep][usecase] loop started interval=%s", interval)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			log.Printf("[sweep][usecase] loop stopped")
			return
		case <-ticker.C:
			u.iterate(ctx)
		}
	}
}

func (u *SweepUseCase) iterate(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			metrics.SweepRuns.WithLabelValues("panic").Inc()
			log.Errorf("[sweep][usecase] iteration panicked: %v", r)
		}
	}()
	if _, err := u.RunOnce(ctx); err != nil {
		metrics.SweepRuns.WithLabelValues("failed").Inc()
		return
	}
	metrics.SweepRuns.WithLabelValues("ok").Inc()
}

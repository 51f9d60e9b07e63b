package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"caza_backend/internal/domain/entities"
	"caza_backend/internal/infrastructure/metrics"
	"caza_backend/internal/usecase/interfaces"

	log "github.com/sirupsen/logrus"
)

var (
	ErrInvalidPaymentID            = errors.New("invalid payment id")
	ErrUnclassifiedPayment         = errors.New("unclassified payment")
	ErrPaymentAlreadyExists        = interfaces.ErrPaymentAlreadyExists
	ErrPaymentGatewayNotConfigured = errors.New("payment gateway not configured")
	ErrPaymentLookupFailed         = errors.New("payment lookup failed")
	ErrLedgerWriteFailed           = errors.New("payment ledger write failed")
)

const paymentTopic = "payment"

// IngestOutcome is what happened to one notification. Ingestion never returns an
// error: the provider re-delivers anything it sees failing.
type IngestOutcome string

const (
	IngestIgnored        IngestOutcome = "ignored"
	IngestStored         IngestOutcome = "stored"
	IngestProviderFailed IngestOutcome = "provider_failed"
	IngestUnclassified   IngestOutcome = "unclassified"
	IngestStoreFailed    IngestOutcome = "store_failed"
)

// IReconciliationUseCase mirrors provider payment truth into the local ledger.
//
//   - IngestNotification: webhook path, tolerant, last-write-wins on status
//   - FetchAndStore: manual backfill, reports already-existing payments
type IReconciliationUseCase interface {
	IngestNotification(ctx context.Context, topic, paymentID string) IngestOutcome
	FetchAndStore(ctx context.Context, paymentID string) (entities.PaymentRecord, error)
}

type ReconciliationUseCase struct {
	ledger     interfaces.IPaymentLedgerRepository
	gateway    interfaces.IPaymentGateway
	classifier *entities.ReferenceClassifier
	activity   interfaces.IActivityLog
	timeout    time.Duration
	now        func() time.Time
}

var _ IReconciliationUseCase = (*ReconciliationUseCase)(nil)

func NewReconciliationUseCase(
	ledger interfaces.IPaymentLedgerRepository,
	gateway interfaces.IPaymentGateway,
	classifier *entities.ReferenceClassifier,
	activity interfaces.IActivityLog,
	timeout time.Duration,
) *ReconciliationUseCase {
	return &ReconciliationUseCase{
		ledger:     ledger,
		gateway:    gateway,
		classifier: classifier,
		activity:   activity,
		timeout:    timeout,
		now:        time.Now,
	}
}

// WithClock replaces the time source; used by tests.
func (u *ReconciliationUseCase) WithClock(now func() time.Time) *ReconciliationUseCase {
	u.now = now
	return u
}

func (u *ReconciliationUseCase) IngestNotification(ctx context.Context, topic, paymentID string) IngestOutcome {
	outcome := u.ingest(ctx, topic, paymentID)
	metrics.WebhookNotifications.WithLabelValues(string(outcome)).Inc()
	return outcome
}

func (u *ReconciliationUseCase) ingest(ctx context.Context, topic, paymentID string) IngestOutcome {
	topic = strings.ToLower(strings.TrimSpace(topic))
	paymentID = strings.TrimSpace(paymentID)
	if topic != paymentTopic || !isProviderPaymentID(paymentID) {
		log.Debugf("[payment][reconcile] ignoring notification topic=%q payment_id=%q", topic, paymentID)
		return IngestIgnored
	}
	log.Printf("[payment][reconcile] ingest start payment_id=%s", paymentID)

	payment, err := u.lookup(ctx, paymentID)
	if err != nil {
		log.Printf("[payment][reconcile] provider lookup failed payment_id=%s err=%v", paymentID, err)
		u.audit(ctx, "", "", paymentID, IngestProviderFailed, err)
		return IngestProviderFailed
	}

	kind, entityID, err := u.classifier.Classify(payment.ExternalReference)
	if err != nil {
		log.Printf("[payment][reconcile] unclassified reference payment_id=%s external_reference=%q", paymentID, payment.ExternalReference)
		u.audit(ctx, "", payment.ExternalReference, paymentID, IngestUnclassified, err)
		return IngestUnclassified
	}

	rec := payment.ToRecord(kind, entityID, u.now())
	writeCtx, cancel := external(ctx, u.timeout)
	defer cancel()
	if err := u.ledger.Upsert(writeCtx, rec); err != nil {
		log.Printf("[payment][reconcile] ledger upsert failed payment_id=%s entity_id=%s err=%v", paymentID, entityID, err)
		u.audit(ctx, kind, entityID, paymentID, IngestStoreFailed, err)
		return IngestStoreFailed
	}

	log.WithFields(log.Fields{"payment_id": paymentID, "entity_id": entityID, "kind": kind, "status": rec.Status}).
		Info("[payment][reconcile] ledger upserted")
	u.audit(ctx, kind, entityID, paymentID, IngestStored, nil)
	return IngestStored
}

func (u *ReconciliationUseCase) FetchAndStore(ctx context.Context, paymentID string) (entities.PaymentRecord, error) {
	rec, err := u.fetchAndStore(ctx, paymentID)
	switch {
	case err == nil:
		metrics.Backfills.WithLabelValues("stored").Inc()
	case errors.Is(err, ErrPaymentAlreadyExists):
		metrics.Backfills.WithLabelValues("already_exists").Inc()
	default:
		metrics.Backfills.WithLabelValues("failed").Inc()
	}
	return rec, err
}

func (u *ReconciliationUseCase) fetchAndStore(ctx context.Context, paymentID string) (entities.PaymentRecord, error) {
	paymentID = strings.TrimSpace(paymentID)
	if !isProviderPaymentID(paymentID) {
		return entities.PaymentRecord{}, ErrInvalidPaymentID
	}
	log.Printf("[payment][backfill] start payment_id=%s", paymentID)

	payment, err := u.lookup(ctx, paymentID)
	if err != nil {
		log.Printf("[payment][backfill] provider lookup failed payment_id=%s err=%v", paymentID, err)
		return entities.PaymentRecord{}, err
	}

	kind, entityID, err := u.classifier.Classify(payment.ExternalReference)
	if err != nil {
		return entities.PaymentRecord{}, fmt.Errorf("%w: %v", ErrUnclassifiedPayment, err)
	}

	rec := payment.ToRecord(kind, entityID, u.now())
	writeCtx, cancel := external(ctx, u.timeout)
	defer cancel()
	if err := u.ledger.InsertIfAbsent(writeCtx, rec); err != nil {
		if errors.Is(err, interfaces.ErrPaymentAlreadyExists) {
			log.Printf("[payment][backfill] already exists payment_id=%s", paymentID)
			existing, getErr := u.ledger.GetByPaymentID(writeCtx, kind, paymentID)
			if getErr != nil || existing.PaymentID == "" {
				existing = rec
			}
			u.audit(ctx, kind, entityID, paymentID, "already_exists", nil)
			return existing, ErrPaymentAlreadyExists
		}
		log.Printf("[payment][backfill] ledger insert failed payment_id=%s err=%v", paymentID, err)
		return entities.PaymentRecord{}, fmt.Errorf("%w: %v", ErrLedgerWriteFailed, err)
	}

	log.Printf("[payment][backfill] stored payment_id=%s entity_id=%s status=%s", paymentID, entityID, rec.Status)
	u.audit(ctx, kind, entityID, paymentID, "backfilled", nil)
	return rec, nil
}

func (u *ReconciliationUseCase) lookup(ctx context.Context, paymentID string) (entities.ProviderPayment, error) {
	if u.gateway == nil {
		return entities.ProviderPayment{}, ErrPaymentGatewayNotConfigured
	}
	callCtx, cancel := external(ctx, u.timeout)
	defer cancel()

	payment, err := u.gateway.GetPayment(callCtx, paymentID)
	if err != nil {
		return entities.ProviderPayment{}, fmt.Errorf("%w: %w", ErrPaymentLookupFailed, err)
	}
	if payment.ID == "" {
		payment.ID = paymentID
	}
	return payment, nil
}

func (u *ReconciliationUseCase) audit(ctx context.Context, kind entities.EntityKind, entityID, paymentID string, outcome IngestOutcome, err error) {
	detail := "payment_id=" + paymentID
	if err != nil {
		detail += " err=" + err.Error()
	}
	appendActivity(ctx, u.activity, u.now(), entities.ActivityEvent{
		Kind:     kind,
		EntityID: entityID,
		Action:   "payment_notification",
		Outcome:  string(outcome),
		Detail:   detail,
	})
}

// isProviderPaymentID accepts the provider's numeric payment ids only.
func isProviderPaymentID(id string) bool {
	if id == "" || len(id) > 20 {
		return false
	}
	for _, r := range id {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

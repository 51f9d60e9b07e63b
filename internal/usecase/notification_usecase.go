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

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

var (
	ErrMissingRecipient       = errors.New("recipient email is required")
	ErrMissingCategory        = errors.New("category is required")
	ErrPaymentLinkFailed      = errors.New("payment link creation failed")
	ErrEmailDeliveryFailed    = errors.New("email delivery failed")
	ErrEntityNotPaid          = errors.New("entity has no approved payment")
	ErrDocumentNotFound       = errors.New("document not found")
	ErrSenderNotConfigured    = errors.New("email sender not configured")
	ErrPriceCatalogMissing    = errors.New("price catalog not configured")
	ErrBlobStoreNotConfigured = errors.New("blob store not configured")
)

// DispatchStep names the step of a dispatch that failed.
type DispatchStep string

const (
	StepLookup   DispatchStep = "lookup"
	StepPrice    DispatchStep = "price"
	StepCheckout DispatchStep = "checkout"
	StepStatus   DispatchStep = "status"
	StepDocument DispatchStep = "document"
	StepRender   DispatchStep = "render"
	StepEmail    DispatchStep = "email"
)

// DispatchError reports which step of a dispatch failed. Steps after it did not run.
type DispatchError struct {
	Action entities.ActionKind
	Step   DispatchStep
	Err    error
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("%s: %s step: %v", e.Action, e.Step, e.Err)
}

func (e *DispatchError) Unwrap() error { return e.Err }

type DispatchRequest struct {
	Kind        entities.EntityKind
	EntityID    string
	Email       string
	Category    string
	DisplayName string
}

type PaymentLinkResult struct {
	EntityID     string
	CheckoutURL  string
	PreferenceID string
	Amount       decimal.Decimal
	Recipient    string
}

type DispatchResult struct {
	EntityID  string
	Action    entities.ActionKind
	Recipient string
}

type INotificationUseCase interface {
	SendPaymentLink(ctx context.Context, req DispatchRequest) (PaymentLinkResult, error)
	SendCredential(ctx context.Context, req DispatchRequest) (DispatchResult, error)
	SendDocument(ctx context.Context, req DispatchRequest) (DispatchResult, error)
}

type NotificationUseCase struct {
	records     interfaces.IRecordStore
	ledger      interfaces.IPaymentLedgerRepository
	sentActions interfaces.ISentActionRepository
	prices      interfaces.IPriceCatalog
	gateway     interfaces.IPaymentGateway
	sender      interfaces.IEmailSender
	blobs       interfaces.IBlobStore
	activity    interfaces.IActivityLog
	catalog     KindCatalog
	classifier  *entities.ReferenceClassifier
	timeout     time.Duration
	now         func() time.Time
}

var _ INotificationUseCase = (*NotificationUseCase)(nil)

// NotificationDeps groups the collaborators of NotificationUseCase.
type NotificationDeps struct {
	Records     interfaces.IRecordStore
	Ledger      interfaces.IPaymentLedgerRepository
	SentActions interfaces.ISentActionRepository
	Prices      interfaces.IPriceCatalog
	Gateway     interfaces.IPaymentGateway
	Sender      interfaces.IEmailSender
	Blobs       interfaces.IBlobStore
	Activity    interfaces.IActivityLog
}

func NewNotificationUseCase(deps NotificationDeps, catalog KindCatalog, classifier *entities.ReferenceClassifier, timeout time.Duration) *NotificationUseCase {
	return &NotificationUseCase{
		records:     deps.Records,
		ledger:      deps.Ledger,
		sentActions: deps.SentActions,
		prices:      deps.Prices,
		gateway:     deps.Gateway,
		sender:      deps.Sender,
		blobs:       deps.Blobs,
		activity:    deps.Activity,
		catalog:     catalog,
		classifier:  classifier,
		timeout:     timeout,
		now:         time.Now,
	}
}

// WithClock replaces the time source; used by tests.
func (u *NotificationUseCase) WithClock(now func() time.Time) *NotificationUseCase {
	u.now = now
	return u
}

// SendPaymentLink runs price, checkout and email in order, then records the dispatch.
// A checkout created before a failed email is left at the provider.
func (u *NotificationUseCase) SendPaymentLink(ctx context.Context, req DispatchRequest) (PaymentLinkResult, error) {
	req, err := u.complete(ctx, req, true)
	if err != nil {
		return PaymentLinkResult{}, u.fail(ctx, req, entities.ActionPaymentLink, StepLookup, err)
	}
	if u.prices == nil {
		return PaymentLinkResult{}, u.fail(ctx, req, entities.ActionPaymentLink, StepPrice, ErrPriceCatalogMissing)
	}
	if u.gateway == nil {
		return PaymentLinkResult{}, u.fail(ctx, req, entities.ActionPaymentLink, StepCheckout, ErrPaymentGatewayNotConfigured)
	}
	if u.sender == nil {
		return PaymentLinkResult{}, u.fail(ctx, req, entities.ActionPaymentLink, StepEmail, ErrSenderNotConfigured)
	}
	log.Printf("[dispatch][payment_link] start kind=%s entity_id=%s category=%q", req.Kind, req.EntityID, req.Category)

	priceCtx, cancel := external(ctx, u.timeout)
	price, err := u.prices.PriceFor(priceCtx, req.Category)
	cancel()
	if err != nil {
		return PaymentLinkResult{}, u.fail(ctx, req, entities.ActionPaymentLink, StepPrice, err)
	}

	checkoutCtx, cancel := external(ctx, u.timeout)
	checkout, err := u.gateway.CreateCheckout(checkoutCtx, interfaces.CheckoutRequest{
		Title:             checkoutTitle(req),
		Price:             price,
		ExternalReference: ledgerReference(u.classifier, req.Kind, req.EntityID),
		PayerEmail:        req.Email,
	})
	cancel()
	if err != nil {
		return PaymentLinkResult{}, u.fail(ctx, req, entities.ActionPaymentLink, StepCheckout, fmt.Errorf("%w: %w", ErrPaymentLinkFailed, err))
	}
	if checkout.CheckoutURL == "" {
		return PaymentLinkResult{}, u.fail(ctx, req, entities.ActionPaymentLink, StepCheckout,
			fmt.Errorf("%w: preference %q has no checkout url", ErrPaymentLinkFailed, checkout.PreferenceID))
	}

	html, err := render(paymentLinkTemplate, messageData{
		DisplayName: req.DisplayName,
		EntityID:    req.EntityID,
		Category:    req.Category,
		Amount:      price.StringFixed(2),
		CheckoutURL: checkout.CheckoutURL,
	})
	if err != nil {
		return PaymentLinkResult{}, u.fail(ctx, req, entities.ActionPaymentLink, StepRender, err)
	}
	if err := u.send(ctx, interfaces.EmailMessage{
		To:      req.Email,
		Subject: "Link de pago " + req.EntityID,
		HTML:    html,
	}); err != nil {
		return PaymentLinkResult{}, u.fail(ctx, req, entities.ActionPaymentLink, StepEmail, err)
	}

	u.record(ctx, req, entities.ActionPaymentLink, &price)
	return PaymentLinkResult{
		EntityID:     req.EntityID,
		CheckoutURL:  checkout.CheckoutURL,
		PreferenceID: checkout.PreferenceID,
		Amount:       price,
		Recipient:    req.Email,
	}, nil
}

// SendCredential emails the season credential of an entity with an approved payment.
func (u *NotificationUseCase) SendCredential(ctx context.Context, req DispatchRequest) (DispatchResult, error) {
	req, err := u.complete(ctx, req, false)
	if err != nil {
		return DispatchResult{}, u.fail(ctx, req, entities.ActionCredential, StepLookup, err)
	}
	if u.sender == nil {
		return DispatchResult{}, u.fail(ctx, req, entities.ActionCredential, StepEmail, ErrSenderNotConfigured)
	}

	ledgerCtx, cancel := external(ctx, u.timeout)
	payments, err := u.ledger.ListByEntityID(ledgerCtx, req.Kind, ledgerReference(u.classifier, req.Kind, req.EntityID))
	cancel()
	if err != nil {
		return DispatchResult{}, u.fail(ctx, req, entities.ActionCredential, StepStatus, fmt.Errorf("%w: %w", ErrLedgerUnavailable, err))
	}
	status := entities.DeriveStatus(payments)
	if !status.IsPaid() {
		return DispatchResult{}, u.fail(ctx, req, entities.ActionCredential, StepStatus, fmt.Errorf("%w: status %s", ErrEntityNotPaid, status.Label))
	}

	data := messageData{DisplayName: req.DisplayName, EntityID: req.EntityID, PaymentID: status.PaymentID}
	if status.PaidAt != nil {
		data.PaidAt = status.PaidAt.UTC().Format("02/01/2006")
	}
	html, err := render(credentialTemplate, data)
	if err != nil {
		return DispatchResult{}, u.fail(ctx, req, entities.ActionCredential, StepRender, err)
	}
	if err := u.send(ctx, interfaces.EmailMessage{To: req.Email, Subject: "Credencial " + req.EntityID, HTML: html}); err != nil {
		return DispatchResult{}, u.fail(ctx, req, entities.ActionCredential, StepEmail, err)
	}

	u.record(ctx, req, entities.ActionCredential, nil)
	return DispatchResult{EntityID: req.EntityID, Action: entities.ActionCredential, Recipient: req.Email}, nil
}

// SendDocument emails <entity_id>.pdf from the blob store as an attachment.
func (u *NotificationUseCase) SendDocument(ctx context.Context, req DispatchRequest) (DispatchResult, error) {
	req, err := u.complete(ctx, req, false)
	if err != nil {
		return DispatchResult{}, u.fail(ctx, req, entities.ActionDocument, StepLookup, err)
	}
	if u.blobs == nil {
		return DispatchResult{}, u.fail(ctx, req, entities.ActionDocument, StepDocument, ErrBlobStoreNotConfigured)
	}
	if u.sender == nil {
		return DispatchResult{}, u.fail(ctx, req, entities.ActionDocument, StepEmail, ErrSenderNotConfigured)
	}

	blobCtx, cancel := external(ctx, u.timeout)
	defer cancel()
	files, err := u.blobs.ListPDFs(blobCtx)
	if err != nil {
		return DispatchResult{}, u.fail(ctx, req, entities.ActionDocument, StepDocument, fmt.Errorf("%w: %w", ErrBlobStoreUnavailable, err))
	}
	wanted := req.EntityID + ".pdf"
	var file *interfaces.BlobFile
	for i := range files {
		if strings.EqualFold(strings.TrimSpace(files[i].Name), wanted) {
			file = &files[i]
			break
		}
	}
	if file == nil {
		return DispatchResult{}, u.fail(ctx, req, entities.ActionDocument, StepDocument, fmt.Errorf("%w: %s", ErrDocumentNotFound, wanted))
	}
	content, err := u.blobs.Download(blobCtx, file.ID)
	if err != nil {
		return DispatchResult{}, u.fail(ctx, req, entities.ActionDocument, StepDocument, fmt.Errorf("%w: %w", ErrBlobStoreUnavailable, err))
	}

	html, err := render(documentTemplate, messageData{DisplayName: req.DisplayName, EntityID: req.EntityID})
	if err != nil {
		return DispatchResult{}, u.fail(ctx, req, entities.ActionDocument, StepRender, err)
	}
	if err := u.send(ctx, interfaces.EmailMessage{
		To:      req.Email,
		Subject: "Documentacion " + req.EntityID,
		HTML:    html,
		Attachment: &interfaces.EmailAttachment{
			Filename:    wanted,
			ContentType: "application/pdf",
			Content:     content,
		},
	}); err != nil {
		return DispatchResult{}, u.fail(ctx, req, entities.ActionDocument, StepEmail, err)
	}

	u.record(ctx, req, entities.ActionDocument, nil)
	return DispatchResult{EntityID: req.EntityID, Action: entities.ActionDocument, Recipient: req.Email}, nil
}

// complete normalizes req and fills missing email, category and name from the
// entity's record-store row.
func (u *NotificationUseCase) complete(ctx context.Context, req DispatchRequest, needCategory bool) (DispatchRequest, error) {
	schema, err := u.catalog.Schema(req.Kind)
	if err != nil {
		return req, err
	}
	req.EntityID = entities.NormalizeID(req.EntityID)
	req.Email = strings.TrimSpace(req.Email)
	req.Category = strings.TrimSpace(req.Category)
	req.DisplayName = strings.TrimSpace(req.DisplayName)
	if req.EntityID == "" {
		return req, ErrEntityNotFound
	}

	missing := req.Email == "" || (needCategory && req.Category == "")
	if missing && u.records != nil {
		row, err := findRow(ctx, u.records, u.catalog, req.Kind, req.EntityID, u.timeout)
		switch {
		case err == nil:
			if req.Email == "" {
				req.Email, _ = row.Lookup(schema.EmailColumn)
			}
			if req.Category == "" {
				req.Category, _ = row.Lookup(schema.CategoryColumn)
			}
			if req.DisplayName == "" {
				req.DisplayName, _ = row.Lookup(schema.NameColumn)
			}
		case errors.Is(err, ErrEntityNotFound) && req.Email != "" && (!needCategory || req.Category != ""):
		default:
			return req, err
		}
	}

	if req.Email == "" {
		return req, ErrMissingRecipient
	}
	if needCategory && req.Category == "" {
		return req, ErrMissingCategory
	}
	if req.DisplayName == "" {
		req.DisplayName = req.EntityID
	}
	return req, nil
}

func (u *NotificationUseCase) send(ctx context.Context, msg interfaces.EmailMessage) error {
	sendCtx, cancel := external(ctx, u.timeout)
	defer cancel()
	if err := u.sender.Send(sendCtx, msg); err != nil {
		return fmt.Errorf("%w: %w", ErrEmailDeliveryFailed, err)
	}
	return nil
}

// record writes the sent-action entry. Its failure never fails the dispatch.
func (u *NotificationUseCase) record(ctx context.Context, req DispatchRequest, action entities.ActionKind, amount *decimal.Decimal) {
	now := u.now().UTC()
	metrics.Dispatches.WithLabelValues(string(action), "sent").Inc()
	log.Printf("[dispatch][%s] sent kind=%s entity_id=%s to=%s", action, req.Kind, req.EntityID, req.Email)

	if u.sentActions != nil {
		recordCtx, cancel := external(ctx, u.timeout)
		err := u.sentActions.Record(recordCtx, entities.SentAction{
			EntityID:       req.EntityID,
			Kind:           req.Kind,
			Action:         action,
			RecipientEmail: req.Email,
			Amount:         amount,
			SentAt:         now,
		})
		cancel()
		if err != nil {
			log.Printf("[dispatch][%s] sent-action write failed entity_id=%s err=%v", action, req.EntityID, err)
		}
	}

	detail := "to=" + req.Email
	if amount != nil {
		detail += " amount=" + amount.StringFixed(2)
	}
	appendActivity(ctx, u.activity, now, entities.ActivityEvent{
		Kind: req.Kind, EntityID: req.EntityID, Action: string(action), Outcome: "sent", Detail: detail,
	})
}

func (u *NotificationUseCase) fail(ctx context.Context, req DispatchRequest, action entities.ActionKind, step DispatchStep, err error) error {
	metrics.Dispatches.WithLabelValues(string(action), "failed").Inc()
	log.Printf("[dispatch][%s] failed kind=%s entity_id=%s step=%s err=%v", action, req.Kind, req.EntityID, step, err)
	appendActivity(ctx, u.activity, u.now(), entities.ActivityEvent{
		Kind: req.Kind, EntityID: req.EntityID, Action: string(action), Outcome: "failed",
		Detail: fmt.Sprintf("step=%s err=%v", step, err),
	})
	return &DispatchError{Action: action, Step: step, Err: err}
}

func checkoutTitle(req DispatchRequest) string {
	if req.Category == "" {
		return "Temporada de caza " + req.EntityID
	}
	return fmt.Sprintf("%s - %s", req.Category, req.EntityID)
}

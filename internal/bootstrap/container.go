package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"caza_backend/internal/adapter/persistence/repository"
	"caza_backend/internal/config"
	"caza_backend/internal/domain/entities"
	"caza_backend/internal/infrastructure/activity"
	"caza_backend/internal/infrastructure/cache"
	"caza_backend/internal/infrastructure/database"
	"caza_backend/internal/infrastructure/email"
	"caza_backend/internal/infrastructure/google"
	"caza_backend/internal/infrastructure/payments"
	"caza_backend/internal/usecase"
	"caza_backend/internal/usecase/interfaces"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Container holds the wired use cases of one process.
type Container struct {
	Config *config.Config

	Reconciliation *usecase.ReconciliationUseCase
	Listing        *usecase.EntityListingUseCase
	Notification   *usecase.NotificationUseCase
	Inspection     *usecase.InspectionUseCase
	Sweep          *usecase.SweepUseCase

	ledger  ledgerBackend
	closers []func() error
}

// ledgerBackend is the storage behind the payment ledger and the sent-action log.
type ledgerBackend struct {
	payments    interfaces.IPaymentLedgerRepository
	sentActions interfaces.ISentActionRepository
	migrate     func(ctx context.Context) error
}

// Build connects every external dependency named by cfg and wires the use cases.
// Optional collaborators (email, Mercado Pago, Drive) are left nil when not
// configured; the use cases answer with a not-configured error instead.
func Build(ctx context.Context, cfg *config.Config) (*Container, error) {
	c := &Container{Config: cfg}

	ledger, err := c.openLedger(ctx)
	if err != nil {
		c.Close()
		return nil, err
	}
	c.ledger = ledger

	googleOpts, err := google.ClientOptions(cfg.Google)
	if err != nil {
		c.Close()
		return nil, err
	}
	sheets, err := google.NewSheetsClient(ctx, googleOpts...)
	if err != nil {
		c.Close()
		return nil, err
	}

	store, err := c.openCache(ctx)
	if err != nil {
		c.Close()
		return nil, err
	}
	records := cache.NewCachedRecordStore(sheets, store, cfg.Cache.TTL)

	var blobs interfaces.IBlobStore
	if cfg.Google.DriveFolderID != "" {
		drive, err := google.NewDriveClient(ctx, cfg.Google.DriveFolderID, googleOpts...)
		if err != nil {
			c.Close()
			return nil, err
		}
		blobs = cache.NewCachedBlobStore(drive, store, cfg.Cache.TTL)
	} else {
		log.Warnf("[bootstrap] GOOGLE_DRIVE_FOLDER_ID not set, documents disabled")
	}

	var gateway interfaces.IPaymentGateway
	mp, err := payments.NewMercadoPagoGateway(payments.GatewayOptions{
		AccessToken:     cfg.MercadoPago.AccessToken,
		CurrencyID:      cfg.MercadoPago.CurrencyID,
		MockMode:        cfg.MercadoPago.MockMode,
		NotificationURL: strings.TrimRight(cfg.App.BackendURL, "/") + "/v1/payments/webhook",
		BackURL:         cfg.App.FrontendURL,
		BreakerFailures: cfg.MercadoPago.BreakerFailures,
		BreakerOpenFor:  cfg.MercadoPago.BreakerOpenFor,
	})
	if err != nil {
		log.Warnf("[bootstrap] mercado pago gateway not configured: %v", err)
	} else {
		gateway = mp
	}

	var sender interfaces.IEmailSender
	resend, err := email.NewResendSender(email.Options{
		APIKey:     cfg.Email.ResendAPIKey,
		Sender:     cfg.Email.Sender,
		MockMode:   cfg.Email.MockMode,
		RatePerSec: cfg.Email.RatePerSec,
		Burst:      cfg.Email.Burst,
	})
	if err != nil {
		log.Warnf("[bootstrap] email sender not configured: %v", err)
	} else {
		sender = resend
	}

	sink := c.openActivity(records)

	classifier, err := entities.NewReferenceClassifier(cfg.Catalog.ReferencePrefixes)
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("reference prefixes: %w", err)
	}
	catalog := usecase.KindCatalog{
		SourceID: cfg.Google.SheetID,
		Schemas:  entities.DefaultKindSchemas(cfg.Google.InscriptionSheet, cfg.Google.PermitSheet),
	}
	timeout := cfg.App.ExternalCallTimeout
	prices := usecase.NewPriceResolver(records, cfg.Google.PricesSheetID, cfg.Google.PricesSheet, cfg.Catalog.PriceActivities, timeout)

	c.Reconciliation = usecase.NewReconciliationUseCase(ledger.payments, gateway, classifier, sink, timeout)
	c.Listing = usecase.NewEntityListingUseCase(records, ledger.payments, ledger.sentActions, blobs, catalog, classifier,
		usecase.EntityListingOptions{DefaultLimit: cfg.App.DefaultPageSize, MaxLimit: cfg.App.MaxPageSize, Timeout: timeout})
	c.Notification = usecase.NewNotificationUseCase(usecase.NotificationDeps{
		Records:     records,
		Ledger:      ledger.payments,
		SentActions: ledger.sentActions,
		Prices:      prices,
		Gateway:     gateway,
		Sender:      sender,
		Blobs:       blobs,
		Activity:    sink,
	}, catalog, classifier, timeout)
	c.Inspection = usecase.NewInspectionUseCase(records, ledger.payments, catalog, classifier, timeout)
	c.Sweep = usecase.NewSweepUseCase(records, ledger.payments, ledger.sentActions, c.Notification, catalog, classifier, timeout)

	log.Printf("[bootstrap] ready ledger=%s activity=%s cache_ttl=%s", cfg.Ledger.Backend, cfg.Activity.Sink, cfg.Cache.TTL)
	return c, nil
}

// Migrate creates the ledger and sent-action tables when they do not exist.
func (c *Container) Migrate(ctx context.Context) error {
	if c.ledger.migrate == nil {
		return errors.New("ledger backend has no migration")
	}
	return c.ledger.migrate(ctx)
}

// Close releases connections in reverse order of creation.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](); err != nil {
			log.Warnf("[bootstrap] close failed err=%v", err)
		}
	}
	c.closers = nil
}

func (c *Container) openLedger(ctx context.Context) (ledgerBackend, error) {
	cfg := c.Config
	tables := map[entities.EntityKind]string{
		entities.EntityKindInscription: cfg.Dynamo.InscriptionPaymentTable,
		entities.EntityKindPermit:      cfg.Dynamo.PermitPaymentTable,
	}

	if strings.EqualFold(cfg.Ledger.Backend, config.LedgerBackendPostgres) {
		db, err := database.ConnectPostgres(cfg.Postgres.DSN)
		if err != nil {
			return ledgerBackend{}, err
		}
		c.closers = append(c.closers, closeGorm(db))
		ledgerRepo := repository.NewPaymentLedgerGormRepository(db, tables)
		sent := repository.NewSentActionGormRepository(db, cfg.Dynamo.SentActionTable)
		return ledgerBackend{
			payments:    ledgerRepo,
			sentActions: sent,
			migrate: func(ctx context.Context) error {
				if err := ledgerRepo.Migrate(ctx); err != nil {
					return err
				}
				return sent.Migrate(ctx)
			},
		}, nil
	}

	ddb, err := database.ConnectDynamoDB(ctx, cfg.Dynamo)
	if err != nil {
		return ledgerBackend{}, err
	}
	defs := append(repository.PaymentTableDefinitions(tables), repository.SentActionTableDefinition(cfg.Dynamo.SentActionTable))
	return ledgerBackend{
		payments:    repository.NewPaymentLedgerDynamoRepository(ddb, tables),
		sentActions: repository.NewSentActionDynamoRepository(ddb, cfg.Dynamo.SentActionTable),
		migrate: func(ctx context.Context) error {
			return repository.CreateTables(ctx, ddb, defs)
		},
	}, nil
}

func (c *Container) openCache(ctx context.Context) (cache.Store, error) {
	cfg := c.Config.Cache
	if cfg.RedisAddr == "" {
		return cache.NewMemoryStore(), nil
	}
	rs, err := cache.NewRedisStore(ctx, cache.RedisConfig{Addr: cfg.RedisAddr, Password: cfg.RedisPassword, DB: cfg.RedisDB})
	if err != nil {
		return nil, err
	}
	c.closers = append(c.closers, rs.Close)
	return rs, nil
}

func (c *Container) openActivity(records interfaces.IRecordStore) interfaces.IActivityLog {
	cfg := c.Config
	switch strings.ToLower(cfg.Activity.Sink) {
	case config.ActivitySinkKafka:
		kl := activity.NewKafkaLog(cfg.Activity.KafkaBrokers, cfg.Activity.KafkaTopic)
		c.closers = append(c.closers, kl.Close)
		return kl
	case config.ActivitySinkNone:
		return activity.NopLog{}
	default:
		return activity.NewSheetLog(records, cfg.Google.SheetID, cfg.Google.LogSheet)
	}
}

func closeGorm(db *gorm.DB) func() error {
	return func() error {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}
}

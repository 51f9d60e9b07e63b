package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const (
	LedgerBackendDynamo   = "dynamodb"
	LedgerBackendPostgres = "postgres"

	ActivitySinkSheets = "sheets"
	ActivitySinkKafka  = "kafka"
	ActivitySinkNone   = "none"
)

// Config is the full runtime configuration, loaded from the environment
// (optionally seeded by a .env file).
type Config struct {
	App
	Ledger
	Dynamo
	Postgres
	Google
	Email
	MercadoPago
	Catalog
	Cache
	Activity
	Sweep
}

type App struct {
	Port                string        `env:"PORT" envDefault:"8080"`
	LogFormat           string        `env:"LOG_FORMAT" envDefault:"json"`
	LogLevel            string        `env:"LOG_LEVEL" envDefault:"info"`
	ExternalCallTimeout time.Duration `env:"EXTERNAL_CALL_TIMEOUT" envDefault:"15s"`
	DefaultPageSize     int           `env:"DEFAULT_PAGE_SIZE" envDefault:"10"`
	MaxPageSize         int           `env:"MAX_PAGE_SIZE" envDefault:"100"`
	FrontendURL         string        `env:"FRONTEND_URL" envDefault:"http://localhost:3000"`
	BackendURL          string        `env:"BACKEND_URL" envDefault:"http://localhost:8080"`
}

type Ledger struct {
	Backend string `env:"LEDGER_BACKEND" envDefault:"dynamodb"`
}

type Dynamo struct {
	Region                  string `env:"AWS_REGION" envDefault:"us-east-1"`
	AccessKeyID             string `env:"AWS_ACCESS_KEY_ID" envDefault:"local"`
	SecretAccessKey         string `env:"AWS_SECRET_ACCESS_KEY" envDefault:"local"`
	Endpoint                string `env:"DYNAMODB_ENDPOINT"`
	InscriptionPaymentTable string `env:"INSCRIPTION_PAYMENTS_TABLE" envDefault:"inscription_payments"`
	PermitPaymentTable      string `env:"PERMIT_PAYMENTS_TABLE" envDefault:"permit_payments"`
	SentActionTable         string `env:"SENT_ACTIONS_TABLE" envDefault:"sent_actions"`
}

type Postgres struct {
	DSN string `env:"DATABASE_URL"`
}

type Google struct {
	CredentialsFile  string `env:"GOOGLE_APPLICATION_CREDENTIALS"`
	CredentialsJSON  string `env:"GOOGLE_CREDENTIALS_JSON"`
	SheetID          string `env:"GOOGLE_SHEET_ID"`
	InscriptionSheet string `env:"GOOGLE_SHEET_NAME" envDefault:"inscrip"`
	PermitSheet      string `env:"PERMITS_SHEET_NAME" envDefault:"permisos"`
	LogSheet         string `env:"LOG_SHEET_NAME" envDefault:"logs"`
	PricesSheetID    string `env:"PRICES_SHEET_ID"`
	PricesSheet      string `env:"PRICES_SHEET_NAME" envDefault:"precios"`
	DriveFolderID    string `env:"GOOGLE_DRIVE_FOLDER_ID"`
}

type Email struct {
	ResendAPIKey string  `env:"RESEND_API_KEY"`
	Sender       string  `env:"SENDER_EMAIL_RESEND" envDefault:"onboarding@resend.dev"`
	MockMode     bool    `env:"EMAIL_MOCK" envDefault:"false"`
	RatePerSec   float64 `env:"EMAIL_RATE_PER_SEC" envDefault:"2"`
	Burst        int     `env:"EMAIL_BURST" envDefault:"2"`
}

type MercadoPago struct {
	AccessToken string `env:"MERCADOPAGO_ACCESS_TOKEN"`
	CurrencyID  string `env:"MERCADOPAGO_CURRENCY_ID" envDefault:"ARS"`
	MockMode    bool   `env:"MERCADOPAGO_MOCK" envDefault:"false"`

	// BreakerFailures consecutive failures open the circuit for BreakerOpenFor.
	BreakerFailures uint32        `env:"MERCADOPAGO_BREAKER_FAILURES" envDefault:"5"`
	BreakerOpenFor  time.Duration `env:"MERCADOPAGO_BREAKER_OPEN_FOR" envDefault:"30s"`
}

type Catalog struct {
	// ReferencePrefixes maps an external-reference prefix to an entity kind.
	ReferencePrefixes map[string]string `env:"REFERENCE_PREFIXES" envDefault:"INS-:inscription,PER-:permit"`
	// PriceActivities maps a category/type to the "Actividad" row of the price sheet.
	PriceActivities map[string]string `env:"PRICE_ACTIVITY_MAP" envDefault:"Area Libre:Establecimientos Area Libre,Criadero:Establecimientos Criadero"`
}

type Cache struct {
	TTL           time.Duration `env:"CACHE_TTL" envDefault:"60s"`
	RedisAddr     string        `env:"REDIS_ADDR"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	RedisDB       int           `env:"REDIS_DB" envDefault:"0"`
}

type Activity struct {
	Sink         string `env:"ACTIVITY_SINK" envDefault:"sheets"`
	KafkaBrokers string `env:"KAFKA_BROKERS" envDefault:"localhost:9092"`
	KafkaTopic   string `env:"KAFKA_ACTIVITY_TOPIC" envDefault:"caza.activity"`
}

type Sweep struct {
	Interval time.Duration `env:"SWEEP_INTERVAL" envDefault:"0s"`
}

// Load reads .env (if present) and parses the environment into a Config.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		logrus.Debug("[config] no .env file loaded")
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch strings.ToLower(strings.TrimSpace(c.Ledger.Backend)) {
	case LedgerBackendDynamo, LedgerBackendPostgres:
	default:
		return fmt.Errorf("invalid LEDGER_BACKEND %q", c.Ledger.Backend)
	}
	if strings.EqualFold(c.Ledger.Backend, LedgerBackendPostgres) && c.Postgres.DSN == "" {
		return fmt.Errorf("DATABASE_URL is required when LEDGER_BACKEND=postgres")
	}
	switch strings.ToLower(strings.TrimSpace(c.Activity.Sink)) {
	case ActivitySinkSheets, ActivitySinkKafka, ActivitySinkNone:
	default:
		return fmt.Errorf("invalid ACTIVITY_SINK %q", c.Activity.Sink)
	}
	if c.App.DefaultPageSize < 1 || c.App.MaxPageSize < 1 {
		return fmt.Errorf("page sizes must be positive")
	}
	if c.App.DefaultPageSize > c.App.MaxPageSize {
		c.App.DefaultPageSize = c.App.MaxPageSize
	}
	if len(c.Catalog.ReferencePrefixes) == 0 {
		return fmt.Errorf("REFERENCE_PREFIXES must map at least one prefix")
	}
	if c.Google.PricesSheetID == "" {
		c.Google.PricesSheetID = c.Google.SheetID
	}
	return nil
}

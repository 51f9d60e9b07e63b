package repository

import (
	"context"
	"time"

	"caza_backend/internal/domain/entities"
	"caza_backend/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type paymentRow struct {
	PaymentID    string          `gorm:"column:payment_id;primaryKey"`
	EntityID     string          `gorm:"column:entity_id;index;not null"`
	Kind         string          `gorm:"column:kind;not null"`
	Status       string          `gorm:"column:status"`
	StatusDetail string          `gorm:"column:status_detail"`
	Amount       decimal.Decimal `gorm:"column:amount;type:numeric(14,2)"`
	PayerEmail   string          `gorm:"column:payer_email"`
	CreatedAt    time.Time       `gorm:"column:created_at"`
	UpdatedAt    time.Time       `gorm:"column:updated_at"`
}

// PaymentLedgerGormRepository is the Postgres ledger backend
// (LEDGER_BACKEND=postgres). Same table layout as DynamoDB: one table per kind.
type PaymentLedgerGormRepository struct {
	db     *gorm.DB
	tables map[entities.EntityKind]string
}

var _ interfaces.IPaymentLedgerRepository = (*PaymentLedgerGormRepository)(nil)

func NewPaymentLedgerGormRepository(db *gorm.DB, tables map[entities.EntityKind]string) *PaymentLedgerGormRepository {
	return &PaymentLedgerGormRepository{db: db, tables: tables}
}

// Migrate creates or updates every ledger table.
func (r *PaymentLedgerGormRepository) Migrate(ctx context.Context) error {
	for _, kind := range entities.AllEntityKinds {
		table, err := tableFor(r.tables, kind)
		if err != nil {
			continue
		}
		if err := r.db.WithContext(ctx).Table(table).AutoMigrate(&paymentRow{}); err != nil {
			return err
		}
	}
	return nil
}

// Upsert relies on INSERT ... ON CONFLICT (payment_id) DO UPDATE of the status columns.
func (r *PaymentLedgerGormRepository) Upsert(ctx context.Context, rec entities.PaymentRecord) error {
	table, err := tableFor(r.tables, rec.Kind)
	if err != nil {
		return err
	}
	row := toPaymentRow(rec)
	return r.db.WithContext(ctx).Table(table).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "payment_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"status", "status_detail", "amount", "payer_email", "updated_at"}),
	}).Create(&row).Error
}

func (r *PaymentLedgerGormRepository) InsertIfAbsent(ctx context.Context, rec entities.PaymentRecord) error {
	table, err := tableFor(r.tables, rec.Kind)
	if err != nil {
		return err
	}
	row := toPaymentRow(rec)
	res := r.db.WithContext(ctx).Table(table).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "payment_id"}},
		DoNothing: true,
	}).Create(&row)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return interfaces.ErrPaymentAlreadyExists
	}
	return nil
}

func (r *PaymentLedgerGormRepository) GetByPaymentID(ctx context.Context, kind entities.EntityKind, paymentID string) (entities.PaymentRecord, error) {
	table, err := tableFor(r.tables, kind)
	if err != nil {
		return entities.PaymentRecord{}, err
	}
	var rows []paymentRow
	if err := r.db.WithContext(ctx).Table(table).Where("payment_id = ?", paymentID).Limit(1).Find(&rows).Error; err != nil {
		return entities.PaymentRecord{}, err
	}
	if len(rows) == 0 {
		return entities.PaymentRecord{}, nil
	}
	return fromPaymentRow(rows[0], kind), nil
}

func (r *PaymentLedgerGormRepository) ListByEntityID(ctx context.Context, kind entities.EntityKind, entityID string) ([]entities.PaymentRecord, error) {
	grouped, err := r.ListByEntityIDs(ctx, kind, []string{entityID})
	if err != nil {
		return nil, err
	}
	if rows, ok := grouped[entityID]; ok {
		return rows, nil
	}
	return []entities.PaymentRecord{}, nil
}

func (r *PaymentLedgerGormRepository) ListByEntityIDs(ctx context.Context, kind entities.EntityKind, entityIDs []string) (map[string][]entities.PaymentRecord, error) {
	table, err := tableFor(r.tables, kind)
	if err != nil {
		return nil, err
	}
	ids := uniqueNonEmpty(entityIDs)
	out := make(map[string][]entities.PaymentRecord, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	var rows []paymentRow
	if err := r.db.WithContext(ctx).Table(table).Where("entity_id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		out[row.EntityID] = append(out[row.EntityID], fromPaymentRow(row, kind))
	}
	return out, nil
}

func toPaymentRow(p entities.PaymentRecord) paymentRow {
	return paymentRow{
		PaymentID:    p.PaymentID,
		EntityID:     p.EntityID,
		Kind:         string(p.Kind),
		Status:       p.Status,
		StatusDetail: p.StatusDetail,
		Amount:       p.Amount,
		PayerEmail:   p.PayerEmail,
		CreatedAt:    p.CreatedAt.UTC(),
		UpdatedAt:    p.UpdatedAt.UTC(),
	}
}

func fromPaymentRow(row paymentRow, kind entities.EntityKind) entities.PaymentRecord {
	if row.Kind != "" {
		kind = entities.EntityKind(row.Kind)
	}
	return entities.PaymentRecord{
		PaymentID:    row.PaymentID,
		EntityID:     row.EntityID,
		Kind:         kind,
		Status:       row.Status,
		StatusDetail: row.StatusDetail,
		Amount:       row.Amount,
		PayerEmail:   row.PayerEmail,
		CreatedAt:    row.CreatedAt.UTC(),
		UpdatedAt:    row.UpdatedAt.UTC(),
	}
}

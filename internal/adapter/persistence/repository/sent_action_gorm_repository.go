package repository

import (
	"context"
	"crypto/rand"
	"sort"
	"time"

	"caza_backend/internal/domain/entities"
	"caza_backend/internal/usecase/interfaces"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type sentActionRow struct {
	ID             string           `gorm:"column:id;primaryKey"`
	EntityID       string           `gorm:"column:entity_id;index:idx_sent_entity,priority:2;not null"`
	Kind           string           `gorm:"column:kind;index:idx_sent_entity,priority:1;not null"`
	Action         string           `gorm:"column:action;not null"`
	RecipientEmail string           `gorm:"column:recipient_email"`
	Amount         *decimal.Decimal `gorm:"column:amount;type:numeric(14,2)"`
	SentAt         time.Time        `gorm:"column:sent_at;not null"`
}

type SentActionGormRepository struct {
	db        *gorm.DB
	tableName string
}

var _ interfaces.ISentActionRepository = (*SentActionGormRepository)(nil)

func NewSentActionGormRepository(db *gorm.DB, tableName string) *SentActionGormRepository {
	return &SentActionGormRepository{db: db, tableName: tableName}
}

func (r *SentActionGormRepository) Migrate(ctx context.Context) error {
	return r.db.WithContext(ctx).Table(r.tableName).AutoMigrate(&sentActionRow{})
}

func (r *SentActionGormRepository) Record(ctx context.Context, a entities.SentAction) error {
	if a.SentAt.IsZero() {
		a.SentAt = time.Now().UTC()
	}
	row := sentActionRow{
		ID:             ulid.MustNew(ulid.Timestamp(a.SentAt), rand.Reader).String(),
		EntityID:       a.EntityID,
		Kind:           string(a.Kind),
		Action:         string(a.Action),
		RecipientEmail: a.RecipientEmail,
		Amount:         a.Amount,
		SentAt:         a.SentAt.UTC(),
	}
	return r.db.WithContext(ctx).Table(r.tableName).Create(&row).Error
}

func (r *SentActionGormRepository) ActionsFor(ctx context.Context, kind entities.EntityKind, entityIDs []string) (map[string][]entities.ActionKind, error) {
	ids := uniqueNonEmpty(entityIDs)
	out := make(map[string][]entities.ActionKind, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	var pairs []struct {
		EntityID string
		Action   string
	}
	err := r.db.WithContext(ctx).Table(r.tableName).
		Distinct("entity_id", "action").
		Where("kind = ? AND entity_id IN ?", string(kind), ids).
		Scan(&pairs).Error
	if err != nil {
		return nil, err
	}
	for _, p := range pairs {
		out[p.EntityID] = append(out[p.EntityID], entities.ActionKind(p.Action))
	}
	for id := range out {
		actions := out[id]
		sort.Slice(actions, func(i, j int) bool { return actions[i] < actions[j] })
	}
	return out, nil
}

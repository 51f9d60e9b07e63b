package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"caza_backend/internal/domain/entities"
	"caza_backend/internal/usecase/interfaces"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

var (
	ErrEntityNotFound         = errors.New("entity not found")
	ErrRecordStoreUnavailable = errors.New("record store unavailable")
	ErrLedgerUnavailable      = errors.New("payment ledger unavailable")
	ErrBlobStoreUnavailable   = errors.New("blob store unavailable")
)

// KindCatalog tells use cases where each entity kind lives in the record store.
type KindCatalog struct {
	SourceID string
	Schemas  map[entities.EntityKind]entities.KindSchema
}

func (c KindCatalog) Schema(kind entities.EntityKind) (entities.KindSchema, error) {
	s, ok := c.Schemas[kind]
	if !ok {
		return entities.KindSchema{}, entities.ErrUnknownEntityKind
	}
	return s, nil
}

// external bounds a single call to a record store, ledger or provider.
func external(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}

// appendActivity writes to the activity side channel and only logs failures.
func appendActivity(ctx context.Context, sink interfaces.IActivityLog, now time.Time, ev entities.ActivityEvent) {
	if sink == nil {
		return
	}
	if ev.ID == "" {
		ev.ID = uuid.NewString()
	}
	if ev.At.IsZero() {
		ev.At = now.UTC()
	}
	if err := sink.Append(ctx, ev); err != nil {
		log.WithFields(log.Fields{"action": ev.Action, "entity_id": ev.EntityID}).
			Warnf("[activity][usecase] append failed err=%v", err)
	}
}

// ledgerReference is the id a kind's payments carry as provider external reference.
// Sheet ids that already start with the kind's prefix are used as they are.
func ledgerReference(classifier *entities.ReferenceClassifier, kind entities.EntityKind, entityID string) string {
	id := strings.TrimSpace(entityID)
	if classifier == nil || id == "" {
		return id
	}
	prefix, ok := classifier.PrefixFor(kind)
	if !ok || strings.HasPrefix(strings.ToUpper(id), prefix) {
		return id
	}
	return prefix + id
}

// findRow reads the kind's collection and returns the first row whose id matches.
func findRow(ctx context.Context, records interfaces.IRecordStore, catalog KindCatalog, kind entities.EntityKind, entityID string, timeout time.Duration) (entities.Record, error) {
	schema, err := catalog.Schema(kind)
	if err != nil {
		return nil, err
	}
	callCtx, cancel := external(ctx, timeout)
	defer cancel()

	rows, err := records.ReadRows(callCtx, catalog.SourceID, schema.Collection)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRecordStoreUnavailable, err)
	}
	want := entities.NormalizeID(entityID)
	for _, row := range rows {
		if want != "" && strings.EqualFold(schema.EntityID(row), want) {
			return row, nil
		}
	}
	return nil, ErrEntityNotFound
}

package activity

import (
	"context"
	"time"

	"caza_backend/internal/domain/entities"
	"caza_backend/internal/usecase/interfaces"
)

// SheetLog appends one row per event to the spreadsheet's log tab:
// at, kind, entity_id, action, outcome, detail, id.
type SheetLog struct {
	records    interfaces.IRecordStore
	sourceID   string
	collection string
}

var _ interfaces.IActivityLog = (*SheetLog)(nil)

func NewSheetLog(records interfaces.IRecordStore, sourceID, collection string) *SheetLog {
	return &SheetLog{records: records, sourceID: sourceID, collection: collection}
}

func (l *SheetLog) Append(ctx context.Context, ev entities.ActivityEvent) error {
	row := []string{
		ev.At.UTC().Format(time.RFC3339),
		string(ev.Kind),
		ev.EntityID,
		ev.Action,
		ev.Outcome,
		ev.Detail,
		ev.ID,
	}
	return l.records.AppendRows(ctx, l.sourceID, l.collection, [][]string{row})
}

// NopLog discards events.
type NopLog struct{}

func (NopLog) Append(context.Context, entities.ActivityEvent) error { return nil }

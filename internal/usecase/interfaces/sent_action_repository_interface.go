package interfaces

import (
	"context"

	"caza_backend/internal/domain/entities"
)

// ISentActionRepository is the append-only log of dispatched actions.
type ISentActionRepository interface {
	Record(ctx context.Context, action entities.SentAction) error
	// ActionsFor returns the distinct action kinds recorded per entity id.
	ActionsFor(ctx context.Context, kind entities.EntityKind, entityIDs []string) (map[string][]entities.ActionKind, error)
}

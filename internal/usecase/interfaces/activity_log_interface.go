package interfaces

import (
	"context"

	"caza_backend/internal/domain/entities"
)

// IActivityLog is a write-only side channel; callers never depend on its outcome.
type IActivityLog interface {
	Append(ctx context.Context, event entities.ActivityEvent) error
}

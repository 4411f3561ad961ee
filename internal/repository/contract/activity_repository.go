package contract

import (
	"context"

	"brigade-taxonomy-be/internal/model"

	"github.com/google/uuid"
)

// ActivityRepository works on the model directly: activity rows are
// write-once history and never cross a domain boundary.
type ActivityRepository interface {
	Create(ctx context.Context, activity *model.Activity) error
	GetBySessionID(ctx context.Context, sessionID uuid.UUID, limit, offset int) ([]model.Activity, int64, error)
}

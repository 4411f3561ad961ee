package implementation

import (
	"context"

	"brigade-taxonomy-be/internal/model"
	"brigade-taxonomy-be/internal/repository/contract"
	"brigade-taxonomy-be/internal/repository/scope"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ActivityRepositoryImpl struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) contract.ActivityRepository {
	return &ActivityRepositoryImpl{db: db}
}

func (r *ActivityRepositoryImpl) Create(ctx context.Context, activity *model.Activity) error {
	return r.db.WithContext(ctx).Create(activity).Error
}

func (r *ActivityRepositoryImpl) GetBySessionID(ctx context.Context, sessionID uuid.UUID, limit, offset int) ([]model.Activity, int64, error) {
	var activities []model.Activity
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Activity{}).Where("session_id = ?", sessionID)

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Scopes(scope.OrderByCreatedDesc).
		Limit(limit).
		Offset(offset).
		Find(&activities).Error

	return activities, total, err
}

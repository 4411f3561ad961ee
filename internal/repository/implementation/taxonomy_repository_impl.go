package implementation

import (
	"context"
	"errors"

	"brigade-taxonomy-be/internal/entity"
	"brigade-taxonomy-be/internal/mapper"
	"brigade-taxonomy-be/internal/model"
	"brigade-taxonomy-be/internal/repository/contract"
	"brigade-taxonomy-be/internal/repository/specification"

	"gorm.io/gorm"
)

type TaxonomyRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.TaxonomyMapper
}

func NewTaxonomyRepository(db *gorm.DB) contract.TaxonomyRepository {
	return &TaxonomyRepositoryImpl{
		db:     db,
		mapper: mapper.NewTaxonomyMapper(),
	}
}

func (r *TaxonomyRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *TaxonomyRepositoryImpl) Create(ctx context.Context, entry *entity.TaxonomyEntry) error {
	m := r.mapper.ToModel(entry)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*entry = *r.mapper.ToEntity(m)
	return nil
}

func (r *TaxonomyRepositoryImpl) CreateBulk(ctx context.Context, entries []*entity.TaxonomyEntry) error {
	if len(entries) == 0 {
		return nil
	}
	models := r.mapper.ToModels(entries)
	return r.db.WithContext(ctx).Create(&models).Error
}

func (r *TaxonomyRepositoryImpl) Update(ctx context.Context, entry *entity.TaxonomyEntry) error {
	m := r.mapper.ToModel(entry)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*entry = *r.mapper.ToEntity(m)
	return nil
}

func (r *TaxonomyRepositoryImpl) DeleteByClassName(ctx context.Context, className string) error {
	return r.db.WithContext(ctx).Where("class_name = ?", className).Delete(&model.TaxonomyEntry{}).Error
}

func (r *TaxonomyRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.TaxonomyEntry, error) {
	var m model.TaxonomyEntry
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *TaxonomyRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.TaxonomyEntry, error) {
	var models []*model.TaxonomyEntry
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *TaxonomyRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.TaxonomyEntry{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

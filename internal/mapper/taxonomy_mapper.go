package mapper

import (
	"time"

	"brigade-taxonomy-be/internal/entity"
	"brigade-taxonomy-be/internal/model"

	"gorm.io/datatypes"
)

type TaxonomyMapper struct{}

func NewTaxonomyMapper() *TaxonomyMapper {
	return &TaxonomyMapper{}
}

func (m *TaxonomyMapper) ToEntity(t *model.TaxonomyEntry) *entity.TaxonomyEntry {
	if t == nil {
		return nil
	}

	var updatedAt *time.Time
	if !t.UpdatedAt.IsZero() {
		u := t.UpdatedAt
		updatedAt = &u
	}

	return &entity.TaxonomyEntry{
		Id:        t.Id,
		ClassName: t.ClassName,
		Name:      t.Name,
		Parent:    t.Parent,
		Title:     t.Title,
		Synonyms:  append([]string(nil), t.Synonyms...),
		CreatedAt: t.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *TaxonomyMapper) ToModel(t *entity.TaxonomyEntry) *model.TaxonomyEntry {
	if t == nil {
		return nil
	}

	var updatedAt time.Time
	if t.UpdatedAt != nil {
		updatedAt = *t.UpdatedAt
	}

	return &model.TaxonomyEntry{
		Id:        t.Id,
		ClassName: t.ClassName,
		Name:      t.Name,
		Parent:    t.Parent,
		Title:     t.Title,
		Synonyms:  datatypes.NewJSONSlice(append([]string(nil), t.Synonyms...)),
		CreatedAt: t.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *TaxonomyMapper) ToEntities(entries []*model.TaxonomyEntry) []*entity.TaxonomyEntry {
	entities := make([]*entity.TaxonomyEntry, len(entries))
	for i, t := range entries {
		entities[i] = m.ToEntity(t)
	}
	return entities
}

func (m *TaxonomyMapper) ToModels(entries []*entity.TaxonomyEntry) []*model.TaxonomyEntry {
	models := make([]*model.TaxonomyEntry, len(entries))
	for i, t := range entries {
		models[i] = m.ToModel(t)
	}
	return models
}

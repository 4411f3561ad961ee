package contract

import (
	"context"

	"brigade-taxonomy-be/internal/entity"
	"brigade-taxonomy-be/internal/repository/specification"
)

// TaxonomyRepository persists taxonomy entries. Taxonomy data is managed per
// class (seeding, replacing, dumping), so deletion works on whole classes
// rather than single rows.
type TaxonomyRepository interface {
	Create(ctx context.Context, entry *entity.TaxonomyEntry) error
	CreateBulk(ctx context.Context, entries []*entity.TaxonomyEntry) error
	Update(ctx context.Context, entry *entity.TaxonomyEntry) error
	DeleteByClassName(ctx context.Context, className string) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.TaxonomyEntry, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.TaxonomyEntry, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

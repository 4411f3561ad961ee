package unitofwork

import (
	"context"

	"brigade-taxonomy-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	TaxonomyRepository() contract.TaxonomyRepository
	MessageRepository() contract.MessageRepository
	ActivityRepository() contract.ActivityRepository
}

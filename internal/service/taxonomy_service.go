package service

import (
	"context"
	"fmt"
	"time"

	"brigade-taxonomy-be/internal/constant"
	"brigade-taxonomy-be/internal/dto"
	"brigade-taxonomy-be/internal/entity"
	"brigade-taxonomy-be/internal/pkg/logger"
	"brigade-taxonomy-be/internal/pkg/serverutils"
	"brigade-taxonomy-be/internal/repository/specification"
	"brigade-taxonomy-be/internal/repository/unitofwork"
	"brigade-taxonomy-be/pkg/taxonomy"

	"github.com/patrickmn/go-cache"
)

type ITaxonomyService interface {
	ListTaxonomies(ctx context.Context) *dto.TaxonomyListResponse
	GetGrouped(ctx context.Context, name string) (*dto.GetTaxonomyResponse, error)
	GetFlat(ctx context.Context, name string) (*dto.GetTaxonomyFlatResponse, error)
}

type taxonomyService struct {
	uowFactory unitofwork.RepositoryFactory
	cache      *cache.Cache
	logger     logger.ILogger
}

func NewTaxonomyService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) ITaxonomyService {
	// Taxonomies change rarely (seed/admin only), a short TTL keeps the
	// grouped shape cheap without a manual invalidation path.
	c := cache.New(5*time.Minute, 10*time.Minute)
	return &taxonomyService{
		uowFactory: uowFactory,
		cache:      c,
		logger:     log,
	}
}

func (s *taxonomyService) ListTaxonomies(ctx context.Context) *dto.TaxonomyListResponse {
	return &dto.TaxonomyListResponse{
		Taxonomies: append([]string(nil), constant.KnownTaxonomies...),
	}
}

func (s *taxonomyService) GetGrouped(ctx context.Context, name string) (*dto.GetTaxonomyResponse, error) {
	if !constant.IsKnownTaxonomy(name) {
		return nil, serverutils.NewNotFoundError(fmt.Sprintf("unknown taxonomy '%s'", name))
	}

	cacheKey := "grouped:" + name
	if x, found := s.cache.Get(cacheKey); found {
		return x.(*dto.GetTaxonomyResponse), nil
	}

	entries, err := s.fetchEntries(ctx, name)
	if err != nil {
		return nil, err
	}

	collection, err := taxonomy.NewCollection(toDescriptors(entries))
	if err != nil {
		return nil, err
	}

	groups, groupErrs := collection.Group()
	for _, gerr := range groupErrs {
		s.logger.Warn("TaxonomyService", "Skipping unresolvable entry", map[string]interface{}{
			"taxonomy": name,
			"error":    gerr.Error(),
		})
	}

	res := &dto.GetTaxonomyResponse{
		Name:     name,
		Sections: make([]dto.TaxonomySectionResponse, 0, len(groups)),
	}
	for _, g := range groups {
		section := dto.TaxonomySectionResponse{
			Name:  g.Name,
			Title: g.Title,
			Items: make([]dto.TaxonomyEntryResponse, 0, len(g.Items)),
		}
		for _, item := range g.Items {
			parent := item.Parent
			section.Items = append(section.Items, dto.TaxonomyEntryResponse{
				Name:     item.Name,
				Parent:   &parent,
				Title:    item.Title,
				Synonyms: item.Synonyms,
			})
		}
		res.Sections = append(res.Sections, section)
	}

	s.cache.Set(cacheKey, res, cache.DefaultExpiration)
	return res, nil
}

func (s *taxonomyService) GetFlat(ctx context.Context, name string) (*dto.GetTaxonomyFlatResponse, error) {
	if !constant.IsKnownTaxonomy(name) {
		return nil, serverutils.NewNotFoundError(fmt.Sprintf("unknown taxonomy '%s'", name))
	}

	entries, err := s.fetchEntries(ctx, name)
	if err != nil {
		return nil, err
	}

	res := &dto.GetTaxonomyFlatResponse{
		Name:    name,
		Entries: make([]dto.TaxonomyEntryResponse, 0, len(entries)),
	}
	for _, e := range entries {
		res.Entries = append(res.Entries, dto.TaxonomyEntryResponse{
			Name:     e.Name,
			Parent:   e.Parent,
			Title:    e.Title,
			Synonyms: e.Synonyms,
		})
	}
	return res, nil
}

func (s *taxonomyService) fetchEntries(ctx context.Context, name string) ([]*entity.TaxonomyEntry, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.TaxonomyRepository().FindAll(ctx,
		specification.ByClassName{ClassName: name},
		specification.OrderBy{Field: "created_at"},
	)
}

func toDescriptors(entries []*entity.TaxonomyEntry) []taxonomy.Entry {
	out := make([]taxonomy.Entry, 0, len(entries))
	for _, e := range entries {
		parent := ""
		if e.Parent != nil {
			parent = *e.Parent
		}
		out = append(out, taxonomy.Entry{
			Name:      e.Name,
			Parent:    parent,
			ClassName: e.ClassName,
			Title:     e.Title,
			Synonyms:  e.Synonyms,
		})
	}
	return out
}

package service

import (
	"context"
	"encoding/json"
	"testing"

	"brigade-taxonomy-be/internal/constant"
	"brigade-taxonomy-be/internal/dto"
	"brigade-taxonomy-be/internal/pkg/serverutils"
	"brigade-taxonomy-be/internal/repository/memory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedPublisher struct {
	payloads [][]byte
}

func (p *capturedPublisher) Publish(ctx context.Context, payload []byte) error {
	p.payloads = append(p.payloads, payload)
	return nil
}

type noopLogger struct{}

func (noopLogger) Debug(module, message string, details map[string]interface{}) {}
func (noopLogger) Info(module, message string, details map[string]interface{})  {}
func (noopLogger) Warn(module, message string, details map[string]interface{})  {}
func (noopLogger) Error(module, message string, details map[string]interface{}) {}
func (noopLogger) Sync() error { return nil }

func newTestSelectionService() (ISelectionService, *memory.SelectionRepository, *capturedPublisher) {
	repo := memory.NewSelectionRepository()
	pub := &capturedPublisher{}
	svc := NewSelectionService(repo, pub, nil, noopLogger{})
	return svc, repo, pub
}

func TestSelectPublishesChangeOnce(t *testing.T) {
	svc, _, pub := newTestSelectionService()
	sessionID := uuid.New()
	ctx := context.Background()

	req := &dto.SelectItemRequest{SectionName: "web-development", SectionTitle: "Web Development", ItemName: "go"}

	res, err := svc.Select(ctx, sessionID, constant.TaxonomySkills, req)
	require.NoError(t, err)
	assert.True(t, res.Changed)
	require.Len(t, pub.payloads, 1)

	var change dto.SelectionChangedMessage
	require.NoError(t, json.Unmarshal(pub.payloads[0], &change))
	assert.Equal(t, sessionID, change.SessionId)
	assert.Equal(t, constant.TaxonomySkills, change.Taxonomy)

	// Re-selecting the same item is a no-op and must not publish again.
	res, err = svc.Select(ctx, sessionID, constant.TaxonomySkills, req)
	require.NoError(t, err)
	assert.False(t, res.Changed)
	assert.Len(t, pub.payloads, 1)
}

func TestUnselectNeverSelectedDoesNotPublish(t *testing.T) {
	svc, _, pub := newTestSelectionService()
	sessionID := uuid.New()

	res, err := svc.Unselect(context.Background(), sessionID, constant.TaxonomyInterests, &dto.UnselectItemRequest{
		SectionName: "civic-tech",
		ItemName:    "open-data",
	})
	require.NoError(t, err)
	assert.False(t, res.Changed)
	assert.Empty(t, pub.payloads)
}

// An unknown taxonomy surfaces as a not-found error at the service boundary,
// so HTTP-facing code never inspects tracker errors directly.
func TestSelectUnknownTaxonomyFails(t *testing.T) {
	svc, _, _ := newTestSelectionService()

	_, err := svc.Select(context.Background(), uuid.New(), "colors", &dto.SelectItemRequest{
		SectionName: "warm",
		ItemName:    "red",
	})
	var notFound *serverutils.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Contains(t, notFound.Message, "colors")
}

func TestGetUnknownTaxonomyFails(t *testing.T) {
	svc, _, _ := newTestSelectionService()

	_, err := svc.Get(context.Background(), uuid.New(), "colors")
	var notFound *serverutils.NotFoundError
	assert.ErrorAs(t, err, &notFound)

	_, err = svc.Unselect(context.Background(), uuid.New(), "colors", &dto.UnselectItemRequest{
		SectionName: "warm",
		ItemName:    "red",
	})
	assert.ErrorAs(t, err, &notFound)
}

func TestGetKeepsSectionOrder(t *testing.T) {
	svc, _, _ := newTestSelectionService()
	sessionID := uuid.New()
	ctx := context.Background()

	_, err := svc.Select(ctx, sessionID, constant.TaxonomySkills, &dto.SelectItemRequest{SectionName: "data", SectionTitle: "Data", ItemName: "mongodb"})
	require.NoError(t, err)
	_, err = svc.Select(ctx, sessionID, constant.TaxonomySkills, &dto.SelectItemRequest{SectionName: "web-development", SectionTitle: "Web Development", ItemName: "go"})
	require.NoError(t, err)

	res, err := svc.Get(ctx, sessionID, constant.TaxonomySkills)
	require.NoError(t, err)
	assert.Equal(t, []string{"data", "web-development"}, res.SectionOrder)
	assert.Equal(t, "Data", res.ItemsBySection["data"].Title)
}

func TestGetAllCoversEveryTaxonomy(t *testing.T) {
	svc, _, _ := newTestSelectionService()
	sessionID := uuid.New()

	all := svc.GetAll(context.Background(), sessionID)
	assert.Len(t, all, len(constant.KnownTaxonomies))
	for _, name := range constant.KnownTaxonomies {
		require.Contains(t, all, name)
		assert.Empty(t, all[name].SectionOrder)
	}
}

func TestViewFiltersEmptySections(t *testing.T) {
	svc, repo, _ := newTestSelectionService()
	sessionID := uuid.New()
	ctx := context.Background()

	_, err := svc.Select(ctx, sessionID, constant.TaxonomySkills, &dto.SelectItemRequest{SectionName: "web-development", SectionTitle: "Web Development", ItemName: "go"})
	require.NoError(t, err)
	_, err = svc.Select(ctx, sessionID, constant.TaxonomySkills, &dto.SelectItemRequest{SectionName: "web-development", ItemName: "javascript"})
	require.NoError(t, err)
	_, err = svc.Unselect(ctx, sessionID, constant.TaxonomySkills, &dto.UnselectItemRequest{SectionName: "web-development", ItemName: "go"})
	require.NoError(t, err)

	// Empty the section entirely; the shell stays in state but must not
	// appear in the rendered view.
	_, err = svc.Unselect(ctx, sessionID, constant.TaxonomySkills, &dto.UnselectItemRequest{SectionName: "web-development", ItemName: "javascript"})
	require.NoError(t, err)

	state, found := repo.Get(sessionID)
	require.True(t, found)
	sections, err := state.Sections(constant.TaxonomySkills)
	require.NoError(t, err)
	require.Len(t, sections, 1, "section shell should persist in state")

	view, err := svc.View(ctx, sessionID, constant.TaxonomySkills)
	require.NoError(t, err)
	assert.Empty(t, view.Sections)
	assert.Zero(t, view.Total)
}

func TestViewCountsItems(t *testing.T) {
	svc, _, _ := newTestSelectionService()
	sessionID := uuid.New()
	ctx := context.Background()

	for _, item := range []string{"go", "javascript", "css"} {
		_, err := svc.Select(ctx, sessionID, constant.TaxonomySkills, &dto.SelectItemRequest{SectionName: "web-development", SectionTitle: "Web Development", ItemName: item})
		require.NoError(t, err)
	}
	_, err := svc.Select(ctx, sessionID, constant.TaxonomySkills, &dto.SelectItemRequest{SectionName: "data", SectionTitle: "Data", ItemName: "mongodb"})
	require.NoError(t, err)

	view, err := svc.View(ctx, sessionID, constant.TaxonomySkills)
	require.NoError(t, err)
	require.Len(t, view.Sections, 2)
	assert.Equal(t, 4, view.Total)
	assert.Equal(t, "web-development", view.Sections[0].Name)
	assert.Len(t, view.Sections[0].Items, 3)
}

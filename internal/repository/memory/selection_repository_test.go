package memory

import (
	"testing"

	"brigade-taxonomy-be/internal/constant"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrCreateInitializesAllTaxonomies(t *testing.T) {
	repo := NewSelectionRepository()
	sessionID := uuid.New()

	state := repo.GetOrCreate(sessionID)
	require.NotNil(t, state)

	assert.ElementsMatch(t, constant.KnownTaxonomies, state.Taxonomies())
}

func TestGetOrCreateReturnsSameState(t *testing.T) {
	repo := NewSelectionRepository()
	sessionID := uuid.New()

	first := repo.GetOrCreate(sessionID)
	_, err := first.SelectItem(constant.TaxonomySkills, "web-development", "Web Development", "go")
	require.NoError(t, err)

	second := repo.GetOrCreate(sessionID)
	assert.Same(t, first, second)

	sections, err := second.Sections(constant.TaxonomySkills)
	require.NoError(t, err)
	require.Len(t, sections, 1)
	assert.Equal(t, "go", sections[0].Items[0].Name)
}

func TestStatesAreIsolatedPerSession(t *testing.T) {
	repo := NewSelectionRepository()
	a := repo.GetOrCreate(uuid.New())
	b := repo.GetOrCreate(uuid.New())

	_, err := a.SelectItem(constant.TaxonomyInterests, "civic-tech", "Civic Tech", "open-data")
	require.NoError(t, err)

	sections, err := b.Sections(constant.TaxonomyInterests)
	require.NoError(t, err)
	assert.Empty(t, sections)
}

func TestDeleteDropsState(t *testing.T) {
	repo := NewSelectionRepository()
	sessionID := uuid.New()

	repo.GetOrCreate(sessionID)
	_, found := repo.Get(sessionID)
	require.True(t, found)

	repo.Delete(sessionID)
	_, found = repo.Get(sessionID)
	assert.False(t, found)
}

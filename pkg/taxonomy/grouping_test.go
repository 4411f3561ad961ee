package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEntries() []Entry {
	return []Entry{
		{Name: "development-software", Title: "Development (Software)", ClassName: "skills"},
		{Name: "go", Parent: "development-software", Title: "Go", ClassName: "skills", Synonyms: []string{"golang"}},
		{Name: "rust", Parent: "development-software", Title: "Rust", ClassName: "skills"},
		{Name: "data", Title: "Data Science", ClassName: "skills"},
		{Name: "statistics", Parent: "data", Title: "Statistics", ClassName: "skills"},
	}
}

func TestNewCollectionRejectsDuplicates(t *testing.T) {
	_, err := NewCollection([]Entry{{Name: "go"}, {Name: "go"}})
	assert.Error(t, err)
}

func TestFullPath(t *testing.T) {
	c, err := NewCollection(sampleEntries())
	require.NoError(t, err)

	path, loop, err := c.FullPath("go")
	require.NoError(t, err)
	assert.False(t, loop)
	assert.Equal(t, "development-software/go", path.String())

	path, _, err = c.FullPath("data")
	require.NoError(t, err)
	assert.Equal(t, "data", path.String())
}

func TestFullPathMissingParent(t *testing.T) {
	c, err := NewCollection([]Entry{{Name: "go", Parent: "ghost"}})
	require.NoError(t, err)

	_, _, err = c.FullPath("go")
	assert.Error(t, err)

	_, _, err = c.FullPath("ghost")
	assert.Error(t, err)
}

// An entry naming itself as parent is treated as a root instead of looping
// forever.
func TestFullPathParentLoop(t *testing.T) {
	c, err := NewCollection([]Entry{{Name: "ouroboros", Parent: "ouroboros"}})
	require.NoError(t, err)

	path, loop, err := c.FullPath("ouroboros")
	require.NoError(t, err)
	assert.True(t, loop)
	assert.Equal(t, "ouroboros", path.String())
}

func TestPathMap(t *testing.T) {
	c, err := NewCollection(sampleEntries())
	require.NoError(t, err)

	m, err := c.PathMap()
	require.NoError(t, err)
	assert.Len(t, m, 5)
	assert.Equal(t, "Go", m["development-software/go"].Title)
	assert.Equal(t, "Statistics", m["data/statistics"].Title)
	assert.Equal(t, "Data Science", m["data"].Title)
}

func TestGroup(t *testing.T) {
	c, err := NewCollection(sampleEntries())
	require.NoError(t, err)

	groups, errs := c.Group()
	assert.Empty(t, errs)
	require.Len(t, groups, 2)

	assert.Equal(t, "development-software", groups[0].Name)
	assert.Equal(t, "Development (Software)", groups[0].Title)
	require.Len(t, groups[0].Items, 2)
	assert.Equal(t, "go", groups[0].Items[0].Name)
	assert.Equal(t, "rust", groups[0].Items[1].Name)

	assert.Equal(t, "data", groups[1].Name)
	require.Len(t, groups[1].Items, 1)
	assert.Equal(t, "statistics", groups[1].Items[0].Name)
}

func TestGroupReportsOrphans(t *testing.T) {
	c, err := NewCollection([]Entry{
		{Name: "roots", Title: "Roots"},
		{Name: "lost", Parent: "nowhere", Title: "Lost"},
	})
	require.NoError(t, err)

	groups, errs := c.Group()
	require.Len(t, groups, 1)
	assert.Empty(t, groups[0].Items)
	assert.Len(t, errs, 1)
}

// Sub-items deeper than one level attach to their top-level section.
func TestGroupNestedItem(t *testing.T) {
	c, err := NewCollection([]Entry{
		{Name: "development-software", Title: "Development (Software)"},
		{Name: "web", Parent: "development-software", Title: "Web"},
		{Name: "javascript", Parent: "web", Title: "JavaScript"},
	})
	require.NoError(t, err)

	groups, errs := c.Group()
	assert.Empty(t, errs)
	require.Len(t, groups, 1)
	require.Len(t, groups[0].Items, 2)
	assert.Equal(t, "javascript", groups[0].Items[1].Name)
}

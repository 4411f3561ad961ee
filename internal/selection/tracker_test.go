package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestState() *State {
	return NewState([]string{"skills", "learnSkills", "interests"})
}

func TestSelectItemCreatesSectionLazily(t *testing.T) {
	s := newTestState()

	sections, err := s.Sections("skills")
	require.NoError(t, err)
	assert.Empty(t, sections)

	changed, err := s.SelectItem("skills", "Languages", "Programming Languages", "Go")
	require.NoError(t, err)
	assert.True(t, changed)

	sections, err = s.Sections("skills")
	require.NoError(t, err)
	require.Len(t, sections, 1)
	assert.Equal(t, "Languages", sections[0].Name)
	assert.Equal(t, "Programming Languages", sections[0].Title)
	assert.Equal(t, []Item{{Name: "Go"}}, sections[0].Items)
}

func TestSelectItemDistinctPairs(t *testing.T) {
	s := newTestState()

	pairs := []struct{ section, item string }{
		{"Languages", "Go"},
		{"Languages", "Rust"},
		{"Databases", "Postgres"},
	}
	for _, p := range pairs {
		changed, err := s.SelectItem("skills", p.section, "", p.item)
		require.NoError(t, err)
		assert.True(t, changed)
	}

	sections, err := s.Sections("skills")
	require.NoError(t, err)
	require.Len(t, sections, 2)
	assert.Equal(t, []Item{{Name: "Go"}, {Name: "Rust"}}, sections[0].Items)
	assert.Equal(t, []Item{{Name: "Postgres"}}, sections[1].Items)
}

func TestSelectItemIsIdempotent(t *testing.T) {
	s := newTestState()

	changed, err := s.SelectItem("skills", "Languages", "", "Go")
	require.NoError(t, err)
	assert.True(t, changed)

	changed, err = s.SelectItem("skills", "Languages", "", "Go")
	require.NoError(t, err)
	assert.False(t, changed)

	sections, err := s.Sections("skills")
	require.NoError(t, err)
	require.Len(t, sections, 1)
	assert.Equal(t, []Item{{Name: "Go"}}, sections[0].Items)
}

// An item sitting at position 0 must still be recognized as a duplicate.
func TestSelectItemDuplicateAtPositionZero(t *testing.T) {
	s := newTestState()

	_, err := s.SelectItem("skills", "Languages", "", "Go")
	require.NoError(t, err)

	changed, err := s.SelectItem("skills", "Languages", "", "Go")
	require.NoError(t, err)
	assert.False(t, changed)

	_, err = s.SelectItem("skills", "Languages", "", "Rust")
	require.NoError(t, err)
	changed, err = s.SelectItem("skills", "Languages", "", "Go")
	require.NoError(t, err)
	assert.False(t, changed)

	sections, err := s.Sections("skills")
	require.NoError(t, err)
	assert.Equal(t, []Item{{Name: "Go"}, {Name: "Rust"}}, sections[0].Items)
}

func TestUnselectItemNeverSelected(t *testing.T) {
	s := newTestState()

	changed, err := s.UnselectItem("skills", "Languages", "Go")
	require.NoError(t, err)
	assert.False(t, changed)

	_, err = s.SelectItem("skills", "Languages", "", "Go")
	require.NoError(t, err)

	changed, err = s.UnselectItem("skills", "Languages", "Rust")
	require.NoError(t, err)
	assert.False(t, changed)

	changed, err = s.UnselectItem("skills", "Databases", "Go")
	require.NoError(t, err)
	assert.False(t, changed)

	sections, err := s.Sections("skills")
	require.NoError(t, err)
	require.Len(t, sections, 1)
	assert.Equal(t, []Item{{Name: "Go"}}, sections[0].Items)
}

func TestSelectThenUnselectRestoresItems(t *testing.T) {
	s := newTestState()

	_, err := s.SelectItem("skills", "Languages", "", "Go")
	require.NoError(t, err)
	_, err = s.UnselectItem("skills", "Languages", "Go")
	require.NoError(t, err)

	// The section record remains as an empty shell.
	sections, err := s.Sections("skills")
	require.NoError(t, err)
	require.Len(t, sections, 1)
	assert.Equal(t, "Languages", sections[0].Name)
	assert.Empty(t, sections[0].Items)
}

func TestUnselectCompactsSequence(t *testing.T) {
	s := newTestState()

	for _, item := range []string{"Go", "Rust", "Python"} {
		_, err := s.SelectItem("skills", "Languages", "", item)
		require.NoError(t, err)
	}

	_, err := s.UnselectItem("skills", "Languages", "Rust")
	require.NoError(t, err)

	sections, err := s.Sections("skills")
	require.NoError(t, err)
	assert.Equal(t, []Item{{Name: "Go"}, {Name: "Python"}}, sections[0].Items)
}

func TestUnknownTaxonomyRejected(t *testing.T) {
	s := newTestState()

	_, err := s.SelectItem("hobbies", "Languages", "", "Go")
	assert.ErrorIs(t, err, ErrUnknownTaxonomy)

	_, err = s.UnselectItem("hobbies", "Languages", "Go")
	assert.ErrorIs(t, err, ErrUnknownTaxonomy)

	_, err = s.Sections("hobbies")
	assert.ErrorIs(t, err, ErrUnknownTaxonomy)
}

func TestIndexOfNamedItems(t *testing.T) {
	tests := []struct {
		name  string
		items []Item
		find  string
		want  int
	}{
		{name: "second item", items: []Item{{Name: "a"}, {Name: "b"}}, find: "b", want: 1},
		{name: "first item", items: []Item{{Name: "a"}, {Name: "b"}}, find: "a", want: 0},
		{name: "empty slice", items: []Item{}, find: "x", want: -1},
		{name: "absent", items: []Item{{Name: "a"}}, find: "z", want: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IndexOfNamedItems(tt.items, tt.find))
		})
	}
}

func TestEndToEndSelectionFlow(t *testing.T) {
	s := newTestState()

	_, err := s.SelectItem("skills", "Languages", "", "Go")
	require.NoError(t, err)
	_, err = s.SelectItem("skills", "Languages", "", "Rust")
	require.NoError(t, err)
	_, err = s.UnselectItem("skills", "Languages", "Go")
	require.NoError(t, err)

	snapshot := s.Snapshot()
	require.Contains(t, snapshot, "skills")
	require.Len(t, snapshot["skills"], 1)
	assert.Equal(t, []Item{{Name: "Rust"}}, snapshot["skills"][0].Items)

	// Untouched taxonomies stay initialized and empty.
	assert.Empty(t, snapshot["learnSkills"])
	assert.Empty(t, snapshot["interests"])
}

func TestSnapshotIsACopy(t *testing.T) {
	s := newTestState()

	_, err := s.SelectItem("interests", "Civic", "Civic Tech", "Open Data")
	require.NoError(t, err)

	sections, err := s.Sections("interests")
	require.NoError(t, err)
	sections[0].Items[0].Name = "mutated"

	fresh, err := s.Sections("interests")
	require.NoError(t, err)
	assert.Equal(t, "Open Data", fresh[0].Items[0].Name)
}

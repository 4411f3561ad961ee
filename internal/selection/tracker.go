// Package selection holds the per-session selection state: for each known
// taxonomy, which items the user has picked, grouped by section. It is the
// single source of truth the rendered selection view is derived from.
package selection

import (
	"errors"
	"sync"
)

var ErrUnknownTaxonomy = errors.New("unknown taxonomy")

// Item is a selected leaf entry inside a section.
type Item struct {
	Name string `json:"name"`
}

// Section groups the selected items of one taxonomy section.
// Items are kept in selection order and are unique by name.
type Section struct {
	Name  string `json:"name"`
	Title string `json:"title,omitempty"`
	Items []Item `json:"items"`
}

type taxonomySelection struct {
	sections map[string]*Section
	// First-selection order of sections, so the rendered view is stable.
	order []string
}

// State tracks selections for a fixed set of taxonomies. The zero value is
// not usable; construct with NewState. Safe for concurrent use.
type State struct {
	mu         sync.RWMutex
	taxonomies map[string]*taxonomySelection
	order      []string
}

// NewState returns a State with one empty record per known taxonomy name.
func NewState(taxonomies []string) *State {
	s := &State{
		taxonomies: make(map[string]*taxonomySelection, len(taxonomies)),
		order:      make([]string, 0, len(taxonomies)),
	}
	for _, name := range taxonomies {
		if _, exists := s.taxonomies[name]; exists {
			continue
		}
		s.taxonomies[name] = &taxonomySelection{sections: make(map[string]*Section)}
		s.order = append(s.order, name)
	}
	return s
}

// SelectItem records itemName under sectionName in the given taxonomy.
// The section record is created lazily on first selection into it. Selecting
// an item that is already present is a no-op. Returns whether state changed.
func (s *State) SelectItem(taxonomy, sectionName, sectionTitle, itemName string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ts, ok := s.taxonomies[taxonomy]
	if !ok {
		return false, ErrUnknownTaxonomy
	}

	sec, ok := ts.sections[sectionName]
	if !ok {
		sec = &Section{Name: sectionName, Title: sectionTitle, Items: []Item{}}
		ts.sections[sectionName] = sec
		ts.order = append(ts.order, sectionName)
	} else if sec.Title == "" && sectionTitle != "" {
		sec.Title = sectionTitle
	}

	if IndexOfNamedItems(sec.Items, itemName) >= 0 {
		return false, nil
	}
	sec.Items = append(sec.Items, Item{Name: itemName})
	return true, nil
}

// UnselectItem removes itemName from sectionName in the given taxonomy.
// Missing sections or items are a silent no-op. The removal compacts the
// item sequence; an emptied section record persists as an empty shell.
func (s *State) UnselectItem(taxonomy, sectionName, itemName string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ts, ok := s.taxonomies[taxonomy]
	if !ok {
		return false, ErrUnknownTaxonomy
	}

	sec, ok := ts.sections[sectionName]
	if !ok {
		return false, nil
	}

	idx := IndexOfNamedItems(sec.Items, itemName)
	if idx < 0 {
		return false, nil
	}
	sec.Items = append(sec.Items[:idx], sec.Items[idx+1:]...)
	return true, nil
}

// Sections returns a snapshot of the taxonomy's sections in first-selection
// order, empty shells included.
func (s *State) Sections(taxonomy string) ([]Section, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ts, ok := s.taxonomies[taxonomy]
	if !ok {
		return nil, ErrUnknownTaxonomy
	}
	return ts.snapshot(), nil
}

// Snapshot returns a copy of the full selection state keyed by taxonomy name.
func (s *State) Snapshot() map[string][]Section {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string][]Section, len(s.taxonomies))
	for _, name := range s.order {
		out[name] = s.taxonomies[name].snapshot()
	}
	return out
}

// Taxonomies returns the known taxonomy names in construction order.
func (s *State) Taxonomies() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.order...)
}

func (ts *taxonomySelection) snapshot() []Section {
	out := make([]Section, 0, len(ts.order))
	for _, name := range ts.order {
		sec := ts.sections[name]
		out = append(out, Section{
			Name:  sec.Name,
			Title: sec.Title,
			Items: append([]Item(nil), sec.Items...),
		})
	}
	return out
}

// IndexOfNamedItems returns the position of the first item whose Name equals
// name, or -1 when absent. The comparison is on the Name field only.
func IndexOfNamedItems(items []Item, name string) int {
	for i, item := range items {
		if item.Name == name {
			return i
		}
	}
	return -1
}

package taxonomy

import "fmt"

// Entry is one taxonomy node as served by the taxonomy API: a section when
// other entries name it as their parent, an item otherwise.
type Entry struct {
	Name      string
	Parent    string // empty for entries directly under the taxonomy root
	ClassName string
	Title     string
	Synonyms  []string
}

// SectionGroup is a section with its items, in source order.
type SectionGroup struct {
	Name  string
	Title string
	Items []Entry
}

// Collection indexes a taxonomy's entries by name while keeping their
// source order.
type Collection struct {
	byName map[string]Entry
	order  []string
}

// NewCollection builds a Collection, rejecting duplicate entry names.
func NewCollection(entries []Entry) (*Collection, error) {
	c := &Collection{
		byName: make(map[string]Entry, len(entries)),
		order:  make([]string, 0, len(entries)),
	}
	for _, e := range entries {
		if _, exists := c.byName[e.Name]; exists {
			return nil, fmt.Errorf("duplicate entry %q", e.Name)
		}
		c.byName[e.Name] = e
		c.order = append(c.order, e.Name)
	}
	return c, nil
}

// FullPath resolves the absolute path of an entry by following parent
// links. A parent pointing back at the entry itself is treated as a root
// (the loop is reported so the caller can warn); a parent that does not
// exist is an error.
func (c *Collection) FullPath(name string) (Path, bool, error) {
	entry, ok := c.byName[name]
	if !ok {
		return "", false, fmt.Errorf("missing %q", name)
	}

	loop := false
	parts := []string{entry.Name}
	current := entry
	for current.Parent != "" {
		if current.Parent == current.Name {
			loop = true
			break
		}
		parent, ok := c.byName[current.Parent]
		if !ok {
			return "", false, fmt.Errorf("missing %q", current.Parent)
		}
		parts = append(parts, parent.Name)
		current = parent
	}

	// Reverse to root-first order.
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return JoinPath(parts...), loop, nil
}

// PathMap returns every entry keyed by its full path, the editable form the
// dump tooling serializes.
func (c *Collection) PathMap() (map[string]Entry, error) {
	out := make(map[string]Entry, len(c.order))
	for _, name := range c.order {
		path, _, err := c.FullPath(name)
		if err != nil {
			return nil, err
		}
		out[path.String()] = c.byName[name]
	}
	return out, nil
}

// Group splits the collection into sections and their items. Entries with
// no parent are sections; every other entry is attached to its top-level
// ancestor, in source order. Items whose ancestry cannot be resolved are
// skipped and reported.
func (c *Collection) Group() ([]SectionGroup, []error) {
	groups := make([]SectionGroup, 0)
	index := make(map[string]int)
	var errs []error

	for _, name := range c.order {
		entry := c.byName[name]
		if entry.Parent == "" {
			if _, exists := index[entry.Name]; !exists {
				index[entry.Name] = len(groups)
				groups = append(groups, SectionGroup{Name: entry.Name, Title: entry.Title, Items: []Entry{}})
			}
		}
	}

	for _, name := range c.order {
		entry := c.byName[name]
		if entry.Parent == "" {
			continue
		}
		path, _, err := c.FullPath(name)
		if err != nil {
			errs = append(errs, fmt.Errorf("entry %q: %w", name, err))
			continue
		}
		root := firstElement(path)
		i, ok := index[root]
		if !ok {
			errs = append(errs, fmt.Errorf("entry %q: section %q not found", name, root))
			continue
		}
		groups[i].Items = append(groups[i].Items, entry)
	}

	return groups, errs
}

func firstElement(p Path) string {
	s := p.String()
	for i := 0; i < len(s); i++ {
		if s[i] == PathSeparator[0] {
			return s[:i]
		}
	}
	return s
}

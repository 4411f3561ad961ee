package entity

import (
	"time"

	"github.com/google/uuid"
)

// TaxonomyEntry is one node of a taxonomy. Entries whose Parent is nil sit
// directly under the taxonomy root and act as sections; the rest are items
// (or deeper sub-items) attached to a section.
type TaxonomyEntry struct {
	Id        uuid.UUID
	ClassName string // owning taxonomy, e.g. "skills"
	Name      string // kebab-case identifier, unique within the taxonomy
	Parent    *string
	Title     string
	Synonyms  []string
	CreatedAt time.Time
	UpdatedAt *time.Time
}

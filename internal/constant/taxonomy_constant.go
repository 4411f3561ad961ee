package constant

const (
	TaxonomySkills      = "skills"
	TaxonomyLearnSkills = "learnSkills"
	TaxonomyInterests   = "interests"
)

// KnownTaxonomies is the fixed set of taxonomies available for selection.
// The set is known at startup and never changes at runtime.
var KnownTaxonomies = []string{
	TaxonomySkills,
	TaxonomyLearnSkills,
	TaxonomyInterests,
}

func IsKnownTaxonomy(name string) bool {
	for _, t := range KnownTaxonomies {
		if t == name {
			return true
		}
	}
	return false
}

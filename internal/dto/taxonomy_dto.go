package dto

type TaxonomyListResponse struct {
	Taxonomies []string `json:"taxonomies"`
}

type TaxonomyEntryResponse struct {
	Name     string   `json:"name"`
	Parent   *string  `json:"parent,omitempty"`
	Title    string   `json:"title"`
	Synonyms []string `json:"synonyms,omitempty"`
}

type TaxonomySectionResponse struct {
	Name  string                  `json:"name"`
	Title string                  `json:"title"`
	Items []TaxonomyEntryResponse `json:"items"`
}

// GetTaxonomyResponse is the grouped-by-section shape the selection widgets
// are rendered from.
type GetTaxonomyResponse struct {
	Name     string                    `json:"name"`
	Sections []TaxonomySectionResponse `json:"sections"`
}

// GetTaxonomyFlatResponse is the raw descriptor list, ordered as stored.
type GetTaxonomyFlatResponse struct {
	Name    string                  `json:"name"`
	Entries []TaxonomyEntryResponse `json:"entries"`
}

package dto

import "github.com/google/uuid"

type SelectItemRequest struct {
	SectionName  string `json:"section_name" validate:"required"`
	SectionTitle string `json:"section_title"`
	ItemName     string `json:"item_name" validate:"required"`
}

type UnselectItemRequest struct {
	SectionName string `json:"section_name" validate:"required"`
	ItemName    string `json:"item_name" validate:"required"`
}

type SelectionItemResponse struct {
	Name string `json:"name"`
}

type SelectionSectionResponse struct {
	Name  string                  `json:"name"`
	Title string                  `json:"title,omitempty"`
	Items []SelectionItemResponse `json:"items"`
}

// GetSelectionResponse mirrors the selection state of one taxonomy: a
// mapping from section name to its record, plus the section render order.
type GetSelectionResponse struct {
	Taxonomy       string                              `json:"taxonomy"`
	ItemsBySection map[string]SelectionSectionResponse `json:"items_by_section"`
	SectionOrder   []string                            `json:"section_order"`
}

type SelectItemResponse struct {
	Changed bool `json:"changed"`
}

// SelectionViewResponse is the rendered list of current selections, derived
// purely from selection state.
type SelectionViewResponse struct {
	Taxonomy string                     `json:"taxonomy"`
	Sections []SelectionSectionResponse `json:"sections"`
	Total    int                        `json:"total"`
}

// SelectionChangedMessage is the payload published on the render topic
// after every state change.
type SelectionChangedMessage struct {
	SessionId uuid.UUID `json:"session_id"`
	Taxonomy  string    `json:"taxonomy"`
}

package dto

import (
	"time"

	"github.com/google/uuid"
)

type ActivityResponse struct {
	Id        uuid.UUID `json:"id"`
	TypeCode  string    `json:"type_code"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

type ListActivitiesResponse struct {
	Activities []ActivityResponse `json:"activities"`
	Total      int64              `json:"total"`
}

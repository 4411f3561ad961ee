package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateMessageRequest struct {
	Body string `json:"body" validate:"required"`
}

type CreateMessageResponse struct {
	Id uuid.UUID `json:"id"`
}

type GetMessageResponse struct {
	Id        uuid.UUID `json:"id"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

type ListMessagesResponse struct {
	Messages []GetMessageResponse `json:"messages"`
	Total    int64                `json:"total"`
}

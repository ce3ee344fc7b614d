package handler

import "minitwitter/backend/internal/service"

// Handler carries the HTTP handlers and their injected service.
type Handler struct {
	svc *service.Service
}

// New creates a Handler backed by the given service.
func New(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// ErrorResponse represents a generic error response.
type ErrorResponse struct {
	Error string `json:"error" example:"An error message"`
}

// MessageResponse represents a generic success message.
type MessageResponse struct {
	Message string `json:"message" example:"Done"`
}

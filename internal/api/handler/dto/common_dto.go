package dto

import "time"

type ErrorDetail struct {
	Code      string            `json:"code,omitempty"`
	Title     string            `json:"title"`
	Message   string            `json:"message"`
	Field     string            `json:"field,omitempty"`
	Details   map[string]string `json:"details,omitempty"`
	Status    int               `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
}

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message" example:"Saulo Couto deleted successfully"`
}

type TokenRequest struct {
	Username string `json:"username" example:"admin"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

type HealthResponse struct {
	Status   string `json:"status" example:"ok"`
	Database string `json:"database,omitempty" example:"up"`
}

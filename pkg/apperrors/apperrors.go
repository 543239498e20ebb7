package apperrors

import "net/http"

// AppError is a typed domain error carrying the HTTP status it maps to.
// Services return these; the error middleware translates the last one on the
// context into the JSON error envelope.
type AppError struct {
	Status  int    `json:"statusCode"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

func New(status int, message string) *AppError {
	return &AppError{Status: status, Message: message}
}

func BadRequest(msg string) *AppError {
	return New(http.StatusBadRequest, msg)
}

func Unauthorized(msg string) *AppError {
	return New(http.StatusUnauthorized, msg)
}

func Forbidden(msg string) *AppError {
	return New(http.StatusForbidden, msg)
}

func NotFound(msg string) *AppError {
	return New(http.StatusNotFound, msg)
}

func Conflict(msg string) *AppError {
	return New(http.StatusConflict, msg)
}

func Internal(msg string) *AppError {
	return New(http.StatusInternalServerError, msg)
}

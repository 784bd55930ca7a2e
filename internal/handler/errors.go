package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"philosophyPortal/internal/models"
)

// ErrorResponse - стандартный ответ с ошибкой
type ErrorResponse struct {
	Error string `json:"error"`
}

// WriteError - универсальная функция для отправки ошибок
func WriteError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}

// WriteSuccess - функция для успешных ответов
func WriteSuccess(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// WriteServiceError сопоставляет вид ошибки с HTTP-статусом
func WriteServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrNotFound):
		WriteError(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, models.ErrValidation), errors.Is(err, models.ErrInvalidInput):
		WriteError(w, err.Error(), http.StatusBadRequest)
	default:
		WriteError(w, err.Error(), http.StatusInternalServerError)
	}
}

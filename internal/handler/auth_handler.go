package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"philosophyPortal/internal/models"
	"philosophyPortal/internal/repository"
)

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type UserResponse struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Name   string `json:"name"`
}

type AuthResponse struct {
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
	User         UserResponse `json:"user"`
}

// userResponse - имя для отображения выводится из локальной части email
func userResponse(userID, email string) UserResponse {
	name := email
	if i := strings.Index(email, "@"); i > 0 {
		name = email[:i]
	}
	return UserResponse{UserID: userID, Email: email, Name: name}
}

func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		if strings.Contains(err.Error(), "Email") {
			WriteError(w, "Неверный формат email", http.StatusBadRequest)
		} else {
			WriteError(w, "Пароль должен быть не менее 6 символов", http.StatusBadRequest)
		}
		return
	}

	serviceReq := repository.CreateUserRequest{
		Email:    req.Email,
		Password: req.Password,
	}

	// registering a user in the service
	_, err := h.AuthService.Register(r.Context(), serviceReq)
	if err != nil {
		if errors.Is(err, models.ErrAlreadyExists) {
			WriteError(w, "Email уже существует", http.StatusForbidden)
		} else {
			WriteError(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	// logging in right away
	user, accessToken, refreshToken, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	response := AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         userResponse(user.UserID, user.Email),
	}

	WriteSuccess(w, response, http.StatusOK)
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		if strings.Contains(err.Error(), "Email") {
			WriteError(w, "Неверный формат email", http.StatusBadRequest)
		} else {
			WriteError(w, "Неверные данные", http.StatusBadRequest)
		}
		return
	}

	user, accessToken, refreshToken, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		WriteError(w, "Неверный email или пароль", http.StatusForbidden)
		return
	}

	response := AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         userResponse(user.UserID, user.Email),
	}

	WriteSuccess(w, response, http.StatusOK)
}

func (h *Handlers) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var req struct {
		RefreshToken string `json:"refreshToken" validate:"required"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if req.RefreshToken == "" {
		WriteError(w, "Отсутствует refreshToken", http.StatusBadRequest)
		return
	}

	user, accessToken, refreshToken, err := h.AuthService.RefreshTokens(r.Context(), req.RefreshToken)
	if err != nil {
		WriteError(w, "Refresh Token истек или недействителен", http.StatusBadRequest)
		return
	}

	response := AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         userResponse(user.UserID, user.Email),
	}

	WriteSuccess(w, response, http.StatusOK)
}

func (h *Handlers) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := identity(r)
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	user, err := h.UserRepo.GetUserByID(r.Context(), userID)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, userResponse(user.UserID, user.Email), http.StatusOK)
}

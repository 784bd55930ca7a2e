package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"philosophyPortal/internal/service"
)

type CreatePostBody struct {
	Title    string `json:"title" validate:"required"`
	Content  string `json:"content" validate:"required"`
	Category string `json:"category"`
}

type CreateReplyBody struct {
	Content string `json:"content" validate:"required"`
}

func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	_, email, ok := identity(r)
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	var body CreatePostBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(body); err != nil {
		WriteError(w, "Заголовок и содержание обязательны", http.StatusBadRequest)
		return
	}

	post, err := h.ForumService.CreatePost(r.Context(), service.CreatePostRequest{
		Email:    email,
		Title:    body.Title,
		Content:  body.Content,
		Category: body.Category,
	})
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, post, http.StatusCreated)
}

func (h *Handlers) GetPosts(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")

	posts, err := h.ForumService.ListPosts(r.Context(), search)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, map[string]interface{}{
		"posts": posts,
		"count": len(posts),
	}, http.StatusOK)
}

func (h *Handlers) GetPost(w http.ResponseWriter, r *http.Request) {
	postID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		WriteError(w, "Неверный id поста", http.StatusBadRequest)
		return
	}

	post, err := h.ForumService.GetPost(r.Context(), postID)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, post, http.StatusOK)
}

func (h *Handlers) AddReply(w http.ResponseWriter, r *http.Request) {
	_, email, ok := identity(r)
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	postID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		WriteError(w, "Неверный id поста", http.StatusBadRequest)
		return
	}

	var body CreateReplyBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(body); err != nil {
		WriteError(w, "Содержание ответа обязательно", http.StatusBadRequest)
		return
	}

	post, err := h.ForumService.AddReply(r.Context(), postID, email, body.Content)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, post, http.StatusOK)
}

func (h *Handlers) GetCategoryCounts(w http.ResponseWriter, r *http.Request) {
	counts, err := h.ForumService.CategoryCounts(r.Context())
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, counts, http.StatusOK)
}

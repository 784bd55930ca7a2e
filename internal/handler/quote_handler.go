package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
)

func (h *Handlers) GetQuotes(w http.ResponseWriter, r *http.Request) {
	quotes, err := h.QuoteService.ListQuotes(r.Context())
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, map[string]interface{}{
		"quotes": quotes,
		"count":  len(quotes),
	}, http.StatusOK)
}

func (h *Handlers) QuoteOfTheDay(w http.ResponseWriter, r *http.Request) {
	quote, err := h.QuoteService.QuoteOfTheDay(r.Context())
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, quote, http.StatusOK)
}

func (h *Handlers) GetFavorites(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := identity(r)
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	quoteIDs, err := h.QuoteService.Favorites(r.Context(), userID)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, map[string]interface{}{"quoteIds": quoteIDs}, http.StatusOK)
}

// ToggleFavorite добавляет цитату в избранное или убирает её оттуда
func (h *Handlers) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := identity(r)
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	quoteID := mux.Vars(r)["id"]

	quoteIDs, favorite, err := h.QuoteService.ToggleUserFavorite(r.Context(), userID, quoteID)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, map[string]interface{}{
		"quoteIds": quoteIDs,
		"favorite": favorite,
	}, http.StatusOK)
}

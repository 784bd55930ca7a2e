package handlers

import (
	"net/http"
)

func (h *Handlers) GetVideos(w http.ResponseWriter, r *http.Request) {
	videos := h.VideoService.ListVideos()

	WriteSuccess(w, map[string]interface{}{
		"videos": videos,
		"count":  len(videos),
	}, http.StatusOK)
}

package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
)

func (h *Handlers) UploadResource(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		WriteError(w, "Файл слишком большой или неверный формат запроса", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		WriteError(w, "Отсутствует файл в поле file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	resource, err := h.ResourceService.Upload(r.Context(), header.Filename, file, header.Size)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, resource, http.StatusCreated)
}

func (h *Handlers) GetResources(w http.ResponseWriter, r *http.Request) {
	resources, err := h.ResourceService.List(r.Context())
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, map[string]interface{}{
		"resources": resources,
		"count":     len(resources),
	}, http.StatusOK)
}

// ResourceLink выдаёт временную ссылку на скачивание документа
func (h *Handlers) ResourceLink(w http.ResponseWriter, r *http.Request) {
	resourceID := mux.Vars(r)["id"]

	link, err := h.ResourceService.DownloadLink(r.Context(), resourceID)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, map[string]string{"url": link}, http.StatusOK)
}

func (h *Handlers) DeleteResource(w http.ResponseWriter, r *http.Request) {
	resourceID := mux.Vars(r)["id"]

	if err := h.ResourceService.Delete(r.Context(), resourceID); err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, map[string]string{"status": "deleted"}, http.StatusOK)
}

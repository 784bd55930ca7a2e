package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"philosophyPortal/internal/config"
	"philosophyPortal/internal/models"
	"philosophyPortal/internal/repository"
	"philosophyPortal/internal/service"
)

type Handlers struct {
	AuthService     service.AuthService
	ForumService    service.ForumService
	QuoteService    service.QuoteService
	VideoService    service.VideoService
	ResourceService service.ResourceService
	StatsService    service.StatsService
	UserRepo        repository.UserRepository
	Cfg             *config.Config
	Validate        *validator.Validate
}

func NewHandlers(repo *repository.Repository, service *service.Service, config *config.Config) *Handlers {
	return &Handlers{
		AuthService:     service.Auth,
		ForumService:    service.Forum,
		QuoteService:    service.Quote,
		VideoService:    service.Video,
		ResourceService: service.Resource,
		StatsService:    service.Stats,
		UserRepo:        repo.User,
		Cfg:             config,
		Validate:        validator.New(),
	}
}

// identity достаёт данные пользователя, положенные в контекст auth-middleware
func identity(r *http.Request) (userID, email string, ok bool) {
	userID, ok1 := r.Context().Value(models.ContextUserID).(string)
	email, ok2 := r.Context().Value(models.ContextEmail).(string)
	return userID, email, ok1 && ok2
}

func HomeHandler(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, map[string]string{"service": "philosophy-portal"}, http.StatusOK)
}

func HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

package service

import (
	"strings"

	"philosophyPortal/internal/config"
	"philosophyPortal/internal/repository"
	"philosophyPortal/internal/storage"
)

type Service struct {
	Auth     AuthService
	Forum    ForumService
	Quote    QuoteService
	Video    VideoService
	Resource ResourceService
	Stats    StatsService
}

func NewService(rep *repository.Repository, cfg *config.Config, storage storage.Storage) *Service {
	return &Service{
		Auth:     NewAuthService(rep.User, cfg),
		Forum:    NewForumService(rep.Post),
		Quote:    NewQuoteService(rep.Quote, rep.Favorite),
		Video:    NewVideoService(),
		Resource: NewResourceService(rep.Resource, storage),
		Stats:    NewStatsService(rep.Stats, rep.Quote),
	}
}

// displayName - имя автора выводится из локальной части email
func displayName(email string) string {
	if i := strings.Index(email, "@"); i > 0 {
		return email[:i]
	}
	return email
}

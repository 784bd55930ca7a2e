package service

import (
	"context"

	"philosophyPortal/internal/models"
	"philosophyPortal/internal/repository"
)

type StatsService interface {
	PortalStats(ctx context.Context) (*models.PortalStats, error)
}

type statsService struct {
	statsRepo repository.StatsRepository
	quoteRepo repository.QuoteRepository
}

func NewStatsService(statsRepo repository.StatsRepository, quoteRepo repository.QuoteRepository) StatsService {
	return &statsService{
		statsRepo: statsRepo,
		quoteRepo: quoteRepo,
	}
}

func (s *statsService) PortalStats(ctx context.Context) (*models.PortalStats, error) {
	posts, err := s.statsRepo.CountPosts(ctx)
	if err != nil {
		return nil, err
	}

	users, err := s.statsRepo.CountUsers(ctx)
	if err != nil {
		return nil, err
	}

	quotes, err := s.quoteRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &models.PortalStats{
		Posts:      posts,
		Users:      users,
		Quotes:     quotes,
		Categories: len(Categories),
	}, nil
}

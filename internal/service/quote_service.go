package service

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"math/rand"

	"philosophyPortal/internal/models"
	"philosophyPortal/internal/repository"
)

type QuoteService interface {
	ImportQuotes(ctx context.Context, quotes []models.Quote) (int, error)
	ListQuotes(ctx context.Context) ([]models.Quote, error)
	QuoteOfTheDay(ctx context.Context) (*models.Quote, error)
	Favorites(ctx context.Context, userID string) (models.StringSet, error)
	ToggleUserFavorite(ctx context.Context, userID, quoteID string) (models.StringSet, bool, error)
}

type quoteService struct {
	quoteRepo    repository.QuoteRepository
	favoriteRepo repository.FavoriteRepository
}

func NewQuoteService(quoteRepo repository.QuoteRepository, favoriteRepo repository.FavoriteRepository) QuoteService {
	return &quoteService{
		quoteRepo:    quoteRepo,
		favoriteRepo: favoriteRepo,
	}
}

// QuoteID выводит стабильный идентификатор цитаты из её содержимого:
// SHA-1 от "author|text" в hex. Одинаковая пара (author, text) всегда даёт
// один и тот же идентификатор, поэтому импорт идемпотентен, а ссылки из
// избранного переживают повторный импорт списка.
func QuoteID(author, text string) (string, error) {
	if author == "" || text == "" {
		return "", fmt.Errorf("у цитаты должны быть author и text: %w", models.ErrInvalidInput)
	}

	sum := sha1.Sum([]byte(author + "|" + text))
	return hex.EncodeToString(sum[:]), nil
}

// ToggleFavorite - чистое переключение: если id есть в множестве, убирает его,
// иначе добавляет. Исходный срез не меняется. Сохранение результата - забота
// вызывающего, запись перезаписывается целиком.
func ToggleFavorite(set models.StringSet, quoteID string) models.StringSet {
	out := make(models.StringSet, 0, len(set)+1)
	found := false
	for _, id := range set {
		if id == quoteID {
			found = true
			continue
		}
		out = append(out, id)
	}

	if !found {
		out = append(out, quoteID)
	}

	return out
}

func (s *quoteService) ImportQuotes(ctx context.Context, quotes []models.Quote) (int, error) {
	imported := 0

	for _, q := range quotes {
		id, err := QuoteID(q.Author, q.Text)
		if err != nil {
			return imported, err
		}

		q.QuoteID = id
		if err := s.quoteRepo.Upsert(ctx, &q); err != nil {
			return imported, err
		}
		imported++
	}

	return imported, nil
}

func (s *quoteService) ListQuotes(ctx context.Context) ([]models.Quote, error) {
	return s.quoteRepo.GetAll(ctx)
}

func (s *quoteService) QuoteOfTheDay(ctx context.Context) (*models.Quote, error) {
	quotes, err := s.quoteRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	if len(quotes) == 0 {
		return nil, fmt.Errorf("цитаты ещё не импортированы: %w", models.ErrNotFound)
	}

	quote := quotes[rand.Intn(len(quotes))]
	return &quote, nil
}

func (s *quoteService) Favorites(ctx context.Context, userID string) (models.StringSet, error) {
	if userID == "" {
		return nil, fmt.Errorf("не задан userID: %w", models.ErrInvalidInput)
	}

	return s.favoriteRepo.GetByUserID(ctx, userID)
}

// ToggleUserFavorite читает множество, переключает локально и перезаписывает
// запись одним upsert'ом. Возвращает новое множество и признак "в избранном".
func (s *quoteService) ToggleUserFavorite(ctx context.Context, userID, quoteID string) (models.StringSet, bool, error) {
	if userID == "" || quoteID == "" {
		return nil, false, fmt.Errorf("не заданы userID или quoteID: %w", models.ErrInvalidInput)
	}

	set, err := s.favoriteRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, false, err
	}

	updated := ToggleFavorite(set, quoteID)

	if err := s.favoriteRepo.Save(ctx, userID, updated); err != nil {
		return nil, false, err
	}

	return updated, updated.Contains(quoteID), nil
}

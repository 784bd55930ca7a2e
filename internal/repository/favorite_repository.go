package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"philosophyPortal/internal/models"
)

type FavoriteRepositoryImpl struct {
	db *sqlx.DB
}

func NewFavoriteRepository(db *sqlx.DB) *FavoriteRepositoryImpl {
	return &FavoriteRepositoryImpl{db: db}
}

// GetByUserID возвращает пустое множество, если записи у пользователя ещё нет.
// Запись создаётся лениво при первом сохранении.
func (r *FavoriteRepositoryImpl) GetByUserID(ctx context.Context, userID string) (models.StringSet, error) {
	query := `SELECT quote_ids FROM favorites WHERE user_id = $1`

	var quoteIDs models.StringSet
	err := r.db.GetContext(ctx, &quoteIDs, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.StringSet{}, nil
		}
		return nil, fmt.Errorf("ошибка при получении избранного: %w", err)
	}

	return quoteIDs, nil
}

// Save перезаписывает множество целиком (last-write-wins): два одновременных
// переключения у одного пользователя могут потерять одно из них.
func (r *FavoriteRepositoryImpl) Save(ctx context.Context, userID string, quoteIDs models.StringSet) error {
	query := `
		INSERT INTO favorites (user_id, quote_ids)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET quote_ids = EXCLUDED.quote_ids
	`

	if quoteIDs == nil {
		quoteIDs = models.StringSet{}
	}

	_, err := r.db.ExecContext(ctx, query, userID, quoteIDs)
	if err != nil {
		return fmt.Errorf("ошибка при сохранении избранного: %w", err)
	}

	return nil
}

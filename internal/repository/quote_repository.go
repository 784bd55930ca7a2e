package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"philosophyPortal/internal/models"
)

type QuoteRepositoryImpl struct {
	db *sqlx.DB
}

func NewQuoteRepository(db *sqlx.DB) *QuoteRepositoryImpl {
	return &QuoteRepositoryImpl{db: db}
}

// Upsert пишет цитату по её контентному ключу. Повторный импорт той же пары
// (author, text) попадает в ту же строку, дубликатов не появляется.
func (r *QuoteRepositoryImpl) Upsert(ctx context.Context, quote *models.Quote) error {
	query := `
		INSERT INTO quotes (quote_id, author, text)
		VALUES (:quote_id, :author, :text)
		ON CONFLICT (quote_id) DO UPDATE SET
			author = EXCLUDED.author,
			text = EXCLUDED.text
	`

	_, err := r.db.NamedExecContext(ctx, query, quote)
	if err != nil {
		return fmt.Errorf("ошибка при сохранении цитаты: %w", err)
	}

	return nil
}

func (r *QuoteRepositoryImpl) GetAll(ctx context.Context) ([]models.Quote, error) {
	query := `SELECT * FROM quotes ORDER BY author, quote_id`

	var quotes []models.Quote
	err := r.db.SelectContext(ctx, &quotes, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении цитат: %w", err)
	}

	if quotes == nil {
		quotes = []models.Quote{}
	}

	return quotes, nil
}

func (r *QuoteRepositoryImpl) Count(ctx context.Context) (int, error) {
	var count int

	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM quotes`)
	if err != nil {
		return 0, fmt.Errorf("ошибка при подсчёте цитат: %w", err)
	}

	return count, nil
}

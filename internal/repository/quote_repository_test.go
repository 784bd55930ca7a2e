package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"philosophyPortal/internal/models"
)

func TestQuoteRepository_Upsert(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewQuoteRepository(sqlxDB)

	ctx := context.Background()

	quote := &models.Quote{
		QuoteID: "e8c87e8ca90900a2cfa337b9a7aa9f234ba3b25c",
		Author:  "X",
		Text:    "A",
	}

	upsertQuery := `
		INSERT INTO quotes (quote_id, author, text)
		VALUES (?, ?, ?)
		ON CONFLICT (quote_id) DO UPDATE SET
			author = EXCLUDED.author,
			text = EXCLUDED.text
	`

	t.Run("Первый импорт вставляет строку", func(t *testing.T) {
		mock.ExpectExec(upsertQuery).
			WithArgs(quote.QuoteID, quote.Author, quote.Text).
			WillReturnResult(sqlmock.NewResult(1, 1))

		err := repo.Upsert(ctx, quote)

		assert.NoError(t, err)
	})

	t.Run("Повторный импорт попадает в ту же строку", func(t *testing.T) {
		mock.ExpectExec(upsertQuery).
			WithArgs(quote.QuoteID, quote.Author, quote.Text).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Upsert(ctx, quote)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestQuoteRepository_GetAll(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewQuoteRepository(sqlxDB)

	t.Run("Цитаты из БД", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"quote_id", "author", "text"}).
			AddRow("q1", "X", "A").
			AddRow("q2", "Y", "B")

		mock.ExpectQuery(`SELECT * FROM quotes ORDER BY author, quote_id`).
			WillReturnRows(rows)

		quotes, err := repo.GetAll(context.Background())

		require.NoError(t, err)
		require.Len(t, quotes, 2)
		assert.Equal(t, "X", quotes[0].Author)
	})

	t.Run("Пустая коллекция - не ошибка", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"quote_id", "author", "text"})

		mock.ExpectQuery(`SELECT * FROM quotes ORDER BY author, quote_id`).
			WillReturnRows(rows)

		quotes, err := repo.GetAll(context.Background())

		require.NoError(t, err)
		assert.NotNil(t, quotes)
		assert.Empty(t, quotes)
	})
}

func TestQuoteRepository_Count(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewQuoteRepository(sqlxDB)

	mock.ExpectQuery(`SELECT COUNT(*) FROM quotes`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	count, err := repo.Count(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 7, count)
}

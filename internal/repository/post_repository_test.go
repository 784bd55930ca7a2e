package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"philosophyPortal/internal/models"
)

var errDuplicateKey = errors.New(`pq: duplicate key value violates unique constraint "posts_pkey"`)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestPostRepository_Create(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewPostRepository(sqlxDB)

	ctx := context.Background()

	post := &models.Post{
		PostID:   1700000000000,
		Name:     "plato",
		Title:    "On Justice",
		Content:  "What is justice?",
		Category: "Ethics",
		Time:     "2023-11-14 22:13:20",
	}

	t.Run("Успешное создание поста", func(t *testing.T) {
		mock.ExpectExec(`
			INSERT INTO posts (post_id, name, title, content, category, time, replies)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`).
			WithArgs(
				post.PostID,
				post.Name,
				post.Title,
				post.Content,
				post.Category,
				post.Time,
				[]byte(`[]`),
			).
			WillReturnResult(sqlmock.NewResult(1, 1))

		err := repo.Create(ctx, post)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Коллизия миллисекундного id", func(t *testing.T) {
		mock.ExpectExec(`
			INSERT INTO posts (post_id, name, title, content, category, time, replies)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`).
			WithArgs(
				post.PostID,
				post.Name,
				post.Title,
				post.Content,
				post.Category,
				post.Time,
				[]byte(`[]`),
			).
			WillReturnError(errDuplicateKey)

		err := repo.Create(ctx, post)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "уже существует")
	})
}

func TestPostRepository_GetByID(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewPostRepository(sqlxDB)

	ctx := context.Background()

	t.Run("Пост с ответами", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"post_id", "name", "title", "content", "category", "time", "replies"}).
			AddRow(int64(1), "plato", "T", "C", "Ethics", "2025-01-01 10:00:00",
				[]byte(`[{"name":"zeno","content":"R","time":"2025-01-01 11:00:00"}]`))

		mock.ExpectQuery(`SELECT * FROM posts WHERE post_id = $1`).
			WithArgs(int64(1)).
			WillReturnRows(rows)

		post, err := repo.GetByID(ctx, 1)

		require.NoError(t, err)
		require.Len(t, post.Replies, 1)
		assert.Equal(t, "zeno", post.Replies[0].Name)
		assert.Equal(t, "R", post.Replies[0].Content)
	})

	t.Run("Несуществующий пост - NotFound", func(t *testing.T) {
		mock.ExpectQuery(`SELECT * FROM posts WHERE post_id = $1`).
			WithArgs(int64(42)).
			WillReturnError(sql.ErrNoRows)

		_, err := repo.GetByID(ctx, 42)

		assert.ErrorIs(t, err, models.ErrNotFound)
	})
}

func TestPostRepository_GetAll(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewPostRepository(sqlxDB)

	ctx := context.Background()

	t.Run("Посты в порядке убывания времени", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"post_id", "name", "title", "content", "category", "time", "replies"}).
			AddRow(int64(2), "b", "T2", "C2", "Other", "2025-02-02 10:00:00", []byte(`[]`)).
			AddRow(int64(1), "a", "T1", "C1", "Other", "2025-01-01 10:00:00", []byte(`[]`))

		mock.ExpectQuery(`SELECT * FROM posts ORDER BY time DESC, post_id DESC`).
			WillReturnRows(rows)

		posts, err := repo.GetAll(ctx)

		require.NoError(t, err)
		require.Len(t, posts, 2)
		assert.GreaterOrEqual(t, posts[0].Time, posts[1].Time)
	})

	t.Run("Без постов возвращается пустой список", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"post_id", "name", "title", "content", "category", "time", "replies"})

		mock.ExpectQuery(`SELECT * FROM posts ORDER BY time DESC, post_id DESC`).
			WillReturnRows(rows)

		posts, err := repo.GetAll(ctx)

		require.NoError(t, err)
		assert.NotNil(t, posts)
		assert.Empty(t, posts)
	})
}

func TestPostRepository_Update(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewPostRepository(sqlxDB)

	ctx := context.Background()

	post := &models.Post{
		PostID:   1,
		Title:    "T",
		Content:  "C",
		Category: "Ethics",
		Replies:  models.ReplyList{{Name: "zeno", Content: "R", Time: "2025-01-01 11:00:00"}},
	}

	t.Run("Перезапись строки вместе с ответами", func(t *testing.T) {
		mock.ExpectExec(`
			UPDATE posts SET
				title = ?,
				content = ?,
				category = ?,
				replies = ?
			WHERE post_id = ?
		`).
			WithArgs(
				post.Title,
				post.Content,
				post.Category,
				[]byte(`[{"name":"zeno","content":"R","time":"2025-01-01 11:00:00"}]`),
				post.PostID,
			).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Update(ctx, post)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Обновление несуществующего поста - NotFound", func(t *testing.T) {
		mock.ExpectExec(`
			UPDATE posts SET
				title = ?,
				content = ?,
				category = ?,
				replies = ?
			WHERE post_id = ?
		`).
			WithArgs(
				post.Title,
				post.Content,
				post.Category,
				[]byte(`[{"name":"zeno","content":"R","time":"2025-01-01 11:00:00"}]`),
				post.PostID,
			).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Update(ctx, post)

		assert.ErrorIs(t, err, models.ErrNotFound)
	})
}

func TestPostRepository_CountByCategory(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewPostRepository(sqlxDB)

	rows := sqlmock.NewRows([]string{"category", "count"}).
		AddRow("Ethics", 2).
		AddRow("Logic", 1)

	mock.ExpectQuery(`SELECT category, COUNT(*) AS count FROM posts GROUP BY category`).
		WillReturnRows(rows)

	counts, err := repo.CountByCategory(context.Background())

	require.NoError(t, err)
	assert.Equal(t, map[string]int{"Ethics": 2, "Logic": 1}, counts)
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"philosophyPortal/internal/models"
)

type PostRepositoryImpl struct {
	db *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) *PostRepositoryImpl {
	return &PostRepositoryImpl{db: db}
}

func (r *PostRepositoryImpl) Create(ctx context.Context, post *models.Post) error {
	query := `
		INSERT INTO posts (post_id, name, title, content, category, time, replies)
		VALUES (:post_id, :name, :title, :content, :category, :time, :replies)
	`

	if post.Replies == nil {
		post.Replies = models.ReplyList{}
	}

	_, err := r.db.NamedExecContext(ctx, query, post)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key value") {
			// id выводится из миллисекундной метки времени, коллизия в пределах
			// одной миллисекунды всплывает здесь как нарушение первичного ключа
			return fmt.Errorf("пост с id %d уже существует: %w", post.PostID, err)
		}
		return fmt.Errorf("ошибка при создании поста: %w", err)
	}

	return nil
}

func (r *PostRepositoryImpl) GetByID(ctx context.Context, postID int64) (*models.Post, error) {
	query := `SELECT * FROM posts WHERE post_id = $1`

	var post models.Post
	err := r.db.GetContext(ctx, &post, query, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("пост с ID %d: %w", postID, models.ErrNotFound)
		}
		return nil, fmt.Errorf("ошибка при получении поста: %w", err)
	}

	return &post, nil
}

func (r *PostRepositoryImpl) GetAll(ctx context.Context) ([]models.Post, error) {
	query := `SELECT * FROM posts ORDER BY time DESC, post_id DESC`

	var posts []models.Post
	err := r.db.SelectContext(ctx, &posts, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении постов: %w", err)
	}

	if posts == nil {
		posts = []models.Post{}
	}

	return posts, nil
}

// Update перезаписывает строку поста целиком, включая JSONB-колонку replies.
// Два одновременных ответа на один пост могут потерять один из них
// (last-write-wins), хранимых транзакций и CAS здесь нет.
func (r *PostRepositoryImpl) Update(ctx context.Context, post *models.Post) error {
	query := `
		UPDATE posts SET
			title = :title,
			content = :content,
			category = :category,
			replies = :replies
		WHERE post_id = :post_id
	`

	result, err := r.db.NamedExecContext(ctx, query, post)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении поста: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("пост с ID %d: %w", post.PostID, models.ErrNotFound)
	}

	return nil
}

func (r *PostRepositoryImpl) CountByCategory(ctx context.Context) (map[string]int, error) {
	query := `SELECT category, COUNT(*) AS count FROM posts GROUP BY category`

	var rows []struct {
		Category string `db:"category"`
		Count    int    `db:"count"`
	}

	err := r.db.SelectContext(ctx, &rows, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка при подсчёте постов по категориям: %w", err)
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.Category] = row.Count
	}

	return counts, nil
}

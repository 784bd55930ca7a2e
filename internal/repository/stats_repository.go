package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type statsRepository struct {
	db *sqlx.DB
}

func NewStatsRepository(db *sqlx.DB) StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) CountUsers(ctx context.Context) (int, error) {
	var count int

	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM users`)
	if err != nil {
		return 0, fmt.Errorf("ошибка при подсчёте пользователей: %w", err)
	}

	return count, nil
}

func (r *statsRepository) CountPosts(ctx context.Context) (int, error) {
	var count int

	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM posts`)
	if err != nil {
		return 0, fmt.Errorf("ошибка при подсчёте постов: %w", err)
	}

	return count, nil
}

package repository

import (
	"context"
	"philosophyPortal/internal/models"
	"time"

	"github.com/jmoiron/sqlx"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User, password string) error
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	VerifyPassword(ctx context.Context, email, password string) (*models.User, error)
	UpdateRefreshToken(ctx context.Context, userID, refreshToken string, expiryTime time.Time) error
	GetUserByRefreshToken(ctx context.Context, refreshToken string) (*models.User, error)
}

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, postID int64) (*models.Post, error)
	GetAll(ctx context.Context) ([]models.Post, error)
	Update(ctx context.Context, post *models.Post) error
	CountByCategory(ctx context.Context) (map[string]int, error)
}

type QuoteRepository interface {
	Upsert(ctx context.Context, quote *models.Quote) error
	GetAll(ctx context.Context) ([]models.Quote, error)
	Count(ctx context.Context) (int, error)
}

type FavoriteRepository interface {
	GetByUserID(ctx context.Context, userID string) (models.StringSet, error)
	Save(ctx context.Context, userID string, quoteIDs models.StringSet) error
}

type ResourceRepository interface {
	Create(ctx context.Context, resource *models.Resource) error
	GetByID(ctx context.Context, resourceID string) (*models.Resource, error)
	GetAll(ctx context.Context) ([]models.Resource, error)
	Delete(ctx context.Context, resourceID string) error
}

type StatsRepository interface {
	CountUsers(ctx context.Context) (int, error)
	CountPosts(ctx context.Context) (int, error)
}

type Repository struct {
	User     UserRepository
	Post     PostRepository
	Quote    QuoteRepository
	Favorite FavoriteRepository
	Resource ResourceRepository
	Stats    StatsRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		User:     NewUserRepository(db),
		Post:     NewPostRepository(db),
		Quote:    NewQuoteRepository(db),
		Favorite: NewFavoriteRepository(db),
		Resource: NewResourceRepository(db),
		Stats:    NewStatsRepository(db),
	}
}

package test

import (
	"context"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"
	"philosophyPortal/internal/models"
	"philosophyPortal/internal/repository"
	"philosophyPortal/internal/service"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, req repository.CreateUserRequest) (*models.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*models.User, string, string, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, "", "", args.Error(3)
	}
	return args.Get(0).(*models.User), args.String(1), args.String(2), args.Error(3)
}

func (m *MockAuthService) RefreshTokens(ctx context.Context, refreshToken string) (*models.User, string, string, error) {
	args := m.Called(ctx, refreshToken)
	if args.Get(0) == nil {
		return nil, "", "", args.Error(3)
	}
	return args.Get(0).(*models.User), args.String(1), args.String(2), args.Error(3)
}

func (m *MockAuthService) ValidateToken(tokenString string) (*jwt.Token, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*jwt.Token), args.Error(1)
}

type MockForumService struct {
	mock.Mock
}

func (m *MockForumService) CreatePost(ctx context.Context, req service.CreatePostRequest) (*models.Post, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockForumService) ListPosts(ctx context.Context, search string) ([]models.Post, error) {
	args := m.Called(ctx, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *MockForumService) GetPost(ctx context.Context, postID int64) (*models.Post, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockForumService) AddReply(ctx context.Context, postID int64, email, content string) (*models.Post, error) {
	args := m.Called(ctx, postID, email, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockForumService) CategoryCounts(ctx context.Context) (map[string]int, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int), args.Error(1)
}

type MockQuoteService struct {
	mock.Mock
}

func (m *MockQuoteService) ImportQuotes(ctx context.Context, quotes []models.Quote) (int, error) {
	args := m.Called(ctx, quotes)
	return args.Int(0), args.Error(1)
}

func (m *MockQuoteService) ListQuotes(ctx context.Context) ([]models.Quote, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Quote), args.Error(1)
}

func (m *MockQuoteService) QuoteOfTheDay(ctx context.Context) (*models.Quote, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Quote), args.Error(1)
}

func (m *MockQuoteService) Favorites(ctx context.Context, userID string) (models.StringSet, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(models.StringSet), args.Error(1)
}

func (m *MockQuoteService) ToggleUserFavorite(ctx context.Context, userID, quoteID string) (models.StringSet, bool, error) {
	args := m.Called(ctx, userID, quoteID)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(models.StringSet), args.Bool(1), args.Error(2)
}

type MockStatsService struct {
	mock.Mock
}

func (m *MockStatsService) PortalStats(ctx context.Context) (*models.PortalStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PortalStats), args.Error(1)
}

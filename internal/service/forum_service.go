package service

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"philosophyPortal/internal/models"
	"philosophyPortal/internal/repository"
)

const timeLayout = "2006-01-02 15:04:05"

// Categories - фиксированный список рубрик форума
var Categories = []string{"Ethics", "Metaphysics", "Logic", "Politics", "Aesthetics", "Other"}

type CreatePostRequest struct {
	Email    string `json:"email"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	Category string `json:"category"`
}

type ForumService interface {
	CreatePost(ctx context.Context, req CreatePostRequest) (*models.Post, error)
	ListPosts(ctx context.Context, search string) ([]models.Post, error)
	GetPost(ctx context.Context, postID int64) (*models.Post, error)
	AddReply(ctx context.Context, postID int64, email, content string) (*models.Post, error)
	CategoryCounts(ctx context.Context) (map[string]int, error)
}

type forumService struct {
	postRepo repository.PostRepository
}

func NewForumService(postRepo repository.PostRepository) ForumService {
	return &forumService{postRepo: postRepo}
}

func (s *forumService) CreatePost(ctx context.Context, req CreatePostRequest) (*models.Post, error) {
	title := strings.TrimSpace(req.Title)
	content := strings.TrimSpace(req.Content)

	if title == "" || content == "" {
		return nil, fmt.Errorf("заголовок и содержание обязательны: %w", models.ErrValidation)
	}

	category := req.Category
	if category == "" {
		category = "Other"
	}
	if !slices.Contains(Categories, category) {
		return nil, fmt.Errorf("неизвестная категория %q: %w", req.Category, models.ErrValidation)
	}

	now := time.Now()
	post := &models.Post{
		// id из миллисекундной метки времени; уникальность в пределах одной
		// миллисекунды не гарантируется, коллизию отловит первичный ключ
		PostID:   now.UnixMilli(),
		Name:     displayName(req.Email),
		Title:    title,
		Content:  content,
		Category: category,
		Time:     now.Format(timeLayout),
		Replies:  models.ReplyList{},
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

// ListPosts отдаёт посты от новых к старым; search фильтрует по подстроке
// в заголовке или содержании без учёта регистра.
func (s *forumService) ListPosts(ctx context.Context, search string) ([]models.Post, error) {
	posts, err := s.postRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	if search == "" {
		return posts, nil
	}

	needle := strings.ToLower(search)
	filtered := make([]models.Post, 0, len(posts))
	for _, p := range posts {
		if strings.Contains(strings.ToLower(p.Title), needle) ||
			strings.Contains(strings.ToLower(p.Content), needle) {
			filtered = append(filtered, p)
		}
	}

	return filtered, nil
}

func (s *forumService) GetPost(ctx context.Context, postID int64) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, postID)
}

// AddReply дочитывает пост, добавляет ответ в конец и перезаписывает пост
// целиком. Если поста нет, ничего не пишется.
func (s *forumService) AddReply(ctx context.Context, postID int64, email, content string) (*models.Post, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("содержание ответа обязательно: %w", models.ErrValidation)
	}

	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	post.Replies = append(post.Replies, models.Reply{
		Name:    displayName(email),
		Content: content,
		Time:    time.Now().Format(timeLayout),
	})

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

// CategoryCounts - количество постов по каждой рубрике, включая пустые.
func (s *forumService) CategoryCounts(ctx context.Context) (map[string]int, error) {
	counts, err := s.postRepo.CountByCategory(ctx)
	if err != nil {
		return nil, err
	}

	for _, c := range Categories {
		if _, ok := counts[c]; !ok {
			counts[c] = 0
		}
	}

	return counts, nil
}

package service

import (
	"fmt"
	"net/url"

	"philosophyPortal/internal/models"
)

type VideoService interface {
	ListVideos() []models.Video
}

type videoService struct{}

func NewVideoService() VideoService {
	return &videoService{}
}

// Кураторский список репортажей; портал не хранит видео, только ссылки
var reportages = []models.Video{
	{Title: "Understanding Nietzsche: Philosophy in Modern Times", URL: "https://www.youtube.com/watch?v=fLJBzhcSWTk"},
	{Title: "Existentialism Explained: Key Concepts of Jean-Paul Sartre", URL: "https://www.youtube.com/watch?v=VtP-N9pqoKk"},
	{Title: "The Philosophy of Absurdism: Albert Camus and the Absurd", URL: "https://www.youtube.com/watch?v=DTRJx1d4eks"},
	{Title: "Nietzsche's Will to Power: An In-depth Analysis", URL: "https://www.youtube.com/watch?v=bb7Q8Wu1HNA"},
	{Title: "Heidegger and Being: Exploring the Concept of Being", URL: "https://www.youtube.com/watch?v=0-yvwlKTTbk"},
}

func (s *videoService) ListVideos() []models.Video {
	videos := make([]models.Video, 0, len(reportages))
	for _, v := range reportages {
		v.VideoID = youtubeVideoID(v.URL)
		if v.VideoID != "" {
			v.Thumbnail = fmt.Sprintf("https://img.youtube.com/vi/%s/hqdefault.jpg", v.VideoID)
		}
		videos = append(videos, v)
	}
	return videos
}

// youtubeVideoID достаёт id ролика из query-параметра v; для ссылок без него
// возвращает пустую строку.
func youtubeVideoID(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Query().Get("v")
}

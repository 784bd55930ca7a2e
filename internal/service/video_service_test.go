package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYoutubeVideoID(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{"Обычная ссылка", "https://www.youtube.com/watch?v=fLJBzhcSWTk", "fLJBzhcSWTk"},
		{"Ссылка с дополнительными параметрами", "https://www.youtube.com/watch?t=10&v=abc123", "abc123"},
		{"Ссылка без параметра v", "https://www.youtube.com/playlist?list=PL123", ""},
		{"Не-youtube ссылка", "https://example.com/video", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, youtubeVideoID(tt.url))
		})
	}
}

func TestListVideos(t *testing.T) {
	svc := NewVideoService()

	videos := svc.ListVideos()
	require.NotEmpty(t, videos)

	for _, v := range videos {
		assert.NotEmpty(t, v.Title)
		assert.NotEmpty(t, v.VideoID)
		assert.Equal(t, "https://img.youtube.com/vi/"+v.VideoID+"/hqdefault.jpg", v.Thumbnail)
	}
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "plato", displayName("plato@academy.gr"))
	assert.Equal(t, "no-at-sign", displayName("no-at-sign"))
}

package test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"philosophyPortal/internal/config"
	handlers "philosophyPortal/internal/handler"
	"philosophyPortal/internal/models"
)

func TestGetStatsHandler(t *testing.T) {
	stats := new(MockStatsService)
	h := &handlers.Handlers{
		StatsService: stats,
		Cfg:          &config.Config{},
		Validate:     validator.New(),
	}

	stats.On("PortalStats", mock.Anything).Return(&models.PortalStats{
		Posts:      12,
		Users:      5,
		Quotes:     40,
		Categories: 6,
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
	rr := httptest.NewRecorder()

	h.GetStats(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var got models.PortalStats
	err := json.Unmarshal(rr.Body.Bytes(), &got)
	assert.NoError(t, err)
	assert.Equal(t, 12, got.Posts)
	assert.Equal(t, 40, got.Quotes)
}

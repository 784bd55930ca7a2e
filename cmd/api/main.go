package main

import (
	"fmt"
	"log"
	"net/http"
	"philosophyPortal/cmd/app"
	"philosophyPortal/internal/config"
	handlers "philosophyPortal/internal/handler"
	"philosophyPortal/internal/middleware"

	"github.com/gorilla/mux"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()

	if cfg.JWTSecretKey == "" {
		log.Fatal("JWT_SECRET_KEY не установлен в .env файле")
	}

	db, repo, services := app.App(cfg)
	defer db.CloseDB()

	handler := handlers.NewHandlers(repo, services, cfg)

	r := mux.NewRouter()

	// setting up routes
	r.HandleFunc("/", handlers.HomeHandler).Methods(http.MethodGet)
	r.HandleFunc("/health", handlers.HealthHandler).Methods(http.MethodGet)

	r.HandleFunc("/api/auth/register", handler.Register).Methods(http.MethodPost)
	r.HandleFunc("/api/auth/login", handler.Login).Methods(http.MethodPost)
	r.HandleFunc("/api/auth/refresh-token", handler.RefreshToken).Methods(http.MethodPost)

	r.HandleFunc("/api/me", handler.GetCurrentUser).Methods(http.MethodGet)

	r.HandleFunc("/api/posts", handler.GetPosts).Methods(http.MethodGet)
	r.HandleFunc("/api/posts", handler.CreatePost).Methods(http.MethodPost)
	r.HandleFunc("/api/posts/{id:[0-9]+}", handler.GetPost).Methods(http.MethodGet)
	r.HandleFunc("/api/posts/{id:[0-9]+}/replies", handler.AddReply).Methods(http.MethodPost)

	r.HandleFunc("/api/quotes", handler.GetQuotes).Methods(http.MethodGet)
	r.HandleFunc("/api/quotes/daily", handler.QuoteOfTheDay).Methods(http.MethodGet)
	r.HandleFunc("/api/quotes/{id}/favorite", handler.ToggleFavorite).Methods(http.MethodPost)
	r.HandleFunc("/api/favorites", handler.GetFavorites).Methods(http.MethodGet)

	r.HandleFunc("/api/videos", handler.GetVideos).Methods(http.MethodGet)

	r.HandleFunc("/api/resources", handler.GetResources).Methods(http.MethodGet)
	r.HandleFunc("/api/resources", handler.UploadResource).Methods(http.MethodPost)
	r.HandleFunc("/api/resources/{id}/link", handler.ResourceLink).Methods(http.MethodGet)
	r.HandleFunc("/api/resources/{id}", handler.DeleteResource).Methods(http.MethodDelete)

	r.HandleFunc("/api/stats", handler.GetStats).Methods(http.MethodGet)
	r.HandleFunc("/api/stats/categories", handler.GetCategoryCounts).Methods(http.MethodGet)

	handlerChain := middleware.Chain(
		r,
		middleware.LoggingMiddleware,
		middleware.CORSMiddleware,
		middleware.AuthMiddleware(cfg),
	)

	// Starting the server
	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	fmt.Printf("Сервер запущен на %s\n", addr)
	fmt.Printf("База данных: %s\n", cfg.DB.DbNAME)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		log.Fatalf("Ошибка запуска сервера: %v", err)
	}
}

package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"

	"philosophyPortal/internal/config"
	"philosophyPortal/internal/database"
	"philosophyPortal/internal/models"
	"philosophyPortal/internal/repository"
	"philosophyPortal/internal/service"
)

// Одноразовый импорт цитат из JSON-файла [{text, author}, ...].
// Идентификатор каждой цитаты выводится из содержимого, поэтому повторный
// запуск на том же файле не создаёт дубликатов.
func main() {
	filePath := flag.String("file", "", "путь к JSON-файлу с цитатами")
	flag.Parse()

	cfg := config.LoadConfig()
	if *filePath == "" {
		*filePath = cfg.QuotesFile
	}

	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Не удалось подключиться к БД: %v", err)
	}
	defer db.CloseDB()

	repo := repository.NewRepository(db.DB)
	quoteService := service.NewQuoteService(repo.Quote, repo.Favorite)

	data, err := os.ReadFile(*filePath)
	if err != nil {
		log.Fatalf("Ошибка чтения файла %s: %v", *filePath, err)
	}

	var quotes []models.Quote
	if err := json.Unmarshal(data, &quotes); err != nil {
		log.Fatalf("Ошибка разбора JSON: %v", err)
	}

	imported, err := quoteService.ImportQuotes(context.Background(), quotes)
	if err != nil {
		log.Fatalf("Импорт прерван после %d цитат: %v", imported, err)
	}

	log.Printf("Импортировано цитат: %d", imported)
}

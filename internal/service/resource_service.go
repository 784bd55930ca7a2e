package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"philosophyPortal/internal/models"
	"philosophyPortal/internal/repository"
	"philosophyPortal/internal/storage"
)

type ResourceService interface {
	Upload(ctx context.Context, fileName string, file io.Reader, size int64) (*models.Resource, error)
	List(ctx context.Context) ([]models.Resource, error)
	DownloadLink(ctx context.Context, resourceID string) (string, error)
	Delete(ctx context.Context, resourceID string) error
}

type resourceService struct {
	resourceRepo repository.ResourceRepository
	storage      storage.Storage
}

func NewResourceService(resourceRepo repository.ResourceRepository, storage storage.Storage) ResourceService {
	return &resourceService{
		resourceRepo: resourceRepo,
		storage:      storage,
	}
}

func (s *resourceService) Upload(ctx context.Context, fileName string, file io.Reader, size int64) (*models.Resource, error) {
	if strings.TrimSpace(fileName) == "" {
		return nil, fmt.Errorf("имя файла обязательно: %w", models.ErrValidation)
	}

	objectName, contentType, err := s.storage.UploadResource(ctx, fileName, file, size)
	if err != nil {
		return nil, fmt.Errorf("ошибка загрузки ресурса в MinIO: %w", err)
	}

	resource := &models.Resource{
		ResourceID:  uuid.New().String(),
		Name:        fileName,
		ObjectName:  objectName,
		ContentType: contentType,
		Size:        size,
		UploadedAt:  time.Now(),
	}

	err = s.resourceRepo.Create(ctx, resource)
	if err != nil {
		s.storage.DeleteResource(ctx, objectName)
		return nil, fmt.Errorf("ошибка сохранения ресурса в БД: %w", err)
	}

	return resource, nil
}

func (s *resourceService) List(ctx context.Context) ([]models.Resource, error) {
	return s.resourceRepo.GetAll(ctx)
}

func (s *resourceService) DownloadLink(ctx context.Context, resourceID string) (string, error) {
	resource, err := s.resourceRepo.GetByID(ctx, resourceID)
	if err != nil {
		return "", err
	}

	return s.storage.PresignedURL(ctx, resource.ObjectName, resource.Name)
}

func (s *resourceService) Delete(ctx context.Context, resourceID string) error {
	resource, err := s.resourceRepo.GetByID(ctx, resourceID)
	if err != nil {
		return err
	}

	if err := s.storage.DeleteResource(ctx, resource.ObjectName); err != nil {
		log.Printf("Предупреждение: не удалось удалить объект из MinIO: %v", err)
	}

	return s.resourceRepo.Delete(ctx, resourceID)
}

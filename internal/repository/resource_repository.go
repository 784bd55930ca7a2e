package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"philosophyPortal/internal/models"
)

type ResourceRepositoryImpl struct {
	db *sqlx.DB
}

func NewResourceRepository(db *sqlx.DB) *ResourceRepositoryImpl {
	return &ResourceRepositoryImpl{db: db}
}

func (r *ResourceRepositoryImpl) Create(ctx context.Context, resource *models.Resource) error {
	query := `
		INSERT INTO resources (resource_id, name, object_name, content_type, size, uploaded_at)
		VALUES (:resource_id, :name, :object_name, :content_type, :size, :uploaded_at)
	`

	if resource.ResourceID == "" {
		resource.ResourceID = uuid.New().String()
	}

	if resource.UploadedAt.IsZero() {
		resource.UploadedAt = time.Now()
	}

	_, err := r.db.NamedExecContext(ctx, query, resource)
	if err != nil {
		return fmt.Errorf("ошибка при создании ресурса: %w", err)
	}

	return nil
}

func (r *ResourceRepositoryImpl) GetByID(ctx context.Context, resourceID string) (*models.Resource, error) {
	query := `SELECT * FROM resources WHERE resource_id = $1`

	var resource models.Resource
	err := r.db.GetContext(ctx, &resource, query, resourceID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("ресурс с ID %s: %w", resourceID, models.ErrNotFound)
		}
		return nil, fmt.Errorf("ошибка при получении ресурса: %w", err)
	}

	return &resource, nil
}

func (r *ResourceRepositoryImpl) GetAll(ctx context.Context) ([]models.Resource, error) {
	query := `SELECT * FROM resources ORDER BY uploaded_at DESC`

	var resources []models.Resource
	err := r.db.SelectContext(ctx, &resources, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении ресурсов: %w", err)
	}

	if resources == nil {
		resources = []models.Resource{}
	}

	return resources, nil
}

func (r *ResourceRepositoryImpl) Delete(ctx context.Context, resourceID string) error {
	query := `DELETE FROM resources WHERE resource_id = $1`

	result, err := r.db.ExecContext(ctx, query, resourceID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении ресурса: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("ресурс с ID %s: %w", resourceID, models.ErrNotFound)
	}

	return nil
}

package storage

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"philosophyPortal/internal/config"

	"github.com/google/uuid"
)

type Storage interface {
	UploadResource(ctx context.Context, fileName string, file io.Reader, size int64) (string, string, error)
	PresignedURL(ctx context.Context, objectName, fileName string) (string, error)
	DeleteResource(ctx context.Context, objectName string) error
}

type MinIOClient struct {
	client *minio.Client
	config *config.Config
}

func NewMinIOClient(cfg *config.Config) (*MinIOClient, error) {
	client, err := minio.New(cfg.MinIO.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinIO.AccessKey, cfg.MinIO.SecretKey, ""),
		Secure: cfg.MinIO.UseSSL,
		Region: cfg.MinIO.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("ошибка создания клиента MinIO: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, cfg.MinIO.BucketName)
	if err != nil {
		return nil, fmt.Errorf("ошибка проверки bucket: %w", err)
	}

	if !exists {
		err = client.MakeBucket(ctx, cfg.MinIO.BucketName, minio.MakeBucketOptions{Region: cfg.MinIO.Region})
		if err != nil {
			return nil, fmt.Errorf("ошибка создания bucket %s: %w", cfg.MinIO.BucketName, err)
		}
	}

	return &MinIOClient{client: client, config: cfg}, nil
}

// UploadResource кладёт документ в bucket и возвращает имя объекта и content type.
func (m *MinIOClient) UploadResource(ctx context.Context, fileName string, file io.Reader, size int64) (string, string, error) {
	fileExt := strings.ToLower(filepath.Ext(fileName))
	if fileExt == "" {
		fileExt = ".pdf"
	}

	contentType := mime.TypeByExtension(fileExt)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	now := time.Now()
	objectName := fmt.Sprintf("resources/%d/%02d/%s%s",
		now.Year(),
		now.Month(),
		uuid.New().String(),
		fileExt)

	_, err := m.client.PutObject(ctx, m.config.MinIO.BucketName, objectName, file, size,
		minio.PutObjectOptions{
			ContentType: contentType,
			UserMetadata: map[string]string{
				"original-filename": fileName,
				"uploaded-at":       now.Format(time.RFC3339),
			},
		})
	if err != nil {
		return "", "", fmt.Errorf("ошибка загрузки в MinIO: %w", err)
	}

	return objectName, contentType, nil
}

// PresignedURL выдаёт временную ссылку на скачивание с исходным именем файла.
func (m *MinIOClient) PresignedURL(ctx context.Context, objectName, fileName string) (string, error) {
	reqParams := make(url.Values)
	reqParams.Set("response-content-disposition", fmt.Sprintf(`attachment; filename="%s"`, fileName))

	presignedURL, err := m.client.PresignedGetObject(ctx, m.config.MinIO.BucketName, objectName,
		m.config.MinIO.URLExpiry, reqParams)
	if err != nil {
		return "", fmt.Errorf("ошибка создания presigned URL: %w", err)
	}

	return presignedURL.String(), nil
}

func (m *MinIOClient) DeleteResource(ctx context.Context, objectName string) error {
	err := m.client.RemoveObject(ctx, m.config.MinIO.BucketName, objectName,
		minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("ошибка удаления из MinIO: %w", err)
	}
	return nil
}

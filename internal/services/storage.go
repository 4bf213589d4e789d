package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"alfredoptarigan/resume-screener/internal/config"
	"alfredoptarigan/resume-screener/internal/intake"
	"alfredoptarigan/resume-screener/internal/models"
)

// StorageService is the local object store behind the upload endpoint. Files
// are served back under /uploads so the pipeline can download them by URL.
type StorageService interface {
	SaveFile(file *multipart.FileHeader) (*models.UploadResponse, error)
	PublicURL(storedName string) string
	GetFilePath(storedName string) string
	EnsureUploadDir() error
}

type storageService struct {
	uploadPath    string
	publicBaseURL string
}

func NewStorageService(cfg config.StorageConfig) StorageService {
	return &storageService{
		uploadPath:    cfg.UploadPath,
		publicBaseURL: cfg.PublicBaseURL,
	}
}

func (s *storageService) EnsureUploadDir() error {
	if err := os.MkdirAll(s.uploadPath, 0755); err != nil {
		return fmt.Errorf("failed to create upload directory: %w", err)
	}

	return nil
}

func (s *storageService) SaveFile(file *multipart.FileHeader) (*models.UploadResponse, error) {
	if err := intake.ValidateFile(file.Filename, file.Size); err != nil {
		return nil, err
	}

	storedName := fmt.Sprintf("%s.%s", uuid.New().String(), intake.Extension(file.Filename))
	filePath := s.GetFilePath(storedName)

	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	if err := writeFile(filePath, src); err != nil {
		return nil, err
	}

	return &models.UploadResponse{
		FileName:   file.Filename,
		StoredName: storedName,
		FileURL:    s.PublicURL(storedName),
		Size:       file.Size,
	}, nil
}

// writeFile copies src to path and removes the partial file on any failure.
func writeFile(path string, src io.Reader) error {
	dst, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create destination file: %w", err)
	}

	_, copyErr := io.Copy(dst, src)
	closeErr := dst.Close()

	if copyErr != nil || closeErr != nil {
		_ = os.Remove(path)
		if copyErr != nil {
			return fmt.Errorf("failed to save file: %w", copyErr)
		}
		return fmt.Errorf("failed to close destination file: %w", closeErr)
	}

	return nil
}

func (s *storageService) PublicURL(storedName string) string {
	return fmt.Sprintf("%s/uploads/%s", s.publicBaseURL, storedName)
}

func (s *storageService) GetFilePath(storedName string) string {
	return filepath.Join(s.uploadPath, filepath.Base(storedName))
}

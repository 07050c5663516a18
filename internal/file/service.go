// File: internal/file/service.go
package file

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"cadastro_backend/internal/config"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service stores uploaded files on disk and tracks them in the database.
type Service struct {
	repo        Repository
	storagePath string
	logger      *zap.Logger
}

// NewService creates the file service and ensures the storage directory exists.
func NewService(repo Repository, cfg *config.Config, logger *zap.Logger) (*Service, error) {
	if cfg.FileStoragePath == "" {
		return nil, fmt.Errorf("file storage path cannot be empty")
	}
	if err := os.MkdirAll(cfg.FileStoragePath, os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create storage path %s: %w", cfg.FileStoragePath, err)
	}
	return &Service{repo: repo, storagePath: cfg.FileStoragePath, logger: logger}, nil
}

// Store saves an uploaded file under a unique name and records it.
func (s *Service) Store(ctx context.Context, fileHeader *multipart.FileHeader) (*File, error) {
	if fileHeader == nil {
		return nil, fmt.Errorf("fileHeader cannot be nil")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	originalName := filepath.Base(fileHeader.Filename)
	extension := filepath.Ext(originalName)
	if extension == "" {
		contentType := fileHeader.Header.Get("Content-Type")
		switch {
		case strings.HasPrefix(contentType, "image/jpeg"):
			extension = ".jpg"
		case strings.HasPrefix(contentType, "image/png"):
			extension = ".png"
		case strings.HasPrefix(contentType, "image/gif"):
			extension = ".gif"
		default:
			return nil, fmt.Errorf("unsupported file type or missing extension: %s", contentType)
		}
	}
	storedName := uuid.New().String() + extension
	destinationPath := filepath.Join(s.storagePath, storedName)

	dst, err := os.Create(destinationPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create file %s: %w", destinationPath, err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, src); err != nil {
		os.Remove(destinationPath)
		return nil, fmt.Errorf("failed to save file: %w", err)
	}

	record := &File{Name: originalName, Path: storedName}
	if err := s.repo.Create(ctx, record); err != nil {
		os.Remove(destinationPath)
		s.logger.Error("Failed to persist file record", zap.String("path", storedName), zap.Error(err))
		return nil, err
	}

	s.logger.Info("File stored", zap.String("id", record.ID.String()), zap.String("path", storedName))
	return record, nil
}

// PurgeOrphans deletes file records (and their bytes on disk) that no user
// references and that are older than one day. Returns how many were removed.
func (s *Service) PurgeOrphans(ctx context.Context) (int, error) {
	cutoff := time.Now().Add(-24 * time.Hour)
	orphans, err := s.repo.FindOrphans(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	purged := 0
	for i := range orphans {
		orphan := &orphans[i]
		fullPath := filepath.Join(s.storagePath, filepath.Clean(orphan.Path))
		if err := os.Remove(fullPath); err != nil && !os.IsNotExist(err) {
			s.logger.Warn("Failed to remove orphan file from disk",
				zap.String("path", fullPath), zap.Error(err))
			continue
		}
		if err := s.repo.Delete(ctx, orphan.ID); err != nil {
			s.logger.Error("Failed to delete orphan file record",
				zap.String("id", orphan.ID.String()), zap.Error(err))
			continue
		}
		purged++
	}
	return purged, nil
}

package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"homepro_backend/internal/imageprocessor"
	"homepro_backend/internal/logger"
	"homepro_backend/internal/repositories"
	"homepro_backend/internal/services/dto"
	"homepro_backend/internal/storage"
	"homepro_backend/pkg/apperrors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const maxPortfolioImages = 20

type UploadService interface {
	UploadPortfolioImage(ctx context.Context, db *gorm.DB, userID, filename string, reader io.Reader) (*dto.PortfolioImageResponse, error)
	DeletePortfolioImage(ctx context.Context, db *gorm.DB, userID string, imageID uint) error
}

type UploadServiceImpl struct {
	providerRepo repositories.ProviderRepository
	store        storage.Storage
	processor    *imageprocessor.Processor
}

func NewUploadService(
	providerRepo repositories.ProviderRepository,
	store storage.Storage,
	processor *imageprocessor.Processor,
) UploadService {
	return &UploadServiceImpl{
		providerRepo: providerRepo,
		store:        store,
		processor:    processor,
	}
}

// UploadPortfolioImage обрабатывает изображение, кладет его в хранилище
// и добавляет в конец портфолио провайдера.
func (s *UploadServiceImpl) UploadPortfolioImage(ctx context.Context, db *gorm.DB, userID, filename string, reader io.Reader) (*dto.PortfolioImageResponse, error) {
	provider, err := s.providerRepo.FindByUserID(db, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrProviderNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.DatabaseError(err)
	}
	if len(provider.PortfolioImages) >= maxPortfolioImages {
		return nil, apperrors.ErrInvalidOperation("upload",
			fmt.Sprintf("portfolio is limited to %d images", maxPortfolioImages))
	}

	processed, ext, err := s.processor.Process(reader, imageprocessor.SizeDisplay)
	if err != nil {
		return nil, apperrors.NewBadRequestError("invalid image: " + err.Error())
	}

	path := fmt.Sprintf("providers/%s/portfolio/%s.%s", userID, uuid.New().String(), ext)
	if err := s.store.Save(ctx, path, processed, contentTypeFor(ext)); err != nil {
		return nil, apperrors.InternalError(err)
	}

	url, err := s.store.GetURL(ctx, path)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	row, err := s.providerRepo.AddPortfolioImage(db, userID, url)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	logger.Info("✅ Portfolio image uploaded", "user_id", userID, "path", path)

	return &dto.PortfolioImageResponse{
		ID:       row.ID,
		ImageURL: row.ImageURL,
		Position: row.Position,
	}, nil
}

// DeletePortfolioImage убирает изображение из портфолио и из хранилища.
// Файл в хранилище удаляется по возможности, ошибка не фатальна.
func (s *UploadServiceImpl) DeletePortfolioImage(ctx context.Context, db *gorm.DB, userID string, imageID uint) error {
	row, err := s.providerRepo.RemovePortfolioImage(db, userID, imageID)
	if err != nil {
		if errors.Is(err, repositories.ErrProviderNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.DatabaseError(err)
	}

	if path, ok := storagePathFromURL(row.ImageURL); ok {
		if err := s.store.Delete(ctx, path); err != nil {
			logger.WithError(err).Warn("Failed to delete portfolio file", "path", path)
		}
	}
	return nil
}

func contentTypeFor(ext string) string {
	if ext == "png" {
		return "image/png"
	}
	return "image/jpeg"
}

// storagePathFromURL восстанавливает ключ хранилища из публичного URL
func storagePathFromURL(url string) (string, bool) {
	idx := strings.Index(url, "providers/")
	if idx < 0 {
		return "", false
	}
	return url[idx:], true
}

package service

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pageza/mealprep/backend/internal/models"
)

// MaxImageSize is the largest meal picture accepted.
const MaxImageSize = 5 << 20

var imageExtensions = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/webp": "webp",
}

// ImageService uploads meal pictures to object storage.
type ImageService struct {
	store  ObjectStore
	meals  IMealService
	logger *zap.Logger
}

// NewImageService creates a new ImageService instance. A nil store disables
// uploads.
func NewImageService(store ObjectStore, meals IMealService, logger *zap.Logger) *ImageService {
	return &ImageService{store: store, meals: meals, logger: logger}
}

// UploadMealImage stores the picture under the meal and records its URL.
// The declared content type must agree with the bytes.
func (s *ImageService) UploadMealImage(ctx context.Context, userID uuid.UUID, mealID uint, contentType string, data []byte) (*models.Meal, error) {
	if s.store == nil {
		return nil, ErrStorageUnavailable
	}
	if len(data) > MaxImageSize {
		return nil, ErrImageTooLarge
	}

	declared := strings.ToLower(strings.TrimSpace(strings.Split(contentType, ";")[0]))
	ext, ok := imageExtensions[declared]
	if !ok || len(data) == 0 || http.DetectContentType(data) != declared {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedImage, contentType)
	}

	if _, err := s.meals.GetMeal(ctx, userID, mealID); err != nil {
		return nil, err
	}

	key := fmt.Sprintf("meal-images/%s/%d/%s.%s", userID, mealID, uuid.New(), ext)
	url, err := s.store.PutObject(ctx, key, declared, data)
	if err != nil {
		s.logger.Error("failed to upload meal image", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	return s.meals.SetMealImage(ctx, userID, mealID, url)
}

package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pageza/mealprep/backend/internal/mocks"
	"github.com/pageza/mealprep/backend/internal/service"
	"github.com/pageza/mealprep/backend/internal/testhelpers"
)

var pngBytes = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01")

func TestUploadMealImage(t *testing.T) {
	db := testhelpers.SetupSQLite(t)
	user := testhelpers.CreateUser(t, db, "cook@example.com")
	meal := testhelpers.CreateMeal(t, db, user.ID, "Pasta", testhelpers.Item{Name: "Tomato", Quantity: "2"})
	meals := service.NewMealService(db, zap.NewNop())

	store := new(mocks.MockObjectStore)
	keyPrefix := "meal-images/" + user.ID.String() + "/"
	store.On("PutObject", mock.Anything, mock.MatchedBy(func(key string) bool {
		return strings.HasPrefix(key, keyPrefix) && strings.HasSuffix(key, ".png")
	}), "image/png", pngBytes).Return("https://bucket.s3.us-east-1.amazonaws.com/pasta.png", nil)

	svc := service.NewImageService(store, meals, zap.NewNop())
	updated, err := svc.UploadMealImage(context.Background(), user.ID, meal.ID, "image/png", pngBytes)
	require.NoError(t, err)
	assert.Equal(t, "https://bucket.s3.us-east-1.amazonaws.com/pasta.png", updated.ImageURL)
	store.AssertExpectations(t)
}

func TestUploadMealImageRejects(t *testing.T) {
	db := testhelpers.SetupSQLite(t)
	user := testhelpers.CreateUser(t, db, "cook@example.com")
	meal := testhelpers.CreateMeal(t, db, user.ID, "Pasta", testhelpers.Item{Name: "Tomato", Quantity: "2"})
	meals := service.NewMealService(db, zap.NewNop())
	store := new(mocks.MockObjectStore)
	svc := service.NewImageService(store, meals, zap.NewNop())
	ctx := context.Background()

	_, err := svc.UploadMealImage(ctx, user.ID, meal.ID, "image/gif", []byte("GIF89a"))
	assert.ErrorIs(t, err, service.ErrUnsupportedImage)

	_, err = svc.UploadMealImage(ctx, user.ID, meal.ID, "image/jpeg", pngBytes)
	assert.ErrorIs(t, err, service.ErrUnsupportedImage, "declared type must match the bytes")

	_, err = svc.UploadMealImage(ctx, user.ID, meal.ID, "image/png", make([]byte, service.MaxImageSize+1))
	assert.ErrorIs(t, err, service.ErrImageTooLarge)

	_, err = svc.UploadMealImage(ctx, uuid.New(), meal.ID, "image/png", pngBytes)
	assert.ErrorIs(t, err, service.ErrMealNotFound)

	store.AssertNotCalled(t, "PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything)

	disabled := service.NewImageService(nil, meals, zap.NewNop())
	_, err = disabled.UploadMealImage(ctx, user.ID, meal.ID, "image/png", pngBytes)
	assert.ErrorIs(t, err, service.ErrStorageUnavailable)
}

func TestUploadMealImageStoreFailure(t *testing.T) {
	db := testhelpers.SetupSQLite(t)
	user := testhelpers.CreateUser(t, db, "cook@example.com")
	meal := testhelpers.CreateMeal(t, db, user.ID, "Pasta", testhelpers.Item{Name: "Tomato", Quantity: "2"})

	store := new(mocks.MockObjectStore)
	store.On("PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("", errors.New("access denied"))

	svc := service.NewImageService(store, service.NewMealService(db, zap.NewNop()), zap.NewNop())
	_, err := svc.UploadMealImage(context.Background(), user.ID, meal.ID, "image/png", pngBytes)
	assert.ErrorIs(t, err, service.ErrStorageUnavailable)
}

package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pageza/mealprep/backend/internal/service"
	"github.com/pageza/mealprep/backend/internal/types"
)

type MealHandler struct {
	meals  service.IMealService
	images service.IImageService
	logger *zap.Logger
}

func NewMealHandler(meals service.IMealService, images service.IImageService, logger *zap.Logger) *MealHandler {
	return &MealHandler{meals: meals, images: images, logger: logger}
}

func (h *MealHandler) ListMeals(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	meals, err := h.meals.ListMeals(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"meals": meals})
}

func (h *MealHandler) GetMeal(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	mealID, ok := idParam(c, "id")
	if !ok {
		return
	}

	meal, err := h.meals.GetMeal(c.Request.Context(), userID, mealID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"meal": meal})
}

func (h *MealHandler) CreateMeal(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req types.MealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, bindingMessage(err))
		return
	}

	meal, err := h.meals.CreateMeal(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"meal": meal})
}

func (h *MealHandler) UpdateMeal(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	mealID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req types.MealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, bindingMessage(err))
		return
	}

	meal, err := h.meals.UpdateMeal(c.Request.Context(), userID, mealID, &req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"meal": meal})
}

func (h *MealHandler) DeleteMeal(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	mealID, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.meals.DeleteMeal(c.Request.Context(), userID, mealID); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// UploadImage accepts a multipart "image" field and attaches it to the meal.
func (h *MealHandler) UploadImage(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	mealID, ok := idParam(c, "id")
	if !ok {
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, service.MaxImageSize+1<<20)
	fileHeader, err := c.FormFile("image")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			respondError(c, h.logger, service.ErrImageTooLarge)
			return
		}
		abortWithError(c, http.StatusBadRequest, "image file is required")
		return
	}
	if fileHeader.Size > service.MaxImageSize {
		respondError(c, h.logger, service.ErrImageTooLarge)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "failed to read image")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, service.MaxImageSize+1))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "failed to read image")
		return
	}

	meal, err := h.images.UploadMealImage(c.Request.Context(), userID, mealID, fileHeader.Header.Get("Content-Type"), data)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"meal": meal})
}

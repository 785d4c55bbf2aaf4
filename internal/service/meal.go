package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/pageza/mealprep/backend/internal/models"
	"github.com/pageza/mealprep/backend/internal/types"
)

// MealService manages a user's meal library and the shared ingredient catalog.
type MealService struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewMealService creates a new MealService instance
func NewMealService(db *gorm.DB, logger *zap.Logger) *MealService {
	return &MealService{db: db, logger: logger}
}

func orderByPosition(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

// CreateMeal stores a meal and links its ingredients, adding unknown names to
// the catalog.
func (s *MealService) CreateMeal(ctx context.Context, userID uuid.UUID, req *types.MealRequest) (*models.Meal, error) {
	name, items, err := normalizeMeal(req)
	if err != nil {
		return nil, err
	}

	meal := &models.Meal{
		UserID:      userID,
		Name:        name,
		Description: strings.TrimSpace(req.Description),
	}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(meal).Error; err != nil {
			return err
		}
		return linkIngredients(tx, meal.ID, items)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create meal: %w", err)
	}

	s.logger.Debug("meal created",
		zap.String("user_id", userID.String()),
		zap.Uint("meal_id", meal.ID),
		zap.Int("ingredients", len(items)),
	)
	return s.GetMeal(ctx, userID, meal.ID)
}

// GetMeal returns one of the user's meals with its ingredients in entry order.
func (s *MealService) GetMeal(ctx context.Context, userID uuid.UUID, mealID uint) (*models.Meal, error) {
	var meal models.Meal
	err := s.db.WithContext(ctx).
		Preload("Ingredients", orderByPosition).
		Preload("Ingredients.Ingredient").
		Where("id = ? AND user_id = ?", mealID, userID).
		First(&meal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMealNotFound
		}
		return nil, err
	}
	return &meal, nil
}

// ListMeals returns the user's meals, newest first.
func (s *MealService) ListMeals(ctx context.Context, userID uuid.UUID) ([]models.Meal, error) {
	meals := []models.Meal{}
	err := s.db.WithContext(ctx).
		Preload("Ingredients", orderByPosition).
		Preload("Ingredients.Ingredient").
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&meals).Error
	if err != nil {
		return nil, err
	}
	return meals, nil
}

// UpdateMeal replaces the name, description and whole ingredient list.
func (s *MealService) UpdateMeal(ctx context.Context, userID uuid.UUID, mealID uint, req *types.MealRequest) (*models.Meal, error) {
	name, items, err := normalizeMeal(req)
	if err != nil {
		return nil, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Meal{}).
			Where("id = ? AND user_id = ?", mealID, userID).
			Updates(map[string]interface{}{
				"name":        name,
				"description": strings.TrimSpace(req.Description),
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrMealNotFound
		}
		if err := tx.Where("meal_id = ?", mealID).Delete(&models.MealIngredient{}).Error; err != nil {
			return err
		}
		return linkIngredients(tx, mealID, items)
	})
	if err != nil {
		if errors.Is(err, ErrMealNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update meal: %w", err)
	}
	return s.GetMeal(ctx, userID, mealID)
}

// DeleteMeal removes the meal together with its ingredient links and every
// plan entry that scheduled it. Catalog ingredients are kept.
func (s *MealService) DeleteMeal(ctx context.Context, userID uuid.UUID, mealID uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Meal{}).Where("id = ? AND user_id = ?", mealID, userID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrMealNotFound
		}
		if err := tx.Where("meal_id = ?", mealID).Delete(&models.MealPlan{}).Error; err != nil {
			return err
		}
		if err := tx.Where("meal_id = ?", mealID).Delete(&models.MealIngredient{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Meal{}, mealID).Error
	})
	if err != nil {
		if errors.Is(err, ErrMealNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete meal: %w", err)
	}

	s.logger.Debug("meal deleted", zap.String("user_id", userID.String()), zap.Uint("meal_id", mealID))
	return nil
}

// SetMealImage records the URL of an uploaded picture.
func (s *MealService) SetMealImage(ctx context.Context, userID uuid.UUID, mealID uint, url string) (*models.Meal, error) {
	result := s.db.WithContext(ctx).Model(&models.Meal{}).
		Where("id = ? AND user_id = ?", mealID, userID).
		Update("image_url", url)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrMealNotFound
	}
	return s.GetMeal(ctx, userID, mealID)
}

// normalizeMeal trims the form and enforces that every row names an
// ingredient once and carries a quantity.
func normalizeMeal(req *types.MealRequest) (string, []types.IngredientInput, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return "", nil, fmt.Errorf("%w: name is required", ErrInvalidMeal)
	}
	if len(req.Ingredients) == 0 {
		return "", nil, fmt.Errorf("%w: at least one ingredient is required", ErrInvalidMeal)
	}

	seen := make(map[string]struct{}, len(req.Ingredients))
	items := make([]types.IngredientInput, 0, len(req.Ingredients))
	for i, in := range req.Ingredients {
		item := types.IngredientInput{
			Name:     strings.TrimSpace(in.Name),
			Quantity: strings.TrimSpace(in.Quantity),
		}
		if item.Name == "" || item.Quantity == "" {
			return "", nil, fmt.Errorf("%w: ingredient %d needs a name and a quantity", ErrInvalidMeal, i+1)
		}
		if _, dup := seen[item.Name]; dup {
			return "", nil, fmt.Errorf("%w: %q", ErrDuplicateIngredient, item.Name)
		}
		seen[item.Name] = struct{}{}
		items = append(items, item)
	}
	return name, items, nil
}

func linkIngredients(tx *gorm.DB, mealID uint, items []types.IngredientInput) error {
	for i, item := range items {
		ingredient, err := findOrCreateIngredient(tx, item.Name)
		if err != nil {
			return err
		}
		quantity := item.Quantity
		link := models.MealIngredient{
			MealID:       mealID,
			IngredientID: ingredient.ID,
			Quantity:     &quantity,
			Position:     i,
		}
		if err := tx.Create(&link).Error; err != nil {
			return fmt.Errorf("failed to link ingredient %q: %w", item.Name, err)
		}
	}
	return nil
}

// findOrCreateIngredient looks the name up in the catalog and inserts it when
// missing. Existing rows are never modified.
func findOrCreateIngredient(tx *gorm.DB, name string) (*models.Ingredient, error) {
	var ingredient models.Ingredient
	err := tx.Where("name = ?", name).First(&ingredient).Error
	if err == nil {
		return &ingredient, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	// Another request may insert the same name concurrently.
	if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&models.Ingredient{Name: name}).Error; err != nil {
		return nil, fmt.Errorf("failed to add ingredient %q: %w", name, err)
	}
	if err := tx.Where("name = ?", name).First(&ingredient).Error; err != nil {
		return nil, err
	}
	return &ingredient, nil
}

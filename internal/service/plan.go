package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pageza/mealprep/backend/internal/daterange"
	"github.com/pageza/mealprep/backend/internal/models"
)

// PlanService manages the meal calendar. It is also the database-backed
// PlanLoader used by the shopping list.
type PlanService struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewPlanService creates a new PlanService instance
func NewPlanService(db *gorm.DB, logger *zap.Logger) *PlanService {
	return &PlanService{db: db, logger: logger}
}

func scopeRange(rng daterange.Predicate) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if rng.Mode == daterange.ModeExact {
			return db.Where("planned_date = ?", rng.Start)
		}
		return db.Where("planned_date BETWEEN ? AND ?", rng.Start, rng.End)
	}
}

// ListPlans returns the user's entries between from and to, latest day first.
// When either endpoint is missing the list is empty.
func (s *PlanService) ListPlans(ctx context.Context, userID uuid.UUID, from, to string) ([]models.MealPlan, error) {
	rng, err := daterange.Resolve(from, to)
	if err != nil {
		return nil, err
	}
	plans := []models.MealPlan{}
	if rng == nil {
		return plans, nil
	}

	err = s.db.WithContext(ctx).
		Scopes(scopeRange(*rng)).
		Where("user_id = ?", userID).
		Preload("Meal").
		Order("planned_date DESC, id DESC").
		Find(&plans).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}
	return plans, nil
}

// PlansForDay returns the canonical day token and the entries planned on it.
func (s *PlanService) PlansForDay(ctx context.Context, userID uuid.UUID, day string) (string, []models.MealPlan, error) {
	token, err := daterange.ParseDay(day)
	if err != nil {
		return "", nil, err
	}
	plans, err := s.LoadPlans(ctx, userID, daterange.Predicate{Start: token, End: token, Mode: daterange.ModeExact})
	if err != nil {
		return "", nil, err
	}
	return token, plans, nil
}

// CreatePlan schedules one of the user's meals. plannedDate must be a bare
// YYYY-MM-DD day.
func (s *PlanService) CreatePlan(ctx context.Context, userID uuid.UUID, mealID uint, plannedDate string) (*models.MealPlan, error) {
	if _, err := time.Parse(daterange.DayLayout, plannedDate); err != nil {
		return nil, &daterange.InvalidDateInputError{Field: "planned_date", Input: plannedDate}
	}

	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Meal{}).Where("id = ? AND user_id = ?", mealID, userID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrMealNotFound
	}

	plan := &models.MealPlan{
		UserID:      userID,
		MealID:      mealID,
		PlannedDate: models.CalendarDay(plannedDate),
	}
	if err := s.db.WithContext(ctx).Create(plan).Error; err != nil {
		return nil, fmt.Errorf("failed to create plan: %w", err)
	}

	if err := s.db.WithContext(ctx).Preload("Meal").First(plan, plan.ID).Error; err != nil {
		return nil, err
	}
	s.logger.Debug("plan created",
		zap.String("user_id", userID.String()),
		zap.Uint("meal_id", mealID),
		zap.String("planned_date", plannedDate),
	)
	return plan, nil
}

// DeletePlan removes one of the user's entries.
func (s *PlanService) DeletePlan(ctx context.Context, userID uuid.UUID, planID uint) error {
	result := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", planID, userID).Delete(&models.MealPlan{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete plan: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrPlanNotFound
	}
	return nil
}

// LoadPlans implements PlanLoader. Entries come back by day, then by id,
// fully hydrated down to the catalog ingredient.
func (s *PlanService) LoadPlans(ctx context.Context, userID uuid.UUID, rng daterange.Predicate) ([]models.MealPlan, error) {
	plans := []models.MealPlan{}
	err := s.db.WithContext(ctx).
		Scopes(scopeRange(rng)).
		Where("user_id = ?", userID).
		Preload("Meal").
		Preload("Meal.Ingredients", orderByPosition).
		Preload("Meal.Ingredients.Ingredient").
		Order("planned_date ASC, id ASC").
		Find(&plans).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load plans: %w", err)
	}
	return plans, nil
}

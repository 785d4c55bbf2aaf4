package testhelpers

import (
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pageza/mealprep/backend/internal/models"
)

// Item is one ingredient of a fixture meal.
type Item struct {
	Name     string
	Quantity string
}

// CreateUser inserts a user with a placeholder password hash.
func CreateUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	user := &models.User{
		Name:         "Test User",
		Email:        email,
		PasswordHash: "not-a-real-hash",
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	return user
}

// CreateMeal inserts a meal and links the given ingredients in order,
// reusing catalog rows that already exist.
func CreateMeal(t *testing.T, db *gorm.DB, userID uuid.UUID, name string, items ...Item) *models.Meal {
	t.Helper()
	meal := &models.Meal{UserID: userID, Name: name}
	if err := db.Create(meal).Error; err != nil {
		t.Fatalf("failed to create meal: %v", err)
	}
	for i, item := range items {
		ingredient := models.Ingredient{Name: item.Name}
		if err := db.Where(models.Ingredient{Name: item.Name}).FirstOrCreate(&ingredient).Error; err != nil {
			t.Fatalf("failed to create ingredient %q: %v", item.Name, err)
		}
		quantity := item.Quantity
		link := models.MealIngredient{
			MealID:       meal.ID,
			IngredientID: ingredient.ID,
			Quantity:     &quantity,
			Position:     i,
		}
		if err := db.Create(&link).Error; err != nil {
			t.Fatalf("failed to link ingredient %q: %v", item.Name, err)
		}
	}
	return meal
}

// CreatePlan schedules a meal on a YYYY-MM-DD day.
func CreatePlan(t *testing.T, db *gorm.DB, userID uuid.UUID, mealID uint, day string) *models.MealPlan {
	t.Helper()
	plan := &models.MealPlan{UserID: userID, MealID: mealID, PlannedDate: models.CalendarDay(day)}
	if err := db.Create(plan).Error; err != nil {
		t.Fatalf("failed to create plan: %v", err)
	}
	return plan
}

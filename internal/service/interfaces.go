package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/pageza/mealprep/backend/internal/daterange"
	"github.com/pageza/mealprep/backend/internal/models"
	"github.com/pageza/mealprep/backend/internal/types"
)

// IAuthService defines the interface for authentication operations
type IAuthService interface {
	Register(ctx context.Context, name, email, password string) (*models.User, string, error)
	Login(ctx context.Context, email, password string) (*models.User, string, error)
	ValidateToken(token string) (*types.TokenClaims, error)
	GenerateToken(claims *types.TokenClaims) (string, error)
	GetUserByID(ctx context.Context, userID uuid.UUID) (*models.User, error)
}

// IMealService defines the interface for meal library operations
type IMealService interface {
	CreateMeal(ctx context.Context, userID uuid.UUID, req *types.MealRequest) (*models.Meal, error)
	GetMeal(ctx context.Context, userID uuid.UUID, mealID uint) (*models.Meal, error)
	ListMeals(ctx context.Context, userID uuid.UUID) ([]models.Meal, error)
	UpdateMeal(ctx context.Context, userID uuid.UUID, mealID uint, req *types.MealRequest) (*models.Meal, error)
	DeleteMeal(ctx context.Context, userID uuid.UUID, mealID uint) error
	SetMealImage(ctx context.Context, userID uuid.UUID, mealID uint, url string) (*models.Meal, error)
}

// IPlanService defines the interface for calendar operations
type IPlanService interface {
	PlanLoader
	ListPlans(ctx context.Context, userID uuid.UUID, from, to string) ([]models.MealPlan, error)
	PlansForDay(ctx context.Context, userID uuid.UUID, day string) (string, []models.MealPlan, error)
	CreatePlan(ctx context.Context, userID uuid.UUID, mealID uint, plannedDate string) (*models.MealPlan, error)
	DeletePlan(ctx context.Context, userID uuid.UUID, planID uint) error
}

// IShoppingService builds shopping lists.
type IShoppingService interface {
	GetShoppingList(ctx context.Context, userID uuid.UUID, from, to string) (*ShoppingList, error)
}

// IImageService stores meal pictures.
type IImageService interface {
	UploadMealImage(ctx context.Context, userID uuid.UUID, mealID uint, contentType string, data []byte) (*models.Meal, error)
}

// PlanLoader returns a user's plan entries inside a resolved range, each with
// its meal, the meal's ingredient links in entry order and each link's
// ingredient.
type PlanLoader interface {
	LoadPlans(ctx context.Context, userID uuid.UUID, rng daterange.Predicate) ([]models.MealPlan, error)
}

// ObjectStore persists binary objects and returns their public URL.
type ObjectStore interface {
	PutObject(ctx context.Context, key, contentType string, data []byte) (string, error)
}
